package services

import (
	"context"

	"github.com/mrzacarias/github-contributions-tracker/internal/domain/models"
	"github.com/stretchr/testify/mock"
)

type (
	MockVCSClient struct {
		mock.Mock
	}

	MockHistoryProvider struct {
		mock.Mock
	}

	MockSummarizer struct {
		mock.Mock
	}
)

func (m *MockVCSClient) Login(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockVCSClient) SearchCommits(ctx context.Context, r models.DateRange) ([]models.SearchedCommit, error) {
	args := m.Called(ctx, r)
	var result []models.SearchedCommit
	if args.Get(0) != nil {
		result = args.Get(0).([]models.SearchedCommit)
	}
	return result, args.Error(1)
}

func (m *MockVCSClient) SearchCommitRepositories(ctx context.Context, r models.DateRange) ([]string, error) {
	args := m.Called(ctx, r)
	var result []string
	if args.Get(0) != nil {
		result = args.Get(0).([]string)
	}
	return result, args.Error(1)
}

func (m *MockVCSClient) ListOwnedRepositories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	var result []string
	if args.Get(0) != nil {
		result = args.Get(0).([]string)
	}
	return result, args.Error(1)
}

func (m *MockVCSClient) ResolveRepository(ctx context.Context, fullName string) (models.RepositoryRecord, error) {
	args := m.Called(ctx, fullName)
	var result models.RepositoryRecord
	if args.Get(0) != nil {
		result = args.Get(0).(models.RepositoryRecord)
	}
	return result, args.Error(1)
}

func (m *MockVCSClient) ListRepositoryCommits(ctx context.Context, fullName string, r models.DateRange, limit int) ([]models.CommitRecord, error) {
	args := m.Called(ctx, fullName, r, limit)
	var result []models.CommitRecord
	if args.Get(0) != nil {
		result = args.Get(0).([]models.CommitRecord)
	}
	return result, args.Error(1)
}

func (m *MockHistoryProvider) DefaultBranchHistory(ctx context.Context, owner, name string, r models.DateRange) ([]models.HistoryEntry, error) {
	args := m.Called(ctx, owner, name, r)
	var result []models.HistoryEntry
	if args.Get(0) != nil {
		result = args.Get(0).([]models.HistoryEntry)
	}
	return result, args.Error(1)
}

func (m *MockSummarizer) SummarizeContributions(ctx context.Context, report string) (string, error) {
	args := m.Called(ctx, report)
	return args.String(0), args.Error(1)
}
