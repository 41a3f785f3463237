package track

import (
	"context"

	"github.com/mrzacarias/github-contributions-tracker/internal/domain/models"
	"github.com/stretchr/testify/mock"
)

type (
	MockTracker struct {
		mock.Mock
	}

	MockSummarizer struct {
		mock.Mock
	}
)

func (m *MockTracker) GetContributions(ctx context.Context, opts models.TrackOptions) (*models.ContributionSet, error) {
	args := m.Called(ctx, opts)
	var result *models.ContributionSet
	if args.Get(0) != nil {
		result = args.Get(0).(*models.ContributionSet)
	}
	return result, args.Error(1)
}

func (m *MockSummarizer) SummarizeContributions(ctx context.Context, report string) (string, error) {
	args := m.Called(ctx, report)
	return args.String(0), args.Error(1)
}
