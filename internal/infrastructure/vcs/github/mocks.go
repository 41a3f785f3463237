package github

import (
	"context"

	"github.com/google/go-github/v75/github"
	"github.com/stretchr/testify/mock"
)

type (
	MockSearchService struct {
		mock.Mock
	}

	MockRepositoriesService struct {
		mock.Mock
	}

	MockUsersService struct {
		mock.Mock
	}

	MockGraphQLClient struct {
		mock.Mock
	}
)

func (m *MockSearchService) Commits(ctx context.Context, query string, opts *github.SearchOptions) (*github.CommitsSearchResult, *github.Response, error) {
	args := m.Called(ctx, query, opts)
	var result *github.CommitsSearchResult
	if args.Get(0) != nil {
		result = args.Get(0).(*github.CommitsSearchResult)
	}
	var resp *github.Response
	if args.Get(1) != nil {
		resp = args.Get(1).(*github.Response)
	}
	return result, resp, args.Error(2)
}

func (m *MockRepositoriesService) Get(ctx context.Context, owner, repo string) (*github.Repository, *github.Response, error) {
	args := m.Called(ctx, owner, repo)
	var result *github.Repository
	if args.Get(0) != nil {
		result = args.Get(0).(*github.Repository)
	}
	var resp *github.Response
	if args.Get(1) != nil {
		resp = args.Get(1).(*github.Response)
	}
	return result, resp, args.Error(2)
}

func (m *MockRepositoriesService) ListCommits(ctx context.Context, owner, repo string, opts *github.CommitsListOptions) ([]*github.RepositoryCommit, *github.Response, error) {
	args := m.Called(ctx, owner, repo, opts)
	var result []*github.RepositoryCommit
	if args.Get(0) != nil {
		result = args.Get(0).([]*github.RepositoryCommit)
	}
	var resp *github.Response
	if args.Get(1) != nil {
		resp = args.Get(1).(*github.Response)
	}
	return result, resp, args.Error(2)
}

func (m *MockRepositoriesService) ListByUser(ctx context.Context, user string, opts *github.RepositoryListByUserOptions) ([]*github.Repository, *github.Response, error) {
	args := m.Called(ctx, user, opts)
	var result []*github.Repository
	if args.Get(0) != nil {
		result = args.Get(0).([]*github.Repository)
	}
	var resp *github.Response
	if args.Get(1) != nil {
		resp = args.Get(1).(*github.Response)
	}
	return result, resp, args.Error(2)
}

func (m *MockRepositoriesService) ListByAuthenticatedUser(ctx context.Context, opts *github.RepositoryListByAuthenticatedUserOptions) ([]*github.Repository, *github.Response, error) {
	args := m.Called(ctx, opts)
	var result []*github.Repository
	if args.Get(0) != nil {
		result = args.Get(0).([]*github.Repository)
	}
	var resp *github.Response
	if args.Get(1) != nil {
		resp = args.Get(1).(*github.Response)
	}
	return result, resp, args.Error(2)
}

func (m *MockUsersService) Get(ctx context.Context, user string) (*github.User, *github.Response, error) {
	args := m.Called(ctx, user)
	var result *github.User
	if args.Get(0) != nil {
		result = args.Get(0).(*github.User)
	}
	var resp *github.Response
	if args.Get(1) != nil {
		resp = args.Get(1).(*github.Response)
	}
	return result, resp, args.Error(2)
}

func (m *MockGraphQLClient) Query(ctx context.Context, q interface{}, variables map[string]interface{}) error {
	args := m.Called(ctx, q, variables)
	return args.Error(0)
}
