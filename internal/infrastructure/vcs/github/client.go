package github

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/go-github/v75/github"
	domainerrors "github.com/mrzacarias/github-contributions-tracker/internal/domain/errors"
	"github.com/mrzacarias/github-contributions-tracker/internal/domain/models"
	"github.com/mrzacarias/github-contributions-tracker/internal/domain/ports"
	"golang.org/x/oauth2"
)

var _ ports.VCSClient = (*Client)(nil)

type SearchService interface {
	Commits(ctx context.Context, query string, opts *github.SearchOptions) (*github.CommitsSearchResult, *github.Response, error)
}

type RepositoriesService interface {
	Get(ctx context.Context, owner, repo string) (*github.Repository, *github.Response, error)
	ListCommits(ctx context.Context, owner, repo string, opts *github.CommitsListOptions) ([]*github.RepositoryCommit, *github.Response, error)
	ListByUser(ctx context.Context, user string, opts *github.RepositoryListByUserOptions) ([]*github.Repository, *github.Response, error)
	ListByAuthenticatedUser(ctx context.Context, opts *github.RepositoryListByAuthenticatedUserOptions) ([]*github.Repository, *github.Response, error)
}

type UsersService interface {
	Get(ctx context.Context, user string) (*github.User, *github.Response, error)
}

// Client implementa ports.VCSClient sobre la API REST de GitHub.
type Client struct {
	searchService SearchService
	repoService   RepositoriesService
	usersService  UsersService

	// username es la cuenta pedida; vacío significa el usuario autenticado.
	username string
	// login se resuelve una sola vez y se cachea.
	login string
}

func NewClient(token, username string) (*Client, error) {
	if token == "" {
		return nil, domainerrors.NewMissingTokenError()
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := oauth2.NewClient(context.Background(), ts)

	client := github.NewClient(httpClient)
	return &Client{
		searchService: client.Search,
		repoService:   client.Repositories,
		usersService:  client.Users,
		username:      username,
	}, nil
}

// NewClientWithServices arma un cliente con servicios inyectados, para tests.
func NewClientWithServices(
	searchService SearchService,
	repoService RepositoriesService,
	usersService UsersService,
	username string,
) *Client {
	return &Client{
		searchService: searchService,
		repoService:   repoService,
		usersService:  usersService,
		username:      username,
	}
}

func (c *Client) Login(ctx context.Context) (string, error) {
	if c.login != "" {
		return c.login, nil
	}

	user, _, err := c.usersService.Get(ctx, c.username)
	if err != nil {
		return "", classifyError("user lookup", err)
	}

	c.login = user.GetLogin()
	return c.login, nil
}

func (c *Client) SearchCommits(ctx context.Context, r models.DateRange) ([]models.SearchedCommit, error) {
	results, err := c.searchAllCommits(ctx, r)
	if err != nil {
		return nil, err
	}

	commits := make([]models.SearchedCommit, 0, len(results))
	for _, result := range results {
		fullRepo, ok := repoFromURL(result.GetHTMLURL())
		if !ok {
			continue
		}
		_, shortName, _ := splitFullName(fullRepo)

		commits = append(commits, models.SearchedCommit{
			FullRepo: fullRepo,
			Commit: models.CommitRecord{
				Repository: shortName,
				SHA:        shortSHA(result.GetSHA()),
				Message:    headline(result.GetCommit().GetMessage()),
				Date:       normalizeDate(result.GetCommit().GetAuthor().GetDate().Time),
				URL:        result.GetHTMLURL(),
			},
		})
	}
	return commits, nil
}

func (c *Client) SearchCommitRepositories(ctx context.Context, r models.DateRange) ([]string, error) {
	results, err := c.searchAllCommits(ctx, r)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var repos []string
	for _, result := range results {
		fullRepo, ok := repoFromURL(result.GetHTMLURL())
		if !ok {
			continue
		}
		if _, dup := seen[fullRepo]; dup {
			continue
		}
		seen[fullRepo] = struct{}{}
		repos = append(repos, fullRepo)
	}
	return repos, nil
}

func (c *Client) ListOwnedRepositories(ctx context.Context) ([]string, error) {
	var names []string

	if c.username == "" {
		opts := &github.RepositoryListByAuthenticatedUserOptions{
			ListOptions: github.ListOptions{PerPage: 100},
		}
		for {
			repos, resp, err := c.repoService.ListByAuthenticatedUser(ctx, opts)
			if err != nil {
				return nil, classifyError("repository enumeration", err)
			}
			for _, repo := range repos {
				names = append(names, repo.GetFullName())
			}
			if resp == nil || resp.NextPage == 0 {
				break
			}
			opts.Page = resp.NextPage
		}
		return names, nil
	}

	opts := &github.RepositoryListByUserOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}
	for {
		repos, resp, err := c.repoService.ListByUser(ctx, c.username, opts)
		if err != nil {
			return nil, classifyError("repository enumeration", err)
		}
		for _, repo := range repos {
			names = append(names, repo.GetFullName())
		}
		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return names, nil
}

func (c *Client) ResolveRepository(ctx context.Context, fullName string) (models.RepositoryRecord, error) {
	owner, name, err := splitFullName(fullName)
	if err != nil {
		return models.RepositoryRecord{}, err
	}

	repo, _, err := c.repoService.Get(ctx, owner, name)
	if err != nil {
		return models.RepositoryRecord{}, classifyError("repository lookup", err)
	}

	return models.RepositoryRecord{
		Name:    repo.GetName(),
		URL:     repo.GetHTMLURL(),
		Private: repo.GetPrivate(),
	}, nil
}

func (c *Client) ListRepositoryCommits(ctx context.Context, fullName string, r models.DateRange, limit int) ([]models.CommitRecord, error) {
	owner, name, err := splitFullName(fullName)
	if err != nil {
		return nil, err
	}

	login, err := c.Login(ctx)
	if err != nil {
		return nil, err
	}

	perPage := 100
	if limit > 0 && limit < perPage {
		perPage = limit
	}

	opts := &github.CommitsListOptions{
		Author:      login,
		Since:       r.Start,
		Until:       r.End,
		ListOptions: github.ListOptions{PerPage: perPage},
	}

	var records []models.CommitRecord
	for {
		commits, resp, err := c.repoService.ListCommits(ctx, owner, name, opts)
		if err != nil {
			return nil, classifyError("commit listing", err)
		}

		for _, commit := range commits {
			if limit > 0 && len(records) >= limit {
				return records, nil
			}
			records = append(records, toCommitRecord(name, commit))
		}

		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return records, nil
}

func (c *Client) searchAllCommits(ctx context.Context, r models.DateRange) ([]*github.CommitResult, error) {
	login, err := c.Login(ctx)
	if err != nil {
		return nil, err
	}

	start, end := r.SearchFormat()
	query := fmt.Sprintf("author:%s committer-date:%s..%s", login, start, end)

	opts := &github.SearchOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var all []*github.CommitResult
	for {
		result, resp, err := c.searchService.Commits(ctx, query, opts)
		if err != nil {
			return nil, classifyError("commit search", err)
		}
		all = append(all, result.Commits...)

		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return all, nil
}

func toCommitRecord(repoName string, commit *github.RepositoryCommit) models.CommitRecord {
	return models.CommitRecord{
		Repository: repoName,
		SHA:        shortSHA(commit.GetSHA()),
		Message:    headline(commit.GetCommit().GetMessage()),
		Date:       normalizeDate(commit.GetCommit().GetAuthor().GetDate().Time),
		URL:        commit.GetHTMLURL(),
	}
}

func shortSHA(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}

func headline(message string) string {
	return strings.Split(message, "\n")[0]
}

// normalizeDate fija la fecha en UTC; GitHub a veces entrega fechas legacy
// sin zona explícita y esas se interpretan como UTC.
func normalizeDate(t time.Time) time.Time {
	return t.UTC()
}

// repoFromURL extrae owner/name de una URL canónica de commit
// (https://github.com/owner/repo/commit/sha).
func repoFromURL(url string) (string, bool) {
	parts := strings.Split(url, "/")
	if len(parts) < 5 || parts[3] == "" || parts[4] == "" {
		return "", false
	}
	return parts[3] + "/" + parts[4], true
}

func splitFullName(fullName string) (string, string, error) {
	owner, name, found := strings.Cut(fullName, "/")
	if !found || owner == "" || name == "" {
		return "", "", fmt.Errorf("nombre de repositorio inválido: %q", fullName)
	}
	return owner, name, nil
}

// statusCode devuelve el código HTTP de una respuesta de go-github, o 0.
func statusCode(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}
