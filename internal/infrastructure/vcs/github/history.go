package github

import (
	"context"

	domainerrors "github.com/mrzacarias/github-contributions-tracker/internal/domain/errors"
	"github.com/mrzacarias/github-contributions-tracker/internal/domain/models"
	"github.com/mrzacarias/github-contributions-tracker/internal/domain/ports"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"
)

var _ ports.CommitHistoryProvider = (*HistoryClient)(nil)

// GraphQLClient es la porción de githubv4.Client que usamos, para poder
// mockearla en tests.
type GraphQLClient interface {
	Query(ctx context.Context, q interface{}, variables map[string]interface{}) error
}

// HistoryClient consulta la historia de la rama default vía GraphQL. El
// decode tipado de githubv4 falla cerrado: cualquier forma inesperada en la
// respuesta termina en error y el repositorio se saltea.
type HistoryClient struct {
	gql GraphQLClient
}

func NewHistoryClient(token string) (*HistoryClient, error) {
	if token == "" {
		return nil, domainerrors.NewMissingTokenError()
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := oauth2.NewClient(context.Background(), ts)

	return &HistoryClient{gql: githubv4.NewClient(httpClient)}, nil
}

// NewHistoryClientWithGQL arma un cliente con el GraphQL inyectado, para tests.
func NewHistoryClientWithGQL(gql GraphQLClient) *HistoryClient {
	return &HistoryClient{gql: gql}
}

type historyNode struct {
	Oid             githubv4.GitObjectID
	MessageHeadline githubv4.String
	CommittedDate   githubv4.DateTime
	URL             githubv4.URI `graphql:"url"`
	Author          struct {
		User *struct {
			Login githubv4.String
		}
	}
}

type historyQuery struct {
	Repository struct {
		DefaultBranchRef *struct {
			Target struct {
				Commit struct {
					History struct {
						Nodes []historyNode
					} `graphql:"history(since: $since, until: $until, first: 50)"`
				} `graphql:"... on Commit"`
			}
		}
	} `graphql:"repository(owner: $owner, name: $name)"`
}

func (h *HistoryClient) DefaultBranchHistory(ctx context.Context, owner, name string, r models.DateRange) ([]models.HistoryEntry, error) {
	var q historyQuery
	variables := map[string]interface{}{
		"owner": githubv4.String(owner),
		"name":  githubv4.String(name),
		"since": githubv4.GitTimestamp{Time: r.Start},
		"until": githubv4.GitTimestamp{Time: r.End},
	}

	if err := h.gql.Query(ctx, &q, variables); err != nil {
		return nil, classifyError("history query", err)
	}

	// Repos sin rama default no tienen historia que contar.
	if q.Repository.DefaultBranchRef == nil {
		return nil, nil
	}

	nodes := q.Repository.DefaultBranchRef.Target.Commit.History.Nodes
	entries := make([]models.HistoryEntry, 0, len(nodes))
	for _, node := range nodes {
		if node.Oid == "" {
			return nil, domainerrors.NewMalformedResponseError(owner+"/"+name, "history node without oid")
		}
		login := ""
		if node.Author.User != nil {
			login = string(node.Author.User.Login)
		}

		url := ""
		if node.URL.URL != nil {
			url = node.URL.String()
		}

		entries = append(entries, models.HistoryEntry{
			AuthorLogin: login,
			Commit: models.CommitRecord{
				Repository: name,
				SHA:        shortSHA(string(node.Oid)),
				Message:    string(node.MessageHeadline),
				Date:       node.CommittedDate.Time.UTC(),
				URL:        url,
			},
		})
	}
	return entries, nil
}
