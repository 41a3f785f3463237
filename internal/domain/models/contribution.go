package models

import "time"

// CommitRecord es un commit ya normalizado: SHA corto de 7 caracteres,
// primera línea del mensaje y fecha con zona horaria.
type CommitRecord struct {
	Repository string
	SHA        string
	Message    string
	Date       time.Time
	URL        string
}

// RepositoryRecord identifica un repositorio dentro de un ContributionSet.
// Unique by Name within a result set.
type RepositoryRecord struct {
	Name    string
	URL     string
	Private bool
}

type PullRequestRecord struct {
	Repository string
	Number     int
	Title      string
	State      string
	URL        string
}

type IssueRecord struct {
	Repository string
	Number     int
	Title      string
	State      string
	URL        string
}

type ReviewRecord struct {
	Repository string
	PRNumber   int
	State      string
	URL        string
}

// ContributionSet is the canonical dataset produced by one acquisition call.
// PullRequests, Issues and Reviews are reserved slots: always present, never
// populated by the current acquisition strategies.
type ContributionSet struct {
	Commits      []CommitRecord
	Repositories []RepositoryRecord
	PullRequests []PullRequestRecord
	Issues       []IssueRecord
	Reviews      []ReviewRecord
}

// NewContributionSet crea un set vacío listo para acumular resultados.
func NewContributionSet() *ContributionSet {
	return &ContributionSet{
		Commits:      make([]CommitRecord, 0),
		Repositories: make([]RepositoryRecord, 0),
		PullRequests: make([]PullRequestRecord, 0),
		Issues:       make([]IssueRecord, 0),
		Reviews:      make([]ReviewRecord, 0),
	}
}

// HasRepository reports whether a repository was already accumulated.
func (cs *ContributionSet) HasRepository(name string) bool {
	for _, repo := range cs.Repositories {
		if repo.Name == name {
			return true
		}
	}
	return false
}

// AddRepository appends the record only if the name is not present yet.
func (cs *ContributionSet) AddRepository(repo RepositoryRecord) {
	if !cs.HasRepository(repo.Name) {
		cs.Repositories = append(cs.Repositories, repo)
	}
}

// SearchedCommit es un resultado del buscador de commits: el record
// normalizado más el nombre completo (owner/name) del repositorio de origen.
type SearchedCommit struct {
	FullRepo string
	Commit   CommitRecord
}

// HistoryEntry es un nodo de historia de la rama default. AuthorLogin queda
// vacío cuando GitHub no puede atribuir el commit a un usuario.
type HistoryEntry struct {
	AuthorLogin string
	Commit      CommitRecord
}
