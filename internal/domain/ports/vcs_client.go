package ports

import (
	"context"

	"github.com/mrzacarias/github-contributions-tracker/internal/domain/models"
)

// VCSClient abstrae la API REST del proveedor de control de versiones.
// Todas las operaciones son bloqueantes y se ejecutan en secuencia.
type VCSClient interface {
	// Login devuelve el usuario rastreado (el autenticado si no se pidió otro).
	Login(ctx context.Context) (string, error)

	// SearchCommits busca todos los commits del usuario en el rango usando la
	// search API (query author:<login> committer-date:<start>..<end>).
	SearchCommits(ctx context.Context, r models.DateRange) ([]models.SearchedCommit, error)

	// SearchCommitRepositories devuelve los nombres completos (owner/name) de
	// los repositorios con commits del usuario en el rango, derivados de la
	// URL canónica de cada resultado.
	SearchCommitRepositories(ctx context.Context, r models.DateRange) ([]string, error)

	// ListOwnedRepositories enumera todos los repositorios de la cuenta.
	ListOwnedRepositories(ctx context.Context) ([]string, error)

	// ResolveRepository resuelve un nombre completo a su record con
	// visibilidad real. Un error acá se interpreta como "asumir privado".
	ResolveRepository(ctx context.Context, fullName string) (models.RepositoryRecord, error)

	// ListRepositoryCommits lista commits del usuario en el repositorio y
	// rango dados, paginando internamente y cortando en limit registros.
	ListRepositoryCommits(ctx context.Context, fullName string, r models.DateRange, limit int) ([]models.CommitRecord, error)
}

// CommitHistoryProvider abstrae la consulta estructurada (GraphQL) de la
// historia de la rama default de un repositorio.
type CommitHistoryProvider interface {
	// DefaultBranchHistory devuelve hasta 50 entradas de historia dentro del
	// rango. Respuestas con forma inesperada fallan cerradas con
	// MalformedResponseError.
	DefaultBranchHistory(ctx context.Context, owner, name string, r models.DateRange) ([]models.HistoryEntry, error)
}
