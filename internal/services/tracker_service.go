package services

import (
	"context"
	"strings"
	"time"

	domainerrors "github.com/mrzacarias/github-contributions-tracker/internal/domain/errors"
	"github.com/mrzacarias/github-contributions-tracker/internal/domain/models"
	"github.com/mrzacarias/github-contributions-tracker/internal/domain/ports"
	"github.com/mrzacarias/github-contributions-tracker/internal/logger"
)

const (
	// Topes de commits por repositorio, según estrategia.
	bulkCommitCap         = 50
	exhaustiveCommitCap   = 50
	conservativeCommitCap = 30

	// La estrategia conservadora procesa como máximo 10 repos por chunk.
	chunkRepoCap = 10

	// GraphQL consulta de a 5 repos, con una pausa entre tandas.
	graphqlBatchSize = 5
	batchPause       = 1 * time.Second
	chunkPause       = 2 * time.Second
)

var _ ports.ContributionTracker = (*TrackerService)(nil)

// TrackerService es el orquestador de adquisición: elige la estrategia
// pedida, ejecuta sus llamadas en forma secuencial y aplica los fallbacks
// hacia la estrategia conservadora. Todo es single-threaded a propósito:
// el recurso escaso acá es el presupuesto de rate limit, no el CPU.
type TrackerService struct {
	vcs     ports.VCSClient
	history ports.CommitHistoryProvider

	// sleep se inyecta en tests para no esperar las pausas reales.
	sleep func(time.Duration)
}

func NewTrackerService(vcs ports.VCSClient, history ports.CommitHistoryProvider) *TrackerService {
	return &TrackerService{
		vcs:     vcs,
		history: history,
		sleep:   time.Sleep,
	}
}

// GetContributions ejecuta la estrategia pedida sobre el rango dado y
// devuelve el dataset canónico, ya deduplicado.
func (s *TrackerService) GetContributions(ctx context.Context, opts models.TrackOptions) (*models.ContributionSet, error) {
	if !opts.Range.IsValid() {
		return nil, domainerrors.NewInvalidRangeError(
			opts.Range.Start.Format(time.RFC3339),
			opts.Range.End.Format(time.RFC3339),
		)
	}

	var (
		set *models.ContributionSet
		err error
	)

	switch opts.Strategy {
	case models.StrategyConservative:
		set, err = s.fetchConservative(ctx, opts.Range, opts.IncludePrivate)
	case models.StrategyBulkSearch:
		set, err = s.fetchBulkSearch(ctx, opts.Range, opts.IncludePrivate)
	case models.StrategyGraphQLBatch:
		set, err = s.fetchGraphQLBatch(ctx, opts)
	default:
		set, err = s.fetchExhaustive(ctx, opts)
	}
	if err != nil {
		return nil, err
	}

	set.Commits = DedupeCommits(set.Commits)
	return set, nil
}

// fetchBulkSearch trae todo con una sola búsqueda de commits y agrupa los
// resultados del lado del cliente. Cualquier falla de la búsqueda (rate limit
// incluido) degrada a la estrategia conservadora sobre el rango original
// completo; un solo salto, la conservadora es terminal.
func (s *TrackerService) fetchBulkSearch(ctx context.Context, r models.DateRange, includePrivate bool) (*models.ContributionSet, error) {
	logger.Info(ctx, "usando búsqueda bulk de commits")

	searched, err := s.vcs.SearchCommits(ctx, r)
	if err != nil {
		if domainerrors.IsRateLimited(err) {
			logger.Warn(ctx, "rate limit en la búsqueda bulk, degradando a la estrategia conservadora", "error", err)
		} else {
			logger.Warn(ctx, "falla en la búsqueda bulk, degradando a la estrategia conservadora", "error", err)
		}
		return s.fetchConservative(ctx, r, includePrivate)
	}

	set := models.NewContributionSet()

	// Agrupar por repositorio preservando el orden de aparición.
	grouped := make(map[string][]models.CommitRecord)
	var order []string
	for _, result := range searched {
		if _, seen := grouped[result.FullRepo]; !seen {
			order = append(order, result.FullRepo)
		}
		grouped[result.FullRepo] = append(grouped[result.FullRepo], result.Commit)
	}

	for _, fullRepo := range order {
		commits := grouped[fullRepo]
		if len(commits) > bulkCommitCap {
			commits = commits[:bulkCommitCap]
		}
		set.Commits = append(set.Commits, commits...)
	}

	logger.Info(ctx, "búsqueda bulk completada",
		"commits", len(set.Commits),
		"repositorios", len(order))

	repos := order
	if !includePrivate {
		repos = s.filterPublic(ctx, repos)
	}

	// La búsqueda no trae visibilidad; los repos que sobreviven el filtro se
	// registran como públicos y el resto queda sin marcar.
	for _, fullRepo := range repos {
		set.AddRepository(models.RepositoryRecord{
			Name:    shortRepoName(fullRepo),
			URL:     "https://github.com/" + fullRepo,
			Private: false,
		})
	}

	return set, nil
}

// fetchGraphQLBatch consulta la historia de la rama default de cada repo
// descubierto, de a tandas de 5 con una pausa entre medio. Si al final no
// aparece ni un commit, degrada a la estrategia conservadora.
func (s *TrackerService) fetchGraphQLBatch(ctx context.Context, opts models.TrackOptions) (*models.ContributionSet, error) {
	logger.Info(ctx, "usando consultas GraphQL por tandas")

	login, err := s.vcs.Login(ctx)
	if err != nil {
		return nil, err
	}

	repos, err := s.repositoryList(ctx, opts)
	if err != nil {
		return nil, err
	}

	set := models.NewContributionSet()

	for i := 0; i < len(repos); i += graphqlBatchSize {
		end := i + graphqlBatchSize
		if end > len(repos) {
			end = len(repos)
		}
		logger.Info(ctx, "procesando tanda",
			"tanda", i/graphqlBatchSize+1,
			"total", (len(repos)+graphqlBatchSize-1)/graphqlBatchSize)

		for _, fullRepo := range repos[i:end] {
			owner, name, ok := strings.Cut(fullRepo, "/")
			if !ok {
				logger.Warn(ctx, "nombre de repositorio inválido, salteando", "repositorio", fullRepo)
				continue
			}

			entries, err := s.history.DefaultBranchHistory(ctx, owner, name, opts.Range)
			if err != nil {
				logger.Warn(ctx, "falla consultando historia, salteando repositorio",
					"repositorio", fullRepo, "error", err)
				continue
			}
			// nil sin error significa que no hay rama default.
			if entries == nil {
				logger.Warn(ctx, "repositorio sin rama default, salteando", "repositorio", fullRepo)
				continue
			}

			for _, entry := range entries {
				// Commits sin identidad de autor o de otro usuario no cuentan.
				if entry.AuthorLogin == "" || entry.AuthorLogin != login {
					continue
				}
				set.Commits = append(set.Commits, entry.Commit)
			}

			set.AddRepository(models.RepositoryRecord{
				Name:    name,
				URL:     "https://github.com/" + fullRepo,
				Private: false,
			})
		}

		if end < len(repos) {
			s.sleep(batchPause)
		}
	}

	if len(set.Commits) == 0 {
		logger.Warn(ctx, "GraphQL no encontró commits, degradando a la estrategia conservadora")
		return s.fetchConservative(ctx, opts.Range, opts.IncludePrivate)
	}

	logger.Info(ctx, "consultas GraphQL completadas",
		"commits", len(set.Commits),
		"repositorios", len(set.Repositories))
	return set, nil
}

// fetchConservative recorre el rango en chunks semanales, con descubrimiento
// acotado por chunk y pausas entre medio. Es la estrategia terminal: sus
// fallas son siempre por ítem, nunca un fallback.
func (s *TrackerService) fetchConservative(ctx context.Context, r models.DateRange, includePrivate bool) (*models.ContributionSet, error) {
	logger.Info(ctx, "usando la estrategia conservadora")

	set := models.NewContributionSet()

	for _, chunk := range r.Chunks(models.ChunkWidth) {
		start, end := chunk.SearchFormat()
		logger.Info(ctx, "procesando chunk", "desde", start, "hasta", end)

		repos, err := s.discoverRepositories(ctx, chunk, includePrivate)
		if err != nil {
			logger.Error(ctx, "falla descubriendo repositorios del chunk",
				"desde", start, "hasta", end, "error", err)
			continue
		}

		if len(repos) > chunkRepoCap {
			repos = repos[:chunkRepoCap]
		}

		for _, fullRepo := range repos {
			record, err := s.vcs.ResolveRepository(ctx, fullRepo)
			if err != nil {
				logger.Warn(ctx, "falla resolviendo repositorio, salteando",
					"repositorio", fullRepo, "error", err)
				continue
			}

			commits, err := s.vcs.ListRepositoryCommits(ctx, fullRepo, chunk, conservativeCommitCap)
			if err != nil {
				logger.Warn(ctx, "falla listando commits, salteando repositorio",
					"repositorio", fullRepo, "error", err)
				continue
			}

			set.Commits = append(set.Commits, commits...)
			set.AddRepository(record)
		}

		s.sleep(chunkPause)
	}

	logger.Info(ctx, "estrategia conservadora completada",
		"commits", len(set.Commits),
		"repositorios", len(set.Repositories))
	return set, nil
}

// fetchExhaustive recorre uno por uno los repositorios de la lista de trabajo
// (descubierta o enumerada completa según Optimize). Las fallas por
// repositorio se loguean y se saltean.
func (s *TrackerService) fetchExhaustive(ctx context.Context, opts models.TrackOptions) (*models.ContributionSet, error) {
	logger.Info(ctx, "usando enumeración exhaustiva")

	repos, err := s.repositoryList(ctx, opts)
	if err != nil {
		return nil, err
	}

	set := models.NewContributionSet()

	for i, fullRepo := range repos {
		logger.Info(ctx, "procesando repositorio",
			"repositorio", fullRepo, "posición", i+1, "total", len(repos))

		record, err := s.vcs.ResolveRepository(ctx, fullRepo)
		if err != nil {
			logger.Warn(ctx, "falla resolviendo repositorio, salteando",
				"repositorio", fullRepo, "error", err)
			continue
		}

		commits, err := s.vcs.ListRepositoryCommits(ctx, fullRepo, opts.Range, exhaustiveCommitCap)
		if err != nil {
			logger.Warn(ctx, "falla listando commits, salteando repositorio",
				"repositorio", fullRepo, "error", err)
			continue
		}

		set.Commits = append(set.Commits, commits...)
		set.AddRepository(record)
	}

	logger.Info(ctx, "enumeración completada",
		"commits", len(set.Commits),
		"repositorios", len(set.Repositories))
	return set, nil
}

// repositoryList arma la lista de trabajo para las estrategias que la
// consumen: descubrimiento por búsqueda cuando Optimize está activo,
// enumeración completa de la cuenta cuando no. Limit trunca el resultado.
func (s *TrackerService) repositoryList(ctx context.Context, opts models.TrackOptions) ([]string, error) {
	var (
		repos []string
		err   error
	)

	if opts.Optimize {
		repos, err = s.discoverRepositories(ctx, opts.Range, opts.IncludePrivate)
		if err != nil {
			return nil, err
		}
		logger.Info(ctx, "repositorios con contribuciones encontrados", "cantidad", len(repos))
	} else {
		repos, err = s.enumerateRepositories(ctx, opts.IncludePrivate)
		if err != nil {
			return nil, err
		}
		logger.Info(ctx, "procesando todos los repositorios (optimización desactivada)", "cantidad", len(repos))
	}

	if opts.Limit > 0 && len(repos) > opts.Limit {
		repos = repos[:opts.Limit]
		logger.Info(ctx, "lista de repositorios truncada", "límite", opts.Limit)
	}

	return repos, nil
}

// discoverRepositories busca los repos donde el usuario commiteó dentro del
// rango. Si la búsqueda falla, cae una sola vez a enumerar toda la cuenta.
func (s *TrackerService) discoverRepositories(ctx context.Context, r models.DateRange, includePrivate bool) ([]string, error) {
	repos, err := s.vcs.SearchCommitRepositories(ctx, r)
	if err != nil {
		logger.Warn(ctx, "la búsqueda de repositorios falló, enumerando toda la cuenta", "error", err)
		return s.enumerateRepositories(ctx, includePrivate)
	}

	if !includePrivate {
		repos = s.filterPublic(ctx, repos)
		logger.Info(ctx, "repositorios después de filtrar privados", "cantidad", len(repos))
	}

	return repos, nil
}

func (s *TrackerService) enumerateRepositories(ctx context.Context, includePrivate bool) ([]string, error) {
	repos, err := s.vcs.ListOwnedRepositories(ctx)
	if err != nil {
		return nil, err
	}
	if !includePrivate {
		repos = s.filterPublic(ctx, repos)
	}
	return repos, nil
}

// filterPublic resuelve cada repo y se queda con los públicos. Un repo que no
// se puede resolver se asume privado y se descarta.
func (s *TrackerService) filterPublic(ctx context.Context, repos []string) []string {
	var public []string
	for _, fullRepo := range repos {
		record, err := s.vcs.ResolveRepository(ctx, fullRepo)
		if err != nil {
			logger.Warn(ctx, "no se pudo resolver el repositorio, se asume privado",
				"repositorio", fullRepo, "error", err)
			continue
		}
		if !record.Private {
			public = append(public, fullRepo)
		}
	}
	return public
}

func shortRepoName(fullRepo string) string {
	if _, name, ok := strings.Cut(fullRepo, "/"); ok {
		return name
	}
	return fullRepo
}
