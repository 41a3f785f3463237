package ports

import "context"

// ContributionSummarizer es el colaborador de IA: recibe el reporte markdown
// completo y devuelve el texto reescrito según el template fijo.
type ContributionSummarizer interface {
	SummarizeContributions(ctx context.Context, report string) (string, error)
}
