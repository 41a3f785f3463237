package services

import (
	"context"
	"fmt"

	"github.com/mrzacarias/github-contributions-tracker/internal/config"
	"github.com/mrzacarias/github-contributions-tracker/internal/domain/models"
	"github.com/mrzacarias/github-contributions-tracker/internal/domain/ports"
	"github.com/mrzacarias/github-contributions-tracker/internal/logger"
)

// SummaryService produce el resumen de alto nivel generado por IA a partir
// del dataset de contribuciones.
type SummaryService struct {
	summarizer ports.ContributionSummarizer
}

func NewSummaryService(summarizer ports.ContributionSummarizer) *SummaryService {
	return &SummaryService{summarizer: summarizer}
}

// SummarizeWithAI renderiza el reporte, lo pasa por el colaborador de IA y le
// inyecta la sección de tareas de bajo nivel. Una falla de la IA nunca tira
// el resultado: el error queda embebido junto al reporte original.
func (s *SummaryService) SummarizeWithAI(ctx context.Context, set *models.ContributionSet) string {
	report := RenderSummary(set, config.FormatMarkdown)

	summary, err := s.summarizer.SummarizeContributions(ctx, report)
	if err != nil {
		logger.Warn(ctx, "falla generando el resumen con IA, embebiendo el reporte original", "error", err)
		summary = fmt.Sprintf("Error generating summary: %v\n\nOriginal contributions:\n%s", err, report)
	}

	return InjectLowLevelTasks(summary, RenderLowLevelTasks(set))
}
