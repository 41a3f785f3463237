package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/mrzacarias/github-contributions-tracker/internal/config"
	"github.com/mrzacarias/github-contributions-tracker/internal/domain/ports"
	"github.com/mrzacarias/github-contributions-tracker/internal/i18n"
	"github.com/mrzacarias/github-contributions-tracker/internal/infrastructure/ai"
	"google.golang.org/api/option"
)

var _ ports.ContributionSummarizer = (*GeminiSummarizer)(nil)

// GeminiSummarizer genera el resumen de alto nivel de las contribuciones
// usando la API de Gemini.
type GeminiSummarizer struct {
	client *genai.Client
	config *config.Config
	trans  *i18n.Translations
}

func NewGeminiSummarizer(ctx context.Context, cfg *config.Config, trans *i18n.Translations) (*GeminiSummarizer, error) {
	if cfg.ResolveGeminiKey() == "" {
		msg := trans.GetMessage("error_missing_api_key", 0, nil)
		return nil, fmt.Errorf("%s", msg)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.ResolveGeminiKey()))
	if err != nil {
		return nil, fmt.Errorf("error al crear el cliente de gemini: %w", err)
	}

	return &GeminiSummarizer{
		client: client,
		config: cfg,
		trans:  trans,
	}, nil
}

func (s *GeminiSummarizer) SummarizeContributions(ctx context.Context, report string) (string, error) {
	if strings.TrimSpace(report) == "" {
		msg := s.trans.GetMessage("error_empty_report", 0, nil)
		return "", fmt.Errorf("%s", msg)
	}

	prompt := buildSummaryPrompt(report)
	model := s.client.GenerativeModel(s.config.GeminiModel)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		msg := s.trans.GetMessage("error_generating_content", 0, map[string]interface{}{
			"Error": err.Error(),
		})
		return "", fmt.Errorf("%s", msg)
	}

	summary := formatResponse(resp)
	if summary == "" {
		msg := s.trans.GetMessage("error_empty_ai_response", 0, nil)
		return "", fmt.Errorf("%s", msg)
	}

	return summary, nil
}

// Close libera el cliente subyacente.
func (s *GeminiSummarizer) Close() error {
	return s.client.Close()
}

func buildSummaryPrompt(report string) string {
	return fmt.Sprintf(ai.GetSummaryPromptTemplate(), report)
}

// formatResponse concatena las partes de texto de la respuesta de Gemini.
func formatResponse(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}

	var formattedContent strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				formattedContent.WriteString(string(text))
			}
		}
	}
	return strings.TrimSpace(formattedContent.String())
}
