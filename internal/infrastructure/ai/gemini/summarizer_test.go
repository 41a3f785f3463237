package gemini

import (
	"strings"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
)

func TestBuildSummaryPrompt(t *testing.T) {
	t.Run("incrusta el reporte completo", func(t *testing.T) {
		report := "# GitHub Contributions Summary\n\n- **Total Commits**: 3"

		prompt := buildSummaryPrompt(report)

		assert.True(t, strings.HasPrefix(prompt, "Hi, would you create a more succinct summary"))
		assert.Contains(t, prompt, report)
		assert.Contains(t, prompt, "## High-Level Tasks Completed")
		assert.Contains(t, prompt, "## Key Achievements")
		assert.Contains(t, prompt, "## Impact")
	})
}

func TestFormatResponse(t *testing.T) {
	t.Run("respuesta nil devuelve vacío", func(t *testing.T) {
		assert.Empty(t, formatResponse(nil))
	})

	t.Run("sin candidatos devuelve vacío", func(t *testing.T) {
		assert.Empty(t, formatResponse(&genai.GenerateContentResponse{}))
	})

	t.Run("candidato sin contenido se saltea", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{Content: nil}},
		}
		assert.Empty(t, formatResponse(resp))
	})

	t.Run("concatena las partes de texto", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{
				{
					Content: &genai.Content{
						Parts: []genai.Part{
							genai.Text("## Overview\n"),
							genai.Text("- **Total Commits**: 3"),
						},
					},
				},
			},
		}

		assert.Equal(t, "## Overview\n- **Total Commits**: 3", formatResponse(resp))
	})
}
