package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTranslations(t *testing.T) {
	t.Run("arranca con los mensajes embebidos en inglés", func(t *testing.T) {
		trans, err := NewTranslations("en", "")

		require.NoError(t, err)
		msg := trans.GetMessage("track_command_usage", 0, nil)
		assert.Equal(t, "Fetch contributions and render a summary", msg)
	})

	t.Run("carga los locales activos del directorio", func(t *testing.T) {
		trans, err := NewTranslations("es", "locales")

		require.NoError(t, err)
		msg := trans.GetMessage("generating_ai_summary", 0, nil)
		assert.NotContains(t, msg, "Translation missing")
		assert.NotEqual(t, "Generating AI-powered summary with Gemini...", msg)
	})
}

func TestSetLanguage(t *testing.T) {
	t.Run("cambia a un idioma cargado", func(t *testing.T) {
		trans, err := NewTranslations("en", "locales")
		require.NoError(t, err)

		require.NoError(t, trans.SetLanguage("es"))
		msg := trans.GetMessage("config_updated", 0, nil)
		assert.NotEqual(t, "Configuration updated", msg)
	})

	t.Run("idioma desconocido falla", func(t *testing.T) {
		trans, err := NewTranslations("en", "")
		require.NoError(t, err)

		assert.Error(t, trans.SetLanguage("fr"))
	})
}

func TestGetMessage(t *testing.T) {
	trans, err := NewTranslations("en", "")
	require.NoError(t, err)

	t.Run("interpola los datos del template", func(t *testing.T) {
		msg := trans.GetMessage("summary_saved", 0, map[string]interface{}{
			"File": "github_contributions_20240101_120000.md",
		})

		assert.Equal(t, "Summary saved to: github_contributions_20240101_120000.md", msg)
	})

	t.Run("mensaje inexistente devuelve el marcador", func(t *testing.T) {
		msg := trans.GetMessage("no_existe", 0, nil)

		assert.Equal(t, "Translation missing: no_existe", msg)
	})
}
