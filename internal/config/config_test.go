package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("primera corrida crea la configuración por defecto", func(t *testing.T) {
		tempDir := t.TempDir()

		cfg, err := LoadConfig(tempDir)

		require.NoError(t, err)
		assert.Equal(t, "en", cfg.Language)
		assert.Equal(t, FormatMarkdown, cfg.DefaultFormat)
		assert.Equal(t, "gemini-1.5-flash", cfg.GeminiModel)
		assert.FileExists(t, filepath.Join(tempDir, ".contrib-tracker", "config.json"))
	})

	t.Run("carga un archivo existente", func(t *testing.T) {
		tempDir := t.TempDir()
		configPath := filepath.Join(tempDir, "config.json")

		seed := Config{
			Language:      "es",
			DefaultFormat: FormatPlain,
			GitHubToken:   "ghp_token",
			Username:      "octocat",
			GeminiModel:   "gemini-1.5-pro",
		}
		data, err := json.Marshal(seed)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(configPath, data, 0600))

		cfg, err := LoadConfig(configPath)

		require.NoError(t, err)
		assert.Equal(t, "es", cfg.Language)
		assert.Equal(t, FormatPlain, cfg.DefaultFormat)
		assert.Equal(t, "ghp_token", cfg.GitHubToken)
		assert.Equal(t, "octocat", cfg.Username)
		assert.Equal(t, configPath, cfg.PathFile)
	})

	t.Run("configuración inválida falla al cargar", func(t *testing.T) {
		tempDir := t.TempDir()
		configPath := filepath.Join(tempDir, "config.json")
		require.NoError(t, os.WriteFile(configPath, []byte(`{"language":"en","default_format":"xml","gemini_model":"m"}`), 0600))

		_, err := LoadConfig(configPath)

		assert.ErrorContains(t, err, "formato no soportado")
	})

	t.Run("JSON corrupto falla al cargar", func(t *testing.T) {
		tempDir := t.TempDir()
		configPath := filepath.Join(tempDir, "config.json")
		require.NoError(t, os.WriteFile(configPath, []byte("{no es json"), 0600))

		_, err := LoadConfig(configPath)

		assert.Error(t, err)
	})
}

func TestSaveConfig(t *testing.T) {
	t.Run("persiste los cambios", func(t *testing.T) {
		tempDir := t.TempDir()

		cfg, err := LoadConfig(tempDir)
		require.NoError(t, err)

		cfg.GitHubToken = "ghp_nuevo"
		cfg.Language = "es"
		require.NoError(t, SaveConfig(cfg))

		reloaded, err := LoadConfig(cfg.PathFile)
		require.NoError(t, err)
		assert.Equal(t, "ghp_nuevo", reloaded.GitHubToken)
		assert.Equal(t, "es", reloaded.Language)
	})

	t.Run("sin ruta de archivo falla", func(t *testing.T) {
		cfg := &Config{Language: "en", DefaultFormat: FormatMarkdown, GeminiModel: "m"}

		err := SaveConfig(cfg)

		assert.ErrorContains(t, err, "ruta del archivo")
	})

	t.Run("configuración inválida no se guarda", func(t *testing.T) {
		cfg := &Config{Language: "", DefaultFormat: FormatMarkdown, GeminiModel: "m", PathFile: "x.json"}

		err := SaveConfig(cfg)

		assert.ErrorContains(t, err, "language")
	})
}

func TestResolveGitHubToken(t *testing.T) {
	t.Run("la variable de entorno tiene precedencia", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "ghp_env")
		cfg := &Config{GitHubToken: "ghp_archivo"}

		assert.Equal(t, "ghp_env", cfg.ResolveGitHubToken())
	})

	t.Run("sin variable usa el archivo", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "")
		cfg := &Config{GitHubToken: "ghp_archivo"}

		assert.Equal(t, "ghp_archivo", cfg.ResolveGitHubToken())
	})
}

func TestResolveGeminiKey(t *testing.T) {
	t.Run("la variable de entorno tiene precedencia", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "key_env")
		cfg := &Config{GeminiAPIKey: "key_archivo"}

		assert.Equal(t, "key_env", cfg.ResolveGeminiKey())
	})

	t.Run("sin variable usa el archivo", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "")
		cfg := &Config{GeminiAPIKey: "key_archivo"}

		assert.Equal(t, "key_archivo", cfg.ResolveGeminiKey())
	})
}
