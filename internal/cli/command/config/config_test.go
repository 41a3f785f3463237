package config

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/mrzacarias/github-contributions-tracker/internal/config"
	"github.com/mrzacarias/github-contributions-tracker/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func setupConfigTest(t *testing.T) (*config.Config, *i18n.Translations, string) {
	t.Helper()

	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.json")

	cfg := &config.Config{
		Language:      "en",
		DefaultFormat: config.FormatMarkdown,
		GeminiModel:   "gemini-1.5-flash",
		PathFile:      configPath,
	}
	require.NoError(t, config.SaveConfig(cfg))

	trans, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)

	return cfg, trans, configPath
}

func newConfigApp(trans *i18n.Translations, cfg *config.Config) *cli.Command {
	factory := NewConfigCommandFactory()
	return &cli.Command{Commands: []*cli.Command{factory.CreateCommand(trans, cfg)}}
}

func TestSetTokenCommand(t *testing.T) {
	t.Run("guarda el token", func(t *testing.T) {
		cfg, trans, configPath := setupConfigTest(t)
		app := newConfigApp(trans, cfg)

		err := app.Run(context.Background(), []string{"contrib-tracker", "config", "set-token", "ghp_nuevo"})
		require.NoError(t, err)

		reloaded, err := config.LoadConfig(configPath)
		require.NoError(t, err)
		assert.Equal(t, "ghp_nuevo", reloaded.GitHubToken)
	})

	t.Run("sin valor falla", func(t *testing.T) {
		cfg, trans, _ := setupConfigTest(t)
		app := newConfigApp(trans, cfg)

		err := app.Run(context.Background(), []string{"contrib-tracker", "config", "set-token"})

		assert.ErrorContains(t, err, "A value is required")
	})
}

func TestSetLangCommand(t *testing.T) {
	t.Run("cambia a un idioma soportado", func(t *testing.T) {
		cfg, trans, configPath := setupConfigTest(t)
		app := newConfigApp(trans, cfg)

		err := app.Run(context.Background(), []string{"contrib-tracker", "config", "set-lang", "--lang", "es"})
		require.NoError(t, err)

		reloaded, err := config.LoadConfig(configPath)
		require.NoError(t, err)
		assert.Equal(t, "es", reloaded.Language)
	})

	t.Run("idioma no soportado falla sin guardar", func(t *testing.T) {
		cfg, trans, configPath := setupConfigTest(t)
		app := newConfigApp(trans, cfg)

		err := app.Run(context.Background(), []string{"contrib-tracker", "config", "set-lang", "--lang", "fr"})
		assert.Error(t, err)

		reloaded, err := config.LoadConfig(configPath)
		require.NoError(t, err)
		assert.Equal(t, "en", reloaded.Language)
	})
}

func TestSetAPIKeyCommand(t *testing.T) {
	cfg, trans, configPath := setupConfigTest(t)
	app := newConfigApp(trans, cfg)

	err := app.Run(context.Background(), []string{"contrib-tracker", "config", "set-api-key", "clave-nueva"})
	require.NoError(t, err)

	reloaded, err := config.LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, "clave-nueva", reloaded.GeminiAPIKey)
}

func TestSetModelCommand(t *testing.T) {
	cfg, trans, configPath := setupConfigTest(t)
	app := newConfigApp(trans, cfg)

	err := app.Run(context.Background(), []string{"contrib-tracker", "config", "set-model", "gemini-1.5-pro"})
	require.NoError(t, err)

	reloaded, err := config.LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, "gemini-1.5-pro", reloaded.GeminiModel)
}

func TestShowCommand(t *testing.T) {
	cfg, trans, _ := setupConfigTest(t)
	cfg.GitHubToken = "ghp_supersecreto"
	app := newConfigApp(trans, cfg)

	err := app.Run(context.Background(), []string{"contrib-tracker", "config", "show"})

	assert.NoError(t, err)
}

func TestMaskSecret(t *testing.T) {
	assert.Equal(t, "(not set)", maskSecret(""))
	assert.Equal(t, "****", maskSecret("abc"))
	assert.Equal(t, "****reto", maskSecret("ghp_supersecreto"))
}
