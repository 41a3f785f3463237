package config

import (
	"context"
	"fmt"

	"github.com/mrzacarias/github-contributions-tracker/internal/config"
	"github.com/mrzacarias/github-contributions-tracker/internal/i18n"
	"github.com/mrzacarias/github-contributions-tracker/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newShowCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("config_show_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			ui.PrintInfo(t.GetMessage("current_config", 0, nil))
			fmt.Printf("  language: %s\n", cfg.Language)
			fmt.Printf("  default_format: %s\n", cfg.DefaultFormat)
			fmt.Printf("  username: %s\n", cfg.Username)
			fmt.Printf("  github_token: %s\n", maskSecret(cfg.GitHubToken))
			fmt.Printf("  gemini_api_key: %s\n", maskSecret(cfg.GeminiAPIKey))
			fmt.Printf("  gemini_model: %s\n", cfg.GeminiModel)
			fmt.Printf("  config_file: %s\n", cfg.PathFile)
			return nil
		},
	}
}

// maskSecret deja visibles solo los últimos 4 caracteres.
func maskSecret(value string) string {
	if value == "" {
		return "(not set)"
	}
	if len(value) <= 4 {
		return "****"
	}
	return "****" + value[len(value)-4:]
}
