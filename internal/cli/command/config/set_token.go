package config

import (
	"context"
	"fmt"

	"github.com/mrzacarias/github-contributions-tracker/internal/config"
	"github.com/mrzacarias/github-contributions-tracker/internal/i18n"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetTokenCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "set-token",
		Usage:     t.GetMessage("config_set_token_usage", 0, nil),
		ArgsUsage: "<token>",
		Action: func(ctx context.Context, command *cli.Command) error {
			token := command.Args().First()
			if token == "" {
				return fmt.Errorf("%s", t.GetMessage("config_value_required", 0, nil))
			}

			cfg.GitHubToken = token
			if err := config.SaveConfig(cfg); err != nil {
				return fmt.Errorf("%s: %w", t.GetMessage("error_save_config", 0, nil), err)
			}

			fmt.Println(t.GetMessage("config_updated", 0, nil))
			return nil
		},
	}
}
