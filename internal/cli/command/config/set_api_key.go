package config

import (
	"context"
	"fmt"

	"github.com/mrzacarias/github-contributions-tracker/internal/config"
	"github.com/mrzacarias/github-contributions-tracker/internal/i18n"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetAPIKeyCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "set-api-key",
		Usage:     t.GetMessage("config_set_api_key_usage", 0, nil),
		ArgsUsage: "<api-key>",
		Action: func(ctx context.Context, command *cli.Command) error {
			key := command.Args().First()
			if key == "" {
				return fmt.Errorf("%s", t.GetMessage("config_value_required", 0, nil))
			}

			cfg.GeminiAPIKey = key
			if err := config.SaveConfig(cfg); err != nil {
				return fmt.Errorf("%s: %w", t.GetMessage("error_save_config", 0, nil), err)
			}

			fmt.Println(t.GetMessage("config_updated", 0, nil))
			return nil
		},
	}
}
