package config

import (
	"context"
	"fmt"

	"github.com/mrzacarias/github-contributions-tracker/internal/config"
	"github.com/mrzacarias/github-contributions-tracker/internal/i18n"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetModelCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "set-model",
		Usage:     t.GetMessage("config_set_model_usage", 0, nil),
		ArgsUsage: "<model>",
		Action: func(ctx context.Context, command *cli.Command) error {
			model := command.Args().First()
			if model == "" {
				return fmt.Errorf("%s", t.GetMessage("config_value_required", 0, nil))
			}

			cfg.GeminiModel = model
			if err := config.SaveConfig(cfg); err != nil {
				return fmt.Errorf("%s: %w", t.GetMessage("error_save_config", 0, nil), err)
			}

			fmt.Println(t.GetMessage("config_updated", 0, nil))
			return nil
		},
	}
}
