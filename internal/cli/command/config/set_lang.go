package config

import (
	"context"
	"fmt"

	"github.com/mrzacarias/github-contributions-tracker/internal/config"
	"github.com/mrzacarias/github-contributions-tracker/internal/i18n"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetLangCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "set-lang",
		Usage: t.GetMessage("config_set_lang_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "lang",
				Aliases:  []string{"l"},
				Required: true,
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			lang := command.String("lang")
			if lang != "en" && lang != "es" {
				return fmt.Errorf("language '%s' not supported", lang)
			}

			cfg.Language = lang
			if err := config.SaveConfig(cfg); err != nil {
				return fmt.Errorf("%s: %w", t.GetMessage("error_save_config", 0, nil), err)
			}

			fmt.Println(t.GetMessage("config_language_set", 0, map[string]interface{}{"Lang": lang}))
			return nil
		},
	}
}
