package config

import (
	"github.com/mrzacarias/github-contributions-tracker/internal/config"
	"github.com/mrzacarias/github-contributions-tracker/internal/i18n"
	"github.com/urfave/cli/v3"
)

type ConfigCommandFactory struct{}

func NewConfigCommandFactory() *ConfigCommandFactory {
	return &ConfigCommandFactory{}
}

func (c *ConfigCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   t.GetMessage("config_command_usage", 0, nil),
		Commands: []*cli.Command{
			c.newShowCommand(t, cfg),
			c.newSetTokenCommand(t, cfg),
			c.newSetLangCommand(t, cfg),
			c.newSetAPIKeyCommand(t, cfg),
			c.newSetModelCommand(t, cfg),
		},
	}
}
