package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/mrzacarias/github-contributions-tracker/internal/cli/command/completion"
	configcmd "github.com/mrzacarias/github-contributions-tracker/internal/cli/command/config"
	"github.com/mrzacarias/github-contributions-tracker/internal/cli/command/track"
	"github.com/mrzacarias/github-contributions-tracker/internal/cli/registry"
	cfg "github.com/mrzacarias/github-contributions-tracker/internal/config"
	"github.com/mrzacarias/github-contributions-tracker/internal/i18n"
	"github.com/mrzacarias/github-contributions-tracker/internal/logger"
	"github.com/mrzacarias/github-contributions-tracker/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Error iniciando la cli: %v", err)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func initializeApp() (*cli.Command, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("no se pudo obtener el directorio del usuario: %w", err)
	}

	cfgApp, err := cfg.LoadConfig(homeDir)
	if err != nil {
		return nil, err
	}

	translations, err := i18n.NewTranslations(cfgApp.Language, "")
	if err != nil {
		return nil, fmt.Errorf("error al cargar las traducciones: %w", err)
	}

	logger.Initialize(os.Getenv("CONTRIB_TRACKER_DEBUG") != "", os.Getenv("CONTRIB_TRACKER_VERBOSE") != "")

	registerCommand := registry.NewRegistry(cfgApp, translations)

	if err := registerCommand.Register("track", track.NewTrackCommandFactory()); err != nil {
		return nil, fmt.Errorf("error al registrar el comando 'track': %w", err)
	}

	if err := registerCommand.Register("config", configcmd.NewConfigCommandFactory()); err != nil {
		return nil, fmt.Errorf("error al registrar el comando 'config': %w", err)
	}

	commands := registerCommand.CreateCommands()

	helpCommand := &cli.Command{
		Name:    "help",
		Aliases: []string{"h"},
		Usage:   translations.GetMessage("help_command_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
	}
	commands = append(commands, helpCommand, completion.NewCompletionCommand(translations))

	return &cli.Command{
		Name:                  "contrib-tracker",
		Usage:                 translations.GetMessage("app_usage", 0, nil),
		Version:               version.Version,
		Description:           translations.GetMessage("app_description", 0, nil),
		Commands:              commands,
		EnableShellCompletion: true,
	}, nil
}
