package track

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mrzacarias/github-contributions-tracker/internal/config"
	"github.com/mrzacarias/github-contributions-tracker/internal/domain/models"
	"github.com/mrzacarias/github-contributions-tracker/internal/domain/ports"
	"github.com/mrzacarias/github-contributions-tracker/internal/i18n"
	"github.com/mrzacarias/github-contributions-tracker/internal/infrastructure/ai/gemini"
	"github.com/mrzacarias/github-contributions-tracker/internal/infrastructure/vcs/github"
	"github.com/mrzacarias/github-contributions-tracker/internal/services"
	"github.com/mrzacarias/github-contributions-tracker/internal/ui"
	"github.com/urfave/cli/v3"
)

// TrackerProvider arma el tracker con las credenciales resueltas.
type TrackerProvider func(token, username string) (ports.ContributionTracker, error)

// SummarizerProvider arma el colaborador de IA.
type SummarizerProvider func(ctx context.Context, cfg *config.Config, t *i18n.Translations) (ports.ContributionSummarizer, error)

type TrackCommandFactory struct {
	newTracker    TrackerProvider
	newSummarizer SummarizerProvider
}

func NewTrackCommandFactory() *TrackCommandFactory {
	return &TrackCommandFactory{
		newTracker: func(token, username string) (ports.ContributionTracker, error) {
			client, err := github.NewClient(token, username)
			if err != nil {
				return nil, err
			}
			history, err := github.NewHistoryClient(token)
			if err != nil {
				return nil, err
			}
			return services.NewTrackerService(client, history), nil
		},
		newSummarizer: func(ctx context.Context, cfg *config.Config, t *i18n.Translations) (ports.ContributionSummarizer, error) {
			return gemini.NewGeminiSummarizer(ctx, cfg, t)
		},
	}
}

// NewTrackCommandFactoryWithServices inyecta los providers, para tests.
func NewTrackCommandFactoryWithServices(newTracker TrackerProvider, newSummarizer SummarizerProvider) *TrackCommandFactory {
	return &TrackCommandFactory{
		newTracker:    newTracker,
		newSummarizer: newSummarizer,
	}
}

func (f *TrackCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:        "track",
		Aliases:     []string{"t"},
		Usage:       t.GetMessage("track_command_usage", 0, nil),
		Description: t.GetMessage("track_command_description", 0, nil),
		Flags:       f.createFlags(cfg, t),
		Action:      f.createAction(cfg, t),
	}
}

func (f *TrackCommandFactory) createFlags(cfg *config.Config, t *i18n.Translations) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "since",
			Aliases:  []string{"s"},
			Usage:    t.GetMessage("flag_since_usage", 0, nil),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "until",
			Aliases:  []string{"e"},
			Usage:    t.GetMessage("flag_until_usage", 0, nil),
			Required: true,
		},
		&cli.BoolFlag{
			Name:    "include-private",
			Aliases: []string{"p"},
			Usage:   t.GetMessage("flag_include_private_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "repos-only",
			Usage: t.GetMessage("flag_repos_only_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "no-optimize",
			Usage: t.GetMessage("flag_no_optimize_usage", 0, nil),
		},
		&cli.IntFlag{
			Name:    "limit",
			Aliases: []string{"l"},
			Usage:   t.GetMessage("flag_limit_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "bulk",
			Usage: t.GetMessage("flag_bulk_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "graphql",
			Usage: t.GetMessage("flag_graphql_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "conservative",
			Usage: t.GetMessage("flag_conservative_usage", 0, nil),
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   t.GetMessage("flag_format_usage", 0, nil),
			Value:   cfg.DefaultFormat,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   t.GetMessage("flag_output_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "print-only",
			Usage: t.GetMessage("flag_print_only_usage", 0, nil),
		},
		&cli.StringFlag{
			Name:    "username",
			Aliases: []string{"u"},
			Usage:   t.GetMessage("flag_username_usage", 0, nil),
			Value:   cfg.Username,
		},
		&cli.BoolFlag{
			Name:  "ai",
			Usage: t.GetMessage("flag_ai_usage", 0, nil),
		},
		&cli.StringFlag{
			Name:  "ai-model",
			Usage: t.GetMessage("flag_ai_model_usage", 0, nil),
		},
	}
}

func (f *TrackCommandFactory) createAction(cfg *config.Config, t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		since, err := parseDate(command.String("since"))
		if err != nil {
			return fmt.Errorf("%s", t.GetMessage("error_invalid_date", 0, map[string]interface{}{
				"Value": command.String("since"),
			}))
		}
		until, err := parseDate(command.String("until"))
		if err != nil {
			return fmt.Errorf("%s", t.GetMessage("error_invalid_date", 0, map[string]interface{}{
				"Value": command.String("until"),
			}))
		}

		format := command.String("format")
		if format != config.FormatMarkdown && format != config.FormatPlain {
			return fmt.Errorf("%s", t.GetMessage("error_invalid_format", 0, map[string]interface{}{
				"Value": format,
			}))
		}

		username := command.String("username")
		tracker, err := f.newTracker(cfg.ResolveGitHubToken(), username)
		if err != nil {
			return err
		}

		if username != "" {
			ui.PrintInfo(t.GetMessage("tracking_user", 0, map[string]interface{}{"User": username}))
		}
		ui.PrintInfo(t.GetMessage("fetching_contributions", 0, map[string]interface{}{
			"Start": since.Format("2006-01-02"),
			"End":   until.Format("2006-01-02"),
		}))

		opts := models.TrackOptions{
			Range:          models.DateRange{Start: since, End: until},
			IncludePrivate: command.Bool("include-private"),
			Strategy: models.ResolveStrategy(
				command.Bool("conservative"),
				command.Bool("bulk"),
				command.Bool("graphql"),
			),
			Optimize: !command.Bool("no-optimize"),
			Limit:    int(command.Int("limit")),
		}

		set, err := tracker.GetContributions(ctx, opts)
		if err != nil {
			return err
		}

		var summary string
		switch {
		case command.Bool("ai"):
			summary, err = f.summarizeWithAI(ctx, cfg, t, command.String("ai-model"), set)
			if err != nil {
				return err
			}
		case command.Bool("repos-only"):
			summary = services.RenderReposOnly(set, format)
		default:
			summary = services.RenderSummary(set, format)
		}

		if command.Bool("print-only") {
			ui.PrintReport(summary)
			return nil
		}

		filename, err := saveSummary(summary, command.String("output"))
		if err != nil {
			return err
		}
		ui.PrintSuccess(t.GetMessage("summary_saved", 0, map[string]interface{}{"File": filename}))
		ui.PrintReport("\n" + summary)
		return nil
	}
}

func (f *TrackCommandFactory) summarizeWithAI(ctx context.Context, cfg *config.Config, t *i18n.Translations, model string, set *models.ContributionSet) (string, error) {
	if model != "" {
		cfg.GeminiModel = model
	}

	summarizer, err := f.newSummarizer(ctx, cfg, t)
	if err != nil {
		return "", err
	}

	spin := ui.NewWaitSpinner(t.GetMessage("generating_ai_summary", 0, nil))
	spin.Start()
	defer spin.Stop()

	return services.NewSummaryService(summarizer).SummarizeWithAI(ctx, set), nil
}

// parseDate acepta fechas cortas (YYYY-MM-DD, interpretadas en UTC) o
// timestamps RFC3339 completos.
func parseDate(value string) (time.Time, error) {
	if parsed, err := time.Parse("2006-01-02", value); err == nil {
		return parsed.UTC(), nil
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return parsed.UTC(), nil
}

func saveSummary(summary, filename string) (string, error) {
	if filename == "" {
		timestamp := time.Now().Format("20060102_150405")
		filename = fmt.Sprintf("github_contributions_%s.md", timestamp)
	}

	if err := os.WriteFile(filename, []byte(summary), 0644); err != nil {
		return "", fmt.Errorf("error al guardar el resumen: %w", err)
	}
	return filename, nil
}
