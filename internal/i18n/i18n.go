package i18n

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

// NewTranslations arma el bundle con los mensajes default en inglés y carga
// los locales activos desde localesPath (si se pasa).
func NewTranslations(defaultLang string, localesPath string) (*Translations, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	bundle.MustParseMessageFileBytes([]byte(defaultMessages), "default.en.toml")

	if localesPath != "" {
		files, err := filepath.Glob(filepath.Join(localesPath, "active.*.toml"))
		if err != nil {
			return nil, fmt.Errorf("error reading locales: %w", err)
		}

		for _, file := range files {
			if _, err := bundle.LoadMessageFile(file); err != nil {
				return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
			}
		}
	}

	localize := i18n.NewLocalizer(bundle, defaultLang)

	return &Translations{
		bundle:   bundle,
		localize: localize,
	}, nil
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

func (t *Translations) GetMessage(messageID string, count int, templateData map[string]interface{}) string {
	localized, err := t.localize.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID: messageID,
		},
		PluralCount:  count,
		TemplateData: templateData,
	})
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}

var defaultMessages = `
	[app_usage]
	other = "Track your GitHub contributions over a date range"

	[app_description]
	other = "Fetches commits for an account between two dates, renders a summary and can ask Gemini to rewrite it into a high-level report"

	[help_command_usage]
	other = "Shows help"

	[track_command_usage]
	other = "Fetch contributions and render a summary"

	[track_command_description]
	other = "Queries GitHub for your commits between --since and --until using the selected acquisition strategy"

	[flag_since_usage]
	other = "Start date (YYYY-MM-DD or RFC3339)"

	[flag_until_usage]
	other = "End date (YYYY-MM-DD or RFC3339)"

	[flag_include_private_usage]
	other = "Include private repositories"

	[flag_repos_only_usage]
	other = "Show only repositories with contributions"

	[flag_no_optimize_usage]
	other = "Disable repository discovery and process every owned repository"

	[flag_limit_usage]
	other = "Limit the number of repositories to process (0 = no limit)"

	[flag_bulk_usage]
	other = "Use the bulk search strategy (one search query for everything)"

	[flag_graphql_usage]
	other = "Use the GraphQL batch strategy"

	[flag_conservative_usage]
	other = "Use the conservative chunked strategy (rate-limit safe)"

	[flag_format_usage]
	other = "Output format: markdown or plain"

	[flag_output_usage]
	other = "Output file name"

	[flag_print_only_usage]
	other = "Print to console only, don't save to a file"

	[flag_username_usage]
	other = "GitHub username to track (default: authenticated user)"

	[flag_ai_usage]
	other = "Generate an AI-powered summary with Gemini"

	[flag_ai_model_usage]
	other = "Gemini model to use for summarization"

	[error_invalid_date]
	other = "Invalid date format: {{.Value}}"

	[error_invalid_format]
	other = "Invalid format '{{.Value}}': use markdown or plain"

	[tracking_user]
	other = "Tracking contributions for user: {{.User}}"

	[fetching_contributions]
	other = "Fetching contributions from {{.Start}} to {{.End}}..."

	[generating_ai_summary]
	other = "Generating AI-powered summary with Gemini..."

	[ai_summary_failed]
	other = "AI summarization failed, embedding the original report: {{.Error}}"

	[summary_saved]
	other = "Summary saved to: {{.File}}"

	[config_command_usage]
	other = "Manage contrib-tracker configuration"

	[config_show_usage]
	other = "Show the current configuration"

	[config_set_token_usage]
	other = "Set the GitHub personal access token"

	[config_set_lang_usage]
	other = "Set the interface language"

	[config_set_api_key_usage]
	other = "Set the Gemini API key"

	[config_set_model_usage]
	other = "Set the Gemini model"

	[config_updated]
	other = "Configuration updated"

	[current_config]
	other = "Current configuration"

	[config_language_set]
	other = "Language set to: {{.Lang}}"

	[config_value_required]
	other = "A value is required"

	[error_save_config]
	other = "Error saving configuration"

	[error_missing_api_key]
	other = "Gemini API key is not configured. Run 'contrib-tracker config set-api-key' or set GEMINI_API_KEY"

	[error_empty_report]
	other = "The report to summarize is empty"

	[error_generating_content]
	other = "Error generating content: {{.Error}}"

	[error_empty_ai_response]
	other = "Empty response from the AI"

	[factory_already_registered]
	other = "Command factory '{{.FactoryName}}' is already registered"

	[completion_command_usage]
	other = "Generate shell completion scripts"

	[completion_bash_usage]
	other = "Print the bash completion script"

	[completion_zsh_usage]
	other = "Print the zsh completion script"

	[completion_install_usage]
	other = "Install completion into your shell config file"

	[completion_error_home_dir]
	other = "Could not resolve the home directory: {{.Error}}"

	[completion_error_unsupported_shell]
	other = "Unsupported shell: {{.Shell}}"

	[completion_already_installed]
	other = "Completion is already installed in {{.File}}"

	[completion_error_open_config]
	other = "Could not open the shell config file: {{.Error}}"

	[completion_error_write_config]
	other = "Could not write the shell config file: {{.Error}}"

	[completion_installed]
	other = "Completion installed in {{.File}}"
	`
