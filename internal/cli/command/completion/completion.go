package completion

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mrzacarias/github-contributions-tracker/internal/i18n"
	"github.com/urfave/cli/v3"
)

const bashCompletionScript = `#! /bin/bash

_contrib_tracker_bash_autocomplete() {
  if [[ "${COMP_WORDS[0]}" != "source" ]]; then
    local cur opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"

    local cmd_context=("${COMP_WORDS[@]:0:$COMP_CWORD}")
    opts=$( "${cmd_context[@]}" --generate-shell-completion )

    COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
    return 0
  fi
}

complete -o bashdefault -o default -o nospace -F _contrib_tracker_bash_autocomplete contrib-tracker
`

const zshCompletionScript = `#compdef contrib-tracker

_contrib_tracker() {
  local -a opts
  local cmd_context=("${(@)words[1,$CURRENT-1]}")
  opts=("${(@f)$("${cmd_context[@]}" --generate-shell-completion)}")
  _describe 'values' opts
}

compdef _contrib_tracker contrib-tracker
`

const installInfo = `
# contrib-tracker Shell Completion
if command -v contrib-tracker >/dev/null 2>&1; then
	source <(contrib-tracker completion %s)
fi
`

func NewCompletionCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:  "completion",
		Usage: t.GetMessage("completion_command_usage", 0, nil),
		Commands: []*cli.Command{
			{
				Name:  "bash",
				Usage: t.GetMessage("completion_bash_usage", 0, nil),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					fmt.Print(bashCompletionScript)
					return nil
				},
			},
			{
				Name:  "zsh",
				Usage: t.GetMessage("completion_zsh_usage", 0, nil),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					fmt.Print(zshCompletionScript)
					return nil
				},
			},
			{
				Name:  "install",
				Usage: t.GetMessage("completion_install_usage", 0, nil),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return installCompletion(t)
				},
			},
		},
	}
}

func installCompletion(t *i18n.Translations) error {
	shell := os.Getenv("SHELL")
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("%s", t.GetMessage("completion_error_home_dir", 0, map[string]interface{}{"Error": err.Error()}))
	}

	var configFile string
	var shellName string

	if strings.Contains(shell, "zsh") {
		configFile = filepath.Join(home, ".zshrc")
		shellName = "zsh"
	} else if strings.Contains(shell, "bash") {
		configFile = filepath.Join(home, ".bashrc")
		shellName = "bash"
	} else {
		return fmt.Errorf("%s", t.GetMessage("completion_error_unsupported_shell", 0, map[string]interface{}{"Shell": shell}))
	}

	content := fmt.Sprintf(installInfo, shellName)

	fileContent, err := os.ReadFile(configFile)
	if err == nil && strings.Contains(string(fileContent), "# contrib-tracker Shell Completion") {
		fmt.Println(t.GetMessage("completion_already_installed", 0, map[string]interface{}{"File": configFile}))
		fmt.Printf("  source %s\n", configFile)
		return nil
	}

	f, err := os.OpenFile(configFile, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("%s", t.GetMessage("completion_error_open_config", 0, map[string]interface{}{"Error": err.Error()}))
	}
	defer func() {
		_ = f.Close()
	}()

	if _, err := f.WriteString(content); err != nil {
		return fmt.Errorf("%s", t.GetMessage("completion_error_write_config", 0, map[string]interface{}{"Error": err.Error()}))
	}

	fmt.Println(t.GetMessage("completion_installed", 0, map[string]interface{}{"File": configFile}))
	fmt.Printf("  source %s\n", configFile)

	return nil
}
