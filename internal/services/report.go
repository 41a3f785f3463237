package services

import (
	"fmt"
	"strings"

	"github.com/mrzacarias/github-contributions-tracker/internal/config"
	"github.com/mrzacarias/github-contributions-tracker/internal/domain/models"
)

// emptyLowLevelSection es el texto fijo cuando no hay commits que listar.
const emptyLowLevelSection = "## Low-Level Tasks\n\nNo commits found in the specified time period."

// RenderSummary arma el reporte completo de contribuciones. El formato de
// salida es parte del contrato: otros consumidores parsean estos encabezados,
// así que los literales no se tocan.
func RenderSummary(set *models.ContributionSet, format string) string {
	if format == config.FormatPlain {
		return renderSummaryPlain(set)
	}
	return renderSummaryMarkdown(set)
}

func renderSummaryMarkdown(set *models.ContributionSet) string {
	var lines []string

	lines = append(lines, "# GitHub Contributions Summary\n")
	lines = append(lines, "## Overview")
	lines = append(lines, fmt.Sprintf("- **Total Commits**: %d", len(set.Commits)))
	lines = append(lines, fmt.Sprintf("- **Repositories with Contributions**: %d\n", len(set.Repositories)))

	if len(set.Commits) > 0 {
		lines = append(lines, "## Commits")
		for _, commit := range set.Commits {
			lines = append(lines, fmt.Sprintf("- **%s**: %s (%s)", commit.Repository, commit.Message, commit.SHA))
		}
		lines = append(lines, "")
	}

	if len(set.Repositories) > 0 {
		lines = append(lines, "## Repositories with Contributions")
		for _, repo := range set.Repositories {
			visibility := "🌐 Public"
			if repo.Private {
				visibility = "🔒 Private"
			}
			lines = append(lines, fmt.Sprintf("- **%s** (%s)", repo.Name, visibility))
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

func renderSummaryPlain(set *models.ContributionSet) string {
	var lines []string

	lines = append(lines, "GITHUB CONTRIBUTIONS SUMMARY")
	lines = append(lines, strings.Repeat("=", 40))
	lines = append(lines, "")
	lines = append(lines, "OVERVIEW")
	lines = append(lines, strings.Repeat("-", 10))
	lines = append(lines, fmt.Sprintf("Total Commits: %d", len(set.Commits)))
	lines = append(lines, fmt.Sprintf("Repositories with Contributions: %d", len(set.Repositories)))
	lines = append(lines, "")

	if len(set.Commits) > 0 {
		lines = append(lines, "COMMITS")
		lines = append(lines, strings.Repeat("-", 10))
		for _, commit := range set.Commits {
			lines = append(lines, fmt.Sprintf("- %s: %s (%s)", commit.Repository, commit.Message, commit.SHA))
		}
		lines = append(lines, "")
	}

	if len(set.Repositories) > 0 {
		lines = append(lines, "REPOSITORIES WITH CONTRIBUTIONS")
		lines = append(lines, strings.Repeat("-", 32))
		for _, repo := range set.Repositories {
			visibility := "Public"
			if repo.Private {
				visibility = "Private"
			}
			lines = append(lines, fmt.Sprintf("- %s (%s)", repo.Name, visibility))
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

// RenderReposOnly arma la variante del reporte que lista solo los
// repositorios con contribuciones.
func RenderReposOnly(set *models.ContributionSet, format string) string {
	if format == config.FormatPlain {
		return renderReposOnlyPlain(set)
	}
	return renderReposOnlyMarkdown(set)
}

func renderReposOnlyMarkdown(set *models.ContributionSet) string {
	var lines []string

	lines = append(lines, "# Repositories with Contributions\n")
	lines = append(lines, fmt.Sprintf("**Total Repositories**: %d\n", len(set.Repositories)))

	if len(set.Repositories) > 0 {
		lines = append(lines, "## Repository List")
		for _, repo := range set.Repositories {
			visibility := "🌐 Public"
			if repo.Private {
				visibility = "🔒 Private"
			}
			lines = append(lines, fmt.Sprintf("- **%s** (%s) - %s", repo.Name, visibility, repo.URL))
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

func renderReposOnlyPlain(set *models.ContributionSet) string {
	var lines []string

	lines = append(lines, "REPOSITORIES WITH CONTRIBUTIONS")
	lines = append(lines, strings.Repeat("=", 40))
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("Total Repositories: %d", len(set.Repositories)))
	lines = append(lines, "")

	if len(set.Repositories) > 0 {
		lines = append(lines, "REPOSITORY LIST")
		lines = append(lines, strings.Repeat("-", 15))
		for _, repo := range set.Repositories {
			visibility := "Public"
			if repo.Private {
				visibility = "Private"
			}
			lines = append(lines, fmt.Sprintf("- %s (%s) - %s", repo.Name, visibility, repo.URL))
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

// RenderLowLevelTasks arma la sección de tareas de bajo nivel: los commits
// agrupados por repositorio, repositorios en orden lexicográfico.
func RenderLowLevelTasks(set *models.ContributionSet) string {
	if len(set.Commits) == 0 {
		return emptyLowLevelSection
	}

	grouped := GroupCommitsByRepository(set.Commits)

	lines := []string{"## Low-Level Tasks\n"}
	for _, repoName := range SortedRepositoryNames(grouped) {
		lines = append(lines, fmt.Sprintf("  Repository: %s", repoName))
		for _, commit := range grouped[repoName] {
			lines = append(lines, fmt.Sprintf("    Commit: %s - %s", commit.SHA, commit.Message))
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

// InjectLowLevelTasks inserta la sección de bajo nivel dentro del resumen de
// la IA: antes de "## High-Level Tasks Completed" si existe, si no después
// del "## Overview", y como último recurso al final.
func InjectLowLevelTasks(summary, section string) string {
	const highLevelHeader = "## High-Level Tasks Completed"

	if strings.Contains(summary, highLevelHeader) {
		return strings.Replace(summary, highLevelHeader, section+"\n\n"+highLevelHeader, 1)
	}

	overviewIdx := strings.Index(summary, "## Overview")
	if overviewIdx == -1 {
		return summary + "\n\n" + section
	}

	nextSection := strings.Index(summary[overviewIdx+1:], "##")
	if nextSection == -1 {
		return summary + "\n\n" + section
	}
	nextSection += overviewIdx + 1

	return summary[:nextSection] + "\n\n" + section + "\n\n" + summary[nextSection:]
}
