package services

import (
	"sort"

	"github.com/mrzacarias/github-contributions-tracker/internal/domain/models"
)

// commitKey identifica un commit dentro de un dataset: el mismo SHA corto en
// el mismo repositorio es el mismo commit, sin importar qué estrategia lo
// haya traído.
type commitKey struct {
	repository string
	sha        string
}

// DedupeCommits descarta duplicados por (repositorio, SHA corto) preservando
// el orden de la primera aparición.
func DedupeCommits(commits []models.CommitRecord) []models.CommitRecord {
	seen := make(map[commitKey]struct{}, len(commits))
	deduped := make([]models.CommitRecord, 0, len(commits))

	for _, commit := range commits {
		key := commitKey{repository: commit.Repository, sha: commit.SHA}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		deduped = append(deduped, commit)
	}
	return deduped
}

// MergeSets acumula src dentro de dst: los commits se concatenan (la
// deduplicación corre después) y los repositorios se agregan en forma
// idempotente.
func MergeSets(dst, src *models.ContributionSet) {
	if src == nil {
		return
	}
	dst.Commits = append(dst.Commits, src.Commits...)
	for _, repo := range src.Repositories {
		dst.AddRepository(repo)
	}
}

// GroupCommitsByRepository agrupa los commits por nombre de repositorio,
// preservando el orden dentro de cada grupo.
func GroupCommitsByRepository(commits []models.CommitRecord) map[string][]models.CommitRecord {
	grouped := make(map[string][]models.CommitRecord)
	for _, commit := range commits {
		grouped[commit.Repository] = append(grouped[commit.Repository], commit)
	}
	return grouped
}

// SortedRepositoryNames devuelve las claves del agrupado en orden
// lexicográfico, el orden de visita de los renderers.
func SortedRepositoryNames(grouped map[string][]models.CommitRecord) []string {
	names := make([]string, 0, len(grouped))
	for name := range grouped {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
