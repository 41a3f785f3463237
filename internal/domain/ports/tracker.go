package ports

import (
	"context"

	"github.com/mrzacarias/github-contributions-tracker/internal/domain/models"
)

// ContributionTracker es el motor de adquisición: elige una estrategia,
// aplica los fallbacks y devuelve el dataset canónico. El set devuelto pasa a
// ser propiedad del caller.
type ContributionTracker interface {
	GetContributions(ctx context.Context, opts models.TrackOptions) (*models.ContributionSet, error)
}
