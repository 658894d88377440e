package services

import (
	"context"

	"github.com/Belphemur/TVShowInfo/internal/models"
)

// ShowFinder defines the interface for resolving a title to a single show
type ShowFinder interface {
	// Find returns the first match of the sources in priority order.
	// It returns an *apperrors.ErrNotFound when no source matched.
	Find(ctx context.Context, title string) (*models.Show, error)
}
