package services

import (
	"context"

	"github.com/Belphemur/TVShowInfo/internal/apperrors"
	"github.com/Belphemur/TVShowInfo/internal/client"
	"github.com/Belphemur/TVShowInfo/internal/config"
	"github.com/Belphemur/TVShowInfo/internal/metrics"
	"github.com/Belphemur/TVShowInfo/internal/models"
	"github.com/Belphemur/TVShowInfo/internal/reporting"
)

// DefaultShowFinder implements ShowFinder over an ordered list of sources
type DefaultShowFinder struct {
	sources []client.Source
}

// NewShowFinder creates a finder querying the sources in the given order
func NewShowFinder(sources []client.Source) ShowFinder {
	return &DefaultShowFinder{sources: sources}
}

// Find asks each source in turn and stops at the first match. A failing source counts as no match.
func (f *DefaultShowFinder) Find(ctx context.Context, title string) (*models.Show, error) {
	logger := config.GetLogger()

	for _, source := range f.sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		show, err := source.TopMatch(ctx, title)
		switch {
		case err != nil:
			metrics.SourceLookupsTotal.WithLabelValues(source.Name(), metrics.ResultError).Inc()
			logger.Warn().Err(err).Str("source", source.Name()).Str("title", title).Msg("Source lookup failed, trying next source")
			reporting.Capture(err, map[string]string{"component": "source", "source": source.Name()})
		case show == nil:
			metrics.SourceLookupsTotal.WithLabelValues(source.Name(), metrics.ResultNoMatch).Inc()
			logger.Info().Str("source", source.Name()).Str("title", title).Msg("No match, trying next source")
		default:
			metrics.SourceLookupsTotal.WithLabelValues(source.Name(), metrics.ResultMatch).Inc()
			logger.Info().Str("source", source.Name()).Str("title", title).Str("match", show.DisplayName()).Msg("Show found")
			return show, nil
		}
	}

	return nil, apperrors.NewShowNotFoundError(title)
}
