package services

import (
	"context"
	"errors"

	"github.com/Belphemur/TVShowInfo/internal/apperrors"
	"github.com/Belphemur/TVShowInfo/internal/config"
	"github.com/Belphemur/TVShowInfo/internal/notifier"
	"github.com/Belphemur/TVShowInfo/internal/parser"
)

// DefaultAnnouncer implements Announcer
type DefaultAnnouncer struct {
	finder    ShowFinder
	publisher Publisher
}

// NewAnnouncer creates a new announcer
func NewAnnouncer(finder ShowFinder, publisher Publisher) Announcer {
	return &DefaultAnnouncer{finder: finder, publisher: publisher}
}

// Announce splits the episode marker off the query, finds the show and publishes the message.
func (a *DefaultAnnouncer) Announce(ctx context.Context, query string) []notifier.DeliveryResult {
	logger := config.GetLogger()

	info := parser.ParseTitle(query)
	logger.Info().Str("query", query).Str("title", info.Title).Str("episode", info.Episode).Msg("Looking up show")

	show, err := a.finder.Find(ctx, info.Title)
	switch {
	case errors.Is(err, &apperrors.ErrNotFound{}):
		logger.Info().Str("title", info.Title).Msg("No source matched, sending the query as is")
	case err != nil:
		logger.Error().Err(err).Str("title", info.Title).Msg("Show lookup aborted, sending the query as is")
		show = nil
	}

	return a.publisher.Publish(ctx, notifier.Format(query, info.Episode, show))
}
