package services

import (
	"context"

	"github.com/Belphemur/TVShowInfo/internal/notifier"
)

// Publisher delivers a payload to the configured webhooks
type Publisher interface {
	Publish(ctx context.Context, payload notifier.Payload) []notifier.DeliveryResult
}

// Announcer defines the interface for the lookup-and-notify flow of one query
type Announcer interface {
	// Announce looks the query up and posts the resulting message. A missing show or a failed
	// delivery is not an error, it is reported in the returned results.
	Announce(ctx context.Context, query string) []notifier.DeliveryResult
}
