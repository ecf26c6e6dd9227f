// Package analytics records search and filter usage for the product's
// analytics collaborator. Tracking is fire-and-forget: it must never slow
// down or fail a catalog query.
package analytics

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"tucomercio/pkg/logger"
)

type Tracker interface {
	TrackSearch(ctx context.Context, kind, value string)
	TrackFilter(ctx context.Context, kind string, values []string)
}

const writeTimeout = 5 * time.Second

type firestoreTracker struct {
	client *firestore.Client
}

func NewFirestoreTracker(client *firestore.Client) Tracker {
	return &firestoreTracker{
		client: client,
	}
}

func (t *firestoreTracker) TrackSearch(ctx context.Context, kind, value string) {
	t.write(map[string]interface{}{
		"event":     "search",
		"kind":      kind,
		"value":     value,
		"createdAt": firestore.ServerTimestamp,
	})
}

func (t *firestoreTracker) TrackFilter(ctx context.Context, kind string, values []string) {
	t.write(map[string]interface{}{
		"event":     "filter",
		"kind":      kind,
		"values":    values,
		"createdAt": firestore.ServerTimestamp,
	})
}

func (t *firestoreTracker) write(data map[string]interface{}) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()

		if _, err := t.client.Collection("analytics_events").NewDoc().Set(ctx, data); err != nil {
			logger.Warn("Failed to record analytics event: %v", err)
		}
	}()
}

// NoopTracker discards events. Used in tests and local development.
type NoopTracker struct{}

func (NoopTracker) TrackSearch(ctx context.Context, kind, value string)           {}
func (NoopTracker) TrackFilter(ctx context.Context, kind string, values []string) {}
