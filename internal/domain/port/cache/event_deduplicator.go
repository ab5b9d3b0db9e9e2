package cache

import "context"

// EventDeduplicator remembers webhook deliveries that were already handled.
// It is a fast path only; the payment state machine stays authoritative.
type EventDeduplicator interface {
	// Seen reports whether the event id was marked as handled
	Seen(ctx context.Context, eventID string) (bool, error)

	// MarkProcessed records the event id as handled
	MarkProcessed(ctx context.Context, eventID string) error
}
