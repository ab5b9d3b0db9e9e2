package payment

import (
	"context"

	"github.com/amirhossein-jamali/credit-engine/internal/domain/port/cache"
	coreport "github.com/amirhossein-jamali/credit-engine/internal/domain/port/core"
)

// IdempotencyHandler short-circuits redelivered webhooks by event id.
// It only saves work: a missed duplicate still lands on the state machine,
// which rejects the second claim.
type IdempotencyHandler struct {
	deduplicator cache.EventDeduplicator
	logger       coreport.Logger
}

// NewIdempotencyHandler creates a new IdempotencyHandler. A nil deduplicator disables the fast path.
func NewIdempotencyHandler(deduplicator cache.EventDeduplicator, logger coreport.Logger) *IdempotencyHandler {
	return &IdempotencyHandler{
		deduplicator: deduplicator,
		logger:       logger,
	}
}

// AlreadyHandled reports whether the event id was marked as handled.
// Cache errors are logged and treated as not handled.
func (h *IdempotencyHandler) AlreadyHandled(ctx context.Context, eventID string) bool {
	if h.deduplicator == nil || eventID == "" {
		return false
	}

	seen, err := h.deduplicator.Seen(ctx, eventID)
	if err != nil {
		h.logger.Warn("Webhook dedup cache unavailable, falling back to state machine", map[string]any{
			"event_id": eventID,
			"error":    err.Error(),
		})
		return false
	}

	return seen
}

// MarkHandled records a successfully handled event id
func (h *IdempotencyHandler) MarkHandled(ctx context.Context, eventID string) {
	if h.deduplicator == nil || eventID == "" {
		return
	}

	if err := h.deduplicator.MarkProcessed(ctx, eventID); err != nil {
		h.logger.Warn("Failed to mark webhook event as handled", map[string]any{
			"event_id": eventID,
			"error":    err.Error(),
		})
	}
}
