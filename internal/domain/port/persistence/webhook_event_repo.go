package persistence

import (
	"context"

	"github.com/amirhossein-jamali/credit-engine/internal/domain/entity"
)

// WebhookEventRepository is the append-only audit log of authenticated webhook deliveries
type WebhookEventRepository interface {
	// Create appends an event
	Create(ctx context.Context, event *entity.WebhookEvent) error
}
