package repository

import (
	"context"
	"encoding/json"

	"github.com/amirhossein-jamali/credit-engine/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/credit-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-engine/internal/infrastructure/adapter/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// WebhookEventRepository implements WebhookEventRepository using GORM
type WebhookEventRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewWebhookEventRepository creates a new WebhookEventRepository instance
func NewWebhookEventRepository(db *gorm.DB, logger coreport.Logger) *WebhookEventRepository {
	return &WebhookEventRepository{
		db:     db,
		logger: logger,
	}
}

// Create appends an audit row. It never joins a caller's transaction so the
// row survives a rolled back claim.
func (r *WebhookEventRepository) Create(ctx context.Context, event *entity.WebhookEvent) error {
	eventModel := model.WebhookEvent{
		ID:               event.ID,
		EventID:          event.EventID,
		EventType:        event.EventType,
		GatewayOrderID:   event.GatewayOrderID,
		GatewayPaymentID: event.GatewayPaymentID,
		Payload:          payloadJSON(event.Payload),
		Outcome:          string(event.Outcome),
		ProcessingError:  event.ProcessingError,
		ReceivedAt:       event.ReceivedAt,
		ProcessedAt:      event.ProcessedAt,
	}

	if err := r.db.WithContext(ctx).Create(&eventModel).Error; err != nil {
		return wrapDatabaseError(err)
	}

	r.logger.Debug("Webhook event recorded", map[string]any{
		"event_id":   event.EventID,
		"event_type": event.EventType,
		"outcome":    string(event.Outcome),
	})
	return nil
}

// payloadJSON stores a body that is not valid JSON as a JSON string, so malformed
// deliveries still fit the JSON column.
func payloadJSON(raw []byte) datatypes.JSON {
	if json.Valid(raw) {
		return datatypes.JSON(raw)
	}
	quoted, _ := json.Marshal(string(raw))
	return datatypes.JSON(quoted)
}
