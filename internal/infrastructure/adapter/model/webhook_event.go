package model

import (
	"time"

	"gorm.io/datatypes"
)

// WebhookEvent is an append-only audit row for an authenticated gateway notification
type WebhookEvent struct {
	ID               string         `gorm:"primaryKey;size:64"`
	EventID          string         `gorm:"size:128;index"`
	EventType        string         `gorm:"size:64;index"`
	GatewayOrderID   string         `gorm:"size:64;index"`
	GatewayPaymentID string         `gorm:"size:64"`
	Payload          datatypes.JSON `gorm:"not null"`
	Outcome          string         `gorm:"not null;size:16"`
	ProcessingError  string         `gorm:"type:text"`
	ReceivedAt       time.Time      `gorm:"not null"`
	ProcessedAt      *time.Time
}

// TableName specifies the table name for WebhookEvent
func (WebhookEvent) TableName() string {
	return "webhook_events"
}
