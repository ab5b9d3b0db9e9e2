package entity

import "time"

// WebhookOutcome records what the engine did with an authenticated webhook delivery
type WebhookOutcome string

// WebhookOutcome constants
const (
	WebhookProcessed WebhookOutcome = "processed"
	WebhookDuplicate WebhookOutcome = "duplicate"
	WebhookIgnored   WebhookOutcome = "ignored"
	WebhookUnmatched WebhookOutcome = "unmatched"
	WebhookFailed    WebhookOutcome = "failed"
)

// EventPaymentCaptured is the only gateway event that credits a user
const EventPaymentCaptured = "payment.captured"

// WebhookEvent is an audit record of one authenticated webhook delivery
type WebhookEvent struct {
	ID               string
	EventID          string // Gateway delivery id, may be empty
	EventType        string
	GatewayOrderID   string
	GatewayPaymentID string
	Payload          []byte // Raw body exactly as received
	Outcome          WebhookOutcome
	ProcessingError  string
	ReceivedAt       time.Time
	ProcessedAt      *time.Time
}
