package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/credit-engine/internal/domain/entity"
)

// CreateOrderInput is a purchase request
type CreateOrderInput struct {
	UserID      string
	PhoneNumber string
	Credits     int64
}

// CreateOrderOutput is what the checkout client needs to open the gateway widget
type CreateOrderOutput struct {
	GatewayOrderID   string
	AmountMinorUnits int64
	Currency         string
	GatewayKeyID     string
	CreditsPurchased int64
	UserID           string
}

// ClientCallbackInput is the triplet the checkout client posts after payment
type ClientCallbackInput struct {
	GatewayOrderID   string
	GatewayPaymentID string
	Signature        string
	UserID           string
}

// ConfirmationResult describes what a confirmation did
type ConfirmationResult struct {
	Result           entity.ClaimResult
	GatewayOrderID   string
	CreditsGranted   int64
	UserID           string
	AvailableCredits int64
}

// Duplicate reports whether the confirmation found the order already terminal
func (r *ConfirmationResult) Duplicate() bool {
	return r.Result == entity.ClaimAlreadyTerminal
}

// WebhookInput is an inbound gateway notification
type WebhookInput struct {
	RawBody   []byte
	Signature string
	EventID   string
}

// WebhookResult describes how an authenticated webhook was handled
type WebhookResult struct {
	EventType      string
	GatewayOrderID string
	Outcome        entity.WebhookOutcome
}

// CancellationResult describes the effect of a client cancellation
type CancellationResult struct {
	GatewayOrderID string
	Status         entity.PaymentStatus
	Duplicate      bool
}

// PaymentHistoryItem is one row of a user's payment history
type PaymentHistoryItem struct {
	AmountMinorUnits int64
	Currency         string
	CreditsPurchased int64
	Status           entity.PaymentStatus
	GatewayPaymentID string
	GatewayOrderID   string
	PaymentMethod    string
	CreatedAt        time.Time
}

// PaymentHistory is a user's payments, newest first
type PaymentHistory struct {
	UserID   string
	Payments []PaymentHistoryItem
}

// PaymentUseCase defines the payment operations exposed to transports
type PaymentUseCase interface {
	// CreateOrder creates a remote gateway order and persists it locally in CREATED
	CreateOrder(ctx context.Context, input CreateOrderInput) (*CreateOrderOutput, error)

	// ConfirmClientCallback verifies and applies a checkout callback
	ConfirmClientCallback(ctx context.Context, input ClientCallbackInput) (*ConfirmationResult, error)

	// HandleWebhook verifies and applies a gateway notification
	HandleWebhook(ctx context.Context, input WebhookInput) (*WebhookResult, error)

	// ReportCancellation marks an unpaid order FAILED
	ReportCancellation(ctx context.Context, gatewayOrderID, userID string) (*CancellationResult, error)

	// ListHistory lists a user's payments, newest first
	ListHistory(ctx context.Context, ref UserRef) (*PaymentHistory, error)

	// GetOrder retrieves one order by gateway order id
	GetOrder(ctx context.Context, gatewayOrderID string) (*entity.PaymentOrder, error)

	// MarkRefunded records a refund of a successful order. Credits are not reversed.
	MarkRefunded(ctx context.Context, gatewayOrderID string) (*entity.PaymentOrder, error)
}
