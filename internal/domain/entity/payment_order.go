package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/credit-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-engine/internal/domain/port/core"
)

// PaymentStatus is the lifecycle state of a payment order
type PaymentStatus string

// PaymentStatus constants
const (
	StatusCreated  PaymentStatus = "CREATED"
	StatusSuccess  PaymentStatus = "SUCCESS"
	StatusFailed   PaymentStatus = "FAILED"
	StatusRefunded PaymentStatus = "REFUNDED"
)

// DefaultPaymentMethod tags orders created through the hosted checkout
const DefaultPaymentMethod = "razorpay"

// allowedTransitions lists every legal status change. Anything else is rejected.
var allowedTransitions = map[PaymentStatus][]PaymentStatus{
	StatusCreated: {StatusSuccess, StatusFailed},
	StatusSuccess: {StatusRefunded},
}

// IsValid reports whether s is a known status
func (s PaymentStatus) IsValid() bool {
	switch s {
	case StatusCreated, StatusSuccess, StatusFailed, StatusRefunded:
		return true
	}
	return false
}

// IsTerminal reports whether no further confirmation can change the status
func (s PaymentStatus) IsTerminal() bool {
	return s != StatusCreated
}

// CanTransitionTo reports whether moving from s to next is legal
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// PaymentOrder is a local record of a gateway order and the credits it buys
type PaymentOrder struct {
	ID               string        // Locally generated identifier
	UserID           string        // Owner reference
	GatewayOrderID   string        // Gateway-issued order id, unique
	GatewayPaymentID string        // Set once a success is claimed
	AmountMinorUnits int64         // Amount charged in the smallest currency unit
	Currency         string        // ISO currency code
	CreditsPurchased int64         // Credits granted on success
	Status           PaymentStatus // Lifecycle state
	PaymentMethod    string        // Informational tag
	Receipt          string        // Receipt sent to the gateway
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewPaymentOrder creates a payment order in the CREATED state
func NewPaymentOrder(
	id string,
	userID string,
	gatewayOrderID string,
	amountMinorUnits int64,
	currency string,
	credits int64,
	paymentMethod string,
	receipt string,
	timeProvider coreport.TimeProvider,
) (*PaymentOrder, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errs.NewValidationError("id", "must not be empty", nil)
	}
	if strings.TrimSpace(userID) == "" {
		return nil, errs.ErrInvalidUserID
	}
	if strings.TrimSpace(gatewayOrderID) == "" {
		return nil, errs.NewValidationError("gatewayOrderId", "must not be empty", nil)
	}
	if credits <= 0 {
		return nil, errs.ErrInvalidCredits
	}
	if amountMinorUnits <= 0 {
		return nil, errs.NewValidationError("amount", "must be positive", nil)
	}
	if paymentMethod == "" {
		paymentMethod = DefaultPaymentMethod
	}
	if currency == "" {
		currency = DefaultCurrency
	}

	now := timeProvider.Now()
	return &PaymentOrder{
		ID:               id,
		UserID:           userID,
		GatewayOrderID:   gatewayOrderID,
		AmountMinorUnits: amountMinorUnits,
		Currency:         currency,
		CreditsPurchased: credits,
		Status:           StatusCreated,
		PaymentMethod:    paymentMethod,
		Receipt:          receipt,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// Transition moves the order to next if the lifecycle allows it.
// Storage adapters must still apply the change as a conditional write.
func (o *PaymentOrder) Transition(next PaymentStatus, timeProvider coreport.TimeProvider) error {
	if !o.Status.CanTransitionTo(next) {
		return errs.NewTransitionError(o.GatewayOrderID, string(o.Status), string(next))
	}
	o.Status = next
	o.UpdatedAt = timeProvider.Now()
	return nil
}

// ClaimResult is the outcome of a compare-and-set status change
type ClaimResult string

// ClaimResult constants
const (
	ClaimClaimed         ClaimResult = "claimed"
	ClaimAlreadyTerminal ClaimResult = "already_terminal"
	ClaimNotFound        ClaimResult = "not_found"
)

// ClaimOutcome carries a claim result and the order as seen by the claim
type ClaimOutcome struct {
	Result         ClaimResult
	PreviousStatus PaymentStatus
	Order          *PaymentOrder // nil when Result is ClaimNotFound
}

// Claimed reports whether this caller won the transition
func (c ClaimOutcome) Claimed() bool {
	return c.Result == ClaimClaimed
}
