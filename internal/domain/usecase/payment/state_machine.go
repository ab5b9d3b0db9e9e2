package payment

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/credit-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-engine/internal/domain/port/persistence"
)

// StateMachine applies payment status changes. Every change is a single
// compare-and-set in storage, so concurrent callers for the same order
// cannot both observe a successful transition.
type StateMachine struct {
	orders       persistence.PaymentOrderRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewStateMachine creates a new StateMachine
func NewStateMachine(
	orders persistence.PaymentOrderRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *StateMachine {
	return &StateMachine{
		orders:       orders,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// ClaimSuccess moves an order from CREATED to SUCCESS. Only a ClaimClaimed
// outcome authorizes crediting the user. An already terminal or unknown order
// is reported through the outcome, not as an error.
func (m *StateMachine) ClaimSuccess(ctx context.Context, gatewayOrderID, gatewayPaymentID string) (entity.ClaimOutcome, error) {
	if strings.TrimSpace(gatewayOrderID) == "" {
		return entity.ClaimOutcome{}, errs.NewValidationError("gatewayOrderId", "is required", nil)
	}
	if strings.TrimSpace(gatewayPaymentID) == "" {
		return entity.ClaimOutcome{}, errs.NewValidationError("gatewayPaymentId", "is required", nil)
	}

	outcome, err := m.orders.ClaimSuccess(ctx, gatewayOrderID, gatewayPaymentID, m.timeProvider.Now())
	if err != nil {
		m.logger.Error("Failed to claim payment order", map[string]any{
			"gateway_order_id": gatewayOrderID,
			"error":            err.Error(),
		})
		return entity.ClaimOutcome{}, err
	}

	fields := map[string]any{
		"gateway_order_id":   gatewayOrderID,
		"gateway_payment_id": gatewayPaymentID,
		"result":             string(outcome.Result),
	}
	switch outcome.Result {
	case entity.ClaimClaimed:
		m.logger.Info("Payment order claimed", fields)
	case entity.ClaimAlreadyTerminal:
		fields["status"] = string(outcome.PreviousStatus)
		m.logger.Info("Payment order already terminal", fields)
	case entity.ClaimNotFound:
		m.logger.Warn("Claim for unknown payment order", fields)
	}

	return outcome, nil
}

// ClaimFailure moves an order from CREATED to FAILED. Repeating it on a FAILED
// order is a no-op; it never overrides SUCCESS or REFUNDED.
//
// Possible errors:
// - ErrOrderNotFound: no order exists for the id
// - TransitionError: the order is SUCCESS or REFUNDED
func (m *StateMachine) ClaimFailure(ctx context.Context, gatewayOrderID string) (entity.ClaimOutcome, error) {
	return m.guardedTransition(ctx, gatewayOrderID, entity.StatusCreated, entity.StatusFailed)
}

// MarkRefunded moves an order from SUCCESS to REFUNDED. Credits are not reversed.
//
// Possible errors:
// - ErrOrderNotFound: no order exists for the id
// - TransitionError: the order is CREATED or FAILED
func (m *StateMachine) MarkRefunded(ctx context.Context, gatewayOrderID string) (entity.ClaimOutcome, error) {
	return m.guardedTransition(ctx, gatewayOrderID, entity.StatusSuccess, entity.StatusRefunded)
}

func (m *StateMachine) guardedTransition(ctx context.Context, gatewayOrderID string, from, to entity.PaymentStatus) (entity.ClaimOutcome, error) {
	if strings.TrimSpace(gatewayOrderID) == "" {
		return entity.ClaimOutcome{}, errs.NewValidationError("gatewayOrderId", "is required", nil)
	}
	if !from.CanTransitionTo(to) {
		return entity.ClaimOutcome{}, errs.NewTransitionError(gatewayOrderID, string(from), string(to))
	}

	outcome, err := m.orders.CompareAndSetStatus(ctx, gatewayOrderID, from, to, m.timeProvider.Now())
	if err != nil {
		m.logger.Error("Failed to change payment order status", map[string]any{
			"gateway_order_id": gatewayOrderID,
			"to":               string(to),
			"error":            err.Error(),
		})
		return entity.ClaimOutcome{}, err
	}

	switch outcome.Result {
	case entity.ClaimNotFound:
		return outcome, errs.ErrOrderNotFound
	case entity.ClaimAlreadyTerminal:
		if outcome.PreviousStatus == to {
			m.logger.Info("Payment order already in requested status", map[string]any{
				"gateway_order_id": gatewayOrderID,
				"status":           string(to),
			})
			return outcome, nil
		}
		err := errs.NewTransitionError(gatewayOrderID, string(outcome.PreviousStatus), string(to))
		m.logger.Warn("Rejected payment status change", errs.LogFields(err))
		return outcome, err
	}

	m.logger.Info("Payment order status changed", map[string]any{
		"gateway_order_id": gatewayOrderID,
		"from":             string(from),
		"to":               string(to),
	})
	return outcome, nil
}
