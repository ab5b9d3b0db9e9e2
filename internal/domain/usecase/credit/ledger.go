// Package credit applies purchased credits to user balances.
package credit

import (
	"context"
	"errors"
	"strings"

	"github.com/amirhossein-jamali/credit-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-engine/internal/domain/port/persistence"
)

// Ledger grants purchased credits. Callers must only invoke it after winning a
// claim on the order; the grant record keyed by payment id rejects any repeat.
type Ledger struct {
	uow          persistence.UnitOfWork
	users        persistence.UserRepository
	grants       persistence.CreditGrantRepository
	idGenerator  coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewLedger creates a new Ledger
func NewLedger(
	uow persistence.UnitOfWork,
	users persistence.UserRepository,
	grants persistence.CreditGrantRepository,
	idGenerator coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Ledger {
	return &Ledger{
		uow:          uow,
		users:        users,
		grants:       grants,
		idGenerator:  idGenerator,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GrantCredits records a grant for gatewayPaymentID and increments the user's
// paid credits in the same transaction. It joins the caller's transaction when ctx carries one.
//
// Possible errors:
// - ErrInvalidCredits: credits is not positive
// - ErrDuplicateGrant: credits were already granted for this payment
// - ErrUserNotFound: the user does not exist
func (l *Ledger) GrantCredits(ctx context.Context, userID string, credits int64, gatewayPaymentID string) (*entity.User, error) {
	if credits <= 0 {
		return nil, errs.ErrInvalidCredits
	}
	if strings.TrimSpace(userID) == "" {
		return nil, errs.ErrInvalidUserID
	}
	if strings.TrimSpace(gatewayPaymentID) == "" {
		return nil, errs.NewValidationError("gatewayPaymentId", "must not be empty", nil)
	}

	var user *entity.User
	err := l.uow.WithinTransaction(ctx, func(txCtx context.Context) error {
		grant := &entity.CreditGrant{
			ID:               l.idGenerator.NewID(),
			UserID:           userID,
			GatewayPaymentID: gatewayPaymentID,
			Credits:          credits,
			CreatedAt:        l.timeProvider.Now(),
		}
		if err := l.grants.Create(txCtx, grant); err != nil {
			return err
		}

		updated, err := l.users.IncrementPaidCredits(txCtx, userID, credits)
		if err != nil {
			return err
		}
		user = updated
		return nil
	})
	if err != nil {
		if errors.Is(err, errs.ErrDuplicateGrant) {
			l.logger.Warn("Credits already granted for payment", map[string]any{
				"user_id":            userID,
				"gateway_payment_id": gatewayPaymentID,
			})
			return nil, err
		}
		l.logger.Error("Failed to grant credits", map[string]any{
			"user_id":            userID,
			"gateway_payment_id": gatewayPaymentID,
			"credits":            credits,
			"error":              err.Error(),
		})
		return nil, err
	}

	l.logger.Info("Credits granted", map[string]any{
		"user_id":            userID,
		"gateway_payment_id": gatewayPaymentID,
		"credits":            credits,
		"paid_credits":       user.PaidCredits,
		"available_credits":  user.AvailableCredits(),
	})

	return user, nil
}
