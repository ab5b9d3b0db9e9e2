package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/credit-engine/internal/domain/entity"
)

// PaymentOrderRepository stores payment orders. Status changes are only applied
// through the compare-and-set methods, never through a read followed by a write.
type PaymentOrderRepository interface {
	// Create stores a new order
	//
	// Possible errors:
	// - ErrDuplicateOrder: If an order with the same gateway order id exists
	// - ErrDatabaseConnection: If the store is unreachable
	Create(ctx context.Context, order *entity.PaymentOrder) error

	// GetByGatewayOrderID retrieves an order by its gateway order id
	//
	// Possible errors:
	// - ErrOrderNotFound: If no order exists for the id
	// - ErrDatabaseConnection: If the store is unreachable
	GetByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*entity.PaymentOrder, error)

	// ClaimSuccess moves the order from CREATED to SUCCESS and records the payment id
	// in one conditional write. Exactly one concurrent caller observes ClaimClaimed.
	// A missing order is reported as ClaimNotFound, not as an error.
	ClaimSuccess(ctx context.Context, gatewayOrderID, gatewayPaymentID string, at time.Time) (entity.ClaimOutcome, error)

	// CompareAndSetStatus moves the order from one status to another in one conditional write.
	// When the order is not in from, the outcome is ClaimAlreadyTerminal with the current order.
	CompareAndSetStatus(ctx context.Context, gatewayOrderID string, from, to entity.PaymentStatus, at time.Time) (entity.ClaimOutcome, error)

	// ListByUser returns a user's orders, newest first
	ListByUser(ctx context.Context, userID string) ([]*entity.PaymentOrder, error)

	// Transactional reports whether writes join a UnitOfWork transaction carried by ctx
	Transactional() bool
}
