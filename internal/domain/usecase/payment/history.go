package payment

import (
	"context"

	"github.com/amirhossein-jamali/credit-engine/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/credit-engine/internal/domain/port/usecase"
)

// HistoryQuery lists a user's payment orders
type HistoryQuery struct {
	users  usecase.UserUseCase
	orders persistence.PaymentOrderRepository
}

// NewHistoryQuery creates a new HistoryQuery
func NewHistoryQuery(users usecase.UserUseCase, orders persistence.PaymentOrderRepository) *HistoryQuery {
	return &HistoryQuery{users: users, orders: orders}
}

// ListByUser returns the user's payments, newest first
func (q *HistoryQuery) ListByUser(ctx context.Context, ref usecase.UserRef) (*usecase.PaymentHistory, error) {
	user, err := q.users.ResolveUser(ctx, ref)
	if err != nil {
		return nil, err
	}

	orders, err := q.orders.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	history := &usecase.PaymentHistory{
		UserID:   user.ID,
		Payments: make([]usecase.PaymentHistoryItem, 0, len(orders)),
	}
	for _, order := range orders {
		history.Payments = append(history.Payments, usecase.PaymentHistoryItem{
			AmountMinorUnits: order.AmountMinorUnits,
			Currency:         order.Currency,
			CreditsPurchased: order.CreditsPurchased,
			Status:           order.Status,
			GatewayPaymentID: order.GatewayPaymentID,
			GatewayOrderID:   order.GatewayOrderID,
			PaymentMethod:    order.PaymentMethod,
			CreatedAt:        order.CreatedAt,
		})
	}

	return history, nil
}
