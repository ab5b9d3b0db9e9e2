package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/credit-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-engine/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/credit-engine/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PaymentOrderRepository implements PaymentOrderRepository using GORM.
// Status changes are conditional UPDATEs; the affected row count decides
// which caller won.
type PaymentOrderRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

var _ persistence.PaymentOrderRepository = (*PaymentOrderRepository)(nil)

// NewPaymentOrderRepository creates a new PaymentOrderRepository instance
func NewPaymentOrderRepository(db *gorm.DB, logger coreport.Logger) *PaymentOrderRepository {
	return &PaymentOrderRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *PaymentOrderRepository) entityToModel(order *entity.PaymentOrder) model.PaymentOrder {
	m := model.PaymentOrder{
		ID:               order.ID,
		UserID:           order.UserID,
		GatewayOrderID:   order.GatewayOrderID,
		AmountMinorUnits: order.AmountMinorUnits,
		Currency:         order.Currency,
		CreditsPurchased: order.CreditsPurchased,
		Status:           string(order.Status),
		PaymentMethod:    order.PaymentMethod,
		Receipt:          order.Receipt,
		CreatedAt:        order.CreatedAt,
		UpdatedAt:        order.UpdatedAt,
	}
	if order.GatewayPaymentID != "" {
		paymentID := order.GatewayPaymentID
		m.GatewayPaymentID = &paymentID
	}
	return m
}

func (r *PaymentOrderRepository) modelToEntity(m *model.PaymentOrder) *entity.PaymentOrder {
	order := &entity.PaymentOrder{
		ID:               m.ID,
		UserID:           m.UserID,
		GatewayOrderID:   m.GatewayOrderID,
		AmountMinorUnits: m.AmountMinorUnits,
		Currency:         m.Currency,
		CreditsPurchased: m.CreditsPurchased,
		Status:           entity.PaymentStatus(m.Status),
		PaymentMethod:    m.PaymentMethod,
		Receipt:          m.Receipt,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
	if m.GatewayPaymentID != nil {
		order.GatewayPaymentID = *m.GatewayPaymentID
	}
	return order
}

func (r *PaymentOrderRepository) handleDatabaseError(operation string, err error, gatewayOrderID string) error {
	fields := map[string]any{"gateway_order_id": gatewayOrderID}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrOrderNotFound
	}

	if r.errorClassifier.IsDuplicateKeyError(err) {
		r.logger.Warn("Duplicate payment order", fields)
		return errs.ErrDuplicateOrder
	}

	fields["error"] = err.Error()
	fields["error_type"] = string(r.errorClassifier.Classify(err))
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), fields)
	return wrapDatabaseError(err)
}

// Create stores a new order
func (r *PaymentOrderRepository) Create(ctx context.Context, order *entity.PaymentOrder) error {
	orderModel := r.entityToModel(order)

	if err := conn(ctx, r.db).Omit(clause.Associations).Create(&orderModel).Error; err != nil {
		return r.handleDatabaseError("creating payment order", err, order.GatewayOrderID)
	}

	r.logger.Debug("Payment order stored", map[string]any{
		"gateway_order_id": order.GatewayOrderID,
		"user_id":          order.UserID,
		"credits":          order.CreditsPurchased,
	})
	return nil
}

// GetByGatewayOrderID retrieves an order by its gateway order id
func (r *PaymentOrderRepository) GetByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*entity.PaymentOrder, error) {
	orderModel, err := r.find(conn(ctx, r.db), gatewayOrderID)
	if err != nil {
		return nil, r.handleDatabaseError("getting payment order", err, gatewayOrderID)
	}
	return r.modelToEntity(orderModel), nil
}

// ClaimSuccess moves a CREATED order to SUCCESS with one conditional UPDATE
func (r *PaymentOrderRepository) ClaimSuccess(ctx context.Context, gatewayOrderID, gatewayPaymentID string, at time.Time) (entity.ClaimOutcome, error) {
	return r.compareAndSet(ctx, gatewayOrderID, entity.StatusCreated, map[string]any{
		"status":             string(entity.StatusSuccess),
		"gateway_payment_id": gatewayPaymentID,
		"updated_at":         at,
	})
}

// CompareAndSetStatus moves an order from one status to another with one conditional UPDATE
func (r *PaymentOrderRepository) CompareAndSetStatus(ctx context.Context, gatewayOrderID string, from, to entity.PaymentStatus, at time.Time) (entity.ClaimOutcome, error) {
	return r.compareAndSet(ctx, gatewayOrderID, from, map[string]any{
		"status":     string(to),
		"updated_at": at,
	})
}

// compareAndSet applies updates only while the row is still in from. Under
// READ COMMITTED a racing UPDATE waits for the winner's row lock and then
// re-evaluates the status predicate, so it matches zero rows.
func (r *PaymentOrderRepository) compareAndSet(ctx context.Context, gatewayOrderID string, from entity.PaymentStatus, updates map[string]any) (entity.ClaimOutcome, error) {
	db := conn(ctx, r.db)

	result := db.Model(&model.PaymentOrder{}).
		Where("gateway_order_id = ? AND status = ?", gatewayOrderID, string(from)).
		Updates(updates)
	if result.Error != nil {
		return entity.ClaimOutcome{}, r.handleDatabaseError("updating payment order status", result.Error, gatewayOrderID)
	}

	current, err := r.find(db, gatewayOrderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.ClaimOutcome{Result: entity.ClaimNotFound}, nil
	}
	if err != nil {
		return entity.ClaimOutcome{}, r.handleDatabaseError("reading payment order", err, gatewayOrderID)
	}

	order := r.modelToEntity(current)
	if result.RowsAffected == 1 {
		return entity.ClaimOutcome{Result: entity.ClaimClaimed, PreviousStatus: from, Order: order}, nil
	}
	return entity.ClaimOutcome{Result: entity.ClaimAlreadyTerminal, PreviousStatus: order.Status, Order: order}, nil
}

// ListByUser returns a user's orders, newest first
func (r *PaymentOrderRepository) ListByUser(ctx context.Context, userID string) ([]*entity.PaymentOrder, error) {
	var rows []model.PaymentOrder
	err := conn(ctx, r.db).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing payment orders", err, "")
	}

	orders := make([]*entity.PaymentOrder, 0, len(rows))
	for i := range rows {
		orders = append(orders, r.modelToEntity(&rows[i]))
	}
	return orders, nil
}

// Transactional reports true: writes join the UnitOfWork transaction carried by ctx
func (r *PaymentOrderRepository) Transactional() bool {
	return true
}

func (r *PaymentOrderRepository) find(db *gorm.DB, gatewayOrderID string) (*model.PaymentOrder, error) {
	var orderModel model.PaymentOrder
	if err := db.Where("gateway_order_id = ?", gatewayOrderID).Take(&orderModel).Error; err != nil {
		return nil, err
	}
	return &orderModel, nil
}
