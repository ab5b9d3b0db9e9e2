package payment

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/amirhossein-jamali/credit-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-engine/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/credit-engine/internal/domain/port/metrics"
	"github.com/amirhossein-jamali/credit-engine/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/credit-engine/internal/domain/port/usecase"
)

// Gateway call outcomes reported to metrics
const (
	gatewayOutcomeSuccess     = "success"
	gatewayOutcomeAuthError   = "auth_error"
	gatewayOutcomeRejected    = "rejected"
	gatewayOutcomeUnavailable = "unavailable"
)

// OrderManager creates remote gateway orders and their local records
type OrderManager struct {
	users        usecase.UserUseCase
	orders       persistence.PaymentOrderRepository
	gateway      gateway.PaymentGateway
	validator    *PaymentValidator
	idGenerator  coreport.IDGenerator
	timeProvider coreport.TimeProvider
	metrics      metrics.Recorder
	logger       coreport.Logger
	settings     Settings
}

// NewOrderManager creates a new OrderManager
func NewOrderManager(
	users usecase.UserUseCase,
	orders persistence.PaymentOrderRepository,
	paymentGateway gateway.PaymentGateway,
	validator *PaymentValidator,
	idGenerator coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	recorder metrics.Recorder,
	logger coreport.Logger,
	settings Settings,
) *OrderManager {
	return &OrderManager{
		users:        users,
		orders:       orders,
		gateway:      paymentGateway,
		validator:    validator,
		idGenerator:  idGenerator,
		timeProvider: timeProvider,
		metrics:      recorder,
		logger:       logger,
		settings:     settings.withDefaults(),
	}
}

// CreateOrder creates the remote order first and persists it locally only after
// the gateway accepted it. A gateway failure leaves no local record. A local
// failure after the gateway accepted is reported as an InconsistencyError.
func (m *OrderManager) CreateOrder(ctx context.Context, input usecase.CreateOrderInput) (*usecase.CreateOrderOutput, error) {
	if err := m.validator.ValidateCreateOrder(input); err != nil {
		m.metrics.OrderCreated("invalid")
		return nil, err
	}

	user, err := m.users.ResolveUser(ctx, usecase.UserRef{UserID: input.UserID, PhoneNumber: input.PhoneNumber})
	if err != nil {
		m.metrics.OrderCreated("invalid")
		return nil, err
	}

	amount, err := entity.CreditsToMinorUnits(input.Credits, m.settings.MinorUnitsPerCredit)
	if err != nil {
		m.metrics.OrderCreated("invalid")
		return nil, err
	}

	receipt := m.idGenerator.NewReceipt()
	remote, err := m.createRemoteOrder(ctx, gateway.OrderRequest{
		AmountMinorUnits: amount,
		Currency:         m.settings.Currency,
		Receipt:          receipt,
		Notes: map[string]string{
			"user_id": user.ID,
			"credits": strconv.FormatInt(input.Credits, 10),
		},
	})
	if err != nil {
		m.metrics.OrderCreated("gateway_error")
		return nil, err
	}

	if remote.AmountMinorUnits != 0 && remote.AmountMinorUnits != amount {
		m.logger.Warn("Gateway order amount differs from requested amount", map[string]any{
			"gateway_order_id": remote.ID,
			"requested":        amount,
			"returned":         remote.AmountMinorUnits,
		})
	}

	order, err := entity.NewPaymentOrder(
		m.idGenerator.NewID(),
		user.ID,
		remote.ID,
		amount,
		m.settings.Currency,
		input.Credits,
		m.settings.PaymentMethod,
		receipt,
		m.timeProvider,
	)
	if err == nil {
		err = m.orders.Create(ctx, order)
	}
	if err != nil {
		incErr := errs.NewInconsistencyError(remote.ID, user.ID, "persist_order", err)
		fields := errs.LogFields(incErr)
		fields["receipt"] = receipt
		fields["amount"] = amount
		fields["credits"] = input.Credits
		m.logger.Error("Gateway order created but not persisted", fields)
		m.metrics.Inconsistency()
		m.metrics.OrderCreated("inconsistent")
		return nil, incErr
	}

	m.metrics.OrderCreated("created")
	m.logger.Info("Payment order created", map[string]any{
		"gateway_order_id": order.GatewayOrderID,
		"user_id":          order.UserID,
		"credits":          order.CreditsPurchased,
		"amount":           entity.MinorUnitsToString(order.AmountMinorUnits),
		"currency":         order.Currency,
	})

	return &usecase.CreateOrderOutput{
		GatewayOrderID:   order.GatewayOrderID,
		AmountMinorUnits: order.AmountMinorUnits,
		Currency:         order.Currency,
		GatewayKeyID:     m.gateway.KeyID(),
		CreditsPurchased: order.CreditsPurchased,
		UserID:           order.UserID,
	}, nil
}

// createRemoteOrder calls the gateway under the configured timeout and records its latency
func (m *OrderManager) createRemoteOrder(ctx context.Context, req gateway.OrderRequest) (*gateway.Order, error) {
	callCtx, cancel := m.timeProvider.WithTimeout(ctx, coreport.Duration(m.settings.GatewayTimeout))
	defer cancel()

	start := m.timeProvider.Now()
	remote, err := m.gateway.CreateOrder(callCtx, req)
	elapsed := m.timeProvider.Since(start).Std()

	outcome := classifyGatewayError(err)
	m.metrics.GatewayRequest("create_order", outcome, elapsed)

	if err != nil {
		fields := errs.LogFields(err)
		fields["receipt"] = req.Receipt
		fields["provider"] = m.gateway.Name()
		fields["duration_ms"] = elapsed.Milliseconds()
		if outcome == gatewayOutcomeAuthError {
			fields["hint"] = "gateway rejected the API credentials; check gateway.keyId and gateway.keySecret"
		}
		m.logger.Error("Gateway order creation failed", fields)
		return nil, err
	}

	if remote == nil || remote.ID == "" {
		err := errs.NewUpstreamError(m.gateway.Name(), "create_order", 0,
			errors.Join(errs.ErrGatewayRejected, errors.New("empty order id in response")))
		m.logger.Error("Gateway returned no order id", errs.LogFields(err))
		return nil, err
	}

	return remote, nil
}

func classifyGatewayError(err error) string {
	if err == nil {
		return gatewayOutcomeSuccess
	}
	var upstream *errs.UpstreamError
	if errors.As(err, &upstream) && upstream.StatusCode == http.StatusUnauthorized {
		return gatewayOutcomeAuthError
	}
	if errors.Is(err, errs.ErrGatewayRejected) {
		return gatewayOutcomeRejected
	}
	return gatewayOutcomeUnavailable
}
