package payment

import (
	"context"

	"github.com/amirhossein-jamali/credit-engine/internal/domain/entity"
	"github.com/amirhossein-jamali/credit-engine/internal/domain/port/cache"
	coreport "github.com/amirhossein-jamali/credit-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-engine/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/credit-engine/internal/domain/port/metrics"
	"github.com/amirhossein-jamali/credit-engine/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/credit-engine/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/credit-engine/internal/domain/usecase/credit"
)

// Dependencies are the collaborators the payment service is assembled from
type Dependencies struct {
	UnitOfWork    persistence.UnitOfWork
	Orders        persistence.PaymentOrderRepository
	WebhookEvents persistence.WebhookEventRepository
	Users         usecase.UserUseCase
	Ledger        *credit.Ledger
	Gateway       gateway.PaymentGateway
	Deduplicator  cache.EventDeduplicator // optional
	IDGenerator   coreport.IDGenerator
	TimeProvider  coreport.TimeProvider
	Metrics       metrics.Recorder
	Logger        coreport.Logger
}

// Service is the payment service implementation that ties together
// all the components of the payment flow
type Service struct {
	orderManager *OrderManager
	stateMachine *StateMachine
	dispatcher   *Dispatcher
	history      *HistoryQuery
	orders       persistence.PaymentOrderRepository
}

var _ usecase.PaymentUseCase = (*Service)(nil)

// NewPaymentService creates a new payment service
func NewPaymentService(deps Dependencies, settings Settings) *Service {
	settings = settings.withDefaults()

	validator := NewPaymentValidator(settings.MaxCreditsPerOrder)
	stateMachine := NewStateMachine(deps.Orders, deps.TimeProvider, deps.Logger)
	idempotency := NewIdempotencyHandler(deps.Deduplicator, deps.Logger)

	orderManager := NewOrderManager(
		deps.Users,
		deps.Orders,
		deps.Gateway,
		validator,
		deps.IDGenerator,
		deps.TimeProvider,
		deps.Metrics,
		deps.Logger,
		settings,
	)

	dispatcher := NewDispatcher(
		deps.UnitOfWork,
		deps.Orders,
		deps.WebhookEvents,
		stateMachine,
		deps.Ledger,
		idempotency,
		validator,
		deps.IDGenerator,
		deps.TimeProvider,
		deps.Metrics,
		deps.Logger,
		settings,
	)

	return &Service{
		orderManager: orderManager,
		stateMachine: stateMachine,
		dispatcher:   dispatcher,
		history:      NewHistoryQuery(deps.Users, deps.Orders),
		orders:       deps.Orders,
	}
}

// CreateOrder creates a payment order
func (s *Service) CreateOrder(ctx context.Context, input usecase.CreateOrderInput) (*usecase.CreateOrderOutput, error) {
	return s.orderManager.CreateOrder(ctx, input)
}

// ConfirmClientCallback applies a checkout callback
func (s *Service) ConfirmClientCallback(ctx context.Context, input usecase.ClientCallbackInput) (*usecase.ConfirmationResult, error) {
	return s.dispatcher.ConfirmClientCallback(ctx, input)
}

// HandleWebhook applies a gateway notification
func (s *Service) HandleWebhook(ctx context.Context, input usecase.WebhookInput) (*usecase.WebhookResult, error) {
	return s.dispatcher.HandleWebhook(ctx, input.RawBody, input.Signature, input.EventID)
}

// ReportCancellation marks an unpaid order FAILED
func (s *Service) ReportCancellation(ctx context.Context, gatewayOrderID, userID string) (*usecase.CancellationResult, error) {
	return s.dispatcher.ReportCancellation(ctx, gatewayOrderID, userID)
}

// ListHistory lists a user's payments
func (s *Service) ListHistory(ctx context.Context, ref usecase.UserRef) (*usecase.PaymentHistory, error) {
	return s.history.ListByUser(ctx, ref)
}

// GetOrder retrieves one order
func (s *Service) GetOrder(ctx context.Context, gatewayOrderID string) (*entity.PaymentOrder, error) {
	return s.orders.GetByGatewayOrderID(ctx, gatewayOrderID)
}

// MarkRefunded records a refund for a successful order
func (s *Service) MarkRefunded(ctx context.Context, gatewayOrderID string) (*entity.PaymentOrder, error) {
	outcome, err := s.stateMachine.MarkRefunded(ctx, gatewayOrderID)
	if err != nil {
		return nil, err
	}
	return outcome.Order, nil
}
