package payment

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/credit-engine/internal/domain/entity"
	"github.com/amirhossein-jamali/credit-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-engine/internal/domain/usecase/credit"
	cachemocks "github.com/amirhossein-jamali/credit-engine/mocks/port/cache"
	coremocks "github.com/amirhossein-jamali/credit-engine/mocks/port/core"
	gatewaymocks "github.com/amirhossein-jamali/credit-engine/mocks/port/gateway"
	metricsmocks "github.com/amirhossein-jamali/credit-engine/mocks/port/metrics"
	persistencemocks "github.com/amirhossein-jamali/credit-engine/mocks/port/persistence"
	usecasemocks "github.com/amirhossein-jamali/credit-engine/mocks/port/usecase"
	"github.com/stretchr/testify/mock"
)

const (
	testKeySecret     = "test_key_secret"
	testWebhookSecret = "test_webhook_secret"
)

var fixedNow = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

type fixture struct {
	uow      *persistencemocks.MockUnitOfWork
	orders   *persistencemocks.MockPaymentOrderRepository
	users    *persistencemocks.MockUserRepository
	grants   *persistencemocks.MockCreditGrantRepository
	events   *persistencemocks.MockWebhookEventRepository
	userUC   *usecasemocks.MockUserUseCase
	gateway  *gatewaymocks.MockPaymentGateway
	dedup    *cachemocks.MockEventDeduplicator
	ids      *coremocks.MockIDGenerator
	time     *coremocks.MockTimeProvider
	metrics  *metricsmocks.MockRecorder
	logger   *coremocks.MockLogger
	settings Settings
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		uow:     persistencemocks.NewMockUnitOfWork(t),
		orders:  persistencemocks.NewMockPaymentOrderRepository(t),
		users:   persistencemocks.NewMockUserRepository(t),
		grants:  persistencemocks.NewMockCreditGrantRepository(t),
		events:  persistencemocks.NewMockWebhookEventRepository(t),
		userUC:  usecasemocks.NewMockUserUseCase(t),
		gateway: gatewaymocks.NewMockPaymentGateway(t),
		dedup:   cachemocks.NewMockEventDeduplicator(t),
		ids:     coremocks.NewMockIDGenerator(t),
		time:    coremocks.NewMockTimeProvider(t),
		metrics: metricsmocks.NewMockRecorder(t),
		logger:  coremocks.NewPermissiveLogger(t),
		settings: Settings{
			KeySecret:          testKeySecret,
			WebhookSecret:      testWebhookSecret,
			MaxCreditsPerOrder: 100000,
			GatewayTimeout:     5 * time.Second,
		},
	}

	f.time.EXPECT().Now().Return(fixedNow).Maybe()
	f.time.EXPECT().Since(mock.Anything).Return(core.Duration(25 * time.Millisecond)).Maybe()
	f.time.EXPECT().WithTimeout(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, d core.Duration) (context.Context, context.CancelFunc) {
			return context.WithTimeout(ctx, d.Std())
		}).Maybe()

	f.uow.EXPECT().WithinTransaction(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) }).Maybe()

	f.ids.EXPECT().NewID().Return("generated-id").Maybe()
	f.gateway.EXPECT().Name().Return("mock").Maybe()
	f.gateway.EXPECT().KeyID().Return("rzp_test_key").Maybe()

	f.metrics.EXPECT().OrderCreated(mock.Anything).Maybe()
	f.metrics.EXPECT().SignatureFailure(mock.Anything).Maybe()
	f.metrics.EXPECT().CreditsGranted(mock.Anything).Maybe()
	f.metrics.EXPECT().Claim(mock.Anything, mock.Anything).Maybe()
	f.metrics.EXPECT().WebhookEvent(mock.Anything, mock.Anything).Maybe()
	f.metrics.EXPECT().GatewayRequest(mock.Anything, mock.Anything, mock.Anything).Maybe()
	f.metrics.EXPECT().Inconsistency().Maybe()

	return f
}

func (f *fixture) service() *Service {
	ledger := credit.NewLedger(f.uow, f.users, f.grants, f.ids, f.time, f.logger)
	return NewPaymentService(Dependencies{
		UnitOfWork:    f.uow,
		Orders:        f.orders,
		WebhookEvents: f.events,
		Users:         f.userUC,
		Ledger:        ledger,
		Gateway:       f.gateway,
		Deduplicator:  f.dedup,
		IDGenerator:   f.ids,
		TimeProvider:  f.time,
		Metrics:       f.metrics,
		Logger:        f.logger,
	}, f.settings)
}

// failCommit makes the outermost transaction run fn and then fail to commit.
// Nested transactions join it and run inline.
func (f *fixture) failCommit(t *testing.T, commitErr error) {
	f.uow = persistencemocks.NewMockUnitOfWork(t)
	f.uow.EXPECT().WithinTransaction(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			if err := fn(ctx); err != nil {
				return err
			}
			return commitErr
		}).Once()
	f.uow.EXPECT().WithinTransaction(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) }).Maybe()
}

func createdOrder(gatewayOrderID, userID string, credits int64) *entity.PaymentOrder {
	return &entity.PaymentOrder{
		ID:               "order-" + gatewayOrderID,
		UserID:           userID,
		GatewayOrderID:   gatewayOrderID,
		AmountMinorUnits: credits * 100,
		Currency:         "INR",
		CreditsPurchased: credits,
		Status:           entity.StatusCreated,
		PaymentMethod:    entity.DefaultPaymentMethod,
		CreatedAt:        fixedNow,
		UpdatedAt:        fixedNow,
	}
}

func claimed(order *entity.PaymentOrder, paymentID string) entity.ClaimOutcome {
	snapshot := *order
	snapshot.Status = entity.StatusSuccess
	snapshot.GatewayPaymentID = paymentID
	return entity.ClaimOutcome{Result: entity.ClaimClaimed, PreviousStatus: entity.StatusCreated, Order: &snapshot}
}

func alreadyTerminal(order *entity.PaymentOrder, status entity.PaymentStatus) entity.ClaimOutcome {
	snapshot := *order
	snapshot.Status = status
	return entity.ClaimOutcome{Result: entity.ClaimAlreadyTerminal, PreviousStatus: status, Order: &snapshot}
}
