// Package app assembles the credit engine from its configuration.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/credit-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-engine/internal/domain/port/cache"
	"github.com/amirhossein-jamali/credit-engine/internal/domain/port/gateway"
	metricsport "github.com/amirhossein-jamali/credit-engine/internal/domain/port/metrics"
	"github.com/amirhossein-jamali/credit-engine/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/credit-engine/internal/domain/usecase/credit"
	"github.com/amirhossein-jamali/credit-engine/internal/domain/usecase/payment"
	"github.com/amirhossein-jamali/credit-engine/internal/domain/usecase/user"
	"github.com/amirhossein-jamali/credit-engine/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/credit-engine/internal/infrastructure/adapter/api/routes"
	cacheadapter "github.com/amirhossein-jamali/credit-engine/internal/infrastructure/adapter/cache"
	"github.com/amirhossein-jamali/credit-engine/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/credit-engine/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/credit-engine/internal/infrastructure/adapter/dynamostore"
	gatewayadapter "github.com/amirhossein-jamali/credit-engine/internal/infrastructure/adapter/gateway"
	"github.com/amirhossein-jamali/credit-engine/internal/infrastructure/adapter/idgen"
	"github.com/amirhossein-jamali/credit-engine/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/credit-engine/internal/infrastructure/adapter/repository"
	timeadapter "github.com/amirhossein-jamali/credit-engine/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/credit-engine/internal/infrastructure/config"
)

// Storage backends for payment orders
const (
	StorageSQL      = "sql"
	StorageDynamoDB = "dynamodb"
)

// Options override parts of the configured assembly
type Options struct {
	// Gateway replaces the configured payment gateway
	Gateway gateway.PaymentGateway
	// TimeProvider replaces the wall clock
	TimeProvider coreport.TimeProvider
	// DatabaseConfig replaces the database settings derived from the configuration
	DatabaseConfig *database.Config
}

// App holds the assembled services and the resources they own
type App struct {
	Config   *config.Config
	Logger   coreport.Logger
	Database *database.Manager
	Orders   persistence.PaymentOrderRepository
	Users    *user.UserUseCase
	Payments *payment.Service
	Gateway  gateway.PaymentGateway
	Metrics  metricsport.Recorder

	closers []func() error
}

// New connects to every configured backend and wires the services.
// Resources opened before a failure are released.
func New(ctx context.Context, cfg *config.Config, logger coreport.Logger, opts Options) (_ *App, err error) {
	a := &App{Config: cfg, Logger: logger}
	defer func() {
		if err != nil {
			_ = a.Close()
		}
	}()

	tp := opts.TimeProvider
	if tp == nil {
		tp = timeadapter.NewRealTimeProvider()
	}

	dbConfig := opts.DatabaseConfig
	if dbConfig == nil {
		dbConfig = database.FromAppConfig(cfg)
	}
	a.Database = database.NewManager(dbConfig, logger, tp)
	if _, err := a.Database.Connect(ctx); err != nil {
		return nil, err
	}
	a.closers = append(a.closers, a.Database.Close)

	if err := a.Database.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	a.Metrics = metricsport.Recorder(metrics.NoopRecorder{})
	if cfg.Metrics.Enabled {
		a.Metrics = metrics.NewRecorder()
		if sqlDB, err := a.Database.SQLDB(); err == nil {
			if err := metrics.RegisterDBStats(sqlDB, cfg.Database.Driver); err != nil {
				logger.Warn("Failed to register database pool metrics", map[string]any{"error": err.Error()})
			}
		}
	}

	db := a.Database.DB()
	ids := idgen.NewGenerator(cfg.Payment.ReceiptPrefix)
	uow := a.Database.CreateUnitOfWork()
	userRepo := repository.NewUserRepository(db, tp, logger)

	a.Orders, err = a.orderRepository(ctx, db)
	if err != nil {
		return nil, err
	}

	a.Gateway = opts.Gateway
	if a.Gateway == nil {
		a.Gateway = newGateway(cfg.Gateway, logger)
	}

	dedup, err := a.deduplicator(ctx)
	if err != nil {
		return nil, err
	}

	a.Users = user.NewUserUseCase(userRepo, ids, tp, logger, cfg.User.DefaultFreeCredits)
	ledger := credit.NewLedger(uow, userRepo, repository.NewCreditGrantRepository(db, logger), ids, tp, logger)

	a.Payments = payment.NewPaymentService(payment.Dependencies{
		UnitOfWork:    uow,
		Orders:        a.Orders,
		WebhookEvents: repository.NewWebhookEventRepository(db, logger),
		Users:         a.Users,
		Ledger:        ledger,
		Gateway:       a.Gateway,
		Deduplicator:  dedup,
		IDGenerator:   ids,
		TimeProvider:  tp,
		Metrics:       a.Metrics,
		Logger:        logger,
	}, payment.Settings{
		KeySecret:           cfg.Gateway.KeySecret,
		WebhookSecret:       cfg.Gateway.WebhookSecret,
		Currency:            cfg.Gateway.Currency,
		MinorUnitsPerCredit: cfg.Payment.MinorUnitsPerCredit,
		MaxCreditsPerOrder:  cfg.Payment.MaxCreditsPerOrder,
		PaymentMethod:       cfg.Payment.PaymentMethod,
		GatewayTimeout:      cfg.Gateway.Timeout,
	})

	if cfg.User.SeedDefaultUsers {
		if err := migration.SeedDefaultUsers(ctx, a.Users); err != nil {
			logger.Error("Failed to create default users", map[string]any{"error": err.Error()})
		}
	}

	logger.Info("Credit engine assembled", map[string]any{
		"storage":  cfg.Storage.PaymentOrders,
		"gateway":  a.Gateway.Name(),
		"redis":    dedup != nil,
		"metrics":  cfg.Metrics.Enabled,
		"database": cfg.Database.Driver,
	})

	return a, nil
}

// Router builds the HTTP router over the assembled services
func (a *App) Router() *gin.Engine {
	router := gin.New()
	routes.SetupMiddlewares(router, a.Logger, a.Config.Metrics.Enabled)
	routes.SetupRoutes(router,
		handler.NewPaymentHandler(a.Payments, a.Config.Server.WebhookMaxBodyBytes, a.Logger),
		handler.NewUserHandler(a.Users, a.Logger),
		handler.NewHealthHandler(a.Database, a.Logger),
	)
	return router
}

// Close releases resources in reverse order of acquisition
func (a *App) Close() error {
	var errList []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errList = append(errList, err)
		}
	}
	a.closers = nil
	return errors.Join(errList...)
}

func (a *App) orderRepository(ctx context.Context, db *gorm.DB) (persistence.PaymentOrderRepository, error) {
	if a.Config.Storage.PaymentOrders != StorageDynamoDB {
		return repository.NewPaymentOrderRepository(db, a.Logger), nil
	}

	dc := a.Config.DynamoDB
	client, err := dynamostore.NewClient(ctx, dynamostore.ClientConfig{
		Region:          dc.Region,
		Endpoint:        dc.Endpoint,
		AccessKeyID:     dc.AccessKeyID,
		SecretAccessKey: dc.SecretAccessKey,
	})
	if err != nil {
		return nil, err
	}
	orders := dynamostore.NewPaymentOrderRepository(client, dc.Table, dc.UserIndex, a.Logger)
	if err := orders.EnsureTable(ctx); err != nil {
		return nil, err
	}
	return orders, nil
}

func (a *App) deduplicator(ctx context.Context) (cache.EventDeduplicator, error) {
	rc := a.Config.Redis
	if !rc.Enabled {
		return nil, nil
	}
	dedup, err := cacheadapter.NewRedisDeduplicator(ctx, cacheadapter.Options{
		Addr:     rc.Addr,
		Password: rc.Password,
		DB:       rc.DB,
		TTL:      rc.DedupTTL,
	}, a.Logger)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, dedup.Close)
	return dedup, nil
}

func newGateway(gc config.GatewayConfig, logger coreport.Logger) gateway.PaymentGateway {
	if gc.Provider == gatewayadapter.ProviderMock {
		return gatewayadapter.NewMockGateway(gc.KeyID, logger)
	}
	return gatewayadapter.NewRazorpayGateway(gatewayadapter.RazorpayConfig{
		KeyID:     gc.KeyID,
		KeySecret: gc.KeySecret,
		BaseURL:   gc.BaseURL,
		Timeout:   gc.Timeout,
	}, logger)
}
