package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	coreport "github.com/amirhossein-jamali/credit-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-engine/internal/infrastructure/adapter/database/migration"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Manager owns the database connection and its supporting services
type Manager struct {
	config       *Config
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	poolMonitor  *PoolMonitor
}

// NewManager creates a new database manager
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		config:       config,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// Connect opens the database, retrying while it is unreachable
func (m *Manager) Connect(ctx context.Context) (*gorm.DB, error) {
	if err := m.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	m.logger.Info("Connecting to database", map[string]any{
		"driver": m.config.Driver,
		"host":   m.config.Host,
		"port":   m.config.Port,
		"name":   m.config.Database,
	})

	gormConfig := &gorm.Config{
		Logger:         NewDatabaseLogger(m.logger, m.timeProvider, m.config.LogLevel),
		NowFunc:        func() time.Time { return m.timeProvider.Now() },
		TranslateError: true,
		PrepareStmt:    m.config.Driver == DriverPostgres,
	}

	retry := RetryConfig{
		MaxAttempts:   m.config.RetryAttempts,
		RetryInterval: m.config.RetryDelay,
		MaxInterval:   8 * m.config.RetryDelay,
		JitterFactor:  0.2,
	}

	var gormDB *gorm.DB
	err := RetryOnConnectionError(ctx, retry, func() error {
		var openErr error
		gormDB, openErr = gorm.Open(m.dialector(), gormConfig)
		return openErr
	}, m.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	maxOpen := m.config.MaxOpenConns
	if m.inMemorySQLite() {
		// every connection to a shared in-memory database contends on one lock
		maxOpen = 1
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(min(m.config.MaxIdleConns, maxOpen))
	sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(m.config.ConnMaxIdleTime)
	if m.inMemorySQLite() {
		// the database disappears with its last connection
		sqlDB.SetConnMaxLifetime(0)
		sqlDB.SetConnMaxIdleTime(0)
	}

	m.db = gormDB
	m.logger.Info("Successfully connected to database", map[string]any{
		"driver":          m.config.Driver,
		"max_open_conns":  maxOpen,
		"query_timeout_s": m.config.QueryTimeout.Seconds(),
	})

	return m.db, nil
}

// StartMonitoring starts background pool health checks
func (m *Manager) StartMonitoring(interval time.Duration) error {
	sqlDB, err := m.SQLDB()
	if err != nil {
		return err
	}
	m.poolMonitor = NewPoolMonitor(sqlDB, m.logger, interval)
	m.poolMonitor.Start()
	return nil
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// SQLDB returns the underlying connection pool
func (m *Manager) SQLDB() (*sql.DB, error) {
	if m.db == nil {
		return nil, fmt.Errorf("database is not connected")
	}
	return m.db.DB()
}

// Ping checks that the database answers within the query timeout
func (m *Manager) Ping(ctx context.Context) error {
	sqlDB, err := m.SQLDB()
	if err != nil {
		return err
	}
	ctx, cancel := m.WithTimeout(ctx)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

// Close closes the database connection
func (m *Manager) Close() error {
	m.logger.Info("Closing database connection", nil)

	if m.poolMonitor != nil {
		m.poolMonitor.Stop()
	}

	sqlDB, err := m.SQLDB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// WithTimeout returns a context with timeout for database operations
func (m *Manager) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, m.config.QueryTimeout)
}

// CreateUnitOfWork creates a new UnitOfWork instance
func (m *Manager) CreateUnitOfWork() *UnitOfWork {
	return NewUnitOfWork(m.db, m.logger)
}

// Migrate brings the schema to the current version
func (m *Manager) Migrate(ctx context.Context) error {
	return migration.NewMigrationManager(m.db, m.logger, m.timeProvider).MigrateAll(ctx)
}

// SchemaVersion reports the most recently applied migration
func (m *Manager) SchemaVersion(ctx context.Context) (string, error) {
	return migration.NewMigrationManager(m.db, m.logger, m.timeProvider).GetCurrentVersion(ctx)
}

func (m *Manager) dialector() gorm.Dialector {
	if m.config.Driver == DriverSQLite {
		return sqlite.Open(m.config.DSN())
	}
	return postgres.Open(m.config.DSN())
}

func (m *Manager) inMemorySQLite() bool {
	dsn := m.config.SQLitePath
	return m.config.Driver == DriverSQLite &&
		(strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory"))
}
