package migration

import (
	"context"
	"errors"
	"fmt"

	coreport "github.com/amirhossein-jamali/credit-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-engine/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

const (
	// CurrentSchemaVersion represents the current database schema version
	CurrentSchemaVersion = "1.1.0"
)

// step upgrades the schema from the previous version to version
type step struct {
	version string
	details string
	run     func(ctx context.Context, db *gorm.DB) error
}

// MigrationManager manages database migrations
type MigrationManager struct {
	db               *gorm.DB
	logger           coreport.Logger
	timeProvider     coreport.TimeProvider
	advancedIndexMgr *AdvancedIndexManager
	steps            []step
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	m := &MigrationManager{
		db:               db,
		logger:           logger,
		timeProvider:     timeProvider,
		advancedIndexMgr: NewAdvancedIndexManager(db, logger),
	}
	m.steps = []step{
		{version: "1.0.0", details: "users, payment orders, credit grants", run: m.createCoreTables},
		{version: "1.1.0", details: "webhook event log", run: m.createWebhookEvents},
	}
	return m
}

// MigrateAll applies every step newer than the recorded version
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
		"dialect":        m.db.Dialector.Name(),
	})

	if err := m.db.WithContext(ctx).AutoMigrate(&model.MigrationVersion{}); err != nil {
		return fmt.Errorf("create migration version table: %w", err)
	}

	currentVersion, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	if currentVersion == CurrentSchemaVersion {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": currentVersion,
		})
		return nil
	}

	pending := m.pendingSteps(currentVersion)
	for _, s := range pending {
		m.logger.Info("Applying migration", map[string]any{
			"version": s.version,
			"details": s.details,
		})

		err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := s.run(ctx, tx); err != nil {
				return err
			}
			return m.setVersion(tx, s.version, s.details)
		})
		if err != nil {
			m.logger.Error("Migration failed", map[string]any{
				"version": s.version,
				"error":   err.Error(),
			})
			return fmt.Errorf("migration %s: %w", s.version, err)
		}
	}

	if err := m.advancedIndexMgr.CreateAdvancedIndexes(ctx); err != nil {
		return fmt.Errorf("create advanced indexes: %w", err)
	}

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"from":    currentVersion,
		"version": CurrentSchemaVersion,
		"applied": len(pending),
	})
	return nil
}

// GetCurrentVersion gets the most recently applied migration version
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	var version model.MigrationVersion
	result := m.db.WithContext(ctx).Order("id desc").Take(&version)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", result.Error
	}

	return version.Version, nil
}

func (m *MigrationManager) pendingSteps(currentVersion string) []step {
	if currentVersion == "" {
		return m.steps
	}
	for i, s := range m.steps {
		if s.version == currentVersion {
			return m.steps[i+1:]
		}
	}
	m.logger.Warn("Unknown schema version, reapplying all migrations", map[string]any{
		"version": currentVersion,
	})
	return m.steps
}

func (m *MigrationManager) setVersion(tx *gorm.DB, version, details string) error {
	return tx.Create(&model.MigrationVersion{
		Version:   version,
		AppliedAt: m.timeProvider.Now(),
		Details:   details,
	}).Error
}

func (m *MigrationManager) createCoreTables(_ context.Context, tx *gorm.DB) error {
	return tx.AutoMigrate(
		&model.User{},
		&model.PaymentOrder{},
		&model.CreditGrant{},
	)
}

func (m *MigrationManager) createWebhookEvents(_ context.Context, tx *gorm.DB) error {
	return tx.AutoMigrate(&model.WebhookEvent{})
}
