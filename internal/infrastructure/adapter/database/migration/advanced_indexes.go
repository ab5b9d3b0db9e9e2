package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/credit-engine/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific indexes and constraints.
// On other dialects it does nothing.
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

var postgresStatements = []struct {
	name string
	sql  string
}{
	{
		// pending orders are the only ones a claim can still move
		name: "idx_payment_orders_pending",
		sql: `CREATE INDEX IF NOT EXISTS idx_payment_orders_pending
			ON payment_orders (gateway_order_id) WHERE status = 'CREATED'`,
	},
	{
		name: "idx_payment_orders_gateway_payment_id",
		sql: `CREATE UNIQUE INDEX IF NOT EXISTS idx_payment_orders_gateway_payment_id
			ON payment_orders (gateway_payment_id) WHERE gateway_payment_id IS NOT NULL`,
	},
	{
		name: "idx_webhook_events_received_at_brin",
		sql: `CREATE INDEX IF NOT EXISTS idx_webhook_events_received_at_brin
			ON webhook_events USING BRIN (received_at) WITH (pages_per_range = 32)`,
	},
	{
		name: "chk_payment_orders_status",
		sql: `DO $$ BEGIN
			ALTER TABLE payment_orders ADD CONSTRAINT chk_payment_orders_status
				CHECK (status IN ('CREATED', 'SUCCESS', 'FAILED', 'REFUNDED'));
		EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
	},
	{
		name: "chk_payment_orders_positive",
		sql: `DO $$ BEGIN
			ALTER TABLE payment_orders ADD CONSTRAINT chk_payment_orders_positive
				CHECK (amount_minor_units > 0 AND credits_purchased > 0);
		EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
	},
	{
		name: "chk_users_credits_non_negative",
		sql: `DO $$ BEGIN
			ALTER TABLE users ADD CONSTRAINT chk_users_credits_non_negative
				CHECK (free_credits >= 0 AND paid_credits >= 0 AND used_credits >= 0);
		EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
	},
}

// CreateAdvancedIndexes creates partial indexes and check constraints
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	if m.db.Dialector.Name() != "postgres" {
		m.logger.Debug("Skipping PostgreSQL indexes", map[string]any{
			"dialect": m.db.Dialector.Name(),
		})
		return nil
	}

	for _, stmt := range postgresStatements {
		if err := m.db.WithContext(ctx).Exec(stmt.sql).Error; err != nil {
			m.logger.Error("Failed to create index or constraint", map[string]any{
				"name":  stmt.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("PostgreSQL indexes and constraints created", map[string]any{
		"count": len(postgresStatements),
	})
	return nil
}
