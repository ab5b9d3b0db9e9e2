package database

import (
	"context"
	"database/sql"
	"time"

	coreport "github.com/amirhossein-jamali/credit-engine/internal/domain/port/core"
)

// PoolMonitor periodically pings the database and warns when the
// connection pool is close to exhaustion. Pool gauges themselves are
// exported by the prometheus DB stats collector.
type PoolMonitor struct {
	sqlDB    *sql.DB
	logger   coreport.Logger
	interval time.Duration
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewPoolMonitor creates a new pool monitor
func NewPoolMonitor(sqlDB *sql.DB, logger coreport.Logger, interval time.Duration) *PoolMonitor {
	return &PoolMonitor{
		sqlDB:    sqlDB,
		logger:   logger,
		interval: interval,
	}
}

// Start begins monitoring in the background
func (m *PoolMonitor) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.done = make(chan struct{})

	go func() {
		defer close(m.done)
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.check(ctx)
			}
		}
	}()
}

// Stop stops the monitoring and waits for the loop to exit
func (m *PoolMonitor) Stop() {
	if m.cancel == nil {
		return
	}
	m.cancel()
	<-m.done
}

func (m *PoolMonitor) check(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := m.sqlDB.PingContext(pingCtx); err != nil && ctx.Err() == nil {
		m.logger.Error("Database ping failed", map[string]any{
			"error": err.Error(),
		})
	}

	stats := m.sqlDB.Stats()
	if stats.MaxOpenConnections > 0 && float64(stats.InUse) > float64(stats.MaxOpenConnections)*0.8 {
		m.logger.Warn("Database connection pool nearly exhausted", map[string]any{
			"in_use":     stats.InUse,
			"max_open":   stats.MaxOpenConnections,
			"idle":       stats.Idle,
			"wait_count": stats.WaitCount,
			"wait_time":  stats.WaitDuration.String(),
		})
	}
}
