package database

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/credit-engine/internal/domain/port/core"
)

var testDatabaseSeq atomic.Int64

// NewTestManager connects to a fresh, migrated in-memory SQLite database.
// Each call gets its own database, closed when the test finishes.
func NewTestManager(t testing.TB, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	config := DefaultConfig()
	config.Driver = DriverSQLite
	config.SQLitePath = fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, testDatabaseSeq.Add(1))
	config.LogLevel = "silent"
	config.RetryAttempts = 1
	config.QueryTimeout = 5 * time.Second

	manager := NewManager(config, logger, timeProvider)
	if _, err := manager.Connect(context.Background()); err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("failed to close test database: %v", err)
		}
	})

	if err := manager.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return manager
}
