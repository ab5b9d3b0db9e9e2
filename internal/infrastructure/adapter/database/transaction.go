package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	coreport "github.com/amirhossein-jamali/credit-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-engine/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/credit-engine/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

var errNoTransaction = errors.New("no transaction found in context")

// UnitOfWork implements the unit of work pattern for database transactions.
// Transactions run at READ COMMITTED: claims are conditional UPDATEs that
// re-check their predicate after waiting on a row lock, so stronger
// isolation would only add serialization failures.
type UnitOfWork struct {
	db     *gorm.DB
	logger coreport.Logger
}

var _ persistence.UnitOfWork = (*UnitOfWork)(nil)

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger) *UnitOfWork {
	return &UnitOfWork{
		db:     db,
		logger: logger,
	}
}

// Begin starts a new database transaction
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return ctx, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	if u.db.Dialector.Name() == DriverPostgres {
		if err := tx.Exec("SET TRANSACTION ISOLATION LEVEL READ COMMITTED").Error; err != nil {
			tx.Rollback()
			u.logger.Error("Failed to set transaction isolation level", map[string]any{"error": err.Error()})
			return ctx, fmt.Errorf("failed to set transaction isolation level: %w", err)
		}
	}

	return repository.WithTx(ctx, tx), nil
}

// Commit commits the current transaction
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := repository.TxFromContext(ctx)
	if !ok {
		return errNoTransaction
	}

	if err := tx.Commit().Error; err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Rollback rolls back the current transaction
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := repository.TxFromContext(ctx)
	if !ok {
		return errNoTransaction
	}

	err := tx.Rollback().Error
	if err != nil && strings.Contains(err.Error(), "already been committed or rolled back") {
		u.logger.Warn("Transaction has already been committed or rolled back", map[string]any{
			"error": err.Error(),
		})
		return nil
	}
	if err != nil {
		u.logger.Error("Failed to rollback transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}
	return nil
}

// WithinTransaction runs fn in a transaction, committing when it returns nil.
// A ctx that already carries a transaction is reused as is.
func (u *UnitOfWork) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := repository.TxFromContext(ctx); ok {
		return fn(ctx)
	}

	txCtx, err := u.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = u.Rollback(txCtx)
			panic(p)
		}
	}()

	if err := fn(txCtx); err != nil {
		if rbErr := u.Rollback(txCtx); rbErr != nil {
			u.logger.Error("Rollback after failure did not complete", map[string]any{
				"error":          err.Error(),
				"rollback_error": rbErr.Error(),
			})
		}
		return err
	}

	return u.Commit(txCtx)
}
