package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating transaction operations
// across multiple repositories to maintain data consistency.
// Repositories pick the transaction up from the context returned by Begin.
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// WithinTransaction runs fn inside a transaction. If ctx already carries one,
	// fn joins it and the outer caller decides the outcome.
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
