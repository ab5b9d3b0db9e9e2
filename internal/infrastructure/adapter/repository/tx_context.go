package repository

import (
	"context"

	"gorm.io/gorm"
)

type txContextKey struct{}

// WithTx returns a context carrying an open transaction. Repositories built on
// the same database pick it up, so several writes commit or roll back together.
func WithTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txContextKey{}, tx)
}

// TxFromContext returns the transaction carried by ctx, if any
func TxFromContext(ctx context.Context) (*gorm.DB, bool) {
	tx, ok := ctx.Value(txContextKey{}).(*gorm.DB)
	return tx, ok && tx != nil
}

// conn returns the transaction from ctx or the base connection bound to ctx
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := TxFromContext(ctx); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}
