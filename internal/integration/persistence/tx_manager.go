// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/village-banking/backend/internal/application/adapter"
)

type txContextKey struct{}

// txManager implements adapter.TxManager on top of gorm transactions. The
// open transaction travels in the context so repositories join it without
// knowing whether one is active.
type txManager struct {
	db *gorm.DB
}

// NewTxManager creates a new transaction manager instance.
func NewTxManager(db *gorm.DB) adapter.TxManager {
	return &txManager{
		db: db,
	}
}

// WithinTx executes fn inside a single database transaction. Returning an
// error from fn rolls everything back.
func (m *txManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if txFromContext(ctx) != nil {
		// Already inside a transaction; join it instead of nesting.
		return fn(ctx)
	}

	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txContextKey{}, tx))
	})
}

// txFromContext returns the transaction carried in ctx, or nil when none is active.
func txFromContext(ctx context.Context) *gorm.DB {
	tx, _ := ctx.Value(txContextKey{}).(*gorm.DB)
	return tx
}

// dbFromContext returns the active transaction when one is carried in ctx,
// falling back to the base connection.
func dbFromContext(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx := txFromContext(ctx); tx != nil {
		return tx
	}
	return db.WithContext(ctx)
}
