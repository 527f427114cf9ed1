package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/village-banking/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for the append-only ledger.
// There are deliberately no update or delete operations.
type TransactionRepository interface {
	// Create appends a new ledger entry.
	Create(ctx context.Context, tx *entity.Transaction) error

	// FindAll retrieves all ledger entries, newest first.
	FindAll(ctx context.Context) ([]*entity.Transaction, error)

	// FindByMember retrieves all ledger entries for a member, newest first.
	FindByMember(ctx context.Context, memberID uuid.UUID) ([]*entity.Transaction, error)

	// SumByType returns the total amount recorded under the given entry types.
	SumByType(ctx context.Context, types ...entity.TransactionType) (decimal.Decimal, error)

	// ExistsByMember reports whether any ledger entry references the member.
	ExistsByMember(ctx context.Context, memberID uuid.UUID) (bool, error)
}
