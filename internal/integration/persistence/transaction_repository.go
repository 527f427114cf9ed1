package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/village-banking/backend/internal/application/adapter"
	"github.com/village-banking/backend/internal/domain/entity"
	"github.com/village-banking/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository
// interface. The ledger is append-only, so there are no update or delete
// methods.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create appends a new ledger entry.
func (r *transactionRepository) Create(ctx context.Context, tx *entity.Transaction) error {
	txModel := model.TransactionFromEntity(tx)
	result := dbFromContext(ctx, r.db).Create(txModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindAll retrieves all ledger entries, newest first.
func (r *transactionRepository) FindAll(ctx context.Context) ([]*entity.Transaction, error) {
	var txModels []model.TransactionModel
	result := dbFromContext(ctx, r.db).
		Order("date DESC, created_at DESC").
		Find(&txModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.Transaction, len(txModels))
	for i, tm := range txModels {
		transactions[i] = tm.ToEntity()
	}
	return transactions, nil
}

// FindByMember retrieves all ledger entries for a member, newest first.
func (r *transactionRepository) FindByMember(ctx context.Context, memberID uuid.UUID) ([]*entity.Transaction, error) {
	var txModels []model.TransactionModel
	result := dbFromContext(ctx, r.db).
		Where("member_id = ?", memberID).
		Order("date DESC, created_at DESC").
		Find(&txModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.Transaction, len(txModels))
	for i, tm := range txModels {
		transactions[i] = tm.ToEntity()
	}
	return transactions, nil
}

// SumByType returns the total amount recorded under the given entry types.
func (r *transactionRepository) SumByType(ctx context.Context, types ...entity.TransactionType) (decimal.Decimal, error) {
	if len(types) == 0 {
		return decimal.Zero, nil
	}

	typeStrings := make([]string, len(types))
	for i, t := range types {
		typeStrings[i] = string(t)
	}

	var total decimal.Decimal
	result := dbFromContext(ctx, r.db).
		Model(&model.TransactionModel{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("type IN ?", typeStrings).
		Scan(&total)
	if result.Error != nil {
		return decimal.Zero, result.Error
	}
	return total, nil
}

// ExistsByMember reports whether any ledger entry references the member.
func (r *transactionRepository) ExistsByMember(ctx context.Context, memberID uuid.UUID) (bool, error) {
	var count int64
	result := dbFromContext(ctx, r.db).
		Model(&model.TransactionModel{}).
		Where("member_id = ?", memberID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
