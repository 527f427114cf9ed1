package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/village-banking/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database. Rows are
// append-only; there is no soft-delete column on purpose.
type TransactionModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	MemberID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type        string          `gorm:"type:varchar(30);not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date        time.Time       `gorm:"not null;index"`
	Description string          `gorm:"type:text"`
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:          m.ID,
		MemberID:    m.MemberID,
		Type:        entity.TransactionType(m.Type),
		Amount:      m.Amount,
		Date:        m.Date,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(tx *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:          tx.ID,
		MemberID:    tx.MemberID,
		Type:        string(tx.Type),
		Amount:      tx.Amount,
		Date:        tx.Date,
		Description: tx.Description,
		CreatedAt:   tx.CreatedAt,
	}
}
