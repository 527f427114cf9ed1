package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/village-banking/backend/internal/domain/entity"
)

// LoanModel represents the loans table in the database. Main and social loans
// share the table; the family column selects between them.
type LoanModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	MemberID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Family          string          `gorm:"type:varchar(10);not null;index"`
	PrincipalAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	InterestRate    decimal.Decimal `gorm:"type:decimal(8,4);not null"`
	InterestKind    string          `gorm:"type:varchar(20);not null"`
	InterestAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TotalRepayment  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	AmountPaid      decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Status          string          `gorm:"type:varchar(20);not null;index"`
	RequestDate     time.Time       `gorm:"not null"`
	ApprovalDate    *time.Time
	DueDate         time.Time `gorm:"not null;index"`
	RolloverCount   int       `gorm:"not null;default:0"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}

// TableName returns the table name for the LoanModel.
func (LoanModel) TableName() string {
	return "loans"
}

// ToEntity converts a LoanModel to a domain Loan entity.
func (m *LoanModel) ToEntity() *entity.Loan {
	return &entity.Loan{
		ID:              m.ID,
		MemberID:        m.MemberID,
		Family:          entity.LoanFamily(m.Family),
		PrincipalAmount: m.PrincipalAmount,
		InterestRate:    m.InterestRate,
		InterestKind:    entity.InterestKind(m.InterestKind),
		InterestAmount:  m.InterestAmount,
		TotalRepayment:  m.TotalRepayment,
		AmountPaid:      m.AmountPaid,
		Status:          entity.LoanStatus(m.Status),
		RequestDate:     m.RequestDate,
		ApprovalDate:    m.ApprovalDate,
		DueDate:         m.DueDate,
		RolloverCount:   m.RolloverCount,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// LoanFromEntity creates a LoanModel from a domain Loan entity.
func LoanFromEntity(loan *entity.Loan) *LoanModel {
	return &LoanModel{
		ID:              loan.ID,
		MemberID:        loan.MemberID,
		Family:          string(loan.Family),
		PrincipalAmount: loan.PrincipalAmount,
		InterestRate:    loan.InterestRate,
		InterestKind:    string(loan.InterestKind),
		InterestAmount:  loan.InterestAmount,
		TotalRepayment:  loan.TotalRepayment,
		AmountPaid:      loan.AmountPaid,
		Status:          string(loan.Status),
		RequestDate:     loan.RequestDate,
		ApprovalDate:    loan.ApprovalDate,
		DueDate:         loan.DueDate,
		RolloverCount:   loan.RolloverCount,
		CreatedAt:       loan.CreatedAt,
		UpdatedAt:       loan.UpdatedAt,
	}
}
