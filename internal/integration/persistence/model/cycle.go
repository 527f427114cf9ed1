package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/village-banking/backend/internal/domain/entity"
)

// CycleModel represents the cycles table in the database.
type CycleModel struct {
	ID               uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name             string           `gorm:"type:varchar(255);not null"`
	StartDate        time.Time        `gorm:"type:date;not null"`
	EndDate          time.Time        `gorm:"type:date;not null"`
	Status           string           `gorm:"type:varchar(20);not null;index"`
	TotalShares      int              `gorm:"not null;default:0"`
	TotalSavings     decimal.Decimal  `gorm:"type:decimal(15,2);not null;default:0"`
	DividendPerShare *decimal.Decimal `gorm:"type:decimal(15,2)"`
	ClosedAt         *time.Time
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`
}

// TableName returns the table name for the CycleModel.
func (CycleModel) TableName() string {
	return "cycles"
}

// ToEntity converts a CycleModel to a domain Cycle entity.
func (m *CycleModel) ToEntity() *entity.Cycle {
	return &entity.Cycle{
		ID:               m.ID,
		Name:             m.Name,
		StartDate:        m.StartDate,
		EndDate:          m.EndDate,
		Status:           entity.CycleStatus(m.Status),
		TotalShares:      m.TotalShares,
		TotalSavings:     m.TotalSavings,
		DividendPerShare: m.DividendPerShare,
		ClosedAt:         m.ClosedAt,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// CycleFromEntity creates a CycleModel from a domain Cycle entity.
func CycleFromEntity(cycle *entity.Cycle) *CycleModel {
	return &CycleModel{
		ID:               cycle.ID,
		Name:             cycle.Name,
		StartDate:        cycle.StartDate,
		EndDate:          cycle.EndDate,
		Status:           string(cycle.Status),
		TotalShares:      cycle.TotalShares,
		TotalSavings:     cycle.TotalSavings,
		DividendPerShare: cycle.DividendPerShare,
		ClosedAt:         cycle.ClosedAt,
		CreatedAt:        cycle.CreatedAt,
		UpdatedAt:        cycle.UpdatedAt,
	}
}
