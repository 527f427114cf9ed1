package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CycleStatus represents the state of an accounting cycle.
type CycleStatus string

const (
	CycleStatusActive CycleStatus = "active"
	CycleStatusClosed CycleStatus = "closed"
)

// Cycle is a bounded accounting period. At close, share and savings totals and
// the per-share dividend are frozen as a point-in-time snapshot.
type Cycle struct {
	ID               uuid.UUID
	Name             string
	StartDate        time.Time
	EndDate          time.Time
	Status           CycleStatus
	TotalShares      int
	TotalSavings     decimal.Decimal
	DividendPerShare *decimal.Decimal // Nil until the cycle is closed
	ClosedAt         *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewCycle creates a new active cycle.
func NewCycle(name string, startDate, endDate time.Time) *Cycle {
	now := time.Now().UTC()

	return &Cycle{
		ID:           uuid.New(),
		Name:         name,
		StartDate:    startDate,
		EndDate:      endDate,
		Status:       CycleStatusActive,
		TotalSavings: decimal.Zero,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
