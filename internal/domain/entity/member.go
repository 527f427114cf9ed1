// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MemberStatus represents the membership state of a group member.
type MemberStatus string

const (
	MemberStatusActive    MemberStatus = "active"
	MemberStatusSuspended MemberStatus = "suspended"
	MemberStatusLeft      MemberStatus = "left"
)

// Member represents a registered member of the village banking group.
type Member struct {
	ID                    uuid.UUID
	Name                  string
	NationalID            string
	Phone                 string
	Status                MemberStatus
	TotalShares           int
	TotalSavings          decimal.Decimal // Always TotalShares * Settings.SharePrice
	SocialContributions   decimal.Decimal
	BirthdayContributions decimal.Decimal
	JoinDate              time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
	DeletedAt             *time.Time // Soft-delete support
}

// NewMember creates a new Member entity with active status and zeroed balances.
func NewMember(name, nationalID, phone string, joinDate time.Time) *Member {
	now := time.Now().UTC()

	return &Member{
		ID:                    uuid.New(),
		Name:                  name,
		NationalID:            nationalID,
		Phone:                 phone,
		Status:                MemberStatusActive,
		TotalShares:           0,
		TotalSavings:          decimal.Zero,
		SocialContributions:   decimal.Zero,
		BirthdayContributions: decimal.Zero,
		JoinDate:              joinDate,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
}

// IsActive reports whether the member may transact and borrow.
func (m *Member) IsActive() bool {
	return m.Status == MemberStatusActive
}
