// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/village-banking/backend/internal/domain/entity"
)

// MemberModel represents the members table in the database.
type MemberModel struct {
	ID                    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name                  string          `gorm:"type:varchar(255);not null"`
	NationalID            string          `gorm:"type:varchar(50);not null"`
	Phone                 string          `gorm:"type:varchar(30);not null"`
	Status                string          `gorm:"type:varchar(20);not null;default:'active';index"`
	TotalShares           int             `gorm:"not null;default:0"`
	TotalSavings          decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	SocialContributions   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	BirthdayContributions decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	JoinDate              time.Time       `gorm:"type:date;not null"`
	CreatedAt             time.Time       `gorm:"not null"`
	UpdatedAt             time.Time       `gorm:"not null"`
	DeletedAt             gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the MemberModel.
func (MemberModel) TableName() string {
	return "members"
}

// ToEntity converts a MemberModel to a domain Member entity.
func (m *MemberModel) ToEntity() *entity.Member {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Member{
		ID:                    m.ID,
		Name:                  m.Name,
		NationalID:            m.NationalID,
		Phone:                 m.Phone,
		Status:                entity.MemberStatus(m.Status),
		TotalShares:           m.TotalShares,
		TotalSavings:          m.TotalSavings,
		SocialContributions:   m.SocialContributions,
		BirthdayContributions: m.BirthdayContributions,
		JoinDate:              m.JoinDate,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
		DeletedAt:             deletedAt,
	}
}

// MemberFromEntity creates a MemberModel from a domain Member entity.
func MemberFromEntity(member *entity.Member) *MemberModel {
	var deletedAt gorm.DeletedAt
	if member.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *member.DeletedAt, Valid: true}
	}

	return &MemberModel{
		ID:                    member.ID,
		Name:                  member.Name,
		NationalID:            member.NationalID,
		Phone:                 member.Phone,
		Status:                string(member.Status),
		TotalShares:           member.TotalShares,
		TotalSavings:          member.TotalSavings,
		SocialContributions:   member.SocialContributions,
		BirthdayContributions: member.BirthdayContributions,
		JoinDate:              member.JoinDate,
		CreatedAt:             member.CreatedAt,
		UpdatedAt:             member.UpdatedAt,
		DeletedAt:             deletedAt,
	}
}
