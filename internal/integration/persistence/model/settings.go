package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/village-banking/backend/internal/domain/entity"
)

// settingsRowID is the fixed primary key of the settings singleton row.
const settingsRowID = 1

// SettingsModel represents the single-row settings table in the database.
type SettingsModel struct {
	ID                     int             `gorm:"primaryKey"`
	SharePrice             decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	SocialContribution     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	BirthdayContribution   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	DefaultInterestRate    decimal.Decimal `gorm:"type:decimal(8,4);not null"`
	DefaultInterestKind    string          `gorm:"type:varchar(20);not null"`
	MaxLoanMultiplier      decimal.Decimal `gorm:"type:decimal(8,2);not null"`
	LoanTermDays           int             `gorm:"not null"`
	LatePenaltyRate        decimal.Decimal `gorm:"type:decimal(8,4);not null"`
	AbsenteeFinePercentage decimal.Decimal `gorm:"type:decimal(8,4);not null"`
	Currency               string          `gorm:"type:varchar(10);not null"`
	BankName               string          `gorm:"type:varchar(255)"`
	UpdatedAt              time.Time       `gorm:"not null"`
}

// TableName returns the table name for the SettingsModel.
func (SettingsModel) TableName() string {
	return "settings"
}

// ToEntity converts a SettingsModel to a domain Settings entity.
func (m *SettingsModel) ToEntity() *entity.Settings {
	return &entity.Settings{
		SharePrice:             m.SharePrice,
		SocialContribution:     m.SocialContribution,
		BirthdayContribution:   m.BirthdayContribution,
		DefaultInterestRate:    m.DefaultInterestRate,
		DefaultInterestKind:    entity.InterestKind(m.DefaultInterestKind),
		MaxLoanMultiplier:      m.MaxLoanMultiplier,
		LoanTermDays:           m.LoanTermDays,
		LatePenaltyRate:        m.LatePenaltyRate,
		AbsenteeFinePercentage: m.AbsenteeFinePercentage,
		Currency:               m.Currency,
		BankName:               m.BankName,
		UpdatedAt:              m.UpdatedAt,
	}
}

// SettingsFromEntity creates a SettingsModel from a domain Settings entity.
func SettingsFromEntity(settings *entity.Settings) *SettingsModel {
	return &SettingsModel{
		ID:                     settingsRowID,
		SharePrice:             settings.SharePrice,
		SocialContribution:     settings.SocialContribution,
		BirthdayContribution:   settings.BirthdayContribution,
		DefaultInterestRate:    settings.DefaultInterestRate,
		DefaultInterestKind:    string(settings.DefaultInterestKind),
		MaxLoanMultiplier:      settings.MaxLoanMultiplier,
		LoanTermDays:           settings.LoanTermDays,
		LatePenaltyRate:        settings.LatePenaltyRate,
		AbsenteeFinePercentage: settings.AbsenteeFinePercentage,
		Currency:               settings.Currency,
		BankName:               settings.BankName,
		UpdatedAt:              settings.UpdatedAt,
	}
}
