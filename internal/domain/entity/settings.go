package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settings is the process-wide group configuration singleton. Updates replace
// the whole object so calculations never observe a torn configuration.
type Settings struct {
	SharePrice             decimal.Decimal
	SocialContribution     decimal.Decimal
	BirthdayContribution   decimal.Decimal
	DefaultInterestRate    decimal.Decimal // Percent
	DefaultInterestKind    InterestKind
	MaxLoanMultiplier      decimal.Decimal
	LoanTermDays           int
	LatePenaltyRate        decimal.Decimal // Percent applied to outstanding balance
	AbsenteeFinePercentage decimal.Decimal
	Currency               string
	BankName               string
	UpdatedAt              time.Time
}

// DefaultSettings returns the configuration a newly bootstrapped group starts with.
func DefaultSettings() *Settings {
	return &Settings{
		SharePrice:             decimal.NewFromInt(100),
		SocialContribution:     decimal.NewFromInt(50),
		BirthdayContribution:   decimal.NewFromInt(20),
		DefaultInterestRate:    decimal.NewFromInt(10),
		DefaultInterestKind:    InterestKindFlatOnce,
		MaxLoanMultiplier:      decimal.NewFromInt(3),
		LoanTermDays:           30,
		LatePenaltyRate:        decimal.NewFromInt(5),
		AbsenteeFinePercentage: decimal.NewFromInt(10),
		Currency:               "KES",
		BankName:               "",
		UpdatedAt:              time.Now().UTC(),
	}
}
