package dto

import (
	"time"

	"github.com/village-banking/backend/internal/domain/entity"
)

// UpdateSettingsRequest represents the request body for a settings patch. All
// fields are optional; only those present are applied.
type UpdateSettingsRequest struct {
	SharePrice             *string `json:"share_price,omitempty"`
	SocialContribution     *string `json:"social_contribution,omitempty"`
	BirthdayContribution   *string `json:"birthday_contribution,omitempty"`
	DefaultInterestRate    *string `json:"default_interest_rate,omitempty"`
	DefaultInterestKind    *string `json:"default_interest_kind,omitempty" binding:"omitempty,oneof=flat_once linear compound"`
	MaxLoanMultiplier      *string `json:"max_loan_multiplier,omitempty"`
	LoanTermDays           *int    `json:"loan_term_days,omitempty" binding:"omitempty,gt=0"`
	LatePenaltyRate        *string `json:"late_penalty_rate,omitempty"`
	AbsenteeFinePercentage *string `json:"absentee_fine_percentage,omitempty"`
	Currency               *string `json:"currency,omitempty"`
	BankName               *string `json:"bank_name,omitempty"`
}

// SettingsResponse represents the group configuration in API responses.
type SettingsResponse struct {
	SharePrice             string    `json:"share_price"`
	SocialContribution     string    `json:"social_contribution"`
	BirthdayContribution   string    `json:"birthday_contribution"`
	DefaultInterestRate    string    `json:"default_interest_rate"`
	DefaultInterestKind    string    `json:"default_interest_kind"`
	MaxLoanMultiplier      string    `json:"max_loan_multiplier"`
	LoanTermDays           int       `json:"loan_term_days"`
	LatePenaltyRate        string    `json:"late_penalty_rate"`
	AbsenteeFinePercentage string    `json:"absentee_fine_percentage"`
	Currency               string    `json:"currency"`
	BankName               string    `json:"bank_name,omitempty"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// ToSettingsResponse converts a domain Settings entity to a SettingsResponse DTO.
func ToSettingsResponse(s *entity.Settings) SettingsResponse {
	return SettingsResponse{
		SharePrice:             s.SharePrice.String(),
		SocialContribution:     s.SocialContribution.String(),
		BirthdayContribution:   s.BirthdayContribution.String(),
		DefaultInterestRate:    s.DefaultInterestRate.String(),
		DefaultInterestKind:    string(s.DefaultInterestKind),
		MaxLoanMultiplier:      s.MaxLoanMultiplier.String(),
		LoanTermDays:           s.LoanTermDays,
		LatePenaltyRate:        s.LatePenaltyRate.String(),
		AbsenteeFinePercentage: s.AbsenteeFinePercentage.String(),
		Currency:               s.Currency,
		BankName:               s.BankName,
		UpdatedAt:              s.UpdatedAt,
	}
}
