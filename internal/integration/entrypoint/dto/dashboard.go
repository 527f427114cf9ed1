package dto

import (
	"github.com/village-banking/backend/internal/domain/valueobject"
)

// PotSummaryResponse represents the recomputed pot balances.
type PotSummaryResponse struct {
	SavingsPot      string `json:"savings_pot"`
	SocialPot       string `json:"social_pot"`
	BirthdayPot     string `json:"birthday_pot"`
	TotalFunds      string `json:"total_funds"`
	AvailableToLoan string `json:"available_to_loan"`
	OverLent        bool   `json:"over_lent"`
	Shortfall       string `json:"shortfall"`
}

// SocialFundResponse represents the social fund position.
type SocialFundResponse struct {
	TotalContributions       string `json:"total_contributions"`
	TotalUsedForWelfare      string `json:"total_used_for_welfare"`
	TotalLoanedOut           string `json:"total_loaned_out"`
	TotalInterestEarned      string `json:"total_interest_earned"`
	AvailableForLoans        string `json:"available_for_loans"`
	AvailableForDistribution string `json:"available_for_distribution"`
}

// DashboardStatsResponse represents the headline group figures.
type DashboardStatsResponse struct {
	TotalMembers    int                `json:"total_members"`
	ActiveMembers   int                `json:"active_members"`
	TotalShares     int                `json:"total_shares"`
	Pots            PotSummaryResponse `json:"pots"`
	ActiveLoans     int                `json:"active_loans"`
	OverdueLoans    int                `json:"overdue_loans"`
	OutstandingDebt string             `json:"outstanding_debt"`
	InterestEarned  string             `json:"interest_earned"`
}

// ToPotSummaryResponse converts a PotSummary to a PotSummaryResponse DTO.
func ToPotSummaryResponse(p *valueobject.PotSummary) PotSummaryResponse {
	return PotSummaryResponse{
		SavingsPot:      p.SavingsPot.String(),
		SocialPot:       p.SocialPot.String(),
		BirthdayPot:     p.BirthdayPot.String(),
		TotalFunds:      p.TotalFunds.String(),
		AvailableToLoan: p.AvailableToLoan.String(),
		OverLent:        p.OverLent,
		Shortfall:       p.Shortfall.String(),
	}
}

// ToSocialFundResponse converts a SocialFundSummary to a SocialFundResponse DTO.
func ToSocialFundResponse(s *valueobject.SocialFundSummary) SocialFundResponse {
	return SocialFundResponse{
		TotalContributions:       s.TotalContributions.String(),
		TotalUsedForWelfare:      s.TotalUsedForWelfare.String(),
		TotalLoanedOut:           s.TotalLoanedOut.String(),
		TotalInterestEarned:      s.TotalInterestEarned.String(),
		AvailableForLoans:        s.AvailableForLoans.String(),
		AvailableForDistribution: s.AvailableForDistribution.String(),
	}
}

// ToDashboardStatsResponse converts DashboardStats to a DashboardStatsResponse DTO.
func ToDashboardStatsResponse(s *valueobject.DashboardStats) DashboardStatsResponse {
	return DashboardStatsResponse{
		TotalMembers:    s.TotalMembers,
		ActiveMembers:   s.ActiveMembers,
		TotalShares:     s.TotalShares,
		Pots:            ToPotSummaryResponse(&s.Pots),
		ActiveLoans:     s.ActiveLoans,
		OverdueLoans:    s.OverdueLoans,
		OutstandingDebt: s.OutstandingDebt.String(),
		InterestEarned:  s.InterestEarned.String(),
	}
}
