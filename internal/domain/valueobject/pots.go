package valueobject

import "github.com/shopspring/decimal"

// PotSummary holds the always-recomputed aggregate balances of the group.
// Pots are derived from member and transaction state on every read; nothing
// here is stored separately.
type PotSummary struct {
	SavingsPot  decimal.Decimal
	SocialPot   decimal.Decimal
	BirthdayPot decimal.Decimal
	TotalFunds  decimal.Decimal

	// AvailableToLoan is the main loan pot, floored at zero. When raw lending
	// capacity is negative the group has over-lent; OverLent and Shortfall
	// surface that instead of letting the figure go further negative.
	AvailableToLoan decimal.Decimal
	OverLent        bool
	Shortfall       decimal.Decimal
}

// SocialFundSummary describes the social fund position.
type SocialFundSummary struct {
	TotalContributions       decimal.Decimal
	TotalUsedForWelfare      decimal.Decimal
	TotalLoanedOut           decimal.Decimal
	TotalInterestEarned      decimal.Decimal
	AvailableForLoans        decimal.Decimal
	AvailableForDistribution decimal.Decimal
}

// DashboardStats aggregates the headline figures shown on the group dashboard.
type DashboardStats struct {
	TotalMembers    int
	ActiveMembers   int
	TotalShares     int
	Pots            PotSummary
	ActiveLoans     int
	OverdueLoans    int
	OutstandingDebt decimal.Decimal
	InterestEarned  decimal.Decimal
}

// ShareOutRow is one member's line in a cycle share-out preview.
type ShareOutRow struct {
	MemberID   string
	MemberName string
	Shares     int
	Dividend   decimal.Decimal
}
