// Package pot contains the pot-accounting use cases. Pots are never stored;
// they are recomputed from the member, transaction and loan collections on
// every read so aggregates cannot drift from the source of truth.
package pot

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/village-banking/backend/internal/application/adapter"
	"github.com/village-banking/backend/internal/domain/entity"
	"github.com/village-banking/backend/internal/domain/valueobject"
)

// Calculator derives the group's pot balances from the underlying collections.
// It is shared by the pot read use cases and the loan lifecycle, which checks
// lending capacity before disbursing.
type Calculator struct {
	memberRepo adapter.MemberRepository
	txnRepo    adapter.TransactionRepository
	loanRepo   adapter.LoanRepository
}

// NewCalculator creates a new Calculator instance.
func NewCalculator(
	memberRepo adapter.MemberRepository,
	txnRepo adapter.TransactionRepository,
	loanRepo adapter.LoanRepository,
) *Calculator {
	return &Calculator{
		memberRepo: memberRepo,
		txnRepo:    txnRepo,
		loanRepo:   loanRepo,
	}
}

// PotSummary computes the savings, social and birthday pots plus the main
// lending capacity.
func (c *Calculator) PotSummary(ctx context.Context) (*valueobject.PotSummary, error) {
	savings, err := c.memberRepo.SumSavings(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to sum savings: %w", err)
	}

	social, err := c.socialPot(ctx)
	if err != nil {
		return nil, err
	}

	birthday, err := c.memberRepo.SumBirthdayContributions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum birthday contributions: %w", err)
	}

	available, raw, err := c.AvailableToLoan(ctx)
	if err != nil {
		return nil, err
	}

	summary := &valueobject.PotSummary{
		SavingsPot:      savings,
		SocialPot:       social,
		BirthdayPot:     birthday,
		TotalFunds:      savings.Add(social).Add(birthday),
		AvailableToLoan: available,
	}

	if raw.IsNegative() {
		summary.OverLent = true
		summary.Shortfall = raw.Neg()
	}

	return summary, nil
}

// AvailableToLoan computes the main loan pot:
//
//	sum of active members' savings
//	+ all loan repayments received
//	- principal of loans disbursed and not yet returned (active or paid)
//
// The first return value is floored at zero; the second is the raw figure so
// callers can detect and report over-lending.
func (c *Calculator) AvailableToLoan(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	activeSavings, err := c.memberRepo.SumSavings(ctx, true)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to sum active savings: %w", err)
	}

	repayments, err := c.txnRepo.SumByType(ctx, entity.TransactionTypeLoanRepayment)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to sum loan repayments: %w", err)
	}

	disbursed, err := c.loanRepo.SumPrincipalByStatus(ctx, entity.LoanFamilyMain,
		entity.LoanStatusActive, entity.LoanStatusPaid)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to sum disbursed principal: %w", err)
	}

	raw := activeSavings.Add(repayments).Sub(disbursed)
	if raw.IsNegative() {
		return decimal.Zero, raw, nil
	}
	return raw, raw, nil
}

// SocialFundSummary computes the social fund position, including the interest
// available for distribution at cycle close.
func (c *Calculator) SocialFundSummary(ctx context.Context) (*valueobject.SocialFundSummary, error) {
	contributions, err := c.memberRepo.SumSocialContributions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum social contributions: %w", err)
	}

	welfare, err := c.txnRepo.SumByType(ctx, entity.TransactionTypeWelfareUsage)
	if err != nil {
		return nil, fmt.Errorf("failed to sum welfare usage: %w", err)
	}

	loanedOut, err := c.loanRepo.SumPrincipalByStatus(ctx, entity.LoanFamilySocial, entity.LoanStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to sum social loan principal: %w", err)
	}

	repayments, err := c.txnRepo.SumByType(ctx, entity.TransactionTypeSocialLoanRepayment)
	if err != nil {
		return nil, fmt.Errorf("failed to sum social loan repayments: %w", err)
	}

	interestEarned, err := c.loanRepo.SumInterestByStatus(ctx, entity.LoanFamilySocial,
		entity.LoanStatusActive, entity.LoanStatusPaid)
	if err != nil {
		return nil, fmt.Errorf("failed to sum social loan interest: %w", err)
	}

	available := contributions.Sub(welfare).Sub(loanedOut).Add(repayments)

	return &valueobject.SocialFundSummary{
		TotalContributions:       contributions,
		TotalUsedForWelfare:      welfare,
		TotalLoanedOut:           loanedOut,
		TotalInterestEarned:      interestEarned,
		AvailableForLoans:        available,
		AvailableForDistribution: interestEarned,
	}, nil
}

// socialPot is the social fund balance used in the pot summary. It matches
// SocialFundSummary.AvailableForLoans.
func (c *Calculator) socialPot(ctx context.Context) (decimal.Decimal, error) {
	summary, err := c.SocialFundSummary(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return summary.AvailableForLoans, nil
}
