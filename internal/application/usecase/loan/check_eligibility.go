// Package loan contains the loan lifecycle use cases. Main loans and social
// loans share the same lifecycle; the Family field on each input selects the
// funding pot and the eligibility rule applied.
package loan

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/village-banking/backend/internal/application/adapter"
	"github.com/village-banking/backend/internal/application/usecase/pot"
	"github.com/village-banking/backend/internal/domain/entity"
	domainerror "github.com/village-banking/backend/internal/domain/error"
)

// Eligibility rejection reasons rendered to the end user.
const (
	ReasonMemberNotFound  = "no eligible member selected"
	ReasonMemberNotActive = "member is not active"
	ReasonExceedsMaximum  = "amount exceeds the maximum loan for this member"
	ReasonExceedsFund     = "amount exceeds the available social fund"
)

// CheckEligibilityInput represents the input for a loan eligibility check.
type CheckEligibilityInput struct {
	Family   entity.LoanFamily
	MemberID uuid.UUID
	Amount   decimal.Decimal
}

// CheckEligibilityOutput is the structured eligibility result. A rejection is
// not an error; Reason carries the explanation for the caller to render.
type CheckEligibilityOutput struct {
	Eligible  bool
	MaxAmount decimal.Decimal
	Reason    string
}

// CheckEligibilityUseCase evaluates whether a member may borrow the requested
// amount. Main loans are capped at totalSavings * maxLoanMultiplier minus the
// member's outstanding balance; social loans are capped by the social fund.
type CheckEligibilityUseCase struct {
	memberRepo   adapter.MemberRepository
	loanRepo     adapter.LoanRepository
	settingsRepo adapter.SettingsRepository
	calculator   *pot.Calculator
}

// NewCheckEligibilityUseCase creates a new CheckEligibilityUseCase instance.
func NewCheckEligibilityUseCase(
	memberRepo adapter.MemberRepository,
	loanRepo adapter.LoanRepository,
	settingsRepo adapter.SettingsRepository,
	calculator *pot.Calculator,
) *CheckEligibilityUseCase {
	return &CheckEligibilityUseCase{
		memberRepo:   memberRepo,
		loanRepo:     loanRepo,
		settingsRepo: settingsRepo,
		calculator:   calculator,
	}
}

// Execute evaluates the eligibility rule for the input's loan family.
func (uc *CheckEligibilityUseCase) Execute(ctx context.Context, input CheckEligibilityInput) (*CheckEligibilityOutput, error) {
	member, err := uc.memberRepo.FindByID(ctx, input.MemberID)
	if err != nil {
		if errors.Is(err, domainerror.ErrMemberNotFound) {
			return &CheckEligibilityOutput{
				Eligible:  false,
				MaxAmount: decimal.Zero,
				Reason:    ReasonMemberNotFound,
			}, nil
		}
		return nil, err
	}

	if !member.IsActive() {
		return &CheckEligibilityOutput{
			Eligible:  false,
			MaxAmount: decimal.Zero,
			Reason:    ReasonMemberNotActive,
		}, nil
	}

	if input.Family == entity.LoanFamilySocial {
		return uc.checkSocial(ctx, input.Amount)
	}
	return uc.checkMain(ctx, member, input.Amount)
}

func (uc *CheckEligibilityUseCase) checkMain(
	ctx context.Context,
	member *entity.Member,
	amount decimal.Decimal,
) (*CheckEligibilityOutput, error) {
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	outstanding, err := uc.loanRepo.OutstandingByMember(ctx, entity.LoanFamilyMain, member.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute outstanding balance: %w", err)
	}

	maxAmount := member.TotalSavings.Mul(settings.MaxLoanMultiplier).Sub(outstanding)
	if maxAmount.IsNegative() {
		maxAmount = decimal.Zero
	}

	if amount.GreaterThan(maxAmount) {
		return &CheckEligibilityOutput{
			Eligible:  false,
			MaxAmount: maxAmount,
			Reason:    ReasonExceedsMaximum,
		}, nil
	}

	return &CheckEligibilityOutput{Eligible: true, MaxAmount: maxAmount}, nil
}

func (uc *CheckEligibilityUseCase) checkSocial(
	ctx context.Context,
	amount decimal.Decimal,
) (*CheckEligibilityOutput, error) {
	summary, err := uc.calculator.SocialFundSummary(ctx)
	if err != nil {
		return nil, err
	}

	maxAmount := summary.AvailableForLoans
	if maxAmount.IsNegative() {
		maxAmount = decimal.Zero
	}

	if amount.GreaterThan(maxAmount) {
		return &CheckEligibilityOutput{
			Eligible:  false,
			MaxAmount: maxAmount,
			Reason:    ReasonExceedsFund,
		}, nil
	}

	return &CheckEligibilityOutput{Eligible: true, MaxAmount: maxAmount}, nil
}
