package loan

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/village-banking/backend/internal/application/adapter"
	"github.com/village-banking/backend/internal/domain/entity"
	domainerror "github.com/village-banking/backend/internal/domain/error"
	"github.com/village-banking/backend/internal/domain/valueobject"
)

// PreviewInterestInput represents the input for an interest preview.
type PreviewInterestInput struct {
	Amount       decimal.Decimal
	RatePercent  decimal.Decimal
	InterestKind entity.InterestKind
	Periods      int
}

// PreviewInterestOutput represents the output of an interest preview.
type PreviewInterestOutput struct {
	Breakdown valueobject.InterestBreakdown
}

// PreviewInterestUseCase exposes the interest engine for what-if calculations
// before a loan request is made. It touches no state.
type PreviewInterestUseCase struct{}

// NewPreviewInterestUseCase creates a new PreviewInterestUseCase instance.
func NewPreviewInterestUseCase() *PreviewInterestUseCase {
	return &PreviewInterestUseCase{}
}

// Execute computes the interest breakdown.
func (uc *PreviewInterestUseCase) Execute(_ context.Context, input PreviewInterestInput) (*PreviewInterestOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewLoanError(
			domainerror.ErrCodeInvalidLoanAmount,
			"loan amount must be greater than zero",
			domainerror.ErrInvalidLoanAmount,
		)
	}

	if !entity.ValidInterestKind(input.InterestKind) {
		return nil, domainerror.NewLoanError(
			domainerror.ErrCodeInvalidInterestKind,
			"interest kind must be 'flat_once', 'linear', or 'compound'",
			domainerror.ErrInvalidInterestKind,
		)
	}

	breakdown := valueobject.CalculateInterest(input.Amount, input.RatePercent, input.InterestKind, input.Periods)
	return &PreviewInterestOutput{Breakdown: breakdown}, nil
}

// GetScheduleInput represents the input for a loan repayment schedule.
type GetScheduleInput struct {
	Family entity.LoanFamily
	LoanID uuid.UUID
}

// GetScheduleOutput represents the output of a loan repayment schedule.
type GetScheduleOutput struct {
	Loan *entity.Loan
	Rows []valueobject.ScheduleRow
}

// GetScheduleUseCase derives the per-period repayment schedule for a loan.
type GetScheduleUseCase struct {
	loanRepo adapter.LoanRepository
}

// NewGetScheduleUseCase creates a new GetScheduleUseCase instance.
func NewGetScheduleUseCase(loanRepo adapter.LoanRepository) *GetScheduleUseCase {
	return &GetScheduleUseCase{loanRepo: loanRepo}
}

// Execute loads the loan and derives its schedule. Short terms of a single
// period produce an empty schedule; repayment is then a lump sum.
func (uc *GetScheduleUseCase) Execute(ctx context.Context, input GetScheduleInput) (*GetScheduleOutput, error) {
	loan, err := uc.loanRepo.FindByID(ctx, input.Family, input.LoanID)
	if err != nil {
		if errors.Is(err, domainerror.ErrLoanNotFound) {
			return nil, domainerror.NewLoanError(
				domainerror.ErrCodeLoanNotFound,
				"loan not found",
				domainerror.ErrLoanNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load loan: %w", err)
	}

	periods := periodsForDays(int(loan.DueDate.Sub(loan.RequestDate).Hours() / 24))
	rows := valueobject.GenerateLoanSchedule(loan.PrincipalAmount, loan.InterestRate, loan.InterestKind, periods, loan.RequestDate)

	return &GetScheduleOutput{Loan: loan, Rows: rows}, nil
}
