package loan

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/village-banking/backend/internal/application/adapter"
	"github.com/village-banking/backend/internal/domain/entity"
	domainerror "github.com/village-banking/backend/internal/domain/error"
)

// MarkDefaultedInput represents the input for writing off a loan.
type MarkDefaultedInput struct {
	Family entity.LoanFamily
	LoanID uuid.UUID
}

// MarkDefaultedOutput represents the output of writing off a loan.
type MarkDefaultedOutput struct {
	Loan *entity.Loan
}

// MarkDefaultedUseCase moves an active loan to the terminal defaulted state.
// This is a group decision taken when rollover is no longer viable.
type MarkDefaultedUseCase struct {
	loanRepo  adapter.LoanRepository
	txManager adapter.TxManager
	clock     adapter.Clock
}

// NewMarkDefaultedUseCase creates a new MarkDefaultedUseCase instance.
func NewMarkDefaultedUseCase(
	loanRepo adapter.LoanRepository,
	txManager adapter.TxManager,
	clock adapter.Clock,
) *MarkDefaultedUseCase {
	return &MarkDefaultedUseCase{
		loanRepo:  loanRepo,
		txManager: txManager,
		clock:     clock,
	}
}

// Execute marks the loan as defaulted.
func (uc *MarkDefaultedUseCase) Execute(ctx context.Context, input MarkDefaultedInput) (*MarkDefaultedOutput, error) {
	var output *MarkDefaultedOutput

	err := uc.txManager.WithinTx(ctx, func(ctx context.Context) error {
		loan, err := uc.loanRepo.FindByID(ctx, input.Family, input.LoanID)
		if err != nil {
			if errors.Is(err, domainerror.ErrLoanNotFound) {
				return domainerror.NewLoanError(
					domainerror.ErrCodeLoanNotFound,
					"loan not found",
					domainerror.ErrLoanNotFound,
				)
			}
			return err
		}

		if loan.Status != entity.LoanStatusActive {
			return domainerror.NewLoanError(
				domainerror.ErrCodeLoanNotActive,
				"only active loans can be defaulted",
				domainerror.ErrLoanNotActive,
			)
		}

		loan.Status = entity.LoanStatusDefaulted
		loan.UpdatedAt = uc.clock.Now()

		if err := uc.loanRepo.UpdateGuarded(ctx, loan, entity.LoanStatusActive); err != nil {
			return wrapGuardFailure(err)
		}

		output = &MarkDefaultedOutput{Loan: loan}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}
