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
)

// PenaliseLoanInput represents the input for applying a late penalty.
type PenaliseLoanInput struct {
	Family entity.LoanFamily
	LoanID uuid.UUID
	Amount decimal.Decimal
	Reason string
}

// PenaliseLoanOutput represents the output of applying a late penalty.
type PenaliseLoanOutput struct {
	Loan *entity.Loan
}

// PenaliseLoanUseCase increases an active loan's total repayment by a penalty
// amount. The penalty is audited as a fine ledger entry.
type PenaliseLoanUseCase struct {
	loanRepo  adapter.LoanRepository
	txnRepo   adapter.TransactionRepository
	txManager adapter.TxManager
	clock     adapter.Clock
}

// NewPenaliseLoanUseCase creates a new PenaliseLoanUseCase instance.
func NewPenaliseLoanUseCase(
	loanRepo adapter.LoanRepository,
	txnRepo adapter.TransactionRepository,
	txManager adapter.TxManager,
	clock adapter.Clock,
) *PenaliseLoanUseCase {
	return &PenaliseLoanUseCase{
		loanRepo:  loanRepo,
		txnRepo:   txnRepo,
		txManager: txManager,
		clock:     clock,
	}
}

// Execute applies the penalty and appends its fine ledger entry.
func (uc *PenaliseLoanUseCase) Execute(ctx context.Context, input PenaliseLoanInput) (*PenaliseLoanOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewLoanError(
			domainerror.ErrCodeInvalidPenaltyAmount,
			"penalty amount must be greater than zero",
			domainerror.ErrInvalidPenaltyAmount,
		)
	}

	var output *PenaliseLoanOutput

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
				"penalties can only be applied to active loans",
				domainerror.ErrLoanNotActive,
			)
		}

		now := uc.clock.Now()
		loan.TotalRepayment = loan.TotalRepayment.Add(input.Amount.Round(2))
		loan.UpdatedAt = now

		if err := uc.loanRepo.UpdateGuarded(ctx, loan, entity.LoanStatusActive); err != nil {
			return wrapGuardFailure(err)
		}

		description := input.Reason
		if description == "" {
			description = fmt.Sprintf("Late penalty on loan %s", loan.ID)
		}

		txn := entity.NewTransaction(loan.MemberID, entity.TransactionTypeFine, input.Amount.Round(2), now, description)
		if err := uc.txnRepo.Create(ctx, txn); err != nil {
			return fmt.Errorf("failed to append fine: %w", err)
		}

		output = &PenaliseLoanOutput{Loan: loan}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}
