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

// MakePaymentInput represents the input for a loan repayment.
type MakePaymentInput struct {
	Family entity.LoanFamily
	LoanID uuid.UUID
	Amount decimal.Decimal
}

// MakePaymentOutput represents the output of a loan repayment.
type MakePaymentOutput struct {
	Loan          *entity.Loan
	AmountApplied decimal.Decimal
	PaidOff       bool
}

// MakePaymentUseCase applies a repayment to an active loan. The applied amount
// is clamped to the outstanding balance so AmountPaid can never exceed
// TotalRepayment; reaching the total settles the loan.
type MakePaymentUseCase struct {
	loanRepo  adapter.LoanRepository
	txnRepo   adapter.TransactionRepository
	txManager adapter.TxManager
	clock     adapter.Clock
}

// NewMakePaymentUseCase creates a new MakePaymentUseCase instance.
func NewMakePaymentUseCase(
	loanRepo adapter.LoanRepository,
	txnRepo adapter.TransactionRepository,
	txManager adapter.TxManager,
	clock adapter.Clock,
) *MakePaymentUseCase {
	return &MakePaymentUseCase{
		loanRepo:  loanRepo,
		txnRepo:   txnRepo,
		txManager: txManager,
		clock:     clock,
	}
}

// Execute applies the repayment and appends its ledger entry.
func (uc *MakePaymentUseCase) Execute(ctx context.Context, input MakePaymentInput) (*MakePaymentOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewLoanError(
			domainerror.ErrCodeInvalidPaymentAmount,
			"payment amount must be greater than zero",
			domainerror.ErrInvalidPaymentAmount,
		)
	}

	var output *MakePaymentOutput

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
				"payments can only be made on active loans",
				domainerror.ErrLoanNotActive,
			)
		}

		applied := input.Amount
		if applied.GreaterThan(loan.Outstanding()) {
			applied = loan.Outstanding()
		}

		now := uc.clock.Now()
		loan.AmountPaid = loan.AmountPaid.Add(applied)
		loan.UpdatedAt = now

		paidOff := loan.AmountPaid.GreaterThanOrEqual(loan.TotalRepayment)
		if paidOff {
			loan.Status = entity.LoanStatusPaid
		}

		if err := uc.loanRepo.UpdateGuarded(ctx, loan, entity.LoanStatusActive); err != nil {
			return wrapGuardFailure(err)
		}

		repaymentType := entity.TransactionTypeLoanRepayment
		if input.Family == entity.LoanFamilySocial {
			repaymentType = entity.TransactionTypeSocialLoanRepayment
		}

		txn := entity.NewTransaction(
			loan.MemberID,
			repaymentType,
			applied,
			now,
			fmt.Sprintf("Loan repayment (%s)", loan.ID),
		)
		if err := uc.txnRepo.Create(ctx, txn); err != nil {
			return fmt.Errorf("failed to append repayment: %w", err)
		}

		output = &MakePaymentOutput{
			Loan:          loan,
			AmountApplied: applied,
			PaidOff:       paidOff,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}
