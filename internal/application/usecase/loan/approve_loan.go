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

// ApproveLoanInput represents the input for loan approval.
type ApproveLoanInput struct {
	Family entity.LoanFamily
	LoanID uuid.UUID
}

// ApproveLoanOutput represents the output of loan approval.
type ApproveLoanOutput struct {
	Loan *entity.Loan
}

// ApproveLoanUseCase moves a pending loan to active and disburses the
// principal. The disbursement is audited as a ledger entry and the funding pot
// must cover the principal at the moment of approval.
type ApproveLoanUseCase struct {
	loanRepo   adapter.LoanRepository
	txnRepo    adapter.TransactionRepository
	calculator *pot.Calculator
	txManager  adapter.TxManager
	clock      adapter.Clock
}

// NewApproveLoanUseCase creates a new ApproveLoanUseCase instance.
func NewApproveLoanUseCase(
	loanRepo adapter.LoanRepository,
	txnRepo adapter.TransactionRepository,
	calculator *pot.Calculator,
	txManager adapter.TxManager,
	clock adapter.Clock,
) *ApproveLoanUseCase {
	return &ApproveLoanUseCase{
		loanRepo:   loanRepo,
		txnRepo:    txnRepo,
		calculator: calculator,
		txManager:  txManager,
		clock:      clock,
	}
}

// Execute approves the loan and appends the disbursement ledger entry.
func (uc *ApproveLoanUseCase) Execute(ctx context.Context, input ApproveLoanInput) (*ApproveLoanOutput, error) {
	var output *ApproveLoanOutput

	err := uc.txManager.WithinTx(ctx, func(ctx context.Context) error {
		loan, err := uc.findLoan(ctx, input.Family, input.LoanID)
		if err != nil {
			return err
		}

		if loan.Status != entity.LoanStatusPending {
			return domainerror.NewLoanError(
				domainerror.ErrCodeLoanNotPending,
				"only pending loans can be approved",
				domainerror.ErrLoanNotPending,
			)
		}

		available, err := uc.availableFunds(ctx, input.Family)
		if err != nil {
			return err
		}
		if loan.PrincipalAmount.GreaterThan(available) {
			return domainerror.NewLoanError(
				domainerror.ErrCodeInsufficientPot,
				"the lending pot cannot cover the principal",
				domainerror.ErrInsufficientPot,
			)
		}

		now := uc.clock.Now()
		loan.Status = entity.LoanStatusActive
		loan.ApprovalDate = &now
		loan.UpdatedAt = now

		if err := uc.loanRepo.UpdateGuarded(ctx, loan, entity.LoanStatusPending); err != nil {
			return wrapGuardFailure(err)
		}

		disbursementType := entity.TransactionTypeLoanDisbursement
		if input.Family == entity.LoanFamilySocial {
			disbursementType = entity.TransactionTypeSocialLoanDisbursement
		}

		txn := entity.NewTransaction(
			loan.MemberID,
			disbursementType,
			loan.PrincipalAmount,
			now,
			fmt.Sprintf("Loan disbursement (%s)", loan.ID),
		)
		if err := uc.txnRepo.Create(ctx, txn); err != nil {
			return fmt.Errorf("failed to append disbursement: %w", err)
		}

		output = &ApproveLoanOutput{Loan: loan}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

func (uc *ApproveLoanUseCase) findLoan(ctx context.Context, family entity.LoanFamily, id uuid.UUID) (*entity.Loan, error) {
	loan, err := uc.loanRepo.FindByID(ctx, family, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrLoanNotFound) {
			return nil, domainerror.NewLoanError(
				domainerror.ErrCodeLoanNotFound,
				"loan not found",
				domainerror.ErrLoanNotFound,
			)
		}
		return nil, err
	}
	return loan, nil
}

// availableFunds returns the balance of the pot the family draws from.
func (uc *ApproveLoanUseCase) availableFunds(ctx context.Context, family entity.LoanFamily) (decimal.Decimal, error) {
	if family == entity.LoanFamilySocial {
		summary, err := uc.calculator.SocialFundSummary(ctx)
		if err != nil {
			return decimal.Zero, err
		}
		return summary.AvailableForLoans, nil
	}

	available, _, err := uc.calculator.AvailableToLoan(ctx)
	return available, err
}

// wrapGuardFailure maps a lost status compare-and-swap to its coded error.
func wrapGuardFailure(err error) error {
	if errors.Is(err, domainerror.ErrLoanStateChanged) {
		return domainerror.NewLoanError(
			domainerror.ErrCodeLoanStateChanged,
			"loan was modified concurrently, retry the operation",
			domainerror.ErrLoanStateChanged,
		)
	}
	return err
}
