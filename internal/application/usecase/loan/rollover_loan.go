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

// RolloverLoanInput represents the input for rolling over an overdue loan.
type RolloverLoanInput struct {
	Family entity.LoanFamily
	LoanID uuid.UUID
}

// RolloverLoanOutput represents the output of a rollover.
type RolloverLoanOutput struct {
	Loan *entity.Loan
}

// RolloverLoanUseCase recapitalizes an overdue loan: the unpaid balance
// becomes the new principal, interest is recomputed on it over the configured
// loan term, and the term restarts. This intentionally compounds unpaid
// interest into principal; it is not a due-date extension.
type RolloverLoanUseCase struct {
	loanRepo     adapter.LoanRepository
	txnRepo      adapter.TransactionRepository
	settingsRepo adapter.SettingsRepository
	txManager    adapter.TxManager
	clock        adapter.Clock
}

// NewRolloverLoanUseCase creates a new RolloverLoanUseCase instance.
func NewRolloverLoanUseCase(
	loanRepo adapter.LoanRepository,
	txnRepo adapter.TransactionRepository,
	settingsRepo adapter.SettingsRepository,
	txManager adapter.TxManager,
	clock adapter.Clock,
) *RolloverLoanUseCase {
	return &RolloverLoanUseCase{
		loanRepo:     loanRepo,
		txnRepo:      txnRepo,
		settingsRepo: settingsRepo,
		txManager:    txManager,
		clock:        clock,
	}
}

// Execute rolls the loan over into a fresh term.
func (uc *RolloverLoanUseCase) Execute(ctx context.Context, input RolloverLoanInput) (*RolloverLoanOutput, error) {
	var output *RolloverLoanOutput

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
				"only active loans can be rolled over",
				domainerror.ErrLoanNotActive,
			)
		}

		now := uc.clock.Now()
		if !loan.IsOverdue(now) {
			return domainerror.NewLoanError(
				domainerror.ErrCodeLoanNotOverdue,
				"only overdue loans can be rolled over",
				domainerror.ErrLoanNotOverdue,
			)
		}

		settings, err := uc.settingsRepo.Get(ctx)
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}

		// The new principal is whatever remains unpaid; interest is recomputed
		// on it with the period count re-derived from the configured term.
		newPrincipal := loan.Outstanding()
		periods := periodsForDays(settings.LoanTermDays)
		breakdown := valueobject.CalculateInterest(newPrincipal, loan.InterestRate, loan.InterestKind, periods)

		loan.PrincipalAmount = breakdown.Principal
		loan.InterestAmount = breakdown.Interest
		loan.TotalRepayment = breakdown.Total
		loan.AmountPaid = decimal.Zero
		loan.DueDate = now.AddDate(0, 0, settings.LoanTermDays)
		loan.RolloverCount++
		loan.UpdatedAt = now

		if err := uc.loanRepo.UpdateGuarded(ctx, loan, entity.LoanStatusActive); err != nil {
			return wrapGuardFailure(err)
		}

		// Audit the recapitalized interest as a fine; no cash moves on rollover.
		if breakdown.Interest.IsPositive() {
			txn := entity.NewTransaction(
				loan.MemberID,
				entity.TransactionTypeFine,
				breakdown.Interest,
				now,
				fmt.Sprintf("Rollover %d of loan %s", loan.RolloverCount, loan.ID),
			)
			if err := uc.txnRepo.Create(ctx, txn); err != nil {
				return fmt.Errorf("failed to append rollover audit entry: %w", err)
			}
		}

		output = &RolloverLoanOutput{Loan: loan}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}
