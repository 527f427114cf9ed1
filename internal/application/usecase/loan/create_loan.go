package loan

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/village-banking/backend/internal/application/adapter"
	"github.com/village-banking/backend/internal/domain/entity"
	domainerror "github.com/village-banking/backend/internal/domain/error"
	"github.com/village-banking/backend/internal/domain/valueobject"
)

// daysPerPeriod converts a loan term in days to interest periods. Interest is
// charged at month granularity.
const daysPerPeriod = 30

// CreateLoanInput represents the input for a loan request.
type CreateLoanInput struct {
	Family       entity.LoanFamily
	MemberID     uuid.UUID
	Amount       decimal.Decimal
	PeriodDays   int
	InterestRate *decimal.Decimal     // Optional, defaults to settings
	InterestKind *entity.InterestKind // Optional, defaults to settings
}

// CreateLoanOutput represents the output of a loan request.
type CreateLoanOutput struct {
	Loan *entity.Loan
}

// CreateLoanUseCase handles loan requests. The eligibility rule is re-checked
// here so a request that slipped past the client cannot enter the book.
type CreateLoanUseCase struct {
	loanRepo    adapter.LoanRepository
	settings    adapter.SettingsRepository
	eligibility *CheckEligibilityUseCase
	txManager   adapter.TxManager
	clock       adapter.Clock
}

// NewCreateLoanUseCase creates a new CreateLoanUseCase instance.
func NewCreateLoanUseCase(
	loanRepo adapter.LoanRepository,
	settings adapter.SettingsRepository,
	eligibility *CheckEligibilityUseCase,
	txManager adapter.TxManager,
	clock adapter.Clock,
) *CreateLoanUseCase {
	return &CreateLoanUseCase{
		loanRepo:    loanRepo,
		settings:    settings,
		eligibility: eligibility,
		txManager:   txManager,
		clock:       clock,
	}
}

// Execute validates the request and records a pending loan.
func (uc *CreateLoanUseCase) Execute(ctx context.Context, input CreateLoanInput) (*CreateLoanOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewLoanError(
			domainerror.ErrCodeInvalidLoanAmount,
			"loan amount must be greater than zero",
			domainerror.ErrInvalidLoanAmount,
		)
	}

	if input.PeriodDays <= 0 {
		return nil, domainerror.NewLoanError(
			domainerror.ErrCodeInvalidLoanTerm,
			"loan term must be greater than zero days",
			domainerror.ErrInvalidLoanTerm,
		)
	}

	var output *CreateLoanOutput

	err := uc.txManager.WithinTx(ctx, func(ctx context.Context) error {
		settings, err := uc.settings.Get(ctx)
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}

		rate := settings.DefaultInterestRate
		if input.InterestRate != nil {
			rate = *input.InterestRate
		}

		kind := settings.DefaultInterestKind
		if input.InterestKind != nil {
			kind = *input.InterestKind
		}
		if !entity.ValidInterestKind(kind) {
			return domainerror.NewLoanError(
				domainerror.ErrCodeInvalidInterestKind,
				"interest kind must be 'flat_once', 'linear', or 'compound'",
				domainerror.ErrInvalidInterestKind,
			)
		}
		// The social fund does not issue flat one-off loans; its terms always
		// span the borrowing period.
		if input.Family == entity.LoanFamilySocial && kind == entity.InterestKindFlatOnce {
			kind = entity.InterestKindLinear
		}

		check, err := uc.eligibility.Execute(ctx, CheckEligibilityInput{
			Family:   input.Family,
			MemberID: input.MemberID,
			Amount:   input.Amount,
		})
		if err != nil {
			return err
		}
		if !check.Eligible {
			return domainerror.NewLoanError(
				domainerror.ErrCodeLoanNotEligible,
				check.Reason,
				domainerror.ErrLoanNotEligible,
			)
		}

		periods := periodsForDays(input.PeriodDays)
		breakdown := valueobject.CalculateInterest(input.Amount, rate, kind, periods)

		requestDate := uc.clock.Now()
		dueDate := requestDate.AddDate(0, 0, input.PeriodDays)

		loan := entity.NewLoan(
			input.MemberID,
			input.Family,
			breakdown.Principal,
			rate,
			kind,
			breakdown.Interest,
			requestDate,
			dueDate,
		)

		if err := uc.loanRepo.Create(ctx, loan); err != nil {
			return fmt.Errorf("failed to create loan: %w", err)
		}

		output = &CreateLoanOutput{Loan: loan}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// periodsForDays converts a day-denominated term to whole interest periods,
// never fewer than one.
func periodsForDays(days int) int {
	periods := days / daysPerPeriod
	if periods < 1 {
		periods = 1
	}
	return periods
}
