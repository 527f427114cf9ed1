package cycle

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

// CloseCycleInput represents the input for closing a cycle.
type CloseCycleInput struct {
	CycleID uuid.UUID
}

// CloseCycleOutput represents the output of closing a cycle.
type CloseCycleOutput struct {
	Cycle *entity.Cycle
	// ZeroShares is set when no shares were held at close, in which case the
	// dividend per share is zero by definition rather than undefined.
	ZeroShares bool
}

// CloseCycleUseCase freezes a cycle's share and savings totals and computes
// the per-share dividend from the interest earned on main loans. Closing is
// irreversible and does not itself pay dividends to members.
type CloseCycleUseCase struct {
	cycleRepo  adapter.CycleRepository
	memberRepo adapter.MemberRepository
	loanRepo   adapter.LoanRepository
	txManager  adapter.TxManager
	clock      adapter.Clock
}

// NewCloseCycleUseCase creates a new CloseCycleUseCase instance.
func NewCloseCycleUseCase(
	cycleRepo adapter.CycleRepository,
	memberRepo adapter.MemberRepository,
	loanRepo adapter.LoanRepository,
	txManager adapter.TxManager,
	clock adapter.Clock,
) *CloseCycleUseCase {
	return &CloseCycleUseCase{
		cycleRepo:  cycleRepo,
		memberRepo: memberRepo,
		loanRepo:   loanRepo,
		txManager:  txManager,
		clock:      clock,
	}
}

// Execute closes the cycle and freezes its share-out snapshot.
func (uc *CloseCycleUseCase) Execute(ctx context.Context, input CloseCycleInput) (*CloseCycleOutput, error) {
	var output *CloseCycleOutput

	err := uc.txManager.WithinTx(ctx, func(ctx context.Context) error {
		cycle, err := uc.cycleRepo.FindByID(ctx, input.CycleID)
		if err != nil {
			if errors.Is(err, domainerror.ErrCycleNotFound) {
				return domainerror.NewCycleError(
					domainerror.ErrCodeCycleNotFound,
					"cycle not found",
					domainerror.ErrCycleNotFound,
				)
			}
			return err
		}

		if cycle.Status == entity.CycleStatusClosed {
			return domainerror.NewCycleError(
				domainerror.ErrCodeCycleAlreadyClosed,
				"cycle is already closed",
				domainerror.ErrCycleAlreadyClosed,
			)
		}

		totalShares, err := uc.memberRepo.SumShares(ctx)
		if err != nil {
			return fmt.Errorf("failed to sum shares: %w", err)
		}

		totalSavings, err := uc.memberRepo.SumSavings(ctx, false)
		if err != nil {
			return fmt.Errorf("failed to sum savings: %w", err)
		}

		interestEarned, err := uc.loanRepo.SumInterestByStatus(ctx, entity.LoanFamilyMain,
			entity.LoanStatusActive, entity.LoanStatusPaid)
		if err != nil {
			return fmt.Errorf("failed to sum interest earned: %w", err)
		}

		dividendPerShare := decimal.Zero
		zeroShares := totalShares == 0
		if !zeroShares {
			dividendPerShare = interestEarned.Div(decimal.NewFromInt(int64(totalShares))).Round(2)
		}

		now := uc.clock.Now()
		cycle.Status = entity.CycleStatusClosed
		cycle.TotalShares = totalShares
		cycle.TotalSavings = totalSavings
		cycle.DividendPerShare = &dividendPerShare
		cycle.ClosedAt = &now
		cycle.UpdatedAt = now

		if err := uc.cycleRepo.CloseGuarded(ctx, cycle); err != nil {
			if errors.Is(err, domainerror.ErrCycleAlreadyClosed) {
				return domainerror.NewCycleError(
					domainerror.ErrCodeCycleAlreadyClosed,
					"cycle is already closed",
					domainerror.ErrCycleAlreadyClosed,
				)
			}
			return err
		}

		output = &CloseCycleOutput{Cycle: cycle, ZeroShares: zeroShares}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}
