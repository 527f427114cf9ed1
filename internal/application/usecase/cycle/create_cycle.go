// Package cycle contains accounting-cycle use cases.
package cycle

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/village-banking/backend/internal/application/adapter"
	"github.com/village-banking/backend/internal/domain/entity"
	domainerror "github.com/village-banking/backend/internal/domain/error"
)

// CreateCycleInput represents the input for opening a cycle.
type CreateCycleInput struct {
	Name      string
	StartDate time.Time
	EndDate   time.Time
}

// CreateCycleOutput represents the output of opening a cycle.
type CreateCycleOutput struct {
	Cycle *entity.Cycle
}

// CreateCycleUseCase opens a new accounting cycle. The single-active-cycle
// rule is enforced here inside the transaction, not assumed from the caller.
type CreateCycleUseCase struct {
	cycleRepo adapter.CycleRepository
	txManager adapter.TxManager
}

// NewCreateCycleUseCase creates a new CreateCycleUseCase instance.
func NewCreateCycleUseCase(cycleRepo adapter.CycleRepository, txManager adapter.TxManager) *CreateCycleUseCase {
	return &CreateCycleUseCase{
		cycleRepo: cycleRepo,
		txManager: txManager,
	}
}

// Execute opens the cycle.
func (uc *CreateCycleUseCase) Execute(ctx context.Context, input CreateCycleInput) (*CreateCycleOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewCycleError(
			domainerror.ErrCodeInvalidCycleName,
			"cycle name is required",
			domainerror.ErrInvalidCycleName,
		)
	}

	if !input.EndDate.After(input.StartDate) {
		return nil, domainerror.NewCycleError(
			domainerror.ErrCodeInvalidCycleDates,
			"cycle end date must be after start date",
			domainerror.ErrInvalidCycleDates,
		)
	}

	var output *CreateCycleOutput

	err := uc.txManager.WithinTx(ctx, func(ctx context.Context) error {
		active, err := uc.cycleRepo.FindActive(ctx)
		if err != nil {
			return fmt.Errorf("failed to look up active cycle: %w", err)
		}
		if active != nil {
			return domainerror.NewCycleError(
				domainerror.ErrCodeActiveCycleExists,
				"an active cycle already exists and must be closed first",
				domainerror.ErrActiveCycleExists,
			)
		}

		cycle := entity.NewCycle(name, input.StartDate, input.EndDate)
		if err := uc.cycleRepo.Create(ctx, cycle); err != nil {
			return fmt.Errorf("failed to create cycle: %w", err)
		}

		output = &CreateCycleOutput{Cycle: cycle}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}
