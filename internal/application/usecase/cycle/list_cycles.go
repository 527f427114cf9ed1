package cycle

import (
	"context"
	"fmt"

	"github.com/village-banking/backend/internal/application/adapter"
	"github.com/village-banking/backend/internal/domain/entity"
	domainerror "github.com/village-banking/backend/internal/domain/error"
)

// ListCyclesOutput represents the output of listing cycles.
type ListCyclesOutput struct {
	Cycles []*entity.Cycle
}

// ListCyclesUseCase handles listing of all cycles.
type ListCyclesUseCase struct {
	cycleRepo adapter.CycleRepository
}

// NewListCyclesUseCase creates a new ListCyclesUseCase instance.
func NewListCyclesUseCase(cycleRepo adapter.CycleRepository) *ListCyclesUseCase {
	return &ListCyclesUseCase{cycleRepo: cycleRepo}
}

// Execute retrieves all cycles.
func (uc *ListCyclesUseCase) Execute(ctx context.Context) (*ListCyclesOutput, error) {
	cycles, err := uc.cycleRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cycles: %w", err)
	}
	return &ListCyclesOutput{Cycles: cycles}, nil
}

// GetActiveCycleOutput represents the output of the active-cycle read.
type GetActiveCycleOutput struct {
	Cycle *entity.Cycle
}

// GetActiveCycleUseCase retrieves the currently active cycle.
type GetActiveCycleUseCase struct {
	cycleRepo adapter.CycleRepository
}

// NewGetActiveCycleUseCase creates a new GetActiveCycleUseCase instance.
func NewGetActiveCycleUseCase(cycleRepo adapter.CycleRepository) *GetActiveCycleUseCase {
	return &GetActiveCycleUseCase{cycleRepo: cycleRepo}
}

// Execute retrieves the active cycle, or a not-found error when none is open.
func (uc *GetActiveCycleUseCase) Execute(ctx context.Context) (*GetActiveCycleOutput, error) {
	cycle, err := uc.cycleRepo.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to look up active cycle: %w", err)
	}
	if cycle == nil {
		return nil, domainerror.NewCycleError(
			domainerror.ErrCodeNoActiveCycle,
			"no active cycle",
			domainerror.ErrNoActiveCycle,
		)
	}

	return &GetActiveCycleOutput{Cycle: cycle}, nil
}
