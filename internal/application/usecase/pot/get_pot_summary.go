package pot

import (
	"context"

	"github.com/village-banking/backend/internal/domain/valueobject"
)

// GetPotSummaryOutput represents the output of the pot summary read.
type GetPotSummaryOutput struct {
	Pots *valueobject.PotSummary
}

// GetPotSummaryUseCase recomputes the pot balances on demand.
type GetPotSummaryUseCase struct {
	calculator *Calculator
}

// NewGetPotSummaryUseCase creates a new GetPotSummaryUseCase instance.
func NewGetPotSummaryUseCase(calculator *Calculator) *GetPotSummaryUseCase {
	return &GetPotSummaryUseCase{calculator: calculator}
}

// Execute computes the current pot summary.
func (uc *GetPotSummaryUseCase) Execute(ctx context.Context) (*GetPotSummaryOutput, error) {
	pots, err := uc.calculator.PotSummary(ctx)
	if err != nil {
		return nil, err
	}
	return &GetPotSummaryOutput{Pots: pots}, nil
}
