package pot

import (
	"context"

	"github.com/village-banking/backend/internal/domain/valueobject"
)

// GetSocialFundSummaryOutput represents the output of the social fund read.
type GetSocialFundSummaryOutput struct {
	Summary *valueobject.SocialFundSummary
}

// GetSocialFundSummaryUseCase recomputes the social fund position on demand.
type GetSocialFundSummaryUseCase struct {
	calculator *Calculator
}

// NewGetSocialFundSummaryUseCase creates a new GetSocialFundSummaryUseCase instance.
func NewGetSocialFundSummaryUseCase(calculator *Calculator) *GetSocialFundSummaryUseCase {
	return &GetSocialFundSummaryUseCase{calculator: calculator}
}

// Execute computes the current social fund summary.
func (uc *GetSocialFundSummaryUseCase) Execute(ctx context.Context) (*GetSocialFundSummaryOutput, error) {
	summary, err := uc.calculator.SocialFundSummary(ctx)
	if err != nil {
		return nil, err
	}
	return &GetSocialFundSummaryOutput{Summary: summary}, nil
}
