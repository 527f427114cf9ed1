package pot

import (
	"context"
	"fmt"

	"github.com/village-banking/backend/internal/application/adapter"
	"github.com/village-banking/backend/internal/domain/entity"
	"github.com/village-banking/backend/internal/domain/valueobject"
)

// GetDashboardStatsOutput represents the output of the dashboard read.
type GetDashboardStatsOutput struct {
	Stats *valueobject.DashboardStats
}

// GetDashboardStatsUseCase aggregates the headline group figures.
type GetDashboardStatsUseCase struct {
	memberRepo adapter.MemberRepository
	loanRepo   adapter.LoanRepository
	calculator *Calculator
}

// NewGetDashboardStatsUseCase creates a new GetDashboardStatsUseCase instance.
func NewGetDashboardStatsUseCase(
	memberRepo adapter.MemberRepository,
	loanRepo adapter.LoanRepository,
	calculator *Calculator,
) *GetDashboardStatsUseCase {
	return &GetDashboardStatsUseCase{
		memberRepo: memberRepo,
		loanRepo:   loanRepo,
		calculator: calculator,
	}
}

// Execute computes the current dashboard statistics.
func (uc *GetDashboardStatsUseCase) Execute(ctx context.Context) (*GetDashboardStatsOutput, error) {
	totalMembers, err := uc.memberRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}

	activeMembers, err := uc.memberRepo.CountActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count active members: %w", err)
	}

	totalShares, err := uc.memberRepo.SumShares(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum shares: %w", err)
	}

	pots, err := uc.calculator.PotSummary(ctx)
	if err != nil {
		return nil, err
	}

	activeLoans, err := uc.loanRepo.CountByStatus(ctx, entity.LoanFamilyMain, entity.LoanStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to count active loans: %w", err)
	}

	overdueLoans, err := uc.loanRepo.CountOverdue(ctx, entity.LoanFamilyMain)
	if err != nil {
		return nil, fmt.Errorf("failed to count overdue loans: %w", err)
	}

	outstanding, err := uc.loanRepo.SumOutstandingByStatus(ctx, entity.LoanFamilyMain, entity.LoanStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to sum outstanding debt: %w", err)
	}

	interestEarned, err := uc.loanRepo.SumInterestByStatus(ctx, entity.LoanFamilyMain,
		entity.LoanStatusActive, entity.LoanStatusPaid)
	if err != nil {
		return nil, fmt.Errorf("failed to sum interest earned: %w", err)
	}

	return &GetDashboardStatsOutput{
		Stats: &valueobject.DashboardStats{
			TotalMembers:    totalMembers,
			ActiveMembers:   activeMembers,
			TotalShares:     totalShares,
			Pots:            *pots,
			ActiveLoans:     activeLoans,
			OverdueLoans:    overdueLoans,
			OutstandingDebt: outstanding,
			InterestEarned:  interestEarned,
		},
	}, nil
}
