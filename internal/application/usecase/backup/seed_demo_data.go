package backup

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/village-banking/backend/internal/application/adapter"
	"github.com/village-banking/backend/internal/domain/entity"
	"github.com/village-banking/backend/internal/domain/valueobject"
)

// SeedDemoDataOutput summarizes what the seeding produced.
type SeedDemoDataOutput struct {
	Members      int
	Transactions int
	Loans        int
	Cycles       int
}

// SeedDemoDataUseCase replaces the current store contents with a small
// demo dataset suitable for walkthroughs.
type SeedDemoDataUseCase struct {
	snapshotRepo SnapshotRepository
	clock        adapter.Clock
}

// NewSeedDemoDataUseCase creates a new SeedDemoDataUseCase instance.
func NewSeedDemoDataUseCase(snapshotRepo SnapshotRepository, clock adapter.Clock) *SeedDemoDataUseCase {
	return &SeedDemoDataUseCase{snapshotRepo: snapshotRepo, clock: clock}
}

// Execute wipes the store and loads the demo dataset.
func (uc *SeedDemoDataUseCase) Execute(ctx context.Context) (*SeedDemoDataOutput, error) {
	now := uc.clock.Now()
	settings := entity.DefaultSettings()

	seedMembers := []struct {
		name     string
		national string
		phone    string
		shares   int
	}{
		{"Amina Wanjiru", "10234567", "+254700111222", 30},
		{"Joseph Otieno", "20987654", "+254711333444", 20},
		{"Grace Achieng", "30456789", "+254722555666", 12},
		{"Peter Kamau", "40678912", "+254733777888", 8},
	}

	snapshot := &Snapshot{Settings: settings}

	for i, sm := range seedMembers {
		joined := now.AddDate(0, -6+i, 0)
		member := entity.NewMember(sm.name, sm.national, sm.phone, joined)
		savings := settings.SharePrice.Mul(decimal.NewFromInt(int64(sm.shares)))
		member.TotalShares = sm.shares
		member.TotalSavings = savings
		member.SocialContributions = settings.SocialContribution.Mul(decimal.NewFromInt(6))
		member.CreatedAt = joined
		member.UpdatedAt = joined
		snapshot.Members = append(snapshot.Members, member)

		snapshot.Transactions = append(snapshot.Transactions, entity.NewTransaction(
			member.ID, entity.TransactionTypeSharePurchase, savings, joined,
			fmt.Sprintf("initial share purchase of %d shares", sm.shares),
		))
		snapshot.Transactions = append(snapshot.Transactions, entity.NewTransaction(
			member.ID, entity.TransactionTypeSocialContribution,
			member.SocialContributions, joined, "social fund contributions to date",
		))
	}

	// One active loan for the first member, disbursed a month ago.
	borrower := snapshot.Members[0]
	principal := decimal.NewFromInt(2000)
	requested := now.AddDate(0, -1, 0)
	breakdown := valueobject.CalculateInterest(principal, settings.DefaultInterestRate, settings.DefaultInterestKind, 1)
	loan := entity.NewLoan(borrower.ID, entity.LoanFamilyMain, principal,
		settings.DefaultInterestRate, settings.DefaultInterestKind, breakdown.Interest,
		requested, requested.AddDate(0, 0, settings.LoanTermDays))
	approval := requested
	loan.Status = entity.LoanStatusActive
	loan.ApprovalDate = &approval
	snapshot.Loans = append(snapshot.Loans, loan)
	snapshot.Transactions = append(snapshot.Transactions, entity.NewTransaction(
		borrower.ID, entity.TransactionTypeLoanDisbursement, principal,
		requested, "demo loan disbursement",
	))

	cycle := entity.NewCycle("Demo Cycle", now.AddDate(0, -6, 0), now.AddDate(0, 6, 0))
	snapshot.Cycles = append(snapshot.Cycles, cycle)

	if err := uc.snapshotRepo.Clear(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear data before seeding: %w", err)
	}
	if err := uc.snapshotRepo.Import(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("failed to import demo data: %w", err)
	}

	return &SeedDemoDataOutput{
		Members:      len(snapshot.Members),
		Transactions: len(snapshot.Transactions),
		Loans:        len(snapshot.Loans),
		Cycles:       len(snapshot.Cycles),
	}, nil
}
