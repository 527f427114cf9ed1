package loan

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/village-banking/backend/internal/application/usecase/pot"
	"github.com/village-banking/backend/internal/domain/entity"
)

func newMemberWithSavings(savings int64) *entity.Member {
	member := entity.NewMember("Amina Wanjiru", "12345678", "+254700000001", time.Now().UTC())
	member.TotalSavings = decimal.NewFromInt(savings)
	return member
}

func TestCheckEligibilityMain(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()

	build := func(member *entity.Member, loans ...*entity.Loan) *CheckEligibilityUseCase {
		memberRepo := newFakeMemberRepo(member)
		loanRepo := newFakeLoanRepo(now, loans...)
		txnRepo := &fakeTxnRepo{}
		settingsRepo := &fakeSettingsRepo{}
		calculator := pot.NewCalculator(memberRepo, txnRepo, loanRepo)
		return NewCheckEligibilityUseCase(memberRepo, loanRepo, settingsRepo, calculator)
	}

	t.Run("unknown member is rejected without error", func(t *testing.T) {
		uc := build(newMemberWithSavings(1000))

		out, err := uc.Execute(ctx, CheckEligibilityInput{
			Family:   entity.LoanFamilyMain,
			MemberID: uuid.New(),
			Amount:   decimal.NewFromInt(100),
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if out.Eligible {
			t.Error("expected ineligible result for unknown member")
		}
		if out.Reason != ReasonMemberNotFound {
			t.Errorf("Reason = %q, want %q", out.Reason, ReasonMemberNotFound)
		}
	})

	t.Run("suspended member is rejected", func(t *testing.T) {
		member := newMemberWithSavings(1000)
		member.Status = entity.MemberStatusSuspended
		uc := build(member)

		out, err := uc.Execute(ctx, CheckEligibilityInput{
			Family:   entity.LoanFamilyMain,
			MemberID: member.ID,
			Amount:   decimal.NewFromInt(100),
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if out.Eligible {
			t.Error("expected ineligible result for suspended member")
		}
		if out.Reason != ReasonMemberNotActive {
			t.Errorf("Reason = %q, want %q", out.Reason, ReasonMemberNotActive)
		}
	})

	t.Run("amount at the multiplier cap is allowed", func(t *testing.T) {
		member := newMemberWithSavings(1000)
		uc := build(member)

		// Default multiplier is 3, so savings of 1000 cap the loan at 3000.
		out, err := uc.Execute(ctx, CheckEligibilityInput{
			Family:   entity.LoanFamilyMain,
			MemberID: member.ID,
			Amount:   decimal.NewFromInt(3000),
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if !out.Eligible {
			t.Errorf("expected eligible at the cap, reason %q", out.Reason)
		}
		if !out.MaxAmount.Equal(decimal.NewFromInt(3000)) {
			t.Errorf("MaxAmount = %s, want 3000", out.MaxAmount)
		}
	})

	t.Run("amount just over the cap is rejected", func(t *testing.T) {
		member := newMemberWithSavings(1000)
		uc := build(member)

		out, err := uc.Execute(ctx, CheckEligibilityInput{
			Family:   entity.LoanFamilyMain,
			MemberID: member.ID,
			Amount:   decimal.RequireFromString("3000.01"),
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if out.Eligible {
			t.Error("expected ineligible result just over the cap")
		}
		if out.Reason != ReasonExceedsMaximum {
			t.Errorf("Reason = %q, want %q", out.Reason, ReasonExceedsMaximum)
		}
	})

	t.Run("outstanding balance reduces the cap", func(t *testing.T) {
		member := newMemberWithSavings(1000)
		active := entity.NewLoan(member.ID, entity.LoanFamilyMain,
			decimal.NewFromInt(500), decimal.NewFromInt(10), entity.InterestKindFlatOnce,
			decimal.NewFromInt(50), now, now.AddDate(0, 1, 0))
		active.Status = entity.LoanStatusActive
		uc := build(member, active)

		out, err := uc.Execute(ctx, CheckEligibilityInput{
			Family:   entity.LoanFamilyMain,
			MemberID: member.ID,
			Amount:   decimal.NewFromInt(2500),
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		// 3000 cap minus 550 outstanding leaves 2450.
		if out.Eligible {
			t.Error("expected ineligible result when outstanding eats the cap")
		}
		if !out.MaxAmount.Equal(decimal.NewFromInt(2450)) {
			t.Errorf("MaxAmount = %s, want 2450", out.MaxAmount)
		}
	})

	t.Run("cap floors at zero when over-borrowed", func(t *testing.T) {
		member := newMemberWithSavings(100)
		active := entity.NewLoan(member.ID, entity.LoanFamilyMain,
			decimal.NewFromInt(500), decimal.NewFromInt(10), entity.InterestKindFlatOnce,
			decimal.NewFromInt(50), now, now.AddDate(0, 1, 0))
		active.Status = entity.LoanStatusActive
		uc := build(member, active)

		out, err := uc.Execute(ctx, CheckEligibilityInput{
			Family:   entity.LoanFamilyMain,
			MemberID: member.ID,
			Amount:   decimal.NewFromInt(1),
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if out.Eligible {
			t.Error("expected ineligible result")
		}
		if !out.MaxAmount.IsZero() {
			t.Errorf("MaxAmount = %s, want 0", out.MaxAmount)
		}
	})
}

func TestCheckEligibilitySocial(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()

	// Social fund: 1000 contributed, 200 spent on welfare, 300 loaned out,
	// 100 repaid, so 600 is available.
	member := newMemberWithSavings(0)
	member.SocialContributions = decimal.NewFromInt(1000)

	outLoan := entity.NewLoan(member.ID, entity.LoanFamilySocial,
		decimal.NewFromInt(300), decimal.NewFromInt(5), entity.InterestKindLinear,
		decimal.NewFromInt(15), now, now.AddDate(0, 1, 0))
	outLoan.Status = entity.LoanStatusActive

	memberRepo := newFakeMemberRepo(member)
	loanRepo := newFakeLoanRepo(now, outLoan)
	txnRepo := &fakeTxnRepo{}
	txnRepo.entries = append(txnRepo.entries,
		entity.NewTransaction(member.ID, entity.TransactionTypeWelfareUsage, decimal.NewFromInt(200), now, "hospital visit"),
		entity.NewTransaction(member.ID, entity.TransactionTypeSocialLoanRepayment, decimal.NewFromInt(100), now, "repayment"),
	)
	calculator := pot.NewCalculator(memberRepo, txnRepo, loanRepo)
	uc := NewCheckEligibilityUseCase(memberRepo, loanRepo, &fakeSettingsRepo{}, calculator)

	t.Run("amount within the fund is allowed", func(t *testing.T) {
		out, err := uc.Execute(ctx, CheckEligibilityInput{
			Family:   entity.LoanFamilySocial,
			MemberID: member.ID,
			Amount:   decimal.NewFromInt(600),
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if !out.Eligible {
			t.Errorf("expected eligible, reason %q", out.Reason)
		}
		if !out.MaxAmount.Equal(decimal.NewFromInt(600)) {
			t.Errorf("MaxAmount = %s, want 600", out.MaxAmount)
		}
	})

	t.Run("amount beyond the fund is rejected", func(t *testing.T) {
		out, err := uc.Execute(ctx, CheckEligibilityInput{
			Family:   entity.LoanFamilySocial,
			MemberID: member.ID,
			Amount:   decimal.RequireFromString("600.01"),
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if out.Eligible {
			t.Error("expected ineligible result beyond the fund")
		}
		if out.Reason != ReasonExceedsFund {
			t.Errorf("Reason = %q, want %q", out.Reason, ReasonExceedsFund)
		}
	})
}
