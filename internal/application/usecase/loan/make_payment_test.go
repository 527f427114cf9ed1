package loan

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/village-banking/backend/internal/domain/entity"
	domainerror "github.com/village-banking/backend/internal/domain/error"
)

// activeLoan builds an active loan with principal 1000, 10% flat interest and
// a total repayment of 1100.
func activeLoan(family entity.LoanFamily, requested time.Time) *entity.Loan {
	loan := entity.NewLoan(uuid.New(), family,
		decimal.NewFromInt(1000), decimal.NewFromInt(10), entity.InterestKindFlatOnce,
		decimal.NewFromInt(100), requested, requested.AddDate(0, 1, 0))
	loan.Status = entity.LoanStatusActive
	approval := requested
	loan.ApprovalDate = &approval
	return loan
}

func TestMakePayment(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	requested := now.AddDate(0, -1, 0)

	build := func(loans ...*entity.Loan) (*MakePaymentUseCase, *fakeLoanRepo, *fakeTxnRepo) {
		loanRepo := newFakeLoanRepo(now, loans...)
		txnRepo := &fakeTxnRepo{}
		uc := NewMakePaymentUseCase(loanRepo, txnRepo, passTxManager{}, fakeClock{now: now})
		return uc, loanRepo, txnRepo
	}

	t.Run("rejects non-positive amount", func(t *testing.T) {
		uc, _, _ := build()

		_, err := uc.Execute(ctx, MakePaymentInput{
			Family: entity.LoanFamilyMain,
			LoanID: uuid.New(),
			Amount: decimal.Zero,
		})
		assertLoanErrorCode(t, err, domainerror.ErrCodeInvalidPaymentAmount)
	})

	t.Run("rejects payments on a pending loan", func(t *testing.T) {
		loan := activeLoan(entity.LoanFamilyMain, requested)
		loan.Status = entity.LoanStatusPending
		uc, _, _ := build(loan)

		_, err := uc.Execute(ctx, MakePaymentInput{
			Family: entity.LoanFamilyMain,
			LoanID: loan.ID,
			Amount: decimal.NewFromInt(100),
		})
		assertLoanErrorCode(t, err, domainerror.ErrCodeLoanNotActive)
	})

	t.Run("partial payment keeps the loan active", func(t *testing.T) {
		loan := activeLoan(entity.LoanFamilyMain, requested)
		uc, loanRepo, txnRepo := build(loan)

		out, err := uc.Execute(ctx, MakePaymentInput{
			Family: entity.LoanFamilyMain,
			LoanID: loan.ID,
			Amount: decimal.NewFromInt(400),
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		if out.PaidOff {
			t.Error("PaidOff = true, want false")
		}
		if !out.AmountApplied.Equal(decimal.NewFromInt(400)) {
			t.Errorf("AmountApplied = %s, want 400", out.AmountApplied)
		}
		if !out.Loan.Outstanding().Equal(decimal.NewFromInt(700)) {
			t.Errorf("Outstanding = %s, want 700", out.Loan.Outstanding())
		}

		stored, _ := loanRepo.FindByID(ctx, entity.LoanFamilyMain, loan.ID)
		if stored.Status != entity.LoanStatusActive {
			t.Errorf("stored Status = %s, want active", stored.Status)
		}

		entry := txnRepo.lastEntry()
		if entry == nil || entry.Type != entity.TransactionTypeLoanRepayment {
			t.Fatalf("expected a loan_repayment entry, got %+v", entry)
		}
		if !entry.Amount.Equal(decimal.NewFromInt(400)) {
			t.Errorf("entry amount = %s, want 400", entry.Amount)
		}
	})

	t.Run("overpayment is clamped to the outstanding balance", func(t *testing.T) {
		loan := activeLoan(entity.LoanFamilyMain, requested)
		loan.AmountPaid = decimal.NewFromInt(600)
		uc, loanRepo, txnRepo := build(loan)

		out, err := uc.Execute(ctx, MakePaymentInput{
			Family: entity.LoanFamilyMain,
			LoanID: loan.ID,
			Amount: decimal.NewFromInt(2000),
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		if !out.AmountApplied.Equal(decimal.NewFromInt(500)) {
			t.Errorf("AmountApplied = %s, want 500", out.AmountApplied)
		}
		if !out.PaidOff {
			t.Error("PaidOff = false, want true")
		}

		stored, _ := loanRepo.FindByID(ctx, entity.LoanFamilyMain, loan.ID)
		if stored.Status != entity.LoanStatusPaid {
			t.Errorf("stored Status = %s, want paid", stored.Status)
		}
		if !stored.AmountPaid.Equal(stored.TotalRepayment) {
			t.Errorf("AmountPaid = %s, want %s", stored.AmountPaid, stored.TotalRepayment)
		}

		entry := txnRepo.lastEntry()
		if !entry.Amount.Equal(decimal.NewFromInt(500)) {
			t.Errorf("entry amount = %s, want the clamped 500", entry.Amount)
		}
	})

	t.Run("exact payoff settles the loan", func(t *testing.T) {
		loan := activeLoan(entity.LoanFamilyMain, requested)
		uc, loanRepo, _ := build(loan)

		out, err := uc.Execute(ctx, MakePaymentInput{
			Family: entity.LoanFamilyMain,
			LoanID: loan.ID,
			Amount: decimal.NewFromInt(1100),
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if !out.PaidOff {
			t.Error("PaidOff = false, want true")
		}

		stored, _ := loanRepo.FindByID(ctx, entity.LoanFamilyMain, loan.ID)
		if stored.Status != entity.LoanStatusPaid {
			t.Errorf("stored Status = %s, want paid", stored.Status)
		}
	})

	t.Run("social repayments use the social ledger type", func(t *testing.T) {
		loan := activeLoan(entity.LoanFamilySocial, requested)
		uc, _, txnRepo := build(loan)

		_, err := uc.Execute(ctx, MakePaymentInput{
			Family: entity.LoanFamilySocial,
			LoanID: loan.ID,
			Amount: decimal.NewFromInt(100),
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		entry := txnRepo.lastEntry()
		if entry == nil || entry.Type != entity.TransactionTypeSocialLoanRepayment {
			t.Errorf("expected a social_loan_repayment entry, got %+v", entry)
		}
	})
}
