package loan

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/village-banking/backend/internal/application/usecase/pot"
	"github.com/village-banking/backend/internal/domain/entity"
	domainerror "github.com/village-banking/backend/internal/domain/error"
)

type approveLoanFixture struct {
	uc       *ApproveLoanUseCase
	member   *entity.Member
	loanRepo *fakeLoanRepo
	txnRepo  *fakeTxnRepo
	now      time.Time
}

func newApproveLoanFixture(t *testing.T, loans ...*entity.Loan) *approveLoanFixture {
	t.Helper()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	member := newMemberWithSavings(1000)
	member.SocialContributions = decimal.NewFromInt(500)

	memberRepo := newFakeMemberRepo(member)
	loanRepo := newFakeLoanRepo(now, loans...)
	txnRepo := &fakeTxnRepo{}
	calculator := pot.NewCalculator(memberRepo, txnRepo, loanRepo)

	return &approveLoanFixture{
		uc:       NewApproveLoanUseCase(loanRepo, txnRepo, calculator, passTxManager{}, fakeClock{now: now}),
		member:   member,
		loanRepo: loanRepo,
		txnRepo:  txnRepo,
		now:      now,
	}
}

func pendingLoan(memberID uuid.UUID, family entity.LoanFamily, principal int64, requested time.Time) *entity.Loan {
	amount := decimal.NewFromInt(principal)
	interest := amount.Div(decimal.NewFromInt(10)).Round(2)
	return entity.NewLoan(memberID, family, amount, decimal.NewFromInt(10),
		entity.InterestKindFlatOnce, interest, requested, requested.AddDate(0, 1, 0))
}

func TestApproveLoan(t *testing.T) {
	ctx := context.Background()
	requested := time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)

	t.Run("unknown loan", func(t *testing.T) {
		f := newApproveLoanFixture(t)

		_, err := f.uc.Execute(ctx, ApproveLoanInput{Family: entity.LoanFamilyMain, LoanID: uuid.New()})
		assertLoanErrorCode(t, err, domainerror.ErrCodeLoanNotFound)
	})

	t.Run("rejects a loan that is not pending", func(t *testing.T) {
		loan := pendingLoan(uuid.New(), entity.LoanFamilyMain, 500, requested)
		loan.Status = entity.LoanStatusActive
		f := newApproveLoanFixture(t, loan)

		_, err := f.uc.Execute(ctx, ApproveLoanInput{Family: entity.LoanFamilyMain, LoanID: loan.ID})
		assertLoanErrorCode(t, err, domainerror.ErrCodeLoanNotPending)
	})

	t.Run("rejects when the pot cannot cover the principal", func(t *testing.T) {
		f := newApproveLoanFixture(t)
		// Active savings are 1000, so a 1200 principal cannot be funded.
		loan := pendingLoan(f.member.ID, entity.LoanFamilyMain, 1200, requested)
		f.loanRepo.loans[loan.ID] = loan

		_, err := f.uc.Execute(ctx, ApproveLoanInput{Family: entity.LoanFamilyMain, LoanID: loan.ID})
		assertLoanErrorCode(t, err, domainerror.ErrCodeInsufficientPot)
	})

	t.Run("activates the loan and audits the disbursement", func(t *testing.T) {
		f := newApproveLoanFixture(t)
		loan := pendingLoan(f.member.ID, entity.LoanFamilyMain, 800, requested)
		f.loanRepo.loans[loan.ID] = loan

		out, err := f.uc.Execute(ctx, ApproveLoanInput{Family: entity.LoanFamilyMain, LoanID: loan.ID})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		if out.Loan.Status != entity.LoanStatusActive {
			t.Errorf("Status = %s, want active", out.Loan.Status)
		}
		if out.Loan.ApprovalDate == nil || !out.Loan.ApprovalDate.Equal(f.now) {
			t.Errorf("ApprovalDate = %v, want %s", out.Loan.ApprovalDate, f.now)
		}

		entry := f.txnRepo.lastEntry()
		if entry == nil {
			t.Fatal("expected a disbursement ledger entry")
		}
		if entry.Type != entity.TransactionTypeLoanDisbursement {
			t.Errorf("entry type = %s, want loan_disbursement", entry.Type)
		}
		if !entry.Amount.Equal(decimal.NewFromInt(800)) {
			t.Errorf("entry amount = %s, want 800", entry.Amount)
		}
	})

	t.Run("social approval draws on the social fund", func(t *testing.T) {
		f := newApproveLoanFixture(t)
		loan := pendingLoan(f.member.ID, entity.LoanFamilySocial, 300, requested)
		f.loanRepo.loans[loan.ID] = loan

		out, err := f.uc.Execute(ctx, ApproveLoanInput{Family: entity.LoanFamilySocial, LoanID: loan.ID})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if out.Loan.Status != entity.LoanStatusActive {
			t.Errorf("Status = %s, want active", out.Loan.Status)
		}

		entry := f.txnRepo.lastEntry()
		if entry == nil || entry.Type != entity.TransactionTypeSocialLoanDisbursement {
			t.Errorf("expected a social_loan_disbursement entry, got %+v", entry)
		}
	})

	t.Run("social approval beyond the fund is rejected", func(t *testing.T) {
		f := newApproveLoanFixture(t)
		// Social contributions total 500.
		loan := pendingLoan(f.member.ID, entity.LoanFamilySocial, 600, requested)
		f.loanRepo.loans[loan.ID] = loan

		_, err := f.uc.Execute(ctx, ApproveLoanInput{Family: entity.LoanFamilySocial, LoanID: loan.ID})
		assertLoanErrorCode(t, err, domainerror.ErrCodeInsufficientPot)
	})

	t.Run("lost status race maps to the consistency code", func(t *testing.T) {
		f := newApproveLoanFixture(t)
		loan := pendingLoan(f.member.ID, entity.LoanFamilyMain, 500, requested)
		f.loanRepo.loans[loan.ID] = loan
		f.loanRepo.guardErr = domainerror.ErrLoanStateChanged

		_, err := f.uc.Execute(ctx, ApproveLoanInput{Family: entity.LoanFamilyMain, LoanID: loan.ID})
		assertLoanErrorCode(t, err, domainerror.ErrCodeLoanStateChanged)
	})
}
