package loan

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/village-banking/backend/internal/application/usecase/pot"
	"github.com/village-banking/backend/internal/domain/entity"
	domainerror "github.com/village-banking/backend/internal/domain/error"
)

func assertLoanErrorCode(t *testing.T, err error, code domainerror.LoanErrorCode) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected loan error %s, got nil", code)
	}
	var loanErr *domainerror.LoanError
	if !errors.As(err, &loanErr) {
		t.Fatalf("expected *domainerror.LoanError, got %T: %v", err, err)
	}
	if loanErr.Code != code {
		t.Errorf("error code = %s, want %s", loanErr.Code, code)
	}
}

type createLoanFixture struct {
	uc       *CreateLoanUseCase
	member   *entity.Member
	loanRepo *fakeLoanRepo
	clock    fakeClock
}

func newCreateLoanFixture(t *testing.T) *createLoanFixture {
	t.Helper()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	member := newMemberWithSavings(1000)
	member.SocialContributions = decimal.NewFromInt(500)

	memberRepo := newFakeMemberRepo(member)
	loanRepo := newFakeLoanRepo(now)
	txnRepo := &fakeTxnRepo{}
	settingsRepo := &fakeSettingsRepo{}
	calculator := pot.NewCalculator(memberRepo, txnRepo, loanRepo)
	eligibility := NewCheckEligibilityUseCase(memberRepo, loanRepo, settingsRepo, calculator)
	clock := fakeClock{now: now}

	return &createLoanFixture{
		uc:       NewCreateLoanUseCase(loanRepo, settingsRepo, eligibility, passTxManager{}, clock),
		member:   member,
		loanRepo: loanRepo,
		clock:    clock,
	}
}

func TestCreateLoan(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects non-positive amount", func(t *testing.T) {
		f := newCreateLoanFixture(t)

		_, err := f.uc.Execute(ctx, CreateLoanInput{
			Family:     entity.LoanFamilyMain,
			MemberID:   f.member.ID,
			Amount:     decimal.Zero,
			PeriodDays: 30,
		})
		assertLoanErrorCode(t, err, domainerror.ErrCodeInvalidLoanAmount)
	})

	t.Run("rejects non-positive term", func(t *testing.T) {
		f := newCreateLoanFixture(t)

		_, err := f.uc.Execute(ctx, CreateLoanInput{
			Family:     entity.LoanFamilyMain,
			MemberID:   f.member.ID,
			Amount:     decimal.NewFromInt(100),
			PeriodDays: 0,
		})
		assertLoanErrorCode(t, err, domainerror.ErrCodeInvalidLoanTerm)
	})

	t.Run("rejects unknown interest kind", func(t *testing.T) {
		f := newCreateLoanFixture(t)
		kind := entity.InterestKind("weekly")

		_, err := f.uc.Execute(ctx, CreateLoanInput{
			Family:       entity.LoanFamilyMain,
			MemberID:     f.member.ID,
			Amount:       decimal.NewFromInt(100),
			PeriodDays:   30,
			InterestKind: &kind,
		})
		assertLoanErrorCode(t, err, domainerror.ErrCodeInvalidInterestKind)
	})

	t.Run("rejects ineligible request with the eligibility reason", func(t *testing.T) {
		f := newCreateLoanFixture(t)

		// Savings of 1000 at the default multiplier of 3 cap the loan at 3000.
		_, err := f.uc.Execute(ctx, CreateLoanInput{
			Family:     entity.LoanFamilyMain,
			MemberID:   f.member.ID,
			Amount:     decimal.NewFromInt(5000),
			PeriodDays: 30,
		})
		assertLoanErrorCode(t, err, domainerror.ErrCodeLoanNotEligible)

		var loanErr *domainerror.LoanError
		errors.As(err, &loanErr)
		if loanErr.Message != ReasonExceedsMaximum {
			t.Errorf("Message = %q, want %q", loanErr.Message, ReasonExceedsMaximum)
		}
	})

	t.Run("records a pending loan with settings defaults", func(t *testing.T) {
		f := newCreateLoanFixture(t)

		out, err := f.uc.Execute(ctx, CreateLoanInput{
			Family:     entity.LoanFamilyMain,
			MemberID:   f.member.ID,
			Amount:     decimal.NewFromInt(1000),
			PeriodDays: 90,
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		loan := out.Loan
		if loan.Status != entity.LoanStatusPending {
			t.Errorf("Status = %s, want pending", loan.Status)
		}
		if loan.InterestKind != entity.InterestKindFlatOnce {
			t.Errorf("InterestKind = %s, want flat_once", loan.InterestKind)
		}
		// flat_once at 10% charges once regardless of the three periods.
		if !loan.InterestAmount.Equal(decimal.NewFromInt(100)) {
			t.Errorf("InterestAmount = %s, want 100", loan.InterestAmount)
		}
		if !loan.TotalRepayment.Equal(decimal.NewFromInt(1100)) {
			t.Errorf("TotalRepayment = %s, want 1100", loan.TotalRepayment)
		}
		wantDue := f.clock.now.AddDate(0, 0, 90)
		if !loan.DueDate.Equal(wantDue) {
			t.Errorf("DueDate = %s, want %s", loan.DueDate, wantDue)
		}

		stored, err := f.loanRepo.FindByID(ctx, entity.LoanFamilyMain, loan.ID)
		if err != nil {
			t.Fatalf("loan was not persisted: %v", err)
		}
		if stored.Status != entity.LoanStatusPending {
			t.Errorf("stored Status = %s, want pending", stored.Status)
		}
	})

	t.Run("honours explicit rate and kind overrides", func(t *testing.T) {
		f := newCreateLoanFixture(t)
		rate := decimal.NewFromInt(5)
		kind := entity.InterestKindLinear

		out, err := f.uc.Execute(ctx, CreateLoanInput{
			Family:       entity.LoanFamilyMain,
			MemberID:     f.member.ID,
			Amount:       decimal.NewFromInt(1000),
			PeriodDays:   90,
			InterestRate: &rate,
			InterestKind: &kind,
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		// linear at 5% over three periods charges 150.
		if !out.Loan.InterestAmount.Equal(decimal.NewFromInt(150)) {
			t.Errorf("InterestAmount = %s, want 150", out.Loan.InterestAmount)
		}
	})

	t.Run("coerces flat_once to linear for social loans", func(t *testing.T) {
		f := newCreateLoanFixture(t)

		out, err := f.uc.Execute(ctx, CreateLoanInput{
			Family:     entity.LoanFamilySocial,
			MemberID:   f.member.ID,
			Amount:     decimal.NewFromInt(300),
			PeriodDays: 60,
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		if out.Loan.InterestKind != entity.InterestKindLinear {
			t.Errorf("InterestKind = %s, want linear", out.Loan.InterestKind)
		}
		// linear at the default 10% over two periods charges 60.
		if !out.Loan.InterestAmount.Equal(decimal.NewFromInt(60)) {
			t.Errorf("InterestAmount = %s, want 60", out.Loan.InterestAmount)
		}
	})

	t.Run("short terms still charge one period", func(t *testing.T) {
		f := newCreateLoanFixture(t)
		kind := entity.InterestKindLinear

		out, err := f.uc.Execute(ctx, CreateLoanInput{
			Family:       entity.LoanFamilyMain,
			MemberID:     f.member.ID,
			Amount:       decimal.NewFromInt(1000),
			PeriodDays:   7,
			InterestKind: &kind,
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		if !out.Loan.InterestAmount.Equal(decimal.NewFromInt(100)) {
			t.Errorf("InterestAmount = %s, want 100", out.Loan.InterestAmount)
		}
	})
}
