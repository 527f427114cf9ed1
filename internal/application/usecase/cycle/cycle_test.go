package cycle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/village-banking/backend/internal/application/adapter"
	"github.com/village-banking/backend/internal/domain/entity"
	domainerror "github.com/village-banking/backend/internal/domain/error"
)

type fakeClock struct {
	now time.Time
}

func (c fakeClock) Now() time.Time {
	return c.now
}

type passTxManager struct{}

func (passTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeCycleRepo struct {
	cycles map[uuid.UUID]*entity.Cycle
}

func newFakeCycleRepo(cycles ...*entity.Cycle) *fakeCycleRepo {
	repo := &fakeCycleRepo{cycles: make(map[uuid.UUID]*entity.Cycle)}
	for _, c := range cycles {
		repo.cycles[c.ID] = c
	}
	return repo
}

func (r *fakeCycleRepo) Create(_ context.Context, cycle *entity.Cycle) error {
	copied := *cycle
	r.cycles[cycle.ID] = &copied
	return nil
}

func (r *fakeCycleRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Cycle, error) {
	cycle, ok := r.cycles[id]
	if !ok {
		return nil, domainerror.ErrCycleNotFound
	}
	copied := *cycle
	return &copied, nil
}

func (r *fakeCycleRepo) FindAll(_ context.Context) ([]*entity.Cycle, error) {
	var all []*entity.Cycle
	for _, c := range r.cycles {
		copied := *c
		all = append(all, &copied)
	}
	return all, nil
}

func (r *fakeCycleRepo) FindActive(_ context.Context) (*entity.Cycle, error) {
	for _, c := range r.cycles {
		if c.Status == entity.CycleStatusActive {
			copied := *c
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeCycleRepo) CloseGuarded(_ context.Context, cycle *entity.Cycle) error {
	stored, ok := r.cycles[cycle.ID]
	if !ok || stored.Status != entity.CycleStatusActive {
		return domainerror.ErrCycleAlreadyClosed
	}
	copied := *cycle
	r.cycles[cycle.ID] = &copied
	return nil
}

// stubMemberRepo overrides only the aggregate reads close and share-out need.
type stubMemberRepo struct {
	adapter.MemberRepository
	members []*entity.Member
	shares  int
	savings decimal.Decimal
}

func (r *stubMemberRepo) FindAll(_ context.Context) ([]*entity.Member, error) {
	return r.members, nil
}

func (r *stubMemberRepo) SumShares(_ context.Context) (int, error) {
	return r.shares, nil
}

func (r *stubMemberRepo) SumSavings(_ context.Context, _ bool) (decimal.Decimal, error) {
	return r.savings, nil
}

// stubLoanRepo overrides only the interest aggregate.
type stubLoanRepo struct {
	adapter.LoanRepository
	interest decimal.Decimal
}

func (r *stubLoanRepo) SumInterestByStatus(_ context.Context, _ entity.LoanFamily, _ ...entity.LoanStatus) (decimal.Decimal, error) {
	return r.interest, nil
}

func assertCycleErrorCode(t *testing.T, err error, code domainerror.CycleErrorCode) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected cycle error %s, got nil", code)
	}
	var cycleErr *domainerror.CycleError
	if !errors.As(err, &cycleErr) {
		t.Fatalf("expected *domainerror.CycleError, got %T: %v", err, err)
	}
	if cycleErr.Code != code {
		t.Errorf("error code = %s, want %s", cycleErr.Code, code)
	}
}

func TestCreateCycle(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	t.Run("rejects a blank name", func(t *testing.T) {
		uc := NewCreateCycleUseCase(newFakeCycleRepo(), passTxManager{})

		_, err := uc.Execute(ctx, CreateCycleInput{Name: "   ", StartDate: start, EndDate: end})
		assertCycleErrorCode(t, err, domainerror.ErrCodeInvalidCycleName)
	})

	t.Run("rejects an inverted date range", func(t *testing.T) {
		uc := NewCreateCycleUseCase(newFakeCycleRepo(), passTxManager{})

		_, err := uc.Execute(ctx, CreateCycleInput{Name: "2026", StartDate: end, EndDate: start})
		assertCycleErrorCode(t, err, domainerror.ErrCodeInvalidCycleDates)
	})

	t.Run("rejects a second active cycle", func(t *testing.T) {
		open := entity.NewCycle("2025", start.AddDate(-1, 0, 0), start)
		uc := NewCreateCycleUseCase(newFakeCycleRepo(open), passTxManager{})

		_, err := uc.Execute(ctx, CreateCycleInput{Name: "2026", StartDate: start, EndDate: end})
		assertCycleErrorCode(t, err, domainerror.ErrCodeActiveCycleExists)
	})

	t.Run("opens a cycle when none is active", func(t *testing.T) {
		closed := entity.NewCycle("2025", start.AddDate(-1, 0, 0), start)
		closed.Status = entity.CycleStatusClosed
		repo := newFakeCycleRepo(closed)
		uc := NewCreateCycleUseCase(repo, passTxManager{})

		out, err := uc.Execute(ctx, CreateCycleInput{Name: "2026", StartDate: start, EndDate: end})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if out.Cycle.Status != entity.CycleStatusActive {
			t.Errorf("Status = %s, want active", out.Cycle.Status)
		}
		if _, err := repo.FindByID(ctx, out.Cycle.ID); err != nil {
			t.Errorf("cycle was not persisted: %v", err)
		}
	})
}

func TestCloseCycle(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 12, 31, 18, 0, 0, 0, time.UTC)
	clock := fakeClock{now: now}

	build := func(cycle *entity.Cycle, shares int, savings, interest decimal.Decimal) (*CloseCycleUseCase, *fakeCycleRepo) {
		repo := newFakeCycleRepo(cycle)
		memberRepo := &stubMemberRepo{shares: shares, savings: savings}
		loanRepo := &stubLoanRepo{interest: interest}
		return NewCloseCycleUseCase(repo, memberRepo, loanRepo, passTxManager{}, clock), repo
	}

	t.Run("unknown cycle", func(t *testing.T) {
		uc, _ := build(entity.NewCycle("2026", now.AddDate(-1, 0, 0), now), 0, decimal.Zero, decimal.Zero)

		_, err := uc.Execute(ctx, CloseCycleInput{CycleID: uuid.New()})
		assertCycleErrorCode(t, err, domainerror.ErrCodeCycleNotFound)
	})

	t.Run("rejects closing twice", func(t *testing.T) {
		cycle := entity.NewCycle("2026", now.AddDate(-1, 0, 0), now)
		cycle.Status = entity.CycleStatusClosed
		uc, _ := build(cycle, 0, decimal.Zero, decimal.Zero)

		_, err := uc.Execute(ctx, CloseCycleInput{CycleID: cycle.ID})
		assertCycleErrorCode(t, err, domainerror.ErrCodeCycleAlreadyClosed)
	})

	t.Run("freezes totals and the per-share dividend", func(t *testing.T) {
		cycle := entity.NewCycle("2026", now.AddDate(-1, 0, 0), now)
		uc, repo := build(cycle, 70, decimal.NewFromInt(7000), decimal.NewFromInt(1000))

		out, err := uc.Execute(ctx, CloseCycleInput{CycleID: cycle.ID})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		closed := out.Cycle
		if closed.Status != entity.CycleStatusClosed {
			t.Errorf("Status = %s, want closed", closed.Status)
		}
		if closed.TotalShares != 70 {
			t.Errorf("TotalShares = %d, want 70", closed.TotalShares)
		}
		if !closed.TotalSavings.Equal(decimal.NewFromInt(7000)) {
			t.Errorf("TotalSavings = %s, want 7000", closed.TotalSavings)
		}
		// 1000 interest over 70 shares, rounded to cents.
		want := decimal.RequireFromString("14.29")
		if closed.DividendPerShare == nil || !closed.DividendPerShare.Equal(want) {
			t.Errorf("DividendPerShare = %v, want %s", closed.DividendPerShare, want)
		}
		if closed.ClosedAt == nil || !closed.ClosedAt.Equal(now) {
			t.Errorf("ClosedAt = %v, want %s", closed.ClosedAt, now)
		}
		if out.ZeroShares {
			t.Error("ZeroShares = true, want false")
		}

		stored, _ := repo.FindByID(ctx, cycle.ID)
		if stored.Status != entity.CycleStatusClosed {
			t.Errorf("stored Status = %s, want closed", stored.Status)
		}
	})

	t.Run("zero shares close with a zero dividend", func(t *testing.T) {
		cycle := entity.NewCycle("2026", now.AddDate(-1, 0, 0), now)
		uc, _ := build(cycle, 0, decimal.Zero, decimal.NewFromInt(500))

		out, err := uc.Execute(ctx, CloseCycleInput{CycleID: cycle.ID})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if !out.ZeroShares {
			t.Error("ZeroShares = false, want true")
		}
		if out.Cycle.DividendPerShare == nil || !out.Cycle.DividendPerShare.IsZero() {
			t.Errorf("DividendPerShare = %v, want 0", out.Cycle.DividendPerShare)
		}
	})
}

func TestShareOutPreview(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 12, 31, 18, 0, 0, 0, time.UTC)

	newClosedCycle := func(dps string) *entity.Cycle {
		cycle := entity.NewCycle("2026", now.AddDate(-1, 0, 0), now)
		cycle.Status = entity.CycleStatusClosed
		d := decimal.RequireFromString(dps)
		cycle.DividendPerShare = &d
		return cycle
	}

	memberWithShares := func(name string, shares int) *entity.Member {
		m := entity.NewMember(name, "", "", now.AddDate(-2, 0, 0))
		m.TotalShares = shares
		return m
	}

	t.Run("rejects an open cycle", func(t *testing.T) {
		cycle := entity.NewCycle("2026", now.AddDate(-1, 0, 0), now)
		uc := NewShareOutPreviewUseCase(newFakeCycleRepo(cycle), &stubMemberRepo{})

		_, err := uc.Execute(ctx, ShareOutPreviewInput{CycleID: cycle.ID})
		assertCycleErrorCode(t, err, domainerror.ErrCodeCycleNotClosed)
	})

	t.Run("computes per-member dividends from the frozen rate", func(t *testing.T) {
		cycle := newClosedCycle("14.29")
		members := []*entity.Member{
			memberWithShares("Amina Wanjiru", 50),
			memberWithShares("Joseph Otieno", 20),
			memberWithShares("Grace Achieng", 0), // No shares, excluded from the report.
		}
		uc := NewShareOutPreviewUseCase(newFakeCycleRepo(cycle), &stubMemberRepo{members: members})

		out, err := uc.Execute(ctx, ShareOutPreviewInput{CycleID: cycle.ID})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		if len(out.Rows) != 2 {
			t.Fatalf("rows = %d, want 2", len(out.Rows))
		}
		byName := make(map[string]decimal.Decimal)
		for _, row := range out.Rows {
			byName[row.MemberName] = row.Dividend
		}
		if got := byName["Amina Wanjiru"]; !got.Equal(decimal.RequireFromString("714.50")) {
			t.Errorf("dividend for 50 shares = %s, want 714.50", got)
		}
		if got := byName["Joseph Otieno"]; !got.Equal(decimal.RequireFromString("285.80")) {
			t.Errorf("dividend for 20 shares = %s, want 285.80", got)
		}
		if !out.TotalDividend.Equal(decimal.RequireFromString("1000.30")) {
			t.Errorf("TotalDividend = %s, want 1000.30", out.TotalDividend)
		}
	})
}
