package loan

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/village-banking/backend/internal/domain/entity"
	domainerror "github.com/village-banking/backend/internal/domain/error"
)

// fakeClock returns a fixed instant so due dates and overdue checks are
// deterministic.
type fakeClock struct {
	now time.Time
}

func (c fakeClock) Now() time.Time {
	return c.now
}

// passTxManager runs the function directly without any transaction.
type passTxManager struct{}

func (passTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeMemberRepo struct {
	members map[uuid.UUID]*entity.Member
}

func newFakeMemberRepo(members ...*entity.Member) *fakeMemberRepo {
	repo := &fakeMemberRepo{members: make(map[uuid.UUID]*entity.Member)}
	for _, m := range members {
		repo.members[m.ID] = m
	}
	return repo
}

func (r *fakeMemberRepo) Create(_ context.Context, member *entity.Member) error {
	r.members[member.ID] = member
	return nil
}

func (r *fakeMemberRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Member, error) {
	member, ok := r.members[id]
	if !ok {
		return nil, domainerror.ErrMemberNotFound
	}
	copied := *member
	return &copied, nil
}

func (r *fakeMemberRepo) FindAll(_ context.Context) ([]*entity.Member, error) {
	var all []*entity.Member
	for _, m := range r.members {
		copied := *m
		all = append(all, &copied)
	}
	return all, nil
}

func (r *fakeMemberRepo) Update(_ context.Context, member *entity.Member) error {
	r.members[member.ID] = member
	return nil
}

func (r *fakeMemberRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.members, id)
	return nil
}

func (r *fakeMemberRepo) Count(_ context.Context) (int, error) {
	return len(r.members), nil
}

func (r *fakeMemberRepo) CountActive(_ context.Context) (int, error) {
	count := 0
	for _, m := range r.members {
		if m.IsActive() {
			count++
		}
	}
	return count, nil
}

func (r *fakeMemberRepo) SumShares(_ context.Context) (int, error) {
	total := 0
	for _, m := range r.members {
		total += m.TotalShares
	}
	return total, nil
}

func (r *fakeMemberRepo) SumSavings(_ context.Context, activeOnly bool) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, m := range r.members {
		if activeOnly && !m.IsActive() {
			continue
		}
		total = total.Add(m.TotalSavings)
	}
	return total, nil
}

func (r *fakeMemberRepo) SumSocialContributions(_ context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, m := range r.members {
		total = total.Add(m.SocialContributions)
	}
	return total, nil
}

func (r *fakeMemberRepo) SumBirthdayContributions(_ context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, m := range r.members {
		total = total.Add(m.BirthdayContributions)
	}
	return total, nil
}

type fakeLoanRepo struct {
	loans    map[uuid.UUID]*entity.Loan
	now      time.Time
	guardErr error // forced UpdateGuarded failure when set
}

func newFakeLoanRepo(now time.Time, loans ...*entity.Loan) *fakeLoanRepo {
	repo := &fakeLoanRepo{loans: make(map[uuid.UUID]*entity.Loan), now: now}
	for _, l := range loans {
		repo.loans[l.ID] = l
	}
	return repo
}

func (r *fakeLoanRepo) Create(_ context.Context, loan *entity.Loan) error {
	copied := *loan
	r.loans[loan.ID] = &copied
	return nil
}

func (r *fakeLoanRepo) FindByID(_ context.Context, family entity.LoanFamily, id uuid.UUID) (*entity.Loan, error) {
	loan, ok := r.loans[id]
	if !ok || loan.Family != family {
		return nil, domainerror.ErrLoanNotFound
	}
	copied := *loan
	return &copied, nil
}

func (r *fakeLoanRepo) FindAll(_ context.Context, family entity.LoanFamily) ([]*entity.Loan, error) {
	var all []*entity.Loan
	for _, l := range r.loans {
		if l.Family == family {
			copied := *l
			all = append(all, &copied)
		}
	}
	return all, nil
}

func (r *fakeLoanRepo) FindByMember(_ context.Context, family entity.LoanFamily, memberID uuid.UUID) ([]*entity.Loan, error) {
	var all []*entity.Loan
	for _, l := range r.loans {
		if l.Family == family && l.MemberID == memberID {
			copied := *l
			all = append(all, &copied)
		}
	}
	return all, nil
}

func (r *fakeLoanRepo) Update(_ context.Context, loan *entity.Loan) error {
	copied := *loan
	r.loans[loan.ID] = &copied
	return nil
}

func (r *fakeLoanRepo) UpdateGuarded(_ context.Context, loan *entity.Loan, expected entity.LoanStatus) error {
	if r.guardErr != nil {
		return r.guardErr
	}
	stored, ok := r.loans[loan.ID]
	if !ok || stored.Status != expected {
		return domainerror.ErrLoanStateChanged
	}
	copied := *loan
	r.loans[loan.ID] = &copied
	return nil
}

func (r *fakeLoanRepo) OutstandingByMember(_ context.Context, family entity.LoanFamily, memberID uuid.UUID) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, l := range r.loans {
		if l.Family == family && l.MemberID == memberID && l.Status == entity.LoanStatusActive {
			total = total.Add(l.Outstanding())
		}
	}
	return total, nil
}

func (r *fakeLoanRepo) SumPrincipalByStatus(_ context.Context, family entity.LoanFamily, statuses ...entity.LoanStatus) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, l := range r.loans {
		if l.Family == family && statusIn(l.Status, statuses) {
			total = total.Add(l.PrincipalAmount)
		}
	}
	return total, nil
}

func (r *fakeLoanRepo) SumInterestByStatus(_ context.Context, family entity.LoanFamily, statuses ...entity.LoanStatus) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, l := range r.loans {
		if l.Family == family && statusIn(l.Status, statuses) {
			total = total.Add(l.InterestAmount)
		}
	}
	return total, nil
}

func (r *fakeLoanRepo) SumOutstandingByStatus(_ context.Context, family entity.LoanFamily, statuses ...entity.LoanStatus) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, l := range r.loans {
		if l.Family == family && statusIn(l.Status, statuses) {
			total = total.Add(l.Outstanding())
		}
	}
	return total, nil
}

func (r *fakeLoanRepo) CountByStatus(_ context.Context, family entity.LoanFamily, statuses ...entity.LoanStatus) (int, error) {
	count := 0
	for _, l := range r.loans {
		if l.Family == family && statusIn(l.Status, statuses) {
			count++
		}
	}
	return count, nil
}

func (r *fakeLoanRepo) CountOverdue(_ context.Context, family entity.LoanFamily) (int, error) {
	count := 0
	for _, l := range r.loans {
		if l.Family == family && l.IsOverdue(r.now) {
			count++
		}
	}
	return count, nil
}

func (r *fakeLoanRepo) ExistsByMember(_ context.Context, memberID uuid.UUID) (bool, error) {
	for _, l := range r.loans {
		if l.MemberID == memberID {
			return true, nil
		}
	}
	return false, nil
}

func statusIn(status entity.LoanStatus, statuses []entity.LoanStatus) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}

type fakeTxnRepo struct {
	entries []*entity.Transaction
}

func (r *fakeTxnRepo) Create(_ context.Context, tx *entity.Transaction) error {
	r.entries = append(r.entries, tx)
	return nil
}

func (r *fakeTxnRepo) FindAll(_ context.Context) ([]*entity.Transaction, error) {
	return r.entries, nil
}

func (r *fakeTxnRepo) FindByMember(_ context.Context, memberID uuid.UUID) ([]*entity.Transaction, error) {
	var matched []*entity.Transaction
	for _, e := range r.entries {
		if e.MemberID == memberID {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

func (r *fakeTxnRepo) SumByType(_ context.Context, types ...entity.TransactionType) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, e := range r.entries {
		for _, t := range types {
			if e.Type == t {
				total = total.Add(e.Amount)
				break
			}
		}
	}
	return total, nil
}

func (r *fakeTxnRepo) ExistsByMember(_ context.Context, memberID uuid.UUID) (bool, error) {
	for _, e := range r.entries {
		if e.MemberID == memberID {
			return true, nil
		}
	}
	return false, nil
}

// lastEntry returns the most recently appended ledger entry, or nil.
func (r *fakeTxnRepo) lastEntry() *entity.Transaction {
	if len(r.entries) == 0 {
		return nil
	}
	return r.entries[len(r.entries)-1]
}

type fakeSettingsRepo struct {
	settings *entity.Settings
}

func (r *fakeSettingsRepo) Get(_ context.Context) (*entity.Settings, error) {
	if r.settings == nil {
		return entity.DefaultSettings(), nil
	}
	copied := *r.settings
	return &copied, nil
}

func (r *fakeSettingsRepo) Save(_ context.Context, settings *entity.Settings) error {
	copied := *settings
	r.settings = &copied
	return nil
}
