package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/village-banking/backend/internal/domain/entity"
	domainerror "github.com/village-banking/backend/internal/domain/error"
	"github.com/village-banking/backend/internal/integration/persistence"
)

func TestLoanRepositoryFamiliesAreIsolated(t *testing.T) {
	db := newTestDB(t)
	clock := fixedClock{now: timeDate(2026, 3, 1)}
	repo := persistence.NewLoanRepository(db, clock)
	ctx := context.Background()

	member := newMember(t, db, "Amina Wanjiru")
	mainLoan := newLoan(member, entity.LoanFamilyMain, 1000, entity.LoanStatusActive, timeDate(2026, 4, 1))
	socialLoan := newLoan(member, entity.LoanFamilySocial, 300, entity.LoanStatusActive, timeDate(2026, 4, 1))
	require.NoError(t, repo.Create(ctx, mainLoan))
	require.NoError(t, repo.Create(ctx, socialLoan))

	found, err := repo.FindByID(ctx, entity.LoanFamilyMain, mainLoan.ID)
	require.NoError(t, err)
	assert.True(t, found.PrincipalAmount.Equal(d("1000")))
	assert.Equal(t, entity.LoanFamilyMain, found.Family)

	// A social lookup must not see a main loan even with the right ID.
	_, err = repo.FindByID(ctx, entity.LoanFamilySocial, mainLoan.ID)
	assert.ErrorIs(t, err, domainerror.ErrLoanNotFound)

	mainLoans, err := repo.FindAll(ctx, entity.LoanFamilyMain)
	require.NoError(t, err)
	assert.Len(t, mainLoans, 1)

	byMember, err := repo.FindByMember(ctx, entity.LoanFamilySocial, member.ID)
	require.NoError(t, err)
	require.Len(t, byMember, 1)
	assert.Equal(t, socialLoan.ID, byMember[0].ID)
}

func TestLoanRepositoryUpdateGuarded(t *testing.T) {
	db := newTestDB(t)
	clock := fixedClock{now: timeDate(2026, 3, 1)}
	repo := persistence.NewLoanRepository(db, clock)
	ctx := context.Background()

	member := newMember(t, db, "Joseph Otieno")
	loan := newLoan(member, entity.LoanFamilyMain, 1000, entity.LoanStatusPending, timeDate(2026, 4, 1))
	require.NoError(t, repo.Create(ctx, loan))

	approval := timeDate(2026, 3, 1)
	loan.Status = entity.LoanStatusActive
	loan.ApprovalDate = &approval
	loan.UpdatedAt = approval
	require.NoError(t, repo.UpdateGuarded(ctx, loan, entity.LoanStatusPending))

	stored, err := repo.FindByID(ctx, entity.LoanFamilyMain, loan.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.LoanStatusActive, stored.Status)
	require.NotNil(t, stored.ApprovalDate)

	// The stored status is no longer pending, so the same guard must fail
	// and leave the row untouched.
	loan.Status = entity.LoanStatusPaid
	err = repo.UpdateGuarded(ctx, loan, entity.LoanStatusPending)
	assert.ErrorIs(t, err, domainerror.ErrLoanStateChanged)

	stored, err = repo.FindByID(ctx, entity.LoanFamilyMain, loan.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.LoanStatusActive, stored.Status)
}

func TestLoanRepositoryAggregates(t *testing.T) {
	db := newTestDB(t)
	clock := fixedClock{now: timeDate(2026, 3, 1)}
	repo := persistence.NewLoanRepository(db, clock)
	ctx := context.Background()

	borrower := newMember(t, db, "Amina Wanjiru")
	other := newMember(t, db, "Grace Njeri")

	active := newLoan(borrower, entity.LoanFamilyMain, 1000, entity.LoanStatusActive, timeDate(2026, 4, 1))
	overdue := newLoan(borrower, entity.LoanFamilyMain, 500, entity.LoanStatusActive, timeDate(2026, 2, 1))
	overdue.AmountPaid = d("150")
	paid := newLoan(other, entity.LoanFamilyMain, 400, entity.LoanStatusPaid, timeDate(2026, 1, 15))
	paid.AmountPaid = paid.TotalRepayment
	defaulted := newLoan(other, entity.LoanFamilyMain, 200, entity.LoanStatusDefaulted, timeDate(2026, 1, 15))
	social := newLoan(borrower, entity.LoanFamilySocial, 300, entity.LoanStatusActive, timeDate(2026, 4, 1))

	for _, l := range []*entity.Loan{active, overdue, paid, defaulted, social} {
		require.NoError(t, repo.Create(ctx, l))
	}

	principal, err := repo.SumPrincipalByStatus(ctx, entity.LoanFamilyMain,
		entity.LoanStatusActive, entity.LoanStatusPaid)
	require.NoError(t, err)
	assert.True(t, principal.Equal(d("1900")), "principal = %s", principal)

	interest, err := repo.SumInterestByStatus(ctx, entity.LoanFamilyMain,
		entity.LoanStatusActive, entity.LoanStatusPaid)
	require.NoError(t, err)
	assert.True(t, interest.Equal(d("190")), "interest = %s", interest)

	// 1100 outstanding on the current loan plus 400 left on the overdue one.
	outstanding, err := repo.SumOutstandingByStatus(ctx, entity.LoanFamilyMain, entity.LoanStatusActive)
	require.NoError(t, err)
	assert.True(t, outstanding.Equal(d("1500")), "outstanding = %s", outstanding)

	activeCount, err := repo.CountByStatus(ctx, entity.LoanFamilyMain, entity.LoanStatusActive)
	require.NoError(t, err)
	assert.Equal(t, 2, activeCount)

	overdueCount, err := repo.CountOverdue(ctx, entity.LoanFamilyMain)
	require.NoError(t, err)
	assert.Equal(t, 1, overdueCount)

	memberOutstanding, err := repo.OutstandingByMember(ctx, entity.LoanFamilyMain, borrower.ID)
	require.NoError(t, err)
	assert.True(t, memberOutstanding.Equal(d("1500")))

	exists, err := repo.ExistsByMember(ctx, borrower.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByMember(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLoanRepositoryCountOverdueFollowsClock(t *testing.T) {
	db := newTestDB(t)
	dueDate := timeDate(2026, 4, 1)
	ctx := context.Background()

	member := newMember(t, db, "Peter Kamau")
	loan := newLoan(member, entity.LoanFamilyMain, 600, entity.LoanStatusActive, dueDate)

	before := persistence.NewLoanRepository(db, fixedClock{now: dueDate.Add(-time.Hour)})
	require.NoError(t, before.Create(ctx, loan))

	count, err := before.CountOverdue(ctx, entity.LoanFamilyMain)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	after := persistence.NewLoanRepository(db, fixedClock{now: dueDate.Add(time.Hour)})
	count, err = after.CountOverdue(ctx, entity.LoanFamilyMain)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
