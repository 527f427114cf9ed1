package persistence_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/village-banking/backend/internal/domain/entity"
	domainerror "github.com/village-banking/backend/internal/domain/error"
	"github.com/village-banking/backend/internal/integration/persistence"
	"github.com/village-banking/backend/internal/integration/persistence/model"
)

func TestMemberRepositoryLifecycle(t *testing.T) {
	db := newTestDB(t)
	repo := persistence.NewMemberRepository(db)
	ctx := context.Background()

	member := entity.NewMember("Amina Wanjiru", "30412876", "+254712345678",
		timeDate(2026, 1, 10))
	require.NoError(t, repo.Create(ctx, member))

	found, err := repo.FindByID(ctx, member.ID)
	require.NoError(t, err)
	assert.Equal(t, "Amina Wanjiru", found.Name)
	assert.Equal(t, entity.MemberStatusActive, found.Status)
	assert.True(t, found.TotalSavings.IsZero())

	found.TotalShares = 5
	found.TotalSavings = d("500")
	require.NoError(t, repo.Update(ctx, found))

	reloaded, err := repo.FindByID(ctx, member.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, reloaded.TotalShares)
	assert.True(t, reloaded.TotalSavings.Equal(d("500")))

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerror.ErrMemberNotFound)
}

func TestMemberRepositoryDeleteIsSoft(t *testing.T) {
	db := newTestDB(t)
	repo := persistence.NewMemberRepository(db)
	ctx := context.Background()

	member := newMember(t, db, "Joseph Otieno")
	require.NoError(t, repo.Delete(ctx, member.ID))

	_, err := repo.FindByID(ctx, member.ID)
	assert.ErrorIs(t, err, domainerror.ErrMemberNotFound)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	// The row survives for audit and backup purposes.
	var count int64
	require.NoError(t, db.Model(&model.MemberModel{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
	require.NoError(t, db.Unscoped().Model(&model.MemberModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestMemberRepositoryAggregates(t *testing.T) {
	db := newTestDB(t)
	repo := persistence.NewMemberRepository(db)
	ctx := context.Background()

	active := newMember(t, db, "Amina Wanjiru")
	active.TotalShares = 10
	active.TotalSavings = d("1000")
	active.SocialContributions = d("150")
	active.BirthdayContributions = d("40")
	require.NoError(t, repo.Update(ctx, active))

	suspended := newMember(t, db, "Joseph Otieno")
	suspended.Status = entity.MemberStatusSuspended
	suspended.TotalShares = 4
	suspended.TotalSavings = d("400")
	suspended.SocialContributions = d("50")
	require.NoError(t, repo.Update(ctx, suspended))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	activeCount, err := repo.CountActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, activeCount)

	shares, err := repo.SumShares(ctx)
	require.NoError(t, err)
	assert.Equal(t, 14, shares)

	allSavings, err := repo.SumSavings(ctx, false)
	require.NoError(t, err)
	assert.True(t, allSavings.Equal(d("1400")), "all savings = %s", allSavings)

	activeSavings, err := repo.SumSavings(ctx, true)
	require.NoError(t, err)
	assert.True(t, activeSavings.Equal(d("1000")), "active savings = %s", activeSavings)

	social, err := repo.SumSocialContributions(ctx)
	require.NoError(t, err)
	assert.True(t, social.Equal(d("200")))

	birthday, err := repo.SumBirthdayContributions(ctx)
	require.NoError(t, err)
	assert.True(t, birthday.Equal(d("40")))
}

func TestMemberRepositoryAggregatesOnEmptyStore(t *testing.T) {
	db := newTestDB(t)
	repo := persistence.NewMemberRepository(db)
	ctx := context.Background()

	savings, err := repo.SumSavings(ctx, true)
	require.NoError(t, err)
	assert.True(t, savings.Equal(decimal.Zero))

	shares, err := repo.SumShares(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, shares)
}
