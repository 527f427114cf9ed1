package persistence_test

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/village-banking/backend/internal/domain/entity"
	"github.com/village-banking/backend/internal/integration/persistence/model"
)

var dbSeq atomic.Int64

// newTestDB opens a uniquely named in-memory sqlite database so parallel
// tests never share state. The single-connection pool keeps every query on
// the same memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:repotest%d?mode=memory&cache=shared", dbSeq.Add(1))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, gdb.AutoMigrate(
		&model.MemberModel{},
		&model.TransactionModel{},
		&model.LoanModel{},
		&model.CycleModel{},
		&model.SettingsModel{},
	))

	return gdb
}

// fixedClock pins repository time lookups for overdue queries.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func newMember(t *testing.T, db *gorm.DB, name string) *entity.Member {
	t.Helper()

	member := entity.NewMember(name, "30412876", "+254712345678",
		time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, db.Create(model.MemberFromEntity(member)).Error)
	return member
}

func newLoan(member *entity.Member, family entity.LoanFamily, principal int64, status entity.LoanStatus, dueDate time.Time) *entity.Loan {
	loan := entity.NewLoan(
		member.ID,
		family,
		decimal.NewFromInt(principal),
		decimal.NewFromInt(10),
		entity.InterestKindFlatOnce,
		decimal.NewFromInt(principal/10),
		dueDate.AddDate(0, 0, -30),
		dueDate,
	)
	loan.Status = status
	return loan
}

func d(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func timeDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
