package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/village-banking/backend/internal/application/adapter"
	"github.com/village-banking/backend/internal/domain/entity"
	domainerror "github.com/village-banking/backend/internal/domain/error"
	"github.com/village-banking/backend/internal/integration/persistence/model"
)

// loanRepository implements the adapter.LoanRepository interface.
type loanRepository struct {
	db    *gorm.DB
	clock adapter.Clock
}

// NewLoanRepository creates a new loan repository instance.
func NewLoanRepository(db *gorm.DB, clock adapter.Clock) adapter.LoanRepository {
	return &loanRepository{
		db:    db,
		clock: clock,
	}
}

// Create persists a new loan request.
func (r *loanRepository) Create(ctx context.Context, loan *entity.Loan) error {
	loanModel := model.LoanFromEntity(loan)
	result := dbFromContext(ctx, r.db).Create(loanModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a loan by its ID within a family.
func (r *loanRepository) FindByID(ctx context.Context, family entity.LoanFamily, id uuid.UUID) (*entity.Loan, error) {
	var loanModel model.LoanModel
	result := dbFromContext(ctx, r.db).
		Where("id = ? AND family = ?", id, string(family)).
		First(&loanModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrLoanNotFound
		}
		return nil, result.Error
	}
	return loanModel.ToEntity(), nil
}

// FindAll retrieves all loans in a family, newest first.
func (r *loanRepository) FindAll(ctx context.Context, family entity.LoanFamily) ([]*entity.Loan, error) {
	var loanModels []model.LoanModel
	result := dbFromContext(ctx, r.db).
		Where("family = ?", string(family)).
		Order("created_at DESC").
		Find(&loanModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return loansToEntities(loanModels), nil
}

// FindByMember retrieves all of a member's loans in a family.
func (r *loanRepository) FindByMember(ctx context.Context, family entity.LoanFamily, memberID uuid.UUID) ([]*entity.Loan, error) {
	var loanModels []model.LoanModel
	result := dbFromContext(ctx, r.db).
		Where("family = ? AND member_id = ?", string(family), memberID).
		Order("created_at DESC").
		Find(&loanModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return loansToEntities(loanModels), nil
}

// Update persists changes to an existing loan.
func (r *loanRepository) Update(ctx context.Context, loan *entity.Loan) error {
	loanModel := model.LoanFromEntity(loan)
	result := dbFromContext(ctx, r.db).Save(loanModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// UpdateGuarded persists the loan only if its stored status still equals
// expected. A zero rows-affected result means another writer changed the loan
// first.
func (r *loanRepository) UpdateGuarded(ctx context.Context, loan *entity.Loan, expected entity.LoanStatus) error {
	loanModel := model.LoanFromEntity(loan)
	result := dbFromContext(ctx, r.db).
		Model(&model.LoanModel{}).
		Where("id = ? AND status = ?", loan.ID, string(expected)).
		Updates(map[string]interface{}{
			"principal_amount": loanModel.PrincipalAmount,
			"interest_rate":    loanModel.InterestRate,
			"interest_kind":    loanModel.InterestKind,
			"interest_amount":  loanModel.InterestAmount,
			"total_repayment":  loanModel.TotalRepayment,
			"amount_paid":      loanModel.AmountPaid,
			"status":           loanModel.Status,
			"approval_date":    loanModel.ApprovalDate,
			"due_date":         loanModel.DueDate,
			"rollover_count":   loanModel.RolloverCount,
			"updated_at":       loanModel.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrLoanStateChanged
	}
	return nil
}

// OutstandingByMember returns the member's total unpaid balance across active
// loans in a family.
func (r *loanRepository) OutstandingByMember(ctx context.Context, family entity.LoanFamily, memberID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.Decimal
	result := dbFromContext(ctx, r.db).
		Model(&model.LoanModel{}).
		Select("COALESCE(SUM(total_repayment - amount_paid), 0)").
		Where("family = ? AND member_id = ? AND status = ?",
			string(family), memberID, string(entity.LoanStatusActive)).
		Scan(&total)
	if result.Error != nil {
		return decimal.Zero, result.Error
	}
	return total, nil
}

// SumPrincipalByStatus returns the total principal of loans in the given states.
func (r *loanRepository) SumPrincipalByStatus(ctx context.Context, family entity.LoanFamily, statuses ...entity.LoanStatus) (decimal.Decimal, error) {
	return r.sumByStatus(ctx, "COALESCE(SUM(principal_amount), 0)", family, statuses)
}

// SumInterestByStatus returns the total interest of loans in the given states.
func (r *loanRepository) SumInterestByStatus(ctx context.Context, family entity.LoanFamily, statuses ...entity.LoanStatus) (decimal.Decimal, error) {
	return r.sumByStatus(ctx, "COALESCE(SUM(interest_amount), 0)", family, statuses)
}

// SumOutstandingByStatus returns the total unpaid balance of loans in the
// given states.
func (r *loanRepository) SumOutstandingByStatus(ctx context.Context, family entity.LoanFamily, statuses ...entity.LoanStatus) (decimal.Decimal, error) {
	return r.sumByStatus(ctx, "COALESCE(SUM(total_repayment - amount_paid), 0)", family, statuses)
}

// CountByStatus returns the number of loans in the given states.
func (r *loanRepository) CountByStatus(ctx context.Context, family entity.LoanFamily, statuses ...entity.LoanStatus) (int, error) {
	if len(statuses) == 0 {
		return 0, nil
	}

	var count int64
	result := dbFromContext(ctx, r.db).
		Model(&model.LoanModel{}).
		Where("family = ? AND status IN ?", string(family), statusStrings(statuses)).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return int(count), nil
}

// CountOverdue returns the number of active loans past their due date.
func (r *loanRepository) CountOverdue(ctx context.Context, family entity.LoanFamily) (int, error) {
	var count int64
	result := dbFromContext(ctx, r.db).
		Model(&model.LoanModel{}).
		Where("family = ? AND status = ? AND due_date < ?",
			string(family), string(entity.LoanStatusActive), r.now()).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return int(count), nil
}

// ExistsByMember reports whether any loan in either family references the member.
func (r *loanRepository) ExistsByMember(ctx context.Context, memberID uuid.UUID) (bool, error) {
	var count int64
	result := dbFromContext(ctx, r.db).
		Model(&model.LoanModel{}).
		Where("member_id = ?", memberID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

func (r *loanRepository) sumByStatus(ctx context.Context, selectExpr string, family entity.LoanFamily, statuses []entity.LoanStatus) (decimal.Decimal, error) {
	if len(statuses) == 0 {
		return decimal.Zero, nil
	}

	var total decimal.Decimal
	result := dbFromContext(ctx, r.db).
		Model(&model.LoanModel{}).
		Select(selectExpr).
		Where("family = ? AND status IN ?", string(family), statusStrings(statuses)).
		Scan(&total)
	if result.Error != nil {
		return decimal.Zero, result.Error
	}
	return total, nil
}

func (r *loanRepository) now() time.Time {
	if r.clock != nil {
		return r.clock.Now()
	}
	return time.Now().UTC()
}

func statusStrings(statuses []entity.LoanStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func loansToEntities(loanModels []model.LoanModel) []*entity.Loan {
	loans := make([]*entity.Loan, len(loanModels))
	for i, lm := range loanModels {
		loans[i] = lm.ToEntity()
	}
	return loans
}
