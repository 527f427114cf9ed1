package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/village-banking/backend/internal/application/adapter"
	"github.com/village-banking/backend/internal/domain/entity"
	domainerror "github.com/village-banking/backend/internal/domain/error"
	"github.com/village-banking/backend/internal/integration/persistence/model"
)

// cycleRepository implements the adapter.CycleRepository interface.
type cycleRepository struct {
	db *gorm.DB
}

// NewCycleRepository creates a new cycle repository instance.
func NewCycleRepository(db *gorm.DB) adapter.CycleRepository {
	return &cycleRepository{
		db: db,
	}
}

// Create persists a new cycle.
func (r *cycleRepository) Create(ctx context.Context, cycle *entity.Cycle) error {
	cycleModel := model.CycleFromEntity(cycle)
	result := dbFromContext(ctx, r.db).Create(cycleModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a cycle by its ID.
func (r *cycleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Cycle, error) {
	var cycleModel model.CycleModel
	result := dbFromContext(ctx, r.db).Where("id = ?", id).First(&cycleModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCycleNotFound
		}
		return nil, result.Error
	}
	return cycleModel.ToEntity(), nil
}

// FindAll retrieves all cycles, newest first.
func (r *cycleRepository) FindAll(ctx context.Context) ([]*entity.Cycle, error) {
	var cycleModels []model.CycleModel
	result := dbFromContext(ctx, r.db).
		Order("start_date DESC").
		Find(&cycleModels)
	if result.Error != nil {
		return nil, result.Error
	}

	cycles := make([]*entity.Cycle, len(cycleModels))
	for i, cm := range cycleModels {
		cycles[i] = cm.ToEntity()
	}
	return cycles, nil
}

// FindActive retrieves the currently active cycle, or nil when none exists.
func (r *cycleRepository) FindActive(ctx context.Context) (*entity.Cycle, error) {
	var cycleModel model.CycleModel
	result := dbFromContext(ctx, r.db).
		Where("status = ?", string(entity.CycleStatusActive)).
		First(&cycleModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return cycleModel.ToEntity(), nil
}

// CloseGuarded persists the closed cycle only if its stored status is still
// active. A zero rows-affected result means it was already closed.
func (r *cycleRepository) CloseGuarded(ctx context.Context, cycle *entity.Cycle) error {
	cycleModel := model.CycleFromEntity(cycle)
	result := dbFromContext(ctx, r.db).
		Model(&model.CycleModel{}).
		Where("id = ? AND status = ?", cycle.ID, string(entity.CycleStatusActive)).
		Updates(map[string]interface{}{
			"status":             cycleModel.Status,
			"total_shares":       cycleModel.TotalShares,
			"total_savings":      cycleModel.TotalSavings,
			"dividend_per_share": cycleModel.DividendPerShare,
			"closed_at":          cycleModel.ClosedAt,
			"updated_at":         cycleModel.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCycleAlreadyClosed
	}
	return nil
}
