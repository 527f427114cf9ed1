package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/village-banking/backend/internal/application/adapter"
	"github.com/village-banking/backend/internal/domain/entity"
	"github.com/village-banking/backend/internal/integration/persistence/model"
)

// settingsRepository implements the adapter.SettingsRepository interface.
// Settings live in a single fixed-ID row.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository instance.
func NewSettingsRepository(db *gorm.DB) adapter.SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

// Get retrieves the current settings, falling back to defaults when the store
// has never been written.
func (r *settingsRepository) Get(ctx context.Context) (*entity.Settings, error) {
	var settingsModel model.SettingsModel
	result := dbFromContext(ctx, r.db).First(&settingsModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return entity.DefaultSettings(), nil
		}
		return nil, result.Error
	}
	return settingsModel.ToEntity(), nil
}

// Save replaces the settings row as a whole object.
func (r *settingsRepository) Save(ctx context.Context, settings *entity.Settings) error {
	settingsModel := model.SettingsFromEntity(settings)
	result := dbFromContext(ctx, r.db).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(settingsModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
