package adapter

import (
	"context"

	"github.com/village-banking/backend/internal/domain/entity"
)

// SettingsRepository defines the interface for the settings singleton.
type SettingsRepository interface {
	// Get retrieves the current settings, falling back to defaults when the
	// store has never been written.
	Get(ctx context.Context) (*entity.Settings, error)

	// Save replaces the settings as a whole object and persists immediately.
	Save(ctx context.Context, settings *entity.Settings) error
}
