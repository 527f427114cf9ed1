// Package settings contains the group configuration use cases.
package settings

import (
	"context"
	"fmt"

	"github.com/village-banking/backend/internal/application/adapter"
	"github.com/village-banking/backend/internal/domain/entity"
)

// GetSettingsOutput represents the output of the settings read.
type GetSettingsOutput struct {
	Settings *entity.Settings
}

// GetSettingsUseCase retrieves the group configuration singleton.
type GetSettingsUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewGetSettingsUseCase creates a new GetSettingsUseCase instance.
func NewGetSettingsUseCase(settingsRepo adapter.SettingsRepository) *GetSettingsUseCase {
	return &GetSettingsUseCase{settingsRepo: settingsRepo}
}

// Execute retrieves the current settings.
func (uc *GetSettingsUseCase) Execute(ctx context.Context) (*GetSettingsOutput, error) {
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return &GetSettingsOutput{Settings: settings}, nil
}
