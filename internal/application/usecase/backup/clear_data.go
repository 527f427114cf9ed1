package backup

import (
	"context"
	"fmt"
)

// ClearDataOutput represents the output of wiping the store.
type ClearDataOutput struct {
	Cleared bool
}

// ClearDataUseCase wipes every collection and resets settings to defaults.
type ClearDataUseCase struct {
	snapshotRepo SnapshotRepository
}

// NewClearDataUseCase creates a new ClearDataUseCase instance.
func NewClearDataUseCase(snapshotRepo SnapshotRepository) *ClearDataUseCase {
	return &ClearDataUseCase{snapshotRepo: snapshotRepo}
}

// Execute wipes the store.
func (uc *ClearDataUseCase) Execute(ctx context.Context) (*ClearDataOutput, error) {
	if err := uc.snapshotRepo.Clear(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear data: %w", err)
	}
	return &ClearDataOutput{Cleared: true}, nil
}
