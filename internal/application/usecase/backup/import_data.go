package backup

import (
	"context"
	"fmt"

	domainerror "github.com/village-banking/backend/internal/domain/error"
)

// ImportDataInput represents the input for a full restore.
type ImportDataInput struct {
	Snapshot *Snapshot
}

// ImportDataOutput represents the output of a full restore.
type ImportDataOutput struct {
	Imported bool
}

// ImportDataUseCase replaces the whole store with a previously exported
// snapshot. The restore is all-or-nothing.
type ImportDataUseCase struct {
	snapshotRepo SnapshotRepository
}

// NewImportDataUseCase creates a new ImportDataUseCase instance.
func NewImportDataUseCase(snapshotRepo SnapshotRepository) *ImportDataUseCase {
	return &ImportDataUseCase{snapshotRepo: snapshotRepo}
}

// Execute restores the snapshot.
func (uc *ImportDataUseCase) Execute(ctx context.Context, input ImportDataInput) (*ImportDataOutput, error) {
	if input.Snapshot == nil || input.Snapshot.Settings == nil {
		return nil, domainerror.NewBackupError(
			domainerror.ErrCodeInvalidSnapshot,
			"snapshot is missing required collections",
			domainerror.ErrInvalidSnapshot,
		)
	}

	if err := uc.snapshotRepo.Import(ctx, input.Snapshot); err != nil {
		return nil, fmt.Errorf("failed to import data: %w", err)
	}

	return &ImportDataOutput{Imported: true}, nil
}
