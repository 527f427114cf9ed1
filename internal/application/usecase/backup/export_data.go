package backup

import (
	"context"
	"fmt"
	"time"

	"github.com/village-banking/backend/internal/application/adapter"
)

// ExportDataOutput represents the output of a full export.
type ExportDataOutput struct {
	Snapshot *Snapshot
}

// ExportDataUseCase dumps the whole store for off-device backup.
type ExportDataUseCase struct {
	snapshotRepo SnapshotRepository
	clock        adapter.Clock
}

// NewExportDataUseCase creates a new ExportDataUseCase instance.
func NewExportDataUseCase(snapshotRepo SnapshotRepository, clock adapter.Clock) *ExportDataUseCase {
	return &ExportDataUseCase{
		snapshotRepo: snapshotRepo,
		clock:        clock,
	}
}

// Execute exports every collection and the settings.
func (uc *ExportDataUseCase) Execute(ctx context.Context) (*ExportDataOutput, error) {
	snapshot, err := uc.snapshotRepo.Export(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export data: %w", err)
	}

	snapshot.ExportedAt = uc.clock.Now().Format(time.RFC3339)
	return &ExportDataOutput{Snapshot: snapshot}, nil
}
