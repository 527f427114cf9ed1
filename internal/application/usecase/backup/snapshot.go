// Package backup contains the bulk data use cases: export, import, clear and
// demo seeding. These are structural dumps of the whole store, not ledger
// logic.
package backup

import (
	"context"

	"github.com/village-banking/backend/internal/domain/entity"
)

// Snapshot is an all-or-nothing structural dump of every collection plus the
// settings singleton.
type Snapshot struct {
	Members      []*entity.Member      `json:"members"`
	Transactions []*entity.Transaction `json:"transactions"`
	Loans        []*entity.Loan        `json:"loans"`
	Cycles       []*entity.Cycle       `json:"cycles"`
	Settings     *entity.Settings      `json:"settings"`
	ExportedAt   string                `json:"exported_at"`
}

// SnapshotRepository defines the bulk operations over the whole store. Import
// and Clear run inside a single transaction in the implementation.
type SnapshotRepository interface {
	// Export reads every collection and the settings.
	Export(ctx context.Context) (*Snapshot, error)

	// Import wipes the store and loads the snapshot in its place.
	Import(ctx context.Context, snapshot *Snapshot) error

	// Clear wipes every collection and resets settings to defaults.
	Clear(ctx context.Context) error
}
