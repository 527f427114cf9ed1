package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/village-banking/backend/internal/application/usecase/backup"
	"github.com/village-banking/backend/internal/domain/entity"
	"github.com/village-banking/backend/internal/integration/persistence/model"
)

// snapshotRepository implements the backup.SnapshotRepository interface with
// whole-store bulk reads and writes. Import and Clear run in one transaction
// so a failed restore leaves the previous data intact.
type snapshotRepository struct {
	db *gorm.DB
}

// NewSnapshotRepository creates a new snapshot repository instance.
func NewSnapshotRepository(db *gorm.DB) backup.SnapshotRepository {
	return &snapshotRepository{
		db: db,
	}
}

// Export reads every collection and the settings singleton.
func (r *snapshotRepository) Export(ctx context.Context) (*backup.Snapshot, error) {
	db := dbFromContext(ctx, r.db)
	snapshot := &backup.Snapshot{}

	var memberModels []model.MemberModel
	if err := db.Unscoped().Order("created_at ASC").Find(&memberModels).Error; err != nil {
		return nil, err
	}
	for i := range memberModels {
		snapshot.Members = append(snapshot.Members, memberModels[i].ToEntity())
	}

	var txModels []model.TransactionModel
	if err := db.Order("created_at ASC").Find(&txModels).Error; err != nil {
		return nil, err
	}
	for i := range txModels {
		snapshot.Transactions = append(snapshot.Transactions, txModels[i].ToEntity())
	}

	var loanModels []model.LoanModel
	if err := db.Order("created_at ASC").Find(&loanModels).Error; err != nil {
		return nil, err
	}
	for i := range loanModels {
		snapshot.Loans = append(snapshot.Loans, loanModels[i].ToEntity())
	}

	var cycleModels []model.CycleModel
	if err := db.Order("created_at ASC").Find(&cycleModels).Error; err != nil {
		return nil, err
	}
	for i := range cycleModels {
		snapshot.Cycles = append(snapshot.Cycles, cycleModels[i].ToEntity())
	}

	var settingsModel model.SettingsModel
	if err := db.First(&settingsModel).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		snapshot.Settings = entity.DefaultSettings()
	} else {
		snapshot.Settings = settingsModel.ToEntity()
	}

	return snapshot, nil
}

// Import wipes the store and loads the snapshot in its place.
func (r *snapshotRepository) Import(ctx context.Context, snapshot *backup.Snapshot) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := wipe(tx); err != nil {
			return err
		}

		for _, member := range snapshot.Members {
			if err := tx.Create(model.MemberFromEntity(member)).Error; err != nil {
				return err
			}
		}
		for _, transaction := range snapshot.Transactions {
			if err := tx.Create(model.TransactionFromEntity(transaction)).Error; err != nil {
				return err
			}
		}
		for _, loan := range snapshot.Loans {
			if err := tx.Create(model.LoanFromEntity(loan)).Error; err != nil {
				return err
			}
		}
		for _, cycle := range snapshot.Cycles {
			if err := tx.Create(model.CycleFromEntity(cycle)).Error; err != nil {
				return err
			}
		}
		return tx.Create(model.SettingsFromEntity(snapshot.Settings)).Error
	})
}

// Clear wipes every collection and resets settings to defaults.
func (r *snapshotRepository) Clear(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := wipe(tx); err != nil {
			return err
		}
		return tx.Create(model.SettingsFromEntity(entity.DefaultSettings())).Error
	})
}

// wipe hard-deletes every row, including soft-deleted members.
func wipe(tx *gorm.DB) error {
	for _, m := range []interface{}{
		&model.TransactionModel{},
		&model.LoanModel{},
		&model.CycleModel{},
		&model.MemberModel{},
		&model.SettingsModel{},
	} {
		if err := tx.Unscoped().Where("1 = 1").Delete(m).Error; err != nil {
			return err
		}
	}
	return nil
}
