package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/village-banking/backend/internal/domain/entity"
)

// CycleRepository defines the interface for cycle persistence operations.
type CycleRepository interface {
	// Create persists a new cycle.
	Create(ctx context.Context, cycle *entity.Cycle) error

	// FindByID retrieves a cycle by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Cycle, error)

	// FindAll retrieves all cycles, newest first.
	FindAll(ctx context.Context) ([]*entity.Cycle, error)

	// FindActive retrieves the currently active cycle, or nil when none exists.
	FindActive(ctx context.Context) (*entity.Cycle, error)

	// CloseGuarded persists the closed cycle only if its stored status is still
	// active, so a cycle can never be closed twice.
	CloseGuarded(ctx context.Context, cycle *entity.Cycle) error
}
