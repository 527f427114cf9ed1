// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/village-banking/backend/internal/domain/entity"
)

// MemberRepository defines the interface for member persistence operations.
type MemberRepository interface {
	// Create registers a new member.
	Create(ctx context.Context, member *entity.Member) error

	// FindByID retrieves a member by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Member, error)

	// FindAll retrieves all members, newest first.
	FindAll(ctx context.Context) ([]*entity.Member, error)

	// Update persists changes to an existing member.
	Update(ctx context.Context, member *entity.Member) error

	// Delete soft-deletes a member.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the number of registered members.
	Count(ctx context.Context) (int, error)

	// CountActive returns the number of members with active status.
	CountActive(ctx context.Context) (int, error)

	// SumShares returns the total share count across all members.
	SumShares(ctx context.Context) (int, error)

	// SumSavings returns the total savings across members. When activeOnly is
	// set, suspended and departed members are excluded.
	SumSavings(ctx context.Context, activeOnly bool) (decimal.Decimal, error)

	// SumSocialContributions returns the total social contributions.
	SumSocialContributions(ctx context.Context) (decimal.Decimal, error)

	// SumBirthdayContributions returns the total birthday contributions.
	SumBirthdayContributions(ctx context.Context) (decimal.Decimal, error)
}
