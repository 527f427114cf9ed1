package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/village-banking/backend/internal/application/adapter"
	"github.com/village-banking/backend/internal/domain/entity"
	domainerror "github.com/village-banking/backend/internal/domain/error"
	"github.com/village-banking/backend/internal/integration/persistence/model"
)

// memberRepository implements the adapter.MemberRepository interface.
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository instance.
func NewMemberRepository(db *gorm.DB) adapter.MemberRepository {
	return &memberRepository{
		db: db,
	}
}

// Create registers a new member in the database.
func (r *memberRepository) Create(ctx context.Context, member *entity.Member) error {
	memberModel := model.MemberFromEntity(member)
	result := dbFromContext(ctx, r.db).Create(memberModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a member by its ID.
func (r *memberRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Member, error) {
	var memberModel model.MemberModel
	result := dbFromContext(ctx, r.db).Where("id = ?", id).First(&memberModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrMemberNotFound
		}
		return nil, result.Error
	}
	return memberModel.ToEntity(), nil
}

// FindAll retrieves all members, newest first.
func (r *memberRepository) FindAll(ctx context.Context) ([]*entity.Member, error) {
	var memberModels []model.MemberModel
	result := dbFromContext(ctx, r.db).
		Order("created_at DESC").
		Find(&memberModels)
	if result.Error != nil {
		return nil, result.Error
	}

	members := make([]*entity.Member, len(memberModels))
	for i, mm := range memberModels {
		members[i] = mm.ToEntity()
	}
	return members, nil
}

// Update persists changes to an existing member.
func (r *memberRepository) Update(ctx context.Context, member *entity.Member) error {
	memberModel := model.MemberFromEntity(member)
	result := dbFromContext(ctx, r.db).Save(memberModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a member from the database (soft delete).
func (r *memberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := dbFromContext(ctx, r.db).Delete(&model.MemberModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Count returns the number of registered members.
func (r *memberRepository) Count(ctx context.Context) (int, error) {
	var count int64
	result := dbFromContext(ctx, r.db).
		Model(&model.MemberModel{}).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return int(count), nil
}

// CountActive returns the number of members with active status.
func (r *memberRepository) CountActive(ctx context.Context) (int, error) {
	var count int64
	result := dbFromContext(ctx, r.db).
		Model(&model.MemberModel{}).
		Where("status = ?", string(entity.MemberStatusActive)).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return int(count), nil
}

// SumShares returns the total share count across all members.
func (r *memberRepository) SumShares(ctx context.Context) (int, error) {
	var total int64
	result := dbFromContext(ctx, r.db).
		Model(&model.MemberModel{}).
		Select("COALESCE(SUM(total_shares), 0)").
		Scan(&total)
	if result.Error != nil {
		return 0, result.Error
	}
	return int(total), nil
}

// SumSavings returns the total savings, optionally restricted to active members.
func (r *memberRepository) SumSavings(ctx context.Context, activeOnly bool) (decimal.Decimal, error) {
	query := dbFromContext(ctx, r.db).
		Model(&model.MemberModel{}).
		Select("COALESCE(SUM(total_savings), 0)")
	if activeOnly {
		query = query.Where("status = ?", string(entity.MemberStatusActive))
	}

	var total decimal.Decimal
	if err := query.Scan(&total).Error; err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// SumSocialContributions returns the total social contributions across all members.
func (r *memberRepository) SumSocialContributions(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	result := dbFromContext(ctx, r.db).
		Model(&model.MemberModel{}).
		Select("COALESCE(SUM(social_contributions), 0)").
		Scan(&total)
	if result.Error != nil {
		return decimal.Zero, result.Error
	}
	return total, nil
}

// SumBirthdayContributions returns the total birthday contributions across all members.
func (r *memberRepository) SumBirthdayContributions(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	result := dbFromContext(ctx, r.db).
		Model(&model.MemberModel{}).
		Select("COALESCE(SUM(birthday_contributions), 0)").
		Scan(&total)
	if result.Error != nil {
		return decimal.Zero, result.Error
	}
	return total, nil
}
