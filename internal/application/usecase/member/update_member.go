package member

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/village-banking/backend/internal/application/adapter"
	"github.com/village-banking/backend/internal/domain/entity"
	domainerror "github.com/village-banking/backend/internal/domain/error"
)

// UpdateMemberInput represents the patch applied to a member. Nil fields are
// left unchanged.
type UpdateMemberInput struct {
	MemberID   uuid.UUID
	Name       *string
	NationalID *string
	Phone      *string
	Status     *entity.MemberStatus
}

// UpdateMemberOutput represents the output of a member update.
type UpdateMemberOutput struct {
	Member *entity.Member
}

// UpdateMemberUseCase handles member profile and status updates.
type UpdateMemberUseCase struct {
	memberRepo adapter.MemberRepository
	clock      adapter.Clock
}

// NewUpdateMemberUseCase creates a new UpdateMemberUseCase instance.
func NewUpdateMemberUseCase(memberRepo adapter.MemberRepository, clock adapter.Clock) *UpdateMemberUseCase {
	return &UpdateMemberUseCase{
		memberRepo: memberRepo,
		clock:      clock,
	}
}

// Execute applies the patch to the member.
func (uc *UpdateMemberUseCase) Execute(ctx context.Context, input UpdateMemberInput) (*UpdateMemberOutput, error) {
	member, err := uc.memberRepo.FindByID(ctx, input.MemberID)
	if err != nil {
		if errors.Is(err, domainerror.ErrMemberNotFound) {
			return nil, domainerror.NewMemberError(
				domainerror.ErrCodeMemberNotFound,
				"member not found",
				domainerror.ErrMemberNotFound,
			)
		}
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewMemberError(
				domainerror.ErrCodeInvalidMemberName,
				"member name is required",
				domainerror.ErrInvalidMemberName,
			)
		}
		member.Name = name
	}

	if input.NationalID != nil {
		member.NationalID = strings.TrimSpace(*input.NationalID)
	}

	if input.Phone != nil {
		member.Phone = strings.TrimSpace(*input.Phone)
	}

	if input.Status != nil {
		if !isValidMemberStatus(*input.Status) {
			return nil, domainerror.NewMemberError(
				domainerror.ErrCodeInvalidMemberStatus,
				"status must be 'active', 'suspended', or 'left'",
				domainerror.ErrInvalidMemberStatus,
			)
		}
		member.Status = *input.Status
	}

	member.UpdatedAt = uc.clock.Now()

	if err := uc.memberRepo.Update(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to update member: %w", err)
	}

	return &UpdateMemberOutput{Member: member}, nil
}

// isValidMemberStatus validates the member status.
func isValidMemberStatus(status entity.MemberStatus) bool {
	return status == entity.MemberStatusActive ||
		status == entity.MemberStatusSuspended ||
		status == entity.MemberStatusLeft
}
