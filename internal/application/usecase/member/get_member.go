package member

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/village-banking/backend/internal/application/adapter"
	"github.com/village-banking/backend/internal/domain/entity"
	domainerror "github.com/village-banking/backend/internal/domain/error"
)

// GetMemberInput represents the input for retrieving a member.
type GetMemberInput struct {
	MemberID uuid.UUID
}

// GetMemberOutput represents the output of retrieving a member.
type GetMemberOutput struct {
	Member *entity.Member
}

// GetMemberUseCase handles retrieval of a single member.
type GetMemberUseCase struct {
	memberRepo adapter.MemberRepository
}

// NewGetMemberUseCase creates a new GetMemberUseCase instance.
func NewGetMemberUseCase(memberRepo adapter.MemberRepository) *GetMemberUseCase {
	return &GetMemberUseCase{memberRepo: memberRepo}
}

// Execute retrieves the member.
func (uc *GetMemberUseCase) Execute(ctx context.Context, input GetMemberInput) (*GetMemberOutput, error) {
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

	return &GetMemberOutput{Member: member}, nil
}
