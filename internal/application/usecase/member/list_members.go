package member

import (
	"context"
	"fmt"

	"github.com/village-banking/backend/internal/application/adapter"
	"github.com/village-banking/backend/internal/domain/entity"
)

// ListMembersInput represents the input for listing members.
type ListMembersInput struct{}

// ListMembersOutput represents the output of listing members.
type ListMembersOutput struct {
	Members []*entity.Member
}

// ListMembersUseCase handles listing of the member register.
type ListMembersUseCase struct {
	memberRepo adapter.MemberRepository
}

// NewListMembersUseCase creates a new ListMembersUseCase instance.
func NewListMembersUseCase(memberRepo adapter.MemberRepository) *ListMembersUseCase {
	return &ListMembersUseCase{memberRepo: memberRepo}
}

// Execute retrieves all members.
func (uc *ListMembersUseCase) Execute(ctx context.Context, _ ListMembersInput) (*ListMembersOutput, error) {
	members, err := uc.memberRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	return &ListMembersOutput{Members: members}, nil
}
