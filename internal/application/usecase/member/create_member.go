// Package member contains member-related use cases.
package member

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/village-banking/backend/internal/application/adapter"
	"github.com/village-banking/backend/internal/domain/entity"
	domainerror "github.com/village-banking/backend/internal/domain/error"
)

// CreateMemberInput represents the input for member registration.
type CreateMemberInput struct {
	Name       string
	NationalID string
	Phone      string
	JoinDate   *time.Time // Optional, defaults to now
}

// CreateMemberOutput represents the output of member registration.
type CreateMemberOutput struct {
	Member *entity.Member
}

// CreateMemberUseCase handles member registration logic.
type CreateMemberUseCase struct {
	memberRepo adapter.MemberRepository
	clock      adapter.Clock
}

// NewCreateMemberUseCase creates a new CreateMemberUseCase instance.
func NewCreateMemberUseCase(memberRepo adapter.MemberRepository, clock adapter.Clock) *CreateMemberUseCase {
	return &CreateMemberUseCase{
		memberRepo: memberRepo,
		clock:      clock,
	}
}

// Execute performs the member registration.
func (uc *CreateMemberUseCase) Execute(ctx context.Context, input CreateMemberInput) (*CreateMemberOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewMemberError(
			domainerror.ErrCodeInvalidMemberName,
			"member name is required",
			domainerror.ErrInvalidMemberName,
		)
	}

	joinDate := uc.clock.Now()
	if input.JoinDate != nil {
		joinDate = *input.JoinDate
	}

	member := entity.NewMember(name, strings.TrimSpace(input.NationalID), strings.TrimSpace(input.Phone), joinDate)

	if err := uc.memberRepo.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	return &CreateMemberOutput{Member: member}, nil
}
