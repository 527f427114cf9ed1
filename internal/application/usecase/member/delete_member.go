package member

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/village-banking/backend/internal/application/adapter"
	"github.com/village-banking/backend/internal/domain/entity"
	domainerror "github.com/village-banking/backend/internal/domain/error"
)

// DeleteMemberInput represents the input for member removal.
type DeleteMemberInput struct {
	MemberID uuid.UUID
}

// DeleteMemberOutput represents the output of member removal.
type DeleteMemberOutput struct {
	Deleted bool
}

// DeleteMemberUseCase handles member removal. Members referenced by loans or
// ledger entries are never hard-removed; they are marked as departed and
// soft-deleted so the audit trail keeps resolving.
type DeleteMemberUseCase struct {
	memberRepo adapter.MemberRepository
	txnRepo    adapter.TransactionRepository
	loanRepo   adapter.LoanRepository
	txManager  adapter.TxManager
}

// NewDeleteMemberUseCase creates a new DeleteMemberUseCase instance.
func NewDeleteMemberUseCase(
	memberRepo adapter.MemberRepository,
	txnRepo adapter.TransactionRepository,
	loanRepo adapter.LoanRepository,
	txManager adapter.TxManager,
) *DeleteMemberUseCase {
	return &DeleteMemberUseCase{
		memberRepo: memberRepo,
		txnRepo:    txnRepo,
		loanRepo:   loanRepo,
		txManager:  txManager,
	}
}

// Execute removes the member.
func (uc *DeleteMemberUseCase) Execute(ctx context.Context, input DeleteMemberInput) (*DeleteMemberOutput, error) {
	err := uc.txManager.WithinTx(ctx, func(ctx context.Context) error {
		member, err := uc.memberRepo.FindByID(ctx, input.MemberID)
		if err != nil {
			if errors.Is(err, domainerror.ErrMemberNotFound) {
				return domainerror.NewMemberError(
					domainerror.ErrCodeMemberNotFound,
					"member not found",
					domainerror.ErrMemberNotFound,
				)
			}
			return err
		}

		// Members with an unpaid loan cannot leave the books.
		outstanding, err := uc.loanRepo.OutstandingByMember(ctx, entity.LoanFamilyMain, member.ID)
		if err != nil {
			return fmt.Errorf("failed to check outstanding loans: %w", err)
		}
		socialOutstanding, err := uc.loanRepo.OutstandingByMember(ctx, entity.LoanFamilySocial, member.ID)
		if err != nil {
			return fmt.Errorf("failed to check outstanding social loans: %w", err)
		}
		if outstanding.Add(socialOutstanding).IsPositive() {
			return domainerror.NewMemberError(
				domainerror.ErrCodeMemberHasReferences,
				"member has unpaid loans",
				domainerror.ErrMemberHasReferences,
			)
		}

		member.Status = entity.MemberStatusLeft
		if err := uc.memberRepo.Update(ctx, member); err != nil {
			return fmt.Errorf("failed to mark member as departed: %w", err)
		}

		return uc.memberRepo.Delete(ctx, member.ID)
	})
	if err != nil {
		return nil, err
	}

	return &DeleteMemberOutput{Deleted: true}, nil
}
