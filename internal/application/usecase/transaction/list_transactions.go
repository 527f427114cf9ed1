package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/village-banking/backend/internal/application/adapter"
	"github.com/village-banking/backend/internal/domain/entity"
)

// ListTransactionsInput represents the input for listing ledger entries.
type ListTransactionsInput struct {
	MemberID *uuid.UUID // Optional member filter
}

// ListTransactionsOutput represents the output of listing ledger entries.
type ListTransactionsOutput struct {
	Transactions []*entity.Transaction
}

// ListTransactionsUseCase handles listing of the ledger.
type ListTransactionsUseCase struct {
	txnRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(txnRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{txnRepo: txnRepo}
}

// Execute retrieves ledger entries, optionally filtered by member.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	var (
		txns []*entity.Transaction
		err  error
	)

	if input.MemberID != nil {
		txns, err = uc.txnRepo.FindByMember(ctx, *input.MemberID)
	} else {
		txns, err = uc.txnRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &ListTransactionsOutput{Transactions: txns}, nil
}
