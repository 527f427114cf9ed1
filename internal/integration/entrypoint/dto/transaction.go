package dto

import (
	"time"

	"github.com/village-banking/backend/internal/domain/entity"
)

// RecordTransactionRequest represents the request body for appending a ledger
// entry. Amount is a decimal string so figures survive the wire exactly.
type RecordTransactionRequest struct {
	MemberID    string  `json:"member_id" binding:"required,uuid"`
	Type        string  `json:"type" binding:"required"`
	Amount      string  `json:"amount" binding:"required"`
	Date        *string `json:"date,omitempty"`
	Description string  `json:"description,omitempty"`
}

// TransactionResponse represents a single ledger entry in API responses.
type TransactionResponse struct {
	ID          string    `json:"id"`
	MemberID    string    `json:"member_id"`
	Type        string    `json:"type"`
	Amount      string    `json:"amount"`
	Date        string    `json:"date"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// TransactionListResponse represents the response for listing ledger entries.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID.String(),
		MemberID:    t.MemberID.String(),
		Type:        string(t.Type),
		Amount:      t.Amount.String(),
		Date:        t.Date.Format(dateLayout),
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
	}
}

// ToTransactionListResponse converts a list of Transaction entities to a TransactionListResponse.
func ToTransactionListResponse(transactions []*entity.Transaction) TransactionListResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		responses[i] = ToTransactionResponse(t)
	}
	return TransactionListResponse{
		Transactions: responses,
	}
}
