package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType classifies an entry in the group ledger.
type TransactionType string

const (
	TransactionTypeSharePurchase          TransactionType = "share_purchase"
	TransactionTypeSocialContribution     TransactionType = "social_contribution"
	TransactionTypeBirthdayContribution   TransactionType = "birthday_contribution"
	TransactionTypeLoanDisbursement       TransactionType = "loan_disbursement"
	TransactionTypeLoanRepayment          TransactionType = "loan_repayment"
	TransactionTypeFine                   TransactionType = "fine"
	TransactionTypeDividend               TransactionType = "dividend"
	TransactionTypeWithdrawal             TransactionType = "withdrawal"
	TransactionTypeWelfareUsage           TransactionType = "welfare_usage"
	TransactionTypeSocialLoanDisbursement TransactionType = "social_loan_disbursement"
	TransactionTypeSocialLoanRepayment    TransactionType = "social_loan_repayment"
)

// ValidTransactionType reports whether t is one of the known ledger entry types.
func ValidTransactionType(t TransactionType) bool {
	switch t {
	case TransactionTypeSharePurchase,
		TransactionTypeSocialContribution,
		TransactionTypeBirthdayContribution,
		TransactionTypeLoanDisbursement,
		TransactionTypeLoanRepayment,
		TransactionTypeFine,
		TransactionTypeDividend,
		TransactionTypeWithdrawal,
		TransactionTypeWelfareUsage,
		TransactionTypeSocialLoanDisbursement,
		TransactionTypeSocialLoanRepayment:
		return true
	}
	return false
}

// Transaction is an immutable, append-only ledger entry. It is the sole audit
// trail for every mutation of member and loan state.
type Transaction struct {
	ID          uuid.UUID
	MemberID    uuid.UUID
	Type        TransactionType
	Amount      decimal.Decimal // Always positive; the Type carries direction
	Date        time.Time
	Description string
	CreatedAt   time.Time
}

// NewTransaction creates a new ledger entry.
func NewTransaction(
	memberID uuid.UUID,
	txType TransactionType,
	amount decimal.Decimal,
	date time.Time,
	description string,
) *Transaction {
	return &Transaction{
		ID:          uuid.New(),
		MemberID:    memberID,
		Type:        txType,
		Amount:      amount,
		Date:        date,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
}
