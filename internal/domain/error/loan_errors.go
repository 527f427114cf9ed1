package error

import "errors"

// Loan domain errors, shared by main and social loans.
var (
	// ErrLoanNotFound is returned when a loan is not found.
	ErrLoanNotFound = errors.New("loan not found")

	// ErrInvalidLoanAmount is returned when the requested principal is not positive.
	ErrInvalidLoanAmount = errors.New("loan amount must be greater than zero")

	// ErrInvalidPaymentAmount is returned when a repayment amount is not positive.
	ErrInvalidPaymentAmount = errors.New("payment amount must be greater than zero")

	// ErrInvalidPenaltyAmount is returned when a penalty amount is not positive.
	ErrInvalidPenaltyAmount = errors.New("penalty amount must be greater than zero")

	// ErrInvalidLoanTerm is returned when the loan term is not positive.
	ErrInvalidLoanTerm = errors.New("loan term must be greater than zero")

	// ErrInvalidInterestKind is returned when the interest kind is not recognized.
	ErrInvalidInterestKind = errors.New("invalid interest kind")

	// ErrLoanNotPending is returned when approving a loan that is not pending.
	ErrLoanNotPending = errors.New("loan is not pending approval")

	// ErrLoanNotActive is returned when an operation requires an active loan.
	ErrLoanNotActive = errors.New("loan is not active")

	// ErrLoanNotOverdue is returned when rolling over a loan before its due date.
	ErrLoanNotOverdue = errors.New("loan is not overdue")

	// ErrLoanNotEligible is returned when a loan request fails the eligibility check.
	ErrLoanNotEligible = errors.New("loan request is not eligible")

	// ErrInsufficientPot is returned when the funding pot cannot cover the principal.
	ErrInsufficientPot = errors.New("insufficient funds in the lending pot")

	// ErrLoanStateChanged is returned when a status transition loses a
	// compare-and-swap race with a concurrent operation.
	ErrLoanStateChanged = errors.New("loan state changed concurrently")
)

// LoanErrorCode defines error codes for loan errors.
// Format: LN-XXYYYY where XX is the error category:
// 01 validation, 02 ineligibility, 03 not found, 04 consistency.
type LoanErrorCode string

const (
	ErrCodeInvalidLoanAmount    LoanErrorCode = "LN-010001"
	ErrCodeInvalidPaymentAmount LoanErrorCode = "LN-010002"
	ErrCodeInvalidPenaltyAmount LoanErrorCode = "LN-010003"
	ErrCodeInvalidLoanTerm      LoanErrorCode = "LN-010004"
	ErrCodeInvalidInterestKind  LoanErrorCode = "LN-010005"
	ErrCodeLoanNotPending       LoanErrorCode = "LN-020001"
	ErrCodeLoanNotActive        LoanErrorCode = "LN-020002"
	ErrCodeLoanNotOverdue       LoanErrorCode = "LN-020003"
	ErrCodeLoanNotEligible      LoanErrorCode = "LN-020004"
	ErrCodeInsufficientPot      LoanErrorCode = "LN-020005"
	ErrCodeLoanNotFound         LoanErrorCode = "LN-030001"
	ErrCodeLoanStateChanged     LoanErrorCode = "LN-040001"
)

// LoanError represents a loan error with code and message.
type LoanError struct {
	Code    LoanErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LoanError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LoanError) Unwrap() error {
	return e.Err
}

// NewLoanError creates a new LoanError with the given code and message.
func NewLoanError(code LoanErrorCode, message string, err error) *LoanError {
	return &LoanError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
