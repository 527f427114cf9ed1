// Package error defines domain-specific errors for the village banking ledger.
package error

import "errors"

// Member domain errors.
var (
	// ErrMemberNotFound is returned when a member is not found in the register.
	ErrMemberNotFound = errors.New("member not found")

	// ErrMemberNotActive is returned when an operation requires an active member.
	ErrMemberNotActive = errors.New("member is not active")

	// ErrMemberHasReferences is returned when deleting a member that loans or
	// transactions still reference.
	ErrMemberHasReferences = errors.New("member is referenced by loans or transactions")

	// ErrInvalidMemberName is returned when the member name is missing.
	ErrInvalidMemberName = errors.New("member name is required")

	// ErrInvalidMemberStatus is returned when the member status is not recognized.
	ErrInvalidMemberStatus = errors.New("invalid member status")
)

// MemberErrorCode defines error codes for member errors.
// Format: MBR-XXYYYY where XX is the error category:
// 01 validation, 02 ineligibility, 03 not found, 04 consistency.
type MemberErrorCode string

const (
	ErrCodeInvalidMemberName    MemberErrorCode = "MBR-010001"
	ErrCodeInvalidMemberStatus  MemberErrorCode = "MBR-010002"
	ErrCodeMemberNotActive      MemberErrorCode = "MBR-020001"
	ErrCodeMemberHasReferences  MemberErrorCode = "MBR-020002"
	ErrCodeMemberNotFound       MemberErrorCode = "MBR-030001"
)

// MemberError represents a member error with code and message.
type MemberError struct {
	Code    MemberErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *MemberError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *MemberError) Unwrap() error {
	return e.Err
}

// NewMemberError creates a new MemberError with the given code and message.
func NewMemberError(code MemberErrorCode, message string, err error) *MemberError {
	return &MemberError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
