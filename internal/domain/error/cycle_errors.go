package error

import "errors"

// Cycle domain errors.
var (
	// ErrCycleNotFound is returned when a cycle is not found.
	ErrCycleNotFound = errors.New("cycle not found")

	// ErrActiveCycleExists is returned when creating a cycle while one is active.
	ErrActiveCycleExists = errors.New("an active cycle already exists")

	// ErrNoActiveCycle is returned when no cycle is currently active.
	ErrNoActiveCycle = errors.New("no active cycle")

	// ErrCycleAlreadyClosed is returned when closing a cycle twice.
	ErrCycleAlreadyClosed = errors.New("cycle is already closed")

	// ErrCycleNotClosed is returned when a share-out is requested before close.
	ErrCycleNotClosed = errors.New("cycle is not closed")

	// ErrInvalidCycleName is returned when the cycle name is missing.
	ErrInvalidCycleName = errors.New("cycle name is required")

	// ErrInvalidCycleDates is returned when the end date is not after the start date.
	ErrInvalidCycleDates = errors.New("cycle end date must be after start date")
)

// CycleErrorCode defines error codes for cycle errors.
// Format: CYC-XXYYYY where XX is the error category:
// 01 validation, 02 ineligibility, 03 not found, 04 consistency.
type CycleErrorCode string

const (
	ErrCodeInvalidCycleName   CycleErrorCode = "CYC-010001"
	ErrCodeInvalidCycleDates  CycleErrorCode = "CYC-010002"
	ErrCodeActiveCycleExists  CycleErrorCode = "CYC-020001"
	ErrCodeCycleAlreadyClosed CycleErrorCode = "CYC-020002"
	ErrCodeCycleNotClosed     CycleErrorCode = "CYC-020003"
	ErrCodeCycleNotFound      CycleErrorCode = "CYC-030001"
	ErrCodeNoActiveCycle      CycleErrorCode = "CYC-030002"
)

// CycleError represents a cycle error with code and message.
type CycleError struct {
	Code    CycleErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CycleError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CycleError) Unwrap() error {
	return e.Err
}

// NewCycleError creates a new CycleError with the given code and message.
func NewCycleError(code CycleErrorCode, message string, err error) *CycleError {
	return &CycleError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
