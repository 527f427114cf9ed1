package error

import "errors"

// Settings domain errors.
var (
	// ErrInvalidSharePrice is returned when the share price is not positive.
	ErrInvalidSharePrice = errors.New("share price must be greater than zero")

	// ErrInvalidLoanMultiplier is returned when the loan multiplier is not positive.
	ErrInvalidLoanMultiplier = errors.New("loan multiplier must be greater than zero")

	// ErrInvalidLoanTermDays is returned when the loan term is not positive.
	ErrInvalidLoanTermDays = errors.New("loan term days must be greater than zero")
)

// SettingsErrorCode defines error codes for settings errors.
type SettingsErrorCode string

const (
	ErrCodeInvalidSharePrice     SettingsErrorCode = "SET-010001"
	ErrCodeInvalidLoanMultiplier SettingsErrorCode = "SET-010002"
	ErrCodeInvalidLoanTermDays   SettingsErrorCode = "SET-010003"
)

// SettingsError represents a settings error with code and message.
type SettingsError struct {
	Code    SettingsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SettingsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SettingsError) Unwrap() error {
	return e.Err
}

// NewSettingsError creates a new SettingsError with the given code and message.
func NewSettingsError(code SettingsErrorCode, message string, err error) *SettingsError {
	return &SettingsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
