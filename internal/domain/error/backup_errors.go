package error

import "errors"

// Backup domain errors.
var (
	// ErrInvalidSnapshot is returned when an import payload is structurally incomplete.
	ErrInvalidSnapshot = errors.New("snapshot is missing required collections")
)

// BackupErrorCode defines error codes for backup errors.
type BackupErrorCode string

const (
	ErrCodeInvalidSnapshot BackupErrorCode = "BKP-010001"
)

// BackupError represents a backup error with code and message.
type BackupError struct {
	Code    BackupErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BackupError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BackupError) Unwrap() error {
	return e.Err
}

// NewBackupError creates a new BackupError with the given code and message.
func NewBackupError(code BackupErrorCode, message string, err error) *BackupError {
	return &BackupError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
