package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidAmount indicates a non-positive monetary amount. Rejected before
// any write happens.
var ErrInvalidAmount = fmt.Errorf("%w: amount must be positive", ErrValidation)

// ErrOrphanLedgerLink indicates a broken source link: either a synced record
// with no surviving ledger entry, or a linked entry whose source record is
// gone. Source-side edits tolerate it (log and carry on); an entry-side edit
// that cannot write through its link fails with it.
var ErrOrphanLedgerLink = errors.New("ledger source link is orphaned")

// AppError wraps an underlying failure with an HTTP-ish status code and a
// message suitable for logs. Persistence failures are surfaced this way.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is/As.
func (e *AppError) Unwrap() error { return e.Err }
