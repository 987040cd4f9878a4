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

// ErrUnbalanced indicates that the debit and credit totals of a journal entry differ.
var ErrUnbalanced = errors.New("journal entry is not balanced")

// ErrInsufficientLines indicates that a journal entry has fewer than two lines.
var ErrInsufficientLines = errors.New("journal entry must have at least 2 lines")

// ErrInvalidLine indicates a line that is not a pure single-sided movement
// (both sides set, both sides zero, or a negative amount).
var ErrInvalidLine = errors.New("invalid journal entry line")

// ErrPeriodLocked indicates that the target fiscal period is locked against posting.
var ErrPeriodLocked = errors.New("fiscal period is locked")

// ErrAccountNotFound indicates a line referencing an account that does not
// exist or does not belong to the company.
var ErrAccountNotFound = errors.New("account not found")

// ErrCostCenterRequired indicates a line on an account flagged as requiring
// a cost center but carrying none.
var ErrCostCenterRequired = errors.New("account requires cost center")

// ErrPartnerRequired indicates a line on an account flagged as requiring a
// partner but carrying none.
var ErrPartnerRequired = errors.New("account requires partner")

// ErrInvalidStateTransition indicates an operation attempted from an entry
// status that does not permit it.
var ErrInvalidStateTransition = errors.New("invalid journal entry state transition")

// ErrAlreadyReversed indicates an attempt to reverse an entry that already
// has a reversal linked to it.
var ErrAlreadyReversed = errors.New("journal entry is already reversed")

// AppError wraps infrastructure failures with an HTTP-ish status code so
// handlers can distinguish caller input errors from storage problems.
// Storage errors must always be wrapped, never swallowed.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
