package utils

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Services wrap the most specific applicable kind;
// handlers translate with errors.Is into HTTP statuses. None of these are
// retried inside the core.
var (
	// ErrValidation: malformed or missing input, caller-fixable.
	ErrValidation = errors.New("validation failed")
	// ErrConflict: a precondition on shared state failed; safe to retry
	// with fresh state.
	ErrConflict = errors.New("conflict")
	// ErrNotFound: referenced event or reservation absent.
	ErrNotFound = errors.New("not found")
	// ErrInternal: store unavailable or unexpected failure.
	ErrInternal = errors.New("internal error")
)

func ValidationErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}

func ConflictErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrConflict}, args...)...)
}

func NotFoundErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrNotFound}, args...)...)
}

func InternalErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInternal}, args...)...)
}
