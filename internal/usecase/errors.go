package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrValidation          = errors.New("validation failed")
	ErrDuplicateCode       = errors.New("code already in use")
	ErrAliasSpaceExhausted = errors.New("alias space exhausted")
	ErrLinkNotFound        = errors.New("link not found")
	ErrStoreUnavailable    = errors.New("store unavailable")
	ErrForbidden           = errors.New("link belongs to another owner")
)

// ValidationError описывает некорректное поле запроса.
// errors.Is(err, ErrValidation) выполняется для любой ValidationError.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func newValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
