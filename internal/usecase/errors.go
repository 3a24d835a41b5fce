package usecase

import (
	"errors"
	"fmt"

	"insurance_backoffice/internal/domain/entities"
	"insurance_backoffice/internal/domain/validation"
)

var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("not found")
	ErrInvalidTransition = errors.New("invalid claim transition")
	ErrIntegrity         = errors.New("integrity violation")
	ErrInvalidID         = errors.New("invalid id")
	ErrUnknownKind       = errors.New("unknown entity kind")
)

// ValidationError carries every failing field of a rejected write.
type ValidationError struct {
	Fields validation.FieldErrors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %d field(s)", len(e.Fields))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NotFoundError names the missing record.
type NotFoundError struct {
	Kind entities.Kind
	ID   int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// InvalidTransitionError is a claim state-machine violation.
type InvalidTransitionError struct {
	ClaimID int64
	From    entities.ClaimStatus
	To      entities.ClaimStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("claim %d: transition %s -> %s not allowed", e.ClaimID, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error { return ErrInvalidTransition }

// IntegrityError is a write that would orphan a reference. It surfaces when
// the parent vanished between validation and the store's atomic check.
type IntegrityError struct {
	Field string
	Ref   int64
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("integrity violation: %s=%d does not resolve", e.Field, e.Ref)
}

func (e *IntegrityError) Unwrap() error { return ErrIntegrity }

func newValidationError(fe validation.FieldErrors) error {
	if fe.Empty() {
		return nil
	}
	return &ValidationError{Fields: fe}
}

func fieldError(field, code string) error {
	return &ValidationError{Fields: validation.FieldErrors{field: code}}
}
