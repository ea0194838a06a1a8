package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the domain, the services and the
// adapters wraps one of these so the HTTP layer can pick a status with
// errors.Is.
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrValidation  = errors.New("validation failed")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")
)

// NotFoundError names the missing record. The HTTP layer turns Entity into
// the "Disaster not found" style message clients see.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return e.Entity + " not found"
	}
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NewNotFoundError reports a missing disaster, resource, report or location.
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ValidationError is a rejected input field. Value is kept for logs only and
// never echoed back to the caller.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "invalid input: " + e.Message
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError rejects field with a message safe to show the caller.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewValidationErrorWithValue is NewValidationError plus the offending value.
func NewValidationErrorWithValue(field, message string, value any) error {
	return &ValidationError{Field: field, Message: message, Value: value}
}

// RuleError is a refusal that is not about a single field: a role check, a
// duplicate record or an upstream that cannot be reached. Kind is one of the
// sentinels above.
type RuleError struct {
	Kind    error
	Subject string
	Reason  string
}

func (e *RuleError) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Subject, e.Kind)
	if e.Reason != "" {
		msg += " (" + e.Reason + ")"
	}
	return msg
}

func (e *RuleError) Unwrap() error { return e.Kind }

// NewConflictError reports that subject already exists in a conflicting state.
func NewConflictError(subject, reason string) error {
	return &RuleError{Kind: ErrConflict, Subject: subject, Reason: reason}
}

// NewForbiddenError reports that the caller's role does not allow operation.
func NewForbiddenError(operation, reason string) error {
	return &RuleError{Kind: ErrForbidden, Subject: operation, Reason: reason}
}

// NewUnavailableError reports a failed call to an upstream such as gemini,
// mapbox, bluesky or the database.
func NewUnavailableError(service, reason string) error {
	return &RuleError{Kind: ErrUnavailable, Subject: service, Reason: reason}
}

func IsNotFound(err error) bool    { return errors.Is(err, ErrNotFound) }
func IsConflict(err error) bool    { return errors.Is(err, ErrConflict) }
func IsValidation(err error) bool  { return errors.Is(err, ErrValidation) }
func IsForbidden(err error) bool   { return errors.Is(err, ErrForbidden) }
func IsUnavailable(err error) bool { return errors.Is(err, ErrUnavailable) }

// IsUserFacing reports whether err's message can be returned verbatim.
// Upstream and internal failures are answered with a fixed message instead.
func IsUserFacing(err error) bool {
	return IsValidation(err) || IsNotFound(err) || IsForbidden(err) || IsConflict(err)
}
