package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a requested entity does not exist or is
	// not owned by the caller. The two cases are deliberately
	// indistinguishable.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail is returned when an email is already taken,
	// including when the conflict is only caught by the store's uniqueness
	// constraint under a concurrent write.
	ErrDuplicateEmail = errors.New("email already in use")

	// ErrDuplicateExternalID is returned when an external identity is
	// already linked to another account.
	ErrDuplicateExternalID = errors.New("external identity already linked")

	// ErrInvalidCredentials covers every local login failure: unknown
	// email, external-only account, wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidAssertion is returned when an external identity assertion
	// fails verification.
	ErrInvalidAssertion = errors.New("invalid identity assertion")

	// ErrNoAuthMeans is returned when stored credentials carry neither a
	// password hash nor an external identity.
	ErrNoAuthMeans = errors.New("account has no authentication means")
)

// ValidationError describes malformed or missing input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
