package errors

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError carries every field-level violation found in a request.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", strings.Join(e.Messages, "; "))
}

// LockedError is returned when a write is attempted on a locked resource
type LockedError struct {
	Message string
}

func (e *LockedError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrSessionNotFound      = &NotFoundError{Entity: "session"}
	ErrTeamNotFound         = &NotFoundError{Entity: "team"}
	ErrAnnouncementNotFound = &NotFoundError{Entity: "announcement"}
)

// Business Logic Errors
var (
	ErrScoringLocked    = &LockedError{Message: "scoring is locked"}
	ErrNoSession        = errors.New("no active session")
	ErrSessionKeyExists = errors.New("could not allocate a unique session key")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsLocked checks if an error is a LockedError
func IsLocked(err error) bool {
	var lockedErr *LockedError
	return errors.As(err, &lockedErr)
}

// Messages returns the violation list of a ValidationError, or the error text
// as a single message for any other error.
func Messages(err error) []string {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Messages
	}
	return []string{err.Error()}
}

// NewValidationError creates a new ValidationError from one or more messages
func NewValidationError(messages ...string) error {
	return &ValidationError{Messages: messages}
}
