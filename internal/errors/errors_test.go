package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "team"}
		assert.Equal(t, "team not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "team"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "announcement"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrTeamNotFound, ErrTeamNotFound))
		assert.False(t, errors.Is(ErrTeamNotFound, ErrSessionNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrTeamNotFound))
		assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", ErrAnnouncementNotFound)))
		assert.False(t, IsNotFound(ErrScoringLocked))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message joins all violations", func(t *testing.T) {
		err := &ValidationError{Messages: []string{"c1 must be integer 1-10 or null", "c4 must be integer 1-10 or null"}}
		assert.Equal(t, "validation error: c1 must be integer 1-10 or null; c4 must be integer 1-10 or null", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("teamName is required")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrTeamNotFound))
	})

	t.Run("Messages returns the full list", func(t *testing.T) {
		err := fmt.Errorf("save: %w", NewValidationError("a", "b", "c"))
		assert.Equal(t, []string{"a", "b", "c"}, Messages(err))
	})

	t.Run("Messages wraps other errors", func(t *testing.T) {
		assert.Equal(t, []string{"team not found"}, Messages(ErrTeamNotFound))
	})
}

func TestLockedError(t *testing.T) {
	assert.Equal(t, "scoring is locked", ErrScoringLocked.Error())
	assert.True(t, IsLocked(ErrScoringLocked))
	assert.True(t, IsLocked(fmt.Errorf("save score: %w", ErrScoringLocked)))
	assert.False(t, IsLocked(NewValidationError("x")))
	assert.False(t, IsValidation(ErrScoringLocked))
}
