package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vibetracker-backend/internal/scoring"
)

func intPtr(v int) *int { return &v }

func TestScoreCriteria(t *testing.T) {
	t.Run("nil score has no values", func(t *testing.T) {
		var s *Score
		assert.Equal(t, scoring.Criteria{}, s.Criteria())
	})

	t.Run("set and read back", func(t *testing.T) {
		c := scoring.Criteria{C1: intPtr(3), C6: intPtr(9), C10: intPtr(1)}
		s := &Score{}
		s.SetCriteria(c)
		assert.Equal(t, c, s.Criteria())
		assert.Nil(t, s.C2)
	})
}

func TestEnums(t *testing.T) {
	assert.True(t, ProjectStatusDeployed.IsValid())
	assert.False(t, ProjectStatus("Shipping").IsValid())
	assert.True(t, ScoringStatusInProgress.IsValid())
	assert.False(t, ScoringStatus("in progress").IsValid())
}

func TestDefaultEventSettings(t *testing.T) {
	s := DefaultEventSettings("ab12c")
	assert.Equal(t, "ab12c", s.SessionKey)
	assert.Equal(t, "Hackathon", s.EventName)
	assert.Equal(t, "⚡", s.EventIcon)
	assert.Equal(t, 15, s.TVRefreshSeconds)
	assert.False(t, s.ScoringLocked)
	assert.True(t, s.ShowPartial)
	assert.Nil(t, s.CountdownTarget)
}
