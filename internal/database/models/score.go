package models

import (
	"time"

	"github.com/google/uuid"

	"vibetracker-backend/internal/scoring"
)

// Score holds the ten criterion values for one team (at most one row per team)
type Score struct {
	TeamID     uuid.UUID `json:"teamId" gorm:"type:uuid;primaryKey"`
	SessionKey string    `json:"-" gorm:"size:5;not null;index"`
	C1         *int      `json:"c1"`
	C2         *int      `json:"c2"`
	C3         *int      `json:"c3"`
	C4         *int      `json:"c4"`
	C5         *int      `json:"c5"`
	C6         *int      `json:"c6"`
	C7         *int      `json:"c7"`
	C8         *int      `json:"c8"`
	C9         *int      `json:"c9"`
	C10        *int      `json:"c10"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// TableName returns the table name for Score
func (Score) TableName() string {
	return "scores"
}

// Criteria returns the stored values as a scoring record. A nil Score yields all-null criteria.
func (s *Score) Criteria() scoring.Criteria {
	if s == nil {
		return scoring.Criteria{}
	}
	return scoring.Criteria{
		C1: s.C1, C2: s.C2, C3: s.C3, C4: s.C4, C5: s.C5,
		C6: s.C6, C7: s.C7, C8: s.C8, C9: s.C9, C10: s.C10,
	}
}

// SetCriteria overwrites all ten stored values
func (s *Score) SetCriteria(c scoring.Criteria) {
	s.C1, s.C2, s.C3, s.C4, s.C5 = c.C1, c.C2, c.C3, c.C4, c.C5
	s.C6, s.C7, s.C8, s.C9, s.C10 = c.C6, c.C7, c.C8, c.C9, c.C10
}
