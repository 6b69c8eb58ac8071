package models

import "vibetracker-backend/internal/scoring"

// RubricCategory names and describes one scoring criterion for a session.
// Its group is fixed by the index: 1..5 Business, 6..10 Technical.
type RubricCategory struct {
	SessionKey    string        `json:"-" gorm:"primaryKey;size:5"`
	CategoryIndex int           `json:"categoryIndex" gorm:"primaryKey;autoIncrement:false"`
	GroupName     scoring.Group `json:"groupName" gorm:"size:20;not null"`
	Name          string        `json:"name" gorm:"size:120;not null"`
	Guidance      string        `json:"guidance" gorm:"type:text"`
}

// TableName returns the table name for RubricCategory
func (RubricCategory) TableName() string {
	return "rubric_categories"
}
