package models

import "time"

// Default event settings applied when a session is created or has no settings row
const (
	DefaultEventName        = "Hackathon"
	DefaultEventIcon        = "⚡"
	DefaultTVRefreshSeconds = 15
)

// EventSettings holds the per-session event configuration (one row per session)
type EventSettings struct {
	SessionKey       string    `json:"-" gorm:"primaryKey;size:5"`
	EventName        string    `json:"eventName" gorm:"size:120;not null"`
	EventIcon        string    `json:"eventIcon" gorm:"size:16;not null"`
	Tagline          string    `json:"tagline" gorm:"size:200;not null"`
	CountdownTarget  *string   `json:"countdownTarget" gorm:"size:64"`
	ScoringLocked    bool      `json:"scoringLocked" gorm:"not null"`
	ShowPartial      bool      `json:"showPartial" gorm:"not null"`
	TVRefreshSeconds int       `json:"tvRefreshSeconds" gorm:"not null"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// TableName returns the table name for EventSettings
func (EventSettings) TableName() string {
	return "event_settings"
}

// DefaultEventSettings returns the settings a fresh session starts with
func DefaultEventSettings(sessionKey string) EventSettings {
	return EventSettings{
		SessionKey:       sessionKey,
		EventName:        DefaultEventName,
		EventIcon:        DefaultEventIcon,
		ScoringLocked:    false,
		ShowPartial:      true,
		TVRefreshSeconds: DefaultTVRefreshSeconds,
	}
}
