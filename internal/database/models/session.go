package models

import "time"

// Session is an isolated event workspace identified by a short shareable key
type Session struct {
	Key       string    `json:"key" gorm:"primaryKey;size:5"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the table name for Session
func (Session) TableName() string {
	return "sessions"
}
