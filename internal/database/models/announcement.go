package models

// Announcement is a message shown to event participants
type Announcement struct {
	BaseModel
	SessionKey string `json:"-" gorm:"size:5;not null;index"`
	Title      string `json:"title" gorm:"size:200;not null"`
	Body       string `json:"body" gorm:"type:text;not null"`
	Published  bool   `json:"published" gorm:"not null"`
	Pinned     bool   `json:"pinned" gorm:"not null"`
}

// TableName returns the table name for Announcement
func (Announcement) TableName() string {
	return "announcements"
}
