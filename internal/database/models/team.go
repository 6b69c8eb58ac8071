package models

// Team represents a competing hackathon team within a session
type Team struct {
	BaseModel
	SessionKey    string        `json:"-" gorm:"size:5;not null;uniqueIndex:idx_teams_session_name"`
	TeamName      string        `json:"teamName" gorm:"size:60;not null;uniqueIndex:idx_teams_session_name"`
	ProjectName   string        `json:"projectName" gorm:"size:80;not null"`
	MembersText   string        `json:"membersText" gorm:"type:text;not null"`
	RepoURL       string        `json:"repoUrl" gorm:"size:500"`
	DemoURL       string        `json:"demoUrl" gorm:"size:500"`
	Description   string        `json:"description" gorm:"type:text"`
	ProjectStatus ProjectStatus `json:"projectStatus" gorm:"size:20;not null"`
	ScoringStatus ScoringStatus `json:"scoringStatus" gorm:"size:20;not null"`

	// Relationships
	Score *Score `json:"-" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
