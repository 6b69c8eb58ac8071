package testutils

import (
	"fmt"
	"time"

	"vibetracker-backend/internal/database/models"
	"vibetracker-backend/internal/scoring"

	"github.com/google/uuid"
)

// SessionFactory provides methods to create test Session data
type SessionFactory struct {
	seq int
}

// NewSessionFactory creates a new SessionFactory
func NewSessionFactory() *SessionFactory {
	return &SessionFactory{}
}

// Create creates a test Session with a unique key
func (f *SessionFactory) Create() *models.Session {
	f.seq++
	return &models.Session{
		Key:       fmt.Sprintf("%05x", f.seq),
		CreatedAt: time.Now(),
	}
}

// WithKey creates a test Session with the given key
func (f *SessionFactory) WithKey(key string) *models.Session {
	session := f.Create()
	session.Key = key
	return session
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create(sessionKey string) *models.Team {
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		SessionKey:    sessionKey,
		TeamName:      "Test Team",
		ProjectName:   "Test Project",
		MembersText:   "Alice\nBob",
		RepoURL:       "https://example.com/repo",
		Description:   "A test team for testing purposes",
		ProjectStatus: models.ProjectStatusPlanning,
		ScoringStatus: models.ScoringStatusInProgress,
	}
}

// WithName creates a test Team with a custom name
func (f *TeamFactory) WithName(sessionKey, name string) *models.Team {
	team := f.Create(sessionKey)
	team.TeamName = name
	team.ProjectName = name + " Project"
	return team
}

// ScoreFactory provides methods to create test Score data
type ScoreFactory struct{}

// NewScoreFactory creates a new ScoreFactory
func NewScoreFactory() *ScoreFactory {
	return &ScoreFactory{}
}

// WithValues creates a score for the team from ten values; zero means null
func (f *ScoreFactory) WithValues(team *models.Team, values [scoring.CriteriaCount]int) *models.Score {
	var ptrs [scoring.CriteriaCount]*int
	for i, v := range values {
		if v != 0 {
			v := v
			ptrs[i] = &v
		}
	}
	score := &models.Score{TeamID: team.ID, SessionKey: team.SessionKey}
	score.SetCriteria(scoring.CriteriaFromValues(ptrs))
	return score
}

// AnnouncementFactory provides methods to create test Announcement data
type AnnouncementFactory struct{}

// NewAnnouncementFactory creates a new AnnouncementFactory
func NewAnnouncementFactory() *AnnouncementFactory {
	return &AnnouncementFactory{}
}

// Create creates a published, unpinned test Announcement
func (f *AnnouncementFactory) Create(sessionKey string) *models.Announcement {
	return &models.Announcement{
		BaseModel: models.BaseModel{
			ID: uuid.New(),
		},
		SessionKey: sessionKey,
		Title:      "Lunch is served",
		Body:       "Pizza in the main hall",
		Published:  true,
	}
}

// Pinned creates a pinned test Announcement
func (f *AnnouncementFactory) Pinned(sessionKey string) *models.Announcement {
	a := f.Create(sessionKey)
	a.Pinned = true
	return a
}

// FactorySet provides access to all factories
type FactorySet struct {
	Session      *SessionFactory
	Team         *TeamFactory
	Score        *ScoreFactory
	Announcement *AnnouncementFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Session:      NewSessionFactory(),
		Team:         NewTeamFactory(),
		Score:        NewScoreFactory(),
		Announcement: NewAnnouncementFactory(),
	}
}
