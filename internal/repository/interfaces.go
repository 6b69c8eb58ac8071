package repository

import (
	"context"

	"vibetracker-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// SessionRepositoryInterface defines the interface for session repository operations
type SessionRepositoryInterface interface {
	CreateWithDefaults(ctx context.Context, session *models.Session, settings *models.EventSettings, rubric []models.RubricCategory) error
	GetByKey(ctx context.Context, key string) (*models.Session, error)
	Exists(ctx context.Context, key string) (bool, error)
}

// SettingsRepositoryInterface defines the interface for event settings repository operations
type SettingsRepositoryInterface interface {
	GetBySession(ctx context.Context, sessionKey string) (*models.EventSettings, error)
	Upsert(ctx context.Context, settings *models.EventSettings) error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, sessionKey string, id uuid.UUID) (*models.Team, error)
	GetByName(ctx context.Context, sessionKey, name string) (*models.Team, error)
	ListBySession(ctx context.Context, sessionKey string) ([]models.Team, error)
	CountBySession(ctx context.Context, sessionKey string) (int64, error)
	Update(ctx context.Context, team *models.Team) error
	Delete(ctx context.Context, sessionKey string, id uuid.UUID) error
}

// ScoreRepositoryInterface defines the interface for score repository operations
type ScoreRepositoryInterface interface {
	GetByTeamID(ctx context.Context, sessionKey string, teamID uuid.UUID) (*models.Score, error)
	Create(ctx context.Context, score *models.Score) error
	Update(ctx context.Context, score *models.Score) error
}

// RubricRepositoryInterface defines the interface for rubric repository operations
type RubricRepositoryInterface interface {
	ListBySession(ctx context.Context, sessionKey string) ([]models.RubricCategory, error)
	UpdateTexts(ctx context.Context, sessionKey string, categories []models.RubricCategory) error
}

// AnnouncementRepositoryInterface defines the interface for announcement repository operations
type AnnouncementRepositoryInterface interface {
	Create(ctx context.Context, announcement *models.Announcement) error
	GetByID(ctx context.Context, sessionKey string, id uuid.UUID) (*models.Announcement, error)
	List(ctx context.Context, sessionKey string, published *bool) ([]models.Announcement, error)
	CountPinned(ctx context.Context, sessionKey string) (int64, error)
	Update(ctx context.Context, announcement *models.Announcement) error
	Delete(ctx context.Context, sessionKey string, id uuid.UUID) error
}
