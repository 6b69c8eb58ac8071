package service

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// SessionServiceInterface defines the interface for session service
type SessionServiceInterface interface {
	CreateSession(ctx context.Context) (*SessionResponse, error)
	GetSession(ctx context.Context, rawKey string) (*SessionResponse, error)
}

// SettingsServiceInterface defines the interface for settings service
type SettingsServiceInterface interface {
	Get(ctx context.Context, sessionKey string) (*SettingsResponse, error)
	Update(ctx context.Context, sessionKey string, req *UpdateSettingsRequest) (*SettingsResponse, error)
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	List(ctx context.Context, sessionKey string) ([]TeamResponse, error)
	GetByID(ctx context.Context, sessionKey string, id uuid.UUID) (*TeamResponse, error)
	Create(ctx context.Context, sessionKey string, req *TeamRequest) (*TeamResponse, error)
	Update(ctx context.Context, sessionKey string, id uuid.UUID, req *TeamRequest) (*TeamResponse, error)
	UpdateStatus(ctx context.Context, sessionKey string, id uuid.UUID, req *TeamStatusRequest) (*TeamResponse, error)
	Delete(ctx context.Context, sessionKey string, id uuid.UUID) error
}

// RubricServiceInterface defines the interface for rubric service
type RubricServiceInterface interface {
	List(ctx context.Context, sessionKey string) ([]RubricCategoryResponse, error)
	Update(ctx context.Context, sessionKey string, req *UpdateRubricRequest) ([]RubricCategoryResponse, error)
}

// AnnouncementServiceInterface defines the interface for announcement service
type AnnouncementServiceInterface interface {
	List(ctx context.Context, sessionKey string, published *bool) ([]AnnouncementResponse, error)
	Create(ctx context.Context, sessionKey string, req *CreateAnnouncementRequest) (*AnnouncementResponse, error)
	Update(ctx context.Context, sessionKey string, id uuid.UUID, req *UpdateAnnouncementRequest) (*AnnouncementResponse, error)
	Delete(ctx context.Context, sessionKey string, id uuid.UUID) error
}

// ScoreBoardServiceInterface defines the interface for scoreboard service
type ScoreBoardServiceInterface interface {
	GetBoard(ctx context.Context, sessionKey string) (*BoardResponse, error)
	GetTeamScore(ctx context.Context, sessionKey string, teamID uuid.UUID) (*TeamScoreResponse, error)
	SaveScore(ctx context.Context, sessionKey string, teamID uuid.UUID, req ScoreRequest) (*TeamScoreResponse, error)
}

var (
	_ SessionServiceInterface      = (*SessionService)(nil)
	_ SettingsServiceInterface     = (*SettingsService)(nil)
	_ TeamServiceInterface         = (*TeamService)(nil)
	_ RubricServiceInterface       = (*RubricService)(nil)
	_ AnnouncementServiceInterface = (*AnnouncementService)(nil)
	_ ScoreBoardServiceInterface   = (*ScoreBoardService)(nil)
)
