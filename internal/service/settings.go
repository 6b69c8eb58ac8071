package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vibetracker-backend/internal/database/models"
	apperrors "vibetracker-backend/internal/errors"
	"vibetracker-backend/internal/htmlsanitize"
	"vibetracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// SettingsService handles business logic for per-session event settings
type SettingsService struct {
	repo      repository.SettingsRepositoryInterface
	validator *validator.Validate
}

// NewSettingsService creates a new settings service
func NewSettingsService(repo repository.SettingsRepositoryInterface, validator *validator.Validate) *SettingsService {
	return &SettingsService{repo: repo, validator: validator}
}

// UpdateSettingsRequest is a partial update; nil fields are left unchanged.
// An empty countdownTarget clears the countdown.
type UpdateSettingsRequest struct {
	EventName        *string `json:"eventName" validate:"omitempty,min=1,max=120"`
	EventIcon        *string `json:"eventIcon" validate:"omitempty,max=16"`
	Tagline          *string `json:"tagline" validate:"omitempty,max=200"`
	CountdownTarget  *string `json:"countdownTarget" validate:"omitempty,max=64"`
	ScoringLocked    *bool   `json:"scoringLocked"`
	ShowPartial      *bool   `json:"showPartial"`
	TVRefreshSeconds *int    `json:"tvRefreshSeconds" validate:"omitempty,min=5,max=120"`
}

// SettingsResponse represents the event settings of a session
type SettingsResponse struct {
	EventName        string     `json:"eventName"`
	EventIcon        string     `json:"eventIcon"`
	Tagline          string     `json:"tagline"`
	CountdownTarget  *string    `json:"countdownTarget"`
	ScoringLocked    bool       `json:"scoringLocked"`
	ShowPartial      bool       `json:"showPartial"`
	TVRefreshSeconds int        `json:"tvRefreshSeconds"`
	UpdatedAt        *time.Time `json:"updatedAt"`
}

// Get returns the settings of a session, falling back to defaults when none are stored
func (s *SettingsService) Get(ctx context.Context, sessionKey string) (*SettingsResponse, error) {
	settings, err := s.load(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	return toSettingsResponse(settings), nil
}

// Update applies a partial update after validating every supplied field
func (s *SettingsService) Update(ctx context.Context, sessionKey string, req *UpdateSettingsRequest) (*SettingsResponse, error) {
	if msgs := s.validate(req); len(msgs) > 0 {
		return nil, apperrors.NewValidationError(msgs...)
	}

	settings, err := s.load(ctx, sessionKey)
	if err != nil {
		return nil, err
	}

	if req.EventName != nil {
		settings.EventName = htmlsanitize.PlainText(*req.EventName)
	}
	if req.EventIcon != nil {
		settings.EventIcon = strings.TrimSpace(*req.EventIcon)
	}
	if req.Tagline != nil {
		settings.Tagline = htmlsanitize.PlainText(*req.Tagline)
	}
	if req.CountdownTarget != nil {
		target := strings.TrimSpace(*req.CountdownTarget)
		if target == "" {
			settings.CountdownTarget = nil
		} else {
			settings.CountdownTarget = &target
		}
	}
	if req.ScoringLocked != nil {
		settings.ScoringLocked = *req.ScoringLocked
	}
	if req.ShowPartial != nil {
		settings.ShowPartial = *req.ShowPartial
	}
	if req.TVRefreshSeconds != nil {
		settings.TVRefreshSeconds = *req.TVRefreshSeconds
	}

	if err := s.repo.Upsert(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}
	return toSettingsResponse(settings), nil
}

func (s *SettingsService) load(ctx context.Context, sessionKey string) (*models.EventSettings, error) {
	settings, err := s.repo.GetBySession(ctx, sessionKey)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			defaults := models.DefaultEventSettings(sessionKey)
			return &defaults, nil
		}
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}

// validate runs the field tags. A name made only of blanks passes min=1 and is caught here.
func (s *SettingsService) validate(req *UpdateSettingsRequest) []string {
	msgs := validationMessages(s.validator.Struct(req))
	if req.EventName != nil && *req.EventName != "" && strings.TrimSpace(*req.EventName) == "" {
		msgs = append(msgs, "eventName is required")
	}
	return msgs
}

func toSettingsResponse(settings *models.EventSettings) *SettingsResponse {
	resp := &SettingsResponse{
		EventName:        settings.EventName,
		EventIcon:        settings.EventIcon,
		Tagline:          settings.Tagline,
		CountdownTarget:  settings.CountdownTarget,
		ScoringLocked:    settings.ScoringLocked,
		ShowPartial:      settings.ShowPartial,
		TVRefreshSeconds: settings.TVRefreshSeconds,
	}
	if resp.EventIcon == "" {
		resp.EventIcon = models.DefaultEventIcon
	}
	if !settings.UpdatedAt.IsZero() {
		updated := settings.UpdatedAt
		resp.UpdatedAt = &updated
	}
	return resp
}
