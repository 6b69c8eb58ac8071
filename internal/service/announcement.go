package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"vibetracker-backend/internal/database/models"
	apperrors "vibetracker-backend/internal/errors"
	"vibetracker-backend/internal/htmlsanitize"
	"vibetracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnnouncementService handles business logic for announcements
type AnnouncementService struct {
	repo      repository.AnnouncementRepositoryInterface
	validator *validator.Validate
	maxPinned int
}

// NewAnnouncementService creates a new announcement service allowing maxPinned pinned items per session
func NewAnnouncementService(repo repository.AnnouncementRepositoryInterface, validator *validator.Validate, maxPinned int) *AnnouncementService {
	return &AnnouncementService{repo: repo, validator: validator, maxPinned: maxPinned}
}

// CreateAnnouncementRequest represents the request to create an announcement
type CreateAnnouncementRequest struct {
	Title     string `json:"title" validate:"required,max=200"`
	Body      string `json:"body" validate:"required,max=10000"`
	Published bool   `json:"published"`
	Pinned    bool   `json:"pinned"`
}

// UpdateAnnouncementRequest is a partial update; nil fields are left unchanged
type UpdateAnnouncementRequest struct {
	Title     *string `json:"title" validate:"omitempty,max=200"`
	Body      *string `json:"body" validate:"omitempty,max=10000"`
	Published *bool   `json:"published"`
	Pinned    *bool   `json:"pinned"`
}

// AnnouncementResponse represents an announcement returned to clients
type AnnouncementResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Published bool      `json:"published"`
	Pinned    bool      `json:"pinned"`
	CreatedAt string    `json:"createdAt"`
	UpdatedAt string    `json:"updatedAt"`
}

// List returns announcements pinned first then newest first, optionally filtered by publication state
func (s *AnnouncementService) List(ctx context.Context, sessionKey string, published *bool) ([]AnnouncementResponse, error) {
	announcements, err := s.repo.List(ctx, sessionKey, published)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	responses := make([]AnnouncementResponse, len(announcements))
	for i := range announcements {
		responses[i] = *toAnnouncementResponse(&announcements[i])
	}
	return responses, nil
}

// Create creates an announcement
func (s *AnnouncementService) Create(ctx context.Context, sessionKey string, req *CreateAnnouncementRequest) (*AnnouncementResponse, error) {
	title := htmlsanitize.PlainText(req.Title)
	body := htmlsanitize.Sanitize(req.Body)

	// markup-only or blank text passes required and is empty once sanitized
	msgs := validationMessages(s.validator.Struct(req))
	if req.Title != "" && title == "" {
		msgs = append(msgs, "title is required")
	}
	if req.Body != "" && strings.TrimSpace(body) == "" {
		msgs = append(msgs, "body is required")
	}
	if len(msgs) > 0 {
		return nil, apperrors.NewValidationError(msgs...)
	}

	if req.Pinned {
		if err := s.checkPinLimit(ctx, sessionKey); err != nil {
			return nil, err
		}
	}

	announcement := &models.Announcement{
		SessionKey: sessionKey,
		Title:      title,
		Body:       body,
		Published:  req.Published,
		Pinned:     req.Pinned,
	}
	if err := s.repo.Create(ctx, announcement); err != nil {
		return nil, fmt.Errorf("failed to create announcement: %w", err)
	}
	return toAnnouncementResponse(announcement), nil
}

// Update applies a partial update. The pin limit only applies when an unpinned announcement becomes pinned.
func (s *AnnouncementService) Update(ctx context.Context, sessionKey string, id uuid.UUID, req *UpdateAnnouncementRequest) (*AnnouncementResponse, error) {
	announcement, err := s.get(ctx, sessionKey, id)
	if err != nil {
		return nil, err
	}

	msgs := validationMessages(s.validator.Struct(req))
	var title, body string
	if req.Title != nil {
		if title = htmlsanitize.PlainText(*req.Title); title == "" {
			msgs = append(msgs, "title cannot be empty")
		}
	}
	if req.Body != nil {
		if body = htmlsanitize.Sanitize(*req.Body); strings.TrimSpace(body) == "" {
			msgs = append(msgs, "body cannot be empty")
		}
	}
	if len(msgs) > 0 {
		return nil, apperrors.NewValidationError(msgs...)
	}

	if req.Pinned != nil && *req.Pinned && !announcement.Pinned {
		if err := s.checkPinLimit(ctx, sessionKey); err != nil {
			return nil, err
		}
	}

	if req.Title != nil {
		announcement.Title = title
	}
	if req.Body != nil {
		announcement.Body = body
	}
	if req.Published != nil {
		announcement.Published = *req.Published
	}
	if req.Pinned != nil {
		announcement.Pinned = *req.Pinned
	}

	if err := s.repo.Update(ctx, announcement); err != nil {
		return nil, fmt.Errorf("failed to update announcement: %w", err)
	}
	return toAnnouncementResponse(announcement), nil
}

// Delete removes an announcement from the session
func (s *AnnouncementService) Delete(ctx context.Context, sessionKey string, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, sessionKey, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAnnouncementNotFound
		}
		return fmt.Errorf("failed to delete announcement: %w", err)
	}
	return nil
}

func (s *AnnouncementService) get(ctx context.Context, sessionKey string, id uuid.UUID) (*models.Announcement, error) {
	announcement, err := s.repo.GetByID(ctx, sessionKey, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAnnouncementNotFound
		}
		return nil, fmt.Errorf("failed to get announcement: %w", err)
	}
	return announcement, nil
}

func (s *AnnouncementService) checkPinLimit(ctx context.Context, sessionKey string) error {
	pinned, err := s.repo.CountPinned(ctx, sessionKey)
	if err != nil {
		return fmt.Errorf("failed to count pinned announcements: %w", err)
	}
	if pinned >= int64(s.maxPinned) {
		return apperrors.NewValidationError(fmt.Sprintf("Maximum %d pinned announcements allowed. Unpin one first.", s.maxPinned))
	}
	return nil
}

func toAnnouncementResponse(a *models.Announcement) *AnnouncementResponse {
	return &AnnouncementResponse{
		ID:        a.ID,
		Title:     a.Title,
		Body:      a.Body,
		Published: a.Published,
		Pinned:    a.Pinned,
		CreatedAt: a.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: a.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
