package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"vibetracker-backend/internal/database"
	"vibetracker-backend/internal/database/models"
	apperrors "vibetracker-backend/internal/errors"
	"vibetracker-backend/internal/logger"
	"vibetracker-backend/internal/metrics"
	"vibetracker-backend/internal/repository"

	"gorm.io/gorm"
)

const (
	// SessionKeyLength is the number of hex characters in a session key
	SessionKeyLength = 5
	maxKeyAttempts   = 10
)

var sessionKeyPattern = regexp.MustCompile(`^[0-9a-f]{5}$`)

// SessionService creates and resolves event sessions
type SessionService struct {
	repo repository.SessionRepositoryInterface
}

// NewSessionService creates a new session service
func NewSessionService(repo repository.SessionRepositoryInterface) *SessionService {
	return &SessionService{repo: repo}
}

// SessionResponse represents a session returned to clients
type SessionResponse struct {
	Key       string    `json:"sessionKey" example:"a1b2c"`
	CreatedAt time.Time `json:"createdAt"`
}

// NormalizeSessionKey lowercases and trims a client-supplied key and checks its shape
func NormalizeSessionKey(raw string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if !sessionKeyPattern.MatchString(key) {
		return "", apperrors.NewValidationError("Session key must be a 5-character hex string")
	}
	return key, nil
}

// CreateSession allocates a fresh key and seeds default settings and rubric for it
func (s *SessionService) CreateSession(ctx context.Context) (*SessionResponse, error) {
	for attempt := 0; attempt < maxKeyAttempts; attempt++ {
		key, err := generateSessionKey()
		if err != nil {
			return nil, fmt.Errorf("failed to generate session key: %w", err)
		}

		exists, err := s.repo.Exists(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("failed to check session key: %w", err)
		}
		if exists {
			continue
		}

		session := &models.Session{Key: key}
		settings := models.DefaultEventSettings(key)
		rubric, err := database.DefaultRubric(key)
		if err != nil {
			return nil, err
		}
		if err := s.repo.CreateWithDefaults(ctx, session, &settings, rubric); err != nil {
			return nil, fmt.Errorf("failed to create session: %w", err)
		}

		metrics.SessionsCreatedCounter.Inc()
		logger.WithContext(logger.WithSession(ctx, key)).Info("Created event session")
		return &SessionResponse{Key: session.Key, CreatedAt: session.CreatedAt}, nil
	}
	return nil, apperrors.ErrSessionKeyExists
}

// GetSession resolves an existing session by key
func (s *SessionService) GetSession(ctx context.Context, rawKey string) (*SessionResponse, error) {
	key, err := NormalizeSessionKey(rawKey)
	if err != nil {
		return nil, err
	}

	session, err := s.repo.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &SessionResponse{Key: session.Key, CreatedAt: session.CreatedAt}, nil
}

func generateSessionKey() (string, error) {
	buf := make([]byte, (SessionKeyLength+1)/2)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf)[:SessionKeyLength], nil
}
