package repository

import (
	"context"

	"vibetracker-backend/internal/database/models"

	"gorm.io/gorm"
)

var _ SessionRepositoryInterface = (*SessionRepository)(nil)

// SessionRepository handles database operations for sessions
type SessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// CreateWithDefaults inserts a session together with its settings and rubric in one transaction
func (r *SessionRepository) CreateWithDefaults(ctx context.Context, session *models.Session, settings *models.EventSettings, rubric []models.RubricCategory) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(session).Error; err != nil {
			return err
		}
		if settings != nil {
			if err := tx.Create(settings).Error; err != nil {
				return err
			}
		}
		if len(rubric) > 0 {
			if err := tx.Create(&rubric).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByKey retrieves a session by key
func (r *SessionRepository) GetByKey(ctx context.Context, key string) (*models.Session, error) {
	var session models.Session
	err := r.db.WithContext(ctx).First(&session, "key = ?", key).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Exists reports whether a session with the key exists
func (r *SessionRepository) Exists(ctx context.Context, key string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Session{}).Where("key = ?", key).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
