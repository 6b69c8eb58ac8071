package repository

import (
	"context"

	"vibetracker-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ SettingsRepositoryInterface = (*SettingsRepository)(nil)

// SettingsRepository handles database operations for event settings
type SettingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// GetBySession retrieves the settings row for a session
func (r *SettingsRepository) GetBySession(ctx context.Context, sessionKey string) (*models.EventSettings, error) {
	var settings models.EventSettings
	err := r.db.WithContext(ctx).First(&settings, "session_key = ?", sessionKey).Error
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Upsert inserts the settings row or overwrites every column of the existing one
func (r *SettingsRepository) Upsert(ctx context.Context, settings *models.EventSettings) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_key"}},
			UpdateAll: true,
		}).
		Create(settings).Error
}
