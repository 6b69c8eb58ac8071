package repository

import (
	"context"

	"vibetracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var _ AnnouncementRepositoryInterface = (*AnnouncementRepository)(nil)

// AnnouncementRepository handles database operations for announcements
type AnnouncementRepository struct {
	db *gorm.DB
}

// NewAnnouncementRepository creates a new announcement repository
func NewAnnouncementRepository(db *gorm.DB) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

// Create creates a new announcement
func (r *AnnouncementRepository) Create(ctx context.Context, announcement *models.Announcement) error {
	return r.db.WithContext(ctx).Create(announcement).Error
}

// GetByID retrieves an announcement by ID within a session
func (r *AnnouncementRepository) GetByID(ctx context.Context, sessionKey string, id uuid.UUID) (*models.Announcement, error) {
	var announcement models.Announcement
	err := r.db.WithContext(ctx).First(&announcement, "session_key = ? AND id = ?", sessionKey, id).Error
	if err != nil {
		return nil, err
	}
	return &announcement, nil
}

// List retrieves the announcements of a session, pinned first then newest first.
// A non-nil published narrows the result to that publication state.
func (r *AnnouncementRepository) List(ctx context.Context, sessionKey string, published *bool) ([]models.Announcement, error) {
	var announcements []models.Announcement
	query := r.db.WithContext(ctx).Where("session_key = ?", sessionKey)
	if published != nil {
		query = query.Where("published = ?", *published)
	}
	err := query.Order("pinned DESC").Order("created_at DESC").Find(&announcements).Error
	if err != nil {
		return nil, err
	}
	return announcements, nil
}

// CountPinned counts pinned announcements in a session
func (r *AnnouncementRepository) CountPinned(ctx context.Context, sessionKey string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.Announcement{}).
		Where("session_key = ? AND pinned = ?", sessionKey, true).
		Count(&total).Error
	return total, err
}

// Update updates an announcement
func (r *AnnouncementRepository) Update(ctx context.Context, announcement *models.Announcement) error {
	return r.db.WithContext(ctx).Save(announcement).Error
}

// Delete deletes an announcement
func (r *AnnouncementRepository) Delete(ctx context.Context, sessionKey string, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Announcement{}, "session_key = ? AND id = ?", sessionKey, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
