package repository

import (
	"context"

	"vibetracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var _ TeamRepositoryInterface = (*TeamRepository)(nil)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(ctx context.Context, team *models.Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

// GetByID retrieves a team by ID within a session
func (r *TeamRepository) GetByID(ctx context.Context, sessionKey string, id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.WithContext(ctx).First(&team, "session_key = ? AND id = ?", sessionKey, id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByName retrieves a team by exact name within a session
func (r *TeamRepository) GetByName(ctx context.Context, sessionKey, name string) (*models.Team, error) {
	var team models.Team
	err := r.db.WithContext(ctx).First(&team, "session_key = ? AND team_name = ?", sessionKey, name).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// ListBySession retrieves all teams of a session ordered by name
func (r *TeamRepository) ListBySession(ctx context.Context, sessionKey string) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.WithContext(ctx).
		Where("session_key = ?", sessionKey).
		Order("team_name ASC").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

// CountBySession counts the teams of a session
func (r *TeamRepository) CountBySession(ctx context.Context, sessionKey string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Team{}).Where("session_key = ?", sessionKey).Count(&total).Error
	return total, err
}

// Update updates a team
func (r *TeamRepository) Update(ctx context.Context, team *models.Team) error {
	return r.db.WithContext(ctx).Omit("Score").Save(team).Error
}

// Delete deletes a team and its score row
func (r *TeamRepository) Delete(ctx context.Context, sessionKey string, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Score{}, "session_key = ? AND team_id = ?", sessionKey, id).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Team{}, "session_key = ? AND id = ?", sessionKey, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
