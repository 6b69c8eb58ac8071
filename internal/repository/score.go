package repository

import (
	"context"

	"vibetracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var _ ScoreRepositoryInterface = (*ScoreRepository)(nil)

// ScoreRepository handles database operations for team scores
type ScoreRepository struct {
	db *gorm.DB
}

// NewScoreRepository creates a new score repository
func NewScoreRepository(db *gorm.DB) *ScoreRepository {
	return &ScoreRepository{db: db}
}

// GetByTeamID retrieves the score row of a team within a session
func (r *ScoreRepository) GetByTeamID(ctx context.Context, sessionKey string, teamID uuid.UUID) (*models.Score, error) {
	var score models.Score
	err := r.db.WithContext(ctx).First(&score, "session_key = ? AND team_id = ?", sessionKey, teamID).Error
	if err != nil {
		return nil, err
	}
	return &score, nil
}

// Create inserts a new score row
func (r *ScoreRepository) Create(ctx context.Context, score *models.Score) error {
	return r.db.WithContext(ctx).Create(score).Error
}

// Update overwrites all criteria of an existing score row, including nulls
func (r *ScoreRepository) Update(ctx context.Context, score *models.Score) error {
	return r.db.WithContext(ctx).
		Model(&models.Score{}).
		Where("session_key = ? AND team_id = ?", score.SessionKey, score.TeamID).
		Select("c1", "c2", "c3", "c4", "c5", "c6", "c7", "c8", "c9", "c10", "updated_at").
		Updates(score).Error
}
