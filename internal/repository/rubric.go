package repository

import (
	"context"

	"vibetracker-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ RubricRepositoryInterface = (*RubricRepository)(nil)

// RubricRepository handles database operations for rubric categories
type RubricRepository struct {
	db *gorm.DB
}

// NewRubricRepository creates a new rubric repository
func NewRubricRepository(db *gorm.DB) *RubricRepository {
	return &RubricRepository{db: db}
}

// ListBySession retrieves the rubric of a session ordered by index
func (r *RubricRepository) ListBySession(ctx context.Context, sessionKey string) ([]models.RubricCategory, error) {
	var categories []models.RubricCategory
	err := r.db.WithContext(ctx).
		Where("session_key = ?", sessionKey).
		Order("category_index ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// UpdateTexts writes name and guidance for each category. Missing rows are
// inserted with the given group; the group of an existing row is never changed.
func (r *RubricRepository) UpdateTexts(ctx context.Context, sessionKey string, categories []models.RubricCategory) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range categories {
			categories[i].SessionKey = sessionKey
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "session_key"}, {Name: "category_index"}},
				DoUpdates: clause.AssignmentColumns([]string{"name", "guidance"}),
			}).Create(&categories[i]).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
