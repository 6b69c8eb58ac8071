package database

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"vibetracker-backend/internal/database/models"
	"vibetracker-backend/internal/scoring"
)

//go:embed seed/rubric.yaml
var defaultRubricYAML []byte

type rubricSeed struct {
	Categories []struct {
		Index    int    `yaml:"index"`
		Name     string `yaml:"name"`
		Guidance string `yaml:"guidance"`
	} `yaml:"categories"`
}

// DefaultRubric returns the ten seeded rubric categories for a session
func DefaultRubric(sessionKey string) ([]models.RubricCategory, error) {
	var seed rubricSeed
	if err := yaml.Unmarshal(defaultRubricYAML, &seed); err != nil {
		return nil, fmt.Errorf("parse default rubric: %w", err)
	}
	if len(seed.Categories) != scoring.CriteriaCount {
		return nil, fmt.Errorf("default rubric must have %d categories, got %d", scoring.CriteriaCount, len(seed.Categories))
	}

	categories := make([]models.RubricCategory, 0, len(seed.Categories))
	for _, c := range seed.Categories {
		if !scoring.ValidIndex(c.Index) {
			return nil, fmt.Errorf("default rubric has invalid index %d", c.Index)
		}
		categories = append(categories, models.RubricCategory{
			SessionKey:    sessionKey,
			CategoryIndex: c.Index,
			GroupName:     scoring.GroupForIndex(c.Index),
			Name:          c.Name,
			Guidance:      c.Guidance,
		})
	}
	return categories, nil
}
