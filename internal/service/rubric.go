package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"vibetracker-backend/internal/database/models"
	apperrors "vibetracker-backend/internal/errors"
	"vibetracker-backend/internal/htmlsanitize"
	"vibetracker-backend/internal/repository"
	"vibetracker-backend/internal/scoring"

	"github.com/go-playground/validator/v10"
)

// RubricService handles business logic for the judging rubric
type RubricService struct {
	repo      repository.RubricRepositoryInterface
	validator *validator.Validate
}

// NewRubricService creates a new rubric service
func NewRubricService(repo repository.RubricRepositoryInterface, validator *validator.Validate) *RubricService {
	return &RubricService{repo: repo, validator: validator}
}

// UpdateRubricRequest represents the request to replace the rubric texts
type UpdateRubricRequest struct {
	Categories []RubricCategoryRequest `json:"categories" validate:"len=10,dive"`
}

// RubricCategoryRequest carries the editable parts of one category, addressed
// by categoryIndex or its alias id. Any groupName sent by a client is ignored.
type RubricCategoryRequest struct {
	ID            int    `json:"id"`
	CategoryIndex int    `json:"categoryIndex"`
	Name          string `json:"name" validate:"required,max=120"`
	Guidance      string `json:"guidance" validate:"max=1000"`
}

// index resolves the addressed category, preferring categoryIndex over id
func (r RubricCategoryRequest) index() int {
	if r.CategoryIndex != 0 {
		return r.CategoryIndex
	}
	return r.ID
}

// RubricCategoryResponse represents one rubric category
type RubricCategoryResponse struct {
	ID            int           `json:"id"`
	CategoryIndex int           `json:"categoryIndex"`
	GroupName     scoring.Group `json:"groupName"`
	Name          string        `json:"name"`
	Guidance      string        `json:"guidance"`
}

// List returns the rubric of a session ordered by index
func (s *RubricService) List(ctx context.Context, sessionKey string) ([]RubricCategoryResponse, error) {
	categories, err := s.repo.ListBySession(ctx, sessionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to list rubric: %w", err)
	}
	responses := make([]RubricCategoryResponse, len(categories))
	for i, c := range categories {
		responses[i] = RubricCategoryResponse{
			ID:            c.CategoryIndex,
			CategoryIndex: c.CategoryIndex,
			GroupName:     scoring.GroupForIndex(c.CategoryIndex),
			Name:          c.Name,
			Guidance:      c.Guidance,
		}
	}
	return responses, nil
}

// Update replaces names and guidance of all ten categories and returns the stored rubric
func (s *RubricService) Update(ctx context.Context, sessionKey string, req *UpdateRubricRequest) ([]RubricCategoryResponse, error) {
	msgs, countOK := s.tagMessages(req)
	if !countOK {
		return nil, apperrors.NewValidationError(msgs...)
	}

	seen := make(map[int]bool, len(req.Categories))
	categories := make([]models.RubricCategory, 0, len(req.Categories))
	for _, c := range req.Categories {
		idx := c.index()
		if !scoring.ValidIndex(idx) {
			msgs = append(msgs, fmt.Sprintf("Category %d: index must be between 1 and %d", idx, scoring.CriteriaCount))
			continue
		}
		if seen[idx] {
			msgs = append(msgs, fmt.Sprintf("Category %d: duplicate index", idx))
			continue
		}
		seen[idx] = true

		name := htmlsanitize.PlainText(c.Name)
		if c.Name != "" && name == "" {
			msgs = append(msgs, fmt.Sprintf("Category %d: name is required", idx))
		}
		categories = append(categories, models.RubricCategory{
			CategoryIndex: idx,
			GroupName:     scoring.GroupForIndex(idx),
			Name:          name,
			Guidance:      strings.TrimSpace(c.Guidance),
		})
	}
	if len(msgs) > 0 {
		return nil, apperrors.NewValidationError(msgs...)
	}

	if err := s.repo.UpdateTexts(ctx, sessionKey, categories); err != nil {
		return nil, fmt.Errorf("failed to update rubric: %w", err)
	}
	return s.List(ctx, sessionKey)
}

// tagMessages runs the struct tags and prefixes per-category failures with the
// category index. countOK is false when the number of categories is wrong.
func (s *RubricService) tagMessages(req *UpdateRubricRequest) ([]string, bool) {
	err := s.validator.Struct(req)
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return validationMessages(err), true
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		pos, ok := categoryPosition(fe.Namespace())
		if !ok {
			return []string{fmt.Sprintf("Must provide exactly %d categories", scoring.CriteriaCount)}, false
		}
		msgs = append(msgs, fmt.Sprintf("Category %d: %s", req.Categories[pos].index(), fieldMessage(fe)))
	}
	return msgs, true
}

// categoryPosition extracts the slice position from a namespace like
// UpdateRubricRequest.categories[3].name
func categoryPosition(namespace string) (int, bool) {
	start := strings.IndexByte(namespace, '[')
	end := strings.IndexByte(namespace, ']')
	if start < 0 || end <= start {
		return 0, false
	}
	pos, err := strconv.Atoi(namespace[start+1 : end])
	return pos, err == nil
}
