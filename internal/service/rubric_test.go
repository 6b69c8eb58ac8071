package service_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"vibetracker-backend/internal/database/models"
	apperrors "vibetracker-backend/internal/errors"
	"vibetracker-backend/internal/mocks"
	"vibetracker-backend/internal/scoring"
	"vibetracker-backend/internal/service"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// RubricServiceTestSuite defines the test suite for RubricService
type RubricServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockRubricRepo *mocks.MockRubricRepositoryInterface
	rubricService  *service.RubricService
	ctx            context.Context
}

// SetupTest sets up the test suite
func (suite *RubricServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRubricRepo = mocks.NewMockRubricRepositoryInterface(suite.ctrl)
	suite.rubricService = service.NewRubricService(suite.mockRubricRepo, service.NewValidator())
	suite.ctx = context.Background()
}

// TearDownTest cleans up after each test
func (suite *RubricServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func fullRubricRequest() *service.UpdateRubricRequest {
	categories := make([]service.RubricCategoryRequest, scoring.CriteriaCount)
	for i := range categories {
		categories[i] = service.RubricCategoryRequest{
			ID:       i + 1,
			Name:     fmt.Sprintf("Category %d", i+1),
			Guidance: "1: weak · 10: outstanding",
		}
	}
	return &service.UpdateRubricRequest{Categories: categories}
}

func storedRubric(names []string) []models.RubricCategory {
	categories := make([]models.RubricCategory, len(names))
	for i, name := range names {
		categories[i] = models.RubricCategory{
			SessionKey:    testSessionKey,
			CategoryIndex: i + 1,
			GroupName:     scoring.GroupForIndex(i + 1),
			Name:          name,
		}
	}
	return categories
}

// TestList tests that groups are derived from the index
func (suite *RubricServiceTestSuite) TestList() {
	names := make([]string, scoring.CriteriaCount)
	for i := range names {
		names[i] = fmt.Sprintf("C%d", i+1)
	}
	suite.mockRubricRepo.EXPECT().ListBySession(gomock.Any(), testSessionKey).Return(storedRubric(names), nil)

	rubric, err := suite.rubricService.List(suite.ctx, testSessionKey)

	suite.NoError(err)
	suite.Require().Len(rubric, scoring.CriteriaCount)
	suite.Equal(scoring.GroupBusiness, rubric[0].GroupName)
	suite.Equal(scoring.GroupBusiness, rubric[4].GroupName)
	suite.Equal(scoring.GroupTechnical, rubric[5].GroupName)
	suite.Equal(10, rubric[9].ID)
}

// TestUpdate tests a full replacement of the rubric texts
func (suite *RubricServiceTestSuite) TestUpdate() {
	req := fullRubricRequest()
	req.Categories[2].Name = "  <b>Originality</b> "
	req.Categories[6] = service.RubricCategoryRequest{CategoryIndex: 7, Name: "Code Quality"}

	suite.mockRubricRepo.EXPECT().UpdateTexts(gomock.Any(), testSessionKey, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, categories []models.RubricCategory) error {
			suite.Require().Len(categories, scoring.CriteriaCount)
			suite.Equal("Originality", categories[2].Name)
			suite.Equal(7, categories[6].CategoryIndex)
			suite.Equal(scoring.GroupTechnical, categories[6].GroupName)
			return nil
		})
	suite.mockRubricRepo.EXPECT().ListBySession(gomock.Any(), testSessionKey).
		Return(storedRubric([]string{"a", "b", "Originality", "d", "e", "f", "Code Quality", "h", "i", "j"}), nil)

	rubric, err := suite.rubricService.Update(suite.ctx, testSessionKey, req)

	suite.NoError(err)
	suite.Equal("Originality", rubric[2].Name)
	suite.Equal("Code Quality", rubric[6].Name)
}

// TestUpdateWrongCount tests that exactly ten categories are required
func (suite *RubricServiceTestSuite) TestUpdateWrongCount() {
	req := fullRubricRequest()
	req.Categories = req.Categories[:9]
	req.Categories[0].Name = ""

	rubric, err := suite.rubricService.Update(suite.ctx, testSessionKey, req)

	suite.Nil(rubric)
	suite.Equal([]string{"Must provide exactly 10 categories"}, apperrors.Messages(err))
}

// TestUpdateValidation tests that per-category violations are collected
func (suite *RubricServiceTestSuite) TestUpdateValidation() {
	req := fullRubricRequest()
	req.Categories[1].Name = ""
	req.Categories[2].Name = "   "
	req.Categories[4].Name = strings.Repeat("n", 121)
	req.Categories[5].Guidance = strings.Repeat("g", 1001)
	req.Categories[8].ID = 2
	req.Categories[9].ID = 11

	rubric, err := suite.rubricService.Update(suite.ctx, testSessionKey, req)

	suite.Nil(rubric)
	suite.True(apperrors.IsValidation(err))
	suite.Equal([]string{
		"Category 2: name is required",
		"Category 5: name max 120 characters",
		"Category 6: guidance max 1000 characters",
		"Category 3: name is required",
		"Category 2: duplicate index",
		"Category 11: index must be between 1 and 10",
	}, apperrors.Messages(err))
}

// TestUpdateNameLengthCountsCharacters tests that the name limit is measured in characters
func (suite *RubricServiceTestSuite) TestUpdateNameLengthCountsCharacters() {
	req := fullRubricRequest()
	req.Categories[0].Name = strings.Repeat("ü", 120)

	suite.mockRubricRepo.EXPECT().UpdateTexts(gomock.Any(), testSessionKey, gomock.Any()).Return(nil)
	suite.mockRubricRepo.EXPECT().ListBySession(gomock.Any(), testSessionKey).Return(storedRubric([]string{"a"}), nil)

	_, err := suite.rubricService.Update(suite.ctx, testSessionKey, req)

	suite.NoError(err)
}

// TestUpdateStoreError tests that store failures are wrapped
func (suite *RubricServiceTestSuite) TestUpdateStoreError() {
	suite.mockRubricRepo.EXPECT().UpdateTexts(gomock.Any(), testSessionKey, gomock.Any()).Return(errors.New("db down"))

	rubric, err := suite.rubricService.Update(suite.ctx, testSessionKey, fullRubricRequest())

	suite.Nil(rubric)
	suite.ErrorContains(err, "failed to update rubric")
	suite.False(apperrors.IsValidation(err))
}

// TestRubricServiceTestSuite runs the test suite
func TestRubricServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RubricServiceTestSuite))
}
