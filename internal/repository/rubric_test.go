//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	"vibetracker-backend/internal/database"
	"vibetracker-backend/internal/database/models"
	"vibetracker-backend/internal/scoring"
	"vibetracker-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// RubricRepositoryTestSuite tests the RubricRepository
type RubricRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *RubricRepository
	ctx           context.Context
}

func (suite *RubricRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewRubricRepository(suite.baseTestSuite.DB)
	suite.ctx = context.Background()
}

func (suite *RubricRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *RubricRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	rubric, err := database.DefaultRubric("aaaaa")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(&rubric).Error)
}

func (suite *RubricRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestListOrdered tests listing by index
func (suite *RubricRepositoryTestSuite) TestListOrdered() {
	categories, err := suite.repo.ListBySession(suite.ctx, "aaaaa")
	suite.NoError(err)
	suite.Require().Len(categories, 10)
	for i, c := range categories {
		suite.Equal(i+1, c.CategoryIndex)
	}

	empty, err := suite.repo.ListBySession(suite.ctx, "bbbbb")
	suite.NoError(err)
	suite.Empty(empty)
}

// TestUpdateTextsKeepsGroup tests that only name and guidance change
func (suite *RubricRepositoryTestSuite) TestUpdateTextsKeepsGroup() {
	err := suite.repo.UpdateTexts(suite.ctx, "aaaaa", []models.RubricCategory{
		{CategoryIndex: 1, GroupName: scoring.GroupTechnical, Name: "Impact", Guidance: "g1"},
	})
	suite.NoError(err)

	categories, err := suite.repo.ListBySession(suite.ctx, "aaaaa")
	suite.NoError(err)
	suite.Equal("Impact", categories[0].Name)
	suite.Equal("g1", categories[0].Guidance)
	suite.Equal(scoring.GroupBusiness, categories[0].GroupName)
	suite.Equal("Value & ROI", categories[1].Name)
}

func TestRubricRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RubricRepositoryTestSuite))
}
