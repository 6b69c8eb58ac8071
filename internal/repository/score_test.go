//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	"vibetracker-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ScoreRepositoryTestSuite tests the ScoreRepository
type ScoreRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ScoreRepository
	teamRepo      *TeamRepository
	factories     *testutils.FactorySet
	ctx           context.Context
}

func (suite *ScoreRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewScoreRepository(suite.baseTestSuite.DB)
	suite.teamRepo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

func (suite *ScoreRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *ScoreRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *ScoreRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndGet tests inserting and reading a partial score
func (suite *ScoreRepositoryTestSuite) TestCreateAndGet() {
	team := suite.factories.Team.Create("aaaaa")
	suite.Require().NoError(suite.teamRepo.Create(suite.ctx, team))

	score := suite.factories.Score.WithValues(team, [10]int{8, 0, 6, 0, 0, 0, 0, 0, 0, 3})
	suite.NoError(suite.repo.Create(suite.ctx, score))

	found, err := suite.repo.GetByTeamID(suite.ctx, "aaaaa", team.ID)
	suite.NoError(err)
	suite.Require().NotNil(found.C1)
	suite.Equal(8, *found.C1)
	suite.Nil(found.C2)
	suite.Require().NotNil(found.C10)
	suite.Equal(3, *found.C10)
}

// TestUpdateWritesNulls tests that cleared criteria are persisted as null
func (suite *ScoreRepositoryTestSuite) TestUpdateWritesNulls() {
	team := suite.factories.Team.Create("aaaaa")
	suite.Require().NoError(suite.teamRepo.Create(suite.ctx, team))
	suite.Require().NoError(suite.repo.Create(suite.ctx, suite.factories.Score.WithValues(team, [10]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})))

	updated := suite.factories.Score.WithValues(team, [10]int{0, 2, 0, 0, 0, 0, 0, 0, 0, 0})
	suite.NoError(suite.repo.Update(suite.ctx, updated))

	found, err := suite.repo.GetByTeamID(suite.ctx, "aaaaa", team.ID)
	suite.NoError(err)
	suite.Nil(found.C1)
	suite.Require().NotNil(found.C2)
	suite.Equal(2, *found.C2)
	suite.Nil(found.C10)
}

// TestGetScopedToSession tests that another session cannot read the score
func (suite *ScoreRepositoryTestSuite) TestGetScopedToSession() {
	team := suite.factories.Team.Create("aaaaa")
	suite.Require().NoError(suite.teamRepo.Create(suite.ctx, team))
	suite.Require().NoError(suite.repo.Create(suite.ctx, suite.factories.Score.WithValues(team, [10]int{1})))

	_, err := suite.repo.GetByTeamID(suite.ctx, "bbbbb", team.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestScoreRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ScoreRepositoryTestSuite))
}
