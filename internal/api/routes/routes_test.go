//go:build integration
// +build integration

package routes_test

import (
	"net/http"
	"os"
	"testing"

	"vibetracker-backend/internal/api/routes"
	"vibetracker-backend/internal/service"
	"vibetracker-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

func TestMain(m *testing.M) {
	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}

// RouterTestSuite drives the fully wired router against Postgres
type RouterTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	httpSuite     *testutils.HTTPTestSuite
}

// SetupSuite builds the router once; gin metrics register globally
func (suite *RouterTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router = routes.SetupRoutes(suite.baseTestSuite.DB, suite.baseTestSuite.Config)
}

// SetupTest cleans the database before each test
func (suite *RouterTestSuite) SetupTest() {
	suite.baseTestSuite.CleanTestDB()
}

// TearDownSuite runs after all tests in the suite
func (suite *RouterTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *RouterTestSuite) createSession() string {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/sessions", nil)
	var session service.SessionResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &session)
	suite.Require().Len(session.Key, 5)
	return session.Key
}

func (suite *RouterTestSuite) createTeam(key, name string) service.TeamResponse {
	recorder := suite.httpSuite.MakeSessionRequest(http.MethodPost, "/api/v1/teams", key, map[string]interface{}{
		"teamName":    name,
		"projectName": name + " Project",
		"membersText": "Alice\nBob",
	})
	var team service.TeamResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &team)
	return team
}

// TestScoringFlow tests session creation through to a ranked board
func (suite *RouterTestSuite) TestScoringFlow() {
	key := suite.createSession()

	// the new session is seeded with the default rubric
	recorder := suite.httpSuite.MakeSessionRequest(http.MethodGet, "/api/v1/rubric", key, nil)
	var rubric []service.RubricCategoryResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &rubric)
	suite.Len(rubric, 10)

	alpha := suite.createTeam(key, "Alpha")
	beta := suite.createTeam(key, "Beta")

	recorder = suite.httpSuite.MakeSessionRequest(http.MethodPut, "/api/v1/scores/"+alpha.ID.String(), key,
		map[string]interface{}{"c1": 5, "c2": "6", "c6": 7})
	suite.Equal(http.StatusOK, recorder.Code)

	recorder = suite.httpSuite.MakeSessionRequest(http.MethodPut, "/api/v1/scores/"+beta.ID.String(), key,
		map[string]interface{}{"c1": 10, "c2": 10, "c3": 10, "c4": 10, "c5": 10, "c6": 10, "c7": 10, "c8": 10, "c9": 10, "c10": 10})
	suite.Equal(http.StatusOK, recorder.Code)

	recorder = suite.httpSuite.MakeSessionRequest(http.MethodGet, "/api/v1/scores", key, nil)
	var board service.BoardResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &board)
	suite.Require().Len(board.Teams, 2)
	suite.Equal("Beta", board.Teams[0].TeamName)
	suite.Equal(100, board.Teams[0].Total)
	suite.Equal(1, board.Teams[0].Rank)
	suite.Equal("Alpha", board.Teams[1].TeamName)
	suite.Equal(11, board.Teams[1].BusinessSubtotal)
	suite.Equal(7, board.Teams[1].TechnicalSubtotal)
	suite.Equal(2, board.Teams[1].Rank)

	recorder = suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/public/boards/"+key, nil)
	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Body.String(), "Beta")

	recorder = suite.httpSuite.MakeRequest(http.MethodGet, "/metrics", nil)
	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Body.String(), "vibetracker_score_saves_total")
}

// TestLockedScoring tests that locking the event rejects score writes
func (suite *RouterTestSuite) TestLockedScoring() {
	key := suite.createSession()
	team := suite.createTeam(key, "Gamma")

	recorder := suite.httpSuite.MakeSessionRequest(http.MethodPut, "/api/v1/settings", key, map[string]interface{}{"scoringLocked": true})
	suite.Equal(http.StatusOK, recorder.Code)

	recorder = suite.httpSuite.MakeSessionRequest(http.MethodPut, "/api/v1/scores/"+team.ID.String(), key, map[string]interface{}{"c1": 3})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "scoring is locked")
}

// TestSessionIsolation tests that teams are invisible across sessions
func (suite *RouterTestSuite) TestSessionIsolation() {
	first := suite.createSession()
	second := suite.createSession()
	team := suite.createTeam(first, "Delta")

	recorder := suite.httpSuite.MakeSessionRequest(http.MethodGet, "/api/v1/teams/"+team.ID.String(), second, nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "team not found")

	recorder = suite.httpSuite.MakeSessionRequest(http.MethodDelete, "/api/v1/teams/"+team.ID.String(), first, nil)
	suite.Equal(http.StatusNoContent, recorder.Code)
}

// TestHealth tests the probes against a migrated database
func (suite *RouterTestSuite) TestHealth() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/health", nil)
	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Body.String(), `"rubric_seed":"ok"`)

	recorder = suite.httpSuite.MakeRequest(http.MethodGet, "/health/ready", nil)
	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Body.String(), `"schema":"ok"`)
}

// TestUnknownRoute tests the JSON catch-all
func (suite *RouterTestSuite) TestUnknownRoute() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/nope", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "Endpoint not found")
}

// TestRouterTestSuite runs the test suite
func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}
