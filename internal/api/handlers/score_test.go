package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"vibetracker-backend/internal/api/handlers"
	apperrors "vibetracker-backend/internal/errors"
	"vibetracker-backend/internal/mocks"
	"vibetracker-backend/internal/scoring"
	"vibetracker-backend/internal/service"
	"vibetracker-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ScoreHandlerTestSuite defines the test suite for ScoreHandler
type ScoreHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockScoreBoardServiceInterface
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *ScoreHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockScoreBoardServiceInterface(suite.ctrl)
	suite.httpSuite = testutils.SetupHTTPTest()

	handler := handlers.NewScoreHandler(suite.mockService)
	scores := sessionScopedGroup(suite.ctrl, suite.httpSuite).Group("/scores")
	{
		scores.GET("", handler.GetBoard)
		scores.GET("/:teamId", handler.GetTeamScore)
		scores.PUT("/:teamId", handler.SaveScore)
	}
}

// TearDownTest cleans up after each test
func (suite *ScoreHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetBoard tests the flattened board payload
func (suite *ScoreHandlerTestSuite) TestGetBoard() {
	seven := 7
	board := &service.BoardResponse{
		ShowPartial: true,
		Teams: []service.BoardEntry{
			{
				TeamScoreResponse: service.TeamScoreResponse{
					TeamID:   uuid.New(),
					TeamName: "Alpha",
					Criteria: scoring.Criteria{C1: &seven},
					Result:   scoring.Result{BusinessSubtotal: 7, Total: 7, Status: scoring.StatusPartial},
				},
				Rank: 1,
			},
		},
	}
	suite.mockService.EXPECT().GetBoard(gomock.Any(), testSessionKey).Return(board, nil)

	recorder := suite.httpSuite.MakeSessionRequest(http.MethodGet, "/api/v1/scores", testSessionKey, nil)

	var body map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &body)
	teams := body["teams"].([]interface{})
	suite.Require().Len(teams, 1)
	row := teams[0].(map[string]interface{})
	suite.Equal("Alpha", row["teamName"])
	suite.Equal(float64(1), row["rank"])
	suite.Equal(float64(7), row["c1"])
	suite.Nil(row["c2"])
	suite.Equal("Partial", row["status"])
}

// TestSaveScore tests that raw criterion values reach the service untouched
func (suite *ScoreHandlerTestSuite) TestSaveScore() {
	teamID := uuid.New()
	suite.mockService.EXPECT().SaveScore(gomock.Any(), testSessionKey, teamID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ uuid.UUID, req service.ScoreRequest) (*service.TeamScoreResponse, error) {
			suite.Equal(json.RawMessage(`"8"`), req["c1"])
			suite.Equal(json.RawMessage(`null`), req["c2"])
			return &service.TeamScoreResponse{TeamID: teamID}, nil
		})

	recorder := suite.httpSuite.MakeSessionRequest(http.MethodPut, "/api/v1/scores/"+teamID.String(), testSessionKey,
		map[string]interface{}{"c1": "8", "c2": nil})

	suite.Equal(http.StatusOK, recorder.Code)
}

// TestSaveScoreErrors tests the status mapping of scoring failures
func (suite *ScoreHandlerTestSuite) TestSaveScoreErrors() {
	testCases := []struct {
		name     string
		err      error
		status   int
		expected string
	}{
		{"Locked", apperrors.ErrScoringLocked, http.StatusForbidden, "scoring is locked"},
		{"Team Not Found", apperrors.ErrTeamNotFound, http.StatusNotFound, "team not found"},
		{"Invalid Values", apperrors.NewValidationError("c3 must be integer 1–10 or null"), http.StatusBadRequest, "c3 must be integer 1–10 or null"},
		{"Store Failure", errors.New("failed to save score: deadlock"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			teamID := uuid.New()
			suite.mockService.EXPECT().SaveScore(gomock.Any(), testSessionKey, teamID, gomock.Any()).Return(nil, tc.err)

			recorder := suite.httpSuite.MakeSessionRequest(http.MethodPut, "/api/v1/scores/"+teamID.String(), testSessionKey,
				map[string]interface{}{"c3": 11})

			testutils.AssertErrorResponse(suite.T(), recorder, tc.status, tc.expected)
		})
	}
}

// TestGetTeamScoreInvalidID tests rejection of malformed team ids
func (suite *ScoreHandlerTestSuite) TestGetTeamScoreInvalidID() {
	recorder := suite.httpSuite.MakeSessionRequest(http.MethodGet, "/api/v1/scores/42", testSessionKey, nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid team ID")
}

// TestScoreHandlerTestSuite runs the test suite
func TestScoreHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ScoreHandlerTestSuite))
}
