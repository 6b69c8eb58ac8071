package handlers_test

import (
	"net/http"
	"testing"

	"vibetracker-backend/internal/api/handlers"
	apperrors "vibetracker-backend/internal/errors"
	"vibetracker-backend/internal/mocks"
	"vibetracker-backend/internal/service"
	"vibetracker-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AnnouncementHandlerTestSuite defines the test suite for AnnouncementHandler
type AnnouncementHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockAnnouncementServiceInterface
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *AnnouncementHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockAnnouncementServiceInterface(suite.ctrl)
	suite.httpSuite = testutils.SetupHTTPTest()

	handler := handlers.NewAnnouncementHandler(suite.mockService)
	announcements := sessionScopedGroup(suite.ctrl, suite.httpSuite).Group("/announcements")
	{
		announcements.GET("", handler.ListAnnouncements)
		announcements.POST("", handler.CreateAnnouncement)
		announcements.PUT("/:id", handler.UpdateAnnouncement)
		announcements.DELETE("/:id", handler.DeleteAnnouncement)
	}
}

// TearDownTest cleans up after each test
func (suite *AnnouncementHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListAnnouncements tests the published filter
func (suite *AnnouncementHandlerTestSuite) TestListAnnouncements() {
	suite.T().Run("No Filter", func(t *testing.T) {
		suite.mockService.EXPECT().List(gomock.Any(), testSessionKey, gomock.Nil()).Return([]service.AnnouncementResponse{}, nil)

		recorder := suite.httpSuite.MakeSessionRequest(http.MethodGet, "/api/v1/announcements", testSessionKey, nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, "[]", recorder.Body.String())
	})

	suite.T().Run("Published Only", func(t *testing.T) {
		published := true
		suite.mockService.EXPECT().List(gomock.Any(), testSessionKey, &published).
			Return([]service.AnnouncementResponse{{Title: "Lunch", Published: true}}, nil)

		recorder := suite.httpSuite.MakeSessionRequest(http.MethodGet, "/api/v1/announcements?published=true", testSessionKey, nil)

		var response []service.AnnouncementResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Len(t, response, 1)
	})

	suite.T().Run("Bad Filter", func(t *testing.T) {
		recorder := suite.httpSuite.MakeSessionRequest(http.MethodGet, "/api/v1/announcements?published=maybe", testSessionKey, nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "published must be true or false")
	})
}

// TestCreateAnnouncement tests creation and the pin limit
func (suite *AnnouncementHandlerTestSuite) TestCreateAnnouncement() {
	suite.mockService.EXPECT().Create(gomock.Any(), testSessionKey, &service.CreateAnnouncementRequest{Title: "Demo time", Body: "Now", Pinned: true}).
		Return(nil, apperrors.NewValidationError("Maximum 4 pinned announcements allowed. Unpin one first."))

	recorder := suite.httpSuite.MakeSessionRequest(http.MethodPost, "/api/v1/announcements", testSessionKey,
		map[string]interface{}{"title": "Demo time", "body": "Now", "pinned": true})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Maximum 4 pinned announcements allowed. Unpin one first.")
}

// TestUpdateAnnouncement tests the partial update body
func (suite *AnnouncementHandlerTestSuite) TestUpdateAnnouncement() {
	id := uuid.New()
	suite.mockService.EXPECT().Update(gomock.Any(), testSessionKey, id, gomock.Any()).
		Return(&service.AnnouncementResponse{ID: id, Title: "Updated"}, nil)

	recorder := suite.httpSuite.MakeSessionRequest(http.MethodPut, "/api/v1/announcements/"+id.String(), testSessionKey,
		map[string]interface{}{"title": "Updated"})

	var response service.AnnouncementResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal("Updated", response.Title)
}

// TestDeleteAnnouncement tests deletion outcomes
func (suite *AnnouncementHandlerTestSuite) TestDeleteAnnouncement() {
	id := uuid.New()
	suite.mockService.EXPECT().Delete(gomock.Any(), testSessionKey, id).Return(apperrors.ErrAnnouncementNotFound)

	recorder := suite.httpSuite.MakeSessionRequest(http.MethodDelete, "/api/v1/announcements/"+id.String(), testSessionKey, nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "announcement not found")
}

// TestAnnouncementHandlerTestSuite runs the test suite
func TestAnnouncementHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AnnouncementHandlerTestSuite))
}
