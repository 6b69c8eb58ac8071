package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"vibetracker-backend/internal/api/handlers"
	apperrors "vibetracker-backend/internal/errors"
	"vibetracker-backend/internal/mocks"
	"vibetracker-backend/internal/service"
	"vibetracker-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupSettingsRouter(t *testing.T) (*mocks.MockSettingsServiceInterface, *testutils.HTTPTestSuite) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockSettingsServiceInterface(ctrl)
	httpSuite := testutils.SetupHTTPTest()

	handler := handlers.NewSettingsHandler(mockService)
	v1 := sessionScopedGroup(ctrl, httpSuite)
	v1.GET("/settings", handler.GetSettings)
	v1.PUT("/settings", handler.UpdateSettings)
	return mockService, httpSuite
}

func TestGetSettings(t *testing.T) {
	mockService, httpSuite := setupSettingsRouter(t)
	mockService.EXPECT().Get(gomock.Any(), testSessionKey).Return(&service.SettingsResponse{
		EventName:        "Hackathon",
		EventIcon:        "⚡",
		ShowPartial:      true,
		TVRefreshSeconds: 15,
	}, nil)

	recorder := httpSuite.MakeSessionRequest(http.MethodGet, "/api/v1/settings", testSessionKey, nil)

	var response map[string]interface{}
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
	assert.Equal(t, "Hackathon", response["eventName"])
	assert.Nil(t, response["countdownTarget"])
	assert.Equal(t, float64(15), response["tvRefreshSeconds"])
}

func TestUpdateSettings(t *testing.T) {
	t.Run("Partial body", func(t *testing.T) {
		mockService, httpSuite := setupSettingsRouter(t)
		mockService.EXPECT().Update(gomock.Any(), testSessionKey, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, req *service.UpdateSettingsRequest) (*service.SettingsResponse, error) {
				assert.NotNil(t, req.ScoringLocked)
				assert.True(t, *req.ScoringLocked)
				assert.Nil(t, req.EventName)
				assert.NotNil(t, req.CountdownTarget)
				assert.Equal(t, "", *req.CountdownTarget)
				return &service.SettingsResponse{EventName: "Hackathon", ScoringLocked: true}, nil
			})

		recorder := httpSuite.MakeSessionRequest(http.MethodPut, "/api/v1/settings", testSessionKey,
			map[string]interface{}{"scoringLocked": true, "countdownTarget": ""})

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("Validation errors", func(t *testing.T) {
		mockService, httpSuite := setupSettingsRouter(t)
		mockService.EXPECT().Update(gomock.Any(), testSessionKey, gomock.Any()).
			Return(nil, apperrors.NewValidationError("eventName is required", "tvRefreshSeconds must be at least 5"))

		recorder := httpSuite.MakeSessionRequest(http.MethodPut, "/api/v1/settings", testSessionKey,
			map[string]interface{}{"eventName": "", "tvRefreshSeconds": 1})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "tvRefreshSeconds must be at least 5")
	})

	t.Run("Wrong field type", func(t *testing.T) {
		_, httpSuite := setupSettingsRouter(t)

		recorder := httpSuite.MakeSessionRequest(http.MethodPut, "/api/v1/settings", testSessionKey,
			map[string]interface{}{"tvRefreshSeconds": "fast"})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid request body")
	})
}
