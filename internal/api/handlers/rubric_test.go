package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"vibetracker-backend/internal/api/handlers"
	apperrors "vibetracker-backend/internal/errors"
	"vibetracker-backend/internal/mocks"
	"vibetracker-backend/internal/scoring"
	"vibetracker-backend/internal/service"
	"vibetracker-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupRubricRouter(t *testing.T) (*mocks.MockRubricServiceInterface, *testutils.HTTPTestSuite) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockRubricServiceInterface(ctrl)
	httpSuite := testutils.SetupHTTPTest()

	handler := handlers.NewRubricHandler(mockService)
	v1 := sessionScopedGroup(ctrl, httpSuite)
	v1.GET("/rubric", handler.GetRubric)
	v1.PUT("/rubric", handler.UpdateRubric)
	return mockService, httpSuite
}

func TestGetRubric(t *testing.T) {
	mockService, httpSuite := setupRubricRouter(t)
	mockService.EXPECT().List(gomock.Any(), testSessionKey).Return([]service.RubricCategoryResponse{
		{ID: 1, CategoryIndex: 1, GroupName: scoring.GroupBusiness, Name: "Problem Fit"},
		{ID: 6, CategoryIndex: 6, GroupName: scoring.GroupTechnical, Name: "Architecture"},
	}, nil)

	recorder := httpSuite.MakeSessionRequest(http.MethodGet, "/api/v1/rubric", testSessionKey, nil)

	var response []service.RubricCategoryResponse
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
	assert.Len(t, response, 2)
	assert.Equal(t, scoring.GroupTechnical, response[1].GroupName)
}

func TestUpdateRubric(t *testing.T) {
	t.Run("Unwraps categories", func(t *testing.T) {
		mockService, httpSuite := setupRubricRouter(t)
		mockService.EXPECT().Update(gomock.Any(), testSessionKey, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, req *service.UpdateRubricRequest) ([]service.RubricCategoryResponse, error) {
				assert.Len(t, req.Categories, 1)
				assert.Equal(t, 3, req.Categories[0].ID)
				assert.Equal(t, "Originality", req.Categories[0].Name)
				return nil, apperrors.NewValidationError("Must provide exactly 10 categories")
			})

		recorder := httpSuite.MakeSessionRequest(http.MethodPut, "/api/v1/rubric", testSessionKey, map[string]interface{}{
			"categories": []map[string]interface{}{
				{"id": 3, "name": "Originality", "guidance": "", "groupName": "Technical"},
			},
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Must provide exactly 10 categories")
	})
}
