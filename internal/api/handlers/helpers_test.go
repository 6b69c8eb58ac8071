package handlers_test

import (
	"time"

	"vibetracker-backend/internal/api/middleware"
	"vibetracker-backend/internal/mocks"
	"vibetracker-backend/internal/service"
	"vibetracker-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const testSessionKey = "a1b2c"

// sessionScopedGroup returns an /api/v1 group behind the real session
// middleware, backed by a session service that knows testSessionKey.
func sessionScopedGroup(ctrl *gomock.Controller, httpSuite *testutils.HTTPTestSuite) *gin.RouterGroup {
	sessions := mocks.NewMockSessionServiceInterface(ctrl)
	sessions.EXPECT().GetSession(gomock.Any(), testSessionKey).
		Return(&service.SessionResponse{Key: testSessionKey, CreatedAt: time.Now()}, nil).
		AnyTimes()
	return httpSuite.Router.Group("/api/v1", middleware.Session(sessions, "vt_session"))
}
