package service_test

import (
	"context"
	"errors"
	"testing"

	"vibetracker-backend/internal/database/models"
	apperrors "vibetracker-backend/internal/errors"
	"vibetracker-backend/internal/mocks"
	"vibetracker-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// SessionServiceTestSuite defines the test suite for SessionService
type SessionServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mocks.MockSessionRepositoryInterface
	service  *service.SessionService
	ctx      context.Context
}

func (suite *SessionServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockSessionRepositoryInterface(suite.ctrl)
	suite.service = service.NewSessionService(suite.mockRepo)
	suite.ctx = context.Background()
}

func (suite *SessionServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateSessionSeedsDefaults tests that a new session gets settings and a full rubric
func (suite *SessionServiceTestSuite) TestCreateSessionSeedsDefaults() {
	suite.mockRepo.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(false, nil)
	suite.mockRepo.EXPECT().CreateWithDefaults(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, session *models.Session, settings *models.EventSettings, rubric []models.RubricCategory) error {
			suite.Regexp(`^[0-9a-f]{5}$`, session.Key)
			suite.Equal(session.Key, settings.SessionKey)
			suite.Equal("Hackathon", settings.EventName)
			suite.True(settings.ShowPartial)
			suite.False(settings.ScoringLocked)
			suite.Len(rubric, 10)
			for _, c := range rubric {
				suite.Equal(session.Key, c.SessionKey)
			}
			return nil
		})

	resp, err := suite.service.CreateSession(suite.ctx)

	suite.NoError(err)
	suite.Regexp(`^[0-9a-f]{5}$`, resp.Key)
}

// TestCreateSessionRetriesOnCollision tests that a taken key is skipped
func (suite *SessionServiceTestSuite) TestCreateSessionRetriesOnCollision() {
	gomock.InOrder(
		suite.mockRepo.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(true, nil),
		suite.mockRepo.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(true, nil),
		suite.mockRepo.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(false, nil),
	)
	suite.mockRepo.EXPECT().CreateWithDefaults(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	_, err := suite.service.CreateSession(suite.ctx)

	suite.NoError(err)
}

// TestCreateSessionGivesUp tests exhaustion of key attempts
func (suite *SessionServiceTestSuite) TestCreateSessionGivesUp() {
	suite.mockRepo.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(true, nil).Times(10)

	resp, err := suite.service.CreateSession(suite.ctx)

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrSessionKeyExists)
}

// TestCreateSessionStoreError tests store failure propagation
func (suite *SessionServiceTestSuite) TestCreateSessionStoreError() {
	suite.mockRepo.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(false, nil)
	suite.mockRepo.EXPECT().CreateWithDefaults(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("boom"))

	resp, err := suite.service.CreateSession(suite.ctx)

	suite.Nil(resp)
	suite.Error(err)
}

// TestGetSessionNormalizesKey tests lowercasing and trimming
func (suite *SessionServiceTestSuite) TestGetSessionNormalizesKey() {
	suite.mockRepo.EXPECT().GetByKey(gomock.Any(), "abc12").Return(&models.Session{Key: "abc12"}, nil)

	resp, err := suite.service.GetSession(suite.ctx, "  ABC12 ")

	suite.NoError(err)
	suite.Equal("abc12", resp.Key)
}

// TestGetSessionNotFound tests an unknown key
func (suite *SessionServiceTestSuite) TestGetSessionNotFound() {
	suite.mockRepo.EXPECT().GetByKey(gomock.Any(), "fffff").Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.service.GetSession(suite.ctx, "fffff")

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrSessionNotFound)
}

// TestGetSessionMalformedKey tests that malformed keys never reach the store
func (suite *SessionServiceTestSuite) TestGetSessionMalformedKey() {
	for _, key := range []string{"", "abcd", "abcdef", "ghijk", "12 34"} {
		resp, err := suite.service.GetSession(suite.ctx, key)
		suite.Nil(resp)
		suite.True(apperrors.IsValidation(err), key)
	}
}

func TestSessionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SessionServiceTestSuite))
}

func TestNormalizeSessionKey(t *testing.T) {
	key, err := service.NormalizeSessionKey("0A9fE")
	assert.NoError(t, err)
	assert.Equal(t, "0a9fe", key)

	_, err = service.NormalizeSessionKey("0a9f")
	assert.Equal(t, []string{"Session key must be a 5-character hex string"}, apperrors.Messages(err))
}
