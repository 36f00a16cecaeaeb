package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/Theakashprasad/practice-tool-client/internal/apperrors"
	"github.com/Theakashprasad/practice-tool-client/internal/core/domain"
	portssvc "github.com/Theakashprasad/practice-tool-client/internal/core/ports/services"
	"github.com/Theakashprasad/practice-tool-client/internal/core/services"
	"github.com/Theakashprasad/practice-tool-client/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AuthServiceTestSuite struct {
	suite.Suite
	gateway  *MockAuthGateway
	sessions *MockSessionStore
	now      time.Time
	service  portssvc.AuthSvcFacade
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.gateway = new(MockAuthGateway)
	suite.sessions = new(MockSessionStore)
	suite.now = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	suite.service = services.NewAuthService(suite.gateway, suite.sessions,
		services.WithSessionTTL(time.Hour, 24*time.Hour),
		services.WithClock(func() time.Time { return suite.now }),
		services.WithSessionIDGenerator(func() (string, error) { return "sess-1", nil }),
	)
}

func (suite *AuthServiceTestSuite) TestLogin_SuccessPersistsSession() {
	ctx := context.Background()
	creds := domain.Credentials{Email: "a@x.com", Password: "pw"}
	profile := domain.UserProfile{ID: "U1", Name: "A B", Email: "a@x.com", Level: domain.LevelAdmin}
	suite.gateway.On("Login", ctx, creds).Return(domain.LoginOutcome{Kind: domain.LoginSuccess, Token: "backend-token", Profile: profile}, nil).Once()
	expected := domain.Session{
		ID:        "sess-1",
		Token:     "backend-token",
		Profile:   profile,
		CreatedAt: suite.now,
		ExpiresAt: suite.now.Add(time.Hour),
	}
	suite.sessions.On("Save", ctx, expected).Return(nil).Once()

	result, err := suite.service.Login(ctx, creds)

	suite.Require().NoError(err)
	suite.Equal(domain.LoginSuccess, result.Outcome.Kind)
	suite.Require().NotNil(result.Session)
	suite.Equal(expected, *result.Session)
	suite.gateway.AssertExpectations(suite.T())
	suite.sessions.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLogin_RememberUsesLongTTL() {
	ctx := context.Background()
	creds := domain.Credentials{Email: "a@x.com", Password: "pw", Remember: true, MfaToken: "123456"}
	suite.gateway.On("Login", ctx, creds).Return(domain.LoginOutcome{Kind: domain.LoginSuccess, Token: "t"}, nil).Once()
	suite.sessions.On("Save", ctx, mock.MatchedBy(func(s domain.Session) bool {
		return s.ExpiresAt.Equal(suite.now.Add(24 * time.Hour))
	})).Return(nil).Once()

	_, err := suite.service.Login(ctx, creds)

	suite.Require().NoError(err)
	suite.sessions.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLogin_MfaOutcomeDoesNotPersist() {
	ctx := context.Background()
	creds := domain.Credentials{Email: "a@x.com", Password: "pw"}
	suite.gateway.On("Login", ctx, creds).Return(domain.LoginOutcome{Kind: domain.LoginMfaChallengeRequired}, nil).Once()

	result, err := suite.service.Login(ctx, creds)

	suite.Require().NoError(err)
	suite.Equal(domain.LoginMfaChallengeRequired, result.Outcome.Kind)
	suite.Nil(result.Session)
	suite.sessions.AssertNotCalled(suite.T(), "Save", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestLogin_RequiresEmailAndPassword() {
	_, err := suite.service.Login(context.Background(), domain.Credentials{Email: "  ", Password: "pw"})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.gateway.AssertNotCalled(suite.T(), "Login", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestLogin_SaveFailure() {
	ctx := context.Background()
	creds := domain.Credentials{Email: "a@x.com", Password: "pw"}
	suite.gateway.On("Login", ctx, creds).Return(domain.LoginOutcome{Kind: domain.LoginSuccess, Token: "t"}, nil).Once()
	suite.sessions.On("Save", ctx, mock.Anything).Return(assert.AnError).Once()

	result, err := suite.service.Login(ctx, creds)

	suite.Nil(result)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *AuthServiceTestSuite) TestLogout_ClearsEvenWhenBackendFails() {
	ctx := context.Background()
	session := &domain.Session{ID: "sess-1", Token: "t"}
	suite.sessions.On("Load", ctx, "sess-1").Return(session, nil).Once()
	suite.gateway.On("Logout", mock.MatchedBy(func(c context.Context) bool {
		s, ok := domain.SessionFromContext(c)
		return ok && s.Token == "t"
	})).Return(assert.AnError).Once()
	suite.sessions.On("Clear", ctx, "sess-1").Return(nil).Once()

	err := suite.service.Logout(ctx, "sess-1")

	suite.NoError(err)
	suite.gateway.AssertExpectations(suite.T())
	suite.sessions.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLogout_UnknownSession() {
	ctx := context.Background()
	suite.sessions.On("Load", ctx, "gone").Return(nil, apperrors.ErrNotFound).Once()
	suite.sessions.On("Clear", ctx, "gone").Return(nil).Once()

	suite.NoError(suite.service.Logout(ctx, "gone"))
	suite.gateway.AssertNotCalled(suite.T(), "Logout", mock.Anything)
}

func (suite *AuthServiceTestSuite) TestCurrentSession_ExpiredIsUnauthorized() {
	ctx := context.Background()
	suite.sessions.On("Load", ctx, "old").Return(nil, apperrors.ErrNotFound).Once()

	session, err := suite.service.CurrentSession(ctx, "old")

	suite.Nil(session)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AuthServiceTestSuite) TestRegister_PassesThrough() {
	ctx := context.Background()
	reg := domain.Registration{FirstName: "A", Email: "a@x.com", Password: "longpassword"}
	suite.gateway.On("Register", ctx, reg).Return(apperrors.NewUpstreamError(409, "Email already registered")).Once()

	err := suite.service.Register(ctx, reg)

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Equal("Email already registered", apperrors.MessageOf(err, ""))
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func TestTokenService_RoundTrip(t *testing.T) {
	cfg := &config.Config{JWTSecret: "secret", JWTIssuer: "practice-tool-client", JWTExpiryDuration: time.Hour}
	tokens := services.NewTokenService(cfg)
	session := &domain.Session{ID: "sess-9", ExpiresAt: time.Now().Add(time.Hour)}

	token, expiresAt, err := tokens.IssueSessionToken(session)
	assert.NoError(t, err)
	assert.True(t, expiresAt.Equal(session.ExpiresAt))

	id, err := tokens.ParseSessionToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "sess-9", id)

	other := services.NewTokenService(&config.Config{JWTSecret: "other", JWTIssuer: "practice-tool-client"})
	_, err = other.ParseSessionToken(token)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
