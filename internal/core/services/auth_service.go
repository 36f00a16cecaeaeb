package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Theakashprasad/practice-tool-client/internal/apperrors"
	"github.com/Theakashprasad/practice-tool-client/internal/core/domain"
	portsrepo "github.com/Theakashprasad/practice-tool-client/internal/core/ports/repositories"
	portssvc "github.com/Theakashprasad/practice-tool-client/internal/core/ports/services"
	"github.com/Theakashprasad/practice-tool-client/internal/platform/config"
	"github.com/Theakashprasad/practice-tool-client/internal/utils"
)

type authService struct {
	BaseService
	gateway     portsrepo.AuthGateway
	sessions    portsrepo.SessionStore
	sessionTTL  time.Duration
	rememberTTL time.Duration
	now         func() time.Time
	newID       func() (string, error)
}

// AuthOption configures the auth service.
type AuthOption func(*authService)

// WithSessionTTL sets how long sessions live, and how long they live when "remember me" is set.
func WithSessionTTL(ttl, remember time.Duration) AuthOption {
	return func(s *authService) {
		if ttl > 0 {
			s.sessionTTL = ttl
		}
		if remember > 0 {
			s.rememberTTL = remember
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) AuthOption {
	return func(s *authService) {
		s.now = now
	}
}

// WithSessionIDGenerator overrides how session ids are drawn.
func WithSessionIDGenerator(newID func() (string, error)) AuthOption {
	return func(s *authService) {
		s.newID = newID
	}
}

// NewAuthService creates the login/session service.
func NewAuthService(gateway portsrepo.AuthGateway, sessions portsrepo.SessionStore, opts ...AuthOption) portssvc.AuthSvcFacade {
	s := &authService{
		gateway:     gateway,
		sessions:    sessions,
		sessionTTL:  8 * time.Hour,
		rememberTTL: 30 * 24 * time.Hour,
		now:         time.Now,
		newID:       utils.GenerateSessionID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *authService) Login(ctx context.Context, creds domain.Credentials) (*portssvc.LoginResult, error) {
	creds.Email = strings.TrimSpace(creds.Email)
	if creds.Email == "" || creds.Password == "" {
		return nil, apperrors.NewValidationFailedError("email and password are required")
	}

	outcome, err := s.gateway.Login(ctx, creds)
	if err != nil {
		s.LogError(ctx, err, "Login request failed", slog.String("email", creds.Email))
		return nil, err
	}

	result := &portssvc.LoginResult{Outcome: outcome}
	switch outcome.Kind {
	case domain.LoginSuccess:
		session, err := s.persistSession(ctx, outcome, creds.Remember)
		if err != nil {
			return nil, err
		}
		result.Session = session
		s.LogInfo(ctx, "User logged in", slog.String("user_id", outcome.Profile.ID.String()))
	case domain.LoginMfaSetupRequired, domain.LoginMfaChallengeRequired:
		s.LogInfo(ctx, "Login needs second factor", slog.String("email", creds.Email), slog.String("outcome", string(outcome.Kind)))
	default:
		s.LogInfo(ctx, "Login rejected", slog.String("email", creds.Email))
	}
	return result, nil
}

func (s *authService) persistSession(ctx context.Context, outcome domain.LoginOutcome, remember bool) (*domain.Session, error) {
	id, err := s.newID()
	if err != nil {
		s.LogError(ctx, err, "Failed to generate session id")
		return nil, fmt.Errorf("generate session id: %w", err)
	}
	ttl := s.sessionTTL
	if remember {
		ttl = s.rememberTTL
	}
	now := s.now()
	session := domain.Session{
		ID:        id,
		Token:     outcome.Token,
		Profile:   outcome.Profile,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		s.LogError(ctx, err, "Failed to save session")
		return nil, fmt.Errorf("save session: %w", err)
	}
	return &session, nil
}

func (s *authService) Register(ctx context.Context, reg domain.Registration) error {
	reg.Email = strings.TrimSpace(reg.Email)
	if reg.Email == "" || reg.Password == "" {
		return apperrors.NewValidationFailedError("email and password are required")
	}
	if err := s.gateway.Register(ctx, reg); err != nil {
		s.LogError(ctx, err, "Registration failed", slog.String("email", reg.Email))
		return err
	}
	s.LogInfo(ctx, "User registered", slog.String("email", reg.Email))
	return nil
}

// Logout always clears the local session. The backend logout is best-effort.
func (s *authService) Logout(ctx context.Context, sessionID string) error {
	session, err := s.sessions.Load(ctx, sessionID)
	switch {
	case err == nil:
		if logoutErr := s.gateway.Logout(domain.ContextWithSession(ctx, session)); logoutErr != nil {
			s.LogWarn(ctx, logoutErr, "Backend logout failed, clearing session anyway")
		}
	case errors.Is(err, apperrors.ErrNotFound):
		// already gone
	default:
		s.LogWarn(ctx, err, "Failed to load session during logout")
	}

	if err := s.sessions.Clear(ctx, sessionID); err != nil {
		s.LogError(ctx, err, "Failed to clear session")
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (s *authService) CurrentSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	if sessionID == "" {
		return nil, apperrors.ErrUnauthorized
	}
	session, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewAppError(http.StatusUnauthorized, "session expired, please sign in again", apperrors.ErrUnauthorized)
		}
		return nil, err
	}
	return session, nil
}

// tokenService signs and verifies the token the browser carries for its session.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

func (s *tokenService) IssueSessionToken(session *domain.Session) (string, time.Time, error) {
	expiresAt := session.ExpiresAt
	if expiresAt.IsZero() {
		expiresAt = time.Now().Add(s.cfg.JWTExpiryDuration)
	}
	token, err := utils.GenerateJWT(session.ID, s.cfg.JWTSecret, expiresAt, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session token: %w", err)
	}
	return token, expiresAt, nil
}

func (s *tokenService) ParseSessionToken(token string) (string, error) {
	claims, err := utils.ParseAndValidateJWT(token, s.cfg.JWTSecret, s.cfg.JWTIssuer)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrUnauthorized, err)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: token has no subject", apperrors.ErrUnauthorized)
	}
	return claims.Subject, nil
}
