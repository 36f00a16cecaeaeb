package dto

import (
	"time"

	"github.com/Theakashprasad/practice-tool-client/internal/core/domain"
)

// LoginRequest is the body of POST /auth/login. The first submit carries email and password; the
// second-factor submit repeats them together with the one-time code and the state returned by the
// first call.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	MfaToken string `json:"mfaToken,omitempty"`
	Remember bool   `json:"remember,omitempty"`
	State    string `json:"state,omitempty" binding:"omitempty,oneof=mfa_setup_required mfa_challenge_required"`
}

// ToCredentials converts the request into login credentials.
func (r LoginRequest) ToCredentials() domain.Credentials {
	return domain.Credentials{
		Email:    r.Email,
		Password: r.Password,
		Remember: r.Remember,
	}
}

// MfaEnrollment is returned when the account still has to register an authenticator app.
type MfaEnrollment struct {
	Secret     string `json:"secret"`
	OtpauthURL string `json:"otpauthUrl"`
	QRCode     string `json:"qrCode,omitempty"` // PNG data URI
}

// LoginResponse reports the state the login flow reached.
type LoginResponse struct {
	State     string              `json:"state"`
	Token     string              `json:"token,omitempty"`
	ExpiresAt *time.Time          `json:"expiresAt,omitempty"`
	Profile   *domain.UserProfile `json:"profile,omitempty"`
	Mfa       *MfaEnrollment      `json:"mfa,omitempty"`
	Error     string              `json:"error,omitempty"`
}

// RegisterRequest is the self sign-up body.
type RegisterRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	Token     string `json:"token,omitempty"`
}

// ToRegistration converts the request into the backend registration payload.
func (r RegisterRequest) ToRegistration() domain.Registration {
	return domain.Registration{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Password:  r.Password,
		Token:     r.Token,
	}
}

// SessionResponse describes the signed-in session.
type SessionResponse struct {
	Profile   domain.UserProfile `json:"profile"`
	ExpiresAt time.Time          `json:"expiresAt"`
}

// ToSessionResponse converts a session, never exposing the backend token.
func ToSessionResponse(s *domain.Session) SessionResponse {
	return SessionResponse{Profile: s.Profile, ExpiresAt: s.ExpiresAt}
}
