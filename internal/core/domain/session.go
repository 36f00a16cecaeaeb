package domain

import "time"

// UserProfile is the signed-in user as reported by the practice backend at login.
type UserProfile struct {
	ID    ID        `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Level UserLevel `json:"level"`
}

// Session is the per-browser session context: the opaque backend token and the user profile.
type Session struct {
	ID        string      `json:"id"`
	Token     string      `json:"token"`
	Profile   UserProfile `json:"profile"`
	CreatedAt time.Time   `json:"createdAt"`
	ExpiresAt time.Time   `json:"expiresAt"`
}

// IsExpired reports whether the session is past its expiry time.
func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// LoginOutcomeKind discriminates the result of a login attempt.
type LoginOutcomeKind string

const (
	LoginSuccess              LoginOutcomeKind = "success"
	LoginMfaSetupRequired     LoginOutcomeKind = "mfa_setup_required"
	LoginMfaChallengeRequired LoginOutcomeKind = "mfa_challenge_required"
	LoginFailed               LoginOutcomeKind = "failed"
)

// LoginOutcome is the single tagged result of a login call. Only the fields of the matching kind are set.
type LoginOutcome struct {
	Kind       LoginOutcomeKind
	Token      string      // success
	Profile    UserProfile // success
	Secret     string      // mfa setup
	OtpauthURL string      // mfa setup
	Message    string      // failed
}

// Credentials are what the login form submits.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	MfaToken string `json:"mfaToken,omitempty"`
	Remember bool   `json:"remember,omitempty"`
}

// Registration is the self sign-up payload.
type Registration struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Token     string `json:"token,omitempty"` // invitation token, when joining by invitation
}
