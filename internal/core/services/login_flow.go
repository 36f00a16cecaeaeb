package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/Theakashprasad/practice-tool-client/internal/apperrors"
	"github.com/Theakashprasad/practice-tool-client/internal/core/domain"
	portssvc "github.com/Theakashprasad/practice-tool-client/internal/core/ports/services"
)

// LoginState is a state of the two-factor login flow.
type LoginState string

const (
	LoginStateIdle                 LoginState = "idle"
	LoginStateSubmitting           LoginState = "submitting"
	LoginStateMfaSetupRequired     LoginState = "mfa_setup_required"
	LoginStateMfaChallengeRequired LoginState = "mfa_challenge_required"
	LoginStateAuthenticated        LoginState = "authenticated"
)

const genericLoginError = "Login failed. Please try again."

// LoginFlow drives one login attempt through the optional second factor.
//
//	Idle -> Submitting -> Authenticated | MfaSetupRequired | MfaChallengeRequired | Idle (error)
//	Mfa* -> Submitting (with token) -> Authenticated | Idle (error)
//
// Entered credentials survive every failure so the user never retypes them.
type LoginFlow struct {
	auth portssvc.AuthSvcFacade

	mu      sync.Mutex
	state   LoginState
	creds   domain.Credentials
	outcome domain.LoginOutcome
	session *domain.Session
	lastErr error
}

// NewLoginFlow starts a flow in Idle.
func NewLoginFlow(auth portssvc.AuthSvcFacade) *LoginFlow {
	return &LoginFlow{auth: auth, state: LoginStateIdle}
}

// ResumeLoginFlow rebuilds a flow that was waiting for a second factor, e.g. across two HTTP requests.
func ResumeLoginFlow(auth portssvc.AuthSvcFacade, state LoginState, creds domain.Credentials) *LoginFlow {
	f := NewLoginFlow(auth)
	if state == LoginStateMfaSetupRequired || state == LoginStateMfaChallengeRequired {
		f.state = state
		f.creds = creds
	}
	return f
}

// State returns the current state.
func (f *LoginFlow) State() LoginState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Credentials returns the retained credentials.
func (f *LoginFlow) Credentials() domain.Credentials {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.creds
}

// Outcome returns the last outcome decoded from the backend.
func (f *LoginFlow) Outcome() domain.LoginOutcome {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.outcome
}

// Session returns the established session once Authenticated.
func (f *LoginFlow) Session() *domain.Session {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.session
}

// Err returns the error that sent the flow back to Idle, if any.
func (f *LoginFlow) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}

// Submit sends email and password from Idle.
func (f *LoginFlow) Submit(ctx context.Context, creds domain.Credentials) (LoginState, error) {
	f.mu.Lock()
	switch f.state {
	case LoginStateIdle:
	case LoginStateSubmitting:
		f.mu.Unlock()
		return LoginStateSubmitting, apperrors.ErrInFlight
	default:
		state := f.state
		f.mu.Unlock()
		return state, apperrors.NewAppError(http.StatusConflict, "login is not waiting for credentials", apperrors.ErrInvalidTransition)
	}
	creds.MfaToken = ""
	f.creds = creds
	f.state = LoginStateSubmitting
	f.lastErr = nil
	f.mu.Unlock()

	return f.send(ctx, creds, false)
}

// SubmitToken resubmits the retained credentials with the one-time code from MfaSetupRequired or
// MfaChallengeRequired.
func (f *LoginFlow) SubmitToken(ctx context.Context, token string, remember bool) (LoginState, error) {
	f.mu.Lock()
	if f.state != LoginStateMfaSetupRequired && f.state != LoginStateMfaChallengeRequired {
		state := f.state
		f.mu.Unlock()
		if state == LoginStateSubmitting {
			return state, apperrors.ErrInFlight
		}
		return state, apperrors.NewAppError(http.StatusConflict, "login is not waiting for a verification code", apperrors.ErrInvalidTransition)
	}
	token = strings.TrimSpace(token)
	if token == "" {
		state := f.state
		f.mu.Unlock()
		return state, apperrors.NewValidationFailedError("verification code is required")
	}
	creds := f.creds
	creds.MfaToken = token
	creds.Remember = remember
	f.creds = creds
	f.state = LoginStateSubmitting
	f.lastErr = nil
	f.mu.Unlock()

	return f.send(ctx, creds, true)
}

// Reset returns to Idle, keeping the entered credentials.
func (f *LoginFlow) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = LoginStateIdle
	f.outcome = domain.LoginOutcome{}
	f.session = nil
	f.lastErr = nil
}

func (f *LoginFlow) send(ctx context.Context, creds domain.Credentials, withToken bool) (LoginState, error) {
	result, err := f.auth.Login(ctx, creds)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		return f.fail(err)
	}
	f.outcome = result.Outcome
	switch result.Outcome.Kind {
	case domain.LoginSuccess:
		f.state = LoginStateAuthenticated
		f.session = result.Session
		return f.state, nil
	case domain.LoginMfaSetupRequired:
		if !withToken {
			f.state = LoginStateMfaSetupRequired
			return f.state, nil
		}
	case domain.LoginMfaChallengeRequired:
		if !withToken {
			f.state = LoginStateMfaChallengeRequired
			return f.state, nil
		}
	}
	msg := result.Outcome.Message
	switch {
	case msg != "":
	case withToken:
		msg = "Invalid verification code."
	default:
		msg = genericLoginError
	}
	return f.fail(apperrors.NewAppError(http.StatusUnauthorized, msg, apperrors.ErrUnauthorized))
}

// fail must be called with mu held.
func (f *LoginFlow) fail(err error) (LoginState, error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		err = apperrors.NewAppError(http.StatusBadGateway, genericLoginError, err)
	}
	f.state = LoginStateIdle
	f.session = nil
	f.lastErr = err
	return f.state, err
}
