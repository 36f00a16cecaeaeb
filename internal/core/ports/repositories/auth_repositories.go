package repositories

import (
	"context"

	"github.com/Theakashprasad/practice-tool-client/internal/core/domain"
)

// AuthGateway talks to the backend's authentication endpoints.
type AuthGateway interface {
	// Login submits credentials and returns the already-classified outcome.
	// Transport failures are returned as errors; a rejected login is a LoginFailed outcome.
	Login(ctx context.Context, creds domain.Credentials) (domain.LoginOutcome, error)

	// Register creates an account.
	Register(ctx context.Context, reg domain.Registration) error

	// Logout invalidates the backend token carried by the context session.
	Logout(ctx context.Context) error
}
