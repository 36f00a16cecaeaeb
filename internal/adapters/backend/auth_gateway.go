package backend

import (
	"context"
	"errors"

	"github.com/Theakashprasad/practice-tool-client/internal/apperrors"
	"github.com/Theakashprasad/practice-tool-client/internal/core/domain"
	portsrepo "github.com/Theakashprasad/practice-tool-client/internal/core/ports/repositories"
)

// LoginResponse is the raw body of the backend login endpoint. Which fields are set depends on
// whether the account still needs to enroll a second factor.
type LoginResponse struct {
	Token         string     `json:"token"`
	User          *LoginUser `json:"user"`
	ResetRequired bool       `json:"reset_required"`
	MfaSetup      bool       `json:"mfaSetup"`
	MfaRequired   bool       `json:"mfaRequired"`
	Secret        string     `json:"secret"`
	OtpauthURL    string     `json:"otpauth_url"`
	Message       string     `json:"message"`
	Error         string     `json:"error"`
}

// LoginUser is the profile returned alongside a session token.
type LoginUser struct {
	ID        domain.ID        `json:"id"`
	Name      string           `json:"name"`
	FirstName string           `json:"first_name"`
	LastName  string           `json:"last_name"`
	Email     string           `json:"email"`
	Level     domain.UserLevel `json:"level"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Token    string `json:"token,omitempty"`
	Remember bool   `json:"remember,omitempty"`
}

// DecodeLoginOutcome classifies a login response. First match wins: reset_required, mfaSetup,
// mfaRequired, token, otherwise failed.
func DecodeLoginOutcome(resp LoginResponse) domain.LoginOutcome {
	switch {
	case resp.ResetRequired, resp.MfaSetup:
		return domain.LoginOutcome{
			Kind:       domain.LoginMfaSetupRequired,
			Secret:     resp.Secret,
			OtpauthURL: resp.OtpauthURL,
		}
	case resp.MfaRequired:
		return domain.LoginOutcome{Kind: domain.LoginMfaChallengeRequired}
	case resp.Token != "":
		return domain.LoginOutcome{
			Kind:    domain.LoginSuccess,
			Token:   resp.Token,
			Profile: resp.User.profile(),
		}
	}
	msg := resp.Message
	if msg == "" {
		msg = resp.Error
	}
	return domain.LoginOutcome{Kind: domain.LoginFailed, Message: msg}
}

func (u *LoginUser) profile() domain.UserProfile {
	if u == nil {
		return domain.UserProfile{}
	}
	name := u.Name
	if name == "" {
		name = domain.User{FirstName: u.FirstName, LastName: u.LastName}.FullName()
	}
	return domain.UserProfile{ID: u.ID, Name: name, Email: u.Email, Level: u.Level}
}

// AuthGateway talks to the backend auth endpoints.
type AuthGateway struct {
	client    *Client
	endpoints Endpoints
}

// NewAuthGateway creates the auth gateway.
func NewAuthGateway(client *Client, endpoints Endpoints) *AuthGateway {
	return &AuthGateway{client: client, endpoints: endpoints}
}

// Login posts the credentials. A login the backend rejects (400, 401, 403, 404) is a LoginFailed
// outcome carrying the server message; only transport or server failures are errors.
func (g *AuthGateway) Login(ctx context.Context, creds domain.Credentials) (domain.LoginOutcome, error) {
	req := loginRequest{
		Email:    creds.Email,
		Password: creds.Password,
		Token:    creds.MfaToken,
		Remember: creds.Remember,
	}
	var resp LoginResponse
	if err := g.client.Post(ctx, g.endpoints.Login(), req, &resp); err != nil {
		if isRejection(err) {
			return domain.LoginOutcome{Kind: domain.LoginFailed, Message: apperrors.MessageOf(err, "")}, nil
		}
		return domain.LoginOutcome{}, err
	}
	return DecodeLoginOutcome(resp), nil
}

func (g *AuthGateway) Register(ctx context.Context, reg domain.Registration) error {
	return g.client.Post(ctx, g.endpoints.Register(), reg, nil)
}

func (g *AuthGateway) Logout(ctx context.Context) error {
	return g.client.Post(ctx, g.endpoints.Logout(), struct{}{}, nil)
}

func isRejection(err error) bool {
	return errors.Is(err, apperrors.ErrUnauthorized) ||
		errors.Is(err, apperrors.ErrValidation) ||
		errors.Is(err, apperrors.ErrForbidden) ||
		errors.Is(err, apperrors.ErrNotFound)
}

var _ portsrepo.AuthGateway = (*AuthGateway)(nil)
