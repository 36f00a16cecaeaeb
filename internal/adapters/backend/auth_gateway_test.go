package backend_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Theakashprasad/practice-tool-client/internal/adapters/backend"
	"github.com/Theakashprasad/practice-tool-client/internal/apperrors"
	"github.com/Theakashprasad/practice-tool-client/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeLoginOutcome(t *testing.T) {
	tests := []struct {
		name string
		resp backend.LoginResponse
		want domain.LoginOutcome
	}{
		{
			name: "reset required wins over token",
			resp: backend.LoginResponse{ResetRequired: true, Token: "t", Secret: "S", OtpauthURL: "otpauth://x"},
			want: domain.LoginOutcome{Kind: domain.LoginMfaSetupRequired, Secret: "S", OtpauthURL: "otpauth://x"},
		},
		{
			name: "mfa setup",
			resp: backend.LoginResponse{MfaSetup: true, MfaRequired: true},
			want: domain.LoginOutcome{Kind: domain.LoginMfaSetupRequired},
		},
		{
			name: "mfa challenge wins over token",
			resp: backend.LoginResponse{MfaRequired: true, Token: "t"},
			want: domain.LoginOutcome{Kind: domain.LoginMfaChallengeRequired},
		},
		{
			name: "success",
			resp: backend.LoginResponse{Token: "t", User: &backend.LoginUser{ID: "U1", FirstName: "Ann", LastName: "Lee", Email: "ann@x.com", Level: domain.LevelAdmin}},
			want: domain.LoginOutcome{Kind: domain.LoginSuccess, Token: "t", Profile: domain.UserProfile{ID: "U1", Name: "Ann Lee", Email: "ann@x.com", Level: domain.LevelAdmin}},
		},
		{
			name: "success without user",
			resp: backend.LoginResponse{Token: "t"},
			want: domain.LoginOutcome{Kind: domain.LoginSuccess, Token: "t"},
		},
		{
			name: "failed with message",
			resp: backend.LoginResponse{Error: "Invalid credentials"},
			want: domain.LoginOutcome{Kind: domain.LoginFailed, Message: "Invalid credentials"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, backend.DecodeLoginOutcome(tt.resp))
		})
	}
}

func TestAuthGateway_Login(t *testing.T) {
	var received map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		_ = json.NewDecoder(r.Body).Decode(&received)
		_, _ = w.Write([]byte(`{"mfaRequired": true}`))
	}))
	defer srv.Close()

	gw := backend.NewAuthGateway(newTestClient(0), backend.NewEndpoints(srv.URL))
	outcome, err := gw.Login(context.Background(), domain.Credentials{Email: "a@x.com", Password: "pw", MfaToken: "123456"})

	require.NoError(t, err)
	assert.Equal(t, domain.LoginMfaChallengeRequired, outcome.Kind)
	assert.Equal(t, "a@x.com", received["email"])
	assert.Equal(t, "123456", received["token"])
}

func TestAuthGateway_LoginRejectionIsAnOutcome(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message": "Invalid email or password"}`))
	}))
	defer srv.Close()

	gw := backend.NewAuthGateway(newTestClient(0), backend.NewEndpoints(srv.URL))
	outcome, err := gw.Login(context.Background(), domain.Credentials{Email: "a@x.com", Password: "bad"})

	require.NoError(t, err)
	assert.Equal(t, domain.LoginOutcome{Kind: domain.LoginFailed, Message: "Invalid email or password"}, outcome)
}

func TestAuthGateway_LoginServerErrorIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	gw := backend.NewAuthGateway(newTestClient(0), backend.NewEndpoints(srv.URL))
	_, err := gw.Login(context.Background(), domain.Credentials{Email: "a@x.com", Password: "pw"})

	assert.ErrorIs(t, err, apperrors.ErrUpstream)
}
