package backend_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/Theakashprasad/practice-tool-client/internal/adapters/backend"
	"github.com/Theakashprasad/practice-tool-client/internal/apperrors"
	"github.com/Theakashprasad/practice-tool-client/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(retryMax int) *backend.Client {
	return backend.NewClient(backend.Options{RetryMax: retryMax})
}

func TestClient_ForwardsTokenAndRequestID(t *testing.T) {
	var gotAuth, gotReqID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-ID")
		_, _ = w.Write([]byte(`{"id": 5, "name": "Acme"}`))
	}))
	defer srv.Close()

	ctx := domain.ContextWithSession(context.Background(), &domain.Session{Token: "tok"})
	ctx = domain.ContextWithRequestID(ctx, "req-1")

	var out domain.Client
	require.NoError(t, newTestClient(0).Get(ctx, srv.URL, &out))

	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, "req-1", gotReqID)
	assert.Equal(t, domain.ID("5"), out.ID)
	assert.Equal(t, "Acme", out.Name)
}

func TestClient_NoSessionNoAuthorization(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	require.NoError(t, newTestClient(0).Delete(context.Background(), srv.URL))
	assert.Empty(t, gotAuth)
}

func TestClient_DecodesDataEnvelope(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bare array", `[{"id": "1", "name": "Tax"}, {"id": 2, "name": "Audit"}]`},
		{"data only", `{"data": [{"id": "1", "name": "Tax"}, {"id": 2, "name": "Audit"}]}`},
		{"paginated envelope", `{"data": [{"id": "1", "name": "Tax"}, {"id": 2, "name": "Audit"}], "total": 2, "page": 1, "limit": 50, "hasMore": false}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			var out []domain.ServiceType
			require.NoError(t, newTestClient(0).Get(context.Background(), srv.URL, &out))

			require.Len(t, out, 2)
			assert.Equal(t, "Tax", out[0].Name)
			assert.Equal(t, domain.ID("2"), out[1].ID)
		})
	}
}

func TestClient_DecodesWrappedRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": {"id": "L1", "entity": "acme", "url": "https://acme.example"}, "meta": {"version": 3}}`))
	}))
	defer srv.Close()

	var out domain.Link
	require.NoError(t, newTestClient(0).Get(context.Background(), srv.URL, &out))

	assert.Equal(t, domain.ID("L1"), out.ID)
	assert.Equal(t, "https://acme.example", out.URL)
}

func TestClient_SendsJSONBody(t *testing.T) {
	var body map[string]any
	var contentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &body)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write(raw)
	}))
	defer srv.Close()

	var out domain.Tool
	err := newTestClient(0).Post(context.Background(), srv.URL, domain.Tool{Name: "Xero"}, &out)

	require.NoError(t, err)
	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, "Xero", body["name"])
	assert.Equal(t, "Xero", out.Name)
}

func TestClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		sentinel error
		message  string
	}{
		{"not found", http.StatusNotFound, `{"message": "Client not found"}`, apperrors.ErrNotFound, "Client not found"},
		{"validation", http.StatusBadRequest, `{"error": "name is required"}`, apperrors.ErrValidation, "name is required"},
		{"unauthorized", http.StatusUnauthorized, `plain text`, apperrors.ErrUnauthorized, "plain text"},
		{"forbidden", http.StatusForbidden, ``, apperrors.ErrForbidden, "Forbidden"},
		{"conflict", http.StatusConflict, `{"message": "exists"}`, apperrors.ErrDuplicate, "exists"},
		{"server error", http.StatusInternalServerError, `<html>boom</html>`, apperrors.ErrUpstream, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			err := newTestClient(0).Put(context.Background(), srv.URL, struct{}{}, nil)

			assert.ErrorIs(t, err, tt.sentinel)
			assert.Equal(t, tt.message, apperrors.MessageOf(err, ""))
		})
	}
}

func TestClient_RetriesReadsOnly(t *testing.T) {
	var gets, posts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			if gets.Add(1) == 1 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			_, _ = w.Write([]byte(`[]`))
			return
		}
		posts.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := newTestClient(2)

	var out []domain.Tool
	require.NoError(t, client.Get(context.Background(), srv.URL, &out))
	assert.Equal(t, int32(2), gets.Load())

	err := client.Post(context.Background(), srv.URL, domain.Tool{Name: "x"}, nil)
	assert.ErrorIs(t, err, apperrors.ErrUpstream)
	assert.Equal(t, int32(1), posts.Load())
}

func TestClient_UnreachableIsUpstream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := newTestClient(0).Get(context.Background(), url, nil)

	assert.ErrorIs(t, err, apperrors.ErrUpstream)
	assert.Equal(t, "practice backend is unreachable", apperrors.MessageOf(err, ""))
}
