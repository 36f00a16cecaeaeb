package backend

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Theakashprasad/practice-tool-client/internal/core/domain"
)

// RequestIDRoundTripper forwards the inbound request id and logs every outgoing call.
type RequestIDRoundTripper struct {
	Transport http.RoundTripper
	Logger    *slog.Logger
}

// NewRequestIDRoundTripper wraps transport. A nil transport uses http.DefaultTransport.
func NewRequestIDRoundTripper(transport http.RoundTripper, logger *slog.Logger) *RequestIDRoundTripper {
	if transport == nil {
		transport = http.DefaultTransport
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RequestIDRoundTripper{Transport: transport, Logger: logger}
}

func (t *RequestIDRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	ctx := r.Context()

	if reqID := domain.RequestIDFromContext(ctx); reqID != "" {
		r = r.Clone(ctx)
		r.Header.Set("X-Request-ID", reqID)
	}

	start := time.Now()
	t.Logger.DebugContext(ctx, "outgoing request", slog.String("request", fmt.Sprintf("%s %s", r.Method, r.URL.Redacted())))

	resp, err := t.Transport.RoundTrip(r)
	if err != nil {
		t.Logger.WarnContext(ctx, "backend request failed",
			slog.String("request", fmt.Sprintf("%s %s", r.Method, r.URL.Redacted())),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("round trip: %w", err)
	}

	t.Logger.InfoContext(ctx, "backend response",
		slog.String("request", fmt.Sprintf("%s %s", r.Method, r.URL.Redacted())),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)))

	return resp, nil
}
