package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Theakashprasad/practice-tool-client/internal/apperrors"
	"github.com/Theakashprasad/practice-tool-client/internal/core/domain"
	"github.com/hashicorp/go-retryablehttp"
)

const (
	defaultTimeout      = 15 * time.Second
	defaultRetryWaitMin = 200 * time.Millisecond
	defaultRetryWaitMax = 2 * time.Second
	maxErrorBody        = 64 << 10
)

// Options configures the backend client.
type Options struct {
	Timeout   time.Duration
	RetryMax  int
	Transport http.RoundTripper
	Logger    *slog.Logger
}

// Client is the JSON transport to the practice backend. Reads go through a retrying client; writes
// are sent exactly once.
type Client struct {
	reads  *retryablehttp.Client
	writes *retryablehttp.Client
}

// NewClient builds the backend transport.
func NewClient(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	transport := NewRequestIDRoundTripper(opts.Transport, opts.Logger)

	return &Client{
		reads:  newRetryClient(transport, opts.Timeout, opts.RetryMax, opts.Logger),
		writes: newRetryClient(transport, opts.Timeout, 0, opts.Logger),
	}
}

func newRetryClient(transport http.RoundTripper, timeout time.Duration, retryMax int, logger *slog.Logger) *retryablehttp.Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = retryMax
	rc.RetryWaitMin = defaultRetryWaitMin
	rc.RetryWaitMax = defaultRetryWaitMax
	rc.HTTPClient = &http.Client{Timeout: timeout, Transport: transport}
	rc.Logger = retryLogger{logger}
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	if retryMax == 0 {
		rc.CheckRetry = func(ctx context.Context, _ *http.Response, err error) (bool, error) {
			return false, err
		}
	}
	return rc
}

// retryLogger keeps the retry library's chatter at debug level.
type retryLogger struct {
	logger *slog.Logger
}

func (l retryLogger) Error(msg string, kv ...interface{}) { l.logger.Warn(msg, kv...) }
func (l retryLogger) Info(msg string, kv ...interface{})  { l.logger.Debug(msg, kv...) }
func (l retryLogger) Debug(msg string, kv ...interface{}) { l.logger.Debug(msg, kv...) }
func (l retryLogger) Warn(msg string, kv ...interface{})  { l.logger.Warn(msg, kv...) }

// errorBody is the error envelope the backend uses. Either field may carry the message.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Get decodes a GET response into out.
func (c *Client) Get(ctx context.Context, url string, out any) error {
	return c.do(ctx, c.reads, http.MethodGet, url, nil, out)
}

// Post sends body as JSON and decodes the response into out when non-nil.
func (c *Client) Post(ctx context.Context, url string, body, out any) error {
	return c.do(ctx, c.writes, http.MethodPost, url, body, out)
}

// Put sends body as JSON and decodes the response into out when non-nil.
func (c *Client) Put(ctx context.Context, url string, body, out any) error {
	return c.do(ctx, c.writes, http.MethodPut, url, body, out)
}

// Delete removes the record at url.
func (c *Client) Delete(ctx context.Context, url string) error {
	return c.do(ctx, c.writes, http.MethodDelete, url, nil, nil)
}

func (c *Client) do(ctx context.Context, rc *retryablehttp.Client, method, url string, body, out any) error {
	var payload any
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		payload = raw
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, url, payload)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if session, ok := domain.SessionFromContext(ctx); ok && session.Token != "" {
		req.Header.Set("Authorization", "Bearer "+session.Token)
	}

	resp, err := rc.Do(req)
	if err != nil {
		return apperrors.NewAppError(http.StatusBadGateway, "practice backend is unreachable", fmt.Errorf("%w: %v", apperrors.ErrUpstream, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.NewAppError(http.StatusBadGateway, "failed to read backend response", fmt.Errorf("%w: %v", apperrors.ErrUpstream, err))
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := decodeData(raw, out); err != nil {
		return apperrors.NewAppError(http.StatusBadGateway, "malformed backend response", fmt.Errorf("%w: %v", apperrors.ErrUpstream, err))
	}
	return nil
}

func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var eb errorBody
	msg := ""
	if json.Unmarshal(raw, &eb) == nil {
		msg = eb.Message
		if msg == "" {
			msg = eb.Error
		}
	}
	if msg == "" {
		msg = strings.TrimSpace(string(raw))
		if len(msg) > 200 || strings.HasPrefix(msg, "<") {
			msg = ""
		}
	}
	return apperrors.NewUpstreamError(resp.StatusCode, msg)
}

// decodeData accepts both a bare payload and one wrapped as {"data": ...}, whatever else the
// envelope carries (total, page, limit). A data member that is not an object or array is treated as
// part of a bare record.
func decodeData(raw []byte, out any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var envelope map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &envelope); err == nil {
			if data := bytes.TrimSpace(envelope["data"]); len(data) > 0 && (data[0] == '{' || data[0] == '[') {
				return json.Unmarshal(data, out)
			}
		}
	}
	return json.Unmarshal(trimmed, out)
}
