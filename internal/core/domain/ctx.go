package domain

import "context"

type (
	ctxKeySession       struct{}
	ctxKeyRequestID     struct{}
	ctxKeyConfirmations struct{}
)

// ContextWithSession stores the session context for downstream backend calls.
func ContextWithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, ctxKeySession{}, session)
}

// SessionFromContext returns the session stored by the auth middleware, if any.
func SessionFromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(ctxKeySession{}).(*Session)
	return s, ok && s != nil
}

// ContextWithRequestID stores the inbound request id so it can be forwarded upstream.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID{}, requestID)
}

// RequestIDFromContext returns the request id or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKeyRequestID{}).(string)
	return id
}

// ContextWithConfirmations records how many times the user confirmed a destructive action.
func ContextWithConfirmations(ctx context.Context, n int) context.Context {
	return context.WithValue(ctx, ctxKeyConfirmations{}, n)
}

// ConfirmationsFromContext returns the recorded confirmation count, 0 when none.
func ConfirmationsFromContext(ctx context.Context) int {
	n, _ := ctx.Value(ctxKeyConfirmations{}).(int)
	return n
}
