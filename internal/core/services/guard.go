package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Theakashprasad/practice-tool-client/internal/apperrors"
	"github.com/Theakashprasad/practice-tool-client/internal/core/domain"
	portsrepo "github.com/Theakashprasad/practice-tool-client/internal/core/ports/repositories"
)

// DefaultMutationGuardTTL bounds how long a key is held when a request never settles.
const DefaultMutationGuardTTL = 30 * time.Second

// MutationGuard rejects a mutation while an identical one from the same session is still in flight.
type MutationGuard struct {
	BaseService
	store portsrepo.MutationGuardStore
	ttl   time.Duration
}

// NewMutationGuard creates a guard. A nil store disables guarding.
func NewMutationGuard(store portsrepo.MutationGuardStore, ttl time.Duration) *MutationGuard {
	if ttl <= 0 {
		ttl = DefaultMutationGuardTTL
	}
	return &MutationGuard{store: store, ttl: ttl}
}

// GuardKey builds the key of a mutation: session, operation and resource.
func GuardKey(ctx context.Context, operation, resource string) string {
	sessionID := "anonymous"
	if s, ok := domain.SessionFromContext(ctx); ok && s.ID != "" {
		sessionID = s.ID
	}
	return strings.Join([]string{"mutation", sessionID, operation, resource}, ":")
}

// Run executes fn while holding the mutation key. A concurrent duplicate gets ErrInFlight.
func (g *MutationGuard) Run(ctx context.Context, operation, resource string, fn func(ctx context.Context) error) error {
	if g == nil || g.store == nil {
		return fn(ctx)
	}
	key := GuardKey(ctx, operation, resource)
	ok, err := g.store.Acquire(ctx, key, g.ttl)
	if err != nil {
		g.LogError(ctx, err, "Failed to acquire mutation guard", slog.String("key", key))
		return fmt.Errorf("acquire mutation guard: %w", err)
	}
	if !ok {
		g.LogWarn(ctx, apperrors.ErrInFlight, "Duplicate mutation rejected", slog.String("key", key))
		return apperrors.NewAppError(http.StatusConflict, fmt.Sprintf("%s on %s is already in progress", operation, resource), apperrors.ErrInFlight)
	}
	defer func() {
		if relErr := g.store.Release(context.WithoutCancel(ctx), key); relErr != nil {
			g.LogWarn(ctx, relErr, "Failed to release mutation guard", slog.String("key", key))
		}
	}()
	return fn(ctx)
}

// Guarded runs fn under the guard and returns its value.
func Guarded[T any](ctx context.Context, g *MutationGuard, operation, resource string, fn func(ctx context.Context) (T, error)) (T, error) {
	var out T
	err := g.Run(ctx, operation, resource, func(ctx context.Context) error {
		v, err := fn(ctx)
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	return out, err
}
