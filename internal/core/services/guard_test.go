package services_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Theakashprasad/practice-tool-client/internal/apperrors"
	"github.com/Theakashprasad/practice-tool-client/internal/core/domain"
	"github.com/Theakashprasad/practice-tool-client/internal/core/services"
	"github.com/Theakashprasad/practice-tool-client/internal/repositories/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGuardKey_IncludesSession(t *testing.T) {
	anon := services.GuardKey(context.Background(), "delete", "clients/1")
	assert.Equal(t, "mutation:anonymous:delete:clients/1", anon)

	ctx := domain.ContextWithSession(context.Background(), &domain.Session{ID: "sess-1"})
	assert.Equal(t, "mutation:sess-1:delete:clients/1", services.GuardKey(ctx, "delete", "clients/1"))
}

func TestMutationGuard_RejectsConcurrentDuplicate(t *testing.T) {
	store := cache.NewInMemoryMutationGuardStore()
	defer store.Close()
	guard := services.NewMutationGuard(store, time.Minute)

	started := make(chan struct{})
	release := make(chan struct{})
	var calls int32
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = guard.Run(context.Background(), "update", "clients/1", func(ctx context.Context) error {
			atomic.AddInt32(&calls, 1)
			close(started)
			<-release
			return nil
		})
	}()
	<-started

	err := guard.Run(context.Background(), "update", "clients/1", func(ctx context.Context) error {
		atomic.AddInt32(&calls, 1)
		return nil
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInFlight)

	// a different resource is not blocked
	require.NoError(t, guard.Run(context.Background(), "update", "clients/2", func(ctx context.Context) error { return nil }))

	close(release)
	wg.Wait()
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	// released once settled
	require.NoError(t, guard.Run(context.Background(), "update", "clients/1", func(ctx context.Context) error { return nil }))
}

func TestMutationGuard_ReleasesOnError(t *testing.T) {
	store := new(MockMutationGuardStore)
	guard := services.NewMutationGuard(store, time.Second)
	key := "mutation:anonymous:create:tools"
	store.On("Acquire", mock.Anything, key, time.Second).Return(true, nil).Once()
	store.On("Release", mock.Anything, key).Return(nil).Once()

	err := guard.Run(context.Background(), "create", "tools", func(ctx context.Context) error { return assert.AnError })

	assert.ErrorIs(t, err, assert.AnError)
	store.AssertExpectations(t)
}

func TestMutationGuard_StoreFailure(t *testing.T) {
	store := new(MockMutationGuardStore)
	guard := services.NewMutationGuard(store, 0)
	store.On("Acquire", mock.Anything, mock.Anything, services.DefaultMutationGuardTTL).Return(false, errors.New("redis down")).Once()

	ran := false
	err := guard.Run(context.Background(), "create", "tools", func(ctx context.Context) error {
		ran = true
		return nil
	})

	assert.Error(t, err)
	assert.False(t, ran)
	store.AssertNotCalled(t, "Release", mock.Anything, mock.Anything)
}

func TestMutationGuard_NilGuardRunsDirectly(t *testing.T) {
	var guard *services.MutationGuard

	got, err := services.Guarded(context.Background(), guard, "create", "tools", func(ctx context.Context) (int, error) {
		return 7, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 7, got)
}
