package cache

import (
	"sync"
	"time"
)

const defaultSweepInterval = time.Minute

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

func (e entry[V]) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// expiringMap is a mutex-guarded map whose entries expire. A background loop sweeps expired entries.
type expiringMap[V any] struct {
	mu        sync.RWMutex
	entries   map[string]entry[V]
	now       func() time.Time
	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

func newExpiringMap[V any](sweepInterval time.Duration) *expiringMap[V] {
	if sweepInterval <= 0 {
		sweepInterval = defaultSweepInterval
	}
	m := &expiringMap[V]{
		entries:  make(map[string]entry[V]),
		now:      time.Now,
		stopChan: make(chan struct{}),
	}
	m.wg.Add(1)
	go m.sweepLoop(sweepInterval)
	return m
}

func (m *expiringMap[V]) get(key string) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[key]
	if !ok || e.expired(m.now()) {
		var zero V
		return zero, false
	}
	return e.value, true
}

func (m *expiringMap[V]) set(key string, value V, expiresAt time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = entry[V]{value: value, expiresAt: expiresAt}
}

// setIfAbsent stores value unless a live entry already holds key.
func (m *expiringMap[V]) setIfAbsent(key string, value V, expiresAt time.Time) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.entries[key]; ok && !e.expired(m.now()) {
		return false
	}
	m.entries[key] = entry[V]{value: value, expiresAt: expiresAt}
	return true
}

func (m *expiringMap[V]) delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
}

func (m *expiringMap[V]) size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

func (m *expiringMap[V]) close() {
	m.closeOnce.Do(func() {
		close(m.stopChan)
		m.wg.Wait()
	})
}

func (m *expiringMap[V]) sweepLoop(interval time.Duration) {
	defer m.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stopChan:
			return
		case <-ticker.C:
			m.sweep()
		}
	}
}

func (m *expiringMap[V]) sweep() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for key, e := range m.entries {
		if e.expired(now) {
			delete(m.entries, key)
		}
	}
}
