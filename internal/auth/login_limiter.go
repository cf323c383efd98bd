// Menuboard - Restaurant Menu Administration
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuboard

package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrAttemptsNotFound is returned when no attempt window exists for a key.
var ErrAttemptsNotFound = errors.New("attempt window not found")

// LoginLimiterConfig holds configuration for the login attempt limiter.
type LoginLimiterConfig struct {
	// MaxAttempts is the number of failed attempts allowed per window.
	MaxAttempts int

	// Window is the fixed window length. The window starts at the first
	// counted failure.
	Window time.Duration
}

// DefaultLoginLimiterConfig returns sensible defaults.
func DefaultLoginLimiterConfig() *LoginLimiterConfig {
	return &LoginLimiterConfig{
		MaxAttempts: 5,
		Window:      15 * time.Minute,
	}
}

// AttemptWindow tracks failed login attempts for one client key.
type AttemptWindow struct {
	Key         string
	Failures    int
	WindowStart time.Time
}

// AttemptStore persists attempt windows.
type AttemptStore interface {
	// Get returns the window for key, or ErrAttemptsNotFound.
	Get(ctx context.Context, key string) (*AttemptWindow, error)

	// Save stores w under w.Key.
	Save(ctx context.Context, w *AttemptWindow) error

	// Delete removes the window for key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error

	// DeleteStartedBefore removes windows that started before cutoff.
	DeleteStartedBefore(ctx context.Context, cutoff time.Time) (int, error)
}

// LoginLimiter caps failed login attempts per client in a fixed window.
type LoginLimiter struct {
	config LoginLimiterConfig
	store  AttemptStore
	now    func() time.Time

	// mu makes read-increment-save atomic across concurrent attempts.
	mu sync.Mutex
}

// NewLoginLimiter creates a new login limiter.
func NewLoginLimiter(store AttemptStore, config *LoginLimiterConfig) *LoginLimiter {
	if config == nil {
		config = DefaultLoginLimiterConfig()
	}
	return &LoginLimiter{
		config: *config,
		store:  store,
		now:    time.Now,
	}
}

// SetClock replaces the time source. Intended for tests.
func (l *LoginLimiter) SetClock(now func() time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.now = now
}

// Config returns the limiter configuration.
func (l *LoginLimiter) Config() LoginLimiterConfig {
	return l.config
}

// Check reports whether key may attempt a login. When it may not, retryAfter
// is the time left until the window resets.
func (l *LoginLimiter) Check(ctx context.Context, key string) (allowed bool, retryAfter time.Duration, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	w, err := l.current(ctx, key)
	if err != nil {
		return false, 0, err
	}
	if w == nil || w.Failures < l.config.MaxAttempts {
		return true, 0, nil
	}

	return false, w.WindowStart.Add(l.config.Window).Sub(l.now()), nil
}

// RecordFailure counts a failed or malformed attempt for key and returns the
// number of attempts left in the current window.
func (l *LoginLimiter) RecordFailure(ctx context.Context, key string) (remaining int, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	w, err := l.current(ctx, key)
	if err != nil {
		return 0, err
	}
	if w == nil {
		w = &AttemptWindow{Key: key, WindowStart: l.now()}
	}

	w.Failures++
	if err := l.store.Save(ctx, w); err != nil {
		return 0, fmt.Errorf("save attempt window: %w", err)
	}

	if left := l.config.MaxAttempts - w.Failures; left > 0 {
		return left, nil
	}
	return 0, nil
}

// Cleanup removes windows that have ended.
func (l *LoginLimiter) Cleanup(ctx context.Context) (int, error) {
	l.mu.Lock()
	cutoff := l.now().Add(-l.config.Window)
	l.mu.Unlock()

	return l.store.DeleteStartedBefore(ctx, cutoff)
}

// current returns the live window for key, or nil when none is open.
// Callers must hold l.mu.
func (l *LoginLimiter) current(ctx context.Context, key string) (*AttemptWindow, error) {
	w, err := l.store.Get(ctx, key)
	if errors.Is(err, ErrAttemptsNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get attempt window: %w", err)
	}

	if !l.now().Before(w.WindowStart.Add(l.config.Window)) {
		if err := l.store.Delete(ctx, key); err != nil {
			return nil, fmt.Errorf("reset attempt window: %w", err)
		}
		return nil, nil
	}
	return w, nil
}

// MemoryAttemptStore implements AttemptStore using in-memory storage.
type MemoryAttemptStore struct {
	mu      sync.RWMutex
	windows map[string]AttemptWindow
}

// NewMemoryAttemptStore creates a new in-memory attempt store.
func NewMemoryAttemptStore() *MemoryAttemptStore {
	return &MemoryAttemptStore{windows: make(map[string]AttemptWindow)}
}

// Get retrieves an attempt window.
func (s *MemoryAttemptStore) Get(_ context.Context, key string) (*AttemptWindow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w, ok := s.windows[key]
	if !ok {
		return nil, ErrAttemptsNotFound
	}
	return &w, nil
}

// Save persists an attempt window.
func (s *MemoryAttemptStore) Save(_ context.Context, w *AttemptWindow) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.windows[w.Key] = *w
	return nil
}

// Delete removes an attempt window.
func (s *MemoryAttemptStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.windows, key)
	return nil
}

// DeleteStartedBefore removes windows that started before cutoff.
func (s *MemoryAttemptStore) DeleteStartedBefore(_ context.Context, cutoff time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for key, w := range s.windows {
		if w.WindowStart.Before(cutoff) {
			delete(s.windows, key)
			count++
		}
	}
	return count, nil
}

// Len returns the number of tracked keys.
func (s *MemoryAttemptStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.windows)
}
