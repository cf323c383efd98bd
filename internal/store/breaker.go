// Menuboard - Restaurant Menu Administration
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuboard

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/menuboard/internal/logging"
	"github.com/tomtom215/menuboard/internal/metrics"
	"github.com/tomtom215/menuboard/internal/models"
)

// ErrUnavailable is returned while the breaker is open and calls are
// rejected without touching the file.
var ErrUnavailable = errors.New("menu store unavailable")

// Backend is the persistence a BreakerStore guards.
type Backend interface {
	ReadAll(ctx context.Context) (models.Collection, error)
	WriteAll(ctx context.Context, items models.Collection) error
}

// BreakerConfig tunes the circuit breaker.
type BreakerConfig struct {
	// Name labels logs and metrics.
	Name string

	// ConsecutiveFailures opens the breaker. Default: 5
	ConsecutiveFailures uint32

	// Timeout is how long the breaker stays open before letting a probe
	// through. Default: 30s
	Timeout time.Duration
}

// BreakerStore fails fast once the backend keeps failing, instead of
// retrying the disk on every request.
type BreakerStore struct {
	next Backend
	cb   *gobreaker.CircuitBreaker[models.Collection]
	name string
}

// NewBreakerStore wraps next with a circuit breaker.
func NewBreakerStore(next Backend, cfg BreakerConfig) *BreakerStore {
	if cfg.Name == "" {
		cfg.Name = "menu-store"
	}
	if cfg.ConsecutiveFailures == 0 {
		cfg.ConsecutiveFailures = 5
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	metrics.CircuitBreakerState.WithLabelValues(cfg.Name).Set(0)

	cb := gobreaker.NewCircuitBreaker[models.Collection](gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: 1,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.ConsecutiveFailures
		},
		// A caller giving up is not a store failure.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().
				Str("breaker", name).
				Str("from", stateToString(from)).
				Str("to", stateToString(to)).
				Msg("Menu store circuit breaker state transition")
			metrics.RecordBreakerTransition(name, stateToString(from), stateToString(to), stateToFloat(to))
		},
	})

	return &BreakerStore{next: next, cb: cb, name: cfg.Name}
}

// ReadAll reads through the breaker.
func (b *BreakerStore) ReadAll(ctx context.Context) (models.Collection, error) {
	return b.execute(func() (models.Collection, error) {
		return b.next.ReadAll(ctx)
	})
}

// WriteAll writes through the breaker.
func (b *BreakerStore) WriteAll(ctx context.Context, items models.Collection) error {
	_, err := b.execute(func() (models.Collection, error) {
		return nil, b.next.WriteAll(ctx, items)
	})
	return err
}

// State returns the breaker state: "closed", "half-open" or "open".
func (b *BreakerStore) State() string {
	return stateToString(b.cb.State())
}

func (b *BreakerStore) execute(fn func() (models.Collection, error)) (models.Collection, error) {
	items, err := b.cb.Execute(fn)
	switch {
	case err == nil:
		metrics.RecordBreakerResult(b.name, "success")
		return items, nil
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.RecordBreakerResult(b.name, "rejected")
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	default:
		metrics.RecordBreakerResult(b.name, "failure")
		return nil, err
	}
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
