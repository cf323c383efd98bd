// Menuboard - Restaurant Menu Administration
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuboard

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"
)

func TestJanitorService_Interface(t *testing.T) {
	var _ suture.Service = (*JanitorService)(nil)
}

func TestJanitorService_RunsTasksOnStartAndInterval(t *testing.T) {
	t.Parallel()

	var sessions, failing atomic.Int32
	svc := NewJanitorService(20*time.Millisecond,
		JanitorTask{Name: "failing", Run: func(context.Context) (int, error) {
			failing.Add(1)
			return 0, errors.New("store unavailable")
		}},
		JanitorTask{Name: "sessions", Run: func(context.Context) (int, error) {
			sessions.Add(1)
			return 2, nil
		}},
	)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	deadline := time.Now().Add(2 * time.Second)
	for sessions.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	cancel()

	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Errorf("Serve returned %v, want context.Canceled", err)
	}
	if sessions.Load() < 3 {
		t.Errorf("sessions task ran %d times, want at least 3", sessions.Load())
	}
	if failing.Load() != sessions.Load() && failing.Load() != sessions.Load()+1 {
		t.Errorf("a failing task must not stop later tasks: failing=%d sessions=%d", failing.Load(), sessions.Load())
	}
}

func TestJanitorService_Defaults(t *testing.T) {
	t.Parallel()

	svc := NewJanitorService(0)
	if svc.interval != 5*time.Minute {
		t.Errorf("interval = %v", svc.interval)
	}
	if svc.String() != "janitor" {
		t.Errorf("String() = %q", svc.String())
	}
}
