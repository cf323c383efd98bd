// Menuboard - Restaurant Menu Administration
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuboard

package services

import (
	"context"
	"time"

	"github.com/tomtom215/menuboard/internal/logging"
)

// JanitorTask is one housekeeping step. Run returns how many records it
// removed, or zero for tasks that only refresh state.
type JanitorTask struct {
	Name string
	Run  func(ctx context.Context) (int, error)
}

// JanitorService runs its tasks once at start and then on every interval.
// A failing task is logged and does not stop the others or the service.
type JanitorService struct {
	interval time.Duration
	tasks    []JanitorTask
}

// NewJanitorService creates a janitor. A non-positive interval defaults to 5m.
func NewJanitorService(interval time.Duration, tasks ...JanitorTask) *JanitorService {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &JanitorService{interval: interval, tasks: tasks}
}

// Serve implements suture.Service.
func (j *JanitorService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

// sweep runs every task once.
func (j *JanitorService) sweep(ctx context.Context) {
	for _, task := range j.tasks {
		if ctx.Err() != nil {
			return
		}
		n, err := task.Run(ctx)
		if err != nil {
			logging.Warn().Err(err).Str("task", task.Name).Msg("Janitor task failed")
			continue
		}
		if n > 0 {
			logging.Debug().Str("task", task.Name).Int("removed", n).Msg("Janitor task completed")
		}
	}
}

// String implements fmt.Stringer; suture uses it in event logs.
func (j *JanitorService) String() string {
	return "janitor"
}
