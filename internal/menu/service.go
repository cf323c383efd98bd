// Menuboard - Restaurant Menu Administration
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuboard

package menu

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/tomtom215/menuboard/internal/logging"
	"github.com/tomtom215/menuboard/internal/metrics"
	"github.com/tomtom215/menuboard/internal/models"
)

var (
	// ErrNotFound is returned when no item has the requested id.
	ErrNotFound = errors.New("menu item not found")

	// ErrPersistence is returned when the collection could not be read,
	// written or confirmed after writing.
	ErrPersistence = errors.New("menu persistence failure")
)

// Store is the persistence the service needs.
type Store interface {
	ReadAll(ctx context.Context) (models.Collection, error)
	WriteAll(ctx context.Context, items models.Collection) error
}

// Config tunes write pacing.
type Config struct {
	// WriteRate is the sustained number of writes per second. Zero or less
	// disables pacing.
	WriteRate float64

	// WriteBurst is the number of writes allowed back to back.
	WriteBurst int
}

// Service performs menu operations against a Store.
type Service struct {
	store  Store
	mu     sync.Mutex
	pacer  *rate.Limiter
	logger zerolog.Logger
}

// NewService creates a Service.
func NewService(store Store, cfg Config) *Service {
	limit := rate.Limit(cfg.WriteRate)
	if cfg.WriteRate <= 0 {
		limit = rate.Inf
	}
	burst := cfg.WriteBurst
	if burst < 1 {
		burst = 1
	}

	return &Service{
		store:  store,
		pacer:  rate.NewLimiter(limit, burst),
		logger: logging.WithComponent("menu"),
	}
}

// List returns the collection in stored order.
func (s *Service) List(ctx context.Context) (models.Collection, error) {
	items, err := s.store.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: read menu: %w", ErrPersistence, err)
	}
	return items, nil
}

// Create assigns the next id to item, appends it and returns the stored item.
// The id is one more than the highest existing id, or 1 for an empty menu.
func (s *Service) Create(ctx context.Context, item models.MenuItem) (created models.MenuItem, err error) {
	defer func() { recordOutcome("create", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.read(ctx)
	if err != nil {
		return models.MenuItem{}, err
	}

	item.ID = items.MaxID() + 1
	items = append(items, item)

	if err := s.write(ctx, items); err != nil {
		return models.MenuItem{}, err
	}
	if err := s.confirmPresent(ctx, item); err != nil {
		return models.MenuItem{}, err
	}

	logging.Ctx(ctx).Info().Int("item_id", item.ID).Str("category", item.Category).Msg("Menu item created")
	return item, nil
}

// Update replaces every field of the item with the given id except the id.
func (s *Service) Update(ctx context.Context, id int, item models.MenuItem) (updated models.MenuItem, err error) {
	defer func() { recordOutcome("update", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.read(ctx)
	if err != nil {
		return models.MenuItem{}, err
	}

	idx := items.IndexOf(id)
	if idx < 0 {
		return models.MenuItem{}, fmt.Errorf("update item %d: %w", id, ErrNotFound)
	}

	item.ID = id
	items[idx] = item

	if err := s.write(ctx, items); err != nil {
		return models.MenuItem{}, err
	}
	if err := s.confirmPresent(ctx, item); err != nil {
		return models.MenuItem{}, err
	}

	logging.Ctx(ctx).Info().Int("item_id", id).Msg("Menu item updated")
	return item, nil
}

// Delete removes the item with the given id.
func (s *Service) Delete(ctx context.Context, id int) (err error) {
	defer func() { recordOutcome("delete", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.read(ctx)
	if err != nil {
		return err
	}

	idx := items.IndexOf(id)
	if idx < 0 {
		return fmt.Errorf("delete item %d: %w", id, ErrNotFound)
	}

	remaining := make(models.Collection, 0, len(items)-1)
	remaining = append(remaining, items[:idx]...)
	remaining = append(remaining, items[idx+1:]...)

	if err := s.write(ctx, remaining); err != nil {
		return err
	}

	after, err := s.read(ctx)
	if err != nil {
		return err
	}
	if after.IndexOf(id) >= 0 {
		s.logger.Error().Int("item_id", id).Msg("Deleted item still present after write")
		return fmt.Errorf("%w: item %d still present after delete", ErrPersistence, id)
	}

	logging.Ctx(ctx).Info().Int("item_id", id).Msg("Menu item deleted")
	return nil
}

func (s *Service) read(ctx context.Context) (models.Collection, error) {
	items, err := s.store.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: read menu: %w", ErrPersistence, err)
	}
	return items, nil
}

func (s *Service) write(ctx context.Context, items models.Collection) error {
	if err := s.pacer.Wait(ctx); err != nil {
		return fmt.Errorf("%w: waiting for write slot: %w", ErrPersistence, err)
	}
	if err := s.store.WriteAll(ctx, items); err != nil {
		return fmt.Errorf("%w: write menu: %w", ErrPersistence, err)
	}
	return nil
}

// confirmPresent re-reads the collection and checks that want is stored verbatim.
func (s *Service) confirmPresent(ctx context.Context, want models.MenuItem) error {
	items, err := s.read(ctx)
	if err != nil {
		return err
	}
	got, ok := items.Find(want.ID)
	if !ok || !got.Equal(want) {
		s.logger.Error().Int("item_id", want.ID).Bool("found", ok).Msg("Menu item mismatch after write")
		return fmt.Errorf("%w: item %d not confirmed after write", ErrPersistence, want.ID)
	}
	return nil
}

func recordOutcome(operation string, err error) {
	switch {
	case err == nil:
		metrics.RecordMenuMutation(operation, "success")
	case errors.Is(err, ErrNotFound):
		metrics.RecordMenuMutation(operation, "not_found")
	default:
		metrics.RecordMenuMutation(operation, "error")
	}
}
