// Menuboard - Restaurant Menu Administration
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuboard

package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/menuboard/internal/logging"
	"github.com/tomtom215/menuboard/internal/metrics"
	"github.com/tomtom215/menuboard/internal/models"
)

const fileMode fs.FileMode = 0o644

// FileStore reads and writes the menu file at a fixed path.
type FileStore struct {
	path   string
	logger zerolog.Logger
}

// NewFileStore returns a store for path, creating its parent directory if needed.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, errors.New("store path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}
	return &FileStore{
		path:   path,
		logger: logging.WithComponent("store"),
	}, nil
}

// Path returns the file the store manages.
func (s *FileStore) Path() string {
	return s.path
}

// ReadAll loads the collection. See the package documentation for how
// missing and malformed files are handled.
func (s *FileStore) ReadAll(ctx context.Context) (models.Collection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		metrics.RecordStoreOperation("read", time.Since(start), nil)
		if werr := s.WriteAll(ctx, models.Collection{}); werr != nil {
			logging.Ctx(ctx).Warn().Err(werr).Str("path", s.path).Msg("Failed to initialize menu file")
		} else {
			logging.Ctx(ctx).Info().Str("path", s.path).Msg("Initialized empty menu file")
		}
		return models.Collection{}, nil
	}
	metrics.RecordStoreOperation("read", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("read menu file %s: %w", s.path, err)
	}

	items, ok := decodeCollection(data)
	if !ok {
		metrics.RecordStoreCorruption()
		logging.Ctx(ctx).Warn().
			Str("path", s.path).
			Int("bytes", len(data)).
			Msg("Menu file is not a JSON array of items, treating as empty")
		return models.Collection{}, nil
	}

	metrics.SetMenuItems(len(items))
	return items, nil
}

// decodeCollection parses data as a JSON array of items.
func decodeCollection(data []byte) (models.Collection, bool) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, false
	}

	var items models.Collection
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, false
	}
	if items == nil {
		items = models.Collection{}
	}
	return items, true
}

// WriteAll atomically replaces the file with items, encoded with two-space
// indentation and a trailing newline.
func (s *FileStore) WriteAll(ctx context.Context, items models.Collection) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()
	defer func() {
		metrics.RecordStoreOperation("write", time.Since(start), err)
	}()

	if items == nil {
		items = models.Collection{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(items); err != nil {
		return fmt.Errorf("encode menu: %w", err)
	}

	if err := s.replace(buf.Bytes()); err != nil {
		s.logger.Error().Err(err).Str("path", s.path).Msg("Failed to write menu file")
		return err
	}

	metrics.SetMenuItems(len(items))
	s.logger.Debug().Str("path", s.path).Int("items", len(items)).Msg("Menu file written")
	return nil
}

// replace writes data to a temp file beside the target and renames it into place.
func (s *FileStore) replace(data []byte) error {
	dir := filepath.Dir(s.path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	cleanup := func(cause error) error {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return cause
	}

	if _, err := tmp.Write(data); err != nil {
		return cleanup(fmt.Errorf("write temp file: %w", err))
	}
	if err := tmp.Chmod(fileMode); err != nil {
		return cleanup(fmt.Errorf("chmod temp file: %w", err))
	}
	if err := tmp.Sync(); err != nil {
		return cleanup(fmt.Errorf("sync temp file: %w", err))
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("rename temp file: %w", err)
	}

	syncDir(dir)
	return nil
}

// syncDir flushes the directory entry for the rename. Not every platform
// supports fsync on directories, so failures are ignored.
func syncDir(dir string) {
	d, err := os.Open(dir)
	if err != nil {
		return
	}
	_ = d.Sync()
	_ = d.Close()
}
