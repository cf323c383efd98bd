// Menuboard - Restaurant Menu Administration
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuboard

// Package store persists the menu collection as a single JSON file.
//
// Every write replaces the whole file atomically: the collection is encoded
// to a temporary file in the same directory, flushed to disk and renamed over
// the target. Readers therefore see either the old or the new content, never
// a partial file.
//
// Reads are forgiving. A missing file is created as an empty array, and a file
// whose content is not a JSON array of items reads as an empty menu with a
// warning. Only a file that exists but cannot be read is reported as an error,
// so callers can tell an I/O failure apart from an empty menu.
//
// FileStore does no locking of its own. The menu service serializes
// read-modify-write cycles; separate processes writing the same file are
// last-writer-wins.
package store
