// Menuboard - Restaurant Menu Administration
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuboard

// Package menu implements the create, list, update and delete operations on
// the menu collection.
//
// Each mutation is a full cycle against the store: read the collection,
// change it in memory, write it back, then read it again and confirm the
// change landed. A confirmation mismatch is reported as ErrPersistence.
//
// Cycles are serialized by a mutex so concurrent creates always see each
// other's ids. Writes are additionally paced by a token bucket to protect the
// flat file from bursts.
//
// Errors:
//
//	ErrNotFound     - the id does not exist; nothing was written
//	ErrPersistence  - reading, writing or confirming the file failed
//
// Both are wrapped with context; classify with errors.Is.
package menu
