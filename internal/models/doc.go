// Menuboard - Restaurant Menu Administration
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuboard

/*
Package models defines the data structures shared across Menuboard.

It is the single source of truth for the menu item record persisted in the
flat JSON file and for the response envelopes written by the HTTP API.

Key Components:

  - MenuItem: one entry of the menu collection, as stored and as served
  - ErrorResponse / FieldError: the failure envelope for every API error
  - ItemResponse / MessageResponse: success envelopes for mutations and auth
  - AuthStatusResponse / HealthResponse: small read-only endpoints

JSON Field Naming:

Field names follow the wire format consumed by the existing admin and public
pages, so MenuItem uses lowercase names and the auth status uses camelCase
(isAuthenticated). Changing a tag is a breaking change for those pages.

Thread Safety:

Models are plain values with no internal synchronization. MenuItem is safe to
copy; Collection is a slice and must not be shared across goroutines while
being mutated.
*/
package models
