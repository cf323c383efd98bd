// Menuboard - Restaurant Menu Administration
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuboard

// Package services adapts Menuboard components to suture.Service.
//
//   - HTTPServerService runs an *http.Server and shuts it down gracefully when
//     its context ends.
//   - JanitorService runs housekeeping tasks on a fixed interval: purging
//     expired sessions and stale login-attempt windows, refreshing gauges.
package services
