// Menuboard - Restaurant Menu Administration
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuboard

package validation

import "strconv"

// ParseID parses a path identifier. Only plain decimal digits with a value
// of at least 1 are accepted; signs, spaces and overflow are rejected.
func ParseID(raw string) (int, *RequestValidationError) {
	invalid := newFieldError("id", "id", "ID must be a positive integer", raw)

	if raw == "" || len(raw) > 18 {
		return 0, invalid
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return 0, invalid
		}
	}

	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, invalid
	}
	return id, nil
}
