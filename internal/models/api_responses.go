// Menuboard - Restaurant Menu Administration
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuboard

package models

// ErrorResponse is the envelope for every failed API request.
//
// Example:
//
//	{
//	  "success": false,
//	  "message": "Validation failed",
//	  "errors": [
//	    {"field": "name", "message": "Name is required"},
//	    {"field": "price", "message": "Price must be between 0 and 200"}
//	  ]
//	}
type ErrorResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError names one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ItemResponse is returned after a successful create or update.
type ItemResponse struct {
	Success bool     `json:"success"`
	Item    MenuItem `json:"item"`
	Message string   `json:"message"`
}

// MessageResponse is returned by login, logout and delete.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// AuthStatusResponse reports whether the caller holds an authenticated session.
type AuthStatusResponse struct {
	IsAuthenticated bool `json:"isAuthenticated"`
}

// HealthResponse is served by the liveness endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}
