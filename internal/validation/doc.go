// Menuboard - Restaurant Menu Administration
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuboard

// Package validation checks and normalizes everything a client sends before
// it can reach the menu store.
//
// It wraps go-playground/validator v10 with custom tags for the menu domain
// (menucategory, finitefloat, pricerange) and translates validator failures
// into the {field, message} pairs the API returns.
//
// # Menu items
//
// ItemValidator runs every rule on every field and accumulates all failures in
// the fixed order name, category, price, description:
//
//	v := validation.NewItemValidator(cfg.Menu.Categories)
//	item, verr := v.Validate(input)
//	if verr != nil {
//	    respondValidationError(w, verr)
//	    return
//	}
//
// Inputs are trimmed first, lengths are measured in characters on the trimmed
// text, and name/description are HTML-escaped last so the stored values are
// safe to drop into markup.
//
// # Loose scalars
//
// Browsers and scripts send prices as numbers or strings interchangeably.
// FlexString accepts any JSON scalar and keeps its textual form; null or an
// absent key counts as missing.
//
// # Path identifiers
//
// ParseID accepts only plain base-10 digits with a value of at least 1.
//
// # Thread Safety
//
// GetValidator returns a process-wide singleton. ItemValidator instances are
// immutable after construction and safe for concurrent use.
package validation
