// Menuboard - Restaurant Menu Administration
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuboard

package api

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/menuboard/internal/menu"
	"github.com/tomtom215/menuboard/internal/models"
	"github.com/tomtom215/menuboard/internal/validation"
)

// ListMenu handles GET /api/menu.
func (h *Handler) ListMenu(w http.ResponseWriter, r *http.Request) {
	h.writeMenu(w, r)
}

// PublicMenu handles GET /data.json. Responses must never be cached.
func (h *Handler) PublicMenu(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Expires", "0")
	h.writeMenu(w, r)
}

func (h *Handler) writeMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.menu.List(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load menu", err)
		return
	}
	if items == nil {
		items = models.Collection{}
	}
	respondJSON(w, http.StatusOK, items)
}

// CreateItem handles POST /api/menu.
func (h *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	item, ok := h.decodeItem(w, r)
	if !ok {
		return
	}

	created, err := h.menu.Create(r.Context(), item)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to save item", err)
		return
	}

	respondJSON(w, http.StatusOK, &models.ItemResponse{
		Success: true,
		Item:    created,
		Message: "Item added successfully",
	})
}

// UpdateItem handles PUT /api/menu/{id}.
func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, verr := validation.ParseID(chi.URLParam(r, "id"))
	if verr != nil {
		respondValidationError(w, verr)
		return
	}

	item, ok := h.decodeItem(w, r)
	if !ok {
		return
	}

	updated, err := h.menu.Update(r.Context(), id, item)
	switch {
	case errors.Is(err, menu.ErrNotFound):
		respondError(w, http.StatusNotFound, "Item not found", nil)
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, "Failed to update item", err)
		return
	}

	respondJSON(w, http.StatusOK, &models.ItemResponse{
		Success: true,
		Item:    updated,
		Message: "Item updated successfully",
	})
}

// DeleteItem handles DELETE /api/menu/{id}.
func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, verr := validation.ParseID(chi.URLParam(r, "id"))
	if verr != nil {
		respondValidationError(w, verr)
		return
	}

	err := h.menu.Delete(r.Context(), id)
	switch {
	case errors.Is(err, menu.ErrNotFound):
		respondError(w, http.StatusNotFound, "Item not found", nil)
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, "Failed to delete item", err)
		return
	}

	respondJSON(w, http.StatusOK, &models.MessageResponse{Success: true, Message: "Item deleted successfully"})
}

// decodeItem reads and validates an item body. On failure the response has
// been written and ok is false.
func (h *Handler) decodeItem(w http.ResponseWriter, r *http.Request) (item models.MenuItem, ok bool) {
	var in validation.ItemInput
	if err := decodeBody(w, r, &in, func(form url.Values) {
		in = validation.ItemInputFromForm(form)
	}); err != nil {
		respondBodyError(w, err)
		return models.MenuItem{}, false
	}

	item, verr := h.items.Validate(in)
	if verr != nil {
		respondValidationError(w, verr)
		return models.MenuItem{}, false
	}
	return item, true
}
