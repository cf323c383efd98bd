// Menuboard - Restaurant Menu Administration
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuboard

package api

import (
	"net/http"

	"github.com/tomtom215/menuboard/internal/metrics"
	"github.com/tomtom215/menuboard/internal/models"
)

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	metrics.UpdateUptime(h.startTime)
	respondJSON(w, http.StatusOK, &models.HealthResponse{Status: "ok"})
}
