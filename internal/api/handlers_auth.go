// Menuboard - Restaurant Menu Administration
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuboard

package api

import (
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/tomtom215/menuboard/internal/logging"
	"github.com/tomtom215/menuboard/internal/metrics"
	"github.com/tomtom215/menuboard/internal/models"
)

// loginRequest is the login body. The password must be a JSON string.
type loginRequest struct {
	Password *string `json:"password"`
}

// Login handles POST /api/auth/login.
//
// Clients over the failed-attempt cap get 429 with Retry-After before the
// password is looked at. Malformed or incorrect attempts count against the
// cap; successful logins do not.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ip := clientIP(r)

	allowed, retryAfter, err := h.limiter.Check(ctx, ip)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Login failed", err)
		return
	}
	if !allowed {
		metrics.RecordLoginAttempt("throttled")
		metrics.RecordRateLimitHit("login")
		h.security.LogLoginThrottled(ip, retryAfter)
		w.Header().Set("Retry-After", retryAfterSeconds(retryAfter))
		respondError(w, http.StatusTooManyRequests, "Too many login attempts, please try again later", nil)
		return
	}

	var req loginRequest
	if err := decodeBody(w, r, &req, func(form url.Values) {
		if vals, ok := form["password"]; ok && len(vals) > 0 {
			req.Password = &vals[0]
		}
	}); err != nil {
		h.recordLoginFailure(r, ip, "malformed_body")
		respondBodyError(w, err)
		return
	}

	if req.Password == nil || *req.Password == "" {
		h.recordLoginFailure(r, ip, "missing_field")
		respondJSON(w, http.StatusBadRequest, &models.ErrorResponse{
			Success: false,
			Message: "Validation failed",
			Errors:  []models.FieldError{{Field: "password", Message: "Password is required"}},
		})
		return
	}

	if !h.password.Verify(*req.Password) {
		h.recordLoginFailure(r, ip, "bad_credentials")
		respondError(w, http.StatusUnauthorized, "Incorrect password", nil)
		return
	}

	session, err := h.sessions.StartSession(ctx, w, r, ip)
	if err != nil {
		metrics.RecordLoginAttempt("error")
		respondError(w, http.StatusInternalServerError, "Login failed", err)
		return
	}

	metrics.RecordLoginAttempt("success")
	h.security.LogLoginSuccess(session.ID, ip, r.UserAgent())
	respondJSON(w, http.StatusOK, &models.MessageResponse{Success: true, Message: "Login successful"})
}

// recordLoginFailure counts a failed attempt against ip.
func (h *Handler) recordLoginFailure(r *http.Request, ip, reason string) {
	metrics.RecordLoginAttempt("failure")
	h.security.LogLoginFailure(ip, r.UserAgent(), reason)

	if _, err := h.limiter.RecordFailure(r.Context(), ip); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to record login failure")
	}
}

// Logout handles POST /api/auth/logout. The cookie is cleared even when no
// session existed.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	id, err := h.sessions.EndSession(r.Context(), w, r)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Logout failed", err)
		return
	}
	if id != "" {
		h.security.LogLogout(id, clientIP(r))
	}
	respondJSON(w, http.StatusOK, &models.MessageResponse{Success: true, Message: "Logged out successfully"})
}

// Status handles GET /api/auth/status. It never creates or extends a session.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.AuthStatusResponse{IsAuthenticated: h.sessions.IsAuthenticated(r)})
}

// retryAfterSeconds formats d as whole seconds, rounded up, at least 1.
func retryAfterSeconds(d time.Duration) string {
	secs := int(math.Ceil(d.Seconds()))
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}
