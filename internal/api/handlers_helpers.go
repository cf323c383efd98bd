// Menuboard - Restaurant Menu Administration
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuboard

package api

import (
	"bytes"
	"errors"
	"io"
	"mime"
	"net"
	"net/http"
	"net/url"

	"github.com/goccy/go-json"

	"github.com/tomtom215/menuboard/internal/logging"
	"github.com/tomtom215/menuboard/internal/models"
	"github.com/tomtom215/menuboard/internal/validation"
)

// maxRequestBodyBytes caps request bodies at 100 KiB.
const maxRequestBodyBytes = 100 << 10

var (
	errBodyTooLarge  = errors.New("request body too large")
	errMalformedBody = errors.New("malformed request body")
)

// respondJSON writes v as JSON with the given status.
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Debug().Err(err).Msg("Failed to write JSON response")
	}
}

// respondError writes the error envelope. err, if given, is logged and never
// sent to the client.
func respondError(w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		logging.Error().
			Int("status", status).
			Str("error", logging.SanitizeLogValue(err.Error())).
			Msg("API error")
	}
	respondJSON(w, status, &models.ErrorResponse{Success: false, Message: message})
}

// respondValidationError writes a 400 envelope listing every field error.
func respondValidationError(w http.ResponseWriter, verr *validation.RequestValidationError) {
	respondJSON(w, http.StatusBadRequest, &models.ErrorResponse{
		Success: false,
		Message: "Validation failed",
		Errors:  verr.FieldErrors(),
	})
}

// respondBodyError maps a decodeBody error to 413 or 400.
func respondBodyError(w http.ResponseWriter, err error) {
	if errors.Is(err, errBodyTooLarge) {
		respondError(w, http.StatusRequestEntityTooLarge, "Request body too large", nil)
		return
	}
	respondError(w, http.StatusBadRequest, "Invalid request body", nil)
}

// decodeBody reads a JSON or urlencoded body. JSON is decoded into dst;
// form values are handed to fromForm. An empty body decodes as an empty
// object.
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}, fromForm func(url.Values)) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)

	if isFormRequest(r) {
		if err := r.ParseForm(); err != nil {
			return classifyBodyError(err)
		}
		fromForm(r.PostForm)
		return nil
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		return classifyBodyError(err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return errMalformedBody
	}
	return nil
}

func classifyBodyError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return errBodyTooLarge
	}
	return errMalformedBody
}

func isFormRequest(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/x-www-form-urlencoded"
}

// clientIP returns the client identity used for rate limiting and logs: the
// remote address host, which RealIP has already rewritten when the proxy is
// trusted.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
