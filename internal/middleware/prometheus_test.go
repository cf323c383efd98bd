// Menuboard - Restaurant Menu Administration
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuboard

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/menuboard/internal/metrics"
)

func newMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return PrometheusMetrics(next.ServeHTTP)
	})
	r.Get("/metrics-test/{id}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "id") == "0" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte("ok"))
	})
	return r
}

func TestPrometheusMetrics_LabelsByRoutePattern(t *testing.T) {
	router := newMetricsRouter()
	const pattern = "/metrics-test/{id}"

	okBefore := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("GET", pattern, "200"))
	badBefore := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("GET", pattern, "400"))

	for _, path := range []string{"/metrics-test/1", "/metrics-test/2", "/metrics-test/0"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	if got := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("GET", pattern, "200")) - okBefore; got != 2 {
		t.Errorf("200 count delta = %v, want 2", got)
	}
	if got := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("GET", pattern, "400")) - badBefore; got != 1 {
		t.Errorf("400 count delta = %v, want 1", got)
	}
}

func TestPrometheusMetrics_UnmatchedRoutesShareOneLabel(t *testing.T) {
	router := newMetricsRouter()

	before := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("GET", unmatchedRoute, "404"))

	for _, path := range []string{"/wp-admin", "/.env", "/random/probe"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusNotFound {
			t.Fatalf("%s: status = %d", path, rec.Code)
		}
	}

	if got := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("GET", unmatchedRoute, "404")) - before; got != 3 {
		t.Errorf("unmatched count delta = %v, want 3", got)
	}
}

func TestPrometheusMetrics_WithoutRouter(t *testing.T) {
	t.Parallel()

	handler := PrometheusMetrics(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("Hello"))
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/plain", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("Expected default status 200, got %d", rec.Code)
	}
}

func TestMetricsResponseWriter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		codes []int
		want  int
	}{
		{"single", []int{http.StatusCreated}, http.StatusCreated},
		{"first wins", []int{http.StatusNotFound, http.StatusOK}, http.StatusNotFound},
		{"none", nil, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rw := &metricsResponseWriter{ResponseWriter: httptest.NewRecorder(), statusCode: http.StatusOK}
			for _, c := range tt.codes {
				rw.WriteHeader(c)
			}
			if rw.statusCode != tt.want {
				t.Errorf("statusCode = %d, want %d", rw.statusCode, tt.want)
			}
		})
	}
}
