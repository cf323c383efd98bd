// Menuboard - Restaurant Menu Administration
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuboard

/*
Package middleware provides the HTTP middleware shared by every route.

Components:

  - RequestID: accepts or generates an X-Request-ID and seeds the logging context
  - PrometheusMetrics: request counts, latency and in-flight gauge per route pattern
  - Compression: gzip for clients that send Accept-Encoding: gzip
  - SecurityHeaders: nosniff, frame denial, referrer policy and HSTS over TLS

All middleware here has the func(http.HandlerFunc) http.HandlerFunc shape;
the api package adapts it to chi with a small wrapper:

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chiMiddleware(middleware.PrometheusMetrics))

See Also:

  - internal/api: router and handlers
  - internal/metrics: collector definitions
*/
package middleware
