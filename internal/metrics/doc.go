// Menuboard - Restaurant Menu Administration
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuboard

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered on the default registry through promauto and are
exposed in Prometheus text format at /metrics:

	curl http://localhost:3000/metrics

# Available Metrics

HTTP:
  - api_requests_total{method, endpoint, status_code}
  - api_request_duration_seconds{method, endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{limiter}

Menu store:
  - menu_store_operation_duration_seconds{operation}
  - menu_store_errors_total{operation, error_type}
  - menu_items
  - menu_mutations_total{operation, outcome}

Authentication:
  - auth_login_attempts_total{outcome}
  - auth_active_sessions
  - auth_sessions_expired_total

System:
  - app_info{version, go_version}
  - app_uptime_seconds

# Usage

	start := time.Now()
	err := writeFile()
	metrics.RecordStoreOperation("write", time.Since(start), err)

Endpoint labels use the chi route pattern (e.g. /api/menu/{id}), never the raw
path, so label cardinality stays bounded.
*/
package metrics
