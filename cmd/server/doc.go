// Menuboard - Restaurant Menu Administration
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuboard

/*
Package main is the entry point for the Menuboard server.

Menuboard serves a restaurant's menu as JSON for a public page and exposes a
small password-protected API for adding, editing and removing menu items. The
menu lives in a single JSON file that is replaced atomically on every change.

# Application Architecture

Long-running components run under a Suture v4 supervisor tree:

	RootSupervisor ("menuboard")
	├── MaintenanceSupervisor ("maintenance-layer")
	│   └── Janitor (expired sessions, login windows, uptime gauge)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Component initialization order:

 1. Configuration: Koanf v2 with defaults, config file and environment variables
 2. Logging: zerolog, bridged to slog for the supervisor
 3. Menu store: flat JSON file behind the menu service
 4. Authentication: bcrypt password check, signed session cookie, login limiter
 5. HTTP router: chi with request IDs, metrics, CORS and per-client rate limiting
 6. Supervisor tree: started last, stopped on SIGINT or SIGTERM

# Configuration

Required:

	SESSION_SECRET   secret for signing the session cookie (32+ chars in production)
	ADMIN_PASSWORD   the single admin password (at most 72 bytes)

Common:

	HTTP_PORT / PORT         listen port (default 3000)
	ENVIRONMENT / NODE_ENV   development, staging or production
	DATA_FILE                menu file (default data.json)
	SESSION_STORE            memory or badger
	TRUST_PROXY              derive the client IP from forwarded headers
	CORS_ORIGINS             comma-separated allowed origins

# Example Usage

	export SESSION_SECRET=$(openssl rand -base64 32)
	export ADMIN_PASSWORD=secure-password
	./menuboard

# Signal Handling

On SIGINT or SIGTERM the HTTP server stops accepting connections and waits
for in-flight requests, then the session store is closed.
*/
package main
