// Menuboard - Restaurant Menu Administration
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuboard

/*
Package api provides the HTTP surface of Menuboard, routed with chi.

Routes:

	POST   /api/auth/login    login-limited; sets the session cookie
	POST   /api/auth/logout   deletes the session and clears the cookie
	GET    /api/auth/status   {"isAuthenticated": bool}, never touches the session
	GET    /api/menu          session required; full menu
	POST   /api/menu          session required; create item
	PUT    /api/menu/{id}     session required; replace item
	DELETE /api/menu/{id}     session required; delete item
	GET    /data.json         public menu feed, never cached
	GET    /health            liveness
	GET    /metrics           Prometheus exposition

Every /api route and /data.json share one per-client request budget
(go-chi/httprate). Login additionally has its own failed-attempt limiter.
With TrustProxy set, chi's RealIP middleware makes the forwarded client
address the rate-limit identity.

Request bodies may be JSON or application/x-www-form-urlencoded and are
capped at 100 KiB. Failures use one envelope:

	{"success": false, "message": "...", "errors": [{"field": "...", "message": "..."}]}

Internal error detail goes to the log only.
*/
package api
