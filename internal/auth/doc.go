// Menuboard - Restaurant Menu Administration
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuboard

/*
Package auth provides admin authentication for Menuboard.

There is a single administrator identified by a shared password. A successful
login creates a server-side session and hands the browser a signed cookie that
names it. Protected routes require that cookie to resolve to a live,
authenticated session.

Key Components:

  - PasswordVerifier: bcrypt comparison against the configured admin password
  - CookieSigner: HMAC-SHA256 signing of session ids, key derived with HKDF
  - SessionStore: session persistence (MemorySessionStore, BadgerSessionStore)
  - SessionManager: cookie handling, Authenticate/RequireAuth middleware,
    session start (with fixation protection) and teardown
  - LoginLimiter: fixed-window cap on failed login attempts per client

Session Lifecycle:

	Anonymous --(password match)--> Authenticated
	Authenticated --(logout | inactivity timeout)--> Anonymous

Each authenticated request slides the expiry forward by the session TTL.
Reading the login status never creates or extends a session.

Usage Example:

	verifier, err := auth.NewPasswordVerifier(cfg.Security.AdminPassword, bcrypt.DefaultCost)
	signer, err := auth.NewCookieSigner(cfg.Security.SessionSecret)

	factory, err := auth.NewSessionStoreFactory(auth.SessionStoreBadger, cfg.Security.SessionStorePath)
	defer factory.Close()

	sessions := auth.NewSessionManager(factory.CreateStore(), signer, &auth.SessionManagerConfig{
	    CookieName:     auth.DefaultCookieName,
	    SessionTTL:     24 * time.Hour,
	    SlidingSession: true,
	    CookieSecure:   cfg.IsProduction(),
	})

	r.With(sessions.RequireAuth).Get("/api/menu", handler.ListItems)

Login Throttling:

LoginLimiter counts failed attempts per client key in a fixed window. Once the
cap is reached every further attempt is refused with a retry delay until the
window ends, before the password is even compared. Successful logins are not
counted.

Thread Safety:

All exported types are safe for concurrent use.
*/
package auth
