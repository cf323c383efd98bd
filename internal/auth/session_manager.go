// Menuboard - Restaurant Menu Administration
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuboard

package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/menuboard/internal/logging"
	"github.com/tomtom215/menuboard/internal/models"
)

// DefaultCookieName is the session cookie name.
const DefaultCookieName = "menuboard_session"

type contextKey string

const sessionContextKey contextKey = "session"

// SessionManagerConfig holds configuration for the session manager.
type SessionManagerConfig struct {
	// CookieName is the name of the session cookie.
	CookieName string

	// SessionTTL is the inactivity timeout.
	SessionTTL time.Duration

	// SlidingSession extends the expiry on every authenticated request.
	SlidingSession bool

	// CookiePath is the path for the session cookie.
	CookiePath string

	// CookieSecure sets the Secure flag on the cookie.
	CookieSecure bool

	// CookieSameSite sets the SameSite attribute.
	CookieSameSite http.SameSite
}

// DefaultSessionManagerConfig returns sensible defaults.
func DefaultSessionManagerConfig() *SessionManagerConfig {
	return &SessionManagerConfig{
		CookieName:     DefaultCookieName,
		SessionTTL:     24 * time.Hour,
		SlidingSession: true,
		CookiePath:     "/",
		CookieSecure:   true,
		CookieSameSite: http.SameSiteLaxMode,
	}
}

// SessionManager issues, resolves and destroys admin sessions.
type SessionManager struct {
	store  SessionStore
	signer *CookieSigner
	config SessionManagerConfig
	now    func() time.Time
}

// NewSessionManager creates a new session manager.
func NewSessionManager(store SessionStore, signer *CookieSigner, config *SessionManagerConfig) *SessionManager {
	if config == nil {
		config = DefaultSessionManagerConfig()
	}
	cfg := *config
	if cfg.CookieName == "" {
		cfg.CookieName = DefaultCookieName
	}
	if cfg.CookiePath == "" {
		cfg.CookiePath = "/"
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 24 * time.Hour
	}
	if cfg.CookieSameSite == 0 {
		cfg.CookieSameSite = http.SameSiteLaxMode
	}

	return &SessionManager{
		store:  store,
		signer: signer,
		config: cfg,
		now:    time.Now,
	}
}

// Store returns the underlying session store.
func (m *SessionManager) Store() SessionStore {
	return m.store
}

// CookieName returns the configured session cookie name.
func (m *SessionManager) CookieName() string {
	return m.config.CookieName
}

// Authenticate is a middleware that resolves the session cookie. If it names
// a live authenticated session, the session is placed in the request context
// and, for sliding sessions, its expiry is extended. Otherwise the request
// continues anonymously.
func (m *SessionManager) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := m.lookup(r)
		if session == nil {
			next.ServeHTTP(w, r)
			return
		}

		if m.config.SlidingSession {
			newExpiry := m.now().Add(m.config.SessionTTL)
			if err := m.store.Touch(r.Context(), session.ID, newExpiry); err != nil {
				logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to touch session")
			} else {
				session.ExpiresAt = newExpiry
				m.setCookie(w, session.ID)
			}
		}

		ctx := context.WithValue(r.Context(), sessionContextKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth is a middleware that requires a valid session.
// Requests without one get 401 and never reach next.
func (m *SessionManager) RequireAuth(next http.Handler) http.Handler {
	return m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if SessionFromContext(r.Context()) == nil {
			writeUnauthorized(w, r)
			return
		}
		next.ServeHTTP(w, r)
	}))
}

// IsAuthenticated reports whether r carries a live authenticated session.
// It does not create, extend or otherwise modify any session.
func (m *SessionManager) IsAuthenticated(r *http.Request) bool {
	if s := SessionFromContext(r.Context()); s != nil {
		return true
	}
	return m.lookup(r) != nil
}

// StartSession creates a fresh authenticated session and sets its cookie.
// Any session named by the request's cookie is deleted first so a session id
// fixed before login never becomes authenticated.
func (m *SessionManager) StartSession(ctx context.Context, w http.ResponseWriter, r *http.Request, clientIP string) (*Session, error) {
	if oldID, ok := m.cookieSessionID(r); ok {
		if err := m.store.Delete(ctx, oldID); err != nil {
			logging.Ctx(ctx).Warn().Err(err).Msg("Failed to delete previous session")
		}
	}

	session, err := NewSession(m.now(), m.config.SessionTTL)
	if err != nil {
		return nil, err
	}
	session.ClientIP = clientIP

	if err := m.store.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	m.setCookie(w, session.ID)
	return session, nil
}

// EndSession deletes the request's session, if any, and always clears the
// cookie. It returns the id of the deleted session ("" when there was none).
func (m *SessionManager) EndSession(ctx context.Context, w http.ResponseWriter, r *http.Request) (string, error) {
	id, ok := m.cookieSessionID(r)
	if ok {
		if err := m.store.Delete(ctx, id); err != nil {
			return id, fmt.Errorf("delete session: %w", err)
		}
	}
	m.clearCookie(w)
	return id, nil
}

// lookup returns the live authenticated session named by the request cookie.
func (m *SessionManager) lookup(r *http.Request) *Session {
	id, ok := m.cookieSessionID(r)
	if !ok {
		return nil
	}

	session, err := m.store.Get(r.Context(), id)
	if err != nil {
		if !errors.Is(err, ErrSessionNotFound) && !errors.Is(err, ErrSessionExpired) {
			logging.Ctx(r.Context()).Error().Err(err).Msg("Session lookup error")
		}
		return nil
	}
	if !session.Authenticated || session.IsExpiredAt(m.now()) {
		return nil
	}
	return session
}

// cookieSessionID extracts and verifies the session id from the cookie.
func (m *SessionManager) cookieSessionID(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(m.config.CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return m.signer.Verify(cookie.Value)
}

func (m *SessionManager) setCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.config.CookieName,
		Value:    m.signer.Sign(id),
		Path:     m.config.CookiePath,
		MaxAge:   int(m.config.SessionTTL.Seconds()),
		Secure:   m.config.CookieSecure,
		HttpOnly: true,
		SameSite: m.config.CookieSameSite,
	})
}

func (m *SessionManager) clearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.config.CookieName,
		Value:    "",
		Path:     m.config.CookiePath,
		MaxAge:   -1,
		Secure:   m.config.CookieSecure,
		HttpOnly: true,
		SameSite: m.config.CookieSameSite,
	})
}

// SessionFromContext returns the session placed by Authenticate, or nil.
func SessionFromContext(ctx context.Context) *Session {
	if s, ok := ctx.Value(sessionContextKey).(*Session); ok {
		return s
	}
	return nil
}

func writeUnauthorized(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(models.ErrorResponse{Message: "Unauthorized"}); err != nil {
		logging.Error().Err(err).Msg("Error encoding unauthorized response")
	}
}
