// Menuboard - Restaurant Menu Administration
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuboard

package api

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/crypto/bcrypt"

	"github.com/tomtom215/menuboard/internal/auth"
	"github.com/tomtom215/menuboard/internal/logging"
	"github.com/tomtom215/menuboard/internal/menu"
	"github.com/tomtom215/menuboard/internal/models"
	"github.com/tomtom215/menuboard/internal/store"
	"github.com/tomtom215/menuboard/internal/validation"
)

const testPassword = "correct horse battery staple"

// testServerOptions tweaks the stack built by newTestServer.
type testServerOptions struct {
	menu       MenuService
	middleware *ChiMiddlewareConfig
	trustProxy bool
	limiter    *auth.LoginLimiterConfig
}

// testServer is a full router behind httptest.Server with a cookie-keeping client.
type testServer struct {
	*httptest.Server
	client   *http.Client
	dataPath string
}

func newTestServer(t *testing.T, opts testServerOptions) *testServer {
	t.Helper()

	dataPath := filepath.Join(t.TempDir(), "data.json")
	svc := opts.menu
	if svc == nil {
		fs, err := store.NewFileStore(dataPath)
		if err != nil {
			t.Fatalf("NewFileStore: %v", err)
		}
		svc = menu.NewService(fs, menu.Config{})
	}

	signer, err := auth.NewCookieSigner("test-secret-with-enough-entropy-000000")
	if err != nil {
		t.Fatalf("NewCookieSigner: %v", err)
	}
	sessions := auth.NewSessionManager(auth.NewMemorySessionStore(), signer, &auth.SessionManagerConfig{
		SessionTTL:     time.Hour,
		SlidingSession: true,
		CookieSecure:   false,
	})

	password, err := auth.NewPasswordVerifier(testPassword, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("NewPasswordVerifier: %v", err)
	}

	limiterCfg := opts.limiter
	if limiterCfg == nil {
		limiterCfg = auth.DefaultLoginLimiterConfig()
	}

	mw := opts.middleware
	if mw == nil {
		mw = DefaultChiMiddlewareConfig()
		mw.RateLimitDisabled = true
	}

	handler := NewHandler(HandlerDeps{
		Menu:     svc,
		Items:    validation.NewItemValidator(nil),
		Sessions: sessions,
		Password: password,
		Limiter:  auth.NewLoginLimiter(auth.NewMemoryAttemptStore(), limiterCfg),
		Security: logging.NewSecurityLoggerWithLogger(logging.NewTestLogger(io.Discard)),
	})
	router := NewRouter(handler, sessions, RouterConfig{TrustProxy: opts.trustProxy, Middleware: mw})

	srv := httptest.NewServer(router.SetupChi())
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar.New: %v", err)
	}

	return &testServer{
		Server:   srv,
		client:   &http.Client{Jar: jar, Timeout: 10 * time.Second},
		dataPath: dataPath,
	}
}

// do sends a request with an optional JSON body and returns the response
// with its body fully read.
func (s *testServer) do(t *testing.T, method, path string, body interface{}, header http.Header) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	contentType := ""
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
		contentType = "application/json"
	default:
		data, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(context.Background(), method, s.URL+path, reader)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for k, v := range header {
		req.Header[k] = v
	}

	resp, err := s.client.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, data
}

func (s *testServer) login(t *testing.T) {
	t.Helper()
	resp, body := s.do(t, http.MethodPost, "/api/auth/login", map[string]string{"password": testPassword}, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: status %d, body %s", resp.StatusCode, body)
	}
}

func decodeJSON(t *testing.T, data []byte, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(data, v); err != nil {
		t.Fatalf("unmarshal %s: %v", data, err)
	}
}

// stubMenu is a MenuService whose behaviour is set per test.
type stubMenu struct {
	list   func() (models.Collection, error)
	create func(models.MenuItem) (models.MenuItem, error)
	update func(int, models.MenuItem) (models.MenuItem, error)
	delete func(int) error
}

func (s *stubMenu) List(context.Context) (models.Collection, error) {
	return s.list()
}

func (s *stubMenu) Create(_ context.Context, item models.MenuItem) (models.MenuItem, error) {
	return s.create(item)
}

func (s *stubMenu) Update(_ context.Context, id int, item models.MenuItem) (models.MenuItem, error) {
	return s.update(id, item)
}

func (s *stubMenu) Delete(_ context.Context, id int) error {
	return s.delete(id)
}
