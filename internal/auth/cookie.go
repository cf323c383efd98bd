// Menuboard - Restaurant Menu Administration
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuboard

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/hkdf"
)

const (
	// cookieSigningSalt binds derived keys to this application.
	cookieSigningSalt = "menuboard-session-cookie"

	// cookieSigningInfo is the HKDF info parameter for key derivation.
	cookieSigningInfo = "session-cookie-hmac-v1"

	signingKeySize = 32
)

// ErrEmptySecret is returned when no session secret is configured.
var ErrEmptySecret = errors.New("session secret cannot be empty")

// CookieSigner signs session ids so a client cannot forge or alter them.
// Signed values have the form "<id>.<base64url(HMAC-SHA256(id))>".
type CookieSigner struct {
	key []byte
}

// NewCookieSigner derives an HMAC key from secret using HKDF-SHA256.
func NewCookieSigner(secret string) (*CookieSigner, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	hkdfReader := hkdf.New(
		sha256.New,
		[]byte(secret),
		[]byte(cookieSigningSalt),
		[]byte(cookieSigningInfo),
	)

	key := make([]byte, signingKeySize)
	if _, err := io.ReadFull(hkdfReader, key); err != nil {
		return nil, fmt.Errorf("failed to read HKDF output: %w", err)
	}

	return &CookieSigner{key: key}, nil
}

// Sign returns the cookie value for id.
func (s *CookieSigner) Sign(id string) string {
	return id + "." + base64.RawURLEncoding.EncodeToString(s.mac(id))
}

// Verify returns the session id carried by value if its signature is valid.
func (s *CookieSigner) Verify(value string) (string, bool) {
	dot := strings.LastIndexByte(value, '.')
	if dot <= 0 || dot == len(value)-1 {
		return "", false
	}

	id := value[:dot]
	sig, err := base64.RawURLEncoding.DecodeString(value[dot+1:])
	if err != nil {
		return "", false
	}

	if !hmac.Equal(sig, s.mac(id)) {
		return "", false
	}
	return id, true
}

func (s *CookieSigner) mac(id string) []byte {
	h := hmac.New(sha256.New, s.key)
	h.Write([]byte(id))
	return h.Sum(nil)
}
