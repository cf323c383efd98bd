// Menuboard - Restaurant Menu Administration
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuboard

package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes is the longest password bcrypt can compare.
const MaxPasswordBytes = 72

// PasswordVerifier checks candidate passwords against the admin password.
type PasswordVerifier struct {
	passwordHash []byte // bcrypt hash of password
}

// NewPasswordVerifier hashes password once so each login only pays for a
// comparison. cost of 0 selects bcrypt.DefaultCost.
func NewPasswordVerifier(password string, cost int) (*PasswordVerifier, error) {
	if password == "" {
		return nil, errors.New("admin password is required")
	}
	if len(password) > MaxPasswordBytes {
		return nil, fmt.Errorf("admin password must be at most %d bytes", MaxPasswordBytes)
	}
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	return &PasswordVerifier{passwordHash: hash}, nil
}

// Verify reports whether candidate matches. Empty and over-long candidates
// never match.
func (v *PasswordVerifier) Verify(candidate string) bool {
	if candidate == "" || len(candidate) > MaxPasswordBytes {
		return false
	}
	// bcrypt.CompareHashAndPassword is constant-time
	return bcrypt.CompareHashAndPassword(v.passwordHash, []byte(candidate)) == nil
}
