// Menuboard - Restaurant Menu Administration
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuboard

package logging

import (
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// SecurityEvent is an authentication-relevant event destined for the audit trail.
type SecurityEvent struct {
	// Event is the event type, e.g. "login_success", "login_failed", "logout".
	Event string
	// SessionID is the session identifier; it is masked before writing.
	SessionID string
	// IPAddress is the client identity used for rate limiting.
	IPAddress string
	// UserAgent is truncated before writing.
	UserAgent string
	Success   bool
	// Reason explains a failure. Messages mentioning credentials are replaced.
	Reason string
}

// SecurityLogger writes authentication events with sensitive values masked.
type SecurityLogger struct {
	logger zerolog.Logger
}

// NewSecurityLogger creates a security logger on top of the global logger.
func NewSecurityLogger() *SecurityLogger {
	return &SecurityLogger{
		logger: With().Str("component", "auth").Logger(),
	}
}

// NewSecurityLoggerWithLogger creates a security logger with a custom zerolog logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewSecurityLoggerWithLogger(logger zerolog.Logger) *SecurityLogger {
	return &SecurityLogger{
		logger: logger.With().Str("component", "auth").Logger(),
	}
}

// LogEvent writes event. Failures are logged at warn level.
func (l *SecurityLogger) LogEvent(event *SecurityEvent) {
	var e *zerolog.Event
	status := "success"
	if event.Success {
		e = l.logger.Info()
	} else {
		e = l.logger.Warn()
		status = "failed"
	}

	e = e.Str("event", event.Event).Str("status", status)

	if event.SessionID != "" {
		e = e.Str("session_id", SanitizeSessionID(event.SessionID))
	}
	if event.IPAddress != "" {
		e = e.Str("ip", event.IPAddress)
	}
	if event.UserAgent != "" {
		e = e.Str("user_agent", truncateString(event.UserAgent, 100))
	}
	if event.Reason != "" && !event.Success {
		e = e.Str("reason", SanitizeError(event.Reason))
	}

	e.Msg("")
}

// LogLoginSuccess records a successful admin login.
func (l *SecurityLogger) LogLoginSuccess(sessionID, ip, userAgent string) {
	l.LogEvent(&SecurityEvent{
		Event:     "login_success",
		SessionID: sessionID,
		IPAddress: ip,
		UserAgent: userAgent,
		Success:   true,
	})
}

// LogLoginFailure records a rejected login attempt.
func (l *SecurityLogger) LogLoginFailure(ip, userAgent, reason string) {
	l.LogEvent(&SecurityEvent{
		Event:     "login_failed",
		IPAddress: ip,
		UserAgent: userAgent,
		Reason:    reason,
	})
}

// LogLoginThrottled records a login attempt refused by the attempt limiter.
func (l *SecurityLogger) LogLoginThrottled(ip string, retryAfter time.Duration) {
	l.logger.Warn().
		Str("event", "login_throttled").
		Str("status", "failed").
		Str("ip", ip).
		Dur("retry_after", retryAfter).
		Msg("")
}

// LogLogout records a session teardown.
func (l *SecurityLogger) LogLogout(sessionID, ip string) {
	l.LogEvent(&SecurityEvent{
		Event:     "logout",
		SessionID: sessionID,
		IPAddress: ip,
		Success:   true,
	})
}

// SanitizeSessionID masks a session ID, keeping the first and last 4 characters.
// Example: "abc123def456789" -> "abc1...6789"
func SanitizeSessionID(sessionID string) string {
	if sessionID == "" {
		return ""
	}
	if len(sessionID) <= 12 {
		return "***"
	}
	return sessionID[:4] + "..." + sessionID[len(sessionID)-4:]
}

// SanitizeError replaces messages that mention credentials and truncates the rest.
func SanitizeError(msg string) string {
	lower := strings.ToLower(msg)
	for _, pattern := range []string{"password", "secret", "token", "cookie", "authorization"} {
		if strings.Contains(lower, pattern) {
			return "authentication error"
		}
	}
	return truncateString(msg, 200)
}

// SanitizeLogValue escapes control characters so client-supplied strings
// cannot forge log lines.
func SanitizeLogValue(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			const hex = "0123456789abcdef"
			b.WriteString(`\x`)
			b.WriteByte(hex[r>>4])
			b.WriteByte(hex[r&0x0F])
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
