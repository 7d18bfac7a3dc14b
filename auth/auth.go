// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidSessionKey = errors.New("invalid session key")
	ErrInvalidClientID   = errors.New("invalid client id")
)

// GenerateSessionID creates a random session identifier
func GenerateSessionID() string {
	return uuid.NewString()
}

// GenerateSessionKey creates an HMAC-based key for a session.
// This is deterministic and verifiable, so keys are never stored.
func GenerateSessionKey(sessionID, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(sessionID))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner keys
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateSessionKey checks if the provided key is valid for the session
func ValidateSessionKey(sessionID, key, salt string) error {
	expected := GenerateSessionKey(sessionID, salt)
	if !hmac.Equal([]byte(key), []byte(expected)) {
		return ErrInvalidSessionKey
	}
	return nil
}

// GenerateClientID creates the idempotency key a client keeps across
// sessions to prevent submitting twice.
func GenerateClientID() string {
	return uuid.NewString()
}

// ValidateClientID accepts any UUID the client persisted earlier
func ValidateClientID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidClientID
	}
	return nil
}

// HashIP creates a one-way hash of an IP address for privacy
// Includes salt to prevent rainbow table attacks
func HashIP(ip, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	sum := h.Sum(nil)
	// Return first 16 hex chars (64 bits) - enough for log correlation
	return hex.EncodeToString(sum[:8])
}
