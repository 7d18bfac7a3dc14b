// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"strings"
	"testing"
)

func TestGenerateSessionID(t *testing.T) {
	id1 := GenerateSessionID()
	id2 := GenerateSessionID()
	if len(id1) != 36 {
		t.Errorf("GenerateSessionID() length = %d, want 36", len(id1))
	}
	if id1 == id2 {
		t.Error("GenerateSessionID() produced duplicate IDs (extremely unlikely)")
	}
}

func TestGenerateSessionKey(t *testing.T) {
	tests := []struct {
		name      string
		sessionID string
		salt      string
	}{
		{"standard", "session123", "secret-salt"},
		{"empty session id", "", "salt"},
		{"empty salt", "session456", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := GenerateSessionKey(tt.sessionID, tt.salt)

			if key == "" {
				t.Error("GenerateSessionKey() returned empty string")
			}

			// Should be deterministic
			if key2 := GenerateSessionKey(tt.sessionID, tt.salt); key != key2 {
				t.Error("GenerateSessionKey() is not deterministic")
			}

			if tt.sessionID != "" && tt.salt != "" {
				if other := GenerateSessionKey(tt.sessionID+"x", tt.salt); key == other {
					t.Error("GenerateSessionKey() produced same key for different session IDs")
				}
			}

			// Should be URL-safe (no padding)
			if strings.Contains(key, "=") {
				t.Error("GenerateSessionKey() contains padding characters")
			}
		})
	}
}

func TestValidateSessionKey(t *testing.T) {
	sessionID := "test-session-123"
	salt := "test-salt"
	validKey := GenerateSessionKey(sessionID, salt)

	tests := []struct {
		name      string
		sessionID string
		key       string
		salt      string
		wantErr   bool
	}{
		{"valid key", sessionID, validKey, salt, false},
		{"wrong key", sessionID, "wrong-key", salt, true},
		{"wrong session id", "different-session", validKey, salt, true},
		{"wrong salt", sessionID, validKey, "different-salt", true},
		{"empty key", sessionID, "", salt, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSessionKey(tt.sessionID, tt.key, tt.salt)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSessionKey() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && err != ErrInvalidSessionKey {
				t.Errorf("ValidateSessionKey() error = %v, want %v", err, ErrInvalidSessionKey)
			}
		})
	}
}

func TestClientID(t *testing.T) {
	id := GenerateClientID()
	if err := ValidateClientID(id); err != nil {
		t.Errorf("ValidateClientID(%q) error = %v", id, err)
	}
	if err := ValidateClientID("not-a-uuid"); err != ErrInvalidClientID {
		t.Errorf("ValidateClientID() error = %v, want %v", err, ErrInvalidClientID)
	}
}

func TestHashIP(t *testing.T) {
	tests := []struct {
		name string
		ip   string
		salt string
	}{
		{"IPv4", "192.168.1.1", "ip-salt"},
		{"IPv6", "2001:0db8:85a3::8a2e:0370:7334", "ip-salt"},
		{"localhost", "127.0.0.1", "ip-salt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash := HashIP(tt.ip, tt.salt)

			if len(hash) != 16 {
				t.Errorf("HashIP() length = %d, want 16", len(hash))
			}
			for _, c := range hash {
				if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
					t.Errorf("HashIP() contains invalid hex char: %c", c)
				}
			}
			if hash2 := HashIP(tt.ip, tt.salt); hash != hash2 {
				t.Error("HashIP() is not deterministic")
			}
		})
	}

	if HashIP("192.168.1.1", "salt") == HashIP("192.168.1.2", "salt") {
		t.Error("HashIP() produced same hash for different IPs")
	}
	if HashIP("192.168.1.1", "salt1") == HashIP("192.168.1.1", "salt2") {
		t.Error("HashIP() produced same hash for different salts")
	}
}

func BenchmarkGenerateSessionKey(b *testing.B) {
	sessionID := "test-session-123"
	salt := "test-salt"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GenerateSessionKey(sessionID, salt)
	}
}
