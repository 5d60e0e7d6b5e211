// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"strings"
	"testing"
)

func TestGenerateID(t *testing.T) {
	tests := []struct {
		name    string
		byteLen int
		wantLen int // hex encoded length = byteLen * 2
	}{
		{"8 bytes", 8, 16},
		{"16 bytes", 16, 32},
		{"24 bytes", 24, 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := GenerateID(tt.byteLen)
			if err != nil {
				t.Fatalf("GenerateID() error = %v", err)
			}
			if len(id) != tt.wantLen {
				t.Errorf("GenerateID() length = %d, want %d", len(id), tt.wantLen)
			}
			// Verify it's valid hex
			for _, c := range id {
				if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
					t.Errorf("GenerateID() contains invalid hex char: %c", c)
				}
			}
		})
	}

	// Test randomness - two IDs should be different
	id1, _ := GenerateID(16)
	id2, _ := GenerateID(16)
	if id1 == id2 {
		t.Error("GenerateID() produced duplicate IDs (extremely unlikely)")
	}
}

func TestGenerateClientToken(t *testing.T) {
	token, err := GenerateClientToken()
	if err != nil {
		t.Fatalf("GenerateClientToken() error = %v", err)
	}

	if token == "" {
		t.Fatal("GenerateClientToken() returned empty token")
	}

	// 24 bytes base64-encoded without padding = 32 characters
	if len(token) != 32 {
		t.Errorf("GenerateClientToken() length = %d, want 32", len(token))
	}

	if strings.ContainsAny(token, "=+/") {
		t.Errorf("GenerateClientToken() not URL-safe: %q", token)
	}

	// Two tokens should differ
	token2, _ := GenerateClientToken()
	if token == token2 {
		t.Error("GenerateClientToken() produced duplicate tokens (extremely unlikely)")
	}
}

func TestHashIP(t *testing.T) {
	hash1 := HashIP("192.168.1.1", "salt")
	hash2 := HashIP("192.168.1.1", "salt")

	// Deterministic for the same input and salt
	if hash1 != hash2 {
		t.Error("HashIP() not deterministic")
	}

	// 8 bytes hex-encoded = 16 characters
	if len(hash1) != 16 {
		t.Errorf("HashIP() length = %d, want 16", len(hash1))
	}

	// Different IPs produce different hashes
	if HashIP("192.168.1.2", "salt") == hash1 {
		t.Error("HashIP() collision for different IPs")
	}

	// Different salts produce different hashes
	if HashIP("192.168.1.1", "other-salt") == hash1 {
		t.Error("HashIP() ignores salt")
	}
}
