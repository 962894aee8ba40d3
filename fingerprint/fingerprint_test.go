// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package fingerprint

import "testing"

func TestHashTokens(t *testing.T) {
	a := HashTokens([]string{"a", "1"})
	if len(a) != 64 {
		t.Errorf("Expected 64 hex chars, got %d", len(a))
	}

	if a != HashTokens([]string{"a", "1"}) {
		t.Error("HashTokens should be deterministic")
	}

	if a == HashTokens([]string{"1", "a"}) {
		t.Error("HashTokens should depend on order")
	}

	if HashTokens([]string{"ab", "c"}) == HashTokens([]string{"a", "bc"}) {
		t.Error("Token boundaries should change the hash")
	}

	if HashTokens(nil) != HashTokens([]string{}) {
		t.Error("nil and empty sequences should hash the same")
	}
}

func TestHashIP(t *testing.T) {
	ip := "192.168.1.1"
	salt := "test-salt"

	hash1 := HashIP(ip, salt)
	if len(hash1) != 16 {
		t.Errorf("Expected hash length 16, got %d", len(hash1))
	}

	if hash1 != HashIP(ip, salt) {
		t.Error("Same IP and salt should produce same hash")
	}

	if hash1 == HashIP("192.168.1.2", salt) {
		t.Error("Different IPs should produce different hashes")
	}

	if hash1 == HashIP(ip, "other-salt") {
		t.Error("Different salts should produce different hashes")
	}
}
