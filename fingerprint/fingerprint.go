// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package fingerprint

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
)

// HashTokens creates an order-sensitive hash of an input sequence.
// Each token is length-prefixed so ["ab","c"] and ["a","bc"] differ.
func HashTokens(tokens []string) string {
	h := sha256.New()
	var lenBuf [8]byte
	for _, token := range tokens {
		binary.BigEndian.PutUint64(lenBuf[:], uint64(len(token)))
		h.Write(lenBuf[:])
		h.Write([]byte(token))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// HashIP creates a one-way hash of an IP address for privacy
// Includes salt to prevent rainbow table attacks
func HashIP(ip, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	sum := h.Sum(nil)
	// Return first 16 hex chars (64 bits) - enough for deduplication
	return hex.EncodeToString(sum[:8])
}
