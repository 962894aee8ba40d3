// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package fingerprint provides deterministic hashes used by the submission history.

# Input Hashes

HashTokens identifies an input sequence without storing it twice:

	hash := fingerprint.HashTokens([]string{"a", "1"})

# Client IP Hashing

Client IPs are never stored raw:

	ipHash := fingerprint.HashIP(middleware.GetClientIP(r), cfg.IPHashSalt)
*/
package fingerprint
