// File: hash.go
// Title: SHA-256 Hashing Helpers
// Description: Thin convenience helpers over crypto/sha256 producing raw
//              digests and hex-encoded digests for byte and string input.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation with hashing helpers

package securityx

import (
	"crypto/sha256"

	"github.com/msto63/foundation/utils/encodingx"
)

// SHA256 returns the SHA-256 digest of data
func SHA256(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

// SHA256Hex returns the lower-case hex encoding of the SHA-256 digest of
// data
func SHA256Hex(data []byte) string {
	return encodingx.EncodeHex(SHA256(data))
}

// SHA256String returns the lower-case hex encoding of the SHA-256 digest
// of a string
func SHA256String(s string) string {
	return SHA256Hex([]byte(s))
}
