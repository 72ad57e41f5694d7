package crypto

import (
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Digest returns the hex BLAKE2b-256 of b.
func Digest(b []byte) string {
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// VerifyDigest reports whether b hashes to want. An empty want always
// verifies so that entries written before digests existed stay readable.
func VerifyDigest(b []byte, want string) bool {
	if want == "" {
		return true
	}
	got := Digest(b)
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}

// Fingerprint returns a short hex fingerprint of b for logs.
//
// It truncates the BLAKE2b-256 digest to 10 bytes (20 hex chars).
func Fingerprint(b []byte) string {
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:10])
}
