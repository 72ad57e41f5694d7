// Package crypto exposes the small set of encoding and hashing helpers used by
// SafeLens.
//
// Contents
//
//   - Standard base64 encode/decode for stored audio payloads (B64, FromB64)
//   - BLAKE2b-256 digests recorded alongside evidence and checked on playback
//     (Digest, VerifyDigest)
//   - Short fingerprints of payloads for log lines (Fingerprint)
//
// # Notes
//
// Nothing here encrypts. Evidence is stored in the clear; the digest only
// makes accidental or deliberate modification visible.
package crypto
