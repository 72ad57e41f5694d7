// Package memzero clears buffers that held recorded audio once they are no
// longer needed. Best-effort only: the runtime may already hold copies.
package memzero

import "crypto/subtle"

// Zero overwrites b with zeros.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	zero := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zero)
}

// Samples zeroes every PCM chunk in place.
func Samples(chunks [][]int) {
	for _, c := range chunks {
		clear(c)
	}
}
