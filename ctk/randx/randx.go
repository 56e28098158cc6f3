// Package randx is ctk's single source of cryptographically strong
// randomness, mirroring the small random-bytes helper every Tink-derived
// subtle package in this corpus wraps crypto/rand with (see the
// subtle/random.GetRandomBytes calls in the pack's tink-go reference
// files).
package randx

import (
	"crypto/rand"
	"fmt"
)

// Bytes returns n cryptographically random bytes. It panics if the
// system's CSPRNG fails to provide them, since that condition is fatal to
// every caller and not something application code can usefully recover
// from (matching crypto/rand.Read's own documented behavior).
func Bytes(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("randx: failed to read random bytes: %v", err))
	}
	return b
}

// Reader is the process-wide CSPRNG source. It is exposed so deriveKey-style
// callers can consume a caller-supplied pseudorandom stream instead of the
// system default, e.g. in tests.
var Reader = rand.Reader
