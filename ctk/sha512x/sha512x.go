// Package sha512x gives ctk's Ed25519 implementation the Update/Reset/Digest
// vocabulary its design calls for, over Go's standard library SHA-512.
//
// No example repo in this codebase's lineage reimplements SHA-512 by hand;
// every crypto-domain package reaches for crypto/sha512 directly, so this
// is a thin wrapper rather than a from-scratch digest.
package sha512x

import (
	"crypto/sha512"
	"hash"
)

// Digest is a stateful SHA-512 instance.
type Digest struct {
	h hash.Hash
}

// New creates a new, empty Digest.
func New() *Digest {
	return &Digest{h: sha512.New()}
}

// Update feeds more data into the digest. It never returns an error;
// hash.Hash.Write is documented to never fail.
func (d *Digest) Update(p []byte) {
	_, _ = d.h.Write(p)
}

// Reset clears the digest back to its initial state.
func (d *Digest) Reset() {
	d.h.Reset()
}

// Sum returns the 64-byte SHA-512 digest of everything written so far,
// without mutating the digest's state.
func (d *Digest) Sum() [64]byte {
	var out [64]byte
	copy(out[:], d.h.Sum(nil))
	return out
}

// Sum512 is a one-shot convenience wrapper equivalent to creating a Digest,
// writing data once, and taking its Sum.
func Sum512(data []byte) [64]byte {
	return sha512.Sum512(data)
}
