// Package bytesx collects the small byte-level helpers ctk's packages reuse:
// constant-time comparison, little/big-endian prefix encoding, and the
// length-suffix + AAD padding math the AEAD and signature wrappers need.
package bytesx

import (
	"crypto/subtle"
	"encoding/binary"
)

// ConstantTimeEqual reports whether a and b hold the same bytes, in time
// independent of where they first differ. Unequal lengths short-circuit
// (the length of a MAC or signature is not secret).
func ConstantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}

// XOR writes dst[i] = a[i] ^ b[i] for the overlapping prefix of a and b,
// returning the number of bytes written.
func XOR(dst, a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if len(dst) < n {
		n = len(dst)
	}
	for i := 0; i < n; i++ {
		dst[i] = a[i] ^ b[i]
	}
	return n
}

// Concat returns the concatenation of every slice in parts as a single
// freshly allocated slice.
func Concat(parts ...[]byte) []byte {
	total := 0
	for _, p := range parts {
		total += len(p)
	}
	out := make([]byte, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// PutUint32BE appends the big-endian encoding of v to dst.
func PutUint32BE(dst []byte, v uint32) []byte {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	return append(dst, buf[:]...)
}

// PutUint64LE appends the little-endian encoding of v to dst.
func PutUint64LE(dst []byte, v uint64) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return append(dst, buf[:]...)
}

// Pad16 returns the zero bytes needed to bring n up to the next multiple
// of 16, as required by the AEAD MAC input construction (RFC 8439 §2.8).
func Pad16(n int) []byte {
	rem := n % 16
	if rem == 0 {
		return nil
	}
	return make([]byte, 16-rem)
}
