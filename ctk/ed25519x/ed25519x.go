// Package ed25519x implements Ed25519 signing and verification as specified
// in https://datatracker.ietf.org/doc/html/rfc8032, using
// filippo.io/edwards25519 for scalar and point arithmetic over the
// edwards25519 curve and ctk/sha512x for hashing.
//
// No complete repo in this codebase's lineage implements edwards25519
// field/group arithmetic from scratch, so unlike ctk/chacha20 and
// ctk/poly1305 (hand-rolled from the teacher's structure), this package
// wires in the curve library crypto/ed25519 itself is built on rather than
// reimplementing scalar/point math with no grounding to imitate.
package ed25519x

import (
	"io"

	"filippo.io/edwards25519"

	"github.com/pmuens/ctk/ctk/bytesx"
	"github.com/pmuens/ctk/ctk/ctkerr"
	"github.com/pmuens/ctk/ctk/randx"
	"github.com/pmuens/ctk/ctk/sha512x"
)

// SeedSize is the size (in bytes) of an Ed25519 private key seed.
const SeedSize = 32

// PublicKeySize is the size (in bytes) of an Ed25519 public key.
const PublicKeySize = 32

// SignatureSize is the size (in bytes) of an Ed25519 signature.
const SignatureSize = 64

// GenerateKey creates a new Ed25519 seed from the process CSPRNG and
// returns it alongside the public key it derives.
func GenerateKey() (seed [SeedSize]byte, public [PublicKeySize]byte) {
	copy(seed[:], randx.Bytes(SeedSize))
	return seed, PublicFromSeed(seed)
}

// DeriveKey consumes exactly SeedSize bytes from stream to use as a seed,
// returning ctkerr.ErrInsufficientRandomness if the stream yields fewer.
// Everything past the read is identical to GenerateKey.
func DeriveKey(stream io.Reader) (seed [SeedSize]byte, public [PublicKeySize]byte, err error) {
	if _, err := io.ReadFull(stream, seed[:]); err != nil {
		return seed, public, ctkerr.ErrInsufficientRandomness
	}
	return seed, PublicFromSeed(seed), nil
}

// PublicFromSeed derives the public key for a seed without allocating a
// full expanded key; it is the same expand-and-clamp step Sign performs.
func PublicFromSeed(seed [SeedSize]byte) [PublicKeySize]byte {
	a, _ := expand(seed)

	var public [PublicKeySize]byte
	copy(public[:], new(edwards25519.Point).ScalarBaseMult(a).Bytes())
	return public
}

// Sign produces a deterministic RFC 8032 Ed25519 signature of msg under
// the private key derived from seed.
func Sign(seed [SeedSize]byte, msg []byte) [SignatureSize]byte {
	a, prefix := expand(seed)
	public := new(edwards25519.Point).ScalarBaseMult(a).Bytes()

	rDigest := sha512x.Sum512(bytesx.Concat(prefix, msg))
	r, err := new(edwards25519.Scalar).SetUniformBytes(rDigest[:])
	if err != nil {
		// SetUniformBytes only fails when its input isn't exactly 64
		// bytes; rDigest always is.
		panic(err)
	}
	R := new(edwards25519.Point).ScalarBaseMult(r).Bytes()

	kDigest := sha512x.Sum512(bytesx.Concat(R, public, msg))
	k, err := new(edwards25519.Scalar).SetUniformBytes(kDigest[:])
	if err != nil {
		panic(err)
	}

	s := new(edwards25519.Scalar).MultiplyAdd(k, a, r)

	var sig [SignatureSize]byte
	copy(sig[0:32], R)
	copy(sig[32:64], s.Bytes())
	return sig
}

// Verify reports whether sig is a valid Ed25519 signature of msg under
// public, using the cofactored verification equation
// [8*S]*B == [8]*R + [8*k]*A so small-order signature or key components
// don't produce inconsistent accept/reject results across implementations.
// It returns ctkerr.ErrInvalidSignature for any failure, without
// distinguishing a malformed encoding from a mismatched signature.
func Verify(public [PublicKeySize]byte, msg []byte, sig [SignatureSize]byte) error {
	R := sig[0:32]

	s, err := new(edwards25519.Scalar).SetCanonicalBytes(sig[32:64])
	if err != nil {
		return ctkerr.ErrInvalidSignature
	}

	Rpoint, err := new(edwards25519.Point).SetBytes(R)
	if err != nil {
		return ctkerr.ErrInvalidSignature
	}

	Apoint, err := new(edwards25519.Point).SetBytes(public[:])
	if err != nil {
		return ctkerr.ErrInvalidSignature
	}

	kDigest := sha512x.Sum512(bytesx.Concat(R, public[:], msg))
	k, err := new(edwards25519.Scalar).SetUniformBytes(kDigest[:])
	if err != nil {
		panic(err)
	}

	lhs := mulByCofactor(new(edwards25519.Point).ScalarBaseMult(s))

	kA := new(edwards25519.Point).ScalarMult(k, Apoint)
	rhs := mulByCofactor(new(edwards25519.Point).Add(Rpoint, kA))

	if lhs.Equal(rhs) != 1 {
		return ctkerr.ErrInvalidSignature
	}
	return nil
}

// expand hashes seed with SHA-512 and splits the result into the clamped
// scalar a and the 32-byte nonce prefix RFC 8032 §5.1.5 steps 1-2 call for.
func expand(seed [SeedSize]byte) (a *edwards25519.Scalar, prefix []byte) {
	digest := sha512x.Sum512(seed[:])

	a, err := new(edwards25519.Scalar).SetBytesWithClamping(digest[0:32])
	if err != nil {
		// SetBytesWithClamping only fails on a wrong-length input;
		// digest[0:32] is always 32 bytes.
		panic(err)
	}
	return a, digest[32:64]
}

// mulByCofactor returns [8]*p via three doublings, the cofactor multiplication
// the cofactored verification equation needs.
func mulByCofactor(p *edwards25519.Point) *edwards25519.Point {
	p2 := new(edwards25519.Point).Add(p, p)
	p4 := new(edwards25519.Point).Add(p2, p2)
	return new(edwards25519.Point).Add(p4, p4)
}
