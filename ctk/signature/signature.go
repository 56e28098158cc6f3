// Package signature implements ctk's Tink-style digital signature
// capability: per-key Ed25519 sign/verify primitives, and wrappers that
// dispatch across a ctk/primitiveset.PrimitiveSet by the 5-byte wire
// prefix spec.md §4.6 describes.
package signature

import (
	"github.com/pmuens/ctk/ctk/bytesx"
	"github.com/pmuens/ctk/ctk/ctkerr"
	"github.com/pmuens/ctk/ctk/ed25519x"
	"github.com/pmuens/ctk/ctk/keys"
	"github.com/pmuens/ctk/ctk/primitiveset"
)

// Signer is the capability a per-key signing primitive and SignWrapper
// both implement.
type Signer interface {
	Sign(data []byte) ([]byte, error)
}

// Verifier is the capability a per-key verification primitive and
// VerifyWrapper both implement.
type Verifier interface {
	Verify(signature, data []byte) error
}

type signPrimitive struct {
	seed [ed25519x.SeedSize]byte
}

// NewSignPrimitive builds the per-key Signer for key, extracting its seed
// bytes via access.
func NewSignPrimitive(key *keys.Ed25519PrivateKey, access keys.Access) (Signer, error) {
	if access == nil {
		return nil, ctkerr.ErrAccessDenied
	}
	return &signPrimitive{seed: key.SeedBytes(access)}, nil
}

func (p *signPrimitive) Sign(data []byte) ([]byte, error) {
	sig := ed25519x.Sign(p.seed, data)
	return sig[:], nil
}

type verifyPrimitive struct {
	public [ed25519x.PublicKeySize]byte
}

// NewVerifyPrimitive builds the per-key Verifier for key. Public key
// material carries no access control.
func NewVerifyPrimitive(key *keys.Ed25519PublicKey) Verifier {
	return &verifyPrimitive{public: key.KeyBytes()}
}

func (p *verifyPrimitive) Verify(signature, data []byte) error {
	if len(signature) != ed25519x.SignatureSize {
		return ctkerr.ErrInvalidSignature
	}
	var sig [ed25519x.SignatureSize]byte
	copy(sig[:], signature)
	return ed25519x.Verify(p.public, data, sig)
}

// SignWrapper dispatches Sign to its PrimitiveSet's primary entry,
// prepending the primary's output prefix, per spec.md §4.6.
type SignWrapper struct {
	set *primitiveset.PrimitiveSet[Signer]
}

// NewSignWrapper builds a SignWrapper over set.
func NewSignWrapper(set *primitiveset.PrimitiveSet[Signer]) *SignWrapper {
	return &SignWrapper{set: set}
}

// Sign returns the primary key's output prefix followed by its raw
// Ed25519 signature of data, returning ctkerr.ErrMissingPrimary if the
// set has no primary.
func (w *SignWrapper) Sign(data []byte) ([]byte, error) {
	primary, ok := w.set.Primary()
	if !ok {
		return nil, ctkerr.ErrMissingPrimary
	}

	raw, err := primary.Primitive.Sign(legacyData(primary.Variant, data))
	if err != nil {
		return nil, err
	}
	return bytesx.Concat(primary.Prefix, raw), nil
}

// VerifyWrapper dispatches Verify across candidates selected by a
// signature's 5-byte wire prefix, per spec.md §4.6.
type VerifyWrapper struct {
	set *primitiveset.PrimitiveSet[Verifier]
}

// NewVerifyWrapper builds a VerifyWrapper over set.
func NewVerifyWrapper(set *primitiveset.PrimitiveSet[Verifier]) *VerifyWrapper {
	return &VerifyWrapper{set: set}
}

// Verify tries, in order, every entry registered under sig's 5-byte
// prefix and then every RAW entry, succeeding if any candidate verifies.
// It returns ctkerr.ErrInvalidSignature if every candidate fails, without
// revealing which keys were tried.
func (w *VerifyWrapper) Verify(sig, data []byte) error {
	if len(sig) > 5 {
		prefix, body := sig[:5], sig[5:]
		for _, entry := range w.set.EntriesForPrefix(prefix) {
			if err := entry.Primitive.Verify(body, legacyData(entry.Variant, data)); err == nil {
				return nil
			}
		}
	}

	for _, entry := range w.set.RawEntries() {
		if err := entry.Primitive.Verify(sig, data); err == nil {
			return nil
		}
	}

	return ctkerr.ErrInvalidSignature
}

// legacyData implements spec.md §6's legacy authentication rule: a LEGACY
// entry signs/verifies data‖0x00 instead of data unchanged.
func legacyData(variant keys.Variant, data []byte) []byte {
	if variant != keys.VariantLegacy {
		return data
	}
	return bytesx.Concat(data, []byte{0x00})
}
