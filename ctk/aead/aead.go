// Package aead implements ctk's Tink-style AEAD capability: a per-key
// primitive wrapping ctk/subtle/xchacha20poly1305, and a Wrapper that
// dispatches encrypt/decrypt across a ctk/primitiveset.PrimitiveSet by
// the 5-byte wire prefix spec.md §4.6 describes.
package aead

import (
	"github.com/pmuens/ctk/ctk/bytesx"
	"github.com/pmuens/ctk/ctk/ctkerr"
	"github.com/pmuens/ctk/ctk/keys"
	"github.com/pmuens/ctk/ctk/primitiveset"
	"github.com/pmuens/ctk/ctk/subtle/chacha20poly1305"
	"github.com/pmuens/ctk/ctk/subtle/xchacha20poly1305"
)

// Aead is the capability a per-key primitive and the Wrapper both
// implement: encrypt and authenticate, or verify and decrypt.
type Aead interface {
	Encrypt(plaintext, aad []byte) ([]byte, error)
	Decrypt(ciphertext, aad []byte) ([]byte, error)
}

// keyPrimitive is the per-key Aead built from a single
// keys.XChaCha20Poly1305Key's secret bytes.
type keyPrimitive struct {
	key [xchacha20poly1305.KeySize]byte
}

// NewPrimitive builds the per-key Aead for key, extracting its secret
// bytes via access.
func NewPrimitive(key *keys.XChaCha20Poly1305Key, access keys.Access) (Aead, error) {
	if access == nil {
		return nil, ctkerr.ErrAccessDenied
	}
	return &keyPrimitive{key: key.KeyBytes(access)}, nil
}

func (p *keyPrimitive) Encrypt(plaintext, aad []byte) ([]byte, error) {
	return xchacha20poly1305.Seal(p.key, plaintext, aad), nil
}

func (p *keyPrimitive) Decrypt(ciphertext, aad []byte) ([]byte, error) {
	return xchacha20poly1305.Open(p.key, ciphertext, aad)
}

// chaCha20Poly1305Primitive is the per-key Aead built from a single
// keys.ChaCha20Poly1305Key, used by the non-extended-nonce templates
// (CHACHA20_POLY1305, CHACHA20_POLY1305_RAW).
type chaCha20Poly1305Primitive struct {
	key [chacha20poly1305.KeySize]byte
}

// NewChaCha20Poly1305Primitive builds the per-key Aead for key, extracting
// its secret bytes via access.
func NewChaCha20Poly1305Primitive(key *keys.ChaCha20Poly1305Key, access keys.Access) (Aead, error) {
	if access == nil {
		return nil, ctkerr.ErrAccessDenied
	}
	return &chaCha20Poly1305Primitive{key: key.KeyBytes(access)}, nil
}

func (p *chaCha20Poly1305Primitive) Encrypt(plaintext, aad []byte) ([]byte, error) {
	return chacha20poly1305.Seal(p.key, plaintext, aad), nil
}

func (p *chaCha20Poly1305Primitive) Decrypt(ciphertext, aad []byte) ([]byte, error) {
	return chacha20poly1305.Open(p.key, ciphertext, aad)
}

// Wrapper dispatches Encrypt to the PrimitiveSet's primary entry and
// Decrypt across candidates selected by wire prefix, per spec.md §4.6.
type Wrapper struct {
	set *primitiveset.PrimitiveSet[Aead]
}

// NewWrapper builds a Wrapper over set.
func NewWrapper(set *primitiveset.PrimitiveSet[Aead]) *Wrapper {
	return &Wrapper{set: set}
}

// Encrypt authenticates plaintext and aad under the set's primary key and
// returns the primary's output prefix followed by the raw ciphertext,
// returning ctkerr.ErrMissingPrimary if the set has no primary (spec.md
// §9's "AeadWrapper encrypt without a primary key" open question: this
// condition is detected up front rather than left to a nil dereference).
func (w *Wrapper) Encrypt(plaintext, aad []byte) ([]byte, error) {
	primary, ok := w.set.Primary()
	if !ok {
		return nil, ctkerr.ErrMissingPrimary
	}

	raw, err := primary.Primitive.Encrypt(plaintext, legacyAAD(primary.Variant, aad))
	if err != nil {
		return nil, err
	}
	return bytesx.Concat(primary.Prefix, raw), nil
}

// Decrypt tries, in order, every entry registered under ciphertext's
// 5-byte prefix and then every RAW entry, returning the first successful
// decryption. It returns ctkerr.ErrDecryptionFailed if every candidate
// fails, without revealing which keys were tried.
func (w *Wrapper) Decrypt(ciphertext, aad []byte) ([]byte, error) {
	if len(ciphertext) > 5 {
		prefix, tail := ciphertext[:5], ciphertext[5:]
		for _, entry := range w.set.EntriesForPrefix(prefix) {
			pt, err := entry.Primitive.Decrypt(tail, legacyAAD(entry.Variant, aad))
			if err == nil {
				return pt, nil
			}
		}
	}

	for _, entry := range w.set.RawEntries() {
		pt, err := entry.Primitive.Decrypt(ciphertext, aad)
		if err == nil {
			return pt, nil
		}
	}

	return nil, ctkerr.ErrDecryptionFailed
}

// legacyAAD implements spec.md §6's legacy authentication rule: a LEGACY
// entry authenticates aad‖0x00 instead of aad unchanged.
func legacyAAD(variant keys.Variant, aad []byte) []byte {
	if variant != keys.VariantLegacy {
		return aad
	}
	return bytesx.Concat(aad, []byte{0x00})
}
