package keys

import (
	"github.com/pmuens/ctk/ctk/ctkerr"
	"github.com/pmuens/ctk/ctk/ed25519x"
)

// Ed25519Parameters holds the Variant governing an Ed25519 key's output
// prefix.
type Ed25519Parameters struct {
	variant Variant
}

// NewEd25519Parameters constructs Parameters for variant, rejecting
// VariantUnknown.
func NewEd25519Parameters(variant Variant) (*Ed25519Parameters, error) {
	if variant == VariantUnknown {
		return nil, ctkerr.ErrInvalidParameter
	}
	return &Ed25519Parameters{variant: variant}, nil
}

// Variant returns the parameters' output-prefix Variant.
func (p *Ed25519Parameters) Variant() Variant { return p.variant }

// HasIDRequirement reports whether p.Variant() requires a key id.
func (p *Ed25519Parameters) HasIDRequirement() bool { return p.variant.HasIDRequirement() }

// Equal reports whether p and other specify the same Variant.
func (p *Ed25519Parameters) Equal(other *Ed25519Parameters) bool {
	return other != nil && p.variant == other.variant
}

// Ed25519PublicKey is a 32-byte Ed25519 public key together with its
// Parameters and, for non-NoPrefix variants, the key id its wire prefix is
// derived from.
type Ed25519PublicKey struct {
	parameters   *Ed25519Parameters
	key          [ed25519x.PublicKeySize]byte
	idReq        uint32
	hasIDReq     bool
	outputPrefix []byte
}

// NewEd25519PublicKey builds a public key from key, validating spec.md
// §3's invariants the same way NewXChaCha20Poly1305Key does for the
// symmetric case: exact length, and an id requirement consistent with the
// parameters' Variant.
func NewEd25519PublicKey(key []byte, idRequirement *uint32, params *Ed25519Parameters) (*Ed25519PublicKey, error) {
	if len(key) != ed25519x.PublicKeySize {
		return nil, ctkerr.ErrInvalidKeyLength
	}
	if params == nil {
		return nil, ctkerr.ErrInvalidParameter
	}

	hasIDReq := idRequirement != nil
	if hasIDReq != params.HasIDRequirement() {
		return nil, ctkerr.ErrInvalidParameter
	}

	pk := &Ed25519PublicKey{parameters: params, hasIDReq: hasIDReq}
	copy(pk.key[:], key)
	if hasIDReq {
		pk.idReq = *idRequirement
		pk.outputPrefix = params.Variant().OutputPrefix(pk.idReq)
	}
	return pk, nil
}

// Parameters returns the key's Parameters.
func (k *Ed25519PublicKey) Parameters() Parameters { return k.parameters }

// Material reports that an Ed25519PublicKey is asymmetric public
// material.
func (k *Ed25519PublicKey) Material() MaterialType { return MaterialAsymmetricPublic }

// IDRequirement returns the key's id, or (0, false) for a NoPrefix key.
func (k *Ed25519PublicKey) IDRequirement() (uint32, bool) { return k.idReq, k.hasIDReq }

// OutputPrefix returns the key's precomputed wire prefix, nil for
// NoPrefix.
func (k *Ed25519PublicKey) OutputPrefix() []byte { return k.outputPrefix }

// KeyBytes returns the raw 32-byte public key.
func (k *Ed25519PublicKey) KeyBytes() [ed25519x.PublicKeySize]byte { return k.key }

// Equal reports whether k and other hold the same parameters, id
// requirement and public key bytes.
func (k *Ed25519PublicKey) Equal(other *Ed25519PublicKey) bool {
	if other == nil {
		return false
	}
	return k.parameters.Equal(other.parameters) &&
		k.hasIDReq == other.hasIDReq &&
		k.idReq == other.idReq &&
		k.key == other.key
}

// Ed25519PrivateKey is a 32-byte Ed25519 seed together with a back
// reference to the Ed25519PublicKey it derives. spec.md §9 notes this is
// a DAG, not a cycle: the private key owns its public key, never the
// reverse.
type Ed25519PrivateKey struct {
	seed   SecretBytes
	public *Ed25519PublicKey
}

// NewEd25519PrivateKey builds a private key from seed and the
// Ed25519PublicKey it must derive, returning ctkerr.ErrInvalidParameter if
// the derived public key for seed does not match public.
//
// access must be presented because constructing a Key necessarily reads
// seed's bytes into the new key's own SecretBytes.
func NewEd25519PrivateKey(seed []byte, public *Ed25519PublicKey, access Access) (*Ed25519PrivateKey, error) {
	if access == nil {
		return nil, ctkerr.ErrAccessDenied
	}
	if len(seed) != ed25519x.SeedSize {
		return nil, ctkerr.ErrInvalidKeyLength
	}
	if public == nil {
		return nil, ctkerr.ErrInvalidParameter
	}

	var seedArr [ed25519x.SeedSize]byte
	copy(seedArr[:], seed)
	if ed25519x.PublicFromSeed(seedArr) != public.KeyBytes() {
		return nil, ctkerr.ErrInvalidParameter
	}

	sb, ok := NewSecretBytes(seed)
	if !ok {
		return nil, ctkerr.ErrInvalidKeyLength
	}
	return &Ed25519PrivateKey{seed: sb, public: public}, nil
}

// PublicKey returns the private key's back-referenced public key.
func (k *Ed25519PrivateKey) PublicKey() *Ed25519PublicKey { return k.public }

// Parameters delegates to the public key, per spec.md §3.
func (k *Ed25519PrivateKey) Parameters() Parameters { return k.public.Parameters() }

// Material reports that an Ed25519PrivateKey is asymmetric private
// material.
func (k *Ed25519PrivateKey) Material() MaterialType { return MaterialAsymmetricPrivate }

// IDRequirement delegates to the public key, per spec.md §3.
func (k *Ed25519PrivateKey) IDRequirement() (uint32, bool) { return k.public.IDRequirement() }

// OutputPrefix delegates to the public key, per spec.md §3.
func (k *Ed25519PrivateKey) OutputPrefix() []byte { return k.public.OutputPrefix() }

// SeedBytes returns a defensive copy of the private key's 32-byte seed,
// provided access proves the caller holds a SecretKeyAccess token.
func (k *Ed25519PrivateKey) SeedBytes(access Access) [ed25519x.SeedSize]byte {
	return k.seed.Data(access)
}

// Equal reports whether k and other hold the same seed bytes and the same
// public key.
func (k *Ed25519PrivateKey) Equal(other *Ed25519PrivateKey) bool {
	if other == nil {
		return false
	}
	return k.seed.Equal(other.seed) && k.public.Equal(other.public)
}
