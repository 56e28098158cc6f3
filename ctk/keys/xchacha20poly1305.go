package keys

import "github.com/pmuens/ctk/ctk/ctkerr"

// XChaCha20Poly1305Parameters holds the Variant governing an
// XChaCha20-Poly1305 key's output prefix.
type XChaCha20Poly1305Parameters struct {
	variant Variant
}

// NewXChaCha20Poly1305Parameters constructs Parameters for variant,
// rejecting VariantUnknown.
func NewXChaCha20Poly1305Parameters(variant Variant) (*XChaCha20Poly1305Parameters, error) {
	if variant == VariantUnknown {
		return nil, ctkerr.ErrInvalidParameter
	}
	return &XChaCha20Poly1305Parameters{variant: variant}, nil
}

// Variant returns the parameters' output-prefix Variant.
func (p *XChaCha20Poly1305Parameters) Variant() Variant { return p.variant }

// HasIDRequirement reports whether p.Variant() requires a key id, i.e.
// spec.md §3's `hasIdRequirement = (Variant != NO_PREFIX)`.
func (p *XChaCha20Poly1305Parameters) HasIDRequirement() bool { return p.variant.HasIDRequirement() }

// Equal reports whether p and other specify the same Variant.
func (p *XChaCha20Poly1305Parameters) Equal(other *XChaCha20Poly1305Parameters) bool {
	return other != nil && p.variant == other.variant
}

// XChaCha20Poly1305KeySize is the required length, in bytes, of an
// XChaCha20-Poly1305 key's secret material.
const XChaCha20Poly1305KeySize = 32

// XChaCha20Poly1305Key is a 32-byte XChaCha20-Poly1305 key together with
// its Parameters and, for non-NoPrefix variants, the key id its wire
// prefix is derived from.
type XChaCha20Poly1305Key struct {
	parameters   *XChaCha20Poly1305Parameters
	secret       SecretBytes
	idReq        uint32
	hasIDReq     bool
	outputPrefix []byte
}

// NewXChaCha20Poly1305Key builds a key from secret, validating spec.md
// §3's invariants: secret must be exactly XChaCha20Poly1305KeySize bytes,
// a NoPrefix variant must be built with idRequirement == nil, and every
// other variant must be built with one.
//
// access must be presented because constructing a Key necessarily reads
// secret's bytes into the new key's own SecretBytes.
func NewXChaCha20Poly1305Key(secret []byte, idRequirement *uint32, params *XChaCha20Poly1305Parameters, access Access) (*XChaCha20Poly1305Key, error) {
	if access == nil {
		return nil, ctkerr.ErrAccessDenied
	}
	if len(secret) != XChaCha20Poly1305KeySize {
		return nil, ctkerr.ErrInvalidKeyLength
	}
	if params == nil {
		return nil, ctkerr.ErrInvalidParameter
	}

	hasIDReq := idRequirement != nil
	if hasIDReq != params.HasIDRequirement() {
		return nil, ctkerr.ErrInvalidParameter
	}

	sb, ok := NewSecretBytes(secret)
	if !ok {
		return nil, ctkerr.ErrInvalidKeyLength
	}

	k := &XChaCha20Poly1305Key{
		parameters: params,
		secret:     sb,
		hasIDReq:   hasIDReq,
	}
	if hasIDReq {
		k.idReq = *idRequirement
		k.outputPrefix = params.Variant().OutputPrefix(k.idReq)
	}
	return k, nil
}

// Parameters returns the key's Parameters.
func (k *XChaCha20Poly1305Key) Parameters() Parameters { return k.parameters }

// Material reports that an XChaCha20Poly1305Key is symmetric AEAD
// material.
func (k *XChaCha20Poly1305Key) Material() MaterialType { return MaterialSymmetric }

// IDRequirement returns the key's id, or (0, false) for a NoPrefix key.
func (k *XChaCha20Poly1305Key) IDRequirement() (uint32, bool) { return k.idReq, k.hasIDReq }

// OutputPrefix returns the key's precomputed wire prefix, nil for
// NoPrefix.
func (k *XChaCha20Poly1305Key) OutputPrefix() []byte { return k.outputPrefix }

// KeyBytes returns a defensive copy of the key's 32 secret bytes,
// provided access proves the caller holds a SecretKeyAccess token.
func (k *XChaCha20Poly1305Key) KeyBytes(access Access) [XChaCha20Poly1305KeySize]byte {
	return k.secret.Data(access)
}

// Equal reports whether k and other hold the same parameters, id
// requirement and secret bytes.
func (k *XChaCha20Poly1305Key) Equal(other *XChaCha20Poly1305Key) bool {
	if other == nil {
		return false
	}
	return k.parameters.Equal(other.parameters) &&
		k.hasIDReq == other.hasIDReq &&
		k.idReq == other.idReq &&
		k.secret.Equal(other.secret)
}
