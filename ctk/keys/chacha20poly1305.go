package keys

import "github.com/pmuens/ctk/ctk/ctkerr"

// ChaCha20Poly1305Parameters holds the Variant governing a ChaCha20-Poly1305
// key's output prefix. ChaCha20-Poly1305 mirrors XChaCha20Poly1305Parameters
// exactly; it exists as a distinct type only because spec.md §6 lists it as
// a separate registered key type with its own type URL and templates.
type ChaCha20Poly1305Parameters struct {
	variant Variant
}

// NewChaCha20Poly1305Parameters constructs Parameters for variant,
// rejecting VariantUnknown.
func NewChaCha20Poly1305Parameters(variant Variant) (*ChaCha20Poly1305Parameters, error) {
	if variant == VariantUnknown {
		return nil, ctkerr.ErrInvalidParameter
	}
	return &ChaCha20Poly1305Parameters{variant: variant}, nil
}

// Variant returns the parameters' output-prefix Variant.
func (p *ChaCha20Poly1305Parameters) Variant() Variant { return p.variant }

// HasIDRequirement reports whether p.Variant() requires a key id.
func (p *ChaCha20Poly1305Parameters) HasIDRequirement() bool { return p.variant.HasIDRequirement() }

// Equal reports whether p and other specify the same Variant.
func (p *ChaCha20Poly1305Parameters) Equal(other *ChaCha20Poly1305Parameters) bool {
	return other != nil && p.variant == other.variant
}

// ChaCha20Poly1305KeySize is the required length, in bytes, of a
// ChaCha20-Poly1305 key's secret material.
const ChaCha20Poly1305KeySize = 32

// ChaCha20Poly1305Key is a 32-byte ChaCha20-Poly1305 key, structurally
// identical to XChaCha20Poly1305Key.
type ChaCha20Poly1305Key struct {
	parameters   *ChaCha20Poly1305Parameters
	secret       SecretBytes
	idReq        uint32
	hasIDReq     bool
	outputPrefix []byte
}

// NewChaCha20Poly1305Key builds a key from secret, with the same
// invariants NewXChaCha20Poly1305Key enforces.
func NewChaCha20Poly1305Key(secret []byte, idRequirement *uint32, params *ChaCha20Poly1305Parameters, access Access) (*ChaCha20Poly1305Key, error) {
	if access == nil {
		return nil, ctkerr.ErrAccessDenied
	}
	if len(secret) != ChaCha20Poly1305KeySize {
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

	k := &ChaCha20Poly1305Key{parameters: params, secret: sb, hasIDReq: hasIDReq}
	if hasIDReq {
		k.idReq = *idRequirement
		k.outputPrefix = params.Variant().OutputPrefix(k.idReq)
	}
	return k, nil
}

// Parameters returns the key's Parameters.
func (k *ChaCha20Poly1305Key) Parameters() Parameters { return k.parameters }

// Material reports that a ChaCha20Poly1305Key is symmetric AEAD material.
func (k *ChaCha20Poly1305Key) Material() MaterialType { return MaterialSymmetric }

// IDRequirement returns the key's id, or (0, false) for a NoPrefix key.
func (k *ChaCha20Poly1305Key) IDRequirement() (uint32, bool) { return k.idReq, k.hasIDReq }

// OutputPrefix returns the key's precomputed wire prefix, nil for
// NoPrefix.
func (k *ChaCha20Poly1305Key) OutputPrefix() []byte { return k.outputPrefix }

// KeyBytes returns a defensive copy of the key's 32 secret bytes,
// provided access proves the caller holds a SecretKeyAccess token.
func (k *ChaCha20Poly1305Key) KeyBytes(access Access) [ChaCha20Poly1305KeySize]byte {
	return k.secret.Data(access)
}

// Equal reports whether k and other hold the same parameters, id
// requirement and secret bytes.
func (k *ChaCha20Poly1305Key) Equal(other *ChaCha20Poly1305Key) bool {
	if other == nil {
		return false
	}
	return k.parameters.Equal(other.parameters) &&
		k.hasIDReq == other.hasIDReq &&
		k.idReq == other.idReq &&
		k.secret.Equal(other.secret)
}
