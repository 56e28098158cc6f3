// Package keys holds ctk's typed key and parameter objects: the Variant
// enum governing output-prefix encoding, SecretBytes and its capability
// token, and the XChaCha20-Poly1305 and Ed25519 Parameters/Key types.
//
// This is ctk's rendering of the inheritance hierarchy spec.md §9 calls
// out (Key, AeadKey, SignaturePublicKey, ...): a small tagged Variant enum
// plus the capability interfaces (Parameters, Key) that ctk/aead,
// ctk/signature and ctk/registry depend on, rather than a class hierarchy.
package keys

// Variant selects a key's output-prefix discipline: whether and how a
// wire prefix is prepended to ciphertexts or signatures produced with it.
type Variant int

const (
	// VariantUnknown is the zero value. It is never a valid Variant on a
	// constructed Key; it exists so a KeysetEntry's output prefix type can
	// represent "not set" distinctly from any real variant (spec.md §4.5's
	// UNKNOWN_PREFIX).
	VariantUnknown Variant = iota

	// VariantTink prepends the 5-byte prefix 0x01‖big-endian(id).
	VariantTink

	// VariantCrunchy prepends the 5-byte prefix 0x00‖big-endian(id).
	VariantCrunchy

	// VariantLegacy prepends the same 5-byte prefix as Crunchy, but the
	// wrapper additionally authenticates data‖0x00 instead of data (see
	// ctk/signature and ctk/aead's legacy suffix handling).
	VariantLegacy

	// VariantNoPrefix ("RAW") prepends no prefix at all and carries no id
	// requirement.
	VariantNoPrefix
)

// String returns the Variant's name, matching the spec.md and Tink
// vocabulary (TINK, CRUNCHY, LEGACY, NO_PREFIX).
func (v Variant) String() string {
	switch v {
	case VariantTink:
		return "TINK"
	case VariantCrunchy:
		return "CRUNCHY"
	case VariantLegacy:
		return "LEGACY"
	case VariantNoPrefix:
		return "NO_PREFIX"
	default:
		return "UNKNOWN_PREFIX"
	}
}

// HasIDRequirement reports whether keys of this Variant must carry a key
// id, i.e. every Variant except NoPrefix.
func (v Variant) HasIDRequirement() bool {
	return v != VariantNoPrefix
}

// OutputPrefix computes the 5-byte wire prefix for a (Variant, id) pair
// per spec.md §4.6: version_byte‖big-endian(id), with version 0x01 for
// Tink and 0x00 for Crunchy/Legacy, or no prefix at all for NoPrefix.
func (v Variant) OutputPrefix(id uint32) []byte {
	var version byte
	switch v {
	case VariantTink:
		version = 0x01
	case VariantCrunchy, VariantLegacy:
		version = 0x00
	default:
		return nil
	}

	return []byte{
		version,
		byte(id >> 24),
		byte(id >> 16),
		byte(id >> 8),
		byte(id),
	}
}
