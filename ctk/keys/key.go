package keys

// MaterialType classifies a Key's content for keyset validation purposes:
// spec.md §4.5's "all ENABLED entries are ASYMMETRIC_PUBLIC" check needs
// to tell a public verification key apart from a private signing key or a
// symmetric AEAD key without a type switch on every concrete Key type.
type MaterialType int

const (
	// MaterialUnknown is the zero value; no constructed Key reports it.
	MaterialUnknown MaterialType = iota
	// MaterialSymmetric is AEAD key material (XChaCha20Poly1305Key).
	MaterialSymmetric
	// MaterialAsymmetricPrivate is a signing key (Ed25519PrivateKey).
	MaterialAsymmetricPrivate
	// MaterialAsymmetricPublic is a verification key (Ed25519PublicKey).
	MaterialAsymmetricPublic
)

// Parameters is the capability every *Parameters type in this package
// implements: it knows its Variant and therefore whether it carries an id
// requirement.
type Parameters interface {
	Variant() Variant
	HasIDRequirement() bool
}

// Key is the capability every key type in this package implements: enough
// for ctk/keyset validation and ctk/primitiveset's prefix bucketing to
// treat XChaCha20Poly1305Key, Ed25519PublicKey and Ed25519PrivateKey
// uniformly.
type Key interface {
	Parameters() Parameters
	Material() MaterialType
	// IDRequirement returns the key's id and true, or (0, false) if the
	// key's Variant is NoPrefix and therefore carries no id.
	IDRequirement() (uint32, bool)
	// OutputPrefix returns the key's precomputed 5-byte wire prefix, or
	// nil for NoPrefix keys.
	OutputPrefix() []byte
}
