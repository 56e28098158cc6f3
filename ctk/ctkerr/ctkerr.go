// Package ctkerr defines the sentinel errors shared across ctk's packages.
//
// Crypto failures are surfaced as one of these values (optionally wrapped
// with additional context via fmt.Errorf's %w) so callers can use
// errors.Is without depending on message text.
package ctkerr

import "errors"

var (
	// ErrInvalidKeyLength is returned when key material has the wrong size.
	ErrInvalidKeyLength = errors.New("ctk: invalid key length")

	// ErrInvalidParameter is returned when a Parameters/Key combination is
	// internally inconsistent, e.g. a Variant that disagrees with its id
	// requirement, or an unknown output prefix type.
	ErrInvalidParameter = errors.New("ctk: invalid parameter")

	// ErrDecryptionFailed covers AEAD tag mismatches, short ciphertexts, and
	// the case where no candidate key in a keyset decrypts successfully.
	ErrDecryptionFailed = errors.New("ctk: decryption failed")

	// ErrInvalidSignature covers malformed or non-verifying Ed25519
	// signatures, including the case where no candidate key verifies.
	ErrInvalidSignature = errors.New("ctk: invalid signature")

	// ErrInsufficientRandomness is returned when a pseudorandom stream
	// yields fewer bytes than a key derivation needs.
	ErrInsufficientRandomness = errors.New("ctk: insufficient randomness")

	// ErrAccessDenied is returned when a secret-only operation is attempted
	// without presenting a SecretKeyAccess token.
	ErrAccessDenied = errors.New("ctk: access denied")

	// ErrSerializationError covers type URL mismatches, wrong inner key
	// class, and malformed key bytes during parse/serialize.
	ErrSerializationError = errors.New("ctk: serialization error")

	// ErrUnknownKeyTemplate is returned by template lookups that miss.
	ErrUnknownKeyTemplate = errors.New("ctk: unknown key template")

	// ErrMissingPrimary is returned when a wrapper is asked to encrypt or
	// sign but its PrimitiveSet has no primary entry.
	ErrMissingPrimary = errors.New("ctk: keyset has no primary key")

	// ErrInvalidKeyset is returned by keyset validation failures not
	// covered by a more specific error above.
	ErrInvalidKeyset = errors.New("ctk: invalid keyset")
)
