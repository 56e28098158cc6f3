// Package registry is ctk's process-wide, type-URL indexed serialization
// and key-template registry (spec.md §4.7): it parses and serializes keys
// to/from a canonical binary form, and builds the
// ctk/primitiveset.PrimitiveSet a ctk/aead or ctk/signature wrapper runs
// against from a validated ctk/keyset.Keyset.
//
// Registration happens once, in this package's init, for
// XChaCha20-Poly1305, ChaCha20-Poly1305 and Ed25519, keyed by type URL.
// Re-registering a type URL overwrites its entry, which changes nothing
// when the same functions are registered again. Lookups never mutate the
// registry and take a read lock, so concurrent reads are safe alongside a
// later Register call.
package registry

// Type URLs per spec.md §6.
const (
	TypeURLXChaCha20Poly1305 = "type.googleapis.com/google.crypto.tink.XChaCha20Poly1305Key"
	TypeURLChaCha20Poly1305  = "type.googleapis.com/google.crypto.tink.ChaCha20Poly1305Key"
	TypeURLEd25519Private    = "type.googleapis.com/google.crypto.tink.Ed25519PrivateKey"
	TypeURLEd25519Public     = "type.googleapis.com/google.crypto.tink.Ed25519PublicKey"
)
