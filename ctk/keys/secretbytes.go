package keys

import "github.com/pmuens/ctk/ctk/bytesx"

// SecretBytes is an opaque 32-byte buffer holding secret key material.
// Its zero value is 32 zero bytes, not "empty" — callers always go through
// NewSecretBytes.
type SecretBytes struct {
	b [32]byte
}

// SecretBytesSize is the fixed size (in bytes) a SecretBytes holds.
const SecretBytesSize = 32

// NewSecretBytes copies b into a new SecretBytes, returning false if b is
// not exactly SecretBytesSize bytes long.
func NewSecretBytes(b []byte) (SecretBytes, bool) {
	var s SecretBytes
	if len(b) != SecretBytesSize {
		return s, false
	}
	copy(s.b[:], b)
	return s, true
}

// Equal reports whether two SecretBytes hold the same bytes, comparing in
// constant time.
func (s SecretBytes) Equal(other SecretBytes) bool {
	return bytesx.ConstantTimeEqual(s.b[:], other.b[:])
}

// Data returns a defensive copy of the secret bytes, provided access
// proves the caller holds a SecretKeyAccess token. It panics if access is
// the zero value (nil): extraction without a token is a programming
// error, not a runtime condition callers should need to branch on, the
// same way the teacher's packages panic on internal invariant violations
// rather than threading an error return through every call site.
func (s SecretBytes) Data(access Access) [SecretBytesSize]byte {
	if access == nil {
		panic("keys: SecretBytes.Data called without a SecretKeyAccess token")
	}
	var out [SecretBytesSize]byte
	copy(out[:], s.b[:])
	return out
}

// Access is the capability token spec.md §6 calls SecretKeyAccess: a value
// that must be presented to read or write a Key's secret bytes. It carries
// no state; its only purpose is to exist or not at a call site, so that an
// access-control review can grep for who holds one.
type Access interface {
	secretKeyAccess()
}

type insecureAccess struct{}

func (insecureAccess) secretKeyAccess() {}

// InsecureAccess is the "insecure" token spec.md §6 exposes for tests and
// internal code that must bypass the access-audit invariant, e.g. the
// primitive wrapper reading a key it just validated out of a Keyset it
// owns.
var InsecureAccess Access = insecureAccess{}
