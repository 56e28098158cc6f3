// Package keyset implements ctk's multi-key container: the ordered list
// of key entries a PrimitiveSet is built from, and the validation
// invariants spec.md §4.5 requires before a Keyset may be used.
package keyset

import "github.com/pmuens/ctk/ctk/keys"

// Status mirrors spec.md §3's KeyStatus.
type Status int

const (
	// StatusUnknown is the zero value; no valid Entry carries it.
	StatusUnknown Status = iota
	// StatusEnabled marks a key usable for decrypt/verify, and for
	// encrypt/sign if it is also the keyset's primary.
	StatusEnabled
	// StatusDisabled marks a key present but unusable.
	StatusDisabled
	// StatusDestroyed marks a key whose material has been removed; only
	// its id and status remain meaningful.
	StatusDestroyed
)

// Entry is one key within a Keyset: the key material itself, its status,
// the id it was registered under, and the output prefix type its wire
// prefix should be computed from.
//
// OutputPrefixType is carried on the entry rather than read off Key.
// Parameters().Variant() because, per spec.md §4.7's LEGACY-parsing
// quirk, a LEGACY entry's Key carries VariantCrunchy (LEGACY and CRUNCHY
// share identical per-key crypto) while the entry's own
// OutputPrefixType remains VariantLegacy so the wrapper can still apply
// the LEGACY data-suffix.
type Entry struct {
	Key              keys.Key
	Status           Status
	KeyID            uint32
	OutputPrefixType keys.Variant
}

// Keyset is an ordered list of Entry values with one designated primary.
type Keyset struct {
	PrimaryKeyID uint32
	Entries      []Entry
}
