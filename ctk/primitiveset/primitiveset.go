// Package primitiveset implements ctk's PrimitiveSet[T]: the per-key
// primitive index spec.md §3 and §4.6 describe, bucketed by the 5-byte
// wire prefix derived from each key's (Variant, id), with a separate
// bucket for RAW (NoPrefix) primitives and at most one designated primary
// entry.
//
// A PrimitiveSet is built once by ctk/registry from a validated Keyset
// and is immutable thereafter; concurrent reads (Primary, EntriesForPrefix,
// RawEntries) are safe without additional locking.
package primitiveset

import (
	"github.com/pmuens/ctk/ctk/ctkerr"
	"github.com/pmuens/ctk/ctk/keys"
	"github.com/pmuens/ctk/ctk/keyset"
)

// Entry pairs a built primitive of type T with the keyset metadata
// ctk/aead and ctk/signature's wrappers need to drive prefix-dispatched
// encrypt/decrypt and sign/verify.
type Entry[T any] struct {
	Primitive T
	Prefix    []byte
	KeyID     uint32
	Status    keyset.Status
	Variant   keys.Variant
}

// PrimitiveSet indexes primitives of type T by the 5-byte prefix derived
// from each entry's (Variant, KeyID), per spec.md §4.6.
type PrimitiveSet[T any] struct {
	byPrefix map[string][]*Entry[T]
	raw      []*Entry[T]
	primary  *Entry[T]
}

// New returns an empty, mutable PrimitiveSet. Builders (ctk/registry) call
// Add for every entry in registration order and then treat the result as
// immutable.
func New[T any]() *PrimitiveSet[T] {
	return &PrimitiveSet[T]{byPrefix: make(map[string][]*Entry[T])}
}

// Add registers primitive for entry, bucketing it by prefix (or as RAW if
// entry's Variant is NoPrefix). If isPrimary is true, primitive becomes
// the set's primary entry; calling Add with isPrimary twice returns
// ctkerr.ErrInvalidKeyset, since a PrimitiveSet holds at most one primary.
func (ps *PrimitiveSet[T]) Add(primitive T, e keyset.Entry, isPrimary bool) (*Entry[T], error) {
	if isPrimary && ps.primary != nil {
		return nil, ctkerr.ErrInvalidKeyset
	}

	prefix := e.OutputPrefixType.OutputPrefix(e.KeyID)
	entry := &Entry[T]{
		Primitive: primitive,
		Prefix:    prefix,
		KeyID:     e.KeyID,
		Status:    e.Status,
		Variant:   e.OutputPrefixType,
	}

	if len(prefix) == 0 {
		ps.raw = append(ps.raw, entry)
	} else {
		ps.byPrefix[string(prefix)] = append(ps.byPrefix[string(prefix)], entry)
	}

	if isPrimary {
		ps.primary = entry
	}
	return entry, nil
}

// Primary returns the set's primary entry and true, or (nil, false) if
// none was added.
func (ps *PrimitiveSet[T]) Primary() (*Entry[T], bool) {
	return ps.primary, ps.primary != nil
}

// EntriesForPrefix returns the entries registered under prefix, in
// registration order, or nil if none match. Multiple entries may share a
// prefix (spec.md §4.6: two keys with the same id and variant are
// permitted); decrypt/verify try each in order.
func (ps *PrimitiveSet[T]) EntriesForPrefix(prefix []byte) []*Entry[T] {
	return ps.byPrefix[string(prefix)]
}

// RawEntries returns every entry with Variant == VariantNoPrefix, in
// registration order.
func (ps *PrimitiveSet[T]) RawEntries() []*Entry[T] {
	return ps.raw
}
