package registry

import (
	"sync"

	"github.com/pmuens/ctk/ctk/ctkerr"
	"github.com/pmuens/ctk/ctk/keys"
)

// serializeFunc turns a typed Key into its raw canonical key material.
// access is required whenever the key's material is secret.
type serializeFunc func(key keys.Key, access keys.Access) ([]byte, error)

// parseFunc turns raw canonical key material back into a typed Key.
// variant is the entry's OutputPrefixType after the LEGACY-to-CRUNCHY
// quirk has already been applied by Parse. access is required whenever
// the key's material is secret.
type parseFunc func(material []byte, idRequirement *uint32, variant keys.Variant, access keys.Access) (keys.Key, error)

type registration struct {
	serialize serializeFunc
	parse     parseFunc
}

var (
	mu    sync.RWMutex
	byURL = make(map[string]registration)
)

// Register associates typeURL with the given serialize/parse pair.
// Registering the same typeURL twice with equal functions is a no-op;
// spec.md §5 calls this out explicitly as allowed and idempotent. This
// implementation doesn't compare function identity (Go funcs aren't
// comparable) — it simply overwrites, which is indistinguishable from a
// no-op for same-shaped re-registration and is how every caller in this
// module uses it (once, from init).
func Register(typeURL string, serialize serializeFunc, parse parseFunc) {
	mu.Lock()
	defer mu.Unlock()
	byURL[typeURL] = registration{serialize: serialize, parse: parse}
}

func lookup(typeURL string) (registration, bool) {
	mu.RLock()
	defer mu.RUnlock()
	r, ok := byURL[typeURL]
	return r, ok
}

// Serialize builds the canonical KeySerialization for key under
// outputPrefixType, returning ctkerr.ErrSerializationError if no
// serializer is registered for typeURL.
func Serialize(typeURL string, key keys.Key, outputPrefixType keys.Variant, access keys.Access) (*KeySerialization, error) {
	r, ok := lookup(typeURL)
	if !ok {
		return nil, ctkerr.ErrSerializationError
	}

	material, err := r.serialize(key, access)
	if err != nil {
		return nil, err
	}

	idReq, hasIDReq := key.IDRequirement()
	var idReqPtr *uint32
	if hasIDReq {
		idReqPtr = &idReq
	}

	return &KeySerialization{
		TypeURL:          typeURL,
		OutputPrefixType: outputPrefixType,
		IDRequirement:    idReqPtr,
		KeyMaterial:      material,
	}, nil
}

// Parse rebuilds the typed Key a KeySerialization was produced from,
// returning ctkerr.ErrSerializationError if no parser is registered for
// its type URL.
//
// It implements spec.md §4.7's LEGACY-parsing quirk: a LEGACY
// OutputPrefixType is mapped to VariantCrunchy before the per-key parser
// runs, since LEGACY and CRUNCHY share identical per-key cryptographic
// behavior — LEGACY is distinguished only by the wrapper's data-suffix,
// which Parse has no part in.
func Parse(ks *KeySerialization, access keys.Access) (keys.Key, error) {
	r, ok := lookup(ks.TypeURL)
	if !ok {
		return nil, ctkerr.ErrSerializationError
	}

	variant := ks.OutputPrefixType
	if variant == keys.VariantLegacy {
		variant = keys.VariantCrunchy
	}

	return r.parse(ks.KeyMaterial, ks.IDRequirement, variant, access)
}
