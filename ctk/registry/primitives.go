package registry

import (
	"github.com/pmuens/ctk/ctk/aead"
	"github.com/pmuens/ctk/ctk/ctkerr"
	"github.com/pmuens/ctk/ctk/keys"
	"github.com/pmuens/ctk/ctk/keyset"
	"github.com/pmuens/ctk/ctk/primitiveset"
	"github.com/pmuens/ctk/ctk/signature"
)

// NewAead validates ks and builds an *aead.Wrapper over it: the
// ctk/primitiveset.PrimitiveSet[aead.Aead] spec.md §3 describes, built by
// the registry from a validated Keyset and immutable thereafter.
func NewAead(ks keyset.Keyset, access keys.Access) (*aead.Wrapper, error) {
	if err := keyset.Validate(ks); err != nil {
		return nil, err
	}

	set := primitiveset.New[aead.Aead]()
	for _, e := range ks.Entries {
		if e.Status != keyset.StatusEnabled {
			continue
		}

		var prim aead.Aead
		var err error
		switch k := e.Key.(type) {
		case *keys.XChaCha20Poly1305Key:
			prim, err = aead.NewPrimitive(k, access)
		case *keys.ChaCha20Poly1305Key:
			prim, err = aead.NewChaCha20Poly1305Primitive(k, access)
		default:
			err = ctkerr.ErrInvalidParameter
		}
		if err != nil {
			return nil, err
		}

		if _, err := set.Add(prim, e, e.KeyID == ks.PrimaryKeyID); err != nil {
			return nil, err
		}
	}

	return aead.NewWrapper(set), nil
}

// NewSigner validates ks and builds a *signature.SignWrapper over it.
// Every entry's Key must be an *keys.Ed25519PrivateKey.
func NewSigner(ks keyset.Keyset, access keys.Access) (*signature.SignWrapper, error) {
	if err := keyset.Validate(ks); err != nil {
		return nil, err
	}

	set := primitiveset.New[signature.Signer]()
	for _, e := range ks.Entries {
		if e.Status != keyset.StatusEnabled {
			continue
		}

		k, ok := e.Key.(*keys.Ed25519PrivateKey)
		if !ok {
			return nil, ctkerr.ErrInvalidParameter
		}
		signer, err := signature.NewSignPrimitive(k, access)
		if err != nil {
			return nil, err
		}
		if _, err := set.Add(signer, e, e.KeyID == ks.PrimaryKeyID); err != nil {
			return nil, err
		}
	}

	return signature.NewSignWrapper(set), nil
}

// NewVerifier validates ks and builds a *signature.VerifyWrapper over it.
// Entries may hold either an *keys.Ed25519PublicKey directly (a
// verify-only keyset) or an *keys.Ed25519PrivateKey (verification derived
// from the matching signing key).
func NewVerifier(ks keyset.Keyset) (*signature.VerifyWrapper, error) {
	if err := keyset.Validate(ks); err != nil {
		return nil, err
	}

	set := primitiveset.New[signature.Verifier]()
	for _, e := range ks.Entries {
		if e.Status != keyset.StatusEnabled {
			continue
		}

		var public *keys.Ed25519PublicKey
		switch k := e.Key.(type) {
		case *keys.Ed25519PublicKey:
			public = k
		case *keys.Ed25519PrivateKey:
			public = k.PublicKey()
		default:
			return nil, ctkerr.ErrInvalidParameter
		}

		verifier := signature.NewVerifyPrimitive(public)
		if _, err := set.Add(verifier, e, e.KeyID == ks.PrimaryKeyID); err != nil {
			return nil, err
		}
	}

	return signature.NewVerifyWrapper(set), nil
}
