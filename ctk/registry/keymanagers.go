package registry

import (
	"github.com/pmuens/ctk/ctk/ctkerr"
	"github.com/pmuens/ctk/ctk/ed25519x"
	"github.com/pmuens/ctk/ctk/keys"
)

func init() {
	Register(TypeURLXChaCha20Poly1305, serializeXChaCha20Poly1305, parseXChaCha20Poly1305)
	Register(TypeURLChaCha20Poly1305, serializeChaCha20Poly1305, parseChaCha20Poly1305)
	Register(TypeURLEd25519Public, serializeEd25519Public, parseEd25519Public)
	Register(TypeURLEd25519Private, serializeEd25519Private, parseEd25519Private)
}

func serializeXChaCha20Poly1305(key keys.Key, access keys.Access) ([]byte, error) {
	k, ok := key.(*keys.XChaCha20Poly1305Key)
	if !ok {
		return nil, ctkerr.ErrSerializationError
	}
	if access == nil {
		return nil, ctkerr.ErrAccessDenied
	}
	material := k.KeyBytes(access)
	return material[:], nil
}

func parseXChaCha20Poly1305(material []byte, idRequirement *uint32, variant keys.Variant, access keys.Access) (keys.Key, error) {
	if access == nil {
		return nil, ctkerr.ErrAccessDenied
	}
	params, err := keys.NewXChaCha20Poly1305Parameters(variant)
	if err != nil {
		return nil, ctkerr.ErrSerializationError
	}
	key, err := keys.NewXChaCha20Poly1305Key(material, idRequirement, params, access)
	if err != nil {
		return nil, ctkerr.ErrSerializationError
	}
	return key, nil
}

func serializeChaCha20Poly1305(key keys.Key, access keys.Access) ([]byte, error) {
	k, ok := key.(*keys.ChaCha20Poly1305Key)
	if !ok {
		return nil, ctkerr.ErrSerializationError
	}
	if access == nil {
		return nil, ctkerr.ErrAccessDenied
	}
	material := k.KeyBytes(access)
	return material[:], nil
}

func parseChaCha20Poly1305(material []byte, idRequirement *uint32, variant keys.Variant, access keys.Access) (keys.Key, error) {
	if access == nil {
		return nil, ctkerr.ErrAccessDenied
	}
	params, err := keys.NewChaCha20Poly1305Parameters(variant)
	if err != nil {
		return nil, ctkerr.ErrSerializationError
	}
	key, err := keys.NewChaCha20Poly1305Key(material, idRequirement, params, access)
	if err != nil {
		return nil, ctkerr.ErrSerializationError
	}
	return key, nil
}

func serializeEd25519Public(key keys.Key, _ keys.Access) ([]byte, error) {
	k, ok := key.(*keys.Ed25519PublicKey)
	if !ok {
		return nil, ctkerr.ErrSerializationError
	}
	material := k.KeyBytes()
	return material[:], nil
}

func parseEd25519Public(material []byte, idRequirement *uint32, variant keys.Variant, _ keys.Access) (keys.Key, error) {
	params, err := keys.NewEd25519Parameters(variant)
	if err != nil {
		return nil, ctkerr.ErrSerializationError
	}
	key, err := keys.NewEd25519PublicKey(material, idRequirement, params)
	if err != nil {
		return nil, ctkerr.ErrSerializationError
	}
	return key, nil
}

func serializeEd25519Private(key keys.Key, access keys.Access) ([]byte, error) {
	k, ok := key.(*keys.Ed25519PrivateKey)
	if !ok {
		return nil, ctkerr.ErrSerializationError
	}
	if access == nil {
		return nil, ctkerr.ErrAccessDenied
	}
	seed := k.SeedBytes(access)
	return seed[:], nil
}

// parseEd25519Private rebuilds both the public and the private key from a
// seed: Ed25519PrivateKey always owns its public key (spec.md §9's DAG,
// not a cycle), so a private-key parse has to derive the public half too
// rather than expecting it to be supplied separately.
func parseEd25519Private(material []byte, idRequirement *uint32, variant keys.Variant, access keys.Access) (keys.Key, error) {
	if access == nil {
		return nil, ctkerr.ErrAccessDenied
	}
	if len(material) != ed25519x.SeedSize {
		return nil, ctkerr.ErrSerializationError
	}

	var seed [ed25519x.SeedSize]byte
	copy(seed[:], material)
	publicBytes := ed25519x.PublicFromSeed(seed)

	params, err := keys.NewEd25519Parameters(variant)
	if err != nil {
		return nil, ctkerr.ErrSerializationError
	}
	public, err := keys.NewEd25519PublicKey(publicBytes[:], idRequirement, params)
	if err != nil {
		return nil, ctkerr.ErrSerializationError
	}
	private, err := keys.NewEd25519PrivateKey(material, public, access)
	if err != nil {
		return nil, ctkerr.ErrSerializationError
	}
	return private, nil
}
