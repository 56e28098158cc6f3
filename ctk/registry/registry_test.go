package registry_test

import (
	"testing"

	"github.com/pmuens/ctk/ctk/ctkerr"
	"github.com/pmuens/ctk/ctk/ed25519x"
	"github.com/pmuens/ctk/ctk/keys"
	"github.com/pmuens/ctk/ctk/keyset"
	"github.com/pmuens/ctk/ctk/registry"
)

func TestLookupTemplate(t *testing.T) {
	t.Parallel()

	got, err := registry.LookupTemplate("XCHACHA20_POLY1305")
	if err != nil {
		t.Fatalf("LookupTemplate() error = %v", err)
	}
	if got.TypeURL != registry.TypeURLXChaCha20Poly1305 || got.Variant != keys.VariantTink {
		t.Errorf("LookupTemplate() = %+v, want TypeURL=%s Variant=TINK", got, registry.TypeURLXChaCha20Poly1305)
	}
}

func TestLookupTemplateUnknownName(t *testing.T) {
	t.Parallel()

	if _, err := registry.LookupTemplate("DOES_NOT_EXIST"); err != ctkerr.ErrUnknownKeyTemplate {
		t.Errorf("LookupTemplate() error = %v, want ErrUnknownKeyTemplate", err)
	}
}

func TestSerializeParseXChaCha20Poly1305RoundTrip(t *testing.T) {
	t.Parallel()

	id := uint32(42)
	params, _ := keys.NewXChaCha20Poly1305Parameters(keys.VariantTink)
	original, err := keys.NewXChaCha20Poly1305Key(make([]byte, keys.XChaCha20Poly1305KeySize), &id, params, keys.InsecureAccess)
	if err != nil {
		t.Fatal(err)
	}

	ks, err := registry.Serialize(registry.TypeURLXChaCha20Poly1305, original, keys.VariantTink, keys.InsecureAccess)
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	wire := registry.Marshal(ks)
	decoded, err := registry.Unmarshal(wire)
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	parsed, err := registry.Parse(decoded, keys.InsecureAccess)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	got, ok := parsed.(*keys.XChaCha20Poly1305Key)
	if !ok {
		t.Fatalf("Parse() = %T, want *keys.XChaCha20Poly1305Key", parsed)
	}
	if !got.Equal(original) {
		t.Error("round-tripped key does not equal the original")
	}
}

func TestParseMapsLegacyToCrunchy(t *testing.T) {
	t.Parallel()

	id := uint32(1)
	params, _ := keys.NewXChaCha20Poly1305Parameters(keys.VariantCrunchy)
	original, err := keys.NewXChaCha20Poly1305Key(make([]byte, keys.XChaCha20Poly1305KeySize), &id, params, keys.InsecureAccess)
	if err != nil {
		t.Fatal(err)
	}

	ks, err := registry.Serialize(registry.TypeURLXChaCha20Poly1305, original, keys.VariantLegacy, keys.InsecureAccess)
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	parsed, err := registry.Parse(ks, keys.InsecureAccess)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	got := parsed.(*keys.XChaCha20Poly1305Key)
	if got.Parameters().Variant() != keys.VariantCrunchy {
		t.Errorf("parsed key Variant() = %v, want CRUNCHY", got.Parameters().Variant())
	}
}

func TestParseWithoutAccessFailsForSecretMaterial(t *testing.T) {
	t.Parallel()

	params, _ := keys.NewXChaCha20Poly1305Parameters(keys.VariantNoPrefix)
	original, err := keys.NewXChaCha20Poly1305Key(make([]byte, keys.XChaCha20Poly1305KeySize), nil, params, keys.InsecureAccess)
	if err != nil {
		t.Fatal(err)
	}
	ks, err := registry.Serialize(registry.TypeURLXChaCha20Poly1305, original, keys.VariantNoPrefix, keys.InsecureAccess)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := registry.Parse(ks, nil); err != ctkerr.ErrAccessDenied {
		t.Errorf("Parse() without access error = %v, want ErrAccessDenied", err)
	}
}

func TestEd25519PrivateSerializeParseRoundTrip(t *testing.T) {
	t.Parallel()

	seed, public := ed25519x.GenerateKey()
	params, _ := keys.NewEd25519Parameters(keys.VariantTink)
	id := uint32(5)
	pub, err := keys.NewEd25519PublicKey(public[:], &id, params)
	if err != nil {
		t.Fatal(err)
	}
	priv, err := keys.NewEd25519PrivateKey(seed[:], pub, keys.InsecureAccess)
	if err != nil {
		t.Fatal(err)
	}

	ks, err := registry.Serialize(registry.TypeURLEd25519Private, priv, keys.VariantTink, keys.InsecureAccess)
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	parsed, err := registry.Parse(ks, keys.InsecureAccess)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	got, ok := parsed.(*keys.Ed25519PrivateKey)
	if !ok {
		t.Fatalf("Parse() = %T, want *keys.Ed25519PrivateKey", parsed)
	}
	if !got.Equal(priv) {
		t.Error("round-tripped private key does not equal the original")
	}
}

func TestNewAeadEndToEnd(t *testing.T) {
	t.Parallel()

	id := uint32(0x66AABBCC)
	params, _ := keys.NewXChaCha20Poly1305Parameters(keys.VariantTink)
	key, err := keys.NewXChaCha20Poly1305Key(make([]byte, keys.XChaCha20Poly1305KeySize), &id, params, keys.InsecureAccess)
	if err != nil {
		t.Fatal(err)
	}

	ks := keyset.Keyset{
		PrimaryKeyID: id,
		Entries: []keyset.Entry{
			{Key: key, Status: keyset.StatusEnabled, KeyID: id, OutputPrefixType: keys.VariantTink},
		},
	}

	w, err := registry.NewAead(ks, keys.InsecureAccess)
	if err != nil {
		t.Fatalf("NewAead() error = %v", err)
	}

	ct, err := w.Encrypt([]byte("plaintext"), []byte("aad"))
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}
	pt, err := w.Decrypt(ct, []byte("aad"))
	if err != nil || string(pt) != "plaintext" {
		t.Errorf("Decrypt() = (%q, %v), want (plaintext, nil)", pt, err)
	}
}

func TestNewSignerAndVerifierEndToEnd(t *testing.T) {
	t.Parallel()

	id := uint32(1)
	seed, public := ed25519x.GenerateKey()
	params, _ := keys.NewEd25519Parameters(keys.VariantTink)
	pub, err := keys.NewEd25519PublicKey(public[:], &id, params)
	if err != nil {
		t.Fatal(err)
	}
	priv, err := keys.NewEd25519PrivateKey(seed[:], pub, keys.InsecureAccess)
	if err != nil {
		t.Fatal(err)
	}

	signEntry := keyset.Entry{Key: priv, Status: keyset.StatusEnabled, KeyID: id, OutputPrefixType: keys.VariantTink}
	verifyEntry := keyset.Entry{Key: pub, Status: keyset.StatusEnabled, KeyID: id, OutputPrefixType: keys.VariantTink}

	signerKS := keyset.Keyset{PrimaryKeyID: id, Entries: []keyset.Entry{signEntry}}
	verifierKS := keyset.Keyset{PrimaryKeyID: id, Entries: []keyset.Entry{verifyEntry}}

	signer, err := registry.NewSigner(signerKS, keys.InsecureAccess)
	if err != nil {
		t.Fatalf("NewSigner() error = %v", err)
	}
	verifier, err := registry.NewVerifier(verifierKS)
	if err != nil {
		t.Fatalf("NewVerifier() error = %v", err)
	}

	sig, err := signer.Sign([]byte("msg"))
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}
	if err := verifier.Verify(sig, []byte("msg")); err != nil {
		t.Errorf("Verify() error = %v, want nil", err)
	}
}

func TestNewVerifierAcceptsPublicOnlyKeyset(t *testing.T) {
	t.Parallel()

	_, public := ed25519x.GenerateKey()
	params, _ := keys.NewEd25519Parameters(keys.VariantNoPrefix)
	pub, err := keys.NewEd25519PublicKey(public[:], nil, params)
	if err != nil {
		t.Fatal(err)
	}

	ks := keyset.Keyset{
		PrimaryKeyID: 0, // no entry claims this id; allowed since the keyset is all-public
		Entries:      []keyset.Entry{{Key: pub, Status: keyset.StatusEnabled, KeyID: 1, OutputPrefixType: keys.VariantNoPrefix}},
	}

	if _, err := registry.NewVerifier(ks); err != nil {
		t.Fatalf("NewVerifier() error = %v", err)
	}
}
