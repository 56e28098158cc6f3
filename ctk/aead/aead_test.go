package aead_test

import (
	"bytes"
	"testing"

	"github.com/pmuens/ctk/ctk/aead"
	"github.com/pmuens/ctk/ctk/ctkerr"
	"github.com/pmuens/ctk/ctk/keys"
	"github.com/pmuens/ctk/ctk/keyset"
	"github.com/pmuens/ctk/ctk/primitiveset"
)

func newKey(t *testing.T, variant keys.Variant, id uint32) (*keys.XChaCha20Poly1305Key, keyset.Entry) {
	t.Helper()
	params, err := keys.NewXChaCha20Poly1305Parameters(variant)
	if err != nil {
		t.Fatal(err)
	}
	secret := bytes.Repeat([]byte{byte(id)}, keys.XChaCha20Poly1305KeySize)

	var idPtr *uint32
	if variant != keys.VariantNoPrefix {
		idPtr = &id
	}
	k, err := keys.NewXChaCha20Poly1305Key(secret, idPtr, params, keys.InsecureAccess)
	if err != nil {
		t.Fatal(err)
	}
	return k, keyset.Entry{Key: k, Status: keyset.StatusEnabled, KeyID: id, OutputPrefixType: variant}
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	t.Parallel()

	k, e := newKey(t, keys.VariantTink, 0x66AABBCC)
	set := primitiveset.New[aead.Aead]()
	prim, err := aead.NewPrimitive(k, keys.InsecureAccess)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := set.Add(prim, e, true); err != nil {
		t.Fatal(err)
	}

	w := aead.NewWrapper(set)
	ct, err := w.Encrypt([]byte("plaintext"), []byte("associatedData"))
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}

	if !bytes.Equal(ct[:5], []byte{0x01, 0x66, 0xAA, 0xBB, 0xCC}) {
		t.Errorf("ciphertext prefix = %x, want 0166aabbcc", ct[:5])
	}

	pt, err := w.Decrypt(ct, []byte("associatedData"))
	if err != nil {
		t.Fatalf("Decrypt() error = %v", err)
	}
	if string(pt) != "plaintext" {
		t.Errorf("Decrypt() = %q, want %q", pt, "plaintext")
	}
}

func TestDecryptWrongAADFails(t *testing.T) {
	t.Parallel()

	k, e := newKey(t, keys.VariantNoPrefix, 0)
	set := primitiveset.New[aead.Aead]()
	prim, _ := aead.NewPrimitive(k, keys.InsecureAccess)
	if _, err := set.Add(prim, e, true); err != nil {
		t.Fatal(err)
	}

	w := aead.NewWrapper(set)
	ct, err := w.Encrypt([]byte("plaintext"), []byte("associatedData"))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := w.Decrypt(ct, []byte("invalid")); err != ctkerr.ErrDecryptionFailed {
		t.Errorf("Decrypt() error = %v, want ErrDecryptionFailed", err)
	}
}

func TestEncryptWithoutPrimaryFails(t *testing.T) {
	t.Parallel()

	w := aead.NewWrapper(primitiveset.New[aead.Aead]())
	if _, err := w.Encrypt([]byte("plaintext"), nil); err != ctkerr.ErrMissingPrimary {
		t.Errorf("Encrypt() error = %v, want ErrMissingPrimary", err)
	}
}

func TestDecryptAcrossTwoKeysAndRawFallback(t *testing.T) {
	t.Parallel()

	primaryKey, primaryEntry := newKey(t, keys.VariantTink, 1)
	rawKey, rawEntry := newKey(t, keys.VariantNoPrefix, 0)

	set := primitiveset.New[aead.Aead]()
	primPrimary, _ := aead.NewPrimitive(primaryKey, keys.InsecureAccess)
	primRaw, _ := aead.NewPrimitive(rawKey, keys.InsecureAccess)
	if _, err := set.Add(primPrimary, primaryEntry, true); err != nil {
		t.Fatal(err)
	}
	if _, err := set.Add(primRaw, rawEntry, false); err != nil {
		t.Fatal(err)
	}

	w := aead.NewWrapper(set)

	ctFromPrimary, err := aead.NewWrapper(set).Encrypt([]byte("from primary"), nil)
	if err != nil {
		t.Fatal(err)
	}
	got, err := w.Decrypt(ctFromPrimary, nil)
	if err != nil || string(got) != "from primary" {
		t.Errorf("Decrypt(primary ciphertext) = (%q, %v)", got, err)
	}

	rawWrapperSet := primitiveset.New[aead.Aead]()
	primRawPrimary, _ := aead.NewPrimitive(rawKey, keys.InsecureAccess)
	if _, err := rawWrapperSet.Add(primRawPrimary, rawEntry, true); err != nil {
		t.Fatal(err)
	}
	ctFromRaw, err := aead.NewWrapper(rawWrapperSet).Encrypt([]byte("from raw"), nil)
	if err != nil {
		t.Fatal(err)
	}
	got, err = w.Decrypt(ctFromRaw, nil)
	if err != nil || string(got) != "from raw" {
		t.Errorf("Decrypt(raw ciphertext) = (%q, %v)", got, err)
	}

	tampered := bytes.Clone(ctFromPrimary)
	tampered[len(tampered)-1] ^= 0x01
	if _, err := w.Decrypt(tampered, nil); err != ctkerr.ErrDecryptionFailed {
		t.Errorf("Decrypt(tampered) error = %v, want ErrDecryptionFailed", err)
	}
}

func TestLegacyVariantAppendsZeroByteToAAD(t *testing.T) {
	t.Parallel()

	k, e := newKey(t, keys.VariantLegacy, 1)
	set := primitiveset.New[aead.Aead]()
	prim, _ := aead.NewPrimitive(k, keys.InsecureAccess)
	if _, err := set.Add(prim, e, true); err != nil {
		t.Fatal(err)
	}

	w := aead.NewWrapper(set)
	ct, err := w.Encrypt([]byte("plaintext"), []byte("aad"))
	if err != nil {
		t.Fatal(err)
	}

	pt, err := w.Decrypt(ct, []byte("aad"))
	if err != nil || string(pt) != "plaintext" {
		t.Fatalf("Decrypt() = (%q, %v), want (plaintext, nil)", pt, err)
	}

	// Directly verifying against the raw per-key primitive without the
	// 0x00 suffix must fail: the suffix is part of what got authenticated.
	rawPrim, _ := aead.NewPrimitive(k, keys.InsecureAccess)
	if _, err := rawPrim.Decrypt(ct[5:], []byte("aad")); err == nil {
		t.Fatal("per-key Decrypt without the LEGACY suffix succeeded, want error")
	}
}
