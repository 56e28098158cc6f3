package signature_test

import (
	"bytes"
	"testing"

	"github.com/pmuens/ctk/ctk/ctkerr"
	"github.com/pmuens/ctk/ctk/ed25519x"
	"github.com/pmuens/ctk/ctk/keys"
	"github.com/pmuens/ctk/ctk/keyset"
	"github.com/pmuens/ctk/ctk/primitiveset"
	"github.com/pmuens/ctk/ctk/signature"
)

func newKeyPair(t *testing.T, variant keys.Variant, id uint32) (*keys.Ed25519PrivateKey, keyset.Entry) {
	t.Helper()
	seed, public := ed25519x.GenerateKey()

	params, err := keys.NewEd25519Parameters(variant)
	if err != nil {
		t.Fatal(err)
	}

	var idPtr *uint32
	if variant != keys.VariantNoPrefix {
		idPtr = &id
	}
	pub, err := keys.NewEd25519PublicKey(public[:], idPtr, params)
	if err != nil {
		t.Fatal(err)
	}
	priv, err := keys.NewEd25519PrivateKey(seed[:], pub, keys.InsecureAccess)
	if err != nil {
		t.Fatal(err)
	}
	return priv, keyset.Entry{Key: priv, Status: keyset.StatusEnabled, KeyID: id, OutputPrefixType: variant}
}

func TestSignVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	priv, e := newKeyPair(t, keys.VariantTink, 0x66AABBCC)

	signSet := primitiveset.New[signature.Signer]()
	signer, err := signature.NewSignPrimitive(priv, keys.InsecureAccess)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := signSet.Add(signer, e, true); err != nil {
		t.Fatal(err)
	}

	verifySet := primitiveset.New[signature.Verifier]()
	verifier := signature.NewVerifyPrimitive(priv.PublicKey())
	if _, err := verifySet.Add(verifier, e, true); err != nil {
		t.Fatal(err)
	}

	data := []byte("135 bytes of message content would normally go here")
	sig, err := signature.NewSignWrapper(signSet).Sign(data)
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}
	if !bytes.Equal(sig[:5], []byte{0x01, 0x66, 0xAA, 0xBB, 0xCC}) {
		t.Errorf("signature prefix = %x, want 0166aabbcc", sig[:5])
	}

	if err := signature.NewVerifyWrapper(verifySet).Verify(sig, data); err != nil {
		t.Errorf("Verify() error = %v, want nil", err)
	}

	tampered := bytes.Clone(sig)
	tampered[len(tampered)-1] ^= 0x01
	if err := signature.NewVerifyWrapper(verifySet).Verify(tampered, data); err == nil {
		t.Error("Verify() on a tampered signature succeeded, want error")
	}

	tamperedData := bytes.Clone(data)
	tamperedData[0] ^= 0x01
	if err := signature.NewVerifyWrapper(verifySet).Verify(sig, tamperedData); err == nil {
		t.Error("Verify() on tampered data succeeded, want error")
	}
}

func TestSignWithoutPrimaryFails(t *testing.T) {
	t.Parallel()

	w := signature.NewSignWrapper(primitiveset.New[signature.Signer]())
	if _, err := w.Sign([]byte("data")); err != ctkerr.ErrMissingPrimary {
		t.Errorf("Sign() error = %v, want ErrMissingPrimary", err)
	}
}

func TestVerifyAcrossTwoKeysAndRawFallback(t *testing.T) {
	t.Parallel()

	primaryPriv, primaryEntry := newKeyPair(t, keys.VariantTink, 1)
	rawPriv, rawEntry := newKeyPair(t, keys.VariantNoPrefix, 0)

	verifySet := primitiveset.New[signature.Verifier]()
	v1 := signature.NewVerifyPrimitive(primaryPriv.PublicKey())
	v2 := signature.NewVerifyPrimitive(rawPriv.PublicKey())
	if _, err := verifySet.Add(v1, primaryEntry, true); err != nil {
		t.Fatal(err)
	}
	if _, err := verifySet.Add(v2, rawEntry, false); err != nil {
		t.Fatal(err)
	}
	verifier := signature.NewVerifyWrapper(verifySet)

	primarySignSet := primitiveset.New[signature.Signer]()
	s1, _ := signature.NewSignPrimitive(primaryPriv, keys.InsecureAccess)
	if _, err := primarySignSet.Add(s1, primaryEntry, true); err != nil {
		t.Fatal(err)
	}
	sigFromPrimary, err := signature.NewSignWrapper(primarySignSet).Sign([]byte("msg"))
	if err != nil {
		t.Fatal(err)
	}
	if err := verifier.Verify(sigFromPrimary, []byte("msg")); err != nil {
		t.Errorf("Verify(primary signature) error = %v", err)
	}

	rawSignSet := primitiveset.New[signature.Signer]()
	s2, _ := signature.NewSignPrimitive(rawPriv, keys.InsecureAccess)
	if _, err := rawSignSet.Add(s2, rawEntry, true); err != nil {
		t.Fatal(err)
	}
	sigFromRaw, err := signature.NewSignWrapper(rawSignSet).Sign([]byte("msg"))
	if err != nil {
		t.Fatal(err)
	}
	if err := verifier.Verify(sigFromRaw, []byte("msg")); err != nil {
		t.Errorf("Verify(raw signature) error = %v", err)
	}
}

func TestLegacyVariantAppendsZeroByteToData(t *testing.T) {
	t.Parallel()

	priv, e := newKeyPair(t, keys.VariantLegacy, 1)

	signSet := primitiveset.New[signature.Signer]()
	signer, _ := signature.NewSignPrimitive(priv, keys.InsecureAccess)
	if _, err := signSet.Add(signer, e, true); err != nil {
		t.Fatal(err)
	}

	sig, err := signature.NewSignWrapper(signSet).Sign([]byte("data"))
	if err != nil {
		t.Fatal(err)
	}

	verifySet := primitiveset.New[signature.Verifier]()
	verifier := signature.NewVerifyPrimitive(priv.PublicKey())
	if _, err := verifySet.Add(verifier, e, true); err != nil {
		t.Fatal(err)
	}
	if err := signature.NewVerifyWrapper(verifySet).Verify(sig, []byte("data")); err != nil {
		t.Errorf("Verify() error = %v, want nil", err)
	}

	// Verifying without the LEGACY suffix against the raw per-key
	// primitive must fail: the suffix is part of what got signed.
	rawVerify := signature.NewVerifyPrimitive(priv.PublicKey())
	if err := rawVerify.Verify(sig[5:], []byte("data")); err == nil {
		t.Fatal("per-key Verify without the LEGACY suffix succeeded, want error")
	}
}
