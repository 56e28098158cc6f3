// Command ctk is a small demo: it generates an XChaCha20-Poly1305 keyset
// and an Ed25519 keyset, round-trips an AEAD message and a signature
// through each, and prints the wire bytes.
//
// Kept as a bare main.go with no CLI framework, the way the teacher's own
// cmd/ctk and cmd/cli are both two-line entry points: a synchronous
// primitives library demo doesn't need flag parsing or subcommands.
package main

import (
	"fmt"
	"log"

	"github.com/pmuens/ctk/ctk/ed25519x"
	"github.com/pmuens/ctk/ctk/keys"
	"github.com/pmuens/ctk/ctk/keyset"
	"github.com/pmuens/ctk/ctk/randx"
	"github.com/pmuens/ctk/ctk/registry"
)

func main() {
	if err := runAead(); err != nil {
		log.Fatalf("aead demo: %v", err)
	}
	if err := runSignature(); err != nil {
		log.Fatalf("signature demo: %v", err)
	}
}

func runAead() error {
	const keyID = 0x66AABBCC

	params, err := keys.NewXChaCha20Poly1305Parameters(keys.VariantTink)
	if err != nil {
		return err
	}
	id := uint32(keyID)
	key, err := keys.NewXChaCha20Poly1305Key(randx.Bytes(keys.XChaCha20Poly1305KeySize), &id, params, keys.InsecureAccess)
	if err != nil {
		return err
	}

	ks := keyset.Keyset{
		PrimaryKeyID: id,
		Entries: []keyset.Entry{
			{Key: key, Status: keyset.StatusEnabled, KeyID: id, OutputPrefixType: keys.VariantTink},
		},
	}

	wrapper, err := registry.NewAead(ks, keys.InsecureAccess)
	if err != nil {
		return err
	}

	plaintext := []byte("ctk demo plaintext")
	aad := []byte("ctk demo aad")

	ciphertext, err := wrapper.Encrypt(plaintext, aad)
	if err != nil {
		return err
	}
	fmt.Printf("aead ciphertext (%d bytes, prefix %x): %x\n", len(ciphertext), ciphertext[:5], ciphertext)

	decrypted, err := wrapper.Decrypt(ciphertext, aad)
	if err != nil {
		return err
	}
	fmt.Printf("aead decrypted: %q\n", decrypted)
	return nil
}

func runSignature() error {
	const keyID = 1

	seed, public := ed25519x.GenerateKey()

	params, err := keys.NewEd25519Parameters(keys.VariantTink)
	if err != nil {
		return err
	}
	id := uint32(keyID)
	pub, err := keys.NewEd25519PublicKey(public[:], &id, params)
	if err != nil {
		return err
	}
	priv, err := keys.NewEd25519PrivateKey(seed[:], pub, keys.InsecureAccess)
	if err != nil {
		return err
	}

	signerKS := keyset.Keyset{
		PrimaryKeyID: id,
		Entries: []keyset.Entry{
			{Key: priv, Status: keyset.StatusEnabled, KeyID: id, OutputPrefixType: keys.VariantTink},
		},
	}
	verifierKS := keyset.Keyset{
		PrimaryKeyID: id,
		Entries: []keyset.Entry{
			{Key: pub, Status: keyset.StatusEnabled, KeyID: id, OutputPrefixType: keys.VariantTink},
		},
	}

	signer, err := registry.NewSigner(signerKS, keys.InsecureAccess)
	if err != nil {
		return err
	}
	verifier, err := registry.NewVerifier(verifierKS)
	if err != nil {
		return err
	}

	message := []byte("ctk demo message")
	signature, err := signer.Sign(message)
	if err != nil {
		return err
	}
	fmt.Printf("signature (%d bytes, prefix %x): %x\n", len(signature), signature[:5], signature)

	if err := verifier.Verify(signature, message); err != nil {
		return err
	}
	fmt.Println("signature verified ok")
	return nil
}
