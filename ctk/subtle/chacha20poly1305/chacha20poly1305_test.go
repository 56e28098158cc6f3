package chacha20poly1305_test

import (
	"bytes"
	"testing"

	"github.com/pmuens/ctk/ctk/ctkerr"
	"github.com/pmuens/ctk/ctk/subtle/chacha20poly1305"
)

func testKey() [chacha20poly1305.KeySize]byte {
	var key [chacha20poly1305.KeySize]byte
	copy(key[:], []byte("a-32-byte-secret-key-for-cp1305"))
	return key
}

func TestSealOpenRoundTrip(t *testing.T) {
	t.Parallel()

	key := testKey()
	plaintext := []byte("plaintext")
	aad := []byte("associatedData")

	sealed := chacha20poly1305.Seal(key, plaintext, aad)
	got, err := chacha20poly1305.Open(key, sealed, aad)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Errorf("Open() = %q, want %q", got, plaintext)
	}
}

func TestOpenWrongAADFails(t *testing.T) {
	t.Parallel()

	key := testKey()
	sealed := chacha20poly1305.Seal(key, []byte("plaintext"), []byte("associatedData"))

	if _, err := chacha20poly1305.Open(key, sealed, []byte("invalid")); err == nil {
		t.Fatal("Open() with wrong AAD succeeded, want error")
	}
}

func TestOpenTooShortFails(t *testing.T) {
	t.Parallel()

	key := testKey()
	_, err := chacha20poly1305.Open(key, make([]byte, 4), nil)
	if err != ctkerr.ErrInvalidParameter {
		t.Errorf("Open() error = %v, want %v", err, ctkerr.ErrInvalidParameter)
	}
}
