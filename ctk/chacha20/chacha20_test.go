package chacha20_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/pmuens/ctk/ctk/chacha20"
)

func TestKeystreamBlockRFC8439Vector(t *testing.T) {
	t.Parallel()

	// RFC 8439 §2.3.2 test vector: key 00..1f, nonce 000000090000004a00000000,
	// block counter 1.
	var key [32]byte
	for i := range key {
		key[i] = byte(i)
	}
	nonce := [12]byte{0x00, 0x00, 0x00, 0x09, 0x00, 0x00, 0x00, 0x4a, 0x00, 0x00, 0x00, 0x00}

	c := chacha20.New(key, nonce, 1)
	keystream := c.XORWithKeyStream(make([]byte, 64))

	want, err := hex.DecodeString(
		"10f1e7e4d13b5915500fdd1fa32071c4" +
			"c7d1f4c733c068030422aa9ac3d46c4e" +
			"d2826446079faa0914c2d705d98b02a2" +
			"b5129cd1de164eb9cbd083e8a2503c4e",
	)
	if err != nil {
		t.Fatalf("hex.DecodeString: %v", err)
	}

	if !bytes.Equal(keystream, want) {
		t.Errorf("keystream = %x, want %x", keystream, want)
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	var key [32]byte
	copy(key[:], []byte("this-is-a-32-byte-secret-key!!!!"))
	var nonce [12]byte
	copy(nonce[:], []byte("uniquenonce1"))

	plaintext := []byte("the quick brown fox jumps over the lazy dog, repeated until we cross a block boundary or two")

	enc := chacha20.New(key, nonce, 0)
	ciphertext := enc.XORWithKeyStream(plaintext)

	dec := chacha20.New(key, nonce, 0)
	got := dec.XORWithKeyStream(ciphertext)

	if string(got) != string(plaintext) {
		t.Errorf("round trip = %q, want %q", got, plaintext)
	}
}

func TestCreateBlockAdvancesCounter(t *testing.T) {
	t.Parallel()

	var key [32]byte
	var nonce [12]byte

	c := chacha20.New(key, nonce, 0)
	first := c.CreateBlock()
	second := c.CreateBlock()

	if first == second {
		t.Errorf("consecutive blocks were identical: %v", first)
	}
}

func TestTwentyRoundsDoesNotAddBackInitialState(t *testing.T) {
	t.Parallel()

	var key [32]byte
	var nonce [12]byte

	a := chacha20.New(key, nonce, 0)
	permuted := a.TwentyRounds()

	b := chacha20.New(key, nonce, 0)
	block := b.CreateBlock()

	if permuted == block {
		t.Errorf("TwentyRounds() should not equal CreateBlock() (missing feed-forward addition)")
	}
}

func TestDifferentNoncesProduceDifferentKeystreams(t *testing.T) {
	t.Parallel()

	var key [32]byte
	copy(key[:], []byte("another-32-byte-secret-key-here"))

	var n1, n2 [12]byte
	copy(n1[:], []byte("nonceAAAAAAA"))
	copy(n2[:], []byte("nonceBBBBBBB"))

	a := chacha20.New(key, n1, 0).XORWithKeyStream(make([]byte, 64))
	b := chacha20.New(key, n2, 0).XORWithKeyStream(make([]byte, 64))

	if bytes.Equal(a, b) {
		t.Errorf("distinct nonces produced identical keystreams")
	}
}
