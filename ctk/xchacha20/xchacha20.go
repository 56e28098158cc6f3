// Package xchacha20 implements the XChaCha20 stream cipher as specified in
// https://datatracker.ietf.org/doc/html/draft-irtf-cfrg-xchacha-03: an
// HChaCha20 subkey derivation followed by ChaCha20 run with the derived
// subkey and a 24-byte extended nonce.
package xchacha20

import "github.com/pmuens/ctk/ctk/chacha20"

// NonceSize is the size (in bytes) of an XChaCha20 nonce.
const NonceSize = 24

// KeySize is the size (in bytes) of an XChaCha20 key.
const KeySize = chacha20.KeySize

// XChaCha20 is a stateful instance of the XChaCha20 stream cipher, built by
// deriving an HChaCha20 subkey and running the ChaCha20 core with it.
type XChaCha20 struct {
	core *chacha20.ChaCha20
}

// New creates a new instance of XChaCha20 positioned at the given initial
// block counter. This is the "insecure nonce" constructor: callers are
// responsible for never reusing a (key, nonce) pair. The public AEAD in
// ctk/subtle/xchacha20poly1305 is the safe entry point, generating a fresh
// random nonce per encryption.
func New(key [KeySize]byte, nonce [NonceSize]byte, counter uint32) *XChaCha20 {
	hChaChaNonce := [16]byte(nonce[0:16])
	subKey := NewHChaCha20(key, hChaChaNonce).SubKey()

	// RFC 8439 expects a 12-byte ChaCha20 nonce; XChaCha20 pads the last 8
	// bytes of its 24-byte nonce with 4 leading zero bytes to make one.
	var chaChaNonce [12]byte
	copy(chaChaNonce[4:], nonce[16:24])

	return &XChaCha20{core: chacha20.New(subKey, chaChaNonce, counter)}
}

// XORWithKeyStream creates a key stream using the ChaCha20 block function
// (run with the HChaCha20-derived subkey) and XORs data with it. Used for
// both encryption and decryption.
func (x *XChaCha20) XORWithKeyStream(data []byte) []byte {
	return x.core.XORWithKeyStream(data)
}

// CreateBlock produces the next 512-bit keystream block, advancing the
// counter. Exposed so callers like the AEAD composition can derive a
// Poly1305 one-time key from the block at counter 0 before encrypting the
// plaintext starting at counter 1.
func (x *XChaCha20) CreateBlock() [16]uint32 {
	return x.core.CreateBlock()
}
