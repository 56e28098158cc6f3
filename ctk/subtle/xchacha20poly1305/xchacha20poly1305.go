// Package xchacha20poly1305 implements the XChaCha20-Poly1305 authenticated
// encryption with associated data (AEAD) algorithm as specified in
// https://datatracker.ietf.org/doc/html/draft-irtf-cfrg-xchacha-03.
package xchacha20poly1305

import (
	"encoding/binary"

	"github.com/pmuens/ctk/ctk/bytesx"
	"github.com/pmuens/ctk/ctk/ctkerr"
	"github.com/pmuens/ctk/ctk/poly1305"
	"github.com/pmuens/ctk/ctk/randx"
	"github.com/pmuens/ctk/ctk/xchacha20"
)

// KeySize is the size (in bytes) of an XChaCha20-Poly1305 key.
const KeySize = xchacha20.KeySize

// NonceSize is the size (in bytes) of an XChaCha20-Poly1305 nonce.
const NonceSize = xchacha20.NonceSize

// TagSize is the size (in bytes) of the Poly1305 authentication tag.
const TagSize = poly1305.TagSize

// EncryptDetached encrypts plaintext with key and nonce, authenticating aad
// alongside it, and returns the ciphertext and its detached tag. The caller
// is responsible for never reusing a (key, nonce) pair; Seal is the safe
// entry point for callers without their own nonce management.
func EncryptDetached(key [KeySize]byte, nonce [NonceSize]byte, plaintext, aad []byte) ([]byte, [TagSize]byte) {
	cipher := xchacha20.New(key, nonce, 0)
	polyKey := poly1305KeyGen(cipher.CreateBlock())

	// The block at counter 0 is consumed generating the Poly1305 key, so
	// encryption starts at counter 1.
	ciphertext := cipher.XORWithKeyStream(plaintext)

	mac, err := poly1305.New(polyKey[:])
	if err != nil {
		// polyKey is always exactly poly1305.KeySize bytes.
		panic(err)
	}
	tag := mac.Tag(macInput(aad, ciphertext))

	return ciphertext, tag
}

// DecryptDetached verifies tag over aad and ciphertext before decrypting,
// returning ctkerr.ErrDecryptionFailed if the tag does not match.
func DecryptDetached(key [KeySize]byte, nonce [NonceSize]byte, ciphertext []byte, aad []byte, tag [TagSize]byte) ([]byte, error) {
	cipher := xchacha20.New(key, nonce, 0)
	polyKey := poly1305KeyGen(cipher.CreateBlock())

	if err := poly1305.Verify(polyKey[:], macInput(aad, ciphertext), tag[:]); err != nil {
		return nil, err
	}

	return cipher.XORWithKeyStream(ciphertext), nil
}

// Seal encrypts plaintext under a freshly generated random nonce,
// authenticating aad, and returns nonce‖ciphertext‖tag.
func Seal(key [KeySize]byte, plaintext, aad []byte) []byte {
	var nonce [NonceSize]byte
	copy(nonce[:], randx.Bytes(NonceSize))

	ciphertext, tag := EncryptDetached(key, nonce, plaintext, aad)

	out := make([]byte, 0, NonceSize+len(ciphertext)+TagSize)
	out = append(out, nonce[:]...)
	out = append(out, ciphertext...)
	out = append(out, tag[:]...)
	return out
}

// Open splits sealed into its nonce, ciphertext and tag components and
// decrypts it, returning ctkerr.ErrInvalidParameter if sealed is too short
// to contain a nonce and tag, or ctkerr.ErrDecryptionFailed if the tag does
// not verify.
func Open(key [KeySize]byte, sealed []byte, aad []byte) ([]byte, error) {
	if len(sealed) < NonceSize+TagSize {
		return nil, ctkerr.ErrInvalidParameter
	}

	var nonce [NonceSize]byte
	copy(nonce[:], sealed[:NonceSize])

	ciphertext := sealed[NonceSize : len(sealed)-TagSize]

	var tag [TagSize]byte
	copy(tag[:], sealed[len(sealed)-TagSize:])

	return DecryptDetached(key, nonce, ciphertext, aad, tag)
}

// poly1305KeyGen derives a Poly1305 one-time key from a ChaCha20 keystream
// block, per RFC 8439 §2.6: the key is the block's first 32 bytes, taken in
// little-endian order.
func poly1305KeyGen(block [16]uint32) [poly1305.KeySize]byte {
	var key [poly1305.KeySize]byte
	for i, word := range block[:8] {
		binary.LittleEndian.PutUint32(key[i*4:i*4+4], word)
	}
	return key
}

// macInput builds the Poly1305 authentication input per RFC 8439 §2.8:
// aad, zero-padded to a multiple of 16 bytes, followed by ciphertext,
// zero-padded the same way, followed by the little-endian 64-bit lengths of
// aad and ciphertext.
func macInput(aad, ciphertext []byte) []byte {
	var lengths [16]byte
	binary.LittleEndian.PutUint64(lengths[0:8], uint64(len(aad)))
	binary.LittleEndian.PutUint64(lengths[8:16], uint64(len(ciphertext)))

	return bytesx.Concat(
		aad,
		bytesx.Pad16(len(aad)),
		ciphertext,
		bytesx.Pad16(len(ciphertext)),
		lengths[:],
	)
}
