// Package chacha20 implements the ChaCha20 stream cipher's block function
// as specified in https://datatracker.ietf.org/doc/html/rfc8439, including
// the raw 20-round permutation HChaCha20 needs.
package chacha20

import (
	"encoding/binary"
	"math/bits"
)

// BlockSize is the size (in bytes) of the keystream block ChaCha20 produces
// per counter value.
const BlockSize = 64

// NonceSize is the size (in bytes) of a ChaCha20 nonce (RFC 8439).
const NonceSize = 12

// KeySize is the size (in bytes) of a ChaCha20 key.
const KeySize = 32

// ChaCha20 is a stateful instance of the ChaCha stream cipher.
type ChaCha20 struct {
	// counter is the block counter.
	counter uint32

	// key is the key used for encryption / decryption.
	key [8]uint32

	// nonce is the used nonce that shouldn't be repeated when the same key is used.
	nonce [3]uint32

	// state is the internal state on which operations are performed.
	state [16]uint32
}

// New creates a new instance of the ChaCha20 stream cipher positioned at
// the given initial block counter.
func New(key [KeySize]byte, nonce [NonceSize]byte, counter uint32) *ChaCha20 {
	k := [8]uint32{
		binary.LittleEndian.Uint32(key[0:4]),
		binary.LittleEndian.Uint32(key[4:8]),
		binary.LittleEndian.Uint32(key[8:12]),
		binary.LittleEndian.Uint32(key[12:16]),
		binary.LittleEndian.Uint32(key[16:20]),
		binary.LittleEndian.Uint32(key[20:24]),
		binary.LittleEndian.Uint32(key[24:28]),
		binary.LittleEndian.Uint32(key[28:32]),
	}

	n := [3]uint32{
		binary.LittleEndian.Uint32(nonce[0:4]),
		binary.LittleEndian.Uint32(nonce[4:8]),
		binary.LittleEndian.Uint32(nonce[8:12]),
	}

	return &ChaCha20{
		counter: counter,
		key:     k,
		nonce:   n,
		state:   initState(k, n, counter),
	}
}

// XORWithKeyStream XORs data with the ChaCha20 keystream starting at the
// cipher's current counter, advancing the counter by one block per 64
// bytes consumed. It is used for both encryption and decryption and
// allocates a fresh result rather than mutating data.
func (c *ChaCha20) XORWithKeyStream(data []byte) []byte {
	result := make([]byte, len(data))

	for offset := 0; offset < len(data); offset += BlockSize {
		end := offset + BlockSize
		if end > len(data) {
			end = len(data)
		}

		keyStream := blockBytes(c.CreateBlock())
		for i := offset; i < end; i++ {
			result[i] = data[i] ^ keyStream[i-offset]
		}
	}

	return result
}

// CreateBlock produces a 512-bit ChaCha20 keystream block by permuting the
// state via 10 double rounds (20 rounds total), adding back the original
// state (the "feed-forward"), and advancing the counter.
func (c *ChaCha20) CreateBlock() [16]uint32 {
	c.state = initState(c.key, c.nonce, c.counter)
	initial := c.state

	c.runRounds()

	for i, val := range initial {
		c.state[i] += val
	}

	c.counter++

	return c.state
}

// TwentyRounds runs the 20-round ChaCha20 permutation over the current
// state and returns it directly, without the feed-forward addition or
// counter advance CreateBlock performs. HChaCha20 uses this raw
// permutation output to derive its subkey (it is not itself a keystream
// block).
func (c *ChaCha20) TwentyRounds() [16]uint32 {
	c.state = initState(c.key, c.nonce, c.counter)
	c.runRounds()
	return c.state
}

func (c *ChaCha20) runRounds() {
	for range 10 {
		c.doubleRound()
	}
}

// doubleRound permutes the state by running two rounds in sequence
// (one column round and one diagonal round).
func (c *ChaCha20) doubleRound() {
	c.columnRound()
	c.diagonalRound()
}

// columnRound applies the quarterRound function to the state columns.
func (c *ChaCha20) columnRound() {
	c.quarterRound(0, 4, 8, 12)
	c.quarterRound(1, 5, 9, 13)
	c.quarterRound(2, 6, 10, 14)
	c.quarterRound(3, 7, 11, 15)
}

// diagonalRound applies the quarterRound function to the state diagonals.
func (c *ChaCha20) diagonalRound() {
	c.quarterRound(0, 5, 10, 15)
	c.quarterRound(1, 6, 11, 12)
	c.quarterRound(2, 7, 8, 13)
	c.quarterRound(3, 4, 9, 14)
}

// quarterRound applies the ChaCha quarter round function to the state
// words indexed by x, y, z and w.
func (c *ChaCha20) quarterRound(x, y, z, w int) {
	a, b, cc, d := quarterRound(c.state[x], c.state[y], c.state[z], c.state[w])

	c.state[x] = a
	c.state[y] = b
	c.state[z] = cc
	c.state[w] = d
}

// quarterRound is the ChaCha quarter round function (RFC 8439 §2.1).
func quarterRound(a, b, c, d uint32) (uint32, uint32, uint32, uint32) {
	a += b
	d ^= a
	d = bits.RotateLeft32(d, 16)

	c += d
	b ^= c
	b = bits.RotateLeft32(b, 12)

	a += b
	d ^= a
	d = bits.RotateLeft32(d, 8)

	c += d
	b ^= c
	b = bits.RotateLeft32(b, 7)

	return a, b, c, d
}

// initState initializes the ChaCha20 state: the constant "expand 32-byte k",
// the 8 key words, the block counter, and the 3 nonce words.
func initState(key [8]uint32, nonce [3]uint32, counter uint32) [16]uint32 {
	constant := [4]uint32{
		0x61707865, // expa
		0x3320646e, // nd 3
		0x79622d32, // 2-by
		0x6b206574, // te k
	}

	var state [16]uint32

	copy(state[0:4], constant[:])
	copy(state[4:12], key[:])
	state[12] = counter
	copy(state[13:16], nonce[:])

	return state
}

// blockBytes serializes a 16-word state into its 64-byte little-endian
// keystream block representation.
func blockBytes(state [16]uint32) [BlockSize]byte {
	var out [BlockSize]byte
	for i, word := range state {
		binary.LittleEndian.PutUint32(out[i*4:i*4+4], word)
	}
	return out
}
