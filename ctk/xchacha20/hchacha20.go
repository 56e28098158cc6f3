package xchacha20

import (
	"encoding/binary"

	"github.com/pmuens/ctk/ctk/chacha20"
)

// HChaCha20 derives a subkey for XChaCha20 from a key and a 16-byte nonce,
// by running the ChaCha20 permutation for 20 rounds and taking its first
// and last rows without the usual feed-forward addition.
type HChaCha20 struct {
	core *chacha20.ChaCha20
}

// NewHChaCha20 creates a new instance of HChaCha20. ChaCha20's block
// counter has no equivalent in HChaCha20; the first 4 bytes of the
// 16-byte nonce take its place in the initial state, and the remaining 12
// bytes are ChaCha20's nonce.
func NewHChaCha20(key [32]byte, nonce [16]byte) *HChaCha20 {
	counter := binary.LittleEndian.Uint32(nonce[0:4])
	var slicedNonce [12]byte
	copy(slicedNonce[:], nonce[4:16])

	return &HChaCha20{core: chacha20.New(key, slicedNonce, counter)}
}

// SubKey runs the 20-round ChaCha20 permutation and returns the
// little-endian bytes of the state's first and last rows as the derived
// 32-byte subkey.
func (h *HChaCha20) SubKey() [32]byte {
	state := h.core.TwentyRounds()

	firstRow := state[0:4]
	lastRow := state[12:16]

	var key [32]byte
	for i, word := range firstRow {
		binary.LittleEndian.PutUint32(key[i*4:i*4+4], word)
	}
	for i, word := range lastRow {
		binary.LittleEndian.PutUint32(key[16+i*4:16+i*4+4], word)
	}

	return key
}
