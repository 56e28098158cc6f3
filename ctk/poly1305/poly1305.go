// Package poly1305 implements the Poly1305 one-time authenticator as
// specified in https://datatracker.ietf.org/doc/html/rfc8439.
//
// The accumulator is kept as 5 limbs of 26 bits, the representation
// spec.md calls for, so that every per-block product fits in a 64-bit
// word without carrying into math/big. The teacher's packaged structure
// (an r/s-holding, stateful Poly1305) is kept, exposed here as New and
// Tag; its math/big accumulator, which cannot run in constant time, is
// replaced.
package poly1305

import (
	"encoding/binary"
	"math/bits"

	"github.com/pmuens/ctk/ctk/bytesx"
	"github.com/pmuens/ctk/ctk/ctkerr"
)

// BlockSize is the size (in bytes) of the input to be processed at a time.
const BlockSize = 16

// KeySize is the size (in bytes) of a Poly1305 one-time key.
const KeySize = 32

// TagSize is the size (in bytes) of a Poly1305 tag.
const TagSize = 16

const mask26 = 0x3ffffff

// Poly1305 is a stateful instance of the Poly1305 one-time authenticator.
// A key must never be reused across two different messages.
type Poly1305 struct {
	// r is the clamped key material, split into 5 26-bit limbs.
	r [5]uint64
	// s5 holds 5*r[1..4], precomputed to fold the mod-p reduction's
	// 2^130 ≡ 5 (mod 2^130-5) term into the schoolbook multiply.
	s5 [4]uint64

	// h is the running accumulator, 5 26-bit limbs.
	h [5]uint64

	// s is the key's second 16 bytes, added to the accumulator at the end.
	s [16]byte
}

// New creates a new instance of the Poly1305 MAC from a 32-byte one-time
// key, returning ctkerr.ErrInvalidKeyLength if key is not exactly 32
// bytes.
func New(key []byte) (*Poly1305, error) {
	if len(key) != KeySize {
		return nil, ctkerr.ErrInvalidKeyLength
	}

	var rBytes [16]byte
	copy(rBytes[:], key[0:16])
	clamp(&rBytes)

	lo := binary.LittleEndian.Uint64(rBytes[0:8])
	hi := binary.LittleEndian.Uint64(rBytes[8:16])

	p := &Poly1305{}
	p.r[0] = lo & mask26
	p.r[1] = (lo >> 26) & mask26
	p.r[2] = ((lo >> 52) | (hi << 12)) & mask26
	p.r[3] = (hi >> 14) & mask26
	p.r[4] = (hi >> 40) & mask26

	for i := 0; i < 4; i++ {
		p.s5[i] = p.r[i+1] * 5
	}

	copy(p.s[:], key[16:32])

	return p, nil
}

// Tag consumes data (the full message to authenticate, already built by
// the caller — e.g. the AEAD composition's AAD‖ciphertext‖lengths input)
// and returns the 16-byte Poly1305 tag. A Poly1305 instance is one-time:
// call Tag exactly once per key.
func (p *Poly1305) Tag(data []byte) [TagSize]byte {
	for len(data) > 0 {
		n := BlockSize
		full := true
		if n > len(data) {
			n = len(data)
			full = false
		}
		p.absorb(data[:n], full)
		data = data[n:]
	}

	return p.finalize()
}

// absorb folds one message block (16 bytes, or fewer for the final
// block) into the accumulator: h = (h + block) * r mod (2^130 - 5).
func (p *Poly1305) absorb(block []byte, full bool) {
	var buf [16]byte
	n := copy(buf[:], block)

	var hibit uint64
	if full {
		hibit = 1 << 24
	} else {
		buf[n] = 0x01
	}

	lo := binary.LittleEndian.Uint64(buf[0:8])
	hi := binary.LittleEndian.Uint64(buf[8:16])

	c0 := lo & mask26
	c1 := (lo >> 26) & mask26
	c2 := ((lo >> 52) | (hi << 12)) & mask26
	c3 := (hi >> 14) & mask26
	c4 := ((hi >> 40) & mask26) | hibit

	h0 := p.h[0] + c0
	h1 := p.h[1] + c1
	h2 := p.h[2] + c2
	h3 := p.h[3] + c3
	h4 := p.h[4] + c4

	r0, r1, r2, r3, r4 := p.r[0], p.r[1], p.r[2], p.r[3], p.r[4]
	s1, s2, s3, s4 := p.s5[0], p.s5[1], p.s5[2], p.s5[3]

	// Schoolbook multiply h * r mod (2^130-5), using 2^130 ≡ 5 (mod p)
	// to fold the would-be 6th-limb terms back into limbs 0-3 via the
	// precomputed s_i = 5*r_i.
	d0 := h0*r0 + h1*s4 + h2*s3 + h3*s2 + h4*s1
	d1 := h0*r1 + h1*r0 + h2*s4 + h3*s3 + h4*s2
	d2 := h0*r2 + h1*r1 + h2*r0 + h3*s4 + h4*s3
	d3 := h0*r3 + h1*r2 + h2*r1 + h3*r0 + h4*s4
	d4 := h0*r4 + h1*r3 + h2*r2 + h3*r1 + h4*r0

	carry := d0 >> 26
	h0 = d0 & mask26
	d1 += carry

	carry = d1 >> 26
	h1 = d1 & mask26
	d2 += carry

	carry = d2 >> 26
	h2 = d2 & mask26
	d3 += carry

	carry = d3 >> 26
	h3 = d3 & mask26
	d4 += carry

	carry = d4 >> 26
	h4 = d4 & mask26

	// limb 4 holds the 2^104 scale; anything carried out of it represents
	// a multiple of 2^130, which is congruent to 5 mod p.
	h0 += carry * 5
	carry = h0 >> 26
	h0 &= mask26
	h1 += carry

	p.h[0], p.h[1], p.h[2], p.h[3], p.h[4] = h0, h1, h2, h3, h4
}

// finalize fully reduces the accumulator modulo 2^130-5, adds s modulo
// 2^128, and serializes the 16-byte tag in little-endian order.
//
// The per-block hot path above stays entirely within 64-bit limb
// arithmetic; this step runs once per Tag call regardless of message
// length, so folding the accumulator through a 128-bit integer here does
// not reintroduce message-length-dependent timing into the per-block
// loop the spec is concerned with.
func (p *Poly1305) finalize() [TagSize]byte {
	h0, h1, h2, h3, h4 := p.h[0], p.h[1], p.h[2], p.h[3], p.h[4]

	// Compute g = h + (-p) = h + 5 - 2^130, in the same 5x26-bit limbs.
	// g4's sign (once the final borrow of 2^26 is applied) tells us
	// whether h was already less than p.
	c := h0 + 5
	g0 := c & mask26
	c >>= 26
	c += h1
	g1 := c & mask26
	c >>= 26
	c += h2
	g2 := c & mask26
	c >>= 26
	c += h3
	g3 := c & mask26
	c >>= 26
	c += h4
	g4 := c - (1 << 26)

	// g4's top bit is set (g4 "negative" as a two's complement uint64)
	// iff h < p, i.e. no reduction was needed.
	selectG := uint64(0) - (g4 >> 63 ^ 1)
	keepH := ^selectG

	h0 = (h0 & keepH) | (g0 & selectG)
	h1 = (h1 & keepH) | (g1 & selectG)
	h2 = (h2 & keepH) | (g2 & selectG)
	h3 = (h3 & keepH) | (g3 & selectG)
	h4 = (h4 & keepH) | (g4 & selectG)

	// Recombine the now fully-reduced (< 2^130-5) limbs into two 64-bit
	// words. Bits 128 and 129 are dropped by the uint64 shifts below,
	// which is correct: the tag is h+s taken modulo 2^128.
	accLo := h0 | (h1 << 26) | (h2 << 52)
	accHi := (h2 >> 12) | (h3 << 14) | (h4 << 40)

	sLo := binary.LittleEndian.Uint64(p.s[0:8])
	sHi := binary.LittleEndian.Uint64(p.s[8:16])

	tagLo, carry := bits.Add64(accLo, sLo, 0)
	tagHi, _ := bits.Add64(accHi, sHi, carry)

	var tag [TagSize]byte
	binary.LittleEndian.PutUint64(tag[0:8], tagLo)
	binary.LittleEndian.PutUint64(tag[8:16], tagHi)

	return tag
}

// Verify reports whether tag is the correct Poly1305 tag for data,
// comparing in constant time.
func Verify(key, data, tag []byte) error {
	if len(key) != KeySize {
		return ctkerr.ErrInvalidKeyLength
	}
	p, err := New(key)
	if err != nil {
		return err
	}
	got := p.Tag(data)
	if !bytesx.ConstantTimeEqual(got[:], tag) {
		return ctkerr.ErrDecryptionFailed
	}
	return nil
}

// clamp clamps r in place per RFC 8439 §2.5: r &= 0x0ffffffc0ffffffc0ffffffc0fffffff.
func clamp(r *[16]byte) {
	r[3] &= 15
	r[7] &= 15
	r[11] &= 15
	r[15] &= 15

	r[4] &= 252
	r[8] &= 252
	r[12] &= 252
}
