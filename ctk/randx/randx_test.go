package randx_test

import (
	"bytes"
	"testing"

	"github.com/pmuens/ctk/ctk/randx"
)

func TestBytesLength(t *testing.T) {
	t.Parallel()

	b := randx.Bytes(32)
	if len(b) != 32 {
		t.Fatalf("len(Bytes(32)) = %d, want 32", len(b))
	}
}

func TestBytesAreRandom(t *testing.T) {
	t.Parallel()

	a := randx.Bytes(32)
	b := randx.Bytes(32)

	if bytes.Equal(a, b) {
		t.Errorf("two consecutive 32-byte draws were equal: %x", a)
	}
}
