package streamcipher_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/streamcrypt/streamcrypt/internal/streamcipher"
)

func TestNonceLayout(t *testing.T) {
	prefix := bytes.Repeat([]byte{0xaa}, 19)
	n := streamcipher.NewNonce(24, prefix)
	b := n.Bytes()
	if !bytes.Equal(b[:19], prefix) {
		t.Fatalf("prefix not copied: %x", b[:19])
	}
	if n.Counter() != 0 {
		t.Fatalf("initial counter = %d, want 0", n.Counter())
	}
	if b[23] != 0 {
		t.Fatalf("initial EOF byte = %d, want 0", b[23])
	}
}

func TestNonceAdvance(t *testing.T) {
	n := streamcipher.NewNonce(24, bytes.Repeat([]byte{0}, 19))
	for i := 0; i < 5; i++ {
		if err := n.Advance(); err != nil {
			t.Fatalf("Advance(): %v", err)
		}
	}
	if n.Counter() != 5 {
		t.Fatalf("Counter() = %d, want 5", n.Counter())
	}
}

func TestNonceAdvanceOverflow(t *testing.T) {
	n := streamcipher.NewNonce(24, bytes.Repeat([]byte{0}, 19))
	n.SetCounter(^uint32(0))
	err := n.Advance()
	if !errors.Is(err, streamcipher.ErrCounterOverflow) {
		t.Fatalf("got %v, want ErrCounterOverflow", err)
	}
}

func TestNonceSetEOF(t *testing.T) {
	n := streamcipher.NewNonce(24, bytes.Repeat([]byte{0}, 19))
	n.SetEOF(true)
	if n.Bytes()[23] != 1 {
		t.Fatalf("EOF byte = %d, want 1", n.Bytes()[23])
	}
	n.SetEOF(false)
	if n.Bytes()[23] != 0 {
		t.Fatalf("EOF byte = %d, want 0", n.Bytes()[23])
	}
}
