package streamcipher

import "encoding/binary"

// Nonce is the per-chunk nonce layout: a random per-stream prefix, a
// big-endian 32-bit chunk counter, and a final EOF byte that is 0 for every
// chunk but the last. Counter and EOF are mutated in place as chunks are
// produced or consumed; Prefix is fixed for the life of a stream.
type Nonce struct {
	buf        []byte
	counterOff int
}

// NewNonce allocates a Nonce of the given total size (a Suite's
// NonceSize()), copying prefix into its leading bytes. len(prefix) must
// equal size-5.
func NewNonce(size int, prefix []byte) *Nonce {
	n := &Nonce{buf: make([]byte, size), counterOff: size - 5}
	copy(n.buf, prefix)
	return n
}

// Bytes returns the current nonce value. The slice aliases the Nonce's
// backing array and is invalidated by the next SetCounter/SetEOF call.
func (n *Nonce) Bytes() []byte { return n.buf }

// Counter returns the current chunk counter.
func (n *Nonce) Counter() uint32 {
	return binary.BigEndian.Uint32(n.buf[n.counterOff : n.counterOff+4])
}

// SetCounter overwrites the chunk counter.
func (n *Nonce) SetCounter(c uint32) {
	binary.BigEndian.PutUint32(n.buf[n.counterOff:n.counterOff+4], c)
}

// Advance increments the chunk counter, returning ErrCounterOverflow
// instead of wrapping on overflow.
func (n *Nonce) Advance() error {
	c := n.Counter()
	if c == ^uint32(0) {
		return ErrCounterOverflow
	}
	n.SetCounter(c + 1)
	return nil
}

// SetEOF sets or clears the trailing EOF byte.
func (n *Nonce) SetEOF(eof bool) {
	if eof {
		n.buf[len(n.buf)-1] = 1
	} else {
		n.buf[len(n.buf)-1] = 0
	}
}
