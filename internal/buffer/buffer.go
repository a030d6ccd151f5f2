// Package buffer implements the fixed-capacity staging buffer the
// streaming encrypt/decrypt state machines use to assemble one chunk at a
// time.
package buffer

import (
	"io"

	"github.com/awnumar/memguard"

	"github.com/streamcrypt/streamcrypt/internal/streamio"
)

// Buffer is a fixed-capacity byte region with two monotone cursors, read
// <= write <= cap(data). The live contents are data[read:write].
//
// A Buffer is not safe for concurrent use; it is meant to be owned
// exclusively by one Writer or Reader.
type Buffer struct {
	data  []byte
	limit int
	read  int
	write int
}

// New allocates a Buffer with the given fixed capacity.
func New(capacity int) *Buffer {
	return &Buffer{data: make([]byte, capacity), limit: capacity}
}

// NewWithHeadroom allocates a Buffer whose write capacity (IsFull/Write) is
// limit, but whose backing array reserves headroom extra bytes past that so
// SealScratch can hand an AEAD room to grow a chunk into its tag without
// reallocating. Only the Writer side needs headroom; a Reader's staging
// buffer is already sized ciphertext+tag and opens back down, so it uses
// New instead.
func NewWithHeadroom(limit, headroom int) *Buffer {
	return &Buffer{data: make([]byte, limit+headroom), limit: limit}
}

// Len returns the number of unread bytes in the buffer.
func (b *Buffer) Len() int { return b.write - b.read }

// IsEmpty reports whether all bytes have been read.
func (b *Buffer) IsEmpty() bool { return b.Len() == 0 }

// IsFull reports whether the buffer is full and no more data can be
// written without first making room.
func (b *Buffer) IsFull() bool { return b.write == b.limit }

// Cap returns the buffer's write capacity (its limit, not counting any
// headroom reserved by NewWithHeadroom).
func (b *Buffer) Cap() int { return b.limit }

// SetFilled marks the first n bytes of the backing array as the unread
// contents, with the read cursor at 0. It is for callers that wrote
// directly into the slice returned by SealScratch (an AEAD Open call, for
// instance) instead of going through Write.
func (b *Buffer) SetFilled(n int) {
	b.read = 0
	b.write = n
}

// Reset discards the buffer's contents, making its full capacity
// available for writing again.
func (b *Buffer) Reset() {
	b.read = 0
	b.write = 0
}

// Truncate discards all but the first n unread bytes. Truncate(0) is
// equivalent to Reset.
func (b *Buffer) Truncate(n int) {
	if n == 0 {
		b.Reset()
		return
	}
	b.write = b.read + n
}

// Bytes returns the unread portion of the buffer. The slice aliases the
// buffer's backing array and is invalidated by the next Write/Read/Reset.
func (b *Buffer) Bytes() []byte { return b.data[b.read:b.write] }

// Read copies min(b.Len(), len(dst)) bytes into dst and advances the read
// cursor, returning the number of bytes copied.
func (b *Buffer) Read(dst []byte) int {
	n := copy(dst, b.data[b.read:b.write])
	b.read += n
	return n
}

// Write copies min(limit-write, len(src)) bytes from src into the buffer
// and advances the write cursor, returning the number of bytes copied.
func (b *Buffer) Write(src []byte) int {
	n := copy(b.data[b.write:b.limit], src)
	b.write += n
	return n
}

// SealScratch returns the buffer's full backing array truncated to zero
// length, for use as an AEAD Seal/Open destination that overwrites the
// buffer's own contents in place. Only valid while the read cursor is at
// 0 (the Writer's chunk buffer, which is never drained by Read) or while
// the buffer holds no unread bytes (the Reader's plaintext buffer, which is
// only refilled once fully drained); SetFilled then moves the read cursor
// back to 0.
func (b *Buffer) SealScratch() []byte {
	return b.data[:0]
}

// ReadFrom pulls from source into the buffer's remaining capacity until
// the buffer is full or source is exhausted, returning the number of
// bytes pulled. Unlike ReadFull, reaching io.EOF partway through is not an
// error here: a short final chunk is exactly what a caller decoding a
// chunked stream expects to see.
func (b *Buffer) ReadFrom(source streamio.Source) (int, error) {
	n := 0
	for !b.IsFull() {
		m, err := source.Read(b.data[b.write:b.limit])
		b.write += m
		n += m
		if err != nil {
			if err == io.EOF {
				break
			}
			return n, err
		}
		if m == 0 {
			break
		}
	}
	return n, nil
}

// WriteTo pushes the buffer's unread contents to sink until it is empty or
// sink returns a short write, returning the number of bytes pushed. If no
// progress is made at all, the buffer is reset so a subsequent retry
// starts fresh.
func (b *Buffer) WriteTo(sink streamio.Sink) (int, error) {
	start := b.read
	for !b.IsEmpty() {
		n, err := sink.Write(b.data[b.read:b.write])
		if err != nil {
			return b.read - start, err
		}
		if n == 0 {
			break
		}
		b.read += n
	}
	n := b.read - start
	if n == 0 {
		b.Reset()
	}
	return n, nil
}

// Destroy zeroes the buffer's entire backing array. Defense in depth
// against residual plaintext lingering in process memory after the
// Writer/Reader that owns this Buffer is done with it.
func (b *Buffer) Destroy() {
	memguard.WipeBytes(b.data)
	b.read = 0
	b.write = 0
}
