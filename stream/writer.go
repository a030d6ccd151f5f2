package stream

import (
	"fmt"
	"io"

	"github.com/awnumar/memguard"

	"github.com/streamcrypt/streamcrypt/internal/buffer"
	"github.com/streamcrypt/streamcrypt/internal/streamcipher"
	"github.com/streamcrypt/streamcrypt/internal/streamio"
)

// Writer encrypts plaintext written to it into a chunked, authenticated
// ciphertext stream on an underlying io.Writer. It implements io.Writer;
// callers must call Close when done to emit the terminal chunk.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	dst     io.Writer
	aead    streamcipher.AEAD
	nonce   *streamcipher.Nonce
	buf     *buffer.Buffer
	ad      []byte
	version Version
	closed  bool
}

// NewWriter creates a Writer that encrypts to dst. rng supplies the
// per-stream salt and nonce prefix and must be a cryptographically secure
// source (crypto/rand.Reader in the common case). ikm is the input keying
// material the per-stream key is derived from via HKDF-SHA256; it is not
// used directly as the AEAD key.
func NewWriter(dst io.Writer, rng io.Reader, ikm []byte, suite streamcipher.Suite, opts ...WriterOption) (*Writer, error) {
	cfg := defaultWriterConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.chunkSize <= 0 {
		return nil, fmt.Errorf("streamcrypt: invalid chunk size %d", cfg.chunkSize)
	}
	if suite.NonceSize() < 5 {
		return nil, fmt.Errorf("streamcrypt: suite nonce size %d too small", suite.NonceSize())
	}

	versionBytes := cfg.version.Bytes()
	if err := streamio.WriteAll(dst, versionBytes[:]); err != nil {
		return nil, err
	}

	salt := make([]byte, streamcipher.SaltSize)
	if _, err := io.ReadFull(rng, salt); err != nil {
		return nil, fmt.Errorf("streamcrypt: reading salt: %w", err)
	}
	if err := streamio.WriteAll(dst, salt); err != nil {
		return nil, err
	}

	prefixSize := suite.NonceSize() - 5
	prefix := make([]byte, prefixSize)
	if _, err := io.ReadFull(rng, prefix); err != nil {
		return nil, fmt.Errorf("streamcrypt: reading nonce prefix: %w", err)
	}
	if err := streamio.WriteAll(dst, prefix); err != nil {
		return nil, err
	}

	key, err := streamcipher.DeriveKey(suite, ikm, salt, cfg.info)
	if err != nil {
		return nil, err
	}
	aead, err := suite.New(key)
	memguard.WipeBytes(key)
	if err != nil {
		return nil, fmt.Errorf("streamcrypt: constructing AEAD: %w", err)
	}

	return &Writer{
		dst:     dst,
		aead:    aead,
		nonce:   streamcipher.NewNonce(suite.NonceSize(), prefix),
		buf:     buffer.NewWithHeadroom(cfg.chunkSize, suite.Overhead()),
		ad:      cfg.ad,
		version: cfg.version,
	}, nil
}

// Write implements io.Writer, buffering p into fixed-size chunks and
// emitting a sealed chunk to the underlying stream every time a chunk
// fills. The two wire versions buffer in opposite order around the fill
// check: VersionOne flushes before writing so it can end on an exactly
// full final chunk, VersionTwo writes before flushing so a full buffer is
// never mistaken for the stream's end.
func (w *Writer) Write(p []byte) (int, error) {
	if w.closed {
		return 0, fmt.Errorf("streamcrypt: write after close")
	}
	total := 0
	for total < len(p) {
		switch w.version {
		case VersionOne:
			if w.buf.IsFull() {
				if err := w.flushInternal(false); err != nil {
					return total, err
				}
			}
			total += w.buf.Write(p[total:])
		default:
			total += w.buf.Write(p[total:])
			if w.buf.IsFull() {
				if err := w.flushInternal(false); err != nil {
					return total, err
				}
			}
		}
	}
	return total, nil
}

// Close flushes any buffered plaintext and emits the terminal, EOF-flagged
// chunk. It must be called exactly once, after the last Write, and before
// the underlying stream is considered complete; a reader that never sees
// the EOF chunk will report the stream as truncated. Close does not close
// the underlying io.Writer.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	err := w.flushInternal(true)
	w.buf.Destroy()
	return err
}

// flushInternal seals the buffer's current contents as one chunk and
// writes ciphertext||tag to the destination in a single call, which is
// byte-for-byte identical to writing the ciphertext and then the detached
// tag separately. Sealing is done in place: SealScratch hands Seal the
// buffer's own backing array as its destination, so no chunk-sized
// allocation happens per chunk.
func (w *Writer) flushInternal(eof bool) error {
	w.nonce.SetEOF(eof)
	sealed := w.aead.Seal(w.buf.SealScratch(), w.nonce.Bytes(), w.buf.Bytes(), w.ad)
	if err := streamio.WriteAll(w.dst, sealed); err != nil {
		return err
	}
	if !eof {
		if err := w.nonce.Advance(); err != nil {
			return err
		}
	}
	w.buf.Reset()
	return nil
}
