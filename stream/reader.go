package stream

import (
	"fmt"
	"io"

	"github.com/awnumar/memguard"

	"github.com/streamcrypt/streamcrypt/internal/buffer"
	"github.com/streamcrypt/streamcrypt/internal/streamcipher"
	"github.com/streamcrypt/streamcrypt/internal/streamio"
)

// Reader decrypts and authenticates a chunked ciphertext stream produced
// by a Writer, delivering plaintext through the standard io.Reader
// contract. No plaintext byte is ever handed to a caller before the chunk
// it belongs to has verified; a chunk that fails authentication, is
// reordered, duplicated, or missing is reported as an error instead of
// partial output.
//
// A Reader is not safe for concurrent use.
type Reader struct {
	src     io.Reader
	aead    streamcipher.AEAD
	nonce   *streamcipher.Nonce
	cipher  *buffer.Buffer // staged ciphertext||tag for the chunk being read
	plain   *buffer.Buffer // decrypted plaintext not yet delivered to callers
	ad      []byte
	version Version
	eof     bool
}

// NewReader creates a Reader that decrypts src. ikm must be the same
// input keying material given to the Writer that produced the stream, and
// suite and every option must match what that Writer used; a mismatch
// surfaces as an authentication error on the first chunk, not as a
// distinct "configuration" error, since the two are indistinguishable
// from outside the AEAD.
func NewReader(src io.Reader, ikm []byte, suite streamcipher.Suite, opts ...ReaderOption) (*Reader, error) {
	cfg := defaultReaderConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.chunkSize <= 0 {
		return nil, fmt.Errorf("streamcrypt: invalid chunk size %d", cfg.chunkSize)
	}
	if suite.NonceSize() < 5 {
		return nil, fmt.Errorf("streamcrypt: suite nonce size %d too small", suite.NonceSize())
	}

	var versionBytes [streamcipher.Size]byte
	if err := streamio.ReadFull(src, versionBytes[:]); err != nil {
		return nil, fmt.Errorf("streamcrypt: reading version: %w", err)
	}
	version, err := streamcipher.ParseVersion(versionBytes[:])
	if err != nil {
		return nil, err
	}

	salt := make([]byte, streamcipher.SaltSize)
	if err := streamio.ReadFull(src, salt); err != nil {
		return nil, fmt.Errorf("streamcrypt: reading salt: %w", err)
	}

	prefixSize := suite.NonceSize() - 5
	prefix := make([]byte, prefixSize)
	if err := streamio.ReadFull(src, prefix); err != nil {
		return nil, fmt.Errorf("streamcrypt: reading nonce prefix: %w", err)
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

	return &Reader{
		src:     src,
		aead:    aead,
		nonce:   streamcipher.NewNonce(suite.NonceSize(), prefix),
		cipher:  buffer.New(cfg.chunkSize + suite.Overhead()),
		plain:   buffer.New(cfg.chunkSize),
		ad:      cfg.ad,
		version: version,
	}, nil
}

// Read implements io.Reader. It returns decrypted plaintext a chunk at a
// time, pulling and authenticating one new chunk from the underlying
// stream whenever the previous chunk's plaintext has been fully
// delivered. A zero-length dst is a no-op, matching io.Reader.
func (r *Reader) Read(dst []byte) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if n := r.plain.Read(dst); n > 0 {
		return n, nil
	}
	if r.eof {
		return 0, io.EOF
	}
	if err := r.readChunk(); err != nil {
		return 0, err
	}
	return r.plain.Read(dst), nil
}

// Close zeroes the Reader's staging buffers. It does not close the
// underlying io.Reader. Callers that read a stream to completion (until
// Read returns io.EOF) should still call Close, since the final chunk's
// plaintext may otherwise linger in r.plain past the last Read call.
func (r *Reader) Close() error {
	r.cipher.Destroy()
	r.plain.Destroy()
	return nil
}

// readChunk pulls the next ciphertext chunk off src, decrypts and
// authenticates it, and stages the resulting plaintext in r.plain. It
// must not be called while r.plain still has unread bytes.
func (r *Reader) readChunk() error {
	r.cipher.Reset()
	n, err := r.cipher.ReadFrom(r.src)
	if err != nil {
		return err
	}
	tagSize := r.aead.Overhead()
	if n < tagSize {
		return streamcipher.ErrAuthentication
	}

	eof := n < r.cipher.Cap()
	r.nonce.SetEOF(eof)

	plaintext, err := r.aead.Open(r.plain.SealScratch(), r.nonce.Bytes(), r.cipher.Bytes(), r.ad)
	if err != nil && r.version == VersionOne && !eof {
		// The chunk exactly filled the buffer, which is ambiguous for
		// VersionOne: it could be a full non-final chunk, or a
		// full-size final chunk. Retry at the EOF nonce before giving
		// up.
		eof = true
		r.nonce.SetEOF(true)
		plaintext, err = r.aead.Open(r.plain.SealScratch(), r.nonce.Bytes(), r.cipher.Bytes(), r.ad)
	}
	if err != nil {
		return streamcipher.ErrAuthentication
	}

	if !eof {
		if err := r.nonce.Advance(); err != nil {
			return err
		}
	}
	r.eof = eof
	r.plain.SetFilled(len(plaintext))
	return nil
}
