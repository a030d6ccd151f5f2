package stream

import "github.com/streamcrypt/streamcrypt/internal/streamcipher"

// DefaultChunkSize is the chunk size used when no WithChunkSize option is
// given: 64 KiB.
const DefaultChunkSize = 65536

// Version selects the final-chunk framing rule a Writer uses, and that a
// Reader enforces after reading it back off the header.
type Version = streamcipher.Version

const (
	// VersionOne permits a full-size final chunk. Decryption of a
	// version-1 stream may need a one-shot retry to resolve the
	// resulting ambiguity (see Reader).
	VersionOne = streamcipher.VersionOne
	// VersionTwo forbids a full-size final chunk, appending an extra
	// zero-length EOF chunk when needed. This is the default.
	VersionTwo = streamcipher.VersionTwo
)

type writerConfig struct {
	version   Version
	ad        []byte
	info      []byte
	chunkSize int
}

func defaultWriterConfig() writerConfig {
	return writerConfig{
		version:   VersionTwo,
		chunkSize: DefaultChunkSize,
	}
}

// WriterOption configures a Writer constructed by NewWriter.
type WriterOption func(*writerConfig)

// WithVersion selects the wire version. The default is VersionTwo.
func WithVersion(v Version) WriterOption {
	return func(c *writerConfig) { c.version = v }
}

// WithAssociatedData binds ad to every chunk as associated data. The
// default is no associated data.
func WithAssociatedData(ad []byte) WriterOption {
	return func(c *writerConfig) { c.ad = ad }
}

// WithInfo sets the HKDF info parameter used to bind the derived key to a
// particular context. The default is no info.
func WithInfo(info []byte) WriterOption {
	return func(c *writerConfig) { c.info = info }
}

// WithChunkSize overrides the compile-time default chunk size C. Both
// sides of a stream must agree on C out of band; it is not carried on the
// wire.
func WithChunkSize(n int) WriterOption {
	return func(c *writerConfig) { c.chunkSize = n }
}

type readerConfig struct {
	ad        []byte
	info      []byte
	chunkSize int
}

func defaultReaderConfig() readerConfig {
	return readerConfig{chunkSize: DefaultChunkSize}
}

// ReaderOption configures a Reader constructed by NewReader.
type ReaderOption func(*readerConfig)

// WithReaderAssociatedData binds ad to every chunk as associated data. It
// must match the value given to the Writer that produced the stream.
func WithReaderAssociatedData(ad []byte) ReaderOption {
	return func(c *readerConfig) { c.ad = ad }
}

// WithReaderInfo sets the HKDF info parameter. It must match the value
// given to the Writer that produced the stream.
func WithReaderInfo(info []byte) ReaderOption {
	return func(c *readerConfig) { c.info = info }
}

// WithReaderChunkSize overrides the compile-time default chunk size C. It
// must match the value the Writer used.
func WithReaderChunkSize(n int) ReaderOption {
	return func(c *readerConfig) { c.chunkSize = n }
}
