package streamcipher

import (
	"encoding/binary"
	"fmt"
)

// Version selects the framing rules a Writer/Reader follows for the final
// chunk of a stream (see package stream's writer/reader for the exact
// difference).
type Version uint32

const (
	// VersionOne permits a full-size final chunk, which makes its
	// length ambiguous with a continuing stream; Reader resolves the
	// ambiguity with a one-shot retry at the EOF nonce.
	VersionOne Version = 1
	// VersionTwo forbids a full-size final chunk: if the plaintext
	// length is an exact multiple of the chunk size, an extra
	// zero-length EOF chunk is appended.
	VersionTwo Version = 2
)

// Size is the encoded width of a Version on the wire.
const Size = 4

// InvalidVersionError reports an unrecognized version value read from a
// stream header.
type InvalidVersionError struct {
	Version uint32
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("streamcrypt: invalid version: %d", e.Version)
}

// AppendTo appends the big-endian 4-byte encoding of v to dst.
func (v Version) AppendTo(dst []byte) []byte {
	return binary.BigEndian.AppendUint32(dst, uint32(v))
}

// Bytes returns the big-endian 4-byte encoding of v.
func (v Version) Bytes() [Size]byte {
	var b [Size]byte
	binary.BigEndian.PutUint32(b[:], uint32(v))
	return b
}

// String implements fmt.Stringer.
func (v Version) String() string {
	return fmt.Sprintf("%d", uint32(v))
}

// ParseVersion decodes and validates 4 big-endian bytes, failing with
// *InvalidVersionError for anything other than VersionOne or VersionTwo.
func ParseVersion(b []byte) (Version, error) {
	v := Version(binary.BigEndian.Uint32(b))
	switch v {
	case VersionOne, VersionTwo:
		return v, nil
	default:
		return 0, &InvalidVersionError{Version: uint32(v)}
	}
}
