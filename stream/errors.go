package stream

import (
	"github.com/streamcrypt/streamcrypt/internal/streamcipher"
	"github.com/streamcrypt/streamcrypt/internal/streamio"
)

// ErrAuthentication is returned by Reader.Read when a chunk's tag fails to
// verify, or when the underlying source ends before a single full tag's
// worth of data is read for the chunk currently being decoded. It covers
// tampering, reordering, duplication, and truncation alike; the
// construction intentionally does not distinguish between them, since
// whichever it is, the contents cannot be trusted.
var ErrAuthentication = streamcipher.ErrAuthentication

// ErrCounterOverflow is returned if a stream's 32-bit chunk counter would
// wrap. At the default 64 KiB chunk size this requires encrypting or
// decrypting north of 2^32 chunks (256 TiB) through one Writer or Reader.
var ErrCounterOverflow = streamcipher.ErrCounterOverflow

// ErrInvalidKeySize is returned by NewWriter/NewReader when HKDF-SHA256
// cannot produce a key of the length suite.KeySize() requests.
var ErrInvalidKeySize = streamcipher.ErrInvalidKeySize

// InvalidVersionError is returned by NewReader when the header carries a
// version other than VersionOne or VersionTwo.
type InvalidVersionError = streamcipher.InvalidVersionError

// UnexpectedEOFError is returned by NewReader when the underlying source
// ends before the fixed-size header is fully read.
type UnexpectedEOFError = streamio.UnexpectedEOFError

// ShortWriteError is returned by Writer/NewWriter when the underlying
// sink accepts zero bytes, without an error, while data is still pending.
// Partial writes that make progress are retried.
type ShortWriteError = streamio.ShortWriteError
