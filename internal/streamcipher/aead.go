package streamcipher

import "crypto/cipher"

// AEAD is the symmetric primitive the framing protocol is parameterized
// over. It is exactly crypto/cipher.AEAD: Seal/Open already operate
// in-place when dst and the plaintext/ciphertext slice share a backing
// array with enough spare capacity for the tag, which is how Writer seals
// each chunk (see stream/writer.go). Reader opens each chunk from its
// ciphertext buffer into a separate plaintext buffer (see stream/reader.go).
type AEAD = cipher.AEAD

// Suite constructs an AEAD from a key and reports the key, nonce and tag
// sizes it uses. It is the "injected dependency with a narrow contract" the
// spec describes. All three sizes are available before an AEAD exists:
// KeySize sizes the HKDF-derived key, NonceSize sizes the header's nonce
// prefix, and Overhead sizes the staging buffers.
type Suite interface {
	// KeySize is the length in bytes of the key New expects.
	KeySize() int
	// NonceSize is the length in bytes of the nonce New's AEAD expects.
	// Must be >= 5 (5 bytes are reserved for the counter and EOF byte).
	NonceSize() int
	// Overhead is the length in bytes of the authentication tag New's
	// AEAD appends to each sealed chunk.
	Overhead() int
	// New constructs an AEAD from a key of exactly KeySize() bytes.
	New(key []byte) (AEAD, error)
}
