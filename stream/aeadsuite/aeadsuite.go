// Package aeadsuite provides concrete streamcipher.Suite implementations
// over golang.org/x/crypto/chacha20poly1305, the AEAD named as the default
// example in the streaming construction's own documentation.
//
// The suites in this package are external collaborators in the sense of
// the framing protocol: stream.Writer and stream.Reader never import
// chacha20poly1305 directly, they consume whatever streamcipher.Suite they
// are handed. This package just ships one usable out of the box, the same
// way filippo.io/age's internal/age/primitives.go wraps chacha20poly1305
// next to the generic cipher.AEAD-shaped code that consumes it.
package aeadsuite

import (
	"golang.org/x/crypto/chacha20poly1305"

	"github.com/streamcrypt/streamcrypt/internal/streamcipher"
)

// XChaCha20Poly1305 is the extended-nonce ChaCha20-Poly1305 suite. Its
// 24-byte nonce leaves NonceSize-5 = 19 bytes of random prefix per stream.
type XChaCha20Poly1305 struct{}

// KeySize implements streamcipher.Suite.
func (XChaCha20Poly1305) KeySize() int { return chacha20poly1305.KeySize }

// NonceSize implements streamcipher.Suite.
func (XChaCha20Poly1305) NonceSize() int { return chacha20poly1305.NonceSizeX }

// Overhead implements streamcipher.Suite.
func (XChaCha20Poly1305) Overhead() int { return chacha20poly1305.Overhead }

// New implements streamcipher.Suite.
func (XChaCha20Poly1305) New(key []byte) (streamcipher.AEAD, error) {
	return chacha20poly1305.NewX(key)
}

// ChaCha20Poly1305 is the standard 12-byte-nonce ChaCha20-Poly1305 suite.
// Its NonceSize-5 = 7 byte random prefix gives a much smaller birthday
// bound than XChaCha20Poly1305 and should only be used for short-lived
// streams.
type ChaCha20Poly1305 struct{}

// KeySize implements streamcipher.Suite.
func (ChaCha20Poly1305) KeySize() int { return chacha20poly1305.KeySize }

// NonceSize implements streamcipher.Suite.
func (ChaCha20Poly1305) NonceSize() int { return chacha20poly1305.NonceSize }

// Overhead implements streamcipher.Suite.
func (ChaCha20Poly1305) Overhead() int { return chacha20poly1305.Overhead }

// New implements streamcipher.Suite.
func (ChaCha20Poly1305) New(key []byte) (streamcipher.AEAD, error) {
	return chacha20poly1305.New(key)
}
