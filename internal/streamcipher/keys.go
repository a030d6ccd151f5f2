package streamcipher

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"
)

// SaltSize is the length, in bytes, of the per-stream salt carried in the
// header and fed to HKDF.
const SaltSize = 32

// DeriveKey computes the per-stream encryption key as
// HKDF-SHA256(ikm, salt, info, L=suite.KeySize()), following the teacher's
// own hkdf.New(sha256.New, secret, salt, info) call sites (e.g.
// filippo.io/age's x25519.go/ssh.go).
func DeriveKey(suite Suite, ikm, salt, info []byte) ([]byte, error) {
	key := make([]byte, suite.KeySize())
	h := hkdf.New(sha256.New, ikm, salt, info)
	if _, err := io.ReadFull(h, key); err != nil {
		return nil, ErrInvalidKeySize
	}
	return key, nil
}
