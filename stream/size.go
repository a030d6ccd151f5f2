package stream

import "github.com/streamcrypt/streamcrypt/internal/streamcipher"

// Size returns the ciphertext length produced by encrypting n bytes of
// plaintext with the given suite, chunk size and version.
//
// size(n) = 4 (version) + 32 (salt) + (NonceSize-5) (prefix) + n + nchunks*TagSize
//
// where nchunks = ceil(n/chunkSize), plus one extra empty chunk if version
// is VersionTwo and n is a nonzero exact multiple of chunkSize (VersionTwo
// never emits a full-size final chunk). The n=0 case always contributes
// exactly the one empty EOF chunk every stream must end with, for both
// versions (see SPEC_FULL.md's Open Question decisions).
func Size(suite streamcipher.Suite, chunkSize int, version Version, n int) int {
	var nchunks int
	switch {
	case n == 0:
		nchunks = 1
	default:
		nchunks = (n + chunkSize - 1) / chunkSize
		if version == VersionTwo && n%chunkSize == 0 {
			nchunks++
		}
	}

	header := streamcipher.Size + streamcipher.SaltSize + (suite.NonceSize() - 5)
	return header + n + nchunks*suite.Overhead()
}
