package streamcipher

import "errors"

// ErrInvalidKeySize is returned when the HKDF expansion requested more
// output than HKDF-SHA256's 255*32-byte bound allows.
var ErrInvalidKeySize = errors.New("streamcrypt: invalid key size")

// ErrAuthentication is returned when a chunk's tag fails to verify, or
// when a physical read returns fewer bytes than a tag needs.
var ErrAuthentication = errors.New("streamcrypt: chunk authentication failed")

// ErrCounterOverflow is returned when the 32-bit chunk counter would wrap.
var ErrCounterOverflow = errors.New("streamcrypt: chunk counter overflow")
