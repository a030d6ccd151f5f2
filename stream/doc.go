// Package stream implements an OAE2 STREAM chunked authenticated
// encryption construction: a byte stream is encrypted and decrypted in
// one left-to-right pass, chunk by chunk, so a Reader can emit verified
// plaintext incrementally while staying resistant to chunk reordering,
// truncation, and duplication.
//
// The construction is parameterized over a symmetric AEAD via the
// streamcipher.Suite interface; package aeadsuite ships
// XChaCha20-Poly1305 and ChaCha20-Poly1305 implementations. A per-stream
// key is derived from caller-supplied input keying material with
// HKDF-SHA256, salted per stream, and every chunk's nonce is built from a
// random prefix, a monotonically increasing counter, and a trailing
// end-of-stream flag.
//
//	w, err := stream.NewWriter(dst, rand.Reader, ikm, aeadsuite.XChaCha20Poly1305{})
//	io.Copy(w, plaintext)
//	w.Close()
//
//	r, err := stream.NewReader(src, ikm, aeadsuite.XChaCha20Poly1305{})
//	io.Copy(plaintext, r)
package stream
