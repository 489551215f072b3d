// Package format defines the on-disk CryptoCrate container layout.
//
// A container is a single self-describing file:
//
//	magic "CRAT" (4 bytes)
//	version (1 byte)
//	algorithm id (1 byte)
//	salt (32 bytes, input to key derivation)
//	nonce (12 bytes, input to the AEAD cipher)
//	metadata length (4 bytes, little-endian)
//	metadata block (variable, see Metadata)
//	ciphertext with appended authentication tag
//
// Magic and version are validated before any other field is trusted. Salt
// and nonce are generated fresh for every encryption; a repeated (key, nonce)
// pair breaks the AEAD guarantees. There is no independent checksum; tamper
// detection is delegated entirely to the authentication tag.
//
// This package is a pure schema definition with no I/O of its own; the
// crypto and inspect packages consume it for writing and validation.
package format
