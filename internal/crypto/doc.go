// Package crypto implements the CryptoCrate encryption pipeline.
//
// Encryption derives a per-file key from the caller's secret with Argon2id
// (fresh random salt), seals the possibly-compressed plaintext with
// AES-256-GCM (fresh random nonce), and writes the framed container defined
// by the format package. Decryption reverses the pipeline, failing closed on
// any framing mismatch and reporting tag failures uniformly as an invalid
// password.
//
// All operations are synchronous and independent; the only internal
// parallelism is the Argon2 lane count, which is part of the cost function
// rather than I/O concurrency. Derived keys live only on the stack of a
// single call and are never persisted.
package crypto
