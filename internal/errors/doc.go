// Package errors provides typed error values for the CryptoCrate application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. This makes
// error handling more robust and refactoring-safe.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Format errors: Container validation failures (ErrInvalidFormat, ErrUnsupportedVersion)
//   - Crypto errors: Encryption/decryption failures (ErrInvalidPassword, ErrKeyDerivation)
//   - File errors: File system issues (ErrFileNotFound, ErrKeyfileEmpty)
//
// # Usage
//
// Return errors from internal packages:
//
//	if !bytes.Equal(magic, format.MagicBytes) {
//	    return fmt.Errorf("%w: not a CryptoCrate file", errors.ErrInvalidFormat)
//	}
//
// Handle errors in the CLI layer:
//
//	_, err := crypto.Decrypt(in, out, password, opts)
//	if errors.Is(err, cerrors.ErrInvalidPassword) {
//	    // Show user-friendly message
//	}
//
// A decryption failure always surfaces as ErrInvalidPassword regardless of
// whether the key was wrong or the ciphertext was tampered with; the cipher
// cannot tell the two apart and neither should the error surface.
package errors
