// Package keyfile generates and reads keyfiles used as a second factor
// alongside a password.
//
// A keyfile is an opaque blob of random bytes. Only its SHA-256 digest is
// treated as secret material downstream, which bounds memory use regardless
// of keyfile size and keeps the combined secret a fixed width.
package keyfile

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"os"

	cerrors "github.com/dmytro-macuser/cryptocrate/internal/errors"
)

// DefaultSize is the default keyfile size in bytes (4 KiB).
const DefaultSize = 4096

// MaxSize is the largest accepted keyfile (10 MiB).
const MaxSize = 10 * 1024 * 1024

// Generate writes size cryptographically random bytes to path. A size of 0
// selects DefaultSize. Sizes above MaxSize are rejected before anything is
// written.
func Generate(path string, size int) error {
	if size == 0 {
		size = DefaultSize
	}
	if size > MaxSize {
		return fmt.Errorf("%w: requested %d bytes (max %d)", cerrors.ErrKeyfileTooLarge, size, MaxSize)
	}

	data := make([]byte, size)
	if _, err := rand.Read(data); err != nil {
		return fmt.Errorf("failed to generate random data: %w", err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create keyfile: %w", err)
	}
	defer file.Close()

	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("failed to write keyfile: %w", err)
	}
	if err := file.Sync(); err != nil {
		return fmt.Errorf("failed to sync keyfile: %w", err)
	}

	return nil
}

// Read hashes the keyfile contents into a 32-byte digest. Empty keyfiles and
// keyfiles above MaxSize are rejected.
func Read(path string) ([32]byte, error) {
	var digest [32]byte

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return digest, fmt.Errorf("%w: %s", cerrors.ErrFileNotFound, path)
		}
		return digest, fmt.Errorf("failed to stat keyfile: %w", err)
	}
	if info.Size() > MaxSize {
		return digest, fmt.Errorf("%w: %d bytes (max %d)", cerrors.ErrKeyfileTooLarge, info.Size(), MaxSize)
	}
	if info.Size() == 0 {
		return digest, cerrors.ErrKeyfileEmpty
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return digest, fmt.Errorf("failed to read keyfile: %w", err)
	}

	return sha256.Sum256(data), nil
}

// Combine hashes the password together with a keyfile digest into the
// effective secret passed to the encryption entry points. Keyfile-backed and
// plain-password flows are treated identically once combined.
func Combine(password string, digest [32]byte) []byte {
	h := sha256.New()
	h.Write([]byte(password))
	h.Write(digest[:])
	return h.Sum(nil)
}
