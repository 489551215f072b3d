package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dmytro-macuser/cryptocrate/internal/compression"
	cerrors "github.com/dmytro-macuser/cryptocrate/internal/errors"
	"github.com/dmytro-macuser/cryptocrate/internal/format"
)

// MaxDecompressedSize caps decompression output at 1 GiB so a hostile or
// corrupted container cannot exhaust memory.
const MaxDecompressedSize = 1024 * 1024 * 1024

// Options configure an encrypt or decrypt operation. The zero value selects
// no compression, the default compression level, and default KDF costs.
type Options struct {
	Compress         bool
	CompressionLevel int
	KDF              Params
}

// Encrypt reads the file at inputPath, optionally compresses it, and writes
// an encrypted container to outputPath. The destination is created or
// truncated.
func Encrypt(inputPath, outputPath, password string, opts Options) error {
	plaintext, err := os.ReadFile(inputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", cerrors.ErrFileNotFound, inputPath)
		}
		return fmt.Errorf("failed to read %s: %w", inputPath, err)
	}

	isCompressed := opts.Compress && len(plaintext) > 0
	payload := plaintext
	if isCompressed {
		payload, err = compression.Compress(plaintext, opts.CompressionLevel)
		if err != nil {
			return fmt.Errorf("%w: %v", cerrors.ErrEncryptFailed, err)
		}
	}

	var salt [format.SaltLength]byte
	var nonce [format.NonceLength]byte
	if _, err := io.ReadFull(rand.Reader, salt[:]); err != nil {
		return fmt.Errorf("failed to generate salt: %w", err)
	}
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return fmt.Errorf("failed to generate nonce: %w", err)
	}

	key, err := DeriveKey(password, salt[:], opts.KDF)
	if err != nil {
		return err
	}

	aead, err := newAEAD(key)
	if err != nil {
		return fmt.Errorf("%w: %v", cerrors.ErrEncryptFailed, err)
	}
	ciphertext := aead.Seal(nil, nonce[:], payload, nil)

	// Metadata reflects the original file, not the compressed payload.
	metadata, err := format.MetadataFromFile(inputPath, isCompressed)
	if err != nil {
		return err
	}
	metadataBytes := metadata.Encode()
	header := format.NewHeader(salt, nonce, uint32(len(metadataBytes)))

	return writeContainer(outputPath, header, metadataBytes, ciphertext)
}

// Decrypt reads a container from inputPath, decrypts it with the key derived
// from password, and writes the recovered plaintext to outputPath. The
// returned metadata carries the original filename so the caller can rename
// the output. A failed decrypt never leaves a partial destination file.
func Decrypt(inputPath, outputPath, password string, opts Options) (*format.Metadata, error) {
	file, err := os.Open(inputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", cerrors.ErrFileNotFound, inputPath)
		}
		return nil, fmt.Errorf("failed to open %s: %w", inputPath, err)
	}
	defer file.Close()

	header, metadata, err := readContainerHeader(file)
	if err != nil {
		return nil, err
	}

	ciphertext, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read ciphertext: %w", err)
	}

	plaintext, err := openPayload(header, metadata, ciphertext, password, opts.KDF)
	if err != nil {
		return nil, err
	}

	if err := writeFileAtomic(outputPath, plaintext); err != nil {
		return nil, err
	}

	return metadata, nil
}

// newAEAD builds an AES-256-GCM cipher for the derived key.
func newAEAD(key [format.KeyLength]byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// openPayload derives the key, verifies and decrypts the ciphertext, and
// decompresses it if the metadata says so. Tag verification failure is
// reported uniformly as ErrInvalidPassword.
func openPayload(header *format.Header, metadata *format.Metadata, ciphertext []byte, password string, kdf Params) ([]byte, error) {
	key, err := DeriveKey(password, header.Salt[:], kdf)
	if err != nil {
		return nil, err
	}

	aead, err := newAEAD(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cerrors.ErrDecryptFailed, err)
	}

	plaintext, err := aead.Open(nil, header.Nonce[:], ciphertext, nil)
	if err != nil {
		return nil, cerrors.ErrInvalidPassword
	}

	if metadata.IsCompressed {
		plaintext, err = compression.Decompress(plaintext, MaxDecompressedSize)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", cerrors.ErrDecryptFailed, err)
		}
	}

	return plaintext, nil
}

// readContainerHeader parses and validates the fixed header and the metadata
// block. Magic, version, and algorithm are checked in that order before any
// other field is trusted.
func readContainerHeader(r io.Reader) (*format.Header, *format.Metadata, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", cerrors.ErrInvalidFormat, err)
	}
	if !bytes.Equal(magic[:], format.MagicBytes[:]) {
		return nil, nil, fmt.Errorf("%w: not a CryptoCrate file", cerrors.ErrInvalidFormat)
	}

	var versionAlg [2]byte
	if _, err := io.ReadFull(r, versionAlg[:]); err != nil {
		return nil, nil, fmt.Errorf("%w: truncated header", cerrors.ErrInvalidFormat)
	}
	if versionAlg[0] != format.Version {
		return nil, nil, fmt.Errorf("%w: %d", cerrors.ErrUnsupportedVersion, versionAlg[0])
	}
	if versionAlg[1] != format.AlgorithmAES256GCM {
		return nil, nil, fmt.Errorf("%w: id %d", cerrors.ErrUnsupportedAlgorithm, versionAlg[1])
	}

	header := &format.Header{Version: versionAlg[0], Algorithm: versionAlg[1]}
	if _, err := io.ReadFull(r, header.Salt[:]); err != nil {
		return nil, nil, fmt.Errorf("%w: truncated salt", cerrors.ErrInvalidFormat)
	}
	if _, err := io.ReadFull(r, header.Nonce[:]); err != nil {
		return nil, nil, fmt.Errorf("%w: truncated nonce", cerrors.ErrInvalidFormat)
	}

	var lenBytes [4]byte
	if _, err := io.ReadFull(r, lenBytes[:]); err != nil {
		return nil, nil, fmt.Errorf("%w: truncated metadata length", cerrors.ErrInvalidFormat)
	}
	header.MetadataLength = binary.LittleEndian.Uint32(lenBytes[:])

	metadataBytes := make([]byte, header.MetadataLength)
	if _, err := io.ReadFull(r, metadataBytes); err != nil {
		return nil, nil, fmt.Errorf("%w: truncated metadata block", cerrors.ErrInvalidFormat)
	}
	metadata, err := format.DecodeMetadata(metadataBytes)
	if err != nil {
		return nil, nil, err
	}

	return header, metadata, nil
}

// writeContainer writes the framed container to path, truncating any
// existing file.
func writeContainer(path string, header format.Header, metadataBytes, ciphertext []byte) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	var lenBytes [4]byte
	binary.LittleEndian.PutUint32(lenBytes[:], header.MetadataLength)

	for _, chunk := range [][]byte{
		format.MagicBytes[:],
		{header.Version},
		{header.Algorithm},
		header.Salt[:],
		header.Nonce[:],
		lenBytes[:],
		metadataBytes,
		ciphertext,
	} {
		if _, err := file.Write(chunk); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}

	return nil
}

// writeFileAtomic writes data to a temp file beside path and renames it into
// place, so a failed decrypt cannot leave a truncated destination behind.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".cryptocrate-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to place %s: %w", path, err)
	}

	return nil
}
