// Package inspect reads container headers without decrypting anything.
//
// Inspection parses the magic, version, algorithm, and metadata block, and
// skips the salt and nonce entirely. No key is derived and the ciphertext is
// never touched, so it is safe to run on a container whose password has been
// lost.
package inspect

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	cerrors "github.com/dmytro-macuser/cryptocrate/internal/errors"
	"github.com/dmytro-macuser/cryptocrate/internal/format"
	"github.com/dmytro-macuser/cryptocrate/internal/utils"
)

// FileInfo is the human-facing view of a container.
type FileInfo struct {
	Version       byte
	Algorithm     string
	Metadata      *format.Metadata
	EncryptedSize uint64
}

// Inspect parses the header and metadata of the container at path.
func Inspect(path string) (*FileInfo, error) {
	stat, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", cerrors.ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	var magic [4]byte
	if _, err := io.ReadFull(file, magic[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", cerrors.ErrInvalidFormat, err)
	}
	if !bytes.Equal(magic[:], format.MagicBytes[:]) {
		return nil, fmt.Errorf("%w: not a CryptoCrate file", cerrors.ErrInvalidFormat)
	}

	var versionAlg [2]byte
	if _, err := io.ReadFull(file, versionAlg[:]); err != nil {
		return nil, fmt.Errorf("%w: truncated header", cerrors.ErrInvalidFormat)
	}
	if versionAlg[0] != format.Version {
		return nil, fmt.Errorf("%w: %d", cerrors.ErrUnsupportedVersion, versionAlg[0])
	}

	algorithm := "Unknown"
	if versionAlg[1] == format.AlgorithmAES256GCM {
		algorithm = "AES-256-GCM"
	}

	// Salt and nonce are not needed for inspection.
	if _, err := io.CopyN(io.Discard, file, format.SaltLength+format.NonceLength); err != nil {
		return nil, fmt.Errorf("%w: truncated header", cerrors.ErrInvalidFormat)
	}

	var lenBytes [4]byte
	if _, err := io.ReadFull(file, lenBytes[:]); err != nil {
		return nil, fmt.Errorf("%w: truncated metadata length", cerrors.ErrInvalidFormat)
	}
	metadataLen := binary.LittleEndian.Uint32(lenBytes[:])

	metadataBytes := make([]byte, metadataLen)
	if _, err := io.ReadFull(file, metadataBytes); err != nil {
		return nil, fmt.Errorf("%w: truncated metadata block", cerrors.ErrInvalidFormat)
	}
	metadata, err := format.DecodeMetadata(metadataBytes)
	if err != nil {
		return nil, err
	}

	return &FileInfo{
		Version:       versionAlg[0],
		Algorithm:     algorithm,
		Metadata:      metadata,
		EncryptedSize: uint64(stat.Size()),
	}, nil
}

// Display renders the file information for terminal output.
func (fi *FileInfo) Display() string {
	var b bytes.Buffer

	fmt.Fprintf(&b, "File Format:       CryptoCrate v%d\n", fi.Version)
	fmt.Fprintf(&b, "Algorithm:         %s\n", fi.Algorithm)
	fmt.Fprintf(&b, "Original Filename: %s\n", fi.Metadata.Filename)
	fmt.Fprintf(&b, "Original Size:     %s\n", utils.FormatSize(fi.Metadata.OriginalSize))
	fmt.Fprintf(&b, "Encrypted Size:    %s\n", utils.FormatSize(fi.EncryptedSize))

	if fi.Metadata.ModifiedTime != 0 {
		fmt.Fprintf(&b, "Modified:          %s (Unix: %d)\n",
			utils.FormatRelativeTime(fi.Metadata.ModifiedTime), fi.Metadata.ModifiedTime)
	}

	if fi.Metadata.IsCompressed {
		fmt.Fprintf(&b, "Compressed:        Yes\n")
		if fi.Metadata.OriginalSize > 0 {
			ratio := float64(fi.EncryptedSize) / float64(fi.Metadata.OriginalSize) * 100.0
			fmt.Fprintf(&b, "Compression Ratio: %.1f%% of original\n", ratio)
		}
	} else {
		fmt.Fprintf(&b, "Compressed:        No\n")
	}

	return b.String()
}
