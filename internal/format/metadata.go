package format

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	cerrors "github.com/dmytro-macuser/cryptocrate/internal/errors"
)

// metadataMinLength is the smallest valid encoded metadata block: an empty
// filename still carries the length prefix, size, mtime and flag fields.
const metadataMinLength = 2 + 8 + 8 + 1

// Metadata describes the original file, stored encrypted inside the
// container. It is built once at encryption time and never mutated.
//
// ModifiedTime is Unix seconds; 0 means "unknown". This conflates an actual
// epoch-zero timestamp with a missing one, which the on-disk format cannot
// distinguish.
type Metadata struct {
	Filename     string
	OriginalSize uint64
	ModifiedTime uint64
	IsCompressed bool
}

// MetadataFromFile builds metadata from the filesystem attributes of path.
func MetadataFromFile(path string, isCompressed bool) (*Metadata, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	filename := filepath.Base(path)
	if filename == "." || filename == string(filepath.Separator) {
		filename = "unknown"
	}

	var mtime uint64
	if t := info.ModTime(); !t.IsZero() && t.Unix() > 0 {
		mtime = uint64(t.Unix())
	}

	return &Metadata{
		Filename:     filename,
		OriginalSize: uint64(info.Size()),
		ModifiedTime: mtime,
		IsCompressed: isCompressed,
	}, nil
}

// Encode serializes the metadata into its wire form: a 2-byte little-endian
// filename length, the filename bytes, the original size and modification
// time as 8-byte little-endian integers, and a 1-byte compression flag.
func (m *Metadata) Encode() []byte {
	name := []byte(m.Filename)
	buf := make([]byte, 0, metadataMinLength+len(name))

	buf = binary.LittleEndian.AppendUint16(buf, uint16(len(name)))
	buf = append(buf, name...)
	buf = binary.LittleEndian.AppendUint64(buf, m.OriginalSize)
	buf = binary.LittleEndian.AppendUint64(buf, m.ModifiedTime)
	if m.IsCompressed {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}

	return buf
}

// DecodeMetadata reconstructs metadata from its wire form. It fails closed
// on truncated input.
func DecodeMetadata(data []byte) (*Metadata, error) {
	if len(data) < metadataMinLength {
		return nil, fmt.Errorf("%w: metadata too short", cerrors.ErrInvalidFormat)
	}

	offset := 0
	nameLen := int(binary.LittleEndian.Uint16(data[offset:]))
	offset += 2

	if offset+nameLen+8+8+1 > len(data) {
		return nil, fmt.Errorf("%w: invalid filename length", cerrors.ErrInvalidFormat)
	}
	filename := string(data[offset : offset+nameLen])
	offset += nameLen

	originalSize := binary.LittleEndian.Uint64(data[offset:])
	offset += 8

	modifiedTime := binary.LittleEndian.Uint64(data[offset:])
	offset += 8

	isCompressed := data[offset] != 0

	return &Metadata{
		Filename:     filename,
		OriginalSize: originalSize,
		ModifiedTime: modifiedTime,
		IsCompressed: isCompressed,
	}, nil
}
