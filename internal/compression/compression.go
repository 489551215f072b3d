// Package compression wraps zstd for the encrypt pipeline.
//
// Compression is applied to plaintext strictly before encryption; compressing
// ciphertext would be useless and a potential side-channel. Decompression
// enforces a caller-supplied output ceiling so a hostile stream cannot claim
// an arbitrarily large size.
package compression

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// DefaultLevel is the default zstd compression level.
const DefaultLevel = 3

// MinLevel and MaxLevel bound the accepted zstd levels.
const (
	MinLevel = 1
	MaxLevel = 21
)

// Compress compresses data with zstd at the given level (1-21). A level of 0
// selects DefaultLevel.
func Compress(data []byte, level int) ([]byte, error) {
	if level == 0 {
		level = DefaultLevel
	}
	if level < MinLevel || level > MaxLevel {
		return nil, fmt.Errorf("invalid compression level %d (must be %d-%d)", level, MinLevel, MaxLevel)
	}

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	defer enc.Close()

	return enc.EncodeAll(data, make([]byte, 0, len(data)/2)), nil
}

// Decompress decompresses zstd data, refusing to produce more than maxSize
// bytes of output regardless of what the stream claims.
func Decompress(data []byte, maxSize int) ([]byte, error) {
	dec, err := zstd.NewReader(bytes.NewReader(data), zstd.WithDecoderMaxMemory(uint64(maxSize)))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	defer dec.Close()

	out, err := io.ReadAll(io.LimitReader(dec, int64(maxSize)+1))
	if err != nil {
		return nil, fmt.Errorf("decompression failed: %w", err)
	}
	if len(out) > maxSize {
		return nil, fmt.Errorf("decompressed data exceeds %d byte limit", maxSize)
	}

	return out, nil
}

// Ratio reports the space saved by compression as a percentage. An original
// size of 0 yields 0.
func Ratio(originalSize, compressedSize int) float64 {
	if originalSize == 0 {
		return 0.0
	}
	return (1.0 - float64(compressedSize)/float64(originalSize)) * 100.0
}
