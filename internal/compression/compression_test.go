package compression

import (
	"bytes"
	"strings"
	"testing"
)

func TestCompressDecompressRoundTrip(t *testing.T) {
	original := []byte(strings.Repeat("Hello, World! This is a test of compression. ", 100))

	compressed, err := Compress(original, 0)
	if err != nil {
		t.Fatalf("Failed to compress: %v", err)
	}
	if len(compressed) >= len(original) {
		t.Errorf("Expected compressed size below %d, got %d", len(original), len(compressed))
	}

	decompressed, err := Decompress(compressed, len(original)*2)
	if err != nil {
		t.Fatalf("Failed to decompress: %v", err)
	}
	if !bytes.Equal(decompressed, original) {
		t.Error("Decompressed data does not match original")
	}
}

func TestCompressLevels(t *testing.T) {
	data := []byte(strings.Repeat("compressible content ", 200))

	for _, level := range []int{1, 3, 9, 21} {
		compressed, err := Compress(data, level)
		if err != nil {
			t.Fatalf("Failed to compress at level %d: %v", level, err)
		}
		decompressed, err := Decompress(compressed, len(data)*2)
		if err != nil {
			t.Fatalf("Failed to decompress level %d output: %v", level, err)
		}
		if !bytes.Equal(decompressed, data) {
			t.Errorf("Round trip at level %d did not preserve data", level)
		}
	}
}

func TestCompressInvalidLevel(t *testing.T) {
	for _, level := range []int{-1, 22, 100} {
		if _, err := Compress([]byte("data"), level); err == nil {
			t.Errorf("Expected error for level %d, got nil", level)
		}
	}
}

func TestDecompressEnforcesMaxSize(t *testing.T) {
	original := bytes.Repeat([]byte{0}, 1024*1024)
	compressed, err := Compress(original, 3)
	if err != nil {
		t.Fatalf("Failed to compress: %v", err)
	}

	if _, err := Decompress(compressed, 1024); err == nil {
		t.Error("Expected error when output exceeds the size limit, got nil")
	}
}

func TestDecompressGarbage(t *testing.T) {
	if _, err := Decompress([]byte("definitely not zstd"), 1024); err == nil {
		t.Error("Expected error for invalid input, got nil")
	}
}

func TestRatio(t *testing.T) {
	if got := Ratio(1000, 500); got != 50.0 {
		t.Errorf("Expected ratio 50.0, got %f", got)
	}
	if got := Ratio(0, 500); got != 0.0 {
		t.Errorf("Expected ratio 0.0 for zero original, got %f", got)
	}
	if got := Ratio(100, 100); got != 0.0 {
		t.Errorf("Expected ratio 0.0 for incompressible data, got %f", got)
	}
}
