package crypto

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	cerrors "github.com/dmytro-macuser/cryptocrate/internal/errors"
)

func TestShouldUseStreaming(t *testing.T) {
	tmpDir := t.TempDir()

	smallPath := filepath.Join(tmpDir, "small.txt")
	writeTestFile(t, smallPath, []byte("tiny"))

	streaming, err := ShouldUseStreaming(smallPath)
	if err != nil {
		t.Fatalf("Failed to check small file: %v", err)
	}
	if streaming {
		t.Error("Expected buffered mode for a small file")
	}

	// A sparse file is enough to exercise the size gate.
	largePath := filepath.Join(tmpDir, "large.bin")
	largeFile, err := os.Create(largePath)
	if err != nil {
		t.Fatalf("Failed to create large file: %v", err)
	}
	if err := largeFile.Truncate(StreamingThreshold + 1); err != nil {
		largeFile.Close()
		t.Skipf("Cannot create sparse file: %v", err)
	}
	largeFile.Close()

	streaming, err = ShouldUseStreaming(largePath)
	if err != nil {
		t.Fatalf("Failed to check large file: %v", err)
	}
	if !streaming {
		t.Error("Expected streaming mode above the threshold")
	}
}

func TestShouldUseStreamingMissingFile(t *testing.T) {
	_, err := ShouldUseStreaming(filepath.Join(t.TempDir(), "missing.bin"))
	if !errors.Is(err, cerrors.ErrFileNotFound) {
		t.Fatalf("Expected ErrFileNotFound, got: %v", err)
	}
}

func TestStreamingRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	inputPath := filepath.Join(tmpDir, "data.bin")
	encryptedPath := filepath.Join(tmpDir, "data.bin.crat")
	decryptedPath := filepath.Join(tmpDir, "data_out.bin")

	// Larger than one chunk so the read loop runs more than once.
	testData := bytes.Repeat([]byte("streaming chunk data "), 200_000)
	writeTestFile(t, inputPath, testData)

	password := "streaming_password"

	if err := EncryptStreaming(inputPath, encryptedPath, password, testParams); err != nil {
		t.Fatalf("Failed to encrypt: %v", err)
	}

	metadata, err := DecryptStreaming(encryptedPath, decryptedPath, password, testParams)
	if err != nil {
		t.Fatalf("Failed to decrypt: %v", err)
	}
	if metadata.Filename != "data.bin" {
		t.Errorf("Expected filename data.bin, got %q", metadata.Filename)
	}
	if metadata.IsCompressed {
		t.Error("Streaming containers must not be compressed")
	}

	decrypted, err := os.ReadFile(decryptedPath)
	if err != nil {
		t.Fatalf("Failed to read decrypted file: %v", err)
	}
	if !bytes.Equal(decrypted, testData) {
		t.Error("Decrypted content does not match original")
	}
}

// Both paths write the same container layout, so a file encrypted with one
// must decrypt with the other.
func TestStreamingBufferedInterop(t *testing.T) {
	tmpDir := t.TempDir()
	inputPath := filepath.Join(tmpDir, "data.txt")
	testData := []byte("interoperable container contents")
	writeTestFile(t, inputPath, testData)

	password := "shared_password"

	streamEnc := filepath.Join(tmpDir, "stream.crat")
	if err := EncryptStreaming(inputPath, streamEnc, password, testParams); err != nil {
		t.Fatalf("Failed to encrypt (streaming): %v", err)
	}

	bufferedOut := filepath.Join(tmpDir, "buffered_out.txt")
	if _, err := Decrypt(streamEnc, bufferedOut, password, testOptions()); err != nil {
		t.Fatalf("Buffered decrypt of streaming container failed: %v", err)
	}
	got, _ := os.ReadFile(bufferedOut)
	if !bytes.Equal(got, testData) {
		t.Error("Buffered decrypt of streaming container mismatched")
	}

	bufferedEnc := filepath.Join(tmpDir, "buffered.crat")
	if err := Encrypt(inputPath, bufferedEnc, password, testOptions()); err != nil {
		t.Fatalf("Failed to encrypt (buffered): %v", err)
	}

	streamOut := filepath.Join(tmpDir, "stream_out.txt")
	if _, err := DecryptStreaming(bufferedEnc, streamOut, password, testParams); err != nil {
		t.Fatalf("Streaming decrypt of buffered container failed: %v", err)
	}
	got, _ = os.ReadFile(streamOut)
	if !bytes.Equal(got, testData) {
		t.Error("Streaming decrypt of buffered container mismatched")
	}
}

func TestStreamingDecryptWrongPassword(t *testing.T) {
	tmpDir := t.TempDir()
	inputPath := filepath.Join(tmpDir, "data.txt")
	encryptedPath := filepath.Join(tmpDir, "data.txt.crat")
	writeTestFile(t, inputPath, []byte("secret"))

	if err := EncryptStreaming(inputPath, encryptedPath, "right", testParams); err != nil {
		t.Fatalf("Failed to encrypt: %v", err)
	}

	_, err := DecryptStreaming(encryptedPath, filepath.Join(tmpDir, "out.txt"), "wrong", testParams)
	if !errors.Is(err, cerrors.ErrInvalidPassword) {
		t.Fatalf("Expected ErrInvalidPassword, got: %v", err)
	}
}
