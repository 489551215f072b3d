package format

import "testing"

func TestNewHeaderPinsVersionAndAlgorithm(t *testing.T) {
	var salt [SaltLength]byte
	var nonce [NonceLength]byte

	header := NewHeader(salt, nonce, 19)

	if header.Version != Version {
		t.Errorf("Expected version %d, got %d", Version, header.Version)
	}
	if header.Algorithm != AlgorithmAES256GCM {
		t.Errorf("Expected algorithm %d, got %d", AlgorithmAES256GCM, header.Algorithm)
	}
	if header.MetadataLength != 19 {
		t.Errorf("Expected metadata length 19, got %d", header.MetadataLength)
	}
}

func TestHeaderSizeMatchesLayout(t *testing.T) {
	// magic + version + algorithm + salt + nonce + metadata length
	expected := 4 + 1 + 1 + SaltLength + NonceLength + 4
	if HeaderSize != expected {
		t.Errorf("Expected header size %d, got %d", expected, HeaderSize)
	}
	if HeaderSize != 54 {
		t.Errorf("Expected header size 54, got %d", HeaderSize)
	}
}
