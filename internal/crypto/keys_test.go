package crypto

import (
	"bytes"
	"errors"
	"testing"

	cerrors "github.com/dmytro-macuser/cryptocrate/internal/errors"
	"github.com/dmytro-macuser/cryptocrate/internal/format"
)

// testParams keeps derivation fast in tests. Production defaults are
// exercised once in TestDeriveKeyDefaultParams.
var testParams = Params{MemoryKB: 1024, Iterations: 1, Parallelism: 1}

func TestDeriveKeyDeterministic(t *testing.T) {
	salt := make([]byte, format.SaltLength)

	key1, err := DeriveKey("test_password", salt, testParams)
	if err != nil {
		t.Fatalf("Failed to derive key: %v", err)
	}
	key2, err := DeriveKey("test_password", salt, testParams)
	if err != nil {
		t.Fatalf("Failed to derive key again: %v", err)
	}
	if key1 != key2 {
		t.Error("Expected identical keys for identical inputs")
	}
}

func TestDeriveKeyDifferentSalt(t *testing.T) {
	salt1 := make([]byte, format.SaltLength)
	salt2 := make([]byte, format.SaltLength)
	salt2[0] = 1

	key1, err := DeriveKey("test_password", salt1, testParams)
	if err != nil {
		t.Fatalf("Failed to derive key: %v", err)
	}
	key2, err := DeriveKey("test_password", salt2, testParams)
	if err != nil {
		t.Fatalf("Failed to derive key: %v", err)
	}
	if key1 == key2 {
		t.Error("Expected different salts to yield different keys")
	}
}

func TestDeriveKeyDifferentPassword(t *testing.T) {
	salt := make([]byte, format.SaltLength)

	key1, err := DeriveKey("password_one", salt, testParams)
	if err != nil {
		t.Fatalf("Failed to derive key: %v", err)
	}
	key2, err := DeriveKey("password_two", salt, testParams)
	if err != nil {
		t.Fatalf("Failed to derive key: %v", err)
	}
	if key1 == key2 {
		t.Error("Expected different passwords to yield different keys")
	}
}

func TestDeriveKeyDefaultParams(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 64 MiB derivation in short mode")
	}

	salt := make([]byte, format.SaltLength)
	key, err := DeriveKey("test_password", salt, Params{})
	if err != nil {
		t.Fatalf("Failed to derive key with defaults: %v", err)
	}

	var zero [format.KeyLength]byte
	if bytes.Equal(key[:], zero[:]) {
		t.Error("Derived key must not be all zeros")
	}
}

func TestDeriveKeyInvalidParams(t *testing.T) {
	salt := make([]byte, format.SaltLength)

	cases := []struct {
		name   string
		params Params
	}{
		{"zero iterations", Params{MemoryKB: 1024, Iterations: 0, Parallelism: 1}},
		{"zero parallelism", Params{MemoryKB: 1024, Iterations: 1, Parallelism: 0}},
		{"memory too low", Params{MemoryKB: 4, Iterations: 1, Parallelism: 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DeriveKey("password", salt, tc.params)
			if !errors.Is(err, cerrors.ErrKeyDerivation) {
				t.Fatalf("Expected ErrKeyDerivation, got: %v", err)
			}
		})
	}
}

func TestDeriveKeyBadSaltLength(t *testing.T) {
	_, err := DeriveKey("password", make([]byte, 16), testParams)
	if !errors.Is(err, cerrors.ErrKeyDerivation) {
		t.Fatalf("Expected ErrKeyDerivation for short salt, got: %v", err)
	}
}
