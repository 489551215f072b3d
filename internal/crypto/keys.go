package crypto

import (
	"fmt"

	"golang.org/x/crypto/argon2"

	cerrors "github.com/dmytro-macuser/cryptocrate/internal/errors"
	"github.com/dmytro-macuser/cryptocrate/internal/format"
)

// Params are the Argon2id cost parameters for key derivation.
//
// The defaults must not change between releases: a container encrypted with
// one parameter set can only be decrypted with the same set.
type Params struct {
	// MemoryKB is the memory cost in KiB.
	MemoryKB uint32
	// Iterations is the time cost (number of passes).
	Iterations uint32
	// Parallelism is the number of computation lanes.
	Parallelism uint8
}

// DefaultParams returns the recommended Argon2id costs: 64 MiB memory,
// 3 iterations, 4 lanes.
func DefaultParams() Params {
	return Params{
		MemoryKB:    65536,
		Iterations:  3,
		Parallelism: 4,
	}
}

// IsZero reports whether p carries no explicit costs.
func (p Params) IsZero() bool {
	return p.MemoryKB == 0 && p.Iterations == 0 && p.Parallelism == 0
}

func (p Params) validate() error {
	if p.Iterations == 0 {
		return fmt.Errorf("%w: iterations must be at least 1", cerrors.ErrKeyDerivation)
	}
	if p.Parallelism == 0 {
		return fmt.Errorf("%w: parallelism must be at least 1", cerrors.ErrKeyDerivation)
	}
	// Argon2 requires at least 8 KiB per lane.
	if p.MemoryKB < 8*uint32(p.Parallelism) {
		return fmt.Errorf("%w: memory cost %d KiB too low for %d lanes", cerrors.ErrKeyDerivation, p.MemoryKB, p.Parallelism)
	}
	return nil
}

// DeriveKey derives a 32-byte key from a password and salt using Argon2id.
// Identical (password, salt, params) always yields an identical key. The
// derived key is held only in memory and scoped to a single operation.
func DeriveKey(password string, salt []byte, params Params) ([format.KeyLength]byte, error) {
	var key [format.KeyLength]byte

	if params.IsZero() {
		params = DefaultParams()
	}
	if err := params.validate(); err != nil {
		return key, err
	}
	if len(salt) != format.SaltLength {
		return key, fmt.Errorf("%w: salt must be %d bytes, got %d", cerrors.ErrKeyDerivation, format.SaltLength, len(salt))
	}

	derived := argon2.IDKey([]byte(password), salt, params.Iterations, params.MemoryKB, params.Parallelism, format.KeyLength)
	copy(key[:], derived)

	return key, nil
}
