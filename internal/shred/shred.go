// Package shred overwrites and unlinks plaintext files.
//
// Each pass streams a pattern across the file's full length and syncs it to
// durable storage before the next pass begins. The fixed bit-patterns in
// paranoid mode target magnetic-storage remanence; on wear-leveled flash
// storage overwritten blocks may survive in remapped cells, so none of these
// modes guarantee erasure on SSDs.
package shred

import (
	"crypto/rand"
	"fmt"
	"io"
	"os"
)

// overwriteBufferSize is the per-write chunk (64 KiB).
const overwriteBufferSize = 64 * 1024

// Mode selects the overwrite schedule.
type Mode int

const (
	// Quick does a single random pass.
	Quick Mode = iota
	// Standard does three passes: random, zeros, random.
	Standard
	// Paranoid does seven passes: random, ones, random, 0xAA, 0x55,
	// random, random.
	Paranoid
)

// Passes returns the number of overwrite passes for the mode.
func (m Mode) Passes() int {
	switch m {
	case Quick:
		return 1
	case Standard:
		return 3
	case Paranoid:
		return 7
	default:
		return 1
	}
}

func (m Mode) String() string {
	switch m {
	case Quick:
		return "quick"
	case Standard:
		return "standard"
	case Paranoid:
		return "paranoid"
	default:
		return "unknown"
	}
}

// ParseMode parses a mode name as used on the command line.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "quick":
		return Quick, nil
	case "standard":
		return Standard, nil
	case "paranoid":
		return Paranoid, nil
	default:
		return Standard, fmt.Errorf("unknown delete mode %q (expected quick, standard, or paranoid)", name)
	}
}

// pattern describes the bytes written in a single pass.
type pattern struct {
	random bool
	fill   byte
}

var (
	randomPass = pattern{random: true}
	zeroPass   = pattern{fill: 0x00}
	onesPass   = pattern{fill: 0xFF}
)

// schedule returns the pattern for the given pass index under the mode.
func (m Mode) schedule(pass int) pattern {
	switch m {
	case Standard:
		if pass == 1 {
			return zeroPass
		}
		return randomPass
	case Paranoid:
		switch pass {
		case 1:
			return onesPass
		case 3:
			return pattern{fill: 0xAA}
		case 4:
			return pattern{fill: 0x55}
		default:
			return randomPass
		}
	default:
		return randomPass
	}
}

// Delete overwrites the file at path according to the mode's schedule and
// then unlinks it. A zero-length file is unlinked directly. If the file
// cannot be opened for writing it is left untouched.
func Delete(path string, mode Mode) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	size := info.Size()

	if size == 0 {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to remove %s: %w", path, err)
		}
		return nil
	}

	file, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("failed to open %s for overwriting: %w", path, err)
	}

	for pass := 0; pass < mode.Passes(); pass++ {
		if _, err := file.Seek(0, io.SeekStart); err != nil {
			file.Close()
			return fmt.Errorf("failed to seek %s: %w", path, err)
		}
		if err := overwrite(file, size, mode.schedule(pass)); err != nil {
			file.Close()
			return fmt.Errorf("overwrite pass %d failed for %s: %w", pass+1, path, err)
		}
		if err := file.Sync(); err != nil {
			file.Close()
			return fmt.Errorf("failed to sync %s: %w", path, err)
		}
	}

	// The handle must be released before unlinking.
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}

	return nil
}

// overwrite streams the pattern across size bytes in fixed-size chunks.
// Random bytes are drawn fresh for every write.
func overwrite(file *os.File, size int64, p pattern) error {
	buf := make([]byte, overwriteBufferSize)
	if !p.random {
		for i := range buf {
			buf[i] = p.fill
		}
	}

	remaining := size
	for remaining > 0 {
		n := int64(len(buf))
		if remaining < n {
			n = remaining
		}
		chunk := buf[:n]

		if p.random {
			if _, err := rand.Read(chunk); err != nil {
				return fmt.Errorf("failed to generate random data: %w", err)
			}
		}

		if _, err := file.Write(chunk); err != nil {
			return err
		}
		remaining -= n
	}

	return nil
}
