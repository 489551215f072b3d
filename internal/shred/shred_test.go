package shred

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDeleteRemovesFile(t *testing.T) {
	for _, mode := range []Mode{Quick, Standard, Paranoid} {
		t.Run(mode.String(), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "secret.txt")
			if err := os.WriteFile(path, []byte("sensitive data to destroy"), 0644); err != nil {
				t.Fatalf("Failed to create test file: %v", err)
			}

			if err := Delete(path, mode); err != nil {
				t.Fatalf("Failed to delete: %v", err)
			}
			if _, err := os.Stat(path); !os.IsNotExist(err) {
				t.Error("Expected file to be removed")
			}
		})
	}
}

func TestDeleteEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if err := Delete(path, Standard); err != nil {
		t.Fatalf("Failed to delete empty file: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Expected empty file to be removed")
	}
}

func TestDeleteLargerThanOneChunk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.bin")
	data := make([]byte, overwriteBufferSize*2+31)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if err := Delete(path, Quick); err != nil {
		t.Fatalf("Failed to delete: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Expected file to be removed")
	}
}

func TestDeleteMissingFile(t *testing.T) {
	err := Delete(filepath.Join(t.TempDir(), "missing.txt"), Quick)
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
}

func TestModePasses(t *testing.T) {
	tests := []struct {
		mode   Mode
		passes int
	}{
		{Quick, 1},
		{Standard, 3},
		{Paranoid, 7},
	}
	for _, tt := range tests {
		if got := tt.mode.Passes(); got != tt.passes {
			t.Errorf("%s: expected %d passes, got %d", tt.mode, tt.passes, got)
		}
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		name    string
		mode    Mode
		wantErr bool
	}{
		{"quick", Quick, false},
		{"standard", Standard, false},
		{"paranoid", Paranoid, false},
		{"aggressive", Standard, true},
		{"", Standard, true},
	}
	for _, tt := range tests {
		mode, err := ParseMode(tt.name)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseMode(%q): expected error", tt.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMode(%q): unexpected error: %v", tt.name, err)
		}
		if mode != tt.mode {
			t.Errorf("ParseMode(%q): expected %v, got %v", tt.name, tt.mode, mode)
		}
	}
}

func TestParanoidSchedule(t *testing.T) {
	want := []pattern{
		randomPass,
		onesPass,
		randomPass,
		{fill: 0xAA},
		{fill: 0x55},
		randomPass,
		randomPass,
	}
	for pass, expected := range want {
		if got := Paranoid.schedule(pass); got != expected {
			t.Errorf("pass %d: expected %+v, got %+v", pass, expected, got)
		}
	}
}
