package configs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.CompressionLevel != 3 {
		t.Errorf("Expected compression level 3, got %d", config.CompressionLevel)
	}
	if config.CompressByDefault {
		t.Error("Expected compression off by default")
	}
	if !config.ConfirmOverwrite {
		t.Error("Expected overwrite confirmation on by default")
	}
	if config.Argon2MemoryKB != 65536 {
		t.Errorf("Expected 65536 KiB memory, got %d", config.Argon2MemoryKB)
	}
	if config.Argon2TimeCost != 3 {
		t.Errorf("Expected time cost 3, got %d", config.Argon2TimeCost)
	}
	if config.Argon2Parallelism != 4 {
		t.Errorf("Expected parallelism 4, got %d", config.Argon2Parallelism)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ConfigFileName)

	config := DefaultConfig()
	config.CompressionLevel = 9
	config.CompressByDefault = true
	config.DefaultOutputDir = "/tmp/encrypted"
	config.Argon2MemoryKB = 131072

	if err := config.Save(path); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if loaded != config {
		t.Errorf("Loaded config does not match saved:\nsaved:  %+v\nloaded: %+v", config, loaded)
	}
}

func TestLoadFillsUnsetFieldsWithDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	partial := "compression_level = 15\n"
	if err := os.WriteFile(path, []byte(partial), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if loaded.CompressionLevel != 15 {
		t.Errorf("Expected compression level 15, got %d", loaded.CompressionLevel)
	}
	if loaded.Argon2MemoryKB != 65536 {
		t.Errorf("Expected default memory for unset field, got %d", loaded.Argon2MemoryKB)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatal("Expected error for missing config file")
	}
}

func TestLoadDefaultWithoutAnyFile(t *testing.T) {
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}
	defer os.Chdir(cwd)

	// Point the user config dir somewhere empty too.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	config, err := LoadDefault()
	if err != nil {
		t.Fatalf("Failed to load defaults: %v", err)
	}
	if config != DefaultConfig() {
		t.Errorf("Expected built-in defaults, got %+v", config)
	}
}

func TestLoadDefaultPrefersLocalFile(t *testing.T) {
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	tmpDir := t.TempDir()
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}
	defer os.Chdir(cwd)

	local := DefaultConfig()
	local.CompressionLevel = 21
	if err := local.Save(ConfigFileName); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	loaded, err := LoadDefault()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if loaded.CompressionLevel != 21 {
		t.Errorf("Expected local config to win, got level %d", loaded.CompressionLevel)
	}
}
