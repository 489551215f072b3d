package configs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/dmytro-macuser/cryptocrate/internal/compression"
)

// ConfigFileName is the per-directory config file name.
const ConfigFileName = "cryptocrate.toml"

// Config holds user-tunable defaults. The core packages never read this
// directly; the cmd layer translates it into plain parameter values.
type Config struct {
	// CompressionLevel is the default zstd level (1-21).
	CompressionLevel int `toml:"compression_level"`

	// CompressByDefault enables compression unless overridden on the
	// command line.
	CompressByDefault bool `toml:"compress_by_default"`

	// DefaultOutputDir is where containers are written when no --output is
	// given. Empty means "beside the input".
	DefaultOutputDir string `toml:"default_output_dir"`

	// ConfirmOverwrite asks before replacing existing files.
	ConfirmOverwrite bool `toml:"confirm_overwrite"`

	// Argon2 cost parameters. Changing these does not invalidate existing
	// containers, but decryption cost follows the values stored here.
	Argon2MemoryKB    uint32 `toml:"argon2_memory_kb"`
	Argon2TimeCost    uint32 `toml:"argon2_time_cost"`
	Argon2Parallelism uint8  `toml:"argon2_parallelism"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		CompressionLevel:  compression.DefaultLevel,
		CompressByDefault: false,
		ConfirmOverwrite:  true,
		Argon2MemoryKB:    65536,
		Argon2TimeCost:    3,
		Argon2Parallelism: 4,
	}
}

// Load reads a config file, filling unset fields with defaults.
func Load(path string) (Config, error) {
	config := DefaultConfig()
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return config, fmt.Errorf("failed to load config from %s: %w", path, err)
	}
	return config, nil
}

// LoadDefault searches ./cryptocrate.toml and then the user config
// directory, returning built-in defaults when neither exists.
func LoadDefault() (Config, error) {
	if _, err := os.Stat(ConfigFileName); err == nil {
		return Load(ConfigFileName)
	}

	if userPath, err := DefaultUserConfigPath(); err == nil {
		if _, err := os.Stat(userPath); err == nil {
			return Load(userPath)
		}
	}

	return DefaultConfig(), nil
}

// Save writes the config as TOML to path, creating parent directories as
// needed. The config directory is created 0700 since it may sit under the
// user's config root.
func (c Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to save config to %s: %w", path, err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to save config to %s: %w", path, err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(c); err != nil {
		return fmt.Errorf("failed to save config to %s: %w", path, err)
	}
	return nil
}

// DefaultUserConfigPath returns the per-user config file location.
func DefaultUserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(configDir, "cryptocrate", "config.toml"), nil
}
