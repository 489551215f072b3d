// Package configs manages the cryptocrate.toml configuration file.
//
// Configuration holds user defaults only: compression level, overwrite
// confirmation, and Argon2 cost parameters. The search order is the current
// directory, then the per-user config directory, then built-in defaults.
//
// The core encryption packages never consult configuration themselves; the
// cmd layer loads it and passes plain values into each operation.
package configs
