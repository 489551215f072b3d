// Package utils provides shared utility functions for the CryptoCrate
// application.
//
// This package contains general-purpose helpers used across multiple
// packages. Functions are organized into logical groups:
//
// # String Utilities
//
// Functions for human-readable formatting:
//   - FormatPaths: formats file paths for terminal output
//   - FormatSize: renders byte counts with binary unit suffixes
//   - FormatRelativeTime: renders Unix timestamps relative to now
//
// # Terminal Utilities
//
// Functions for terminal detection and interaction:
//   - ReadPassphrase: hidden passphrase input
//   - ReadPassphraseWithConfirm: hidden input with a confirmation loop
//   - Confirm: yes/no prompts
//   - IsTerminal: checks whether stdin is a terminal
package utils
