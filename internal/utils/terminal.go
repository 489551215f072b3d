package utils

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ReadPassphrase prompts the user for a passphrase without echoing input.
// Returns an error if stdin is not a terminal.
func ReadPassphrase(prompt string) ([]byte, error) {
	fd := int(os.Stdin.Fd())

	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("cannot read passphrase: stdin is not a terminal")
	}

	fmt.Fprint(os.Stderr, prompt)
	passphrase, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr) // Add newline after hidden input

	if err != nil {
		return nil, fmt.Errorf("failed to read passphrase: %w", err)
	}

	return passphrase, nil
}

// ReadPassphraseWithConfirm prompts twice and loops until both entries match
// and are non-empty.
func ReadPassphraseWithConfirm(prompt string) ([]byte, error) {
	for {
		first, err := ReadPassphrase(prompt)
		if err != nil {
			return nil, err
		}
		second, err := ReadPassphrase("Confirm password: ")
		if err != nil {
			return nil, err
		}

		if string(first) != string(second) {
			fmt.Fprintln(os.Stderr, "Passwords do not match. Please try again.")
			continue
		}
		if len(first) == 0 {
			fmt.Fprintln(os.Stderr, "Password cannot be empty. Please try again.")
			continue
		}

		return first, nil
	}
}

// Confirm asks a yes/no question on stdin. An empty answer selects the
// default.
func Confirm(prompt string, defaultYes bool) (bool, error) {
	hint := "y/N"
	if defaultYes {
		hint = "Y/n"
	}
	fmt.Fprintf(os.Stderr, "%s [%s]: ", prompt, hint)

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	if answer == "" {
		return defaultYes, nil
	}
	return answer == "y" || answer == "yes", nil
}

// IsTerminal returns true if stdin is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
