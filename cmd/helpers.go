package cmd

import (
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/briandowns/spinner"

	"github.com/dmytro-macuser/cryptocrate/internal/configs"
	"github.com/dmytro-macuser/cryptocrate/internal/crypto"
	"github.com/dmytro-macuser/cryptocrate/internal/keyfile"
	"github.com/dmytro-macuser/cryptocrate/internal/utils"
)

// startSpinner starts a spinner when not in verbose mode, and returns it
// along with a cleanup function that must be deferred.
func startSpinner(message string) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	// Ignore color errors - continue without colored spinner if it fails.
	_ = s.Color("cyan")

	if !verbose && !debug {
		s.Start()
		// Ensure log output is discarded unless in verbose mode.
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		if !verbose && !debug {
			log.SetOutput(os.Stdout)
		}

		finalMsg := s.FinalMSG
		if finalMsg != "" && !strings.HasSuffix(finalMsg, "\n") {
			finalMsg += "\n"
		}
		s.FinalMSG = finalMsg
		s.Stop()
	}

	return s, cleanup
}

// resolveSecret builds the effective secret from the password and keyfile
// flags, prompting interactively where needed. Keyfile-backed secrets are
// hex-encoded so the downstream code sees a plain string either way.
func resolveSecret(password, keyfilePath string, forEncryption bool) (string, error) {
	var digest [32]byte
	haveKeyfile := keyfilePath != ""

	if haveKeyfile {
		Logger.Infof("Reading keyfile: %s", keyfilePath)
		var err error
		digest, err = keyfile.Read(keyfilePath)
		if err != nil {
			return "", err
		}
	}

	if password == "" && utils.IsTerminal() {
		var entered []byte
		var err error
		if forEncryption && !haveKeyfile {
			entered, err = utils.ReadPassphraseWithConfirm("Enter password: ")
		} else {
			prompt := "Enter password: "
			if haveKeyfile {
				prompt = "Enter password (or press Enter to use keyfile only): "
			}
			entered, err = utils.ReadPassphrase(prompt)
		}
		if err != nil {
			return "", err
		}
		password = string(entered)
	}

	if haveKeyfile {
		if password == "" {
			// Keyfile only - the digest stands in for the password.
			return hex.EncodeToString(digest[:]), nil
		}
		return hex.EncodeToString(keyfile.Combine(password, digest)), nil
	}

	if password == "" {
		return "", fmt.Errorf("password cannot be empty (provide a password, a keyfile, or both)")
	}
	return password, nil
}

// kdfParams translates config values into explicit derivation costs.
func kdfParams(config configs.Config) crypto.Params {
	return crypto.Params{
		MemoryKB:    config.Argon2MemoryKB,
		Iterations:  config.Argon2TimeCost,
		Parallelism: config.Argon2Parallelism,
	}
}

// encryptedOutputPath decides where the container for inputPath goes: into
// outputDir when set, otherwise beside the input with a .crat extension.
func encryptedOutputPath(inputPath, outputDir string) string {
	if outputDir != "" {
		return filepath.Join(outputDir, filepath.Base(inputPath)+".crat")
	}
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + ".crat"
}
