package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dmytro-macuser/cryptocrate/internal/batch"
	"github.com/dmytro-macuser/cryptocrate/internal/crypto"
	"github.com/dmytro-macuser/cryptocrate/internal/format"
	"github.com/dmytro-macuser/cryptocrate/internal/utils"
)

var (
	decryptOutputDir string
	decryptPassword  string
	decryptKeyfile   string
	decryptYes       bool
	decryptJobs      int
)

var DecryptCmd = &cobra.Command{
	Use:   "decrypt [paths...]",
	Short: "Decrypts .crat containers back to their original files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting decrypt command")
		config := loadConfig()

		for _, path := range args {
			info, err := os.Stat(path)
			if err != nil {
				return Logger.ErrorfAndReturn("file not found: %s", path)
			}
			if info.IsDir() {
				return Logger.ErrorfAndReturn("not a file: %s (decrypt works on files, not directories)", path)
			}
		}

		secret, err := resolveSecret(decryptPassword, decryptKeyfile, false)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to resolve secret: %v", err)
		}

		outputDir := decryptOutputDir
		if outputDir == "" {
			outputDir = config.DefaultOutputDir
		}
		if outputDir != "" {
			if err := os.MkdirAll(outputDir, 0700); err != nil {
				return Logger.ErrorfAndReturn("failed to create output directory: %v", err)
			}
		}

		// Overwrite prompts cannot interleave with parallel workers.
		interactive := decryptJobs <= 1 && !decryptYes && config.ConfirmOverwrite && utils.IsTerminal()

		spinner, cleanup := startSpinner("Decrypting files...")
		defer cleanup()

		kdf := kdfParams(config)
		summary, err := batch.Process(args, decryptJobs, func(path string) error {
			dir := outputDir
			if dir == "" {
				dir = filepath.Dir(path)
			}

			// Reserve a unique temp path per operation. Containers from
			// different directories can share a basename, and parallel
			// workers must never write through the same temp file.
			tmpFile, err := os.CreateTemp(dir, ".cryptocrate-decrypt-*")
			if err != nil {
				return fmt.Errorf("failed to create temp file: %w", err)
			}
			tempOutput := tmpFile.Name()
			tmpFile.Close()

			useStreaming, err := crypto.ShouldUseStreaming(path)
			if err != nil {
				os.Remove(tempOutput)
				return err
			}

			var metadata *format.Metadata
			if useStreaming {
				metadata, err = crypto.DecryptStreaming(path, tempOutput, secret, kdf)
			} else {
				metadata, err = crypto.Decrypt(path, tempOutput, secret, crypto.Options{KDF: kdf})
			}
			if err != nil {
				os.Remove(tempOutput)
				return err
			}

			finalOutput := filepath.Join(dir, metadata.Filename)
			if _, statErr := os.Stat(finalOutput); statErr == nil && !decryptYes {
				if !interactive {
					os.Remove(tempOutput)
					return fmt.Errorf("output %s already exists (use --yes to overwrite)", finalOutput)
				}
				ok, err := utils.Confirm(fmt.Sprintf("Overwrite existing file '%s'?", metadata.Filename), false)
				if err != nil || !ok {
					os.Remove(tempOutput)
					if err != nil {
						return err
					}
					return fmt.Errorf("skipped: %s already exists", finalOutput)
				}
			}

			if err := os.Rename(tempOutput, finalOutput); err != nil {
				os.Remove(tempOutput)
				return fmt.Errorf("failed to place output: %w", err)
			}
			Logger.Infof("Decrypted %s -> %s", path, finalOutput)

			return nil
		})
		if err != nil {
			return Logger.ErrorfAndReturn("batch processing failed: %v", err)
		}

		for _, failure := range summary.Failures {
			Logger.Errorf("%s: %v", failure.Path, failure.Err)
		}

		if summary.Failed > 0 {
			spinner.FinalMSG = color.YellowString("!") + fmt.Sprintf(" Decrypted %d of %d files (%d failed)",
				summary.Succeeded, len(args), summary.Failed)
			return nil
		}

		spinner.FinalMSG = color.GreenString("✓") + fmt.Sprintf(" Decrypted %d files successfully!", summary.Succeeded)
		return nil
	},
}

func init() {
	DecryptCmd.Flags().StringVarP(&decryptOutputDir, "output", "o", "", "output directory (default: beside input)")
	DecryptCmd.Flags().StringVarP(&decryptPassword, "password", "p", "", "password (will prompt if not provided)")
	DecryptCmd.Flags().StringVarP(&decryptKeyfile, "keyfile", "k", "", "keyfile used during encryption")
	DecryptCmd.Flags().BoolVarP(&decryptYes, "yes", "y", false, "overwrite existing files without asking")
	DecryptCmd.Flags().IntVarP(&decryptJobs, "jobs", "j", 1, "number of files to process in parallel")
}
