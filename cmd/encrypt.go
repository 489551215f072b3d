package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dmytro-macuser/cryptocrate/internal/batch"
	"github.com/dmytro-macuser/cryptocrate/internal/crypto"
	cerrors "github.com/dmytro-macuser/cryptocrate/internal/errors"
	"github.com/dmytro-macuser/cryptocrate/internal/shred"
	"github.com/dmytro-macuser/cryptocrate/internal/utils"
	"github.com/dmytro-macuser/cryptocrate/internal/walker"
)

var (
	encryptCompress   bool
	encryptLevel      int
	encryptOutputDir  string
	encryptPassword   string
	encryptKeyfile    string
	encryptDelete     bool
	encryptDeleteMode string
	encryptYes        bool
	encryptJobs       int
)

var EncryptCmd = &cobra.Command{
	Use:   "encrypt [paths...]",
	Short: "Encrypts files or folders into .crat containers",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting encrypt command")
		config := loadConfig()

		compress := encryptCompress || config.CompressByDefault
		level := encryptLevel
		if level == 0 {
			level = config.CompressionLevel
		}

		Logger.Debugf("Collecting input files from %d paths", len(args))
		var allFiles []walker.FileEntry
		for _, path := range args {
			files, err := walker.CollectFiles(path, "")
			if err != nil {
				return Logger.ErrorfAndReturn("failed to collect files from %s: %v", path, err)
			}
			allFiles = append(allFiles, files...)
		}
		if len(allFiles) == 0 {
			fmt.Println(color.RedString("✗") + " No files found to encrypt")
			return cerrors.ErrNoFilesFound
		}

		var totalSize uint64
		largeCount := 0
		for _, f := range allFiles {
			totalSize += uint64(f.Size)
			if f.Size > crypto.StreamingThreshold {
				largeCount++
			}
		}
		Logger.Infof("Found %d files (%s total)", len(allFiles), utils.FormatSize(totalSize))
		if largeCount > 0 && compress {
			Logger.WarnfAlways("%d large file(s) will use streaming mode without compression", largeCount)
		}

		deleteMode := shred.Standard
		if encryptDelete {
			var err error
			deleteMode, err = shred.ParseMode(encryptDeleteMode)
			if err != nil {
				return Logger.ErrorfAndReturn("invalid delete mode: %v", err)
			}

			if !encryptYes {
				ok, err := utils.Confirm("Original files will be PERMANENTLY deleted after encryption. Continue?", false)
				if err != nil {
					return Logger.ErrorfAndReturn("failed to confirm deletion: %v", err)
				}
				if !ok {
					fmt.Println("Operation cancelled.")
					return nil
				}
			}
		}

		secret, err := resolveSecret(encryptPassword, encryptKeyfile, true)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to resolve secret: %v", err)
		}

		outputDir := encryptOutputDir
		if outputDir == "" {
			outputDir = config.DefaultOutputDir
		}
		if outputDir != "" {
			if err := os.MkdirAll(outputDir, 0700); err != nil {
				return Logger.ErrorfAndReturn("failed to create output directory: %v", err)
			}
		}

		spinner, cleanup := startSpinner("Encrypting files...")
		defer cleanup()

		kdf := kdfParams(config)
		paths := make([]string, len(allFiles))
		for i, f := range allFiles {
			paths[i] = f.Path
		}

		summary, err := batch.Process(paths, encryptJobs, func(path string) error {
			outputPath := encryptedOutputPath(path, outputDir)

			useStreaming, err := crypto.ShouldUseStreaming(path)
			if err != nil {
				return err
			}

			if useStreaming {
				// Streaming mode skips compression.
				err = crypto.EncryptStreaming(path, outputPath, secret, kdf)
			} else {
				err = crypto.Encrypt(path, outputPath, secret, crypto.Options{
					Compress:         compress,
					CompressionLevel: level,
					KDF:              kdf,
				})
			}
			if err != nil {
				return err
			}
			Logger.Infof("Encrypted %s -> %s", path, outputPath)

			if encryptDelete {
				if err := shred.Delete(path, deleteMode); err != nil {
					return fmt.Errorf("encrypted, but failed to delete original: %w", err)
				}
				Logger.Infof("Securely deleted %s (%s mode)", path, deleteMode)
			}

			return nil
		})
		if err != nil {
			return Logger.ErrorfAndReturn("batch processing failed: %v", err)
		}

		for _, failure := range summary.Failures {
			Logger.Errorf("%s: %v", failure.Path, failure.Err)
		}

		if summary.Failed > 0 {
			spinner.FinalMSG = color.YellowString("!") + fmt.Sprintf(" Encrypted %d of %d files (%d failed)",
				summary.Succeeded, len(paths), summary.Failed)
			return nil
		}

		finalMessage := color.GreenString("✓") + fmt.Sprintf(" Encrypted %d files successfully!", summary.Succeeded)
		if encryptDelete {
			finalMessage += "\n" + color.CyanString("→") + " Original files securely deleted"
		}
		spinner.FinalMSG = finalMessage
		return nil
	},
}

func init() {
	EncryptCmd.Flags().BoolVarP(&encryptCompress, "compress", "c", false, "compress before encrypting")
	EncryptCmd.Flags().IntVarP(&encryptLevel, "level", "l", 0, "compression level 1-21 (default from config)")
	EncryptCmd.Flags().StringVarP(&encryptOutputDir, "output", "o", "", "output directory (default: beside input)")
	EncryptCmd.Flags().StringVarP(&encryptPassword, "password", "p", "", "password (will prompt if not provided)")
	EncryptCmd.Flags().StringVarP(&encryptKeyfile, "keyfile", "k", "", "keyfile to combine with the password")
	EncryptCmd.Flags().BoolVar(&encryptDelete, "delete", false, "securely delete originals after encryption")
	EncryptCmd.Flags().StringVar(&encryptDeleteMode, "delete-mode", "standard", "secure deletion mode (quick, standard, paranoid)")
	EncryptCmd.Flags().BoolVarP(&encryptYes, "yes", "y", false, "skip confirmation prompts")
	EncryptCmd.Flags().IntVarP(&encryptJobs, "jobs", "j", 1, "number of files to process in parallel")
}
