package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dmytro-macuser/cryptocrate/internal/keyfile"
)

var keygenSize int

var KeygenCmd = &cobra.Command{
	Use:   "keygen [path]",
	Short: "Generates a new random keyfile",
	Long: `Keygen writes cryptographically random bytes to a new keyfile. The
keyfile's digest can then be combined with a password as a second factor
for encryption and decryption.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		Logger.Infof("Generating keyfile at %s (%d bytes)", path, keygenSize)

		spinner, cleanup := startSpinner("Generating keyfile...")
		defer cleanup()

		if err := keyfile.Generate(path, keygenSize); err != nil {
			return Logger.ErrorfAndReturn("failed to generate keyfile: %v", err)
		}

		spinner.FinalMSG = color.GreenString("✓") + " Keyfile generated: " + color.YellowString(path) + "\n" +
			color.CyanString("→") + " Keep this file safe - without it, keyfile-protected containers cannot be decrypted"
		return nil
	},
}

func init() {
	KeygenCmd.Flags().IntVarP(&keygenSize, "size", "s", 0, "keyfile size in bytes (default: 4096)")
}
