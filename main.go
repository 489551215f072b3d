package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmytro-macuser/cryptocrate/cmd"
)

var rootCmd = &cobra.Command{
	Use:   "cryptocrate",
	Short: "CryptoCrate - A fast, user-friendly file and folder encryption tool.",
	Long: `CryptoCrate encrypts files and folders into self-describing .crat
containers using AES-256-GCM with Argon2id key derivation.

Features:
  - Password and/or keyfile based encryption
  - Optional zstd compression before encryption
  - Streaming mode for large files
  - Secure multi-pass deletion of plaintext originals
  - Container inspection without decryption

Run 'cryptocrate help <command>' for more details on a specific command.
`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Welcome to CryptoCrate! Run 'cryptocrate --help' to see available commands.")
	},
}

func main() {
	cmd.RegisterGlobalFlags(rootCmd)

	rootCmd.AddCommand(cmd.EncryptCmd)
	rootCmd.AddCommand(cmd.DecryptCmd)
	rootCmd.AddCommand(cmd.InspectCmd)
	rootCmd.AddCommand(cmd.KeygenCmd)
	rootCmd.AddCommand(cmd.ShredCmd)
	rootCmd.AddCommand(cmd.ConfigCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
