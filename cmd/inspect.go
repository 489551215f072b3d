package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dmytro-macuser/cryptocrate/internal/inspect"
)

var InspectCmd = &cobra.Command{
	Use:   "inspect [paths...]",
	Short: "Shows container metadata without decrypting",
	Long: `Inspect parses the container header and the embedded metadata without
deriving any key or touching the ciphertext, so it is safe to run on a
container whose password has been forgotten.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting inspect command for %d files", len(args))

		failed := 0
		for _, path := range args {
			info, err := inspect.Inspect(path)
			if err != nil {
				Logger.Errorf("%s: %v", path, err)
				fmt.Println(color.RedString("✗") + " " + path + ": " + err.Error())
				failed++
				continue
			}

			fmt.Println(color.CyanString(path))
			fmt.Print(info.Display())
			fmt.Println()
		}

		if failed > 0 {
			return fmt.Errorf("failed to inspect %d of %d files", failed, len(args))
		}
		return nil
	},
}
