package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dmytro-macuser/cryptocrate/internal/shred"
	"github.com/dmytro-macuser/cryptocrate/internal/utils"
)

var (
	shredMode string
	shredYes  bool
)

var ShredCmd = &cobra.Command{
	Use:   "shred [paths...]",
	Short: "Securely deletes files by overwriting them before removal",
	Long: `Shred overwrites each file's contents with one or more passes of random
or fixed patterns before unlinking it.

Note that overwriting cannot reach remapped blocks on wear-leveled flash
storage (SSDs), so this is not guaranteed erasure on such devices.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := shred.ParseMode(shredMode)
		if err != nil {
			return Logger.ErrorfAndReturn("invalid mode: %v", err)
		}
		Logger.Infof("Starting shred command (%s mode, %d passes)", mode, mode.Passes())

		if !shredYes {
			ok, err := utils.Confirm(fmt.Sprintf("%d file(s) will be PERMANENTLY deleted. Continue?", len(args)), false)
			if err != nil {
				return Logger.ErrorfAndReturn("failed to confirm deletion: %v", err)
			}
			if !ok {
				fmt.Println("Operation cancelled.")
				return nil
			}
		}

		spinner, cleanup := startSpinner("Shredding files...")
		defer cleanup()

		deleted := 0
		for _, path := range args {
			if err := shred.Delete(path, mode); err != nil {
				Logger.Errorf("failed to shred %s: %v", path, err)
				continue
			}
			Logger.Infof("Shredded %s", path)
			deleted++
		}

		if deleted < len(args) {
			spinner.FinalMSG = color.YellowString("!") + fmt.Sprintf(" Deleted %d of %d files", deleted, len(args))
			return nil
		}

		spinner.FinalMSG = color.GreenString("✓") + fmt.Sprintf(" Securely deleted %d files (%s mode)", deleted, mode)
		return nil
	},
}

func init() {
	ShredCmd.Flags().StringVarP(&shredMode, "mode", "m", "standard", "deletion mode (quick, standard, paranoid)")
	ShredCmd.Flags().BoolVarP(&shredYes, "yes", "y", false, "skip confirmation prompts")
}
