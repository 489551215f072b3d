package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dmytro-macuser/cryptocrate/internal/configs"
)

var configInitLocal bool

var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the cryptocrate configuration file",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Shows the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		config := loadConfig()

		fmt.Printf("compression_level    = %d\n", config.CompressionLevel)
		fmt.Printf("compress_by_default  = %t\n", config.CompressByDefault)
		fmt.Printf("default_output_dir   = %q\n", config.DefaultOutputDir)
		fmt.Printf("confirm_overwrite    = %t\n", config.ConfirmOverwrite)
		fmt.Printf("argon2_memory_kb     = %d\n", config.Argon2MemoryKB)
		fmt.Printf("argon2_time_cost     = %d\n", config.Argon2TimeCost)
		fmt.Printf("argon2_parallelism   = %d\n", config.Argon2Parallelism)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Creates a configuration file with default values",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configs.ConfigFileName
		if !configInitLocal {
			var err error
			path, err = configs.DefaultUserConfigPath()
			if err != nil {
				return Logger.ErrorfAndReturn("failed to determine config path: %v", err)
			}
		}

		if _, err := os.Stat(path); err == nil {
			return Logger.ErrorfAndReturn("config file already exists: %s", path)
		}

		if err := configs.DefaultConfig().Save(path); err != nil {
			return Logger.ErrorfAndReturn("failed to write config: %v", err)
		}

		fmt.Println(color.GreenString("✓") + " Created config file: " + color.YellowString(path))
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Shows where the configuration file is looked up",
	RunE: func(cmd *cobra.Command, args []string) error {
		userPath, err := configs.DefaultUserConfigPath()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to determine config path: %v", err)
		}

		fmt.Println("Search order:")
		fmt.Println("  1. ./" + configs.ConfigFileName)
		fmt.Println("  2. " + userPath)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVarP(&configInitLocal, "local", "l", false, "create in the current directory instead of the user config directory")

	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configInitCmd)
	ConfigCmd.AddCommand(configPathCmd)
}
