package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dmytro-macuser/cryptocrate/internal/configs"
	logger "github.com/dmytro-macuser/cryptocrate/internal/logging"
)

var (
	verbose    bool
	debug      bool
	configPath string
	Logger     logger.Logger
)

// RegisterGlobalFlags binds the shared verbosity and config flags to the
// root command and wires up logger initialization.
func RegisterGlobalFlags(root *cobra.Command) {
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default: auto-detect)")

	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		Logger = logger.Logger{
			Verbose: verbose,
			Debug:   debug,
		}
		Logger.Debugf("Initializing cryptocrate with verbose=%t, debug=%t", verbose, debug)
	}
}

// loadConfig loads the effective configuration, honoring --config.
func loadConfig() configs.Config {
	if configPath != "" {
		config, err := configs.Load(configPath)
		if err != nil {
			Logger.WarnfAlways("Failed to load config from %s, using defaults: %v", configPath, err)
			return configs.DefaultConfig()
		}
		return config
	}

	config, err := configs.LoadDefault()
	if err != nil {
		Logger.WarnfAlways("Failed to load config, using defaults: %v", err)
		return configs.DefaultConfig()
	}
	return config
}

// Helper functions for testing

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}

// SetVerbose sets the verbose flag for testing.
func SetVerbose(v bool) {
	verbose = v
}

// SetDebug sets the debug flag for testing.
func SetDebug(d bool) {
	debug = d
}

// SetConfigPath sets the config path for testing.
func SetConfigPath(path string) {
	configPath = path
}
