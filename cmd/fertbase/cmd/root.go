package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/hydrotools/fertbase/pkg/config"
	"github.com/hydrotools/fertbase/util"
)

var (
	flagConfig   string
	flagBaseDir  string
	flagLogLevel string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fertbase",
	Short: "fertbase - HydroBuddy substances table editor",
	Long: `fertbase edits HydroBuddy's fertilizer substances table (a legacy
fixed-record dBASE file) in place: it appends fertilizer records that are
not already present by name and rewrites the file with a timestamped
backup.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagLogLevel != "" {
			util.SetLevel(util.ParseLevel(flagLogLevel))
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig merges the optional config file with command-line flags; flags
// win.
func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()

	path := flagConfig
	if path == "" && config.ConfigExists(config.GetDefaultConfigPath()) {
		path = config.GetDefaultConfigPath()
	}
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if flagBaseDir != "" {
		cfg.BaseDir = flagBaseDir
	}
	if flagLogLevel != "" {
		cfg.Logging.Level = flagLogLevel
	}
	util.SetLevel(util.ParseLevel(cfg.Logging.Level))

	return cfg, nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagBaseDir, "base-dir", "b", "", "HydroBuddy installation folder")
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
}
