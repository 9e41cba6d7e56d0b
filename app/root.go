// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"

	"github.com/gamelanding/gamelanding/internal/config"
)

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVarP(
		&configPath,
		"config",
		"c",
		config.DefaultPath,
		"Directory holding main.toml",
	)
}

var rootCmd = &cobra.Command{
	Use:   "gamelanding",
	Short: "gamelanding serves a game showcase landing page",
	Long: `gamelanding serves a game showcase landing page with a game gallery,
call to action buttons and a JSON API for the admin dashboard.`,
	Args:         cobra.OnlyValidArgs,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the config from --config.
func loadConfig() (config.Config, error) {
	return config.ReadConfig(configPath)
}
