package app

import (
	"github.com/spf13/cobra"

	"github.com/gamelanding/gamelanding/internal/config"
	"github.com/gamelanding/gamelanding/internal/daemon"
	"github.com/gamelanding/gamelanding/internal/logger"
)

func init() { //nolint: gochecknoinits
	startCmd.Flags().BoolVar(&devMode, "dev", false, "Enable dev mode")

	rootCmd.AddCommand(startCmd)
}

var (
	configPath string // Path to the configuration file

	cfg     config.Config
	devMode bool

	startCmd = &cobra.Command{
		Use:   "start",
		Short: "Start the landing page web service",
		PreRunE: func(_ *cobra.Command, _ []string) error {
			var err error

			if cfg, err = loadConfig(); err != nil {
				return err
			}

			if devMode {
				cfg.DevMode = true
			}

			return logger.Init(cfg.Log)
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			d, err := daemon.New(&cfg)
			if err != nil {
				return err
			}

			return d.Start()
		},
	}
)
