package main

import (
	"github.com/spf13/cobra"

	"github.com/plus3/towerclimb/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, source, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		if source != "" {
			logger.Debug("config loaded", "source", source)
		}

		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}
