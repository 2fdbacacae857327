// towerclimb is a small tower-climbing platformer built on a fixed-capacity ECS.
//
// Usage:
//
//	towerclimb run          - Open the game window
//	towerclimb headless     - Step the update systems without a window
//	towerclimb config       - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.towerclimb/config.yaml, then ./configs/towerclimb.yaml)
//	--log-level <level> - debug, info, warn or error (default: info)
//	--profile <mode>    - Write a cpu or mem profile to the working directory
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagLogLevel string
	flagProfile  string

	logger   *log.Logger
	profiler interface{ Stop() }
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "towerclimb",
	Short: "towerclimb - climb the tower, one double jump at a time",
	Long: `towerclimb is a minimal platformer: a player slot that can jump a
limited number of times, a tower of stairs, and a debug camera.

Examples:
  towerclimb run
  towerclimb run --config ./my.yaml --log-level debug
  towerclimb headless --frames 120 --jump-frames 2
  towerclimb config > configs/towerclimb.yaml`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config YAML file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "", "Profile mode: cpu or mem")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(headlessCmd)
	rootCmd.AddCommand(configCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return err
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		Prefix:          "towerclimb",
		ReportTimestamp: true,
	})

	switch flagProfile {
	case "":
	case "cpu":
		profiler = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	case "mem":
		profiler = profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	default:
		return fmt.Errorf("unknown profile mode %q", flagProfile)
	}
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	if profiler != nil {
		profiler.Stop()
	}
	return nil
}
