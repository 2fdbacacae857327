package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plus3/towerclimb/config"
	"github.com/plus3/towerclimb/game"
)

var (
	flagFrames     int
	flagDT         float32
	flagJumpFrames int
)

var headlessCmd = &cobra.Command{
	Use:   "headless",
	Short: "Step the update systems without a window",
	Long: `Run the input, movement and camera systems for a fixed number of
frames with a fixed delta. The jump key is held for the first
--jump-frames frames. Prints the player's final state.`,
	Args: cobra.NoArgs,
	RunE: runHeadless,
}

func init() {
	headlessCmd.Flags().IntVar(&flagFrames, "frames", 60, "Number of frames to run")
	headlessCmd.Flags().Float32Var(&flagDT, "dt", 1.0/60, "Seconds per frame")
	headlessCmd.Flags().IntVar(&flagJumpFrames, "jump-frames", 2, "Frames the jump key is held from the start")
}

func runHeadless(cmd *cobra.Command, args []string) error {
	if flagFrames < 0 || flagJumpFrames < 0 {
		return fmt.Errorf("--frames and --jump-frames must not be negative, got %d and %d", flagFrames, flagJumpFrames)
	}

	cfg, _, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	res, err := game.RunHeadless(cfg, game.HeadlessOptions{
		Frames:     flagFrames,
		DT:         flagDT,
		JumpFrames: flagJumpFrames,
	}, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "frames:   %d\n", res.Frames)
	fmt.Fprintf(out, "position: %s\n", res.Position)
	fmt.Fprintf(out, "velocity: %s\n", res.Velocity)
	fmt.Fprintf(out, "jump:     %s\n", res.JumpState)
	fmt.Fprintf(out, "score:    %.0f\n", res.Score)
	fmt.Fprintf(out, "slots:    %d/%d\n", res.Occupied, cfg.World.Capacity)
	return nil
}
