package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/plus3/towerclimb/config"
	debugui_ebiten "github.com/plus3/towerclimb/ecs/debugui/ebiten"
	"github.com/plus3/towerclimb/game"
)

var flagWatch bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the game window",
	Long: `Open the game window on the title screen.

Controls:
  Enter        - Start / restart
  Space        - Jump (up to max_jump_count times)
  Arrow keys   - Nudge the player
  W/A/S/D      - Pan the camera
  Tab          - Toggle camera follow
  Escape       - Give up
  F1           - Toggle the debug overlay

With --watch, edits to the config file are applied while the game runs.`,
	Args: cobra.NoArgs,
	RunE: runGame,
}

func init() {
	runCmd.Flags().BoolVar(&flagWatch, "watch", true, "Reload tuning values when the config file changes")
}

func runGame(cmd *cobra.Command, args []string) error {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if source == "" {
		source = "embedded default"
	}
	logger.Info("config loaded", "source", source)

	opts := game.Options{Logger: logger}

	if flagWatch && source != "embedded default" {
		watcher, err := config.Watch(source, logger)
		if err != nil {
			logger.Warn("config watch disabled", "err", err)
		} else {
			opts.Watcher = watcher
		}
	}

	if cfg.Debug.Overlay {
		opts.Backend = debugui_ebiten.NewImguiBackend(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)
	}

	g, err := game.New(cfg, opts)
	if err != nil {
		return err
	}
	defer g.Close()

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetTPS(cfg.Window.TPS)

	return ebiten.RunGame(g)
}
