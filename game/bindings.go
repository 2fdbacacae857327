package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/towerclimb/config"
	"github.com/plus3/towerclimb/input"
)

// Bindings maps game actions to keys.
type Bindings struct {
	Jump  ebiten.Key
	Up    ebiten.Key
	Down  ebiten.Key
	Left  ebiten.Key
	Right ebiten.Key

	CameraUp     ebiten.Key
	CameraDown   ebiten.Key
	CameraLeft   ebiten.Key
	CameraRight  ebiten.Key
	CameraFollow ebiten.Key

	Confirm ebiten.Key
	GiveUp  ebiten.Key
	Overlay ebiten.Key
}

// DefaultBindings returns the bindings of the embedded default config.
func DefaultBindings() Bindings {
	b, err := NewBindings(config.Default().Input)
	if err != nil {
		panic(err)
	}
	return b
}

// NewBindings resolves the configured key names.
func NewBindings(cfg config.InputConfig) (Bindings, error) {
	var b Bindings
	targets := []struct {
		name string
		key  *ebiten.Key
		val  string
	}{
		{"jump", &b.Jump, cfg.Jump},
		{"up", &b.Up, cfg.Up},
		{"down", &b.Down, cfg.Down},
		{"left", &b.Left, cfg.Left},
		{"right", &b.Right, cfg.Right},
		{"camera_up", &b.CameraUp, cfg.CameraUp},
		{"camera_down", &b.CameraDown, cfg.CameraDown},
		{"camera_left", &b.CameraLeft, cfg.CameraLeft},
		{"camera_right", &b.CameraRight, cfg.CameraRight},
		{"camera_follow", &b.CameraFollow, cfg.CameraFollow},
		{"confirm", &b.Confirm, cfg.Confirm},
		{"give_up", &b.GiveUp, cfg.GiveUp},
		{"overlay", &b.Overlay, cfg.Overlay},
	}

	for _, t := range targets {
		key, err := input.ParseKey(t.val)
		if err != nil {
			return b, fmt.Errorf("binding %s: %w", t.name, err)
		}
		*t.key = key
	}
	return b, nil
}
