package game

import "github.com/plus3/towerclimb/config"

// Tower is the level skeleton. Stairs are drawn as plain sprites; nothing
// collides with them and the level does not scroll yet.
type Tower struct {
	Floors         uint32
	Stairs         uint32
	Width          float32
	ScrollingSpeed float32
	CurrentLevel   float32
}

func NewTower(cfg config.TowerConfig) Tower {
	return Tower{
		Floors:         cfg.Floors,
		Stairs:         cfg.Stairs,
		Width:          cfg.Width,
		ScrollingSpeed: cfg.ScrollingSpeed,
	}
}
