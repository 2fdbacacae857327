package game

import (
	"fmt"

	"github.com/plus3/towerclimb/config"
	"github.com/plus3/towerclimb/ecs"
	"github.com/plus3/towerclimb/render"
)

// World owns the entity store and the slots created at setup.
type World struct {
	Store  *ecs.Store
	Player ecs.Entity
	Tower  Tower
	Score  float32

	cfg        config.Config
	playerTex  ecs.TextureHandle
	stairTex   ecs.TextureHandle
	stairSlots []ecs.Entity
}

// NewWorld creates the store and spawns the player and the tower stairs.
// Texture names must already be registered; a missing one fails setup.
func NewWorld(cfg config.Config, textures *render.Registry) (*World, error) {
	playerTex, err := textures.Lookup(cfg.Player.Texture)
	if err != nil {
		return nil, fmt.Errorf("player sprite: %w", err)
	}
	stairTex, err := textures.Lookup(cfg.Tower.StairTexture)
	if err != nil {
		return nil, fmt.Errorf("stair sprite: %w", err)
	}

	w := &World{
		Store:     ecs.NewStore(cfg.World.Capacity),
		cfg:       cfg,
		playerTex: playerTex,
		stairTex:  stairTex,
	}
	if err := w.spawn(); err != nil {
		return nil, err
	}
	return w, nil
}

// Reset frees every slot and spawns the initial entities again.
func (w *World) Reset() error {
	w.Store.Reset()
	w.Score = 0
	return w.spawn()
}

func (w *World) spawn() error {
	w.Tower = NewTower(w.cfg.Tower)
	w.stairSlots = w.stairSlots[:0]

	player, err := w.Store.Allocate(ecs.MaskPlayer | ecs.MaskSize | ecs.MaskSprite)
	if err != nil {
		return fmt.Errorf("spawn player: %w", err)
	}
	w.Player = player

	*w.Store.Position(player) = w.cfg.Player.Position.ECS()
	*w.Store.Size(player) = w.cfg.Player.Size.ECS()
	*w.Store.Velocity(player) = ecs.Velocity{Acceleration: w.cfg.Player.Acceleration.ECS()}
	*w.Store.Sprite(player) = ecs.Sprite{Texture: w.playerTex}
	*w.Store.PlayerAttributes(player) = ecs.PlayerAttributes{MaxJumpCount: w.cfg.Player.MaxJumpCount}
	*w.Store.JumpState(player) = ecs.Standing

	size := w.cfg.Tower.StairSize.ECS()
	spacing := size.Y * 4
	for i := uint32(0); i < w.Tower.Stairs; i++ {
		stair, err := w.Store.Allocate(ecs.MaskRenderable)
		if err != nil {
			return fmt.Errorf("spawn stair %d: %w", i, err)
		}
		*w.Store.Position(stair) = StairPosition(i, w.Tower.Width, spacing)
		*w.Store.Size(stair) = size
		*w.Store.Sprite(stair) = ecs.Sprite{Texture: w.stairTex}
		w.stairSlots = append(w.stairSlots, stair)
	}
	return nil
}

// StairPosition zig-zags stairs across the tower width, one per spacing step.
func StairPosition(i uint32, towerWidth float32, spacing float32) ecs.Vec3 {
	x := float32(0)
	if i%2 == 1 {
		x = towerWidth
	}
	return ecs.Vec3{X: x, Y: float32(i) * spacing}
}

// Stairs returns the slots holding stairs.
func (w *World) Stairs() []ecs.Entity {
	return w.stairSlots
}

// ApplyTuning copies player tuning from cfg onto the live player. The tower
// layout is taken for the next Reset only if it fits the store.
func (w *World) ApplyTuning(cfg config.Config) {
	w.cfg.Player = cfg.Player
	if int(cfg.Tower.Stairs)+1 <= w.Store.Cap() {
		w.cfg.Tower = cfg.Tower
	}

	if !w.Store.Has(w.Player, ecs.MaskPlayer) {
		return
	}
	w.Store.Velocity(w.Player).Acceleration = cfg.Player.Acceleration.ECS()
	w.Store.PlayerAttributes(w.Player).MaxJumpCount = cfg.Player.MaxJumpCount
	if w.Store.Has(w.Player, ecs.MaskSize) {
		*w.Store.Size(w.Player) = cfg.Player.Size.ECS()
	}
}
