package game

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/plus3/towerclimb/config"
	"github.com/plus3/towerclimb/ecs"
	"github.com/plus3/towerclimb/input"
	"github.com/plus3/towerclimb/render"
)

// HeadlessOptions configures a run without a window.
type HeadlessOptions struct {
	Frames     int
	DT         float32
	JumpFrames int
}

// HeadlessResult is the player state after a headless run.
type HeadlessResult struct {
	Frames    int
	Position  ecs.Vec3
	Velocity  ecs.Vec3
	JumpState ecs.JumpState
	Score     float32
	Occupied  int
}

// RunHeadless steps the update systems with a fixed delta and scripted input.
// The jump key is held for the first JumpFrames frames. Nothing is drawn.
func RunHeadless(cfg config.Config, opts HeadlessOptions, logger *log.Logger) (HeadlessResult, error) {
	bindings, err := NewBindings(cfg.Input)
	if err != nil {
		return HeadlessResult{}, err
	}

	// Images are never drawn here; only the names need handles.
	textures := render.NewRegistry(nil)
	for name := range cfg.Textures {
		textures.Register(name, nil)
	}

	world, err := NewWorld(cfg, textures)
	if err != nil {
		return HeadlessResult{}, err
	}

	var keys input.Keys
	script := input.Hold(opts.JumpFrames, bindings.Jump)
	camera := render.NewCamera(float64(cfg.Window.Width), float64(cfg.Window.Height))
	camera.MovementSpeed = cfg.Camera.MovementSpeed
	camera.Follow = cfg.Camera.Follow

	clock := ecs.NewClock(time.Time{})
	scheduler := ecs.NewScheduler(world.Store, clock)
	scheduler.Register(&InputSystem{Keys: &keys, Bindings: bindings})
	scheduler.Register(&MovementSystem{})
	scheduler.Register(&ScoreSystem{World: world})
	scheduler.Register(&CameraSystem{Camera: camera, Keys: &keys, Bindings: bindings})

	for i := 0; i < opts.Frames; i++ {
		clock.Advance(opts.DT)
		keys.Sample(script)
		if err := scheduler.Once(); err != nil {
			return HeadlessResult{}, err
		}
		script.Next()
	}

	res := HeadlessResult{
		Frames:   opts.Frames,
		Score:    world.Score,
		Occupied: world.Store.Len(),
	}
	if world.Store.Has(world.Player, ecs.MaskPlayer) {
		res.Position = *world.Store.Position(world.Player)
		res.Velocity = world.Store.Velocity(world.Player).Velocity
		res.JumpState = *world.Store.JumpState(world.Player)
	}

	if logger != nil {
		for _, s := range scheduler.GetStats().Systems {
			logger.Debug("system", "name", s.Name, "runs", s.ExecutionCount, "avg", s.AvgDuration)
		}
		logger.Info("headless run finished", "frames", res.Frames, "position", res.Position, "jump", res.JumpState)
	}
	return res, nil
}
