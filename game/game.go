// Package game wires the ECS store, the systems and the screens into an
// ebiten.Game.
package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/towerclimb/config"
	"github.com/plus3/towerclimb/ecs"
	"github.com/plus3/towerclimb/ecs/debugui"
	debugui_ebiten "github.com/plus3/towerclimb/ecs/debugui/ebiten"
	"github.com/plus3/towerclimb/input"
	"github.com/plus3/towerclimb/render"
)

// Game runs the update systems while the game phase is GameRunning and draws
// every frame: the scene, then the current menu, then the debug overlay.
type Game struct {
	cfg      config.Config
	logger   *log.Logger
	world    *World
	textures *render.Registry
	camera   *render.Camera
	renderer *render.ScreenRenderer
	keys     input.Keys
	bindings Bindings
	clock    *ecs.Clock
	debug    DebugText

	update      *ecs.Scheduler
	overlayTick *ecs.Scheduler
	draw        *ecs.Scheduler

	backend *debugui_ebiten.ImguiBackend
	overlay *debugui.Overlay
	menus   *Menus
	watcher *config.Watcher

	phase Phase
	err   error
}

// Options carries the optional collaborators of a Game.
type Options struct {
	Logger *log.Logger
	// Backend enables the ImGui overlay when non-nil.
	Backend *debugui_ebiten.ImguiBackend
	// Watcher delivers config reloads, drained once per update.
	Watcher *config.Watcher
}

// New builds the world and the schedulers. Textures are created from the
// configured colour names.
func New(cfg config.Config, opts Options) (*Game, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	bindings, err := NewBindings(cfg.Input)
	if err != nil {
		return nil, err
	}

	textures := render.NewRegistry(render.PlaceholderTexture())
	if err := LoadTextures(cfg, textures); err != nil {
		return nil, err
	}

	world, err := NewWorld(cfg, textures)
	if err != nil {
		return nil, err
	}

	camera := render.NewCamera(float64(cfg.Window.Width), float64(cfg.Window.Height))
	camera.MovementSpeed = cfg.Camera.MovementSpeed
	camera.Follow = cfg.Camera.Follow

	g := &Game{
		cfg:      cfg,
		logger:   logger,
		world:    world,
		textures: textures,
		camera:   camera,
		renderer: render.NewScreenRenderer(clearColor(cfg.Window.ClearColor)),
		bindings: bindings,
		clock:    ecs.NewClock(time.Now()),
		backend:  opts.Backend,
		watcher:  opts.Watcher,
		phase:    TitleScreen,
	}
	g.menus = NewMenus(g, cfg.Window.Width, cfg.Window.Height)

	g.update = ecs.NewScheduler(world.Store, g.clock)
	g.update.Register(&InputSystem{Keys: &g.keys, Bindings: bindings})
	g.update.Register(&MovementSystem{})
	g.update.Register(&ScoreSystem{World: world})
	g.update.Register(&CameraSystem{Camera: camera, Keys: &g.keys, Bindings: bindings})

	var drawer render.Renderer = g.renderer
	if cfg.Debug.OnDrawError == config.DrawErrorSkip {
		drawer = &skipRenderer{Renderer: g.renderer, logger: logger}
	}

	g.draw = ecs.NewScheduler(world.Store, g.clock)
	g.draw.Register(&RenderSystem{
		Renderer: drawer,
		Textures: textures,
		Camera:   camera,
		Logger:   logger,
		Debug:    &g.debug,
	})
	g.draw.Register(&MenuSystem{Menus: g.menus, Phase: g.Phase, Target: g.renderer})

	if g.backend != nil {
		g.overlay = debugui.NewOverlay()
		g.overlay.Enabled = cfg.Debug.Overlay
		g.overlay.Add(debugui.ImguiItem{Render: g.renderGameWindow})
		g.overlay.WatchScheduler("update", g.update)
		g.overlay.WatchScheduler("draw", g.draw)

		g.overlayTick = ecs.NewScheduler(world.Store, g.clock)
		g.overlayTick.Register(g.overlay)

		g.draw.Register(&debugui_ebiten.DrawSystem{Backend: g.backend, Target: g.renderer})
	}

	return g, nil
}

// LoadTextures registers a solid texture per configured colour name.
func LoadTextures(cfg config.Config, textures *render.Registry) error {
	for name, colour := range cfg.Textures {
		c, err := render.ParseColor(colour)
		if err != nil {
			return fmt.Errorf("texture %s: %w", name, err)
		}
		textures.Register(name, render.SolidTexture(1, 1, c))
	}
	return nil
}

func clearColor(c [3]float32) color.Color {
	return color.RGBA{
		R: uint8(c[0] * 255),
		G: uint8(c[1] * 255),
		B: uint8(c[2] * 255),
		A: 0xff,
	}
}

// World returns the game's world.
func (g *Game) World() *World {
	return g.world
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Fire applies ev to the phase machine. Events that do not apply to the
// current phase are ignored. Restarting resets the world.
func (g *Game) Fire(ev Event) {
	next, ok := Transition(g.phase, ev)
	if !ok {
		return
	}

	switch ev {
	case EventRestart:
		if err := g.world.Reset(); err != nil {
			g.err = fmt.Errorf("restart: %w", err)
			return
		}
		g.camera.Position = ecs.Vec3{}
	case EventDie:
		g.menus.Death.SetStatus(deathStatus(g.world.Score, g.world.Tower.CurrentLevel))
	}

	g.logger.Info("phase changed", "from", g.phase, "to", next, "event", ev)
	g.phase = next
}

func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}

	g.drainConfig()
	g.clock.Tick(time.Now())
	g.keys.Sample(input.EbitenSource{})

	if g.overlay != nil && g.keys.JustPressed(g.bindings.Overlay) {
		g.overlay.Toggle()
	}

	switch g.phase {
	case TitleScreen:
		if g.keys.JustPressed(g.bindings.Confirm) {
			g.Fire(EventStart)
		}
	case GameRunning:
		if g.keys.JustPressed(g.bindings.GiveUp) {
			g.Fire(EventDie)
			break
		}
		if g.overlay != nil && g.overlay.InputState.WantCaptureKeyboard {
			g.keys.Reset()
		}
		if err := g.update.Once(); err != nil {
			return err
		}
	case DeathScreen:
		if g.keys.JustPressed(g.bindings.Confirm) {
			g.Fire(EventRestart)
		}
	}

	if menu := g.menus.For(g.phase); menu != nil {
		menu.UI.Update()
	}

	if g.backend != nil {
		g.backend.BeginFrame()
		err := g.overlayTick.Once()
		g.backend.EndFrame()
		if err != nil {
			return err
		}
	}
	return g.err
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Begin(screen)
	if err := g.draw.Once(); err != nil {
		// Update returns it on the next tick, which ends the run.
		g.err = err
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.backend != nil {
		g.backend.Layout(outsideWidth, outsideHeight)
	}
	return g.cfg.Window.Width, g.cfg.Window.Height
}

// Close stops the config watcher, if any.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) drainConfig() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case cfg := <-g.watcher.Configs:
			g.applyConfig(cfg)
		case err := <-g.watcher.Errors:
			g.logger.Warn("keeping previous config", "err", err)
		default:
			return
		}
	}
}

// applyConfig takes the tuning values of a reloaded config. Capacity, window
// size and bindings need a restart.
func (g *Game) applyConfig(cfg config.Config) {
	g.world.ApplyTuning(cfg)
	g.camera.MovementSpeed = cfg.Camera.MovementSpeed
	g.renderer.ClearColor = clearColor(cfg.Window.ClearColor)
	if err := LoadTextures(cfg, g.textures); err != nil {
		g.logger.Warn("texture reload failed", "err", err)
	}
	g.logger.Info("config applied")
}

func (g *Game) renderGameWindow() {
	if !imgui.BeginV("Game", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}
	imgui.Text(fmt.Sprintf("Phase: %s", g.phase))
	for _, line := range g.debug.Lines() {
		imgui.Text(line)
	}
	imgui.Text(fmt.Sprintf("Camera follow: %t", g.camera.Follow))
	imgui.Text(fmt.Sprintf("Score: %.0f", g.world.Score))
	imgui.End()
}

// ScoreSystem records the highest point the player reached.
type ScoreSystem struct {
	World *World
}

func (s *ScoreSystem) Execute(frame *ecs.UpdateFrame) error {
	if player, ok := ecs.NewQuery(frame.Store, ecs.MaskPlayer).First(); ok {
		if y := frame.Store.Position(player).Y; y > s.World.Score {
			s.World.Score = y
		}
	}
	return nil
}

// MenuSystem draws the menu of the current phase over the scene.
type MenuSystem struct {
	Menus  *Menus
	Phase  func() Phase
	Target debugui_ebiten.Target
}

func (s *MenuSystem) Execute(frame *ecs.UpdateFrame) error {
	menu := s.Menus.For(s.Phase())
	screen := s.Target.Target()
	if menu == nil || screen == nil {
		return nil
	}
	menu.UI.Draw(screen)
	return nil
}

// skipRenderer logs failed draws and carries on with the next quad.
type skipRenderer struct {
	render.Renderer
	logger *log.Logger
}

func (r *skipRenderer) DrawQuad(viewProj, model ebiten.GeoM, tex *ebiten.Image) error {
	if err := r.Renderer.DrawQuad(viewProj, model, tex); err != nil {
		r.logger.Warn("skipping quad", "err", err)
	}
	return nil
}
