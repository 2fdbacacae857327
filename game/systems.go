package game

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/towerclimb/ecs"
	"github.com/plus3/towerclimb/input"
	"github.com/plus3/towerclimb/render"
)

// NextJumpState returns the state after a jump input and whether the jump
// was taken. There is no transition back to Standing: nothing detects landing.
func NextJumpState(state ecs.JumpState, maxJumps uint8) (ecs.JumpState, bool) {
	if state.IsStanding() {
		return ecs.Jumping(1), true
	}
	if state.Count() < maxJumps {
		return ecs.Jumping(state.Count() + 1), true
	}
	return state, false
}

// ApplyInput moves every player slot according to the held keys. A taken jump
// sets the vertical velocity to the jump speed stored in Acceleration.Y.
// Directional keys offset the position directly, scaled by dt.
func ApplyInput(store *ecs.Store, keys *input.Keys, b Bindings, dt float32) {
	for e := range store.Query(ecs.MaskPlayer) {
		pos := store.Position(e)
		vel := store.Velocity(e)
		state := store.JumpState(e)
		attrs := store.PlayerAttributes(e)

		if keys.Down(b.Jump) {
			if next, jumped := NextJumpState(*state, attrs.MaxJumpCount); jumped {
				*state = next
				vel.Velocity.Y = vel.Acceleration.Y
			}
		}
		if keys.Down(b.Up) {
			pos.Y += vel.Acceleration.Y * dt
		}
		if keys.Down(b.Down) {
			pos.Y -= vel.Acceleration.Y * dt
		}
		if keys.Down(b.Left) {
			pos.X -= vel.Acceleration.X * dt
		}
		if keys.Down(b.Right) {
			pos.X += vel.Acceleration.X * dt
		}
	}
}

// Integrate adds the acceleration to the velocity and the velocity to the
// position, once per call. Neither step is scaled by the frame time.
func Integrate(store *ecs.Store) {
	for e := range store.Query(ecs.MaskMovable) {
		vel := store.Velocity(e)
		pos := store.Position(e)

		vel.Velocity = vel.Velocity.Add(vel.Acceleration)
		*pos = pos.Add(vel.Velocity)
	}
}

// SubmitRenderables draws one quad per renderable slot. The first draw error
// stops the submission.
func SubmitRenderables(store *ecs.Store, resolve func(ecs.TextureHandle) *ebiten.Image, r render.Renderer, viewProj ebiten.GeoM) error {
	for e := range store.Query(ecs.MaskRenderable) {
		model := render.ModelTransform(*store.Position(e), *store.Size(e))
		tex := resolve(store.Sprite(e).Texture)
		if err := r.DrawQuad(viewProj, model, tex); err != nil {
			return fmt.Errorf("draw %s: %w", e, err)
		}
	}
	return nil
}

// DebugText is the read-only state shown in the overlay's game window.
type DebugText struct {
	PlayerPos ecs.Vec3
	CameraPos ecs.Vec3
	HasPlayer bool
}

func (d DebugText) Lines() []string {
	player := "Player pos: none"
	if d.HasPlayer {
		player = fmt.Sprintf("Player pos: %s", d.PlayerPos)
	}
	return []string{
		player,
		fmt.Sprintf("Camera pos: %s", d.CameraPos),
	}
}

// InputSystem applies the key-state table to player slots.
type InputSystem struct {
	Keys     *input.Keys
	Bindings Bindings
}

func (s *InputSystem) Execute(frame *ecs.UpdateFrame) error {
	ApplyInput(frame.Store, s.Keys, s.Bindings, frame.DeltaTime)
	return nil
}

// MovementSystem integrates every movable slot.
type MovementSystem struct{}

func (s *MovementSystem) Execute(frame *ecs.UpdateFrame) error {
	Integrate(frame.Store)
	return nil
}

// CameraSystem pans the camera with its own keys, or follows the first player.
type CameraSystem struct {
	Camera   *render.Camera
	Keys     *input.Keys
	Bindings Bindings
}

func (s *CameraSystem) Execute(frame *ecs.UpdateFrame) error {
	if s.Keys.JustPressed(s.Bindings.CameraFollow) {
		s.Camera.Follow = !s.Camera.Follow
	}

	if s.Camera.Follow {
		if player, ok := ecs.NewQuery(frame.Store, ecs.MaskPlayer).First(); ok {
			s.Camera.CenterOn(*frame.Store.Position(player))
		}
		return nil
	}

	var dir ecs.Vec3
	if s.Keys.Down(s.Bindings.CameraUp) {
		dir.Y++
	}
	if s.Keys.Down(s.Bindings.CameraDown) {
		dir.Y--
	}
	if s.Keys.Down(s.Bindings.CameraLeft) {
		dir.X--
	}
	if s.Keys.Down(s.Bindings.CameraRight) {
		dir.X++
	}
	s.Camera.Pan(dir, frame.DeltaTime)
	return nil
}

// RenderSystem submits every renderable slot to the renderer and refreshes the debug text.
// Handles that do not resolve are drawn with the placeholder texture, warned about once.
type RenderSystem struct {
	Renderer render.Renderer
	Textures *render.Registry
	Camera   *render.Camera
	Logger   *log.Logger
	Debug    *DebugText

	missing map[ecs.TextureHandle]bool
}

func (s *RenderSystem) Execute(frame *ecs.UpdateFrame) error {
	if s.Debug != nil {
		s.Debug.CameraPos = s.Camera.Position
		player, ok := ecs.NewQuery(frame.Store, ecs.MaskPlayer).First()
		s.Debug.HasPlayer = ok
		if ok {
			s.Debug.PlayerPos = *frame.Store.Position(player)
		}
	}

	return SubmitRenderables(frame.Store, s.resolve, s.Renderer, s.Camera.ViewProjection())
}

func (s *RenderSystem) resolve(h ecs.TextureHandle) *ebiten.Image {
	if img, ok := s.Textures.Resolve(h); ok && img != nil {
		return img
	}

	if s.missing == nil {
		s.missing = make(map[ecs.TextureHandle]bool)
	}
	if !s.missing[h] {
		s.missing[h] = true
		if s.Logger != nil {
			s.Logger.Warn("texture handle does not resolve, drawing placeholder", "handle", h)
		}
	}
	return s.Textures.Placeholder()
}
