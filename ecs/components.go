package ecs

import "fmt"

// Vec3 is the position/size vector. Z only orders sprites in the 2D game.
type Vec3 struct {
	X, Y, Z float32
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v.X, v.Y, v.Z)
}

// Velocity pairs the current velocity with the entity's speed constant.
// Acceleration is added straight to Velocity on a jump and by the movement
// system every frame; it is not a continuous force scaled by time.
type Velocity struct {
	Velocity     Vec3
	Acceleration Vec3
}

// TextureHandle is an opaque, non-owning reference to a texture held by the renderer.
type TextureHandle uint32

// Sprite refers to the texture drawn for an entity.
type Sprite struct {
	Texture TextureHandle
}

// PlayerAttributes holds per-player tuning. The jump state lives in the
// JumpState table at the same slot.
type PlayerAttributes struct {
	MaxJumpCount uint8
}

// JumpState is Standing (zero) or Jumping(n) with n the number of jumps taken.
type JumpState uint8

// Standing is the grounded jump state.
const Standing JumpState = 0

// Jumping returns the state after count jumps.
func Jumping(count uint8) JumpState {
	return JumpState(count)
}

// IsStanding reports whether no jump has been taken.
func (s JumpState) IsStanding() bool {
	return s == Standing
}

// Count returns the number of jumps taken, zero when standing.
func (s JumpState) Count() uint8 {
	return uint8(s)
}

func (s JumpState) String() string {
	if s.IsStanding() {
		return "Standing"
	}
	return fmt.Sprintf("Jumping(%d)", s.Count())
}
