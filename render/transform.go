// Package render draws textured quads onto an ebiten target.
//
// World space is y-up with pixel units. Every sprite is the unit quad
// [-1,1]² carried into world space by a model transform and onto the
// target by the camera's view-projection.
package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/towerclimb/ecs"
)

// ModelTransform places the unit quad so it covers [pos, pos+size]:
// scale by half the size, shift by half the size, then translate to pos.
func ModelTransform(pos, size ecs.Vec3) ebiten.GeoM {
	var m ebiten.GeoM
	m.Scale(float64(size.X)/2, float64(size.Y)/2)
	m.Translate(float64(size.X)/2, float64(size.Y)/2)
	m.Translate(float64(pos.X), float64(pos.Y))
	return m
}

// texelToQuad maps texel space of a w×h image (y-down) onto the unit quad (y-up).
func texelToQuad(w, h int) ebiten.GeoM {
	var m ebiten.GeoM
	m.Scale(2/float64(w), -2/float64(h))
	m.Translate(-1, 1)
	return m
}
