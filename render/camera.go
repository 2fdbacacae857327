package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/towerclimb/ecs"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Camera is an orthographic 2D camera. Position is the world point shown at
// the bottom-left corner of the viewport.
type Camera struct {
	Position      ecs.Vec3
	Width         float64
	Height        float64
	MovementSpeed float32
	// Follow keeps the camera centered on the player.
	Follow bool
}

func NewCamera(width, height float64) *Camera {
	return &Camera{
		Width:         width,
		Height:        height,
		MovementSpeed: 200,
	}
}

// View translates world space by the negated camera position.
func (c *Camera) View() ebiten.GeoM {
	var m ebiten.GeoM
	m.Translate(-float64(c.Position.X), -float64(c.Position.Y))
	return m
}

// Projection maps the y-up viewport [0,W]×[0,H] onto y-down target pixels.
func (c *Camera) Projection() ebiten.GeoM {
	var m ebiten.GeoM
	m.Scale(1, -1)
	m.Translate(0, c.Height)
	return m
}

// ViewProjection is the view followed by the projection.
func (c *Camera) ViewProjection() ebiten.GeoM {
	vp := c.View()
	vp.Concat(c.Projection())
	return vp
}

// CenterOn moves the camera so that target sits in the middle of the viewport.
func (c *Camera) CenterOn(target ecs.Vec3) {
	c.Position.X = target.X - float32(c.Width/2)
	c.Position.Y = target.Y - float32(c.Height/2)
}

// Pan offsets the camera by dir scaled with the movement speed and dt.
func (c *Camera) Pan(dir ecs.Vec3, dt float32) {
	c.Position = c.Position.Add(dir.Scale(c.MovementSpeed * dt))
}
