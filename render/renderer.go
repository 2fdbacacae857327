package render

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

var ErrNoTarget = errors.New("render: no target image")
var ErrNilTexture = errors.New("render: nil texture")

// Renderer issues one textured-quad draw.
type Renderer interface {
	DrawQuad(viewProj, model ebiten.GeoM, tex *ebiten.Image) error
}

// ScreenRenderer draws quads onto an ebiten image, usually the frame's screen.
type ScreenRenderer struct {
	target     *ebiten.Image
	ClearColor color.Color
	Filter     ebiten.Filter

	draws int
}

// NewScreenRenderer creates a renderer clearing to clear at the start of each frame.
func NewScreenRenderer(clear color.Color) *ScreenRenderer {
	return &ScreenRenderer{ClearColor: clear, Filter: ebiten.FilterNearest}
}

// Begin starts a frame on target and clears it.
func (r *ScreenRenderer) Begin(target *ebiten.Image) {
	r.target = target
	r.draws = 0
	if r.ClearColor != nil {
		target.Fill(r.ClearColor)
	}
}

// Draws returns how many quads were drawn since Begin.
func (r *ScreenRenderer) Draws() int {
	return r.draws
}

func (r *ScreenRenderer) DrawQuad(viewProj, model ebiten.GeoM, tex *ebiten.Image) error {
	if r.target == nil {
		return ErrNoTarget
	}
	if tex == nil {
		return ErrNilTexture
	}

	bounds := tex.Bounds()
	op := &ebiten.DrawImageOptions{Filter: r.Filter}
	op.GeoM = texelToQuad(bounds.Dx(), bounds.Dy())
	op.GeoM.Concat(model)
	op.GeoM.Concat(viewProj)

	r.target.DrawImage(tex, op)
	r.draws++
	return nil
}

// Target returns the image the current frame draws onto.
func (r *ScreenRenderer) Target() *ebiten.Image {
	return r.target
}
