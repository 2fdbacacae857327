package render_test

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/towerclimb/ecs"
	"github.com/plus3/towerclimb/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func apply(m ebiten.GeoM, x, y float64) (float64, float64) {
	return m.Apply(x, y)
}

func TestModelTransform(t *testing.T) {
	m := render.ModelTransform(ecs.Vec3{X: 10, Y: 20}, ecs.Vec3{X: 4, Y: 6})

	x, y := apply(m, -1, -1)
	assert.InDelta(t, 10, x, 1e-9)
	assert.InDelta(t, 20, y, 1e-9)

	x, y = apply(m, 1, 1)
	assert.InDelta(t, 14, x, 1e-9)
	assert.InDelta(t, 26, y, 1e-9)

	x, y = apply(m, 0, 0)
	assert.InDelta(t, 12, x, 1e-9)
	assert.InDelta(t, 23, y, 1e-9)
}

func TestCameraViewProjection(t *testing.T) {
	cam := render.NewCamera(render.DefaultWidth, render.DefaultHeight)

	t.Run("origin maps to bottom-left", func(t *testing.T) {
		x, y := apply(cam.ViewProjection(), 0, 0)
		assert.InDelta(t, 0, x, 1e-9)
		assert.InDelta(t, 600, y, 1e-9)

		x, y = apply(cam.ViewProjection(), 800, 600)
		assert.InDelta(t, 800, x, 1e-9)
		assert.InDelta(t, 0, y, 1e-9)
	})

	t.Run("view translates by the negated position", func(t *testing.T) {
		cam.Position = ecs.Vec3{X: 100, Y: 50}
		x, y := apply(cam.ViewProjection(), 100, 50)
		assert.InDelta(t, 0, x, 1e-9)
		assert.InDelta(t, 600, y, 1e-9)
	})

	t.Run("center on", func(t *testing.T) {
		cam.CenterOn(ecs.Vec3{X: 500, Y: 500})
		x, y := apply(cam.ViewProjection(), 500, 500)
		assert.InDelta(t, 400, x, 1e-9)
		assert.InDelta(t, 300, y, 1e-9)
	})

	t.Run("pan", func(t *testing.T) {
		cam.Position = ecs.Vec3{}
		cam.MovementSpeed = 10
		cam.Pan(ecs.Vec3{X: 1, Y: -1}, 0.5)
		assert.Equal(t, ecs.Vec3{X: 5, Y: -5}, cam.Position)
	})
}

func TestRegistry(t *testing.T) {
	placeholder := &ebiten.Image{}
	reg := render.NewRegistry(placeholder)

	player := &ebiten.Image{}
	wall := &ebiten.Image{}

	hp := reg.Register("player", player)
	hw := reg.Register("wall", wall)
	assert.NotEqual(t, hp, hw)
	assert.NotZero(t, hp, "zero handle stays unassigned")
	assert.Equal(t, 2, reg.Len())

	got, err := reg.Lookup("player")
	require.NoError(t, err)
	assert.Equal(t, hp, got)

	img, ok := reg.Resolve(hw)
	require.True(t, ok)
	assert.Same(t, wall, img)

	_, err = reg.Lookup("ghost")
	assert.ErrorIs(t, err, render.ErrTextureNotFound)

	_, ok = reg.Resolve(99)
	assert.False(t, ok)
	assert.Same(t, placeholder, reg.Placeholder())

	t.Run("re-register keeps handle", func(t *testing.T) {
		replacement := &ebiten.Image{}
		h := reg.Register("player", replacement)
		assert.Equal(t, hp, h)
		img, _ := reg.Resolve(h)
		assert.Same(t, replacement, img)
		assert.Equal(t, 2, reg.Len())
		assert.Equal(t, map[string]ecs.TextureHandle{"player": hp, "wall": hw}, reg.Names())
	})
}

func TestParseColor(t *testing.T) {
	c, err := render.ParseColor("crimson")
	require.NoError(t, err)
	assert.Equal(t, uint8(0xdc), c.R)

	_, err = render.ParseColor("notacolour")
	assert.Error(t, err)
}

func TestScreenRendererErrors(t *testing.T) {
	r := render.NewScreenRenderer(nil)

	err := r.DrawQuad(ebiten.GeoM{}, ebiten.GeoM{}, &ebiten.Image{})
	assert.ErrorIs(t, err, render.ErrNoTarget)

	r.Begin(&ebiten.Image{})
	err = r.DrawQuad(ebiten.GeoM{}, ebiten.GeoM{}, nil)
	assert.ErrorIs(t, err, render.ErrNilTexture)
	assert.Zero(t, r.Draws())
}
