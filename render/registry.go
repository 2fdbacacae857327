package render

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kamstrup/intmap"
	"github.com/plus3/towerclimb/ecs"
	"golang.org/x/image/colornames"
)

var ErrTextureNotFound = errors.New("texture not found")

// Registry owns the textures referenced by Sprite handles. Names are resolved
// to handles once at setup; draws resolve handles.
type Registry struct {
	textures    *intmap.Map[ecs.TextureHandle, *ebiten.Image]
	names       map[string]ecs.TextureHandle
	next        ecs.TextureHandle
	placeholder *ebiten.Image
}

// NewRegistry creates a registry falling back to placeholder for unknown handles.
func NewRegistry(placeholder *ebiten.Image) *Registry {
	return &Registry{
		textures:    intmap.New[ecs.TextureHandle, *ebiten.Image](16),
		names:       make(map[string]ecs.TextureHandle),
		next:        1,
		placeholder: placeholder,
	}
}

// Register stores img under name and returns its handle. Registering an
// existing name replaces the image but keeps the handle.
func (r *Registry) Register(name string, img *ebiten.Image) ecs.TextureHandle {
	if h, ok := r.names[name]; ok {
		r.textures.Put(h, img)
		return h
	}

	h := r.next
	r.next++
	r.names[name] = h
	r.textures.Put(h, img)
	return h
}

// Lookup returns the handle registered for name.
func (r *Registry) Lookup(name string) (ecs.TextureHandle, error) {
	h, ok := r.names[name]
	if !ok {
		return 0, fmt.Errorf("lookup %q: %w", name, ErrTextureNotFound)
	}
	return h, nil
}

// Resolve returns the image behind h.
func (r *Registry) Resolve(h ecs.TextureHandle) (*ebiten.Image, bool) {
	return r.textures.Get(h)
}

// Placeholder is drawn in place of textures that cannot be resolved.
func (r *Registry) Placeholder() *ebiten.Image {
	return r.placeholder
}

// Len returns the number of registered textures.
func (r *Registry) Len() int {
	return r.textures.Len()
}

// Names returns the registered names with their handles.
func (r *Registry) Names() map[string]ecs.TextureHandle {
	out := make(map[string]ecs.TextureHandle, len(r.names))
	for name, h := range r.names {
		out[name] = h
	}
	return out
}

// SolidTexture creates a w×h texture filled with c.
func SolidTexture(w, h int, c color.Color) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.Fill(c)
	return img
}

// ParseColor resolves an SVG colour name such as "crimson".
func ParseColor(name string) (color.RGBA, error) {
	c, ok := colornames.Map[name]
	if !ok {
		return color.RGBA{}, fmt.Errorf("unknown colour %q", name)
	}
	return c, nil
}

// PlaceholderTexture builds the magenta and black checker drawn for missing textures.
func PlaceholderTexture() *ebiten.Image {
	const size = 8
	img := ebiten.NewImage(size, size)
	pix := make([]byte, 4*size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := colornames.Black
			if (x/(size/2)+y/(size/2))%2 == 0 {
				c = colornames.Magenta
			}
			i := 4 * (y*size + x)
			pix[i], pix[i+1], pix[i+2], pix[i+3] = c.R, c.G, c.B, c.A
		}
	}
	img.WritePixels(pix)
	return img
}
