// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/towerclimb/ecs"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
// Call BeginFrame before the scheduler running the overlay and EndFrame after it.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// NewImguiBackend creates the backend and its window. imgui.ini is not written.
func NewImguiBackend(title string, width, height int) *ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return &ImguiBackend{EbitenBackend: backend}
}

// Target supplies the image the overlay is drawn onto.
type Target interface {
	Target() *ebiten.Image
}

// DrawSystem draws the finished ImGui frame on top of the target.
// Register it after every system that draws the scene.
type DrawSystem struct {
	Backend *ImguiBackend
	Target  Target
}

func (s *DrawSystem) Execute(frame *ecs.UpdateFrame) error {
	if screen := s.Target.Target(); screen != nil {
		s.Backend.Draw(screen)
	}
	return nil
}
