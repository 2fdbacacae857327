// Package debugui provides immediate-mode debug windows for an ecs.Store using Dear ImGui.
// The Overlay runs as an ordinary system and defers every window's render function to
// the end of the frame, so a backend frame must be open while the scheduler runs.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/towerclimb/ecs"
)

// ImguiItem holds a Dear ImGui render function drawn every frame the overlay is shown.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks whether Dear ImGui is consuming mouse or keyboard input.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

type namedScheduler struct {
	name      string
	scheduler *ecs.Scheduler
}

// Overlay is the system drawing the debug windows.
type Overlay struct {
	Enabled    bool
	InputState ImguiInputState

	items      []ImguiItem
	browser    *EntityBrowser
	inspector  *ComponentInspector
	masks      *MaskViewer
	queries    *QueryDebugger
	perf       *PerformanceStats
	schedulers []namedScheduler
}

// NewOverlay creates the overlay with every built-in window.
func NewOverlay() *Overlay {
	return &Overlay{
		Enabled:   true,
		browser:   NewEntityBrowser(100),
		inspector: NewComponentInspector(),
		masks:     NewMaskViewer(),
		queries:   NewQueryDebugger(),
		perf:      NewPerformanceStats(120),
	}
}

// Add registers an extra window.
func (o *Overlay) Add(item ImguiItem) {
	o.items = append(o.items, item)
}

// WatchScheduler lists the scheduler's per-system timings in the performance window.
func (o *Overlay) WatchScheduler(name string, s *ecs.Scheduler) {
	o.schedulers = append(o.schedulers, namedScheduler{name: name, scheduler: s})
}

// Toggle shows or hides every window.
func (o *Overlay) Toggle() {
	o.Enabled = !o.Enabled
}

// Execute updates the input capture state and queues the windows for rendering.
func (o *Overlay) Execute(frame *ecs.UpdateFrame) error {
	io := imgui.CurrentIO()
	o.InputState.WantCaptureMouse = io.WantCaptureMouse()
	o.InputState.WantCaptureKeyboard = io.WantCaptureKeyboard()

	if !o.Enabled {
		return nil
	}

	store := frame.Store
	dt := frame.DeltaTime

	frame.Commands.Defer(func() { o.browser.Render(store) })
	frame.Commands.Defer(func() {
		selected, ok := o.browser.Selected()
		o.inspector.Render(store, selected, ok)
	})
	frame.Commands.Defer(func() {
		if mask, ok := o.masks.Render(store); ok {
			o.browser.FilterMask(mask)
		}
	})
	frame.Commands.Defer(func() { o.queries.Render(store) })
	frame.Commands.Defer(func() { o.perf.Render(store, dt, o.schedulers) })

	for _, item := range o.items {
		frame.Commands.Defer(item.Render)
	}
	return nil
}
