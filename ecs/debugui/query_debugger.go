package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/towerclimb/ecs"
)

// QueryDebugger builds a mask from checkboxes and lists the slots it matches.
type QueryDebugger struct {
	selected map[ecs.Mask]bool
}

func NewQueryDebugger() *QueryDebugger {
	return &QueryDebugger{selected: make(map[ecs.Mask]bool)}
}

// Mask returns the mask built from the selected component kinds.
func (qd *QueryDebugger) Mask() ecs.Mask {
	mask := ecs.MaskEmpty
	for kind, on := range qd.selected {
		if on {
			mask = mask.With(kind)
		}
	}
	return mask
}

// Toggle flips one component kind in the query.
func (qd *QueryDebugger) Toggle(kind ecs.Mask) {
	if qd.selected[kind] {
		delete(qd.selected, kind)
		return
	}
	qd.selected[kind] = true
}

func (qd *QueryDebugger) Render(store *ecs.Store) {
	if !imgui.BeginV("Query Debugger", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text("Select Component Kinds:")
	imgui.Separator()

	if imgui.Button("Clear All") {
		qd.selected = make(map[ecs.Mask]bool)
	}

	for _, kind := range ecs.ComponentKinds {
		on := qd.selected[kind]
		if imgui.Checkbox(kind.String(), &on) {
			qd.Toggle(kind)
		}
	}

	imgui.Separator()

	mask := qd.Mask()
	if mask == ecs.MaskEmpty {
		imgui.Text("No component kinds selected")
		imgui.End()
		return
	}

	query := ecs.NewQuery(store, mask)
	imgui.Text(fmt.Sprintf("Query: %s", mask))
	imgui.Text(fmt.Sprintf("Matching Slots: %d", query.Count()))

	if imgui.TreeNodeStr("Slot Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("QuerySlotTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Slot")
			imgui.TableSetupColumn("Full Mask")
			imgui.TableHeadersRow()

			for e := range query.Iter() {
				imgui.TableNextRow()

				imgui.TableSetColumnIndex(0)
				imgui.Text(e.String())

				imgui.TableSetColumnIndex(1)
				imgui.Text(store.Mask(e).String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
