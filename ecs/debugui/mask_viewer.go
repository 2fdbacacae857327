package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/towerclimb/ecs"
)

// MaskInfo summarizes the slots sharing one exact mask.
type MaskInfo struct {
	Mask           ecs.Mask
	ComponentNames []string
	EntityCount    int
	ComponentCount int
}

// MaskViewer groups occupied slots by mask, the slot store's analogue of archetypes.
type MaskViewer struct {
	rows          []MaskInfo
	sortColumn    int
	sortAscending bool
	selected      *ecs.Mask
}

func NewMaskViewer() *MaskViewer {
	return &MaskViewer{
		sortColumn:    3,
		sortAscending: false,
	}
}

// Render draws the window and reports the mask clicked this frame.
func (mv *MaskViewer) Render(store *ecs.Store) (ecs.Mask, bool) {
	if !imgui.BeginV("Mask Viewer", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return ecs.MaskEmpty, false
	}

	mv.refresh(store.CollectStats())

	maxEntityCount := 0
	for _, row := range mv.rows {
		if row.EntityCount > maxEntityCount {
			maxEntityCount = row.EntityCount
		}
	}

	var clicked ecs.Mask
	var ok bool

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("MaskTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Mask")
		imgui.TableSetupColumn("Components")
		imgui.TableSetupColumn("Comp Count")
		imgui.TableSetupColumn("Slots")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			mv.sortColumn = int(spec.ColumnIndex())
			mv.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			mv.sortRows()
			sortSpecs.SetSpecsDirty(false)
		}

		for _, row := range mv.rows {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := mv.selected != nil && *mv.selected == row.Mask
			if imgui.SelectableBoolV(fmt.Sprintf("0x%X", uint64(row.Mask)), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				mask := row.Mask
				mv.selected = &mask
				clicked, ok = mask, true
			}

			imgui.TableNextColumn()
			imgui.Text(strings.Join(row.ComponentNames, ", "))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", row.ComponentCount))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", row.EntityCount))

			if maxEntityCount > 0 {
				barWidth := float32(row.EntityCount) / float32(maxEntityCount) * 80.0
				imgui.SameLine()
				drawList := imgui.WindowDrawList()
				pos := imgui.CursorScreenPos()
				color := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))
				drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), color)
			}
		}

		imgui.EndTable()
	}

	imgui.End()
	return clicked, ok
}

func (mv *MaskViewer) refresh(stats ecs.StoreStats) {
	mv.rows = mv.rows[:0]
	for mask, count := range stats.MaskUsage {
		names := kindNames(mask)
		mv.rows = append(mv.rows, MaskInfo{
			Mask:           mask,
			ComponentNames: names,
			EntityCount:    count,
			ComponentCount: len(names),
		})
	}
	mv.sortRows()
}

func (mv *MaskViewer) sortRows() {
	sort.Slice(mv.rows, func(i, j int) bool {
		a, b := mv.rows[i], mv.rows[j]
		var less bool

		switch mv.sortColumn {
		case 0:
			less = a.Mask < b.Mask
		case 1:
			less = strings.Join(a.ComponentNames, ",") < strings.Join(b.ComponentNames, ",")
		case 2:
			less = a.ComponentCount < b.ComponentCount
		default:
			// Ties fall back to the mask so map iteration order never shows.
			if a.EntityCount == b.EntityCount {
				less = a.Mask < b.Mask
			} else {
				less = a.EntityCount < b.EntityCount
			}
		}

		if !mv.sortAscending {
			return !less
		}
		return less
	})
}
