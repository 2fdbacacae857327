package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/towerclimb/ecs"
)

// SlotInfo is one row of the entity browser.
type SlotInfo struct {
	Entity         ecs.Entity
	Mask           ecs.Mask
	ComponentNames []string
	ComponentCount int
}

// EntityBrowser lists occupied slots with filtering, sorting and paging.
type EntityBrowser struct {
	rows          []SlotInfo
	sortColumn    int
	sortAscending bool

	selected           ecs.Entity
	hasSelection       bool
	filterText         string
	filterMask         *ecs.Mask
	maxEntitiesPerPage int
	currentPage        int
}

func NewEntityBrowser(maxEntitiesPerPage int) *EntityBrowser {
	return &EntityBrowser{
		sortAscending:      true,
		maxEntitiesPerPage: maxEntitiesPerPage,
	}
}

// Selected returns the selected slot, if any.
func (eb *EntityBrowser) Selected() (ecs.Entity, bool) {
	return eb.selected, eb.hasSelection
}

// Select marks e as selected.
func (eb *EntityBrowser) Select(e ecs.Entity) {
	eb.selected = e
	eb.hasSelection = true
}

// FilterMask restricts the list to slots whose mask equals mask exactly.
func (eb *EntityBrowser) FilterMask(mask ecs.Mask) {
	eb.filterMask = &mask
	eb.currentPage = 0
}

func (eb *EntityBrowser) Render(store *ecs.Store) {
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	eb.refresh(store)

	imgui.InputTextWithHint("##search", "Search...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.filterText = ""
		eb.filterMask = nil
	}
	if eb.filterMask != nil {
		imgui.Text(fmt.Sprintf("Mask filter: %s", *eb.filterMask))
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Slot")
		imgui.TableSetupColumn("Mask")
		imgui.TableSetupColumn("Components")
		imgui.TableSetupColumn("Count")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			eb.sortColumn = int(spec.ColumnIndex())
			eb.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			eb.sortRows()
			sortSpecs.SetSpecsDirty(false)
		}

		rows := eb.filtered()
		start, end := eb.pageBounds(len(rows))

		for _, row := range rows[start:end] {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := eb.hasSelection && eb.selected == row.Entity
			if imgui.SelectableBoolV(row.Entity.String(), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.Select(row.Entity)
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("0x%X", uint64(row.Mask)))

			imgui.TableNextColumn()
			imgui.Text(strings.Join(row.ComponentNames, ", "))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", row.ComponentCount))
		}

		imgui.EndTable()
	}

	rows := eb.filtered()
	if len(rows) > eb.maxEntitiesPerPage {
		totalPages := (len(rows) + eb.maxEntitiesPerPage - 1) / eb.maxEntitiesPerPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d slots)", eb.currentPage+1, totalPages, len(rows)))
		imgui.SameLine()
		if imgui.Button("Prev") && eb.currentPage > 0 {
			eb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && eb.currentPage < totalPages-1 {
			eb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d of %d slots", len(rows), store.Cap()))
	}

	imgui.End()
}

// refresh rebuilds the rows from the mask table. Masks change without
// allocation or free, so there is nothing cheaper to compare against.
func (eb *EntityBrowser) refresh(store *ecs.Store) {
	eb.rows = eb.rows[:0]
	for e := range store.Query(ecs.MaskEmpty) {
		mask := store.Mask(e)
		names := kindNames(mask)
		eb.rows = append(eb.rows, SlotInfo{
			Entity:         e,
			Mask:           mask,
			ComponentNames: names,
			ComponentCount: len(names),
		})
	}

	if eb.hasSelection && !store.Alive(eb.selected) {
		eb.hasSelection = false
	}

	eb.sortRows()
}

func (eb *EntityBrowser) sortRows() {
	sort.SliceStable(eb.rows, func(i, j int) bool {
		a, b := eb.rows[i], eb.rows[j]
		var less bool

		switch eb.sortColumn {
		case 1:
			less = a.Mask < b.Mask
		case 2:
			less = strings.Join(a.ComponentNames, ",") < strings.Join(b.ComponentNames, ",")
		case 3:
			less = a.ComponentCount < b.ComponentCount
		default:
			less = a.Entity < b.Entity
		}

		if !eb.sortAscending {
			return !less
		}
		return less
	})
}

func (eb *EntityBrowser) filtered() []SlotInfo {
	if eb.filterText == "" && eb.filterMask == nil {
		return eb.rows
	}

	out := make([]SlotInfo, 0, len(eb.rows))
	filterLower := strings.ToLower(eb.filterText)

	for _, row := range eb.rows {
		if eb.filterMask != nil && row.Mask != *eb.filterMask {
			continue
		}

		if eb.filterText != "" {
			slot := row.Entity.String()
			maskStr := fmt.Sprintf("0x%x", uint64(row.Mask))
			names := strings.ToLower(strings.Join(row.ComponentNames, " "))

			if !strings.Contains(slot, filterLower) &&
				!strings.Contains(maskStr, filterLower) &&
				!strings.Contains(names, filterLower) {
				continue
			}
		}

		out = append(out, row)
	}

	return out
}

func (eb *EntityBrowser) pageBounds(n int) (int, int) {
	start := eb.currentPage * eb.maxEntitiesPerPage
	if start > n {
		eb.currentPage = 0
		start = 0
	}
	end := start + eb.maxEntitiesPerPage
	if end > n {
		end = n
	}
	return start, end
}

func kindNames(mask ecs.Mask) []string {
	kinds := mask.Kinds()
	names := make([]string, len(kinds))
	for i, kind := range kinds {
		names[i] = kind.String()
	}
	return names
}
