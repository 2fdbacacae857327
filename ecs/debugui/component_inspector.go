package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/towerclimb/ecs"
)

// ComponentInspector shows and edits the components of the selected slot.
// Edits write straight through the store's component pointers.
type ComponentInspector struct {
	cache *ReflectionCache
}

func NewComponentInspector() *ComponentInspector {
	return &ComponentInspector{cache: globalReflectionCache}
}

func (ci *ComponentInspector) Render(store *ecs.Store, selected ecs.Entity, ok bool) {
	if !imgui.BeginV("Component Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if !ok {
		imgui.Text("No entity selected")
		imgui.End()
		return
	}

	if !store.Alive(selected) {
		imgui.Text(fmt.Sprintf("Slot %s is free", selected))
		imgui.End()
		return
	}

	mask := store.Mask(selected)
	imgui.Text(fmt.Sprintf("Slot: %s", selected))
	imgui.Text(fmt.Sprintf("Mask: %s", mask))
	imgui.Separator()

	for _, kind := range mask.Kinds() {
		component := store.Component(selected, kind)
		if component == nil {
			continue
		}

		if imgui.TreeNodeStr(kind.String()) {
			ci.renderValue(kind.String(), reflect.ValueOf(component).Elem())
			imgui.TreePop()
		}
	}

	if imgui.Button("Free") {
		store.Free(selected)
	}

	imgui.End()
}

// renderValue draws an editor for an addressable value.
func (ci *ComponentInspector) renderValue(name string, val reflect.Value) {
	if !val.IsValid() {
		imgui.Text(fmt.Sprintf("%s: <invalid>", name))
		return
	}

	label := fmt.Sprintf("##%s", name)

	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(label, &v) {
			setInt(val, int64(v))
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := int32(val.Uint())
		imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(label, &v) {
			setUint(val, int64(v))
		}

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat(label, &v) {
			setFloat(val, float64(v))
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(name, &v) && val.CanSet() {
			val.SetBool(v)
		}

	case reflect.Struct:
		for _, field := range ci.cache.GetFields(val.Type()) {
			fieldVal := val.Field(field.Index)
			if field.IsStruct {
				if imgui.TreeNodeStr(field.Name) {
					ci.renderValue(field.Name, fieldVal)
					imgui.TreePop()
				}
				continue
			}
			ci.renderValue(name+"."+field.Name, fieldVal)
		}

	default:
		imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
	}
}

func setInt(val reflect.Value, v int64) bool {
	if !val.CanSet() || val.OverflowInt(v) {
		return false
	}
	val.SetInt(v)
	return true
}

func setUint(val reflect.Value, v int64) bool {
	if !val.CanSet() || v < 0 || val.OverflowUint(uint64(v)) {
		return false
	}
	val.SetUint(uint64(v))
	return true
}

func setFloat(val reflect.Value, v float64) bool {
	if !val.CanSet() {
		return false
	}
	val.SetFloat(v)
	return true
}
