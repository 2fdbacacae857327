package ecs

import "strings"

// Mask is a bit field over the component kinds a slot carries.
// A component table entry is meaningful only while its bit is set in the slot's mask.
type Mask uint64

// MaskEmpty marks a free slot.
const MaskEmpty Mask = 0

const (
	MaskPosition Mask = 1 << iota
	MaskSize
	MaskVelocity
	MaskSprite
	MaskPlayerAttributes
	MaskJumpState
)

// Composite masks used by the built-in systems.
const (
	MaskMovable    = MaskPosition | MaskVelocity
	MaskRenderable = MaskPosition | MaskSize | MaskSprite
	MaskPlayer     = MaskPosition | MaskVelocity | MaskPlayerAttributes | MaskJumpState
)

// ComponentKinds lists every single-bit mask in table order.
var ComponentKinds = []Mask{
	MaskPosition,
	MaskSize,
	MaskVelocity,
	MaskSprite,
	MaskPlayerAttributes,
	MaskJumpState,
}

var kindNames = map[Mask]string{
	MaskPosition:         "Position",
	MaskSize:             "Size",
	MaskVelocity:         "Velocity",
	MaskSprite:           "Sprite",
	MaskPlayerAttributes: "PlayerAttributes",
	MaskJumpState:        "JumpState",
}

// Has reports whether every bit of sub is set in m.
func (m Mask) Has(sub Mask) bool {
	return m&sub == sub
}

// Any reports whether at least one bit of other is set in m.
func (m Mask) Any(other Mask) bool {
	return m&other != 0
}

// With returns m with the bits of other set.
func (m Mask) With(other Mask) Mask {
	return m | other
}

// Without returns m with the bits of other cleared.
func (m Mask) Without(other Mask) Mask {
	return m &^ other
}

// Kinds returns the single-bit component kinds set in m.
func (m Mask) Kinds() []Mask {
	kinds := make([]Mask, 0, len(ComponentKinds))
	for _, kind := range ComponentKinds {
		if m.Has(kind) {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}

// Count returns the number of known component kinds set in m.
func (m Mask) Count() int {
	return len(m.Kinds())
}

func (m Mask) String() string {
	if m == MaskEmpty {
		return "Empty"
	}

	names := make([]string, 0, len(ComponentKinds))
	for _, kind := range m.Kinds() {
		names = append(names, kindNames[kind])
	}
	return strings.Join(names, "|")
}
