package ecs

import "strconv"

// Entity is a slot index into the component tables of a Store.
// It has no existence beyond the mask stored at that index.
type Entity uint32

// Index returns the slot index as an int.
func (e Entity) Index() int {
	return int(e)
}

func (e Entity) String() string {
	return "#" + strconv.Itoa(int(e))
}
