package ecs

import "iter"

// Query iterates the occupied slots of a store whose mask contains all required bits.
// It holds no result set; every call to Iter rescans the mask table in slot order.
type Query struct {
	store *Store
	mask  Mask
}

// NewQuery binds a query for mask to storage.
func NewQuery(storage *Store, mask Mask) Query {
	return Query{store: storage, mask: mask}
}

// Mask returns the required mask.
func (q Query) Mask() Mask {
	return q.mask
}

// Iter yields matching slots in ascending index order.
// The order is stable as long as no slot is allocated or freed during iteration.
func (q Query) Iter() iter.Seq[Entity] {
	return q.store.Query(q.mask)
}

// Count returns the number of matching slots.
func (q Query) Count() int {
	n := 0
	for range q.Iter() {
		n++
	}
	return n
}

// First returns the lowest matching slot.
func (q Query) First() (Entity, bool) {
	for e := range q.Iter() {
		return e, true
	}
	return 0, false
}

// Query yields occupied slots whose mask contains mask, in ascending index order.
// A slot may carry more components than requested.
func (s *Store) Query(mask Mask) iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for idx, current := range s.masks {
			if current == MaskEmpty || !current.Has(mask) {
				continue
			}
			if !yield(Entity(idx)) {
				return
			}
		}
	}
}
