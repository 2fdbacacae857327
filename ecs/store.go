package ecs

import (
	"errors"
	"fmt"
)

// ErrCapacityExhausted is returned when every slot of a Store is occupied.
var ErrCapacityExhausted = errors.New("ecs: no more entities left")

// Store owns the mask table and every component table of a fixed number of slots.
// Index i of each table always belongs to slot i.
type Store struct {
	masks []Mask

	positions  *Table[Vec3]
	sizes      *Table[Vec3]
	velocities *Table[Velocity]
	sprites    *Table[Sprite]
	players    *Table[PlayerAttributes]
	jumpStates *Table[JumpState]
}

// NewStore creates a store with capacity slots, all free.
func NewStore(capacity int) *Store {
	if capacity <= 0 {
		panic("ecs: store capacity must be positive")
	}

	return &Store{
		masks:      make([]Mask, capacity),
		positions:  NewTable[Vec3](capacity),
		sizes:      NewTable[Vec3](capacity),
		velocities: NewTable[Velocity](capacity),
		sprites:    NewTable[Sprite](capacity),
		players:    NewTable[PlayerAttributes](capacity),
		jumpStates: NewTable[JumpState](capacity),
	}
}

// Allocate assigns mask to the lowest free slot and returns it.
// Allocating with MaskEmpty reports the first free slot without occupying it.
func (s *Store) Allocate(mask Mask) (Entity, error) {
	for idx, current := range s.masks {
		if current == MaskEmpty {
			s.masks[idx] = mask
			return Entity(idx), nil
		}
	}
	return 0, fmt.Errorf("allocate %s (capacity %d): %w", mask, len(s.masks), ErrCapacityExhausted)
}

// MustAllocate is like Allocate but panics when the store is full.
func (s *Store) MustAllocate(mask Mask) Entity {
	e, err := s.Allocate(mask)
	if err != nil {
		panic(err)
	}
	return e
}

// Free returns the slot to the allocator. Component values are left in place
// and must not be read until the slot is allocated again.
func (s *Store) Free(e Entity) {
	s.masks[e] = MaskEmpty
}

// Has reports whether every bit of mask is set for the slot.
func (s *Store) Has(e Entity, mask Mask) bool {
	return s.masks[e].Has(mask)
}

// Alive reports whether the slot is occupied.
func (s *Store) Alive(e Entity) bool {
	return e.Index() < len(s.masks) && s.masks[e] != MaskEmpty
}

// Mask returns the slot's current mask.
func (s *Store) Mask(e Entity) Mask {
	return s.masks[e]
}

// SetMask replaces the slot's mask. Bits that are newly set expose whatever
// the tables hold for that slot, so callers initialise those components first.
func (s *Store) SetMask(e Entity, mask Mask) {
	s.masks[e] = mask
}

// Cap returns the fixed number of slots.
func (s *Store) Cap() int {
	return len(s.masks)
}

// Len returns the number of occupied slots.
func (s *Store) Len() int {
	n := 0
	for _, m := range s.masks {
		if m != MaskEmpty {
			n++
		}
	}
	return n
}

// Reset frees every slot.
func (s *Store) Reset() {
	clear(s.masks)
}

func (s *Store) Position(e Entity) *Vec3 {
	return s.positions.Get(e.Index())
}

func (s *Store) Size(e Entity) *Vec3 {
	return s.sizes.Get(e.Index())
}

func (s *Store) Velocity(e Entity) *Velocity {
	return s.velocities.Get(e.Index())
}

func (s *Store) Sprite(e Entity) *Sprite {
	return s.sprites.Get(e.Index())
}

func (s *Store) PlayerAttributes(e Entity) *PlayerAttributes {
	return s.players.Get(e.Index())
}

func (s *Store) JumpState(e Entity) *JumpState {
	return s.jumpStates.Get(e.Index())
}

// Component returns a pointer to the slot's value for a single component kind,
// or nil if kind is not exactly one known bit or the slot does not carry it.
func (s *Store) Component(e Entity, kind Mask) any {
	if !s.masks[e].Has(kind) || kind == MaskEmpty {
		return nil
	}

	switch kind {
	case MaskPosition:
		return s.Position(e)
	case MaskSize:
		return s.Size(e)
	case MaskVelocity:
		return s.Velocity(e)
	case MaskSprite:
		return s.Sprite(e)
	case MaskPlayerAttributes:
		return s.PlayerAttributes(e)
	case MaskJumpState:
		return s.JumpState(e)
	}
	return nil
}

// StoreStats summarises slot occupancy.
type StoreStats struct {
	Capacity  int
	Occupied  int
	MaskUsage map[Mask]int
}

// CollectStats counts occupied slots and how many carry each distinct mask.
func (s *Store) CollectStats() StoreStats {
	stats := StoreStats{
		Capacity:  len(s.masks),
		MaskUsage: make(map[Mask]int),
	}
	for _, m := range s.masks {
		if m == MaskEmpty {
			continue
		}
		stats.Occupied++
		stats.MaskUsage[m]++
	}
	return stats
}
