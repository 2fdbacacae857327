package ecs_test

import (
	"slices"
	"testing"

	"github.com/plus3/towerclimb/ecs"
	"github.com/stretchr/testify/assert"
)

func TestQuery(t *testing.T) {
	store := ecs.NewStore(6)

	position := store.MustAllocate(ecs.MaskPosition)
	movable := store.MustAllocate(ecs.MaskMovable)
	empty, _ := store.Allocate(ecs.MaskEmpty)
	player := store.MustAllocate(ecs.MaskPlayer)
	renderable := store.MustAllocate(ecs.MaskRenderable | ecs.MaskVelocity)

	assert.Equal(t, ecs.Entity(2), empty)
	assert.Equal(t, ecs.Entity(2), player, "empty allocation leaves the slot free")

	t.Run("filters by mask", func(t *testing.T) {
		small := ecs.NewStore(3)
		small.MustAllocate(ecs.MaskPosition)
		second := small.MustAllocate(ecs.MaskMovable)

		got := slices.Collect(small.Query(ecs.MaskMovable))
		assert.Equal(t, []ecs.Entity{second}, got)
	})

	t.Run("superset masks match in slot order", func(t *testing.T) {
		got := slices.Collect(store.Query(ecs.MaskMovable))
		assert.Equal(t, []ecs.Entity{movable, player, renderable}, got)

		got = slices.Collect(store.Query(ecs.MaskPosition))
		assert.Equal(t, []ecs.Entity{position, movable, player, renderable}, got)
	})

	t.Run("empty mask yields occupied slots only", func(t *testing.T) {
		got := slices.Collect(store.Query(ecs.MaskEmpty))
		assert.Len(t, got, store.Len())
	})

	t.Run("restartable", func(t *testing.T) {
		q := ecs.NewQuery(store, ecs.MaskPlayer)
		first := slices.Collect(q.Iter())
		second := slices.Collect(q.Iter())
		assert.Equal(t, first, second)
		assert.Equal(t, 1, q.Count())
	})

	t.Run("early break", func(t *testing.T) {
		count := 0
		for range store.Query(ecs.MaskPosition) {
			count++
			if count == 2 {
				break
			}
		}
		assert.Equal(t, 2, count)
	})

	t.Run("first", func(t *testing.T) {
		q := ecs.NewQuery(store, ecs.MaskRenderable)
		e, ok := q.First()
		assert.True(t, ok)
		assert.Equal(t, renderable, e)

		_, ok = ecs.NewQuery(store, ecs.MaskSize|ecs.MaskJumpState).First()
		assert.False(t, ok)
	})

	t.Run("freed slots disappear", func(t *testing.T) {
		store.Free(movable)
		got := slices.Collect(store.Query(ecs.MaskMovable))
		assert.Equal(t, []ecs.Entity{player, renderable}, got)
	})
}

func TestMask(t *testing.T) {
	m := ecs.MaskPosition.With(ecs.MaskVelocity)
	assert.Equal(t, ecs.MaskMovable, m)
	assert.True(t, m.Has(ecs.MaskPosition))
	assert.False(t, m.Has(ecs.MaskRenderable))
	assert.True(t, m.Any(ecs.MaskRenderable))
	assert.Equal(t, ecs.MaskPosition, m.Without(ecs.MaskVelocity))
	assert.Equal(t, 2, m.Count())

	assert.Equal(t, "Empty", ecs.MaskEmpty.String())
	assert.Equal(t, "Position|Velocity", m.String())
	assert.Equal(t, "Position|Velocity|PlayerAttributes|JumpState", ecs.MaskPlayer.String())
}

func TestJumpState(t *testing.T) {
	assert.True(t, ecs.Standing.IsStanding())
	assert.Equal(t, "Standing", ecs.Standing.String())

	s := ecs.Jumping(2)
	assert.False(t, s.IsStanding())
	assert.Equal(t, uint8(2), s.Count())
	assert.Equal(t, "Jumping(2)", s.String())
}
