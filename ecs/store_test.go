package ecs_test

import (
	"testing"

	"github.com/plus3/towerclimb/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStorePanicsOnZeroCapacity(t *testing.T) {
	assert.Panics(t, func() { ecs.NewStore(0) })
	assert.Panics(t, func() { ecs.NewStore(-3) })
}

func TestAllocateMaskConsistency(t *testing.T) {
	store := ecs.NewStore(8)

	masks := []ecs.Mask{
		ecs.MaskPosition,
		ecs.MaskMovable,
		ecs.MaskRenderable,
		ecs.MaskPlayer | ecs.MaskSize | ecs.MaskSprite,
	}

	for _, mask := range masks {
		e, err := store.Allocate(mask)
		require.NoError(t, err)

		assert.True(t, store.Has(e, mask))
		for _, kind := range mask.Kinds() {
			assert.True(t, store.Has(e, kind), "slot %s missing %s", e, kind)
		}

		store.Free(e)
		for _, kind := range ecs.ComponentKinds {
			assert.False(t, store.Has(e, kind), "freed slot %s still has %s", e, kind)
		}
		assert.False(t, store.Has(e, mask))
		assert.Equal(t, ecs.MaskEmpty, store.Mask(e))
	}
}

func TestAllocateFirstFit(t *testing.T) {
	store := ecs.NewStore(4)

	for i := 0; i < 4; i++ {
		e, err := store.Allocate(ecs.MaskPosition)
		require.NoError(t, err)
		assert.Equal(t, ecs.Entity(i), e)
	}

	t.Run("reuses freed slot when otherwise full", func(t *testing.T) {
		store.Free(2)

		e, err := store.Allocate(ecs.MaskMovable)
		require.NoError(t, err)
		assert.Equal(t, ecs.Entity(2), e)
		assert.Equal(t, ecs.MaskMovable, store.Mask(e))
	})

	t.Run("lowest free index wins", func(t *testing.T) {
		store.Free(3)
		store.Free(1)

		e, err := store.Allocate(ecs.MaskSize)
		require.NoError(t, err)
		assert.Equal(t, ecs.Entity(1), e)
	})
}

func TestAllocateCapacityExhausted(t *testing.T) {
	store := ecs.NewStore(3)
	for i := 0; i < 3; i++ {
		store.MustAllocate(ecs.MaskPosition)
	}

	e, err := store.Allocate(ecs.MaskPosition)
	require.Error(t, err)
	assert.ErrorIs(t, err, ecs.ErrCapacityExhausted)
	assert.Equal(t, ecs.Entity(0), e)

	// A failed allocation must not touch existing slots.
	assert.Equal(t, 3, store.Len())
	for i := 0; i < 3; i++ {
		assert.Equal(t, ecs.MaskPosition, store.Mask(ecs.Entity(i)))
	}

	assert.PanicsWithError(t, err.Error(), func() {
		store.MustAllocate(ecs.MaskPosition)
	})

	t.Run("any mask", func(t *testing.T) {
		defer func() {
			recovered, ok := recover().(error)
			require.True(t, ok)
			assert.ErrorIs(t, recovered, ecs.ErrCapacityExhausted)
			assert.Contains(t, recovered.Error(), "Velocity")
		}()
		store.MustAllocate(ecs.MaskVelocity)
	})
}

func TestAllocateEmptyMaskDoesNotOccupy(t *testing.T) {
	store := ecs.NewStore(2)

	e, err := store.Allocate(ecs.MaskEmpty)
	require.NoError(t, err)
	assert.Equal(t, ecs.Entity(0), e)
	assert.False(t, store.Alive(e))

	again, err := store.Allocate(ecs.MaskPosition)
	require.NoError(t, err)
	assert.Equal(t, e, again)
}

func TestFreeKeepsComponentValues(t *testing.T) {
	store := ecs.NewStore(2)

	e := store.MustAllocate(ecs.MaskMovable)
	*store.Position(e) = ecs.Vec3{X: 4, Y: 5}
	store.Velocity(e).Velocity = ecs.Vec3{X: 1}

	store.Free(e)
	assert.False(t, store.Alive(e))

	// Lazy invalidation: the stale value is still in the table.
	assert.Equal(t, ecs.Vec3{X: 4, Y: 5}, *store.Position(e))

	reused := store.MustAllocate(ecs.MaskPosition)
	assert.Equal(t, e, reused)
	assert.Equal(t, ecs.Vec3{X: 4, Y: 5}, *store.Position(reused))
}

func TestStoreLenAndReset(t *testing.T) {
	store := ecs.NewStore(5)
	assert.Equal(t, 5, store.Cap())
	assert.Equal(t, 0, store.Len())

	store.MustAllocate(ecs.MaskPosition)
	store.MustAllocate(ecs.MaskPosition)
	e := store.MustAllocate(ecs.MaskRenderable)
	assert.Equal(t, 3, store.Len())

	store.Free(e)
	assert.Equal(t, 2, store.Len())

	store.Reset()
	assert.Equal(t, 0, store.Len())
	assert.Equal(t, 5, store.Cap())
}

func TestStoreComponent(t *testing.T) {
	store := ecs.NewStore(2)
	e := store.MustAllocate(ecs.MaskPosition | ecs.MaskJumpState)
	*store.JumpState(e) = ecs.Jumping(1)

	pos, ok := store.Component(e, ecs.MaskPosition).(*ecs.Vec3)
	require.True(t, ok)
	pos.X = 9
	assert.Equal(t, float32(9), store.Position(e).X)

	js, ok := store.Component(e, ecs.MaskJumpState).(*ecs.JumpState)
	require.True(t, ok)
	assert.Equal(t, ecs.Jumping(1), *js)

	assert.Nil(t, store.Component(e, ecs.MaskVelocity))
	assert.Nil(t, store.Component(e, ecs.MaskEmpty))
	assert.Nil(t, store.Component(e, ecs.MaskMovable))
}

func TestStoreCollectStats(t *testing.T) {
	store := ecs.NewStore(6)
	store.MustAllocate(ecs.MaskRenderable)
	store.MustAllocate(ecs.MaskRenderable)
	store.MustAllocate(ecs.MaskPlayer)

	stats := store.CollectStats()
	assert.Equal(t, 6, stats.Capacity)
	assert.Equal(t, 3, stats.Occupied)
	assert.Equal(t, map[ecs.Mask]int{
		ecs.MaskRenderable: 2,
		ecs.MaskPlayer:     1,
	}, stats.MaskUsage)
}

func TestTableSpansBlocks(t *testing.T) {
	table := ecs.NewTable[int](130)
	assert.Equal(t, 130, table.Cap())

	for i := 0; i < table.Cap(); i++ {
		table.Set(i, i*2)
	}
	assert.Equal(t, 0, *table.Get(0))
	assert.Equal(t, 128, *table.Get(64))
	assert.Equal(t, 258, *table.Get(129))

	assert.Panics(t, func() { table.Get(130) })
	assert.Panics(t, func() { table.Get(-1) })
}
