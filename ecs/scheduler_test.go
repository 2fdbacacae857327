package ecs_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/plus3/towerclimb/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type driftSystem struct {
	ExecuteCount int
}

func (s *driftSystem) Execute(frame *ecs.UpdateFrame) error {
	s.ExecuteCount++
	for e := range frame.Store.Query(ecs.MaskMovable) {
		vel := frame.Store.Velocity(e)
		pos := frame.Store.Position(e)
		*pos = pos.Add(vel.Velocity.Scale(frame.DeltaTime))
	}
	return nil
}

type recordSystem struct {
	name  string
	order *[]string
	err   error
}

func (s *recordSystem) Execute(frame *ecs.UpdateFrame) error {
	*s.order = append(*s.order, s.name)
	return s.err
}

func TestScheduler(t *testing.T) {
	t.Run("systems run in registration order", func(t *testing.T) {
		store := ecs.NewStore(4)
		scheduler := ecs.NewScheduler(store, ecs.NewClock(time.Now()))

		var order []string
		scheduler.Register(&recordSystem{name: "input", order: &order})
		scheduler.Register(&recordSystem{name: "movement", order: &order})
		scheduler.Register(&recordSystem{name: "render", order: &order})

		require.NoError(t, scheduler.Once())
		require.NoError(t, scheduler.Once())

		assert.Equal(t, []string{
			"input", "movement", "render",
			"input", "movement", "render",
		}, order)
	})

	t.Run("frame uses clock delta", func(t *testing.T) {
		store := ecs.NewStore(2)
		e := store.MustAllocate(ecs.MaskMovable)
		store.Velocity(e).Velocity = ecs.Vec3{X: 10, Y: 4}

		clock := ecs.NewClock(time.Now())
		scheduler := ecs.NewScheduler(store, clock)
		drift := &driftSystem{}
		scheduler.Register(drift)

		clock.Advance(0.5)
		require.NoError(t, scheduler.Once())

		assert.Equal(t, 1, drift.ExecuteCount)
		assert.Equal(t, ecs.Vec3{X: 5, Y: 2}, *store.Position(e))
		assert.InDelta(t, 0.5, clock.ProgramTime, 1e-6)
	})

	t.Run("system error stops the frame", func(t *testing.T) {
		store := ecs.NewStore(2)
		scheduler := ecs.NewScheduler(store, ecs.NewClock(time.Now()))

		boom := errors.New("boom")
		var order []string
		scheduler.Register(&recordSystem{name: "first", order: &order})
		scheduler.Register(ecs.SystemFunc(func(frame *ecs.UpdateFrame) error {
			frame.Commands.Allocate(ecs.MaskPosition, nil)
			return boom
		}))
		scheduler.Register(&recordSystem{name: "never", order: &order})

		err := scheduler.Once()
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "SystemFunc")
		assert.Equal(t, []string{"first"}, order)
		assert.Equal(t, 0, store.Len(), "queued commands of a failed frame are dropped")
	})

	t.Run("stats", func(t *testing.T) {
		store := ecs.NewStore(2)
		scheduler := ecs.NewScheduler(store, ecs.NewClock(time.Now()))
		scheduler.Register(&driftSystem{})

		for i := 0; i < 3; i++ {
			require.NoError(t, scheduler.Once())
		}

		stats := scheduler.GetStats()
		assert.Equal(t, 1, stats.SystemCount)
		assert.Equal(t, int64(3), stats.TotalExecutions)
		require.Len(t, stats.Systems, 1)
		assert.Equal(t, "driftSystem", stats.Systems[0].Name)
		assert.Equal(t, int64(3), stats.Systems[0].ExecutionCount)
		assert.LessOrEqual(t, stats.Systems[0].MinDuration, stats.Systems[0].MaxDuration)
	})

	t.Run("run until context done", func(t *testing.T) {
		store := ecs.NewStore(2)
		scheduler := ecs.NewScheduler(store, ecs.NewClock(time.Now()))
		drift := &driftSystem{}
		scheduler.Register(drift)

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
		defer cancel()

		require.NoError(t, scheduler.Run(ctx, 5*time.Millisecond))
		assert.Greater(t, drift.ExecuteCount, 0)
		assert.Greater(t, scheduler.Clock().ProgramTime, float32(0))
	})

	t.Run("run returns frame error", func(t *testing.T) {
		store := ecs.NewStore(2)
		scheduler := ecs.NewScheduler(store, ecs.NewClock(time.Now()))
		boom := errors.New("boom")
		scheduler.Register(ecs.SystemFunc(func(*ecs.UpdateFrame) error { return boom }))

		err := scheduler.Run(context.Background(), time.Millisecond)
		assert.ErrorIs(t, err, boom)
	})
}

func TestClock(t *testing.T) {
	start := time.Unix(100, 0)
	clock := ecs.NewClock(start)
	assert.Zero(t, clock.DeltaTime)
	assert.Zero(t, clock.ProgramTime)

	clock.Tick(start.Add(250 * time.Millisecond))
	assert.InDelta(t, 0.25, clock.DeltaTime, 1e-6)
	assert.InDelta(t, 0.25, clock.ProgramTime, 1e-6)

	clock.Tick(start.Add(1 * time.Second))
	assert.InDelta(t, 0.75, clock.DeltaTime, 1e-6)
	assert.InDelta(t, 1.0, clock.ProgramTime, 1e-6)

	clock.Advance(0.5)
	assert.InDelta(t, 0.5, clock.DeltaTime, 1e-6)
	assert.InDelta(t, 1.5, clock.ProgramTime, 1e-6)

	// Ticks after Advance measure from the advanced instant.
	clock.Tick(start.Add(1750 * time.Millisecond))
	assert.InDelta(t, 0.25, clock.DeltaTime, 1e-5)
}
