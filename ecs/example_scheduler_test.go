package ecs_test

import (
	"context"
	"fmt"
	"time"

	"github.com/plus3/towerclimb/ecs"
)

type GravitySystem struct {
	Pull float32
}

func (s *GravitySystem) Execute(frame *ecs.UpdateFrame) error {
	for e := range frame.Store.Query(ecs.MaskMovable) {
		frame.Store.Velocity(e).Velocity.Y -= s.Pull * frame.DeltaTime
	}
	return nil
}

type StepSystem struct{}

func (s *StepSystem) Execute(frame *ecs.UpdateFrame) error {
	for e := range frame.Store.Query(ecs.MaskMovable) {
		pos := frame.Store.Position(e)
		*pos = pos.Add(frame.Store.Velocity(e).Velocity.Scale(frame.DeltaTime))
	}
	return nil
}

// ExampleScheduler builds a fixed-step loop. Systems run in registration
// order and read the frame delta from the shared clock.
func ExampleScheduler() {
	store := ecs.NewStore(4)

	ball := store.MustAllocate(ecs.MaskMovable)
	store.Velocity(ball).Velocity = ecs.Vec3{X: 2, Y: 4}

	clock := ecs.NewClock(time.Now())
	scheduler := ecs.NewScheduler(store, clock)
	scheduler.Register(&GravitySystem{Pull: 2})
	scheduler.Register(&StepSystem{})

	for i := 0; i < 2; i++ {
		clock.Advance(1)
		if err := scheduler.Once(); err != nil {
			fmt.Println(err)
		}
		fmt.Println(store.Position(ball))
	}

	// Output:
	// (2.00, 2.00, 0.00)
	// (4.00, 2.00, 0.00)
}

// ExampleScheduler_Run runs the loop on a ticker until the context ends.
func ExampleScheduler_Run() {
	store := ecs.NewStore(1)
	store.MustAllocate(ecs.MaskMovable)

	scheduler := ecs.NewScheduler(store, ecs.NewClock(time.Now()))
	scheduler.Register(&StepSystem{})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := scheduler.Run(ctx, 10*time.Millisecond); err != nil {
		fmt.Println(err)
	}

	fmt.Println("Scheduler stopped")
	// Output:
	// Scheduler stopped
}

// ExampleStore_Query lists every slot matching a mask in slot order.
func ExampleStore_Query() {
	store := ecs.NewStore(4)
	store.MustAllocate(ecs.MaskPosition)
	store.MustAllocate(ecs.MaskMovable)
	store.MustAllocate(ecs.MaskRenderable)

	for e := range store.Query(ecs.MaskPosition) {
		fmt.Println(e, store.Mask(e))
	}

	// Output:
	// #0 Position
	// #1 Position|Velocity
	// #2 Position|Size|Sprite
}
