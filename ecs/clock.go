package ecs

import "time"

// Clock tracks the time since the previous frame and since start, in seconds.
// It is ticked once per frame before any system runs.
type Clock struct {
	DeltaTime   float32
	ProgramTime float32

	start time.Time
	last  time.Time
}

// NewClock starts a clock at now.
func NewClock(now time.Time) *Clock {
	return &Clock{
		start: now,
		last:  now,
	}
}

// Tick measures the wall-clock delta since the previous tick.
func (c *Clock) Tick(now time.Time) {
	c.DeltaTime = float32(now.Sub(c.last).Seconds())
	c.ProgramTime = float32(now.Sub(c.start).Seconds())
	c.last = now
}

// Advance steps the clock by a fixed delta without reading the wall clock.
func (c *Clock) Advance(dt float32) {
	c.DeltaTime = dt
	c.ProgramTime += dt
	c.last = c.last.Add(time.Duration(float64(dt) * float64(time.Second)))
}
