package ecs

import "fmt"

// Commands buffers slot allocation and release until the end of a frame,
// so that queries running inside systems see a stable mask table.
type Commands struct {
	allocs []allocCommand
	frees  []Entity
	defers []deferCommand
}

func newCommands() *Commands {
	return &Commands{}
}

type allocCommand struct {
	mask Mask
	init func(store *Store, e Entity)
}

type deferCommand struct {
	fn func()
}

// Defer queues a function to run after all systems of the frame.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, deferCommand{fn: fn})
}

// Allocate queues an allocation. init, if not nil, fills the new slot's components.
func (c *Commands) Allocate(mask Mask, init func(store *Store, e Entity)) {
	c.allocs = append(c.allocs, allocCommand{mask: mask, init: init})
}

// Free queues the release of a slot.
func (c *Commands) Free(e Entity) {
	c.frees = append(c.frees, e)
}

// Pending returns the number of queued commands.
func (c *Commands) Pending() int {
	return len(c.allocs) + len(c.frees) + len(c.defers)
}

// Flush applies frees, then allocations, then deferred functions, and resets the buffer.
// Running out of slots stops the flush and is returned; the buffer is still reset.
func (c *Commands) Flush(store *Store) error {
	defer c.reset()

	for _, e := range c.frees {
		store.Free(e)
	}

	for _, cmd := range c.allocs {
		e, err := store.Allocate(cmd.mask)
		if err != nil {
			return fmt.Errorf("flush commands: %w", err)
		}
		if cmd.init != nil {
			cmd.init(store, e)
		}
	}

	for _, df := range c.defers {
		df.fn()
	}

	return nil
}

func (c *Commands) reset() {
	c.allocs = c.allocs[:0]
	c.frees = c.frees[:0]
	c.defers = c.defers[:0]
}
