package ecs

const (
	tableBlockSize = 64
)

// Table is a fixed-capacity dense array of one component kind, indexed by slot.
// Values are stored in blocks so that every slot has a stable address for the
// lifetime of the table. Freed slots are not cleared.
type Table[T any] struct {
	blocks   [][tableBlockSize]T
	capacity int
}

// NewTable creates a table with room for exactly capacity slots.
func NewTable[T any](capacity int) *Table[T] {
	numBlocks := (capacity + tableBlockSize - 1) / tableBlockSize
	return &Table[T]{
		blocks:   make([][tableBlockSize]T, numBlocks),
		capacity: capacity,
	}
}

// Get returns a pointer to the value stored at the given slot.
func (t *Table[T]) Get(index int) *T {
	if index < 0 || index >= t.capacity {
		panic("ecs: table index out of range")
	}

	blockIdx := index / tableBlockSize
	slotIdx := index % tableBlockSize

	return &t.blocks[blockIdx][slotIdx]
}

// Set overwrites the value stored at the given slot.
func (t *Table[T]) Set(index int, value T) {
	*t.Get(index) = value
}

// Cap returns the number of slots in the table.
func (t *Table[T]) Cap() int {
	return t.capacity
}
