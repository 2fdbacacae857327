package ecs_test

import (
	"testing"

	"github.com/plus3/towerclimb/ecs"
)

func BenchmarkAllocateFree(b *testing.B) {
	store := ecs.NewStore(1024)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e := store.MustAllocate(ecs.MaskMovable)
		store.Free(e)
	}
}

func BenchmarkAllocateFullScan(b *testing.B) {
	store := ecs.NewStore(1024)
	for i := 0; i < store.Cap()-1; i++ {
		store.MustAllocate(ecs.MaskPosition)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e := store.MustAllocate(ecs.MaskPosition)
		store.Free(e)
	}
}

func BenchmarkQuery(b *testing.B) {
	store := ecs.NewStore(1024)
	for i := 0; i < store.Cap(); i++ {
		if i%2 == 0 {
			store.MustAllocate(ecs.MaskMovable)
		} else {
			store.MustAllocate(ecs.MaskRenderable)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for e := range store.Query(ecs.MaskMovable) {
			pos := store.Position(e)
			*pos = pos.Add(store.Velocity(e).Velocity)
		}
	}
}
