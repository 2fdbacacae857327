package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/plus3/towerclimb/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3, 1, 2, 4}}
	s.Finalize()
	assert.Equal(t, time.Duration(1), s.Min)
	assert.Equal(t, time.Duration(4), s.Max)
	assert.Equal(t, time.Duration(2), s.Avg)
	assert.Equal(t, []time.Duration{3, 1, 2, 4}, s.Samples, "samples keep their order")
}

func TestReportGenerate(t *testing.T) {
	r := &Report{
		Capacity: 8,
		Stats: ecs.StoreStats{
			Capacity:  8,
			Occupied:  3,
			MaskUsage: map[ecs.Mask]int{ecs.MaskPosition: 1, ecs.MaskMovable: 2},
		},
		Systems: []ecs.SystemStats{{Name: "MovementSystem"}},
	}

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))
	out := buf.String()
	assert.Contains(t, out, "ECS Stress Test Report")
	assert.Contains(t, out, "Occupied:       3/8")
	assert.Contains(t, out, "MovementSystem")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("Position|Velocity")), bytes.Index(buf.Bytes(), []byte("- Position ")))
}
