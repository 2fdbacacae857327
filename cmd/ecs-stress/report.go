package main

import (
	"fmt"
	"io"
	"runtime"
	"sort"
	"text/template"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/plus3/towerclimb/ecs"
)

var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("229")).
	Background(lipgloss.Color("57")).
	Padding(0, 1)

type Report struct {
	// Configuration
	Duration time.Duration
	Capacity int
	Initial  int
	Churn    int

	// Results
	TotalUpdates   int64
	FailedFrames   int64
	TotalTime      time.Duration
	UpdateTime     Stats
	Allocated      int64
	Freed          int64
	Stats          ecs.StoreStats
	Systems        []ecs.SystemStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	P99     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	sorted := make([]time.Duration, len(s.Samples))
	copy(sorted, s.Samples)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var total time.Duration
	for _, sample := range sorted {
		total += sample
	}
	s.Min = sorted[0]
	s.Max = sorted[len(sorted)-1]
	s.Avg = total / time.Duration(len(sorted))
	s.P99 = sorted[(len(sorted)-1)*99/100]
}

type maskRow struct {
	Mask  ecs.Mask
	Count int
}

// MaskRows lists mask usage, most used first.
func (r *Report) MaskRows() []maskRow {
	rows := make([]maskRow, 0, len(r.Stats.MaskUsage))
	for m, n := range r.Stats.MaskUsage {
		rows = append(rows, maskRow{Mask: m, Count: n})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Mask < rows[j].Mask
	})
	return rows
}

const reportTemplate = `
## Configuration
- Run Duration:   {{.Duration}}
- Capacity:       {{.Capacity}}
- Initial Slots:  {{.Initial}}
- Churn / Frame:  {{.Churn}}

## Performance
- Total Updates:  {{.TotalUpdates}} ({{.FailedFrames}} failed)
- Total Time:     {{.TotalTime}}
- Frame Time:     avg {{.UpdateTime.Avg}}, min {{.UpdateTime.Min}}, p99 {{.UpdateTime.P99}}, max {{.UpdateTime.Max}}
{{range .Systems}}- {{printf "%-16s" .Name}} avg {{.AvgDuration}}, max {{.MaxDuration}}
{{end}}
## Slots
- Allocated:      {{.Allocated}}
- Freed:          {{.Freed}}
- Occupied:       {{.Stats.Occupied}}/{{.Stats.Capacity}}
{{range .MaskRows}}- {{printf "%-40s" .Mask.String}} {{.Count}}
{{end}}
## Memory Usage (MB)
- Heap Alloc:     {{mb .MemStatsStart.HeapAlloc}} (start) -> {{mb .MemStatsEnd.HeapAlloc}} (end)
- Total Alloc:    {{mb .MemStatsStart.TotalAlloc}} (start) -> {{mb .MemStatsEnd.TotalAlloc}} (end)
- Num GC:         {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pauses
- Total GC Pause: {{.MemStatsEnd.PauseTotalNs | ns}}
{{end}}`

func (r *Report) Generate(w io.Writer) error {
	fm := template.FuncMap{
		"mb": func(v uint64) string {
			return fmt.Sprintf("%.2f", float64(v)/1024/1024)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, headerStyle.Render("ECS Stress Test Report")); err != nil {
		return err
	}
	return tmpl.Execute(w, r)
}
