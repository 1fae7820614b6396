package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/creeps/ecs"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Seed     uint64
	MaxMobs  int

	// Results
	Games          int
	Scores         Scores
	Spawned        int64
	Skipped        int64
	PeakMobs       int
	TotalUpdates   int64
	TotalTime      time.Duration
	UpdateTime     Stats
	Systems        []ecs.SystemStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// Scores summarises the final score of each finished game.
type Scores struct {
	Count int
	Min   int
	Max   int
	Total int
}

func (s *Scores) Add(score int) {
	if s.Count == 0 || score < s.Min {
		s.Min = score
	}
	if score > s.Max {
		s.Max = score
	}
	s.Count++
	s.Total += score
}

func (s Scores) Avg() float64 {
	if s.Count == 0 {
		return 0
	}
	return float64(s.Total) / float64(s.Count)
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Creeps Soak Report

## Configuration
- **Game Time:** {{.Duration}}
- **Seed:** {{.Seed}}
- **Mob Cap:** {{.MaxMobs}}

## Gameplay
- **Games Started:** {{.Games}}
- **Games Finished:** {{.Scores.Count}}
- **Score:** min {{.Scores.Min}} / max {{.Scores.Max}} / avg {{printf "%.2f" .Scores.Avg}}
- **Mobs Spawned:** {{.Spawned}} (skipped at cap: {{.Skipped}}, peak alive: {{.PeakMobs}})

## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Wall Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}
{{range .Systems}}
- {{.Name}}: avg {{.AvgDuration}}, max {{.MaxDuration}}{{end}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
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
		return fmt.Errorf("parse report: %w", err)
	}

	return tmpl.Execute(w, r)
}
