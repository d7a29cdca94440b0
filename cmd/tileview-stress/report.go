package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/tileview/world"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Interval time.Duration
	Width    uint32
	Height   uint32
	Seed     uint64

	// Results
	GenerationTime time.Duration
	TotalFrames    int64
	TotalTime      time.Duration
	UpdateTime     world.FrameStats
	Systems        []world.SystemStats
	FinalPlayer    string
	FinalCamera    string
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Tile View Stress Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Frame Interval:** {{if .Interval}}{{.Interval}}{{else}}uncapped{{end}}
- **Grid:** {{.Width}}x{{.Height}}
- **Seed:** {{.Seed}}

## Results
- **Grid Generation:** {{.GenerationTime}}
- **Total Frames:** {{.TotalFrames}}
- **Total Time:** {{.TotalTime}}
- **Frame Update Time:**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}
- **Final Player:** {{.FinalPlayer}}
- **Final Camera:** {{.FinalCamera}}

## Systems
{{range .Systems}}- {{.Name}}: avg {{.AvgDuration}}, max {{.MaxDuration}} over {{.ExecutionCount}} runs
{{end}}
## Memory Usage (MiB)
- Heap Alloc:  {{mb .MemStatsStart.HeapAlloc}} (start) -> {{mb .MemStatsEnd.HeapAlloc}} (end)
- Total Alloc: {{mb .MemStatsStart.TotalAlloc}} (start) -> {{mb .MemStatsEnd.TotalAlloc}} (end)
- Num GC:      {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
`

	fm := template.FuncMap{
		"mb": func(v uint64) string {
			return fmt.Sprintf("%.2f", float64(v)/1024/1024)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
