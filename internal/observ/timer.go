// Package observ measures the phases of a run for --timings.
package observ

import (
	"fmt"
	"strings"
	"time"
)

// Phase names used by the driver.
const (
	PhaseLoad    = "load"
	PhaseLex     = "lex"
	PhaseResolve = "resolve"
	PhaseParse   = "parse"
)

// Phase records the duration of one named step.
type Phase struct {
	Name  string
	Dur   time.Duration
	Count int // сколько раз фаза выполнялась
	Note  string
}

// Timer accumulates phase durations. Repeated phases with the same name add
// up, so one Timer can cover many inputs. A Timer is not safe for concurrent
// use; give each goroutine its own and Merge them.
type Timer struct {
	phases []Phase
	index  map[string]int
}

// NewTimer creates a new empty Timer.
func NewTimer() *Timer {
	return &Timer{
		phases: make([]Phase, 0, 4),
		index:  make(map[string]int, 4),
	}
}

// Track starts phase name and returns the function that stops it.
// A nil Timer tracks nothing.
func (t *Timer) Track(name string) func() {
	if t == nil {
		return func() {}
	}
	start := time.Now()
	return func() { t.Add(name, time.Since(start)) }
}

// Add records d under name.
func (t *Timer) Add(name string, d time.Duration) {
	if t == nil {
		return
	}
	i, ok := t.index[name]
	if !ok {
		i = len(t.phases)
		t.phases = append(t.phases, Phase{Name: name})
		t.index[name] = i
	}
	t.phases[i].Dur += d
	t.phases[i].Count++
}

// Note attaches a note to an existing phase.
func (t *Timer) Note(name, note string) {
	if t == nil {
		return
	}
	if i, ok := t.index[name]; ok {
		t.phases[i].Note = note
	}
}

// Merge adds every phase of other into t, keeping t's order first.
func (t *Timer) Merge(other *Timer) {
	if t == nil || other == nil {
		return
	}
	for _, p := range other.phases {
		i, ok := t.index[p.Name]
		if !ok {
			i = len(t.phases)
			t.phases = append(t.phases, Phase{Name: p.Name, Note: p.Note})
			t.index[p.Name] = i
		}
		t.phases[i].Dur += p.Dur
		t.phases[i].Count += p.Count
	}
}

// Phases returns a copy of the recorded phases in first-seen order.
func (t *Timer) Phases() []Phase {
	if t == nil {
		return nil
	}
	return append([]Phase(nil), t.phases...)
}

// Summary returns a human-readable string summarizing all tracked phases.
func (t *Timer) Summary() string {
	report := t.Report()
	var sb strings.Builder
	sb.WriteString("timings:\n")
	for _, p := range report.Phases {
		fmt.Fprintf(&sb, "  %-10s %8.3f ms", p.Name, p.DurationMS)
		if p.Count > 1 {
			fmt.Fprintf(&sb, "  x%d", p.Count)
		}
		if p.Note != "" {
			sb.WriteString("  // " + p.Note)
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "  %-10s %8.3f ms\n", "total", report.TotalMS)
	return sb.String()
}

// PhaseReport представляет сжатую информацию о фазе таймера для сериализации.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Count      int     `json:"count"`
	Note       string  `json:"note,omitempty"`
}

// Report описывает агрегированные данные таймера.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
}

// Report формирует срез фаз и общую длительность в миллисекундах.
func (t *Timer) Report() Report {
	if t == nil || len(t.phases) == 0 {
		return Report{}
	}
	report := Report{
		Phases: make([]PhaseReport, len(t.phases)),
	}
	var total time.Duration
	for i, phase := range t.phases {
		total += phase.Dur
		report.Phases[i] = PhaseReport{
			Name:       phase.Name,
			DurationMS: durationToMillis(phase.Dur),
			Count:      phase.Count,
			Note:       phase.Note,
		}
	}
	report.TotalMS = durationToMillis(total)
	return report
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
