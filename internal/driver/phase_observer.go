package driver

import (
	"time"

	"sillyfmt/internal/observ"
)

// PhaseEvent reports that a phase finished for one input.
type PhaseEvent struct {
	Path    string
	Name    string
	Elapsed time.Duration
}

// PhaseObserver receives phase events. ParseFiles calls it from worker
// goroutines, so it must be safe for concurrent use.
type PhaseObserver func(PhaseEvent)

// phases records into a per-call timer and forwards to the observer.
type phases struct {
	path     string
	timer    *observ.Timer
	observer PhaseObserver
}

func newPhases(path string, opts Options) *phases {
	return &phases{path: path, timer: observ.NewTimer(), observer: opts.Observer}
}

func (p *phases) track(name string) func() {
	start := time.Now()
	return func() {
		elapsed := time.Since(start)
		p.timer.Add(name, elapsed)
		if p.observer != nil {
			p.observer(PhaseEvent{Path: p.path, Name: name, Elapsed: elapsed})
		}
	}
}
