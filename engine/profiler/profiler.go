// package profiler provides lightweight frame statistics for a view loop:
// frames per second plus per-interval rates for named events such as point
// projections or matrix recomputes. Output goes to the standard logger.
package profiler

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"time"
)

// Profiler tracks frame rate and named event counts for a view session.
// Call Tick once per frame and Count whenever an interesting event happens;
// stats are logged once per update interval.
type Profiler struct {
	frameCount     int
	events         map[string]int
	lastTime       time.Time
	updateInterval time.Duration
}

// NewProfiler creates a Profiler logging once per second.
//
// Returns:
//   - *Profiler: the newly created profiler
func NewProfiler() *Profiler {
	return &Profiler{
		events:         map[string]int{},
		lastTime:       time.Now(),
		updateInterval: time.Second,
	}
}

// SetUpdateInterval changes how often stats are logged.
//
// Parameters:
//   - interval: time between log lines
func (p *Profiler) SetUpdateInterval(interval time.Duration) {
	p.updateInterval = interval
}

// Count records one occurrence of a named event, e.g. "project" or
// "recompute".
//
// Parameters:
//   - name: the event name
func (p *Profiler) Count(name string) {
	p.events[name]++
}

// Tick should be called once per frame. When the update interval has
// elapsed it logs FPS and per-second event rates and resets the counters.
//
// Returns:
//   - bool: true if stats were logged this tick
func (p *Profiler) Tick() bool {
	p.frameCount++
	now := time.Now()
	elapsed := now.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	secs := elapsed.Seconds()
	names := make([]string, 0, len(p.events))
	for name := range p.events {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	for _, name := range names {
		fmt.Fprintf(&sb, " | %s/s: %.1f", name, float64(p.events[name])/secs)
	}
	log.Printf("[Profiler] FPS: %.2f%s", float64(p.frameCount)/secs, sb.String())

	p.frameCount = 0
	p.events = map[string]int{}
	p.lastTime = now
	return true
}
