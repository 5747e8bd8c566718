// Package stopwatch accumulates wall-clock time per named phase and
// renders the breakdown printed by verbose runs.
package stopwatch

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Stopwatch tracks how long named phases take. A phase may be started and
// stopped repeatedly; its durations accumulate. Phases are reported in the
// order they were first started.
type Stopwatch struct {
	now     func() time.Time
	started map[string]time.Time
	elapsed map[string]time.Duration
	order   []string
}

func New() *Stopwatch {
	return &Stopwatch{
		now:     time.Now,
		started: map[string]time.Time{},
		elapsed: map[string]time.Duration{},
	}
}

// Start begins timing the named phase. Starting an already running phase
// resets its starting point without touching the accumulated total.
func (s *Stopwatch) Start(label string) {
	if _, ok := s.elapsed[label]; !ok {
		s.elapsed[label] = 0
		s.order = append(s.order, label)
	}
	s.started[label] = s.now()
}

// Stop ends timing the named phase and returns its accumulated duration.
// Stopping a phase that isn't running returns the total so far unchanged.
func (s *Stopwatch) Stop(label string) time.Duration {
	if t0, ok := s.started[label]; ok {
		s.elapsed[label] += s.now().Sub(t0)
		delete(s.started, label)
	}
	return s.elapsed[label]
}

// Elapsed returns the accumulated duration of the named phase.
func (s *Stopwatch) Elapsed(label string) time.Duration {
	return s.elapsed[label]
}

// Lines renders one row per phase in first-start order, each of the form
// "- <label>: <duration> (<percent>%)", followed by an Other row holding
// whatever part of total no phase accounts for.
func (s *Stopwatch) Lines(total time.Duration) []string {
	var tracked time.Duration
	for _, d := range s.elapsed {
		tracked += d
	}
	lines := make([]string, 0, len(s.order)+1)
	for _, label := range s.order {
		lines = append(lines, line(label, s.elapsed[label], total))
	}
	return append(lines, line("Other", total-tracked, total))
}

func line(label string, d, total time.Duration) string {
	return fmt.Sprintf("- %s: %s (%s%%)", label, Format(d), percent(d, total))
}

func percent(d, total time.Duration) string {
	if total <= 0 {
		return "0.0"
	}
	return trim(100 * d.Seconds() / total.Seconds())
}

// Format renders a duration as seconds with up to two decimals when it is
// at least 100ms, and as whole milliseconds below that.
func Format(d time.Duration) string {
	if d >= 100*time.Millisecond {
		return trim(d.Seconds()) + "s"
	}
	return fmt.Sprintf("%dms", int(math.Round(d.Seconds()*1000)))
}

// trim formats a float with two decimals, then drops the second decimal
// when it is zero. 2.37 stays "2.37", 2.3 becomes "2.3", 2 becomes "2.0".
func trim(f float64) string {
	s := fmt.Sprintf("%.2f", f)
	if strings.HasSuffix(s, "0") {
		s = s[:len(s)-1]
	}
	return s
}
