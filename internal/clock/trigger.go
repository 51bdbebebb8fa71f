// Package clock provides the two periodic triggers that drive a simulation
// (a fast render trigger and a slower step trigger) and the step-interval
// ramp applied as the score grows.
//
// Triggers do not own goroutines. A host schedules ticks with whatever timer
// it has (tea.Tick in the terminal host) and tags each tick with the
// generation returned by Start; Fire rejects ticks scheduled before the most
// recent Start or Stop, so a stopped trigger never fires late.
package clock

import (
	"sync"
	"time"
)

// Trigger is a named, restartable periodic trigger.
type Trigger struct {
	mu      sync.Mutex
	name    string
	period  time.Duration
	running bool
	gen     uint64
}

// NewTrigger creates a stopped trigger.
func NewTrigger(name string, period time.Duration) *Trigger {
	return &Trigger{name: name, period: period}
}

// Name returns the trigger name.
func (t *Trigger) Name() string {
	return t.name
}

// Start arms the trigger and returns the generation ticks must carry.
func (t *Trigger) Start() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.gen++
	t.running = true
	return t.gen
}

// Stop disarms the trigger. Ticks already in flight are invalidated.
func (t *Trigger) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.running {
		return
	}
	t.gen++
	t.running = false
}

// Running reports whether the trigger is armed.
func (t *Trigger) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// Generation returns the current generation.
func (t *Trigger) Generation() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.gen
}

// Period returns the firing period.
func (t *Trigger) Period() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.period
}

// SetPeriod changes the period. It takes effect from the next scheduled tick.
func (t *Trigger) SetPeriod(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.period = d
}

// Fire reports whether a tick tagged with gen should be delivered.
func (t *Trigger) Fire(gen uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running && gen == t.gen
}
