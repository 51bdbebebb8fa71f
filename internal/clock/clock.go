package clock

import (
	"sync"
	"time"
)

// Default periods.
const (
	DefaultRenderPeriod = 33 * time.Millisecond
	DefaultStepPeriod   = 750 * time.Millisecond
)

// Clock pairs the render and step triggers of one simulation. Start and
// Stop always act on both.
type Clock struct {
	mu     sync.Mutex
	Render *Trigger
	Step   *Trigger
}

// New creates a stopped clock with the given periods.
func New(render, step time.Duration) *Clock {
	return &Clock{
		Render: NewTrigger("render", render),
		Step:   NewTrigger("step", step),
	}
}

// Start arms both triggers and returns their generations.
func (c *Clock) Start() (renderGen, stepGen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Render.Start(), c.Step.Start()
}

// Stop disarms both triggers.
func (c *Clock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Render.Stop()
	c.Step.Stop()
}

// Running reports whether the step trigger is armed.
func (c *Clock) Running() bool {
	return c.Step.Running()
}
