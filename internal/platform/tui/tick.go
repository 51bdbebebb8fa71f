// Package tui provides the Bubble Tea host for the snake simulation.
// It owns the render and step triggers, maps keys to actions, draws the
// simulation surface into a terminal cell grid and shows modal notices.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tile-snake/internal/clock"
)

// renderTickMsg asks for a redraw. gen ties it to a trigger start.
type renderTickMsg struct {
	gen uint64
	at  time.Time
}

// stepTickMsg asks for one simulation step.
type stepTickMsg struct {
	gen uint64
	at  time.Time
}

// renderTick schedules the next render tick for trigger generation gen.
func renderTick(t *clock.Trigger, gen uint64) tea.Cmd {
	return tea.Tick(t.Period(), func(at time.Time) tea.Msg {
		return renderTickMsg{gen: gen, at: at}
	})
}

// stepTick schedules the next step tick for trigger generation gen.
func stepTick(t *clock.Trigger, gen uint64) tea.Cmd {
	return tea.Tick(t.Period(), func(at time.Time) tea.Msg {
		return stepTickMsg{gen: gen, at: at}
	})
}

// startClock arms both triggers and schedules their first ticks.
func startClock(c *clock.Clock) tea.Cmd {
	rg, sg := c.Start()
	return tea.Batch(renderTick(c.Render, rg), stepTick(c.Step, sg))
}
