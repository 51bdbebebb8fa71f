package clock

import "time"

// Ramp shortens the step interval as points are scored.
type Ramp struct {
	Initial   time.Duration
	Decrement time.Duration
	Floor     time.Duration
	Every     int // apply a decrement when the score is a multiple of Every
}

// DefaultRamp returns the classic ramp: 750ms, minus 50ms every 4 points,
// never below 50ms.
func DefaultRamp() Ramp {
	return Ramp{
		Initial:   DefaultStepPeriod,
		Decrement: 50 * time.Millisecond,
		Floor:     50 * time.Millisecond,
		Every:     4,
	}
}

// Enabled reports whether the ramp ever changes the interval.
func (r Ramp) Enabled() bool {
	return r.Every > 0 && r.Decrement > 0
}

// Next returns the interval after the score reached points.
func (r Ramp) Next(current time.Duration, points int) time.Duration {
	if !r.Enabled() || points <= 0 || points%r.Every != 0 {
		return current
	}
	if current <= r.Floor {
		return current
	}
	return max(current-r.Decrement, r.Floor)
}

// At returns the interval after points consecutive meals from the start.
func (r Ramp) At(points int) time.Duration {
	d := r.Initial
	if !r.Enabled() {
		return d
	}
	for p := 1; p <= points; p++ {
		d = r.Next(d, p)
		if d <= r.Floor {
			break
		}
	}
	return d
}
