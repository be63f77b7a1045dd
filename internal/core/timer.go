// Package core holds driver-side plumbing shared by the app: pacing the
// automaton independently of the render frame rate.
package core

import "time"

// FixedStep decides when the simulation should advance so that generations
// tick at a steady rate regardless of how often the driver polls it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a pacer targeting the given generations per second.
func NewFixedStep(gps int) *FixedStep {
	if gps <= 0 {
		gps = 10
	}
	fs := &FixedStep{now: time.Now}
	fs.SetRate(gps)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the generation rate. It is safe to call from the main loop.
func (f *FixedStep) SetRate(gps int) {
	if gps <= 0 {
		gps = 10
	}
	f.step = time.Second / time.Duration(gps)
}

// ShouldStep reports whether one generation is due. Call it once per poll;
// time elapsed between polls accumulates toward the next step.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
