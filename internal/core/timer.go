package core

import "time"

// FixedStep paces a loop at a steady ticks-per-second rate.
type FixedStep struct {
	step time.Duration
	last time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	fs := &FixedStep{}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Step returns the interval between ticks.
func (f *FixedStep) Step() time.Duration { return f.step }

// Wait blocks until one step has elapsed since the previous call. The first
// call returns immediately.
func (f *FixedStep) Wait() {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
		return
	}
	next := f.last.Add(f.step)
	if d := next.Sub(now); d > 0 {
		time.Sleep(d)
		now = next
	}
	f.last = now
}
