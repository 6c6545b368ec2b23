package core

import "time"

// FixedStep helps run game updates at a steady ticks-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	fs := &FixedStep{}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Step returns the duration of a single tick.
func (f *FixedStep) Step() time.Duration { return f.step }

// ShouldStep reports whether the game should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	return f.Advance(delta)
}

// Advance adds delta to the accumulator and reports whether a full tick is
// due. At most one tick is released per call so a stalled frame never
// triggers a burst of catch-up ticks.
func (f *FixedStep) Advance(delta time.Duration) bool {
	if delta > 0 {
		f.accumulator += delta
	}
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}

// FrameDivider releases one tick for every n frames it is advanced.
type FrameDivider struct {
	n     int
	frame int
}

// NewFrameDivider returns a divider ticking every n frames. Values below one
// tick on every frame.
func NewFrameDivider(n int) *FrameDivider {
	if n < 1 {
		n = 1
	}
	return &FrameDivider{n: n}
}

// Advance counts one frame and reports whether this frame is a tick frame.
func (d *FrameDivider) Advance() bool {
	d.frame++
	if d.frame >= d.n {
		d.frame = 0
		return true
	}
	return false
}

// Every returns the number of frames per tick.
func (d *FrameDivider) Every() int { return d.n }
