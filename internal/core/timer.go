package core

import "time"

// FrameGate enforces a frame-rate cap on simulation updates. Ticks that arrive
// sooner than one frame interval after the last accepted tick are dropped;
// nothing is queued and nothing catches up.
type FrameGate struct {
	interval time.Duration
	last     time.Duration
	primed   bool
}

// NewFrameGate constructs a gate capped at fps. A cap of zero or less
// disables gating.
func NewFrameGate(fps int) *FrameGate {
	g := &FrameGate{}
	g.SetCap(fps)
	return g
}

// SetCap changes the frame-rate cap. It is safe to call from the main loop.
func (g *FrameGate) SetCap(fps int) {
	if fps <= 0 {
		g.interval = 0
		return
	}
	g.interval = time.Second / time.Duration(fps)
}

// Interval returns the minimum spacing between accepted ticks.
func (g *FrameGate) Interval() time.Duration { return g.interval }

// Reset makes the next Allow call prime the gate at its timestamp.
func (g *FrameGate) Reset() {
	g.primed = false
	g.last = 0
}

// Prime records now as the last accepted tick without accepting one.
func (g *FrameGate) Prime(now time.Duration) {
	g.last = now
	g.primed = true
}

// Allow reports whether a tick at now should run and records it if so.
func (g *FrameGate) Allow(now time.Duration) bool {
	if !g.primed {
		g.Prime(now)
		if g.interval > 0 {
			return false
		}
		return true
	}
	if g.interval > 0 && now-g.last < g.interval {
		return false
	}
	g.last = now
	return true
}
