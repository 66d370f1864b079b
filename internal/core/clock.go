package core

import (
	"sync"
	"time"
)

// Clock supplies virtual time as an offset from an arbitrary epoch. The
// simulation only ever compares and subtracts these values.
type Clock interface {
	Now() time.Duration
}

// WallClock reports monotonic real time elapsed since it was created.
type WallClock struct {
	origin time.Time
}

// NewWallClock starts a wall clock at zero.
func NewWallClock() *WallClock {
	return &WallClock{origin: time.Now()}
}

// Now returns real time elapsed since construction.
func (c *WallClock) Now() time.Duration {
	return time.Since(c.origin)
}

// ManualClock is a clock that only moves when told to. Headless runs and
// tests drive the simulation with it to get reproducible timestamps.
type ManualClock struct {
	mu  sync.RWMutex
	now time.Duration
}

// NewManualClock creates a manual clock at start.
func NewManualClock(start time.Duration) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current virtual time.
func (m *ManualClock) Now() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Set moves the clock to t.
func (m *ManualClock) Set(t time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

// Advance moves the clock forward by d and returns the new time.
func (m *ManualClock) Advance(d time.Duration) time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now += d
	return m.now
}

// PausableClock wraps a source clock and freezes while paused, so buffs and
// the time limit do not run down while a run is suspended.
type PausableClock struct {
	mu sync.RWMutex

	source      Clock
	paused      bool
	pausedAt    time.Duration
	totalPaused time.Duration
}

// NewPausableClock wraps source.
func NewPausableClock(source Clock) *PausableClock {
	return &PausableClock{source: source}
}

// Now returns source time minus all time spent paused.
func (p *PausableClock) Now() time.Duration {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.paused {
		return p.pausedAt - p.totalPaused
	}
	return p.source.Now() - p.totalPaused
}

// Pause freezes the clock. Pausing twice is a no-op.
func (p *PausableClock) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.paused {
		return
	}
	p.paused = true
	p.pausedAt = p.source.Now()
}

// Resume unfreezes the clock and accounts the pause duration.
func (p *PausableClock) Resume() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.paused {
		return
	}
	p.totalPaused += p.source.Now() - p.pausedAt
	p.paused = false
}

// IsPaused reports the pause state.
func (p *PausableClock) IsPaused() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.paused
}

// TotalPaused returns the cumulative pause duration, including an ongoing one.
func (p *PausableClock) TotalPaused() time.Duration {
	p.mu.RLock()
	defer p.mu.RUnlock()
	total := p.totalPaused
	if p.paused {
		total += p.source.Now() - p.pausedAt
	}
	return total
}
