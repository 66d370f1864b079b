package core

import (
	"math"
	"sort"
	"time"
)

// Size describes the dimensions of the arena in pixels.
type Size struct {
	W int
	H int
}

// Vec2 is a 2D vector in arena coordinates.
type Vec2 struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

// Sub returns v-o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

// Scale returns v*s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{X: v.X * s, Y: v.Y * s} }

// Len returns the Euclidean length.
func (v Vec2) Len() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y) }

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Normalize returns the unit vector in the direction of v. The zero vector is
// returned unchanged.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Lerp moves v toward o by t.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{X: v.X*(1-t) + o.X*t, Y: v.Y*(1-t) + o.Y*t}
}

// Circle is an occupied disc used for overlap and spawn checks.
type Circle struct {
	Center Vec2
	R      float64
}

// Overlaps reports whether the two discs strictly intersect.
func (c Circle) Overlaps(o Circle) bool {
	return c.Center.Sub(o.Center).Len() < c.R+o.R
}

// RunState is the lifecycle state of a simulation run.
type RunState uint8

const (
	StateReady RunState = iota
	StateRunning
	StatePaused
	StateEnded
)

func (s RunState) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Participant is an entrant supplied by the caller when a run starts.
type Participant struct {
	ID   string
	Name string
}

// Sim is the contract a driver (GUI loop, headless runner) uses to control a
// simulation and the HUD uses to label it.
type Sim interface {
	Name() string
	Size() Size
	State() RunState
	Start(roster []Participant, target int, seed string)
	TogglePause()
	Restart()
	Stop()
	Update(now time.Duration)
	Clock() Clock
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation preset under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available presets.
func Sims() map[string]Factory {
	return sims
}

// SimNames returns the registered preset names in sorted order.
func SimNames() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
