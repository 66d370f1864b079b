package arena

import (
	"math"
	"time"
)

// KillMethod records how a kill happened.
type KillMethod string

const (
	MethodShuriken KillMethod = "shuriken"
	MethodSize     KillMethod = "size"
)

// absorbRate is the share of the loser's radius the winner of a size
// contest gains, floored, with a minimum of one.
const absorbRate = 0.3

// Outcome is the result of resolving one contact. It is one of Kill,
// MutualKill, ItemCollected or NoEffect.
type Outcome interface {
	outcome()
}

// Kill means Killer eliminated Victim.
type Kill struct {
	Killer *Cell
	Victim *Cell
	Method KillMethod
	Growth float64
}

// MutualKill means two shuriken-armed cells destroyed each other.
type MutualKill struct {
	A, B *Cell
}

// ItemCollected means Cell picked up Item. Revived is set when a revive item
// brought a dead cell back.
type ItemCollected struct {
	Cell    *Cell
	Item    *Item
	Revived *Cell
}

// NoEffect means the contact changed nothing.
type NoEffect struct{}

func (Kill) outcome()          {}
func (MutualKill) outcome()    {}
func (ItemCollected) outcome() {}
func (NoEffect) outcome()      {}

// ResolveCells applies the combat rules to two touching live cells and
// returns what happened. Invincibility trumps everything, then shuriken
// buffs, then size.
func ResolveCells(a, b *Cell, now time.Duration) Outcome {
	if a.Invincible(now) || b.Invincible(now) {
		return NoEffect{}
	}

	aArmed, bArmed := a.HasShuriken(now), b.HasShuriken(now)
	switch {
	case aArmed && !bArmed:
		return applyKill(a, b, MethodShuriken, 0, now)
	case bArmed && !aArmed:
		return applyKill(b, a, MethodShuriken, 0, now)
	case aArmed && bArmed:
		a.Kill(b.ID, now)
		b.Kill(a.ID, now)
		return MutualKill{A: a, B: b}
	}

	switch {
	case a.Radius > b.Radius:
		return applyKill(a, b, MethodSize, absorbGrowth(b.Radius), now)
	case b.Radius > a.Radius:
		return applyKill(b, a, MethodSize, absorbGrowth(a.Radius), now)
	}
	return NoEffect{}
}

func absorbGrowth(loserRadius float64) float64 {
	return math.Max(1, math.Floor(loserRadius*absorbRate))
}

func applyKill(killer, victim *Cell, method KillMethod, growth float64, now time.Duration) Kill {
	if growth > 0 {
		killer.Grow(growth, now)
	}
	victim.Kill(killer.ID, now)
	killer.Kills++
	return Kill{Killer: killer, Victim: victim, Method: method, Growth: growth}
}
