package arena

import (
	"fmt"
	"math"
	"time"

	"cell-arena/internal/core"
)

// Effects holds absolute expiry timestamps for timed buffs. Zero means the
// buff is inactive.
type Effects struct {
	SpeedUntil      time.Duration
	ShurikenUntil   time.Duration
	InvincibleUntil time.Duration
}

// Cell is one participant's agent. Cells are never removed from the world;
// a dead cell stays in place as a revivable record.
type Cell struct {
	ID            int
	ParticipantID string
	Name          string
	Label         string

	Pos    core.Vec2
	Vel    core.Vec2
	Radius float64
	Alive  bool

	Effects    Effects
	LastGrowAt time.Duration
	DeathTime  time.Duration
	KilledBy   int
	Kills      int

	params *Params
	bounds bounds
}

// bounds is the playable rectangle after the arena margin is removed.
type bounds struct {
	minX, minY float64
	maxX, maxY float64
}

func boundsFor(cfg Config) bounds {
	return bounds{
		minX: cfg.Margin,
		minY: cfg.Margin,
		maxX: float64(cfg.Width) - cfg.Margin,
		maxY: float64(cfg.Height) - cfg.Margin,
	}
}

// Label formats the display label for a participant.
func Label(p core.Participant) string {
	return fmt.Sprintf("%s (%s)", p.ID, p.Name)
}

func newCell(id int, p core.Participant, pos core.Vec2, cfg *Config) *Cell {
	return &Cell{
		ID:            id,
		ParticipantID: p.ID,
		Name:          p.Name,
		Label:         Label(p),
		Pos:           pos,
		Radius:        cfg.Params.InitialRadius,
		Alive:         true,
		params:        &cfg.Params,
		bounds:        boundsFor(*cfg),
	}
}

// Circle returns the cell's occupied disc.
func (c *Cell) Circle() core.Circle {
	return core.Circle{Center: c.Pos, R: c.Radius}
}

// ApplyEffect extends the buff of the given kind to until. Expiries only
// ever move forward.
func (c *Cell) ApplyEffect(kind ItemKind, until time.Duration) {
	switch kind {
	case ItemSpeed:
		c.Effects.SpeedUntil = max(c.Effects.SpeedUntil, until)
	case ItemShuriken:
		c.Effects.ShurikenUntil = max(c.Effects.ShurikenUntil, until)
	}
}

// Grow adds amount to the radius, capped at MaxRadius.
func (c *Cell) Grow(amount float64, now time.Duration) {
	c.Radius = math.Min(c.Radius+amount, c.params.MaxRadius)
	c.LastGrowAt = now
}

// Kill marks the cell dead. Position and radius are left as they were.
func (c *Cell) Kill(by int, now time.Duration) {
	c.Alive = false
	c.DeathTime = now
	c.KilledBy = by
}

// Revive brings the cell back at its initial radius with a short
// invincibility window.
func (c *Cell) Revive(now time.Duration) {
	c.Alive = true
	c.Radius = c.params.InitialRadius
	c.Vel = core.Vec2{}
	c.KilledBy = 0
	c.Effects = Effects{InvincibleUntil: now + c.params.ReviveInvincible}
}

// CurrentSpeed returns the per-tick speed given the buffs active at now.
func (c *Cell) CurrentSpeed(now time.Duration) float64 {
	if now < c.Effects.SpeedUntil {
		return c.params.BaseSpeed * c.params.SpeedMultiplier
	}
	return c.params.BaseSpeed
}

// HasShuriken reports whether the attack buff is active at now.
func (c *Cell) HasShuriken(now time.Duration) bool {
	return now < c.Effects.ShurikenUntil
}

// HasSpeed reports whether the speed buff is active at now.
func (c *Cell) HasSpeed(now time.Duration) bool {
	return now < c.Effects.SpeedUntil
}

// Invincible reports whether collisions are ignored for this cell at now.
func (c *Cell) Invincible(now time.Duration) bool {
	return now < c.Effects.InvincibleUntil
}

// UpdateEffects clears every expiry that has passed.
func (c *Cell) UpdateEffects(now time.Duration) {
	if c.Effects.SpeedUntil < now {
		c.Effects.SpeedUntil = 0
	}
	if c.Effects.ShurikenUntil < now {
		c.Effects.ShurikenUntil = 0
	}
	if c.Effects.InvincibleUntil < now {
		c.Effects.InvincibleUntil = 0
	}
}

// UpdatePosition moves the cell one tick along its velocity direction at the
// speed its current buffs allow. The stored velocity magnitude is ignored.
func (c *Cell) UpdatePosition(now time.Duration) {
	dir := c.Vel.Normalize()
	if dir.IsZero() {
		return
	}
	c.Pos = c.Pos.Add(dir.Scale(c.CurrentSpeed(now)))
}

// HandleWallCollision clamps the cell inside the arena and reflects the
// velocity on any axis that crossed a wall, halving it.
func (c *Cell) HandleWallCollision() {
	r := c.Radius
	b := c.bounds
	if c.Pos.X-r < b.minX {
		c.Pos.X = b.minX + r
		c.Vel.X = math.Abs(c.Vel.X) * 0.5
	} else if c.Pos.X+r > b.maxX {
		c.Pos.X = b.maxX - r
		c.Vel.X = -math.Abs(c.Vel.X) * 0.5
	}
	if c.Pos.Y-r < b.minY {
		c.Pos.Y = b.minY + r
		c.Vel.Y = math.Abs(c.Vel.Y) * 0.5
	} else if c.Pos.Y+r > b.maxY {
		c.Pos.Y = b.maxY - r
		c.Vel.Y = -math.Abs(c.Vel.Y) * 0.5
	}
}
