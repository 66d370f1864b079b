package arena

import (
	"math"
	"time"

	"cell-arena/internal/core"
	rng "cell-arena/pkg/core"
)

const (
	wallAvoidReach = 20
	peerAvoidReach = 30
	peerBlend      = 0.3
)

// Controller steers a single cell: it wanders toward a periodically redrawn
// heading, leans away from walls and nearby live cells, and adds a little
// jitter.
type Controller struct {
	cell *Cell
	rng  *rng.RNG
	ai   *AIParams
	b    bounds

	target     core.Vec2
	current    core.Vec2
	lastChange time.Duration
	nextDelay  time.Duration
}

// NewController binds a controller to cell for a world started at start. It
// consumes two RNG draws: the first turn delay, then the initial heading.
// The first Update at or after start always redraws the heading, whatever
// the absolute clock value.
func NewController(cell *Cell, r *rng.RNG, ai *AIParams, b bounds, start time.Duration) *Controller {
	c := &Controller{cell: cell, rng: r, ai: ai, b: b}
	c.nextDelay = c.randomDelay()
	c.target = c.randomDirection()
	c.current = c.target
	c.lastChange = start - c.nextDelay - 1
	return c
}

// Cell returns the controlled cell.
func (c *Controller) Cell() *Cell { return c.cell }

// Heading returns the direction chosen on the last update.
func (c *Controller) Heading() core.Vec2 { return c.current }

func (c *Controller) randomDelay() time.Duration {
	ms := c.rng.IntRange(int(c.ai.TurnMin/time.Millisecond), int(c.ai.TurnMax/time.Millisecond))
	return time.Duration(ms) * time.Millisecond
}

func (c *Controller) randomDirection() core.Vec2 {
	angle := c.rng.FloatRange(0, 2*math.Pi)
	return core.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
}

// Update recomputes the cell's velocity. Dead cells are skipped without
// touching the RNG.
func (c *Controller) Update(now time.Duration, cells []*Cell) {
	if !c.cell.Alive {
		return
	}
	c.updateDirection(now, cells)
	c.cell.Vel = c.current.Scale(c.cell.CurrentSpeed(now))
}

func (c *Controller) updateDirection(now time.Duration, cells []*Cell) {
	if now-c.lastChange > c.nextDelay {
		c.target = c.randomDirection()
		c.nextDelay = c.randomDelay()
		c.lastChange = now
	}

	dir := c.target
	if wall := c.wallAvoidance(); !wall.IsZero() {
		dir = dir.Lerp(wall, c.ai.WallBias)
	}
	if peer := c.peerAvoidance(cells); !peer.IsZero() {
		dir = dir.Lerp(peer, peerBlend)
	}
	dir = dir.Normalize()

	dir.X += (c.rng.Next() - 0.5) * c.ai.Jitter
	dir.Y += (c.rng.Next() - 0.5) * c.ai.Jitter
	c.current = dir.Normalize()
}

// wallAvoidance returns a push of ±1 per axis for every wall the cell is
// within radius+wallAvoidReach of.
func (c *Controller) wallAvoidance() core.Vec2 {
	reach := c.cell.Radius + wallAvoidReach
	p := c.cell.Pos
	var v core.Vec2
	if p.X < c.b.minX+reach {
		v.X = 1
	} else if p.X > c.b.maxX-reach {
		v.X = -1
	}
	if p.Y < c.b.minY+reach {
		v.Y = 1
	} else if p.Y > c.b.maxY-reach {
		v.Y = -1
	}
	return v
}

// peerAvoidance sums unit pushes away from live neighbours inside
// radius+peerAvoidReach, each weighted by how deep inside that ring the
// neighbour is, and returns the normalized sum.
func (c *Controller) peerAvoidance(cells []*Cell) core.Vec2 {
	reach := c.cell.Radius + peerAvoidReach
	var sum core.Vec2
	for _, other := range cells {
		if other == c.cell || !other.Alive {
			continue
		}
		d := c.cell.Pos.Sub(other.Pos)
		dist := d.Len()
		if dist >= reach || dist == 0 {
			continue
		}
		strength := (reach - dist) / reach
		sum = sum.Add(d.Scale(strength / dist))
	}
	return sum.Normalize()
}
