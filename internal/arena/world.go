package arena

import (
	"time"

	"cell-arena/internal/core"
	rng "cell-arena/pkg/core"
)

// World owns the cells, items and their controllers. Cell order is spawn
// order and doubles as the tie-break order everywhere.
type World struct {
	cfg *Config
	rng *rng.RNG

	roster      []core.Participant
	cells       []*Cell
	items       []*Item
	controllers []*Controller
	startTime   time.Duration
}

// NewWorld constructs an empty world.
func NewWorld(cfg *Config, r *rng.RNG) *World {
	return &World{cfg: cfg, rng: r}
}

// SetRoster records the participants the next Initialize spawns.
func (w *World) SetRoster(roster []core.Participant) {
	w.roster = append([]core.Participant(nil), roster...)
}

// Initialize clears the arena and spawns one cell per participant.
func (w *World) Initialize(now time.Duration) {
	w.cells = w.cells[:0]
	w.items = w.items[:0]
	w.controllers = w.controllers[:0]
	w.startTime = now

	b := boundsFor(*w.cfg)
	for i, p := range w.roster {
		pos := FindSafeSpawn(w.liveCircles(), w.cfg.Params.InitialRadius, w.rng, *w.cfg)
		cell := newCell(i+1, p, pos, w.cfg)
		w.cells = append(w.cells, cell)
		w.controllers = append(w.controllers, NewController(cell, w.rng, &w.cfg.Params.AI, b, now))
	}
}

// Update runs every controller once, in spawn order.
func (w *World) Update(now time.Duration) {
	for _, c := range w.controllers {
		c.Update(now, w.cells)
	}
}

// Cells returns the live slice of cells; callers must not modify it.
func (w *World) Cells() []*Cell { return w.cells }

// Items returns the live slice of items; callers must not modify it.
func (w *World) Items() []*Item { return w.items }

// Controllers returns the per-cell controllers in spawn order.
func (w *World) Controllers() []*Controller { return w.controllers }

// StartTime returns the virtual time the world was initialized at.
func (w *World) StartTime() time.Duration { return w.startTime }

// SurvivorCount returns the number of live cells.
func (w *World) SurvivorCount() int {
	n := 0
	for _, c := range w.cells {
		if c.Alive {
			n++
		}
	}
	return n
}

// Elapsed returns the run time at now.
func (w *World) Elapsed(now time.Duration) time.Duration {
	return now - w.startTime
}

// Remaining returns the time left before the limit, or -1 when unlimited.
func (w *World) Remaining(now time.Duration) time.Duration {
	limit := w.cfg.Params.TimeLimit
	if limit <= 0 {
		return -1
	}
	return max(0, limit-w.Elapsed(now))
}

// liveCircles lists the discs of live cells.
func (w *World) liveCircles() []core.Circle {
	out := make([]core.Circle, 0, len(w.cells))
	for _, c := range w.cells {
		if c.Alive {
			out = append(out, c.Circle())
		}
	}
	return out
}

// occupiedCircles lists live cells and every item, used for item placement.
func (w *World) occupiedCircles() []core.Circle {
	out := w.liveCircles()
	for _, it := range w.items {
		out = append(out, it.Circle())
	}
	return out
}

// deadCells lists dead cells in spawn order.
func (w *World) deadCells() []*Cell {
	var out []*Cell
	for _, c := range w.cells {
		if !c.Alive {
			out = append(out, c)
		}
	}
	return out
}

// compactItems drops collected and expired items while keeping order.
func (w *World) compactItems(now time.Duration) {
	kept := w.items[:0]
	for _, it := range w.items {
		if it.taken || it.Expired(now) {
			continue
		}
		kept = append(kept, it)
	}
	for i := len(kept); i < len(w.items); i++ {
		w.items[i] = nil
	}
	w.items = kept
}
