package arena

import (
	"slices"
	"time"
)

// ResultType says why a run ended.
type ResultType string

const (
	ResultAllDead       ResultType = "all_dead"
	ResultTargetReached ResultType = "target_reached"
	ResultTimeLimit     ResultType = "time_limit"
)

// Result is the final outcome of a run. Winners are copies taken at the
// moment the run ended.
type Result struct {
	Type    ResultType
	Winners []CellView
	EndedAt time.Duration
}

// CellView is a read-only copy of a cell for snapshots and reports.
type CellView struct {
	ID            int
	ParticipantID string
	Name          string
	Label         string
	X, Y          float64
	VX, VY        float64
	Radius        float64
	Alive         bool
	Speed         bool
	Shuriken      bool
	Invincible    bool
	LastGrowAt    time.Duration
	DeathTime     time.Duration
	KilledBy      int
	Kills         int
}

// View copies the cell's display state at now.
func (c *Cell) View(now time.Duration) CellView {
	return CellView{
		ID:            c.ID,
		ParticipantID: c.ParticipantID,
		Name:          c.Name,
		Label:         c.Label,
		X:             c.Pos.X,
		Y:             c.Pos.Y,
		VX:            c.Vel.X,
		VY:            c.Vel.Y,
		Radius:        c.Radius,
		Alive:         c.Alive,
		Speed:         c.HasSpeed(now),
		Shuriken:      c.HasShuriken(now),
		Invincible:    c.Invincible(now),
		LastGrowAt:    c.LastGrowAt,
		DeathTime:     c.DeathTime,
		KilledBy:      c.KilledBy,
		Kills:         c.Kills,
	}
}

// CheckEnd reports whether the run is over at now and, if so, its result.
// The survivor target is checked before the time limit.
func CheckEnd(w *World, target int, limit time.Duration, now time.Duration) (Result, bool) {
	if w.SurvivorCount() <= target || (limit > 0 && w.Elapsed(now) >= limit) {
		return Standings(w, target, now), true
	}
	return Result{}, false
}

// Standings ranks the world as if the run ended at now: no survivors is
// all_dead, at most target survivors all win in spawn order, otherwise the
// largest target survivors win.
func Standings(w *World, target int, now time.Duration) Result {
	survivors := liveCells(w.cells)
	switch {
	case len(survivors) == 0:
		return Result{Type: ResultAllDead, EndedAt: now}
	case len(survivors) <= target:
		return Result{Type: ResultTargetReached, Winners: views(survivors, now), EndedAt: now}
	}
	return Result{Type: ResultTimeLimit, Winners: views(rankBySize(survivors, target), now), EndedAt: now}
}

// rankBySize orders survivors by radius, largest first, breaking ties with
// the most recent growth, and keeps the first n. Equal keys keep spawn order.
func rankBySize(cells []*Cell, n int) []*Cell {
	ranked := slices.Clone(cells)
	slices.SortStableFunc(ranked, func(a, b *Cell) int {
		switch {
		case a.Radius > b.Radius:
			return -1
		case a.Radius < b.Radius:
			return 1
		case a.LastGrowAt > b.LastGrowAt:
			return -1
		case a.LastGrowAt < b.LastGrowAt:
			return 1
		}
		return 0
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

func liveCells(cells []*Cell) []*Cell {
	var out []*Cell
	for _, c := range cells {
		if c.Alive {
			out = append(out, c)
		}
	}
	return out
}

func views(cells []*Cell, now time.Duration) []CellView {
	out := make([]CellView, len(cells))
	for i, c := range cells {
		out[i] = c.View(now)
	}
	return out
}
