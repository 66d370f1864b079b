package arena

import (
	"fmt"
	"time"

	rng "cell-arena/pkg/core"
)

// Systems runs the per-tick rules over a World: effect expiry, movement,
// contacts, item lifecycle and spawning. It also owns the event log.
type Systems struct {
	world *World
	rng   *rng.RNG
	cfg   *Config

	events      EventLog
	targetCount int
	lastSpawn   time.Duration
	itemSeq     int

	// OnOutcome, when set, observes every non-empty contact outcome.
	OnOutcome func(Outcome)
}

// NewSystems binds the rule systems to a world.
func NewSystems(w *World, r *rng.RNG, cfg *Config) *Systems {
	return &Systems{world: w, rng: r, cfg: cfg, targetCount: 1}
}

// SetTargetCount sets the survivor target, clamped to at least one.
func (s *Systems) SetTargetCount(n int) {
	s.targetCount = max(1, n)
}

// TargetCount returns the survivor target.
func (s *Systems) TargetCount() int { return s.targetCount }

// Reset clears per-run state. The first item spawns on the first update at
// or after now.
func (s *Systems) Reset(now time.Duration) {
	s.events.Clear()
	s.lastSpawn = now - s.cfg.Params.ItemSpawnInterval
	s.itemSeq = 0
}

// Events returns the event log, newest first.
func (s *Systems) Events() []Event { return s.events.Entries() }

// AddEvent records a log entry stamped at now.
func (s *Systems) AddEvent(e Event, now time.Duration) Event {
	e.At = now
	return s.events.Add(e)
}

// Update advances every rule system by one tick.
func (s *Systems) Update(now time.Duration) {
	s.updateEffects(now)
	s.updateMovement(now)
	s.updateCollisions(now)
	s.world.compactItems(now)
	s.spawnItems(now)
}

func (s *Systems) updateEffects(now time.Duration) {
	for _, c := range s.world.cells {
		c.UpdateEffects(now)
	}
}

func (s *Systems) updateMovement(now time.Duration) {
	for _, c := range s.world.cells {
		if !c.Alive {
			continue
		}
		c.UpdatePosition(now)
		c.HandleWallCollision()
	}
}

func (s *Systems) updateCollisions(now time.Duration) {
	cells := s.world.cells
	for i := 0; i < len(cells); i++ {
		for j := i + 1; j < len(cells); j++ {
			a, b := cells[i], cells[j]
			if !a.Alive || !b.Alive {
				continue
			}
			if !a.Circle().Overlaps(b.Circle()) {
				continue
			}
			s.record(ResolveCells(a, b, now), now)
		}
	}

	// Newest items first; a collected item is only marked so the slice
	// stays stable until compaction.
	items := s.world.items
	for _, c := range cells {
		if !c.Alive {
			continue
		}
		for i := len(items) - 1; i >= 0; i-- {
			it := items[i]
			if it.taken || !c.Circle().Overlaps(it.Circle()) {
				continue
			}
			it.taken = true
			s.record(s.collect(c, it, now), now)
		}
	}
}

func (s *Systems) collect(c *Cell, it *Item, now time.Duration) ItemCollected {
	p := s.cfg.Params
	out := ItemCollected{Cell: c, Item: it}
	switch it.Kind {
	case ItemSpeed:
		c.ApplyEffect(ItemSpeed, now+p.SpeedDuration)
	case ItemShuriken:
		c.ApplyEffect(ItemShuriken, now+p.ShurikenDuration)
	case ItemRevive:
		out.Revived = s.revive(now)
	}
	return out
}

// revive brings back a random dead cell at a fresh safe position. It returns
// nil, leaving the RNG untouched, when nobody is dead.
func (s *Systems) revive(now time.Duration) *Cell {
	dead := s.world.deadCells()
	chosen, ok := rng.Pick(s.rng, dead)
	if !ok {
		return nil
	}
	pos := FindSafeSpawn(s.world.liveCircles(), s.cfg.Params.InitialRadius, s.rng, *s.cfg)
	chosen.Revive(now)
	chosen.Pos = pos
	return chosen
}

func (s *Systems) spawnItems(now time.Duration) {
	p := s.cfg.Params
	if now-s.lastSpawn < p.ItemSpawnInterval {
		return
	}
	kinds, weights := p.ItemWeights.Table()
	kind := rng.WeightedPick(s.rng, kinds, weights)
	pos := FindSafeSpawn(s.world.occupiedCircles(), p.ItemRadius, s.rng, *s.cfg)

	s.itemSeq++
	s.world.items = append(s.world.items, &Item{
		ID:        fmt.Sprintf("item_%d", s.itemSeq),
		Kind:      kind,
		Pos:       pos,
		Radius:    p.ItemRadius,
		SpawnTime: now,
		ExpiresAt: now + p.ItemLifetime,
	})
	s.lastSpawn = now
}

// record turns an outcome into a log entry.
func (s *Systems) record(o Outcome, now time.Duration) {
	switch v := o.(type) {
	case Kill:
		e := Event{
			Kind:     EventKill,
			ActorID:  v.Killer.ID,
			TargetID: v.Victim.ID,
			Method:   string(v.Method),
			Value:    v.Growth,
		}
		e.Message = fmt.Sprintf("%s ▶ %s (%s)", v.Killer.Label, v.Victim.Label, v.Method)
		s.AddEvent(e, now)
	case MutualKill:
		s.AddEvent(Event{
			Kind:     EventKill,
			Message:  fmt.Sprintf("%s ↔ %s (mutual shuriken)", v.A.Label, v.B.Label),
			ActorID:  v.A.ID,
			TargetID: v.B.ID,
			Method:   "mutual",
		}, now)
	case ItemCollected:
		switch v.Item.Kind {
		case ItemSpeed:
			s.AddEvent(Event{
				Kind:    EventItem,
				Message: fmt.Sprintf("%s picked up: speed boost", v.Cell.Label),
				ActorID: v.Cell.ID,
				Method:  string(ItemSpeed),
				Value:   s.cfg.Params.SpeedDuration.Seconds(),
			}, now)
		case ItemShuriken:
			s.AddEvent(Event{
				Kind:    EventItem,
				Message: fmt.Sprintf("%s picked up: shuriken", v.Cell.Label),
				ActorID: v.Cell.ID,
				Method:  string(ItemShuriken),
				Value:   s.cfg.Params.ShurikenDuration.Seconds(),
			}, now)
		case ItemRevive:
			if v.Revived != nil {
				s.AddEvent(Event{
					Kind:     EventRevive,
					Message:  fmt.Sprintf("revived: %s", v.Revived.Label),
					ActorID:  v.Cell.ID,
					TargetID: v.Revived.ID,
					Method:   string(ItemRevive),
				}, now)
			}
		}
	case NoEffect:
		return
	}
	if s.OnOutcome != nil {
		s.OnOutcome(o)
	}
}
