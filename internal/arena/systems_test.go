package arena

import (
	"testing"
	"time"

	"cell-arena/internal/core"
	rng "cell-arena/pkg/core"
)

// newTestSystems builds a two-cell world with cells pinned far apart and
// no velocity, so only the rules under test touch them. The spawn timer is
// moved to zero so no item appears before 1.5s.
func newTestSystems(t *testing.T) (*World, *Systems) {
	t.Helper()
	cfg := DefaultConfig()
	r := rng.NewRNG("systems")
	w := NewWorld(&cfg, r)
	w.SetRoster(testRoster(2))
	w.Initialize(0)
	w.cells[0].Pos = core.Vec2{X: 100, Y: 100}
	w.cells[1].Pos = core.Vec2{X: 900, Y: 500}
	s := NewSystems(w, r, &cfg)
	s.Reset(0)
	s.lastSpawn = 0
	return w, s
}

func TestFirstItemSpawnsOnFirstUpdate(t *testing.T) {
	for _, start := range []time.Duration{0, 10 * time.Second} {
		cfg := DefaultConfig()
		r := rng.NewRNG("systems")
		w := NewWorld(&cfg, r)
		w.SetRoster(testRoster(2))
		w.Initialize(start)
		s := NewSystems(w, r, &cfg)
		s.Reset(start)

		s.Update(start + 20*time.Millisecond)
		if len(w.Items()) != 1 || w.Items()[0].ID != "item_1" {
			t.Fatalf("start %v: expected item_1 on the first update, got %d items", start, len(w.Items()))
		}
		s.Update(start + time.Second)
		if len(w.Items()) != 1 {
			t.Fatalf("start %v: expected the next spawn to wait a full interval, got %d items", start, len(w.Items()))
		}
	}
}

func TestItemSpawnsAfterInterval(t *testing.T) {
	w, s := newTestSystems(t)

	s.Update(1400 * time.Millisecond)
	if len(w.Items()) != 0 {
		t.Fatalf("expected no item before the spawn interval, got %d", len(w.Items()))
	}

	s.Update(1500 * time.Millisecond)
	items := w.Items()
	if len(items) != 1 {
		t.Fatalf("expected one item, got %d", len(items))
	}
	it := items[0]
	if it.ID != "item_1" {
		t.Fatalf("unexpected item id %q", it.ID)
	}
	if it.ExpiresAt != 1500*time.Millisecond+w.cfg.Params.ItemLifetime {
		t.Fatalf("unexpected expiry %v", it.ExpiresAt)
	}

	s.Update(2000 * time.Millisecond)
	if len(w.Items()) != 1 {
		t.Fatalf("expected interval to restart from the last spawn, got %d items", len(w.Items()))
	}
}

func TestExpiredItemsRemoved(t *testing.T) {
	w, s := newTestSystems(t)
	w.items = append(w.items, &Item{ID: "old", Kind: ItemSpeed, Pos: core.Vec2{X: 500, Y: 300}, Radius: 10, ExpiresAt: time.Second})

	s.Update(time.Second)
	if len(w.Items()) != 1 {
		t.Fatal("item must survive until strictly past its expiry")
	}
	s.Update(time.Second + time.Millisecond)
	if len(w.Items()) != 0 {
		t.Fatalf("expected expired item removed, got %d", len(w.Items()))
	}
}

func TestCollectSpeedItem(t *testing.T) {
	w, s := newTestSystems(t)
	c := w.cells[0]
	w.items = append(w.items, &Item{ID: "boost", Kind: ItemSpeed, Pos: c.Pos, Radius: 10, ExpiresAt: 10 * time.Second})

	now := time.Second
	s.Update(now)
	if c.Effects.SpeedUntil != now+w.cfg.Params.SpeedDuration {
		t.Fatalf("expected speed until %v, got %v", now+w.cfg.Params.SpeedDuration, c.Effects.SpeedUntil)
	}
	if len(w.Items()) != 0 {
		t.Fatal("expected collected item removed")
	}
	events := s.Events()
	if len(events) != 1 || events[0].Kind != EventItem || events[0].ActorID != c.ID {
		t.Fatalf("expected one item event for cell %d, got %+v", c.ID, events)
	}
}

func TestReviveItemBringsBackDeadCell(t *testing.T) {
	w, s := newTestSystems(t)
	collector, dead := w.cells[0], w.cells[1]
	dead.Kill(collector.ID, 500*time.Millisecond)
	w.items = append(w.items, &Item{ID: "life", Kind: ItemRevive, Pos: collector.Pos, Radius: 10, ExpiresAt: 10 * time.Second})

	now := time.Second
	s.Update(now)
	if !dead.Alive {
		t.Fatal("expected dead cell revived")
	}
	if !dead.Invincible(now) {
		t.Fatal("expected revived cell to be invincible")
	}
	events := s.Events()
	if len(events) != 1 || events[0].Kind != EventRevive || events[0].TargetID != dead.ID {
		t.Fatalf("expected revive event, got %+v", events)
	}
}

func TestReviveWithNobodyDeadIsConsumed(t *testing.T) {
	w, s := newTestSystems(t)
	collector := w.cells[0]
	w.items = append(w.items, &Item{ID: "life", Kind: ItemRevive, Pos: collector.Pos, Radius: 10, ExpiresAt: 10 * time.Second})

	before := *s.rng
	s.Update(time.Second)
	if len(w.Items()) != 0 {
		t.Fatal("expected revive item consumed")
	}
	if len(s.Events()) != 0 {
		t.Fatalf("expected no events, got %+v", s.Events())
	}
	if *s.rng != before {
		t.Fatal("a revive with nobody dead must not draw from the RNG")
	}
}

func TestOverlappingCellsFight(t *testing.T) {
	w, s := newTestSystems(t)
	big, small := w.cells[0], w.cells[1]
	big.Radius = 30
	small.Pos = core.Vec2{X: 110, Y: 100}

	var seen []Outcome
	s.OnOutcome = func(o Outcome) { seen = append(seen, o) }
	s.Update(time.Second)

	if small.Alive {
		t.Fatal("expected smaller overlapping cell to die")
	}
	if len(seen) != 1 {
		t.Fatalf("expected one observed outcome, got %d", len(seen))
	}
	if k, ok := seen[0].(Kill); !ok || k.Killer != big {
		t.Fatalf("expected kill by the larger cell, got %#v", seen[0])
	}
}

func TestSeparatedCellsDoNotFight(t *testing.T) {
	w, s := newTestSystems(t)
	w.cells[0].Radius = 30
	s.Update(time.Second)
	if !w.cells[1].Alive {
		t.Fatal("cells that do not overlap must not interact")
	}
}
