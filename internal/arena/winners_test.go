package arena

import (
	"testing"
	"time"

	rng "cell-arena/pkg/core"
)

func newRankedWorld(t *testing.T, n int) *World {
	t.Helper()
	cfg := DefaultConfig()
	w := NewWorld(&cfg, rng.NewRNG("ranking"))
	w.SetRoster(testRoster(n))
	w.Initialize(0)
	return w
}

func TestTimeLimitRanksBySizeThenLatestGrowth(t *testing.T) {
	w := newRankedWorld(t, 4)
	c := w.Cells()
	c[0].Radius = 20
	c[1].Radius = 30
	c[2].Radius = 30
	c[2].LastGrowAt = 500 * time.Millisecond
	c[3].Radius = 14

	if _, ended := CheckEnd(w, 2, time.Second, 999*time.Millisecond); ended {
		t.Fatal("run must not end before the limit")
	}
	res, ended := CheckEnd(w, 2, time.Second, time.Second)
	if !ended || res.Type != ResultTimeLimit {
		t.Fatalf("expected time_limit at the limit, got %+v (ended=%v)", res, ended)
	}
	if len(res.Winners) != 2 || res.Winners[0].ID != c[2].ID || res.Winners[1].ID != c[1].ID {
		t.Fatalf("unexpected ranking %+v", res.Winners)
	}
}

func TestRankingTiesKeepSpawnOrder(t *testing.T) {
	w := newRankedWorld(t, 3)
	ranked := rankBySize(w.Cells(), 3)
	for i, c := range ranked {
		if c.ID != i+1 {
			t.Fatalf("expected spawn order on full ties, got id %d at %d", c.ID, i)
		}
	}
}

func TestTargetReachedKeepsSpawnOrder(t *testing.T) {
	w := newRankedWorld(t, 4)
	c := w.Cells()
	c[0].Kill(2, 0)
	c[3].Kill(2, 0)
	c[2].Radius = 40

	res, ended := CheckEnd(w, 2, 0, time.Minute)
	if !ended || res.Type != ResultTargetReached {
		t.Fatalf("expected target_reached, got %+v", res)
	}
	if res.Winners[0].ID != c[1].ID || res.Winners[1].ID != c[2].ID {
		t.Fatalf("expected survivors in spawn order, got %+v", res.Winners)
	}
}

func TestAllDeadHasNoWinners(t *testing.T) {
	w := newRankedWorld(t, 2)
	for _, c := range w.Cells() {
		c.Kill(0, 0)
	}
	res, ended := CheckEnd(w, 1, 0, time.Second)
	if !ended || res.Type != ResultAllDead || len(res.Winners) != 0 {
		t.Fatalf("expected all_dead with no winners, got %+v", res)
	}
}

func TestNoLimitNeverEndsOnTime(t *testing.T) {
	w := newRankedWorld(t, 3)
	if _, ended := CheckEnd(w, 1, 0, time.Hour); ended {
		t.Fatal("a zero limit must never end the run on time")
	}
}
