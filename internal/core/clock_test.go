package core

import (
	"testing"
	"time"
)

func TestManualClockAdvance(t *testing.T) {
	c := NewManualClock(5 * time.Second)
	if got := c.Advance(250 * time.Millisecond); got != 5250*time.Millisecond {
		t.Fatalf("Advance returned %v", got)
	}
	c.Set(time.Second)
	if c.Now() != time.Second {
		t.Fatalf("Set did not move clock, now=%v", c.Now())
	}
}

func TestPausableClockFreezesWhilePaused(t *testing.T) {
	src := NewManualClock(0)
	pc := NewPausableClock(src)

	src.Advance(time.Second)
	if pc.Now() != time.Second {
		t.Fatalf("expected 1s before pause, got %v", pc.Now())
	}

	pc.Pause()
	pc.Pause()
	src.Advance(3 * time.Second)
	if pc.Now() != time.Second {
		t.Fatalf("clock advanced while paused: %v", pc.Now())
	}
	if pc.TotalPaused() != 3*time.Second {
		t.Fatalf("ongoing pause not counted: %v", pc.TotalPaused())
	}

	pc.Resume()
	if pc.IsPaused() {
		t.Fatal("clock still paused after Resume")
	}
	src.Advance(500 * time.Millisecond)
	if pc.Now() != 1500*time.Millisecond {
		t.Fatalf("expected 1.5s after resume, got %v", pc.Now())
	}
	pc.Resume()
	if pc.TotalPaused() != 3*time.Second {
		t.Fatalf("double resume changed pause total: %v", pc.TotalPaused())
	}
}
