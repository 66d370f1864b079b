package ui

import (
	"image"
	"math"
	"testing"
	"time"

	"cell-arena/internal/arena"
	"cell-arena/internal/core"
)

func TestFormatClock(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00"},
		{59*time.Second + 900*time.Millisecond, "00:59"},
		{2*time.Minute + 5*time.Second, "02:05"},
		{-time.Second, "00:00"},
	}
	for _, tc := range cases {
		if got := formatClock(tc.d); got != tc.want {
			t.Fatalf("formatClock(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}

func TestInfoLinesShowRemainingOnlyWithLimit(t *testing.T) {
	info := arena.Info{State: core.StateRunning, Survivors: 5, Participants: 8, Target: 2, Remaining: -1, Seed: "s"}
	lines := infoLines(info)
	if len(lines) != infoRows {
		t.Fatalf("expected %d info rows, got %d", infoRows, len(lines))
	}
	if lines[0].Text != "state: running" || lines[1].Text != "alive: 5 / 8" {
		t.Fatalf("unexpected header lines %q, %q", lines[0].Text, lines[1].Text)
	}
	if lines[4].Text != "left: --" {
		t.Fatalf("expected no remaining time, got %q", lines[4].Text)
	}

	info.Remaining = 90 * time.Second
	if got := infoLines(info)[4].Text; got != "left: 01:30" {
		t.Fatalf("unexpected remaining line %q", got)
	}
}

func TestEventLinesUseASCIINames(t *testing.T) {
	cells := []arena.CellView{
		{ID: 1, ParticipantID: "kent.coach", Label: "김코치(kent.coach)"},
		{ID: 2, ParticipantID: "zo.7", Label: "지영은(zo.7)"},
	}
	events := []arena.Event{
		{Kind: arena.EventWinner, Message: "target reached: 1 survivor(s)"},
		{Kind: arena.EventKill, ActorID: 1, TargetID: 2, Method: "collision", Message: "김코치 ▶ 지영은"},
		{Kind: arena.EventKill, ActorID: 2, TargetID: 1, Method: "mutual"},
		{Kind: arena.EventItem, ActorID: 1, Method: "speed"},
		{Kind: arena.EventRevive, ActorID: 1, TargetID: 9},
	}
	lines := eventLines(events, cells, 0)
	want := []string{
		"target reached: 1 survivor(s)",
		"kent > zo (collision)",
		"zo <> kent (mutual)",
		"kent got speed",
		"revived: #9",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(lines))
	}
	for i, w := range want {
		if lines[i].Text != w {
			t.Fatalf("line %d = %q, want %q", i, lines[i].Text, w)
		}
	}
	if lines[1].Color != textKill || lines[0].Color != textWinner {
		t.Fatal("expected kind-specific colours")
	}

	if got := eventLines(events, cells, 2); len(got) != 2 {
		t.Fatalf("expected max to cap lines, got %d", len(got))
	}
}

func TestWinnerLines(t *testing.T) {
	if got := winnerLines(arena.Result{}); len(got) != 1 || got[0].Text != "no survivors" {
		t.Fatalf("unexpected empty standings %+v", got)
	}
	res := arena.Result{Winners: []arena.CellView{
		{ParticipantID: "kent.coach", Radius: 24, Kills: 2},
		{ParticipantID: "zo.7", Radius: 14.3},
	}}
	lines := winnerLines(res)
	if lines[0].Text != "1. kent r=24.0 k=2" || lines[1].Text != "2. zo r=14.3 k=0" {
		t.Fatalf("unexpected standings %q, %q", lines[0].Text, lines[1].Text)
	}
}

func TestTruncateAndASCII(t *testing.T) {
	if got := truncate("abcdefgh", 5); got != "abc.." {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("abc", 5); got != "abc" {
		t.Fatalf("short strings must pass through, got %q", got)
	}
	if got := asciiOnly("a▶b"); got != "a?b" {
		t.Fatalf("asciiOnly = %q", got)
	}
}

type fakeSim struct {
	ints   map[string]int
	floats map[string]float64
}

func (f *fakeSim) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "frame_cap", Label: "Frame cap", Type: core.ParamTypeInt, Step: 10, Min: 0, Max: 30, HasMin: true, HasMax: true},
		{Key: "jitter", Label: "Jitter", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

func (f *fakeSim) SetIntParameter(key string, v int) bool {
	f.ints[key] = v
	return true
}

func (f *fakeSim) SetFloatParameter(key string, v float64) bool {
	f.floats[key] = v
	return true
}

func snapshotOf(frameCap, jitter string) core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name:   "Test",
		Params: []core.Parameter{
			{Key: "frame_cap", Type: core.ParamTypeInt, Value: frameCap},
			{Key: "jitter", Type: core.ParamTypeFloat, Value: jitter},
		},
	}}}
}

func TestControlPanelAdjustsWithinBounds(t *testing.T) {
	sim := &fakeSim{ints: map[string]int{}, floats: map[string]float64{}}
	p := newControlPanel(sim, 240, 100)
	if len(p.controls) != 2 {
		t.Fatalf("expected two controls, got %d", len(p.controls))
	}
	p.refresh(snapshotOf("25", "0.98"))

	capCtl := &p.controls[0]
	if capCtl.value != "25" || !capCtl.hasValue {
		t.Fatalf("unexpected int control state %+v", capCtl)
	}
	if !p.adjust(capCtl, 1) || sim.ints["frame_cap"] != 30 {
		t.Fatalf("expected frame cap clamped to 30, got %d", sim.ints["frame_cap"])
	}
	if p.canAdjust(capCtl, 1) {
		t.Fatal("plus should be disabled at the maximum")
	}
	if p.adjust(capCtl, 1) {
		t.Fatal("adjusting past the maximum must be a no-op")
	}

	jitter := &p.controls[1]
	if jitter.value != "0.98" {
		t.Fatalf("expected two-decimal formatting, got %q", jitter.value)
	}
	if !p.adjust(jitter, 1) || sim.floats["jitter"] != 1 {
		t.Fatalf("expected jitter clamped to 1, got %v", sim.floats["jitter"])
	}
	if !p.adjust(jitter, -1) || math.Abs(sim.floats["jitter"]-0.95) > 1e-9 {
		t.Fatalf("expected jitter 0.95, got %v", sim.floats["jitter"])
	}
}

func TestControlPanelClickHitsButtons(t *testing.T) {
	sim := &fakeSim{ints: map[string]int{}, floats: map[string]float64{}}
	p := newControlPanel(sim, 240, 100)
	p.refresh(snapshotOf("10", "0.5"))

	minus := p.controls[0].minusRect
	if minus.Max.X != 240-panelPadding-buttonSize-buttonGap {
		t.Fatalf("unexpected minus button %v", minus)
	}
	if !p.click(minus.Min.X+1, minus.Min.Y+1) || sim.ints["frame_cap"] != 0 {
		t.Fatalf("expected click to decrement frame cap, got %d", sim.ints["frame_cap"])
	}
	if p.click(0, 0) {
		t.Fatal("clicks outside buttons must not adjust")
	}
	if !pointInRect(5, 5, image.Rect(0, 0, 10, 10)) || pointInRect(10, 5, image.Rect(0, 0, 10, 10)) {
		t.Fatal("pointInRect must be half-open")
	}
}

func TestControlPanelMissingValues(t *testing.T) {
	sim := &fakeSim{ints: map[string]int{}, floats: map[string]float64{}}
	p := newControlPanel(sim, 240, 100)
	p.refresh(snapshotOf("not-a-number", "0.5"))
	if p.controls[0].hasValue || p.controls[0].value != "--" {
		t.Fatalf("unparsable values should display as --, got %+v", p.controls[0])
	}
	if p.canAdjust(&p.controls[0], 1) {
		t.Fatal("controls without a value cannot be adjusted")
	}
}

func TestVelocityArrow(t *testing.T) {
	if _, ok := velocityArrow(arena.CellView{X: 10, Y: 10, Radius: 5}, 1, 3); ok {
		t.Fatal("still cells should not get an arrow")
	}
	a, ok := velocityArrow(arena.CellView{X: 10, Y: 20, VX: 2, Radius: 5}, 2, 4)
	if !ok {
		t.Fatal("expected an arrow for a moving cell")
	}
	// Shaft starts at the scaled centre and extends radius plus speed gain.
	if a.Shaft.X1 != 20 || a.Shaft.Y1 != 40 || a.Shaft.X2 != 20+10+2*arrowGain*2 || a.Shaft.Y2 != 40 {
		t.Fatalf("unexpected shaft %+v", a.Shaft)
	}
	if a.Left.X2 >= a.Shaft.X2 || a.Right.X2 >= a.Shaft.X2 {
		t.Fatal("head strokes should point back along the shaft")
	}
	if a.Color != interpolateColor(0.5) {
		t.Fatalf("unexpected colour %+v", a.Color)
	}
}
