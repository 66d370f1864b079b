package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cell-arena/internal/arena"
	"cell-arena/internal/core"
)

type fakeStandings struct {
	res  arena.Result
	seed string
}

func (f fakeStandings) Winners() arena.Result { return f.res }
func (f fakeStandings) Info() arena.Info { return arena.Info{Seed: f.seed} }

func TestExportWinnersWritesCSV(t *testing.T) {
	dir := t.TempDir()
	at := time.Date(2024, 3, 9, 14, 5, 0, 0, time.UTC)
	res := arena.Result{Type: arena.ResultTargetReached, Winners: []arena.CellView{
		{ParticipantID: "kent.coach", Name: "Kent", Radius: 24},
	}}
	src := fakeStandings{res: res}
	path, err := ExportWinners(dir, src, at)
	if err != nil {
		t.Fatalf("ExportWinners: %v", err)
	}
	if filepath.Base(path) != "winners-2024-03-09T14-05-00.csv" {
		t.Fatalf("unexpected file name %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "1,kent.coach,Kent,24,time-based,2024-03-09T14:05:00Z"
	if !strings.Contains(string(data), want) {
		t.Fatalf("expected row %q in %q", want, data)
	}
}

func TestExportWinnersRefusesEmptyStandings(t *testing.T) {
	_, err := ExportWinners(t.TempDir(), fakeStandings{}, time.Now())
	if !errors.Is(err, ErrNoWinners) {
		t.Fatalf("expected ErrNoWinners, got %v", err)
	}
}

func TestExportWinnersMidRun(t *testing.T) {
	eng := arena.New(arena.DefaultConfig(), arena.WithClock(core.NewManualClock(0)))
	if _, err := ExportWinners(t.TempDir(), eng, time.Now()); !errors.Is(err, ErrNoWinners) {
		t.Fatalf("expected ErrNoWinners before start, got %v", err)
	}

	eng.Start(arena.SelectRoster([]string{"a", "b", "c"}), 1, "mid")
	if _, ended := eng.Result(); ended {
		t.Fatal("run should still be in progress")
	}
	path, err := ExportWinners(t.TempDir(), eng, time.Date(2024, 3, 9, 14, 5, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("ExportWinners mid-run: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), ",mid,") {
		t.Fatalf("expected current leaders with seed mid, got %q", data)
	}
}
