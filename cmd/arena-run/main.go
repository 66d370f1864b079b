package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"time"

	"cell-arena/internal/app"
	"cell-arena/internal/arena"
	"cell-arena/internal/core"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	maxDur := flag.Duration("max", 10*time.Minute, "virtual time budget before the run is stopped")
	csvDir := flag.String("csv", "", "write the winners CSV into this directory")
	quiet := flag.Bool("quiet", false, "only print the final standings")
	flag.Parse()

	clock := core.NewManualClock(0)
	eng, roster, err := cfg.Build(os.Stderr, arena.WithClock(clock))
	if err != nil {
		log.Fatalf("arena setup: %v", err)
	}
	ac := eng.Config()
	step := time.Second / 60
	if ac.Params.FrameCap > 0 {
		step = time.Second / time.Duration(ac.Params.FrameCap)
	}

	eng.Start(roster, ac.TargetCount, ac.Seed)
	var lastAt time.Duration = -1
	for eng.State() == core.StateRunning && clock.Now() < *maxDur {
		eng.Update(clock.Advance(step))
		if *quiet {
			continue
		}
		fresh := newEvents(eng.Events(), lastAt)
		for _, e := range fresh {
			fmt.Printf("[%s] %s\n", formatAt(e.At), e.Message)
			lastAt = e.At
		}
	}
	if eng.State() == core.StateRunning {
		eng.Stop()
		fmt.Printf("stopped after %s of virtual time\n", maxDur)
	}

	info := eng.Info()
	res := eng.Winners()
	fmt.Printf("\n%s after %s (%d ticks, seed %s)\n", res.Type, info.Elapsed.Round(time.Millisecond), info.Ticks, seedOrTimeBased(info.Seed))
	for i, w := range res.Winners {
		fmt.Printf("%2d) %-28s r=%.2f kills=%d\n", i+1, w.Label, w.Radius, w.Kills)
	}

	fmt.Println("\nParticipants:")
	stats := eng.ParticipantStats()
	for _, c := range stats {
		status := "alive"
		if !c.Alive {
			status = "dead (" + killerLabel(stats, c.KilledBy) + ")"
		}
		fmt.Printf("  %-28s r=%6.2f kills=%d %s\n", c.Label, c.Radius, c.Kills, status)
	}

	if *csvDir != "" {
		path, err := app.ExportWinners(*csvDir, eng, time.Now())
		if err != nil {
			log.Fatalf("export: %v", err)
		}
		fmt.Printf("\nwinners written to %s\n", path)
	}
}

// newEvents returns the entries logged after lastAt, oldest first.
func newEvents(events []arena.Event, lastAt time.Duration) []arena.Event {
	var out []arena.Event
	for _, e := range events {
		if e.At <= lastAt {
			break
		}
		out = append(out, e)
	}
	slices.Reverse(out)
	return out
}

func formatAt(d time.Duration) string {
	return fmt.Sprintf("%6.2fs", d.Seconds())
}

func killerLabel(cells []arena.CellView, id int) string {
	for _, c := range cells {
		if c.ID == id {
			return "by " + c.Label
		}
	}
	return "unknown"
}

func seedOrTimeBased(seed string) string {
	if seed == "" {
		return arena.TimeBasedSeed
	}
	return seed
}
