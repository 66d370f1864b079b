package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"strconv"
	"time"

	"cell-arena/internal/app"
	"cell-arena/internal/arena"

	"github.com/pkg/profile"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	runs := flag.Int("runs", 64, "number of seeds to play")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	maxDur := flag.Duration("max", 10*time.Minute, "virtual time budget per run")
	top := flag.Int("top", 10, "participants to list in the win tally")
	prof := flag.String("profile", "", "write a cpu or mem profile to the current directory")
	flag.Parse()

	switch *prof {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		log.Fatalf("unknown profile mode %q (want cpu or mem)", *prof)
	}

	ac, err := cfg.ArenaConfig()
	if err != nil {
		log.Fatalf("arena setup: %v", err)
	}
	roster, err := cfg.Roster(ac.TargetCount)
	if err != nil {
		log.Fatalf("arena setup: %v", err)
	}

	base := ac.Seed
	if base == "" {
		base = "sweep"
	}
	seeds := make([]string, *runs)
	for i := range seeds {
		seeds[i] = base + "-" + strconv.Itoa(i)
	}

	fmt.Printf("Sweeping %d seeds (%d workers, %d participants, target %d)\n", len(seeds), *workers, len(roster), ac.TargetCount)
	start := time.Now()
	results := arena.Sweep(ac, roster, ac.TargetCount, seeds, *workers, arena.HeadlessOptions{MaxDuration: *maxDur})
	elapsed := time.Since(start)
	sum := arena.Summarize(results)

	fmt.Printf("\nFinished in %s: %d runs, %d unfinished, mean ticks %.0f, mean kills %.1f\n",
		elapsed.Round(time.Millisecond), sum.Runs, sum.Unfinished, sum.MeanTicks, sum.MeanKills)
	for _, t := range []arena.ResultType{arena.ResultTargetReached, arena.ResultTimeLimit, arena.ResultAllDead} {
		fmt.Printf("  %-15s %d\n", t, sum.ByType[t])
	}

	fmt.Println("\nWin tally:")
	for i, t := range sum.Tally {
		if i == *top {
			break
		}
		fmt.Printf("%2d) %-28s %d\n", i+1, t.Label, t.Wins)
	}

	if len(results) > 0 {
		longest := results[0]
		for _, r := range results[1:] {
			if r.Ticks > longest.Ticks {
				longest = r
			}
		}
		fmt.Printf("\nLongest run: seed %s, %d ticks, %s\n", longest.Seed, longest.Ticks, longest.Result.Type)
	}
}
