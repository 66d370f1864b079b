package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"cell-arena/internal/arena"
)

type trace struct {
	digests []uint64
	result  arena.RunResult
}

func record(cfg arena.Config, seed string, target int, maxDur time.Duration) trace {
	var t trace
	opts := arena.HeadlessOptions{
		MaxDuration: maxDur,
		OnTick: func(_ int, cells []*arena.Cell) {
			t.digests = append(t.digests, arena.Checksum(cells))
		},
	}
	t.result = arena.RunHeadless(cfg, arena.DefaultRoster(), target, seed, opts)
	return t
}

func main() {
	seed := flag.String("seed", "determinism", "seed to replay")
	target := flag.Int("target", 1, "survivors needed to end the run")
	maxDur := flag.Duration("max", 2*time.Minute, "virtual time budget per run")
	flag.Parse()

	cfg := arena.DefaultConfig()
	a := record(cfg, *seed, *target, *maxDur)
	b := record(cfg, *seed, *target, *maxDur)

	n := min(len(a.digests), len(b.digests))
	for i := 0; i < n; i++ {
		if a.digests[i] != b.digests[i] {
			fmt.Printf("DIVERGED at tick %d: %016x vs %016x\n", i+1, a.digests[i], b.digests[i])
			os.Exit(1)
		}
	}
	if len(a.digests) != len(b.digests) {
		fmt.Printf("DIVERGED: run lengths %d vs %d ticks\n", len(a.digests), len(b.digests))
		os.Exit(1)
	}

	fmt.Printf("seed %q reproduced over %d ticks (%s, final %016x)\n",
		*seed, n, a.result.Result.Type, a.result.Checksum)
	for i, w := range a.result.Result.Winners {
		fmt.Printf("%2d) %s r=%.2f\n", i+1, w.Label, w.Radius)
	}
}
