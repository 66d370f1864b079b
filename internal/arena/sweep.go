package arena

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"sort"
	"sync"
	"time"

	"cell-arena/internal/core"
)

// RunResult captures telemetry from one headless run. Checksum folds the
// final cell state, so two runs with the same seed report the same value.
type RunResult struct {
	Seed     string
	Result   Result
	Ended    bool
	Ticks    int
	Elapsed  time.Duration
	Checksum uint64

	Kills          int
	MutualKills    int
	ItemsCollected int
	Revives        int
}

// HeadlessOptions controls the virtual-time loop used by RunHeadless.
type HeadlessOptions struct {
	// Step is the virtual time between ticks. Zero uses the frame interval,
	// or 1/60 s when uncapped.
	Step time.Duration

	// MaxDuration stops the run if it has not ended by then. Zero means
	// ten minutes of virtual time.
	MaxDuration time.Duration

	// OnTick, when set, sees the cells after every accepted tick.
	OnTick func(tick int, cells []*Cell)
}

func (o HeadlessOptions) withDefaults(cfg Config) HeadlessOptions {
	if o.Step <= 0 {
		o.Step = time.Second / 60
		if cfg.Params.FrameCap > 0 {
			o.Step = time.Second / time.Duration(cfg.Params.FrameCap)
		}
	}
	if o.MaxDuration <= 0 {
		o.MaxDuration = 10 * time.Minute
	}
	return o
}

// RunHeadless plays one run on a manual clock until it ends or the virtual
// time budget is spent.
func RunHeadless(cfg Config, roster []core.Participant, target int, seed string, opts HeadlessOptions) RunResult {
	opts = opts.withDefaults(cfg)
	out := RunResult{Seed: seed}

	clock := core.NewManualClock(0)
	eng := New(cfg, WithClock(clock), WithOutcomeObserver(func(o Outcome) {
		switch v := o.(type) {
		case Kill:
			out.Kills++
		case MutualKill:
			out.MutualKills++
		case ItemCollected:
			out.ItemsCollected++
			if v.Revived != nil {
				out.Revives++
			}
		}
	}))
	eng.Start(roster, target, seed)

	for eng.State() == core.StateRunning && clock.Now() < opts.MaxDuration {
		before := eng.ticks
		eng.Update(clock.Advance(opts.Step))
		if opts.OnTick != nil && eng.ticks != before {
			opts.OnTick(eng.ticks, eng.world.Cells())
		}
	}
	if eng.State() == core.StateRunning {
		eng.Stop()
	}

	info := eng.Info()
	out.Ticks = info.Ticks
	out.Elapsed = info.Elapsed
	out.Result, out.Ended = eng.Result()
	if !out.Ended {
		out.Result = eng.Winners()
	}
	out.Checksum = Checksum(eng.World().Cells())
	return out
}

// Checksum folds cell positions, radii and liveness into a single FNV-1a
// value over their bit patterns.
func Checksum(cells []*Cell) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	mix := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}
	for _, c := range cells {
		mix(uint64(c.ID))
		mix(math.Float64bits(c.Pos.X))
		mix(math.Float64bits(c.Pos.Y))
		mix(math.Float64bits(c.Radius))
		if c.Alive {
			mix(1)
		} else {
			mix(0)
		}
	}
	return h.Sum64()
}

// Sweep runs one headless game per seed across a bounded worker pool.
// Results are returned in seed order.
func Sweep(cfg Config, roster []core.Participant, target int, seeds []string, workers int, opts HeadlessOptions) []RunResult {
	if workers <= 0 {
		workers = 1
	}
	results := make([]RunResult, len(seeds))
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for idx, seed := range seeds {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, s string) {
			defer wg.Done()
			results[i] = RunHeadless(cfg, roster, target, s, opts)
			<-sem
		}(idx, seed)
	}

	wg.Wait()
	return results
}

// WinTally counts how often a participant won across a sweep.
type WinTally struct {
	ParticipantID string
	Label         string
	Wins          int
}

// SweepSummary aggregates a sweep.
type SweepSummary struct {
	Runs       int
	ByType     map[ResultType]int
	Tally      []WinTally
	MeanTicks  float64
	MeanKills  float64
	Unfinished int
}

// Summarize tallies winners and result types. Tally is sorted by wins, then
// participant ID.
func Summarize(results []RunResult) SweepSummary {
	sum := SweepSummary{Runs: len(results), ByType: make(map[ResultType]int)}
	wins := make(map[string]*WinTally)
	var ticks, kills int
	for _, r := range results {
		ticks += r.Ticks
		kills += r.Kills + 2*r.MutualKills
		if !r.Ended {
			sum.Unfinished++
			continue
		}
		sum.ByType[r.Result.Type]++
		for _, w := range r.Result.Winners {
			t, ok := wins[w.ParticipantID]
			if !ok {
				t = &WinTally{ParticipantID: w.ParticipantID, Label: w.Label}
				wins[w.ParticipantID] = t
			}
			t.Wins++
		}
	}
	if sum.Runs > 0 {
		sum.MeanTicks = float64(ticks) / float64(sum.Runs)
		sum.MeanKills = float64(kills) / float64(sum.Runs)
	}
	for _, t := range wins {
		sum.Tally = append(sum.Tally, *t)
	}
	sort.Slice(sum.Tally, func(i, j int) bool {
		if sum.Tally[i].Wins != sum.Tally[j].Wins {
			return sum.Tally[i].Wins > sum.Tally[j].Wins
		}
		return sum.Tally[i].ParticipantID < sum.Tally[j].ParticipantID
	})
	return sum
}
