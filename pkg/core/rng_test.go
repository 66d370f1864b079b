package core

import (
	"math"
	"testing"
)

func TestHashSeedKnownValues(t *testing.T) {
	cases := []struct {
		in   string
		want uint32
	}{
		{"", 0},
		{"abc", 96354},
		{"hello world", 1794106052},
		{"seed-42", 1971552090},
		{"커피", 1696472},
		// Surrogate pairs hash as two UTF-16 units.
		{"😀", 1772899},
	}
	for _, tc := range cases {
		if got := HashSeed(tc.in); got != tc.want {
			t.Fatalf("HashSeed(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestSeedABCFirstOutputsStable(t *testing.T) {
	for i := 0; i < 3; i++ {
		r := NewRNG("abc")
		if got := r.Next(); got != 0.5782945363316685 {
			t.Fatalf("run %d: first output %v", i, got)
		}
		if got := r.Next(); got != 0.9491554433479905 {
			t.Fatalf("run %d: second output %v", i, got)
		}
	}
}

func TestResetRewindsWithoutChangingSeed(t *testing.T) {
	r := NewRNG("hello world")
	seed := r.Seed()
	first := []float64{r.Next(), r.Next(), r.Next()}
	r.Reset()
	if r.Seed() != seed {
		t.Fatalf("seed changed on reset: %d -> %d", seed, r.Seed())
	}
	for i, want := range first {
		if got := r.Next(); got != want {
			t.Fatalf("draw %d after reset = %v, want %v", i, got, want)
		}
	}
}

func TestSetSeedEmptyUsesClock(t *testing.T) {
	r := NewRNGFromState(7)
	r.SetSeed("")
	if r.Seed() == 7 {
		t.Fatal("expected empty seed to derive from the clock")
	}
	if v := r.Next(); v < 0 || v >= 1 {
		t.Fatalf("Next out of range: %v", v)
	}
}

func TestRangesStayInBounds(t *testing.T) {
	r := NewRNG("bounds")
	for i := 0; i < 5000; i++ {
		n := r.IntRange(600, 1400)
		if n < 600 || n > 1400 {
			t.Fatalf("IntRange out of bounds: %d", n)
		}
		f := r.FloatRange(0, 2*math.Pi)
		if f < 0 || f >= 2*math.Pi {
			t.Fatalf("FloatRange out of bounds: %v", f)
		}
		c := r.Choice(5)
		if c < 0 || c >= 5 {
			t.Fatalf("Choice out of bounds: %d", c)
		}
	}
}

func TestChoiceEmpty(t *testing.T) {
	r := NewRNG("empty")
	if idx := r.Choice(0); idx != -1 {
		t.Fatalf("Choice(0) = %d, want -1", idx)
	}
	if _, ok := Pick[int](r, nil); ok {
		t.Fatal("Pick on empty slice must report false")
	}
}

func TestWeightedChoiceZeroWeightsNeverPicked(t *testing.T) {
	r := NewRNG("weights")
	weights := []float64{0, 1, 0}
	for i := 0; i < 200; i++ {
		if got := r.WeightedChoice(weights); got != 1 {
			t.Fatalf("picked zero-weight index %d", got)
		}
	}
}

func TestWeightedChoiceTopOfRangePicksLast(t *testing.T) {
	// 653637408 steps to 0xFFFFFFFF, the largest value Next can return.
	r := NewRNGFromState(653637408)
	if got := r.WeightedChoice([]float64{0.1, 0.2, 0.7}); got != 2 {
		t.Fatalf("top-of-range roll picked %d, want 2", got)
	}
}

func TestWeightedPickMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on mismatched lengths")
		}
	}()
	r := NewRNG("mismatch")
	WeightedPick(r, []string{"a", "b"}, []float64{1})
}

func TestWeightedPickDistribution(t *testing.T) {
	r := NewRNG("distribution")
	kinds := []string{"speed", "revive", "shuriken"}
	weights := []float64{0.45, 0.25, 0.30}
	counts := map[string]int{}
	const draws = 20000
	for i := 0; i < draws; i++ {
		counts[WeightedPick(r, kinds, weights)]++
	}
	for i, k := range kinds {
		share := float64(counts[k]) / draws
		if math.Abs(share-weights[i]) > 0.03 {
			t.Fatalf("%s share %.3f, want about %.2f", k, share, weights[i])
		}
	}
}
