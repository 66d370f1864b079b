package core

import (
	"time"
	"unicode/utf16"
)

const (
	lcgMultiplier uint32 = 1664525
	lcgIncrement  uint32 = 1013904223
	lcgModulus           = 1 << 32
)

// RNG is a 32-bit linear congruential generator. Every random draw in the
// arena goes through one of these so that a seed fully determines a run.
type RNG struct {
	seed    uint32
	current uint32
}

// NewRNG creates a generator from a string seed. An empty seed falls back to
// the wall clock and therefore produces a non-reproducible stream.
func NewRNG(seed string) *RNG {
	r := &RNG{}
	r.SetSeed(seed)
	return r
}

// NewRNGFromState creates a generator starting at an explicit 32-bit seed.
func NewRNGFromState(seed uint32) *RNG {
	return &RNG{seed: seed, current: seed}
}

// HashSeed folds a string into a 32-bit seed using h = h*31 + unit over the
// UTF-16 code units, with signed 32-bit wraparound, then takes the absolute
// value. The result is stable across runs and platforms.
func HashSeed(s string) uint32 {
	var h int32
	for _, unit := range utf16.Encode([]rune(s)) {
		h = (h << 5) - h + int32(unit)
	}
	if h < 0 {
		// -MinInt32 overflows int32 but fits uint32 as 2^31.
		return uint32(-int64(h))
	}
	return uint32(h)
}

// SetSeed re-derives the seed from s and rewinds the stream.
func (r *RNG) SetSeed(s string) {
	if s == "" {
		r.seed = uint32(time.Now().UnixMilli())
	} else {
		r.seed = HashSeed(s)
	}
	r.current = r.seed
}

// Seed returns the 32-bit seed the stream started from.
func (r *RNG) Seed() uint32 { return r.seed }

// Reset rewinds the stream to its seed without changing the seed.
func (r *RNG) Reset() { r.current = r.seed }

// Next advances the generator and returns a float in [0, 1).
func (r *RNG) Next() float64 {
	r.current = lcgMultiplier*r.current + lcgIncrement
	return float64(r.current) / lcgModulus
}

// IntRange returns a uniform integer in [min, max].
func (r *RNG) IntRange(min, max int) int {
	return int(r.Next()*float64(max-min+1)) + min
}

// FloatRange returns a uniform float in [min, max).
func (r *RNG) FloatRange(min, max float64) float64 {
	return r.Next()*(max-min) + min
}

// Choice returns a uniform index in [0, n), or -1 when n is zero.
func (r *RNG) Choice(n int) int {
	if n <= 0 {
		return -1
	}
	return int(r.Next() * float64(n))
}

// WeightedChoice selects an index by cumulative subtraction over weights.
// Floating-point residue after the last subtraction resolves to the last
// index. It panics on an empty weight table.
func (r *RNG) WeightedChoice(weights []float64) int {
	if len(weights) == 0 {
		panic("core: WeightedChoice on empty weights")
	}
	total := 0.0
	for _, w := range weights {
		total += w
	}
	roll := r.Next() * total
	for i, w := range weights {
		roll -= w
		if roll <= 0 {
			return i
		}
	}
	return len(weights) - 1
}

// Pick returns a uniformly chosen element and false when items is empty.
func Pick[T any](r *RNG, items []T) (T, bool) {
	idx := r.Choice(len(items))
	if idx < 0 {
		var zero T
		return zero, false
	}
	return items[idx], true
}

// WeightedPick selects an element of items using the parallel weights slice.
// Mismatched lengths are a programming error and panic.
func WeightedPick[T any](r *RNG, items []T, weights []float64) T {
	if len(items) != len(weights) {
		panic("core: WeightedPick items and weights must have the same length")
	}
	return items[r.WeightedChoice(weights)]
}
