package arena

import (
	"cell-arena/internal/core"
	rng "cell-arena/pkg/core"
)

const (
	spawnAttempts      = 10
	spawnEdgePadding   = 5
	spawnSeparation    = 10
	spawnFallbackInset = 100
)

// FindSafeSpawn picks a position for a disc of the given radius that keeps
// at least spawnSeparation pixels of clearance from every occupied disc.
// Callers pass only live occupants. After spawnAttempts misses it gives up on
// clearance and returns a random point in the central region, so placement
// always terminates.
func FindSafeSpawn(occupied []core.Circle, radius float64, r *rng.RNG, cfg Config) core.Vec2 {
	inset := cfg.Margin + radius + spawnEdgePadding
	minX, maxX := int(inset), int(float64(cfg.Width)-inset)
	minY, maxY := int(inset), int(float64(cfg.Height)-inset)

	for attempt := 0; attempt < spawnAttempts; attempt++ {
		candidate := core.Vec2{
			X: float64(r.IntRange(minX, maxX)),
			Y: float64(r.IntRange(minY, maxY)),
		}
		if clearOf(candidate, radius, occupied) {
			return candidate
		}
	}

	minXf, minYf, maxXf, maxYf := FallbackBounds(cfg)
	return core.Vec2{
		X: float64(r.IntRange(int(minXf), int(maxXf))),
		Y: float64(r.IntRange(int(minYf), int(maxYf))),
	}
}

// FallbackBounds is the central region FindSafeSpawn falls back to.
func FallbackBounds(cfg Config) (minX, minY, maxX, maxY float64) {
	inset := cfg.Margin + spawnFallbackInset
	return inset, inset, float64(cfg.Width) - inset, float64(cfg.Height) - inset
}

func clearOf(p core.Vec2, radius float64, occupied []core.Circle) bool {
	for _, o := range occupied {
		if p.Sub(o.Center).Len() < o.R+radius+spawnSeparation {
			return false
		}
	}
	return true
}
