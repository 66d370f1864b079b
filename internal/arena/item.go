package arena

import (
	"time"

	"cell-arena/internal/core"
)

// ItemKind enumerates collectible item types.
type ItemKind string

const (
	ItemSpeed    ItemKind = "speed"
	ItemRevive   ItemKind = "revive"
	ItemShuriken ItemKind = "shuriken"
)

// Item is a collectible lying in the arena until picked up or expired.
type Item struct {
	ID        string
	Kind      ItemKind
	Pos       core.Vec2
	Radius    float64
	SpawnTime time.Duration
	ExpiresAt time.Duration

	taken bool
}

// Circle returns the item's occupied disc.
func (it *Item) Circle() core.Circle {
	return core.Circle{Center: it.Pos, R: it.Radius}
}

// Expired reports whether the item's lifetime has passed at now.
func (it *Item) Expired(now time.Duration) bool {
	return it.ExpiresAt < now
}

// Symbol returns a short glyph for HUD and log output.
func (k ItemKind) Symbol() string {
	switch k {
	case ItemSpeed:
		return "S"
	case ItemRevive:
		return "R"
	case ItemShuriken:
		return "X"
	default:
		return "?"
	}
}
