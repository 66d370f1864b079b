package render

import (
	"image/color"
	"math"
	"strings"
	"time"

	"cell-arena/internal/arena"
)

// Palette colours shared by the painter, HUD and overlay.
var (
	Background   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Border       = color.RGBA{R: 233, G: 236, B: 239, A: 255}
	CellOutline  = color.RGBA{R: 0, G: 0, B: 0, A: 77}
	LabelText    = color.RGBA{R: 0, G: 0, B: 0, A: 204}
	LabelBack    = color.RGBA{R: 255, G: 255, B: 255, A: 230}
	SpeedBuff    = color.RGBA{R: 255, G: 193, B: 7, A: 255}
	ShurikenBuff = color.RGBA{R: 220, G: 53, B: 69, A: 255}
	InvincRing   = color.RGBA{R: 255, G: 215, B: 0, A: 204}
)

// Badge is one buff indicator drawn beside a cell.
type Badge struct {
	X, Y   float64
	Radius float64
	Symbol string
	Color  color.RGBA
}

// Dot is a filled disc, used for speed trails.
type Dot struct {
	X, Y   float64
	Radius float64
	Color  color.RGBA
}

// CellFill returns the body colour of a live cell. Invincible cells pulse
// gold; everyone else is a pale grey.
func CellFill(c arena.CellView, now time.Duration) color.RGBA {
	if c.Invincible {
		alpha := 0.4 + 0.3*math.Sin(now.Seconds()*10)
		return color.RGBA{R: 255, G: 190, B: 0, A: toByte(alpha)}
	}
	return color.RGBA{R: 228, G: 228, B: 228, A: 217}
}

// ItemFill returns the blinking background colour of an item.
func ItemFill(now time.Duration) color.RGBA {
	alpha := 0.6 + 0.2*math.Sin(now.Seconds()*5)
	return color.RGBA{R: 255, G: 255, B: 255, A: toByte(alpha)}
}

// ItemTint returns the accent colour of an item kind.
func ItemTint(kind arena.ItemKind) color.RGBA {
	switch kind {
	case arena.ItemSpeed:
		return SpeedBuff
	case arena.ItemShuriken:
		return ShurikenBuff
	case arena.ItemRevive:
		return color.RGBA{R: 40, G: 167, B: 69, A: 255}
	}
	return color.RGBA{R: 128, G: 128, B: 128, A: 255}
}

// Badges lays out buff indicators in a row to the upper right of the cell.
func Badges(c arena.CellView) []Badge {
	const (
		size    = 16
		spacing = 20
	)
	var out []Badge
	add := func(symbol string, col color.RGBA) {
		out = append(out, Badge{
			X:      c.X + c.Radius + 5 + float64(len(out))*spacing,
			Y:      c.Y - c.Radius - 15,
			Radius: size / 2,
			Symbol: symbol,
			Color:  col,
		})
	}
	if c.Speed {
		add(arena.ItemSpeed.Symbol(), SpeedBuff)
	}
	if c.Shuriken {
		add(arena.ItemShuriken.Symbol(), ShurikenBuff)
	}
	return out
}

// SpeedTrail returns the fading discs drawn behind a boosted cell, nearest
// first.
func SpeedTrail(c arena.CellView) []Dot {
	const (
		length  = 5
		opacity = 0.3
	)
	out := make([]Dot, 0, length)
	for i := 1; i <= length; i++ {
		f := float64(i) / length
		out = append(out, Dot{
			X:      c.X - c.VX*float64(i)*0.5,
			Y:      c.Y - c.VY*float64(i)*0.5,
			Radius: c.Radius * (1 - f*0.5),
			Color:  color.RGBA{R: 255, G: 193, B: 7, A: toByte(opacity * (1 - f))},
		})
	}
	return out
}

// ShortName is the on-canvas name of a cell: the participant ID up to its
// first dot, which the bitmap font can always render.
func ShortName(c arena.CellView) string {
	id := c.ParticipantID
	if id == "" {
		return c.Label
	}
	if head, _, ok := strings.Cut(id, "."); ok && head != "" {
		return head
	}
	return id
}

func toByte(f float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, f)) * 255))
}
