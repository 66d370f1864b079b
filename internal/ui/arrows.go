package ui

import (
	"image/color"
	"math"

	"cell-arena/internal/arena"
)

type segment struct {
	X1, Y1, X2, Y2 float64
}

// arrow is a heading indicator: a shaft from the cell centre plus two head
// strokes at the tip.
type arrow struct {
	Shaft, Left, Right segment
	Color              color.RGBA
}

const (
	arrowHeadAngle = math.Pi / 6
	arrowGain      = 12
	calmThreshold  = 0.05
)

// velocityArrow builds the heading arrow of a cell in screen space. Cells
// that are nearly still yield no arrow.
func velocityArrow(c arena.CellView, scale, maxSpeed float64) (arrow, bool) {
	speed := math.Hypot(c.VX, c.VY)
	if speed < calmThreshold {
		return arrow{}, false
	}
	if scale <= 0 {
		scale = 1
	}
	nx, ny := c.VX/speed, c.VY/speed
	cx, cy := c.X*scale, c.Y*scale
	length := c.Radius*scale + speed*arrowGain*scale
	tipX, tipY := cx+nx*length, cy+ny*length

	headLength := math.Min(length*0.3, 6*scale)
	angle := math.Atan2(ny, nx)
	a := arrow{
		Shaft: segment{cx, cy, tipX, tipY},
		Left:  segment{tipX, tipY, tipX - math.Cos(angle+arrowHeadAngle)*headLength, tipY - math.Sin(angle+arrowHeadAngle)*headLength},
		Right: segment{tipX, tipY, tipX - math.Cos(angle-arrowHeadAngle)*headLength, tipY - math.Sin(angle-arrowHeadAngle)*headLength},
	}
	normalized := 1.0
	if maxSpeed > 0 {
		normalized = clamp01(speed / maxSpeed)
	}
	a.Color = interpolateColor(normalized)
	return a, true
}

func interpolateColor(t float64) color.RGBA {
	t = clamp01(t)
	r := uint8(math.Round(80 + 170*t))
	g := uint8(math.Round(170 - 90*t))
	b := uint8(math.Round(230 - 150*t))
	a := uint8(math.Round(150 + 90*t))
	return color.RGBA{R: r, G: g, B: b, A: a}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
