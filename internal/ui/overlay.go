//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"cell-arena/internal/arena"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay draws optional debugging visuals on top of the arena: key 1
// toggles heading arrows, key 2 toggles collision bounds.
type Overlay struct {
	cfg         arena.Config
	scale       int
	showHeading bool
	showBounds  bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(cfg arena.Config, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{cfg: cfg, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update polls the toggle keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showHeading = !o.showHeading
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showBounds = !o.showBounds
	}
}

// Draw renders the enabled overlays for snap.
func (o *Overlay) Draw(screen *ebiten.Image, snap arena.Snapshot) {
	scale := float64(o.scale)
	if o.showBounds {
		o.drawBounds(screen, snap, scale)
	}
	if o.showHeading {
		maxSpeed := o.cfg.Params.BaseSpeed * o.cfg.Params.SpeedMultiplier
		for _, c := range snap.Cells {
			if !c.Alive {
				continue
			}
			a, ok := velocityArrow(c, scale, maxSpeed)
			if !ok {
				continue
			}
			thickness := math.Max(1, scale*1.2)
			o.drawSegment(screen, a.Shaft, thickness, a.Color)
			o.drawSegment(screen, a.Left, thickness*0.85, a.Color)
			o.drawSegment(screen, a.Right, thickness*0.85, a.Color)
		}
	}
}

func (o *Overlay) drawBounds(screen *ebiten.Image, snap arena.Snapshot, scale float64) {
	s := float32(scale)
	fallback := color.RGBA{R: 90, G: 130, B: 170, A: 140}
	minX, minY, maxX, maxY := arena.FallbackBounds(o.cfg)
	vector.StrokeRect(screen, float32(minX)*s, float32(minY)*s, float32(maxX-minX)*s, float32(maxY-minY)*s, 1, fallback, false)

	for _, c := range snap.Cells {
		if !c.Alive {
			continue
		}
		clr := color.RGBA{R: 64, G: 164, B: 223, A: 160}
		if c.Shuriken {
			clr = color.RGBA{R: 220, G: 53, B: 69, A: 200}
		}
		vector.StrokeCircle(screen, float32(c.X)*s, float32(c.Y)*s, float32(c.Radius)*s, 1, clr, true)
	}
	for _, it := range snap.Items {
		vector.StrokeCircle(screen, float32(it.X)*s, float32(it.Y)*s, float32(it.Radius)*s, 1, color.RGBA{R: 120, G: 200, B: 120, A: 160}, true)
	}
}

func (o *Overlay) drawSegment(screen *ebiten.Image, seg segment, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := seg.X2 - seg.X1
	dy := seg.Y2 - seg.Y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(seg.X1, seg.Y1)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}
