//go:build ebiten

package render

import (
	"image/color"
	"time"

	"cell-arena/internal/arena"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// ArenaPainter draws the arena, items and cells onto an ebiten image.
type ArenaPainter struct {
	cfg   arena.Config
	scale float32
}

// NewArenaPainter constructs a painter for the given arena configuration.
func NewArenaPainter(cfg arena.Config, scale int) *ArenaPainter {
	if scale <= 0 {
		scale = 1
	}
	return &ArenaPainter{cfg: cfg, scale: float32(scale)}
}

// Draw renders a snapshot taken at now.
func (p *ArenaPainter) Draw(dst *ebiten.Image, snap arena.Snapshot, now time.Duration) {
	s := p.scale
	w, h := float32(p.cfg.Width)*s, float32(p.cfg.Height)*s
	m := float32(p.cfg.Margin) * s

	vector.DrawFilledRect(dst, 0, 0, w, h, Background, false)
	vector.StrokeRect(dst, m, m, w-2*m, h-2*m, 2, Border, true)

	for _, it := range snap.Items {
		p.drawItem(dst, it, now)
	}
	for _, c := range snap.Cells {
		if c.Alive {
			p.drawCell(dst, c, now)
		}
	}
}

func (p *ArenaPainter) drawItem(dst *ebiten.Image, it arena.ItemView, now time.Duration) {
	s := p.scale
	x, y, r := float32(it.X)*s, float32(it.Y)*s, float32(it.Radius)*s
	vector.DrawFilledCircle(dst, x, y, r, ItemFill(now), true)
	vector.StrokeCircle(dst, x, y, r, 2, ItemTint(it.Kind), true)
	p.drawCentered(dst, it.Kind.Symbol(), x, y, LabelText)
}

func (p *ArenaPainter) drawCell(dst *ebiten.Image, c arena.CellView, now time.Duration) {
	s := p.scale
	if c.Speed {
		for _, d := range SpeedTrail(c) {
			vector.DrawFilledCircle(dst, float32(d.X)*s, float32(d.Y)*s, float32(d.Radius)*s, d.Color, true)
		}
	}

	x, y, r := float32(c.X)*s, float32(c.Y)*s, float32(c.Radius)*s
	vector.DrawFilledCircle(dst, x+2, y+2, r, color.RGBA{A: 40}, true)
	vector.DrawFilledCircle(dst, x, y, r, CellFill(c, now), true)
	vector.StrokeCircle(dst, x, y, r, 2, CellOutline, true)
	if c.Invincible {
		vector.StrokeCircle(dst, x, y, r+8*s, 2, InvincRing, true)
	}

	name := ShortName(c)
	bounds := text.BoundString(basicfont.Face7x13, name)
	tw := float32(bounds.Dx())
	ly := y - r - 15*s
	vector.DrawFilledRect(dst, x-tw/2-4, ly-10, tw+8, 20, LabelBack, false)
	p.drawCentered(dst, name, x, ly, LabelText)

	for _, b := range Badges(c) {
		bx, by := float32(b.X)*s, float32(b.Y)*s
		vector.DrawFilledCircle(dst, bx, by, float32(b.Radius)*s, b.Color, true)
		p.drawCentered(dst, b.Symbol, bx, by, color.White)
	}
}

func (p *ArenaPainter) drawCentered(dst *ebiten.Image, label string, x, y float32, clr color.Color) {
	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	tx := int(x) - bounds.Dx()/2
	ty := int(y) + bounds.Dy()/2
	text.Draw(dst, label, face, tx, ty, clr)
}
