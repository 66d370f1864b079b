//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"cell-arena/internal/arena"
	"cell-arena/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// HUD renders run status, parameter controls, the event log and standings
// to the right of the arena view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	title      string

	panelOffsetX int
	controls     controlPanel
	snap         arena.Snapshot
	standings    arena.Result
}

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

type standingsProvider interface {
	Winners() arena.Result
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width, title: buildTitle(sim)}
	h.controls = newControlPanel(sim, width, controlsTop())
	return h
}

func controlsTop() int {
	return panelPadding + headerBaseline + sectionGap + infoRows*textLineHeight + sectionGap
}

// Update refreshes cached state from the snapshot and handles clicks on the
// parameter buttons.
func (h *HUD) Update(panelOffsetX int, snap arena.Snapshot) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.snap = snap
	if provider, ok := h.sim.(parameterProvider); ok {
		h.controls.refresh(provider.Parameters())
	}
	if snap.Result != nil {
		h.standings = *snap.Result
	} else if provider, ok := h.sim.(standingsProvider); ok && snap.Info.State != core.StateReady {
		h.standings = provider.Winners()
	} else {
		h.standings = arena.Result{}
	}

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	h.controls.click(mx-h.panelOffsetX, my)
}

// Draw paints the HUD panel anchored to the right edge of the arena view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, textHeader)
	y += sectionGap
	for _, line := range infoLines(h.snap.Info) {
		y += textLineHeight
		h.drawLine(line, y)
	}

	h.drawControls()
	y = controlsTop() + h.controls.height() + sectionGap

	y = h.drawSection("Events", eventLines(h.snap.Events, h.snap.Cells, arena.EventLogCapacity), y)
	if len(h.standings.Winners) > 0 || h.snap.Result != nil {
		header := "Standings"
		if h.snap.Result != nil {
			header = "Winners"
		}
		h.drawSection(header, winnerLines(h.standings), y+sectionGap)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Arena"
	}
	name := sim.Name()
	return fmt.Sprintf("%s%s Arena", strings.ToUpper(name[:1]), name[1:])
}

func (h *HUD) maxChars() int {
	return (h.width - 2*panelPadding) / basicfont.Face7x13.Advance
}

func (h *HUD) drawLine(line hudLine, baseline int) {
	text.Draw(h.panel, truncate(line.Text, h.maxChars()), basicfont.Face7x13, panelPadding, baseline, line.Color)
}

func (h *HUD) drawSection(title string, lines []hudLine, y int) int {
	y += textLineHeight
	text.Draw(h.panel, title, basicfont.Face7x13, panelPadding, y, textHeader)
	if len(lines) == 0 {
		y += textLineHeight
		h.drawLine(hudLine{Text: "--", Color: textMuted}, y)
		return y
	}
	for _, line := range lines {
		y += textLineHeight
		h.drawLine(line, y)
	}
	return y
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	for i := range h.controls.controls {
		state := &h.controls.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, textPrimary)
		valueColor := textPrimary
		if !state.hasValue {
			valueColor = textMuted
		}
		bounds := text.BoundString(face, state.value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, state.value, face, valueX, labelY, valueColor)

		h.drawButton(state.minusRect, "-", h.controls.canAdjust(state, -1))
		h.drawButton(state.plusRect, "+", h.controls.canAdjust(state, 1))
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	vector.DrawFilledRect(h.panel, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bg, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}
