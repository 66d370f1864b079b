//go:build ebiten

package app

import (
	"log/slog"
	"strconv"
	"time"

	"cell-arena/internal/arena"
	"cell-arena/internal/core"
	"cell-arena/internal/render"
	"cell-arena/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the width of the panel to the right of the arena.
const HUDWidth = 280

// Game adapts an arena engine to the ebiten.Game interface.
type Game struct {
	eng     *arena.Engine
	painter *render.ArenaPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	logger  *slog.Logger

	roster    []core.Participant
	seed      string
	scale     int
	exportDir string
	snap      arena.Snapshot
}

// New constructs a Game for the provided engine. The run starts when the
// player presses Enter.
func New(eng *arena.Engine, roster []core.Participant, scale int, logger *slog.Logger) *Game {
	if scale <= 0 {
		scale = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	cfg := eng.Config()
	return &Game{
		eng:       eng,
		painter:   render.NewArenaPainter(cfg, scale),
		hud:       ui.NewHUD(eng, HUDWidth),
		overlay:   ui.NewOverlay(cfg, scale),
		logger:    logger,
		roster:    roster,
		seed:      cfg.Seed,
		scale:     scale,
		exportDir: ".",
		snap:      eng.Snapshot(),
	}
}

// SetExportDir changes where E writes winner CSVs.
func (g *Game) SetExportDir(dir string) { g.exportDir = dir }

// Start begins a run with the given seed.
func (g *Game) Start(seed string) {
	g.seed = seed
	g.eng.Start(g.roster, g.eng.Config().TargetCount, seed)
}

// Reseed stops the current run and starts another with a fresh seed.
func (g *Game) Reseed() {
	g.eng.Stop()
	g.Start(strconv.FormatInt(time.Now().UnixNano(), 36))
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && g.eng.State() != core.StateRunning && g.eng.State() != core.StatePaused {
		g.Start(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.eng.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.eng.Restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reseed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.export()
	}

	if g.overlay != nil {
		g.overlay.Update()
	}

	g.eng.Tick()
	g.snap = g.eng.Snapshot()
	if g.hud != nil {
		g.hud.Update(g.arenaWidth(), g.snap)
	}
	return nil
}

func (g *Game) export() {
	path, err := ExportWinners(g.exportDir, g.eng, time.Now())
	if err != nil {
		g.logger.Warn("export skipped", "err", err)
		return
	}
	g.logger.Info("winners exported", "path", path)
}

// Draw renders the current arena state.
func (g *Game) Draw(screen *ebiten.Image) {
	now := g.eng.Clock().Now()
	g.painter.Draw(screen, g.snap, now)
	if g.overlay != nil {
		g.overlay.Draw(screen, g.snap)
	}
	if g.hud != nil {
		g.hud.Draw(screen, g.arenaWidth(), g.scale)
	}
}

func (g *Game) arenaWidth() int {
	return g.eng.Size().W * g.scale
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.eng.Size()
	return s.W*g.scale + HUDWidth, s.H * g.scale
}
