//go:build !ebiten

package app

import (
	"fmt"
	"log/slog"

	"cell-arena/internal/arena"
	"cell-arena/internal/core"
)

// HUDWidth is the width of the panel to the right of the arena.
const HUDWidth = 280

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct{}

// New panics to indicate that the ebiten build tag is required for GUI support.
func New(*arena.Engine, []core.Participant, int, *slog.Logger) *Game {
	panic("app.New requires building with the 'ebiten' tag")
}

// SetExportDir is a no-op placeholder.
func (g *Game) SetExportDir(string) {}

// Start is a no-op placeholder.
func (g *Game) Start(string) {}

// Update always reports that the GUI build tag is missing.
func (g *Game) Update() error {
	return fmt.Errorf("app.Game.Update requires building with the 'ebiten' tag")
}

// Draw is a no-op placeholder to satisfy the interface shape.
func (g *Game) Draw(any) {}

// Layout returns zeros in the headless build.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
