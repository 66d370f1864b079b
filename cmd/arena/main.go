//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"cell-arena/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	exportDir := flag.String("export-dir", ".", "directory for winner CSV exports")
	autostart := flag.Bool("autostart", false, "start the run immediately")
	flag.Parse()

	eng, roster, err := cfg.Build(os.Stderr)
	if err != nil {
		log.Fatalf("arena setup: %v", err)
	}

	game := app.New(eng, roster, cfg.Scale, cfg.Logger(os.Stderr))
	game.SetExportDir(*exportDir)
	if *autostart {
		game.Start(eng.Config().Seed)
	}
	size := eng.Size()

	ebiten.SetWindowTitle("cell-arena - " + eng.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+app.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
