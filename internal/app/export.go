package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"cell-arena/internal/arena"
)

// ErrNoWinners is returned when there is nobody to export.
var ErrNoWinners = errors.New("no winners to export")

type standingsSource interface {
	Winners() arena.Result
	Info() arena.Info
}

// ExportWinners writes the standings of src to a timestamped CSV in dir and
// returns its path. Before the run ends the current leaders are exported.
func ExportWinners(dir string, src standingsSource, at time.Time) (string, error) {
	res := src.Winners()
	if len(res.Winners) == 0 {
		return "", ErrNoWinners
	}
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, arena.WinnersFilename(at))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("export winners: %w", err)
	}
	if err := arena.WriteWinnersCSV(f, res, src.Info().Seed, at); err != nil {
		f.Close()
		return "", fmt.Errorf("export winners: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("export winners: %w", err)
	}
	return path, nil
}
