package arena

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

// TimeBasedSeed is reported in place of an empty seed.
const TimeBasedSeed = "time-based"

var csvHeader = []string{"rank", "id", "name", "radius", "seed", "finishedAt"}

// WriteWinnersCSV writes one row per winner, ranked in result order.
func WriteWinnersCSV(w io.Writer, res Result, seed string, finishedAt time.Time) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	stamp := finishedAt.Format(time.RFC3339)
	for i, win := range res.Winners {
		row := []string{
			strconv.Itoa(i + 1),
			win.ParticipantID,
			win.Name,
			strconv.FormatFloat(win.Radius, 'f', -1, 64),
			seedLabel(seed),
			stamp,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// WinnersFilename returns the conventional export name for a run finished
// at t.
func WinnersFilename(t time.Time) string {
	return fmt.Sprintf("winners-%s.csv", t.UTC().Format("2006-01-02T15-04-05"))
}
