package ui

import (
	"fmt"
	"image/color"
	"strconv"
	"time"
	"unicode/utf8"

	"cell-arena/internal/arena"
	"cell-arena/internal/core"
	"cell-arena/internal/render"
)

// hudLine is one row of panel text.
type hudLine struct {
	Text  string
	Color color.RGBA
}

var (
	textPrimary = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	textMuted   = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	textHeader  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	textKill    = color.RGBA{R: 235, G: 110, B: 120, A: 255}
	textItem    = color.RGBA{R: 250, G: 200, B: 80, A: 255}
	textRevive  = color.RGBA{R: 110, G: 210, B: 130, A: 255}
	textWinner  = color.RGBA{R: 255, G: 215, B: 0, A: 255}
)

// infoRows is the number of lines infoLines returns.
const infoRows = 7

// infoLines summarises the run for the top of the panel.
func infoLines(info arena.Info) []hudLine {
	remaining := "--"
	if info.Remaining >= 0 {
		remaining = formatClock(info.Remaining)
	}
	seed := info.Seed
	if seed == "" {
		seed = arena.TimeBasedSeed
	}
	return []hudLine{
		{Text: "state: " + stateLabel(info), Color: textPrimary},
		{Text: fmt.Sprintf("alive: %d / %d", info.Survivors, info.Participants), Color: textPrimary},
		{Text: "target: " + strconv.Itoa(info.Target), Color: textPrimary},
		{Text: "time: " + formatClock(info.Elapsed), Color: textPrimary},
		{Text: "left: " + remaining, Color: textPrimary},
		{Text: "items: " + strconv.Itoa(info.Items), Color: textMuted},
		{Text: "seed: " + seed, Color: textMuted},
	}
}

func stateLabel(info arena.Info) string {
	if info.State == core.StateReady {
		return "ready (enter to start)"
	}
	return info.State.String()
}

// formatClock renders d as mm:ss, truncating sub-second precision.
func formatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// eventLines renders the event log with ASCII names; the panel font has no
// Hangul or arrow glyphs.
func eventLines(events []arena.Event, cells []arena.CellView, max int) []hudLine {
	names := make(map[int]string, len(cells))
	for _, c := range cells {
		names[c.ID] = render.ShortName(c)
	}
	name := func(id int) string {
		if n, ok := names[id]; ok {
			return n
		}
		return "#" + strconv.Itoa(id)
	}

	out := make([]hudLine, 0, len(events))
	for _, e := range events {
		if max > 0 && len(out) == max {
			break
		}
		var line hudLine
		switch e.Kind {
		case arena.EventKill:
			line.Color = textKill
			if e.Method == "mutual" {
				line.Text = fmt.Sprintf("%s <> %s (mutual)", name(e.ActorID), name(e.TargetID))
			} else {
				line.Text = fmt.Sprintf("%s > %s (%s)", name(e.ActorID), name(e.TargetID), e.Method)
			}
		case arena.EventItem:
			line.Color = textItem
			line.Text = fmt.Sprintf("%s got %s", name(e.ActorID), e.Method)
		case arena.EventRevive:
			line.Color = textRevive
			line.Text = "revived: " + name(e.TargetID)
		case arena.EventWinner:
			line.Color = textWinner
			line.Text = asciiOnly(e.Message)
		default:
			line.Color = textMuted
			line.Text = asciiOnly(e.Message)
		}
		out = append(out, line)
	}
	return out
}

// winnerLines lists the final or current standings.
func winnerLines(res arena.Result) []hudLine {
	if len(res.Winners) == 0 {
		return []hudLine{{Text: "no survivors", Color: textMuted}}
	}
	out := make([]hudLine, 0, len(res.Winners))
	for i, w := range res.Winners {
		out = append(out, hudLine{
			Text:  fmt.Sprintf("%d. %s r=%.1f k=%d", i+1, render.ShortName(w), w.Radius, w.Kills),
			Color: textWinner,
		})
	}
	return out
}

// truncate shortens s to at most n runes, marking the cut with "..".
func truncate(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	if n <= 2 {
		return string([]rune(s)[:n])
	}
	return string([]rune(s)[:n-2]) + ".."
}

func asciiOnly(s string) string {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if r < utf8.RuneSelf {
			out = append(out, byte(r))
		} else {
			out = append(out, '?')
		}
	}
	return string(out)
}
