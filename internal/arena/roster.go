package arena

import (
	"errors"
	"fmt"
	"strings"

	"cell-arena/internal/core"
)

var (
	// ErrTooFewParticipants is returned when a run would start with fewer
	// than two participants.
	ErrTooFewParticipants = errors.New("arena: at least 2 participants are required")
	// ErrInvalidTarget is returned when the survivor target is not between 1
	// and the participant count minus one.
	ErrInvalidTarget = errors.New("arena: invalid target survivor count")
)

// DefaultRoster returns the built-in participant list.
func DefaultRoster() []core.Participant {
	return []core.Participant{
		{ID: "bonah.fide", Name: "유지우"},
		{ID: "claire.hk", Name: "김희경"},
		{ID: "emma.kang", Name: "강경임"},
		{ID: "genie.lamp", Name: "심진희"},
		{ID: "izzy.so", Name: "송현경"},
		{ID: "jadey.yoon", Name: "이지윤"},
		{ID: "jully.lee", Name: "이정은"},
		{ID: "karel.kang", Name: "강기곤"},
		{ID: "kent.coach", Name: "장한일"},
		{ID: "kimberly.lim", Name: "임수연"},
		{ID: "kuma.mon", Name: "고슬기"},
		{ID: "luci.dor", Name: "김연희"},
		{ID: "maddison.ko", Name: "고명석"},
		{ID: "miya.0", Name: "이다솜"},
		{ID: "nathan.kwon", Name: "권성원"},
		{ID: "noah.se", Name: "신송은"},
		{ID: "tomtom.s", Name: "신은영"},
		{ID: "william.lim", Name: "임원국"},
		{ID: "zo.7", Name: "지영은"},
	}
}

// ValidateStart checks a roster and target before a run is started.
func ValidateStart(roster []core.Participant, target int) error {
	if len(roster) < 2 {
		return fmt.Errorf("%w: got %d", ErrTooFewParticipants, len(roster))
	}
	if target < 1 || target >= len(roster) {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidTarget, target, len(roster)-1)
	}
	return nil
}

// SelectRoster filters the default roster by participant ID. An empty
// selection returns the whole roster; unknown IDs become ad-hoc entrants
// named after their ID.
func SelectRoster(ids []string) []core.Participant {
	all := DefaultRoster()
	if len(ids) == 0 {
		return all
	}
	byID := make(map[string]core.Participant, len(all))
	for _, p := range all {
		byID[p.ID] = p
	}
	out := make([]core.Participant, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if p, ok := byID[id]; ok {
			out = append(out, p)
			continue
		}
		out = append(out, core.Participant{ID: id, Name: id})
	}
	return out
}
