package arena

import (
	"strings"
	"testing"
	"time"
)

func TestWriteWinnersCSV(t *testing.T) {
	res := Result{
		Type: ResultTimeLimit,
		Winners: []CellView{
			{ParticipantID: "zo.7", Name: "지영은", Radius: 38},
			{ParticipantID: "kent.coach", Name: "Kent, Coach", Radius: 24.5},
		},
	}
	finished := time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC)

	var b strings.Builder
	if err := WriteWinnersCSV(&b, res, "", finished); err != nil {
		t.Fatalf("WriteWinnersCSV: %v", err)
	}
	want := "rank,id,name,radius,seed,finishedAt\n" +
		"1,zo.7,지영은,38,time-based,2025-03-01T12:30:00Z\n" +
		"2,kent.coach,\"Kent, Coach\",24.5,time-based,2025-03-01T12:30:00Z\n"
	if b.String() != want {
		t.Fatalf("unexpected csv:\n%s\nwant:\n%s", b.String(), want)
	}
}

func TestWriteWinnersCSVUsesSeed(t *testing.T) {
	res := Result{Winners: []CellView{{ParticipantID: "a", Name: "A", Radius: 14}}}
	var b strings.Builder
	if err := WriteWinnersCSV(&b, res, "abc", time.Unix(0, 0).UTC()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(b.String(), ",abc,") {
		t.Fatalf("expected seed column, got %q", b.String())
	}
}

func TestWinnersFilename(t *testing.T) {
	got := WinnersFilename(time.Date(2025, 3, 1, 12, 30, 5, 0, time.UTC))
	if got != "winners-2025-03-01T12-30-05.csv" {
		t.Fatalf("unexpected filename %q", got)
	}
}
