package arena

import "time"

// EventLogCapacity bounds the event log; older entries are dropped.
const EventLogCapacity = 10

// EventKind classifies log entries for display.
type EventKind string

const (
	EventKill   EventKind = "kill"
	EventItem   EventKind = "item"
	EventRevive EventKind = "revive"
	EventWinner EventKind = "winner"
)

// Event is one human-readable log line with enough structure for a HUD to
// colour or filter it. ActorID and TargetID are cell IDs, zero when unused.
type Event struct {
	Kind     EventKind
	Message  string
	At       time.Duration
	ActorID  int
	TargetID int
	Method   string
	Value    float64
}

// EventLog keeps the most recent events, newest first. It is for display
// only and cannot reconstruct a run.
type EventLog struct {
	entries []Event
}

// Add prepends e, discarding the oldest entry beyond capacity.
func (l *EventLog) Add(e Event) Event {
	if len(l.entries) < EventLogCapacity {
		l.entries = append(l.entries, Event{})
	}
	copy(l.entries[1:], l.entries[:len(l.entries)-1])
	l.entries[0] = e
	return e
}

// Entries returns a copy of the log, newest first.
func (l *EventLog) Entries() []Event {
	out := make([]Event, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of retained events.
func (l *EventLog) Len() int { return len(l.entries) }

// Clear drops every entry.
func (l *EventLog) Clear() { l.entries = l.entries[:0] }
