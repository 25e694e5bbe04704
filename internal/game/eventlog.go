package game

import "fmt"

const (
	eventLogMaxEntries = 32
	eventLogLineHeight = 9
	eventLogVisible    = 4
)

// EventEntry is a single line in the event log.
type EventEntry struct {
	Tick    int
	Label   string // e.g. "P0"
	Color   Palette
	Message string
}

// EventLog is a ring buffer of match events shown on the HUD.
type EventLog struct {
	entries []EventEntry
	head    int
	count   int
}

// NewEventLog creates an event log with a fixed capacity.
func NewEventLog() *EventLog {
	return &EventLog{
		entries: make([]EventEntry, eventLogMaxEntries),
	}
}

// Add appends an entry, overwriting the oldest once full.
func (el *EventLog) Add(tick int, label string, color Palette, msg string) {
	el.entries[el.head] = EventEntry{
		Tick:    tick,
		Label:   label,
		Color:   color,
		Message: msg,
	}
	el.head = (el.head + 1) % eventLogMaxEntries
	if el.count < eventLogMaxEntries {
		el.count++
	}
}

// Len returns how many entries are held.
func (el *EventLog) Len() int { return el.count }

// Clear empties the log.
func (el *EventLog) Clear() {
	el.head = 0
	el.count = 0
}

// Recent returns entries in chronological order (oldest first).
func (el *EventLog) Recent() []EventEntry {
	result := make([]EventEntry, el.count)
	for i := 0; i < el.count; i++ {
		idx := (el.head - el.count + i + eventLogMaxEntries) % eventLogMaxEntries
		result[i] = el.entries[idx]
	}
	return result
}

// Draw renders the newest entries bottom-up from the lower left corner of
// the screen.
func (el *EventLog) Draw(canvas Canvas, screen Size) {
	entries := el.Recent()
	start := max(0, len(entries)-eventLogVisible)
	y := screen.H - eventLogLineHeight*(len(entries)-start) - 2
	for _, e := range entries[start:] {
		line := fmt.Sprintf("%s %s", e.Label, e.Message)
		canvas.DrawText(line, Point{X: 3, Y: y}, PaletteBlack)
		canvas.DrawText(line, Point{X: 2, Y: y - 1}, e.Color)
		y += eventLogLineHeight
	}
}
