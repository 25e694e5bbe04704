package game

import (
	"fmt"
	"strings"
)

// SimLog categories.
const (
	LogSpawn     = "spawn"
	LogCollect   = "collect"
	LogUnclaimed = "unclaimed"
	LogWin       = "win"
	LogRestart   = "restart"
	LogLight     = "light"
	LogAttract   = "attract"
)

// SimLogEntry is one recorded simulation event.
type SimLogEntry struct {
	Tick     int
	Actor    string  // "P0", "F12", or "--" for global events
	Category string  // spawn, collect, unclaimed, win, restart, light, attract
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] P0   collect   soft-red        F7 +1 -> 3
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[T=%03d] %-4s %-9s %-15s %s",
		e.Tick, e.Actor, e.Category, e.Key, e.Value)
}

// SimLog collects structured events. Unlike EventLog (HUD ring buffer),
// SimLog is unbounded and machine-readable.
type SimLog struct {
	entries []SimLogEntry
	verbose bool
}

// NewSimLog creates a SimLog. If verbose is true, every firefly attraction
// gained or lost is recorded too.
func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose}
}

// Add records a new entry.
func (sl *SimLog) Add(tick int, actor, category, key, value string, numVal float64) {
	sl.entries = append(sl.entries, SimLogEntry{
		Tick:     tick,
		Actor:    actor,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (sl *SimLog) AddVerbose(tick int, actor, category, key, value string, numVal float64) {
	if !sl.verbose {
		return
	}
	sl.Add(tick, actor, category, key, value, numVal)
}

// Entries returns all recorded entries.
func (sl *SimLog) Entries() []SimLogEntry {
	return sl.entries
}

// Reset drops every entry.
func (sl *SimLog) Reset() {
	sl.entries = sl.entries[:0]
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (sl *SimLog) Filter(category, key string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterActor returns entries for a specific actor label.
func (sl *SimLog) FilterActor(label string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if e.Actor == label {
			out = append(out, e)
		}
	}
	return out
}

// FilterTickRange returns entries within [fromTick, toTick] inclusive.
func (sl *SimLog) FilterTickRange(fromTick, toTick int) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if e.Tick >= fromTick && e.Tick <= toTick {
			out = append(out, e)
		}
	}
	return out
}

// CountCategory returns how many entries match the given category and key.
func (sl *SimLog) CountCategory(category, key string) int {
	return len(sl.Filter(category, key))
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (sl *SimLog) LastOf(category, key string) (SimLogEntry, bool) {
	entries := sl.Filter(category, key)
	if len(entries) == 0 {
		return SimLogEntry{}, false
	}
	return entries[len(entries)-1], true
}

// HasEntry returns true if at least one entry matches category, key, and value substring.
func (sl *SimLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		if valueSubstr != "" && !strings.Contains(e.Value, valueSubstr) {
			continue
		}
		return true
	}
	return false
}

// Format returns the full log as a single string for t.Log output.
func (sl *SimLog) Format() string {
	var sb strings.Builder
	for _, e := range sl.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FormatRange returns a log string filtered to a tick range.
func (sl *SimLog) FormatRange(fromTick, toTick int) string {
	var sb strings.Builder
	for _, e := range sl.FilterTickRange(fromTick, toTick) {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Summary returns a short human-readable summary of the match state.
func (sl *SimLog) Summary(tick int, players []*Player, flock *Flock) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- Summary at T=%03d ---\n", tick)

	for _, p := range players {
		light := "off"
		if p.Color() != ColorNone {
			light = p.Color().String()
		}
		pos := p.Position()
		fmt.Fprintf(&sb, "%s points=%d light=%s at (%d,%d)\n",
			peerLabel(p.Peer()), p.Points(), light, pos.X, pos.Y)
	}

	byColor := map[FireflyColor]int{}
	attracted := 0
	for _, f := range flock.Fireflies() {
		byColor[f.Color()]++
		if _, ok := f.AttractedTo(); ok {
			attracted++
		}
	}
	fmt.Fprintf(&sb, "Fireflies: %d (attracted=%d) ", flock.Len(), attracted)
	for c := SoftRed; c < fireflyColorCount; c++ {
		if n := byColor[c]; n > 0 {
			fmt.Fprintf(&sb, "%s=%d  ", c, n)
		}
	}
	sb.WriteByte('\n')

	fmt.Fprintf(&sb, "Collected: %d  unclaimed: %d\n",
		sl.CountCategory(LogCollect, ""), sl.CountCategory(LogUnclaimed, ""))
	return sb.String()
}

func peerLabel(p Peer) string { return fmt.Sprintf("P%d", p) }

func fireflyLabel(f *Firefly) string { return fmt.Sprintf("F%d", f.ID) }
