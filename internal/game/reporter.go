package game

import (
	"fmt"
	"sort"
	"strings"
)

// reportWindowTicks is the default sliding window for recent-behaviour reports (~10s at 60TPS).
const reportWindowTicks = 600

// --- Snapshot types ---

// PlayerReport captures a single player's state.
type PlayerReport struct {
	Peer      Peer
	Position  Point
	Light     FireflyColor
	Points    int
	Followers int // fireflies chasing this player's target
}

// SimReport is a snapshot of the match at one tick.
type SimReport struct {
	Tick int

	Population int
	Attracted  int
	Wandering  int
	ByColor    map[FireflyColor]int

	AmbientActive int
	TrailActive   int

	Players []PlayerReport
}

// --- Reporter ---

// SimReporter collects periodic reports from a match and can produce
// summaries over sliding time windows.
type SimReporter struct {
	history     []SimReport
	windowTicks int
}

// NewSimReporter creates a reporter with the given window size.
func NewSimReporter(windowTicks int) *SimReporter {
	if windowTicks <= 0 {
		windowTicks = reportWindowTicks
	}
	return &SimReporter{windowTicks: windowTicks}
}

// Collect gathers a snapshot from the current match state.
// Call this periodically (e.g. every 60 ticks / 1s).
func (r *SimReporter) Collect(s *Sim) {
	report := SimReport{
		Tick:          s.Tick(),
		ByColor:       make(map[FireflyColor]int),
		AmbientActive: s.Ambient().Count(),
	}

	followers := make(map[Point]int)
	for _, f := range s.Flock().Fireflies() {
		report.Population++
		report.ByColor[f.Color()]++
		report.TrailActive += f.Particles().Count()
		if target, ok := f.AttractedTo(); ok {
			report.Attracted++
			followers[target]++
		} else {
			report.Wandering++
		}
	}

	for _, p := range s.Players() {
		report.Players = append(report.Players, PlayerReport{
			Peer:      p.Peer(),
			Position:  p.Position(),
			Light:     p.Color(),
			Points:    p.Points(),
			Followers: followers[p.AttractionTarget()],
		})
	}

	r.history = append(r.history, report)

	// Prune old history beyond 2x window to prevent unbounded growth.
	maxKeep := max(100, r.windowTicks/60*2)
	if len(r.history) > maxKeep {
		r.history = r.history[len(r.history)-maxKeep:]
	}
}

// Latest returns the most recent report, or nil if none collected yet.
func (r *SimReporter) Latest() *SimReport {
	if len(r.history) == 0 {
		return nil
	}
	return &r.history[len(r.history)-1]
}

// History returns all retained reports.
func (r *SimReporter) History() []SimReport {
	return r.history
}

// Reset drops the history, e.g. after a restart.
func (r *SimReporter) Reset() {
	r.history = r.history[:0]
}

// WindowReport is an aggregated summary over a time window.
type WindowReport struct {
	FromTick, ToTick int
	SampleCount      int

	AvgPopulation float64
	AvgAttracted  float64
	AttractedPct  float64 // share of the population chasing a light
	AvgAmbient    float64
	ColorPct      map[FireflyColor]float64

	LightOnPct   map[Peer]float64 // share of samples with the light on
	PointsGained map[Peer]int
}

// WindowSummary averages the reports within the window ending at the latest
// sample.
func (r *SimReporter) WindowSummary() *WindowReport {
	if len(r.history) == 0 {
		return nil
	}

	latestTick := r.history[len(r.history)-1].Tick
	cutoff := latestTick - r.windowTicks
	var window []SimReport
	for i := len(r.history) - 1; i >= 0; i-- {
		if r.history[i].Tick < cutoff {
			break
		}
		window = append(window, r.history[i])
	}

	n := float64(len(window))
	oldest, newest := window[len(window)-1], window[0]
	wr := &WindowReport{
		FromTick:     oldest.Tick,
		ToTick:       newest.Tick,
		SampleCount:  len(window),
		ColorPct:     make(map[FireflyColor]float64),
		LightOnPct:   make(map[Peer]float64),
		PointsGained: make(map[Peer]int),
	}

	colorTotal := make(map[FireflyColor]float64)
	var population float64
	for _, rpt := range window {
		wr.AvgPopulation += float64(rpt.Population)
		wr.AvgAttracted += float64(rpt.Attracted)
		wr.AvgAmbient += float64(rpt.AmbientActive)
		for c, k := range rpt.ByColor {
			colorTotal[c] += float64(k)
			population += float64(k)
		}
		for _, p := range rpt.Players {
			if p.Light != ColorNone {
				wr.LightOnPct[p.Peer]++
			}
		}
	}

	if population > 0 {
		for c, k := range colorTotal {
			wr.ColorPct[c] = k / population * 100
		}
	}
	if wr.AvgPopulation > 0 {
		wr.AttractedPct = wr.AvgAttracted / wr.AvgPopulation * 100
	}
	wr.AvgPopulation /= n
	wr.AvgAttracted /= n
	wr.AvgAmbient /= n
	for p, k := range wr.LightOnPct {
		wr.LightOnPct[p] = k / n * 100
	}

	start := make(map[Peer]int, len(oldest.Players))
	for _, p := range oldest.Players {
		start[p.Peer] = p.Points
	}
	for _, p := range newest.Players {
		wr.PointsGained[p.Peer] = p.Points - start[p.Peer]
	}
	return wr
}

// Format returns a human-readable multi-line string of the window summary.
func (wr *WindowReport) Format() string {
	if wr == nil {
		return "No data collected yet.\n"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "=== Flock Report (T=%d..%d, %d samples) ===\n",
		wr.FromTick, wr.ToTick, wr.SampleCount)

	sb.WriteString("\n--- Population ---\n")
	fmt.Fprintf(&sb, "  avg fireflies=%.1f  attracted=%.1f (%.0f%%)  ambient particles=%.1f\n",
		wr.AvgPopulation, wr.AvgAttracted, wr.AttractedPct, wr.AvgAmbient)
	for c := SoftRed; c < fireflyColorCount; c++ {
		if pct, ok := wr.ColorPct[c]; ok && pct > 0.5 {
			fmt.Fprintf(&sb, "  %-16s %5.1f%%\n", c, pct)
		}
	}

	sb.WriteString("\n--- Players ---\n")
	peers := make([]Peer, 0, len(wr.PointsGained))
	for p := range wr.PointsGained {
		peers = append(peers, p)
	}
	sort.Slice(peers, func(i, j int) bool { return peers[i] < peers[j] })
	for _, p := range peers {
		fmt.Fprintf(&sb, "  %s: +%d points  light on %.0f%%\n", peerLabel(p), wr.PointsGained[p], wr.LightOnPct[p])
	}
	return sb.String()
}

// FormatLatest returns a concise snapshot of the most recent collected report.
func (r *SimReporter) FormatLatest() string {
	rpt := r.Latest()
	if rpt == nil {
		return "No data.\n"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- Snapshot T=%d ---\n", rpt.Tick)
	fmt.Fprintf(&sb, "Fireflies: %d attracted=%d wandering=%d  particles: ambient=%d trails=%d\n",
		rpt.Population, rpt.Attracted, rpt.Wandering, rpt.AmbientActive, rpt.TrailActive)
	for _, p := range rpt.Players {
		fmt.Fprintf(&sb, "%s: points=%d light=%s followers=%d at (%d,%d)\n",
			peerLabel(p.Peer), p.Points, p.Light, p.Followers, p.Position.X, p.Position.Y)
	}
	return sb.String()
}

// MatchReport combines the match counters with the latest snapshot. The
// window frontend copies it to the clipboard; the headless tool prints it.
func MatchReport(s *Sim, r *SimReporter) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Lampy match report (seed %d, tick %d, %s)\n", s.Config().Seed, s.Tick(), s.Phase())
	sb.WriteString(s.Stats().Format())
	if r != nil {
		sb.WriteString(r.FormatLatest())
		sb.WriteString(r.WindowSummary().Format())
	}
	return sb.String()
}
