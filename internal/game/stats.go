package game

import (
	"fmt"
	"sort"
	"strings"
)

// MatchStats accumulates counters over one match. Restarts is the only
// field that survives a restart.
type MatchStats struct {
	Ticks            int // frames played this match
	Spawned          int
	Collected        map[FireflyColor]int
	CollectedByPeer  map[Peer]int
	PointsByPeer     map[Peer]int
	Unclaimed        int // collected fireflies whose target no player held
	PeakPopulation   int
	DroppedParticles int // ambient spawns refused for lack of a slot

	Won      bool
	Winner   Peer
	WinTicks int

	Restarts int
}

// NewMatchStats creates zeroed counters.
func NewMatchStats() *MatchStats {
	ms := &MatchStats{}
	ms.resetMatch()
	return ms
}

func (ms *MatchStats) resetMatch() {
	restarts := ms.Restarts
	*ms = MatchStats{
		Collected:       make(map[FireflyColor]int),
		CollectedByPeer: make(map[Peer]int),
		PointsByPeer:    make(map[Peer]int),
		Restarts:        restarts,
	}
}

func (ms *MatchStats) recordCollect(peer Peer, f *Firefly) {
	ms.Collected[f.Color()]++
	ms.CollectedByPeer[peer]++
	ms.PointsByPeer[peer] += f.Points()
}

func (ms *MatchStats) recordWin(peer Peer, ticks int) {
	ms.Won = true
	ms.Winner = peer
	ms.WinTicks = ticks
}

func (ms *MatchStats) observePopulation(n int) {
	ms.PeakPopulation = max(ms.PeakPopulation, n)
}

// TotalCollected returns the number of scored fireflies.
func (ms *MatchStats) TotalCollected() int {
	n := 0
	for _, c := range ms.Collected {
		n += c
	}
	return n
}

// ClaimRate returns the fraction of goal arrivals that scored.
func (ms *MatchStats) ClaimRate() float64 {
	total := ms.TotalCollected() + ms.Unclaimed
	if total == 0 {
		return 0
	}
	return float64(ms.TotalCollected()) / float64(total)
}

// Format returns a short multi-line report of the match.
func (ms *MatchStats) Format() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "ticks=%d spawned=%d peak=%d collected=%d unclaimed=%d claim=%.0f%% dropped_particles=%d\n",
		ms.Ticks, ms.Spawned, ms.PeakPopulation, ms.TotalCollected(), ms.Unclaimed,
		ms.ClaimRate()*100, ms.DroppedParticles)

	sb.WriteString("by colour: ")
	for c := SoftRed; c < fireflyColorCount; c++ {
		fmt.Fprintf(&sb, "%s=%d ", c, ms.Collected[c])
	}
	sb.WriteByte('\n')

	peers := make([]Peer, 0, len(ms.PointsByPeer))
	for p := range ms.PointsByPeer {
		peers = append(peers, p)
	}
	sort.Slice(peers, func(i, j int) bool { return peers[i] < peers[j] })
	for _, p := range peers {
		fmt.Fprintf(&sb, "%s: points=%d collected=%d\n", peerLabel(p), ms.PointsByPeer[p], ms.CollectedByPeer[p])
	}

	if ms.Won {
		fmt.Fprintf(&sb, "winner=%s after %d ticks\n", peerLabel(ms.Winner), ms.WinTicks)
	} else {
		sb.WriteString("winner=none\n")
	}
	return sb.String()
}
