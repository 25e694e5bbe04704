package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lampygame/lampy/internal/game"
)

type runStats struct {
	runIndex int
	seed     int64
	bots     int

	won        bool
	winner     string
	winTick    int // -1 when nobody won
	winPoints  int
	firstScore int // tick of the first collection, -1 if none

	spawned     int
	collected   map[game.FireflyColor]int
	unclaimed   int
	peak        int
	dropped     int
	lightToggle int

	windowSummary *game.WindowReport
}

func main() {
	var runs int
	var ticks int
	var bots int
	var seedBase int64
	var seedStep int64
	var envFile string
	var verbose bool

	flag.IntVar(&runs, "runs", 5, "number of headless matches")
	flag.IntVar(&ticks, "ticks", 7200, "tick limit per match")
	flag.IntVar(&bots, "bots", 1, "autopilot players per match")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&envFile, "env", "", "optional dotenv file with LAMPY_* tuning")
	flag.BoolVar(&verbose, "verbose", false, "print each run's event log")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}
	if bots <= 0 || bots > 4 {
		fmt.Println("error: -bots must be between 1 and 4")
		return
	}
	cfg, err := game.LoadConfig(envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("=== Headless Match Report ===\n")
	fmt.Printf("runs=%d ticks=%d bots=%d seed_base=%d seed_step=%d win_points=%d\n\n",
		runs, ticks, bots, seedBase, seedStep, cfg.WinPoints)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		rs := runMatch(i+1, seed, ticks, bots, cfg, verbose)
		all = append(all, rs)
		printRun(rs)
	}
	printAggregate(all)
}

func runMatch(runIndex int, seed int64, ticks, bots int, base game.Config, verbose bool) runStats {
	opts := []game.SimOption{
		game.WithSeed(seed),
		// The harness switches spawning off; matches need the configured rate.
		game.WithTuning(func(c *game.Config) {
			*c = base
			c.Seed = seed
		}),
		game.WithVerbose(verbose),
	}
	for b := 0; b < bots; b++ {
		opts = append(opts, game.WithBot(game.Peer(b)))
	}
	ts := game.NewTestSim(opts...)
	reporter := game.NewSimReporter(0)

	ts.RunUntil(func(ts *game.TestSim) bool {
		if ts.CurrentTick()%60 == 0 {
			reporter.Collect(ts.Sim)
		}
		return ts.Sim.Phase() == game.PhaseGameOver
	}, ticks)
	reporter.Collect(ts.Sim)

	if verbose {
		fmt.Print(ts.SimLog.Format())
	}

	st := ts.Sim.Stats()
	rs := runStats{
		runIndex:      runIndex,
		seed:          seed,
		bots:          bots,
		won:           st.Won,
		winTick:       -1,
		firstScore:    firstTick(ts.SimLog.Entries(), game.LogCollect),
		spawned:       st.Spawned,
		collected:     make(map[game.FireflyColor]int),
		unclaimed:     st.Unclaimed,
		peak:          st.PeakPopulation,
		dropped:       st.DroppedParticles,
		lightToggle:   ts.SimLog.CountCategory(game.LogLight, ""),
		windowSummary: reporter.WindowSummary(),
	}
	for c, n := range st.Collected {
		rs.collected[c] = n
	}
	if st.Won {
		rs.winTick = st.WinTicks
		rs.winner = fmt.Sprintf("P%d", st.Winner)
	}
	if e, ok := ts.SimLog.LastOf(game.LogWin, "win"); ok {
		rs.winPoints = int(e.NumVal)
	}
	return rs
}

func firstTick(entries []game.SimLogEntry, category string) int {
	for _, e := range entries {
		if e.Category == category {
			return e.Tick
		}
	}
	return -1
}

func totalCollected(rs runStats) int {
	n := 0
	for _, c := range rs.collected {
		n += c
	}
	return n
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	if rs.won {
		fmt.Printf("result: %s won at tick %d with %d points\n", rs.winner, rs.winTick, rs.winPoints)
	} else {
		fmt.Printf("result: no winner\n")
	}
	fmt.Printf("markers: first_score=%d\n", rs.firstScore)
	fmt.Printf("totals: spawned=%d collected=%d unclaimed=%d peak_population=%d dropped_particles=%d light_toggles=%d\n",
		rs.spawned, totalCollected(rs), rs.unclaimed, rs.peak, rs.dropped, rs.lightToggle)
	fmt.Printf("by_colour:")
	for _, c := range game.FireflyColors() {
		fmt.Printf(" %s=%d", c, rs.collected[c])
	}
	fmt.Println()
	if rs.windowSummary != nil {
		fmt.Print(rs.windowSummary.Format())
	}
	fmt.Println()
}

func printAggregate(all []runStats) {
	wins := 0
	winTicks := make([]int, 0, len(all))
	scoreTicks := make([]int, 0, len(all))
	totalSpawned := 0
	totalUnclaimed := 0
	totalDropped := 0
	byColour := map[game.FireflyColor]int{}

	for _, rs := range all {
		if rs.won {
			wins++
			winTicks = append(winTicks, rs.winTick)
		}
		if rs.firstScore >= 0 {
			scoreTicks = append(scoreTicks, rs.firstScore)
		}
		totalSpawned += rs.spawned
		totalUnclaimed += rs.unclaimed
		totalDropped += rs.dropped
		for c, n := range rs.collected {
			byColour[c] += n
		}
	}

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d wins=%d win_rate=%.0f%%\n", len(all), wins, pct(wins, len(all)))
	fmt.Printf("avg_ticks: to_win=%s first_score=%s\n", avgTickString(winTicks), avgTickString(scoreTicks))
	fmt.Printf("avg_per_run: spawned=%.1f unclaimed=%.1f dropped_particles=%.1f\n",
		avg(totalSpawned, len(all)), avg(totalUnclaimed, len(all)), avg(totalDropped, len(all)))
	fmt.Printf("avg_collected_per_run:")
	for _, c := range game.FireflyColors() {
		fmt.Printf(" %s=%.1f", c, avg(byColour[c], len(all)))
	}
	fmt.Println()
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func pct(part, whole int) float64 {
	return avg(part, whole) * 100
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}
