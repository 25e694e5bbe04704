package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lampygame/lampy/internal/game"
)

var errUsage = errors.New("usage")

func main() {
	err := run(os.Args[1:])
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
	case errors.Is(err, errUsage):
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	default:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run opens the window and plays until it is closed. It returns instead of
// exiting so the logger is always flushed.
func run(args []string) error {
	var envFile string
	var peers int
	var seed int64
	var bot bool
	var verbose bool
	var mute bool

	fs := flag.NewFlagSet("lampy", flag.ContinueOnError)
	fs.StringVar(&envFile, "env", ".env", "optional dotenv file with LAMPY_* settings")
	fs.IntVar(&peers, "players", 1, "players including the keyboard (extra players use gamepads)")
	fs.Int64Var(&seed, "seed", 0, "RNG seed (0 keeps the configured seed)")
	fs.BoolVar(&bot, "bot", false, "start with the keyboard player on autopilot")
	fs.BoolVar(&verbose, "verbose", false, "record per-firefly attraction changes")
	fs.BoolVar(&mute, "mute", false, "disable sound")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := game.LoadConfig(envFile)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if peers < 1 || peers > 4 {
		return fmt.Errorf("%w: -players must be between 1 and 4", errUsage)
	}

	logger, err := game.NewLogger(cfg.LogFile, cfg.Debug)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	opts := game.GameOptions{
		Config:  cfg,
		Peers:   peers,
		Logger:  logger,
		Bot:     bot,
		Verbose: verbose,
	}
	if !mute {
		opts.Sound = game.NewChimePlayer()
	}
	g := game.New(opts)
	logger.Infow("starting", "players", peers, "seed", cfg.Seed, "bot", bot)

	ebiten.SetWindowTitle("Lampy")
	ebiten.SetWindowSize(g.WindowSize())
	if err := ebiten.RunGame(g); err != nil {
		logger.Errorw("game exited", "error", err)
		return err
	}
	return nil
}
