package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lampygame/lampy/internal/game"
	"github.com/lampygame/lampy/internal/tui"
)

func main() {
	if err := run(os.Args[1:], tcell.NewScreen); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run plays one terminal session. It returns instead of exiting so the
// logger and speaker are always flushed and closed.
func run(args []string, newScreen func() (tcell.Screen, error)) error {
	var envFile string
	var seed int64
	var bot bool
	var mute bool

	fs := flag.NewFlagSet("lampy-tui", flag.ContinueOnError)
	fs.StringVar(&envFile, "env", ".env", "optional dotenv file with LAMPY_* settings")
	fs.Int64Var(&seed, "seed", 0, "RNG seed (0 keeps the configured seed)")
	fs.BoolVar(&bot, "bot", false, "start on autopilot")
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

	logger, err := game.NewLogger(cfg.LogFile, cfg.Debug)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	opts := tui.Options{Config: cfg, Logger: logger, Bot: bot}
	if !mute {
		spk, err := tui.NewSpeaker()
		if err != nil {
			// Non-fatal: the terminal game runs silent.
			logger.Warnw("continuing without audio", "error", err)
		} else {
			defer spk.Close()
			opts.Sound = spk
		}
	}

	screen, err := newScreen()
	if err != nil {
		logger.Errorw("no terminal screen", "error", err)
		return fmt.Errorf("screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		logger.Errorw("terminal init failed", "error", err)
		return fmt.Errorf("screen init: %w", err)
	}

	app := tui.NewApp(screen, opts)
	logger.Infow("starting terminal match", "seed", cfg.Seed, "bot", bot)
	runErr := app.Run()
	screen.Fini()

	fmt.Print(app.Sim().Stats().Format())
	return runErr
}
