package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flower-snake/ai"
	"flower-snake/config"
	"flower-snake/game"
	"flower-snake/game/clock"
	"flower-snake/input"
	"flower-snake/tui"
	"flower-snake/ui"

	"github.com/gdamore/tcell/v2"
	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/exp/rand"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	// The terminal frontend draws on the tty, so it only logs to a file
	stderr := io.Writer(os.Stderr)
	if cfg.Frontend == config.FrontendTerminal {
		stderr = io.Discard
	}
	log, closeLog, err := newLogger(cfg.Log, stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cfg.Frontend {
	case config.FrontendTrain:
		report, err := Train(ctx, cfg, log)
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		log.Info("training finished",
			"episodes", report.Episodes,
			"best_score", report.BestScore,
			"average_score", report.AverageScore,
			"median_score", report.MedianScore,
			"best_level", report.BestLevel,
			"states", report.States,
		)
		return nil
	case config.FrontendTerminal:
		return runTerminal(ctx, cfg, log)
	default:
		return runWindow(ctx, cfg, log)
	}
}

// loadConfig reads -config and applies the flags that were explicitly set
func loadConfig(args []string) (config.Config, error) {
	fs := flag.NewFlagSet("flower-snake", flag.ContinueOnError)
	path := fs.String("config", "", "Path to a YAML config file")
	frontend := fs.String("frontend", config.FrontendWindow, "Frontend: window, terminal or train")
	seed := fs.Uint64("seed", 0, "Random seed (0 = time based)")
	autopilot := fs.Bool("autopilot", false, "Let the Q-learning agent play")
	episodes := fs.Int("episodes", 0, "Training episodes")
	if err := fs.Parse(args); err != nil {
		return config.Config{}, err
	}

	cfg, err := config.Load(*path)
	if err != nil {
		return config.Config{}, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "frontend":
			cfg.Frontend = *frontend
		case "seed":
			cfg.Seed = *seed
		case "autopilot":
			cfg.Autopilot = *autopilot
		case "episodes":
			cfg.Training.Episodes = *episodes
		}
	})
	return cfg, cfg.Validate()
}

// newLogger builds the slog logger described by lc. Logs go to lc.File when
// set and to fallback otherwise.
func newLogger(lc config.LogConfig, fallback io.Writer) (*slog.Logger, func(), error) {
	level, err := lc.SlogLevel()
	if err != nil {
		return nil, nil, err
	}

	w, closeFn := fallback, func() {}
	if lc.File != "" {
		f, err := os.OpenFile(lc.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("log: open %s: %w", lc.File, err)
		}
		w, closeFn = f, func() { _ = f.Close() }
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if lc.Format == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h), closeFn, nil
}

func newPilot(cfg config.Config, seed uint64) *ai.Pilot {
	if !cfg.Autopilot {
		return nil
	}
	agent := ai.NewAgent(rand.New(rand.NewSource(seed + 1)))
	return ai.NewPilot(agent, true)
}

func seedOf(cfg config.Config) uint64 {
	if cfg.Seed != 0 {
		return cfg.Seed
	}
	return uint64(time.Now().UnixNano())
}

func runTerminal(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: init: %w", err)
	}
	defer screen.Fini()

	sched := clock.NewTickerScheduler()
	defer sched.Close()

	seed := seedOf(cfg)
	engine := game.NewEngine(game.WithScheduler(sched), game.WithSeed(seed), game.WithLogger(log))

	var opts []tui.RunOption
	opts = append(opts, tui.WithLogger(log))
	if p := newPilot(cfg, seed); p != nil {
		opts = append(opts, tui.WithPilot(p))
	}
	return tui.Run(ctx, screen, engine, sched.C(), opts...)
}

func runWindow(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	defer rl.CloseWindow()

	rl.SetWindowState(rl.FlagWindowResizable)
	rl.SetExitKey(0) // Escape is handled by the poller
	rl.SetTargetFPS(int32(cfg.Window.FPS))

	renderer, err := ui.NewRenderer()
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}

	sched := clock.NewFrameScheduler(nil)
	seed := seedOf(cfg)
	engine := game.NewEngine(game.WithScheduler(sched), game.WithSeed(seed), game.WithLogger(log))
	poller := ui.NewInputPoller()
	pilot := newPilot(cfg, seed)

	s := engine.Init()
	for !rl.WindowShouldClose() && ctx.Err() == nil {
		for _, cmd := range poller.Poll(renderer.Layout(), s.Over) {
			if input.Apply(engine, cmd) {
				return nil
			}
		}

		if sched.Due() {
			if pilot != nil {
				input.Apply(engine, pilot.Before(engine.Snapshot()))
			}
			res := engine.Step()
			if pilot != nil {
				pilot.After(res)
			}
		}

		s = engine.Snapshot()
		renderer.Draw(s)
	}
	return nil
}
