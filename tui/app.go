package tui

import (
	"context"
	"log/slog"

	"flower-snake/ai"
	"flower-snake/game"
	"flower-snake/input"

	"github.com/gdamore/tcell/v2"
)

type runOptions struct {
	pilot *ai.Pilot
	log   *slog.Logger
}

// RunOption configures Run
type RunOption func(*runOptions)

// WithPilot lets an autopilot choose the direction before every tick.
// Keys still work, so the player can restart or quit.
func WithPilot(p *ai.Pilot) RunOption {
	return func(o *runOptions) {
		o.pilot = p
	}
}

// WithLogger sets the logger for loop diagnostics
func WithLogger(log *slog.Logger) RunOption {
	return func(o *runOptions) {
		o.log = log
	}
}

// Run starts a game on engine and drives it until the player quits, the
// context is cancelled or the screen stops delivering events. Steps happen
// when ticks fires; the engine's scheduler owns that channel's period.
// The caller owns the screen and finalises it after Run returns.
func Run(ctx context.Context, screen tcell.Screen, engine *game.Engine, ticks <-chan struct{}, opts ...RunOption) error {
	o := runOptions{log: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	r := NewRenderer(screen)
	r.Draw(engine.Init())

	for {
		select {
		case <-ctx.Done():
			o.log.Debug("terminal loop cancelled", "err", ctx.Err())
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if input.Apply(engine, KeyCommand(ev)) {
					o.log.Debug("quit requested")
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}
			r.Draw(engine.Snapshot())

		case <-ticks:
			if o.pilot != nil {
				input.Apply(engine, o.pilot.Before(engine.Snapshot()))
			}
			res := engine.Step()
			if o.pilot != nil {
				o.pilot.After(res)
			}
			r.Draw(res.Snapshot)
		}
	}
}
