package main

import (
	"context"
	"log/slog"

	"flower-snake/ai"
	"flower-snake/game"

	"golang.org/x/sync/errgroup"
)

// AgentPool runs several engines at once, each with its own pilot, all
// learning into one shared table
type AgentPool struct {
	shared  *ai.Agent
	workers []*poolWorker
}

type poolWorker struct {
	engine *game.Engine
	pilot  *ai.Pilot
}

// NewAgentPool creates n workers. Worker i seeds its engine with seed+i so
// a single worker pool reproduces a sequential run.
func NewAgentPool(n int, seed uint64, shared *ai.Agent, log *slog.Logger) *AgentPool {
	p := &AgentPool{
		shared:  shared,
		workers: make([]*poolWorker, max(n, 1)),
	}
	for i := range p.workers {
		p.workers[i] = &poolWorker{
			engine: game.NewEngine(game.WithSeed(seed+uint64(i)), game.WithLogger(log.With("worker", i))),
			pilot:  ai.NewPilot(shared, true),
		}
	}
	return p
}

func (p *AgentPool) Agent() *ai.Agent {
	return p.shared
}

func (p *AgentPool) Size() int {
	return len(p.workers)
}

// Run plays episodes games across the workers, calling done after each
// finished game. done may be called from several goroutines at once. The
// first error cancels the remaining workers.
func (p *AgentPool) Run(ctx context.Context, episodes, maxSteps int, done func(game.Snapshot, int)) error {
	jobs := make(chan int)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(jobs)
		for i := 0; i < episodes; i++ {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for _, w := range p.workers {
		w := w
		g.Go(func() error {
			for range jobs {
				w.engine.Init()
				s, steps, err := playEpisode(ctx, w.engine, w.pilot, maxSteps)
				if err != nil {
					return err
				}
				if !s.Over {
					// Cut off by the step cap; still counts as a finished game.
					p.shared.EndEpisode()
				}
				done(s, steps)
			}
			return nil
		})
	}

	return g.Wait()
}
