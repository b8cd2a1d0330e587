package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"flower-snake/ai"
	"flower-snake/config"
	"flower-snake/game"
	"flower-snake/input"

	"golang.org/x/exp/rand"
)

// reportEvery is how often (in episodes) training progress is logged
const reportEvery = 50

// TrainingReport summarises a training run
type TrainingReport struct {
	Episodes     int
	BestScore    int
	AverageScore float64
	MedianScore  float64
	BestLevel    int
	States       int
}

// Train plays cfg.Training.Episodes headless games with a learning
// autopilot spread over cfg.Training.Workers engines. Each episode steps
// its engine directly and is cut off after MaxSteps ticks. A cancelled
// context stops between ticks and returns the report so far along with the
// context error.
func Train(ctx context.Context, cfg config.Config, log *slog.Logger) (TrainingReport, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	agent := ai.NewAgent(rand.New(rand.NewSource(seed + 1)))
	pool := NewAgentPool(cfg.Training.Workers, seed, agent, discardBelowWarn(log))
	stats := NewGameStats()

	err := pool.Run(ctx, cfg.Training.Episodes, cfg.Training.MaxSteps, func(s game.Snapshot, steps int) {
		if n := stats.AddGame(s.Score, s.Level, steps); n%reportEvery == 0 {
			log.Info("training progress",
				"episode", n,
				"avg", stats.GetAverageScore(),
				"best", stats.GetMaxScore(),
				"epsilon", agent.Epsilon(),
				"states", agent.States(),
			)
		}
	})
	if err != nil {
		return reportFrom(stats, agent), fmt.Errorf("train: %w", err)
	}
	return reportFrom(stats, agent), nil
}

func reportFrom(stats *GameStats, agent *ai.Agent) TrainingReport {
	return TrainingReport{
		Episodes:     stats.GamesPlayed(),
		BestScore:    stats.GetMaxScore(),
		AverageScore: stats.GetAverageScore(),
		MedianScore:  stats.GetMedianScore(),
		BestLevel:    stats.GetMaxLevel(),
		States:       agent.States(),
	}
}

func playEpisode(ctx context.Context, engine *game.Engine, pilot *ai.Pilot, maxSteps int) (game.Snapshot, int, error) {
	s := engine.Snapshot()
	steps := 0
	for ; steps < maxSteps && !s.Over; steps++ {
		if err := ctx.Err(); err != nil {
			return s, steps, err
		}
		input.Apply(engine, pilot.Before(s))
		res := engine.Step()
		pilot.After(res)
		s = res.Snapshot
	}
	return s, steps, nil
}

// discardBelowWarn keeps per-game engine logs out of training output
func discardBelowWarn(log *slog.Logger) *slog.Logger {
	return slog.New(levelFilter{Handler: log.Handler(), min: slog.LevelWarn})
}

type levelFilter struct {
	slog.Handler
	min slog.Level
}

func (f levelFilter) Enabled(ctx context.Context, l slog.Level) bool {
	return l >= f.min && f.Handler.Enabled(ctx, l)
}

func (f levelFilter) WithAttrs(attrs []slog.Attr) slog.Handler {
	return levelFilter{Handler: f.Handler.WithAttrs(attrs), min: f.min}
}

func (f levelFilter) WithGroup(name string) slog.Handler {
	return levelFilter{Handler: f.Handler.WithGroup(name), min: f.min}
}
