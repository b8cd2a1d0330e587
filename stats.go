package main

import (
	"sort"
	"sync"
)

// GroupSize is how many records are folded into one once that many
// accumulate at the same compression level
const GroupSize = 100

// GameRecord is one finished game, or a group of games once compressed
type GameRecord struct {
	CompressionIndex int // 0 for a single game
	GamesCount       int
	AverageScore     float64
	MedianScore      float64
	MaxScore         int
	MinScore         int
	MaxLevel         int
	AverageSteps     float64
}

// GameStats keeps bounded in-memory history of finished games
type GameStats struct {
	mu     sync.RWMutex
	games  []GameRecord
	played int
}

func NewGameStats() *GameStats {
	return &GameStats{}
}

// AddGame records a finished game, compresses history as needed and
// returns the number of games recorded so far
func (s *GameStats) AddGame(score, level, steps int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.games = append(s.games, GameRecord{
		GamesCount:   1,
		AverageScore: float64(score),
		MedianScore:  float64(score),
		MaxScore:     score,
		MinScore:     score,
		MaxLevel:     level,
		AverageSteps: float64(steps),
	})
	s.groupGames()
	s.played++
	return s.played
}

// groupGames folds every full run of GroupSize records at one level into
// a single record at the next level. Callers hold mu.
func (s *GameStats) groupGames() {
	for level := 0; ; level++ {
		var current, rest []GameRecord
		for _, g := range s.games {
			if g.CompressionIndex == level {
				current = append(current, g)
			} else {
				rest = append(rest, g)
			}
		}
		if len(current) < GroupSize {
			return
		}

		full := len(current) / GroupSize * GroupSize
		for i := 0; i < full; i += GroupSize {
			rest = append(rest, fold(current[i:i+GroupSize], level+1))
		}
		s.games = append(rest, current[full:]...)
	}
}

func fold(group []GameRecord, index int) GameRecord {
	out := GameRecord{
		CompressionIndex: index,
		MaxScore:         group[0].MaxScore,
		MinScore:         group[0].MinScore,
	}
	var totalScore, totalSteps float64
	medians := make([]float64, 0, len(group))
	for _, g := range group {
		out.GamesCount += g.GamesCount
		out.MaxScore = max(out.MaxScore, g.MaxScore)
		out.MinScore = min(out.MinScore, g.MinScore)
		out.MaxLevel = max(out.MaxLevel, g.MaxLevel)
		totalScore += g.AverageScore * float64(g.GamesCount)
		totalSteps += g.AverageSteps * float64(g.GamesCount)
		for i := 0; i < g.GamesCount; i++ {
			medians = append(medians, g.MedianScore)
		}
	}
	out.AverageScore = totalScore / float64(out.GamesCount)
	out.AverageSteps = totalSteps / float64(out.GamesCount)
	out.MedianScore = median(medians)
	return out
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sort.Float64s(values)
	n := len(values)
	if n%2 == 0 {
		return (values[n/2-1] + values[n/2]) / 2
	}
	return values[n/2]
}

// Records returns a copy of the stored records
func (s *GameStats) Records() []GameRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]GameRecord(nil), s.games...)
}

// GamesPlayed counts every game, compressed or not
func (s *GameStats) GamesPlayed() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.played
}

func (s *GameStats) GetAverageScore() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	var n int
	for _, g := range s.games {
		total += g.AverageScore * float64(g.GamesCount)
		n += g.GamesCount
	}
	if n == 0 {
		return 0
	}
	return total / float64(n)
}

// GetMedianScore is exact until history is compressed, then approximate
func (s *GameStats) GetMedianScore() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var all []float64
	for _, g := range s.games {
		for i := 0; i < g.GamesCount; i++ {
			all = append(all, g.MedianScore)
		}
	}
	return median(all)
}

func (s *GameStats) GetMaxScore() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	best := 0
	for _, g := range s.games {
		best = max(best, g.MaxScore)
	}
	return best
}

func (s *GameStats) GetMaxLevel() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	best := 0
	for _, g := range s.games {
		best = max(best, g.MaxLevel)
	}
	return best
}
