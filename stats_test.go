package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameStatsExactBeforeCompression(t *testing.T) {
	s := NewGameStats()
	for _, score := range []int{4, 1, 9, 2} {
		s.AddGame(score, 1, score*10)
	}

	assert.Equal(t, 4, s.GamesPlayed())
	assert.Equal(t, 9, s.GetMaxScore())
	assert.InDelta(t, 4.0, s.GetAverageScore(), 1e-9)
	assert.InDelta(t, 3.0, s.GetMedianScore(), 1e-9)
	assert.Len(t, s.Records(), 4)
}

func TestGameStatsCompressesFullGroups(t *testing.T) {
	s := NewGameStats()
	for i := 0; i < 2*GroupSize+50; i++ {
		s.AddGame(i, 1+i/100, 5)
	}

	records := s.Records()
	require.Len(t, records, 52)

	grouped := 0
	for _, r := range records {
		if r.CompressionIndex == 1 {
			grouped++
			assert.Equal(t, GroupSize, r.GamesCount)
			assert.InDelta(t, 5.0, r.AverageSteps, 1e-9)
		}
	}
	assert.Equal(t, 2, grouped)

	assert.Equal(t, 250, s.GamesPlayed())
	assert.Equal(t, 249, s.GetMaxScore())
	assert.Equal(t, 3, s.GetMaxLevel())
	assert.InDelta(t, 124.5, s.GetAverageScore(), 1e-9)
}

func TestGameStatsEmpty(t *testing.T) {
	s := NewGameStats()
	assert.Zero(t, s.GamesPlayed())
	assert.Zero(t, s.GetAverageScore())
	assert.Zero(t, s.GetMedianScore())
	assert.Zero(t, s.GetMaxScore())
}
