package manager

import (
	"testing"
	"time"

	"flower-snake/game/entity"
	"flower-snake/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestCollisionManagerCheck(t *testing.T) {
	cm := NewCollisionManager(types.DefaultGrid())
	snake := entity.NewSnake(4, 0)

	tests := []struct {
		name string
		pos  types.Point
		want types.CollisionType
	}{
		{"free cell", types.Point{X: 4, Y: 0}, types.NoCollision},
		{"right wall", types.Point{X: 20, Y: 0}, types.WallCollision},
		{"left wall", types.Point{X: -1, Y: 3}, types.WallCollision},
		{"top wall", types.Point{X: 5, Y: -1}, types.WallCollision},
		{"bottom wall", types.Point{X: 5, Y: 20}, types.WallCollision},
		{"body", types.Point{X: 2, Y: 0}, types.SelfCollision},
		{"tail still counts", types.Point{X: 0, Y: 0}, types.SelfCollision},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, cm.Check(tc.pos, snake))
		})
	}
}

func TestGenerateFoodNeverOnSnake(t *testing.T) {
	fm := NewFoodManager(types.DefaultGrid(), newRand(7))
	snake := entity.NewSnake(4, 0)

	for i := 0; i < 500; i++ {
		food, ok := fm.GenerateFood(snake)
		require.True(t, ok)
		assert.False(t, snake.Occupies(food.Pos))
		assert.True(t, types.DefaultGrid().Contains(food.Pos))
		assert.Contains(t, types.Flowers[:], food.Flower)
	}
}

func TestGenerateFoodNearlyFullBoard(t *testing.T) {
	grid := types.DefaultGrid()
	fm := NewFoodManager(grid, newRand(3))

	// Cover every cell except (13, 17).
	free := types.Point{X: 13, Y: 17}
	snake := &entity.Snake{}
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			if p := (types.Point{X: x, Y: y}); p != free {
				snake.Body = append(snake.Body, p)
			}
		}
	}

	food, ok := fm.GenerateFood(snake)
	require.True(t, ok)
	assert.Equal(t, free, food.Pos)
}

func TestGenerateFoodFullBoard(t *testing.T) {
	grid := types.Grid{Width: 2, Height: 2}
	fm := NewFoodManager(grid, newRand(1))
	snake := &entity.Snake{Body: []types.Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}}

	_, ok := fm.GenerateFood(snake)
	assert.False(t, ok)
}

func TestGenerateFoodIsDeterministicPerSeed(t *testing.T) {
	snake := entity.NewSnake(4, 0)
	a := NewFoodManager(types.DefaultGrid(), newRand(42))
	b := NewFoodManager(types.DefaultGrid(), newRand(42))

	for i := 0; i < 20; i++ {
		fa, _ := a.GenerateFood(snake)
		fb, _ := b.GenerateFood(snake)
		assert.Equal(t, fa, fb)
	}
}

func TestSpeedForLevel(t *testing.T) {
	tests := []struct {
		level int
		want  time.Duration
	}{
		{1, 200 * time.Millisecond},
		{2, 180 * time.Millisecond},
		{5, 120 * time.Millisecond},
		{8, 60 * time.Millisecond},
		{9, 50 * time.Millisecond},
		{10, 50 * time.Millisecond},
		{40, 50 * time.Millisecond},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, SpeedForLevel(tc.level), "level %d", tc.level)
	}
}

func TestRecordFruitLevelsUpOncePerTen(t *testing.T) {
	sm := NewStateManager()

	for i := 1; i < types.FruitsPerLevel; i++ {
		assert.False(t, sm.RecordFruit())
	}
	assert.Equal(t, 1, sm.GetLevel())
	assert.Equal(t, 9, sm.GetFruitsInLevel())

	assert.True(t, sm.RecordFruit())
	assert.Equal(t, 2, sm.GetLevel())
	assert.Equal(t, 0, sm.GetFruitsInLevel())
	assert.Equal(t, 10, sm.GetScore())
	assert.Equal(t, 180*time.Millisecond, sm.GetSpeed())

	sm.Reset()
	assert.Equal(t, 0, sm.GetScore())
	assert.Equal(t, 1, sm.GetLevel())
	assert.Equal(t, types.InitialGameSpeed, sm.GetSpeed())
}
