package ai

import (
	"io"
	"log/slog"
	"sync"
	"testing"

	"flower-snake/game"
	"flower-snake/game/types"
	"flower-snake/input"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func snapshotAt(snake []types.Point, dir types.Direction, food types.Point) game.Snapshot {
	return game.Snapshot{
		Grid:      types.DefaultGrid(),
		Snake:     snake,
		Direction: dir,
		Food:      types.Food{Pos: food},
	}
}

func TestObserve(t *testing.T) {
	s := snapshotAt(
		[]types.Point{{X: 0, Y: 5}, {X: 1, Y: 5}, {X: 2, Y: 5}},
		types.Left,
		types.Point{X: 3, Y: 2},
	)

	st := Observe(s)

	assert.Equal(t, [2]int{1, -1}, st.FoodDir)
	assert.Equal(t, 6, st.FoodDistance)
	assert.Equal(t, types.Left, st.Heading)
	// up, right (body), down, left (wall)
	assert.Equal(t, [4]bool{false, true, false, true}, st.Danger)
	assert.True(t, st.DangerAt(types.Left))
	assert.False(t, st.DangerAt(types.None))
}

func TestObserveEmptySnapshot(t *testing.T) {
	assert.Equal(t, State{}, Observe(game.Snapshot{}))
}

func TestActNeverReverses(t *testing.T) {
	a := NewAgent(rand.New(rand.NewSource(9)))
	a.SetEpsilon(1)

	seen := map[types.Direction]bool{}
	for i := 0; i < 300; i++ {
		d := a.Act(State{Heading: types.Right})
		require.NotEqual(t, types.Left, d)
		seen[d] = true
	}
	assert.Len(t, seen, 3, "exploration covers every legal move")
}

func TestGreedyPrefersSafeMoveWhenUntrained(t *testing.T) {
	a := NewAgent(nil)
	a.SetEpsilon(0)

	st := State{Heading: types.Right, Danger: [4]bool{true, true, false, false}}
	assert.Equal(t, types.Down, a.Act(st))
}

func TestReward(t *testing.T) {
	near := State{FoodDistance: 3}
	far := State{FoodDistance: 5}

	assert.Equal(t, RewardDeath, Reward(near, near, game.StepResult{Collision: types.WallCollision}))
	assert.Equal(t, RewardFood, Reward(near, near, game.StepResult{Moved: true, Ate: true}))
	assert.Equal(t, RewardCloser, Reward(far, near, game.StepResult{Moved: true}))
	assert.Equal(t, RewardFarther, Reward(near, far, game.StepResult{Moved: true}))
	assert.Zero(t, Reward(near, near, game.StepResult{Moved: true}))
}

func TestLearnUpdatesTable(t *testing.T) {
	a := NewAgent(nil)
	a.SetEpsilon(0)
	st := State{Heading: types.Up, FoodDistance: 2}
	next := State{Heading: types.Right, FoodDistance: 1}

	r := a.Learn(st, types.Right, next, game.StepResult{Moved: true, Ate: true})
	assert.Equal(t, RewardFood, r)
	assert.InDelta(t, 0.1, a.Value(st, types.Right), 1e-9)

	dead := game.StepResult{Collision: types.SelfCollision, Snapshot: game.Snapshot{Over: true}}
	a.Learn(st, types.Left, next, dead)
	assert.InDelta(t, -0.1, a.Value(st, types.Left), 1e-9)

	assert.Equal(t, types.Right, a.Act(st))
	assert.Equal(t, 2, a.States())
	assert.InDelta(t, 0.0, a.TotalReward(), 1e-9)
}

func TestLearnIgnoresInvalidAction(t *testing.T) {
	a := NewAgent(nil)
	assert.Zero(t, a.Learn(State{}, types.None, State{}, game.StepResult{Ate: true}))
	assert.Zero(t, a.States())
}

func TestEndEpisodeDecaysEpsilon(t *testing.T) {
	a := NewAgent(nil)
	a.EndEpisode()
	assert.Equal(t, 1, a.GamesPlayed())
	assert.InDelta(t, 0.0995, a.Epsilon(), 1e-9)

	a.SetEpsilon(a.MinEpsilon)
	a.EndEpisode()
	assert.Equal(t, a.MinEpsilon, a.Epsilon())
}

func TestAgentSharedAcrossGoroutines(t *testing.T) {
	a := NewAgent(rand.New(rand.NewSource(3)))
	st := State{Heading: types.Up, FoodDistance: 2}
	next := State{Heading: types.Up, FoodDistance: 1}

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				a.Learn(st, a.Act(st), next, game.StepResult{Moved: true})
				a.EndEpisode()
				_ = a.GamesPlayed()
				_ = a.TotalReward()
				_ = a.Epsilon()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 200, a.GamesPlayed())
	assert.InDelta(t, 200*RewardCloser, a.TotalReward(), 1e-9)
	assert.GreaterOrEqual(t, a.Epsilon(), a.MinEpsilon)
}

func TestPilotPlaysOneEpisode(t *testing.T) {
	e := game.NewEngine(game.WithSeed(5), game.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	e.Init()
	a := NewAgent(rand.New(rand.NewSource(5)))
	a.SetEpsilon(1)
	p := NewPilot(a, true)

	for steps := 0; e.State() == game.Running && steps < 10000; steps++ {
		cmd := p.Before(e.Snapshot())
		require.Equal(t, input.ActionTurn, cmd.Action)
		input.Apply(e, cmd)
		p.After(e.Step())
	}

	require.Equal(t, game.Over, e.State())
	assert.Equal(t, 1, p.Agent().GamesPlayed())
	assert.Positive(t, p.Agent().States())

	assert.Equal(t, input.Command{}, p.Before(e.Snapshot()), "pilot leaves restarting to the player")
}

func TestPilotWithoutLearning(t *testing.T) {
	a := NewAgent(nil)
	p := NewPilot(a, false)
	s := snapshotAt([]types.Point{{X: 5, Y: 5}, {X: 4, Y: 5}}, types.Right, types.Point{X: 9, Y: 5})

	p.Before(s)
	p.After(game.StepResult{Moved: true, Snapshot: s})
	assert.Zero(t, a.States())
}
