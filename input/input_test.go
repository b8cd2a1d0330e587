package input

import (
	"io"
	"log/slog"
	"testing"

	"flower-snake/game"
	"flower-snake/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTarget struct {
	directions []types.Direction
	restarts   int
}

func (f *fakeTarget) SetDirection(d types.Direction) {
	f.directions = append(f.directions, d)
}

func (f *fakeTarget) Restart() bool {
	f.restarts++
	return true
}

func TestClassifySwipe(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		want   Swipe
	}{
		{"right", 80, 10, Swipe{Direction: types.Right}},
		{"left", -45, 20, Swipe{Direction: types.Left}},
		{"down", 5, 31, Swipe{Direction: types.Down}},
		{"up", -12, -60, Swipe{Direction: types.Up}},
		{"tie goes vertical", 40, -40, Swipe{Direction: types.Up}},
		{"exactly threshold", 30, 0, Swipe{Direction: types.Right}},
		{"below threshold", 29, -29, Swipe{Trivial: true}},
		{"tap", 0, 0, Swipe{Trivial: true}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifySwipe(tc.dx, tc.dy))
		})
	}
}

func TestSwipeCommand(t *testing.T) {
	trivial := Swipe{Trivial: true}
	left := Swipe{Direction: types.Left}

	assert.Equal(t, Restart(), SwipeCommand(trivial, true))
	assert.Equal(t, Command{}, SwipeCommand(trivial, false))
	assert.Equal(t, Turn(types.Left), SwipeCommand(left, false))
	assert.Equal(t, Turn(types.Left), SwipeCommand(left, true))
}

func TestSwipeTracker(t *testing.T) {
	var st SwipeTracker

	_, ok := st.End(10, 10)
	assert.False(t, ok, "end without begin")

	st.Begin(100, 100)
	require.True(t, st.Active())
	s, ok := st.End(100, 160)
	require.True(t, ok)
	assert.Equal(t, types.Down, s.Direction)
	assert.False(t, st.Active())

	st.Begin(0, 0)
	st.Cancel()
	_, ok = st.End(90, 0)
	assert.False(t, ok)
}

func TestApply(t *testing.T) {
	target := &fakeTarget{}

	assert.False(t, Apply(target, Turn(types.Up)))
	assert.False(t, Apply(target, Restart()))
	assert.False(t, Apply(target, Command{}))
	assert.True(t, Apply(target, Quit()))

	assert.Equal(t, []types.Direction{types.Up}, target.directions)
	assert.Equal(t, 1, target.restarts)
}

func TestTrivialSwipeRestartsFinishedEngine(t *testing.T) {
	e := game.NewEngine(game.WithSeed(2), game.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	e.Init()

	// Run straight into the right wall.
	for e.State() == game.Running {
		e.Step()
	}
	first := e.Snapshot()

	Apply(e, SwipeCommand(ClassifySwipe(3, 4), e.State() == game.Over))

	assert.Equal(t, game.Running, e.State())
	assert.NotEqual(t, first.SessionID, e.Snapshot().SessionID)

	// While running, the same tap changes nothing.
	before := e.Snapshot()
	Apply(e, SwipeCommand(ClassifySwipe(3, 4), e.State() == game.Over))
	assert.Equal(t, before, e.Snapshot())
}
