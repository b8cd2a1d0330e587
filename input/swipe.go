package input

import (
	"math"

	"flower-snake/game/types"
)

// MinSwipe is the displacement the dominant axis must reach for a gesture
// to count as a directional swipe
const MinSwipe = 30

// Swipe is a classified touch or drag gesture
type Swipe struct {
	Direction types.Direction
	Trivial   bool // Both axes below MinSwipe
}

// ClassifySwipe compares horizontal and vertical displacement. Ties go to
// the vertical axis.
func ClassifySwipe(dx, dy float64) Swipe {
	ax, ay := math.Abs(dx), math.Abs(dy)
	if ax < MinSwipe && ay < MinSwipe {
		return Swipe{Trivial: true}
	}

	if ax > ay {
		if dx > 0 {
			return Swipe{Direction: types.Right}
		}
		return Swipe{Direction: types.Left}
	}
	if dy > 0 {
		return Swipe{Direction: types.Down}
	}
	return Swipe{Direction: types.Up}
}

// SwipeCommand maps a swipe onto a command. A trivial gesture restarts a
// finished game and is otherwise ignored.
func SwipeCommand(s Swipe, over bool) Command {
	if s.Trivial {
		if over {
			return Restart()
		}
		return Command{}
	}
	return Turn(s.Direction)
}

// SwipeTracker pairs the start and end of a touch
type SwipeTracker struct {
	startX, startY float64
	active         bool
}

func (st *SwipeTracker) Begin(x, y float64) {
	st.startX, st.startY = x, y
	st.active = true
}

// Active reports whether a gesture is in progress
func (st *SwipeTracker) Active() bool {
	return st.active
}

// End closes the gesture, returning false when no Begin preceded it
func (st *SwipeTracker) End(x, y float64) (Swipe, bool) {
	if !st.active {
		return Swipe{}, false
	}
	st.active = false
	return ClassifySwipe(x-st.startX, y-st.startY), true
}

// Cancel drops a gesture in progress
func (st *SwipeTracker) Cancel() {
	st.active = false
}
