package ai

import (
	"flower-snake/game"
	"flower-snake/game/types"
)

// State is what the agent sees of a snapshot
type State struct {
	FoodDir      [2]int  // Sign of the food offset from the head (x, y)
	FoodDistance int     // Manhattan distance from head to food
	Danger       [4]bool // Next cell is fatal, indexed like types.Directions
	Heading      types.Direction
}

// Observe reduces a snapshot to the agent's view of it. The tail counts as
// an obstacle since the engine tests collisions against the whole body.
func Observe(s game.Snapshot) State {
	head, ok := s.Head()
	if !ok {
		return State{}
	}

	st := State{
		FoodDir:      [2]int{sign(s.Food.Pos.X - head.X), sign(s.Food.Pos.Y - head.Y)},
		FoodDistance: manhattan(head, s.Food.Pos),
		Heading:      s.Direction,
	}

	body := make(map[types.Point]struct{}, len(s.Snake))
	for _, p := range s.Snake {
		body[p] = struct{}{}
	}
	for i, d := range types.Directions {
		next := head.Add(d.Delta())
		if !s.Grid.Contains(next) {
			st.Danger[i] = true
			continue
		}
		_, hit := body[next]
		st.Danger[i] = hit
	}
	return st
}

// DangerAt reports the danger flag for d
func (s State) DangerAt(d types.Direction) bool {
	i := directionIndex(d)
	if i < 0 {
		return false
	}
	return s.Danger[i]
}

func directionIndex(d types.Direction) int {
	for i, dir := range types.Directions {
		if dir == d {
			return i
		}
	}
	return -1
}

func manhattan(a, b types.Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
