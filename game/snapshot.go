package game

import (
	"time"

	"flower-snake/game/types"
)

// State is the lifecycle state of an engine
type State int

const (
	Running State = iota
	Over
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "over"
}

// Snapshot is a read-only copy of the engine state for presentation.
// Mutating it never affects the engine.
type Snapshot struct {
	SessionID     string
	Grid          types.Grid
	Snake         []types.Point // Head first
	Food          types.Food
	HasFood       bool // False once the snake fills the board
	Direction     types.Direction
	Score         int
	Level         int
	FruitsInLevel int
	Speed         time.Duration
	Over          bool
}

// Head returns the head position, or false for an empty snapshot
func (s Snapshot) Head() (types.Point, bool) {
	if len(s.Snake) == 0 {
		return types.Point{}, false
	}
	return s.Snake[0], true
}

// StepResult describes what a single tick did
type StepResult struct {
	Snapshot  Snapshot
	Moved     bool
	Ate       bool
	LeveledUp bool
	Collision types.CollisionType
}
