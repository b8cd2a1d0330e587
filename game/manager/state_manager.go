package manager

import (
	"time"

	"flower-snake/game/types"
)

// StateManager tracks score and level progression for one game
type StateManager struct {
	score         int
	level         int
	fruitsInLevel int
	speed         time.Duration
}

func NewStateManager() *StateManager {
	sm := &StateManager{}
	sm.Reset()
	return sm
}

// SpeedForLevel returns the tick period for level, floored at MinGameSpeed
func SpeedForLevel(level int) time.Duration {
	speed := types.InitialGameSpeed - time.Duration(level-1)*types.SpeedIncreasePerLevel
	if speed < types.MinGameSpeed {
		return types.MinGameSpeed
	}
	return speed
}

func (sm *StateManager) Reset() {
	sm.score = 0
	sm.level = 1
	sm.fruitsInLevel = 0
	sm.speed = types.InitialGameSpeed
}

// RecordFruit scores one flower and reports whether it completed the level
func (sm *StateManager) RecordFruit() bool {
	sm.score++
	sm.fruitsInLevel++
	if sm.fruitsInLevel < types.FruitsPerLevel {
		return false
	}
	sm.levelUp()
	return true
}

func (sm *StateManager) levelUp() {
	sm.level++
	sm.fruitsInLevel = 0
	sm.speed = SpeedForLevel(sm.level)
}

func (sm *StateManager) GetScore() int {
	return sm.score
}

func (sm *StateManager) GetLevel() int {
	return sm.level
}

func (sm *StateManager) GetFruitsInLevel() int {
	return sm.fruitsInLevel
}

func (sm *StateManager) GetSpeed() time.Duration {
	return sm.speed
}
