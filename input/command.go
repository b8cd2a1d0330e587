// Package input turns raw player gestures into engine commands.
//
// Frontends map their own key and pointer events onto Commands; Apply
// delivers a Command to the engine so every frontend shares the same
// restart behaviour.
package input

import (
	"flower-snake/game/types"
)

// Action is what a command asks the engine to do
type Action int

const (
	ActionNone Action = iota
	ActionTurn
	ActionRestart
	ActionQuit
)

// Command is a single discrete request produced by an input source
type Command struct {
	Action    Action
	Direction types.Direction
}

func Turn(d types.Direction) Command {
	return Command{Action: ActionTurn, Direction: d}
}

func Restart() Command {
	return Command{Action: ActionRestart}
}

func Quit() Command {
	return Command{Action: ActionQuit}
}

// Target is the engine surface commands are delivered to
type Target interface {
	SetDirection(d types.Direction)
	Restart() bool
}

// Apply delivers cmd to t and reports whether the caller should quit
func Apply(t Target, cmd Command) (quit bool) {
	switch cmd.Action {
	case ActionTurn:
		t.SetDirection(cmd.Direction)
	case ActionRestart:
		t.Restart()
	case ActionQuit:
		return true
	}
	return false
}
