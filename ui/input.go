package ui

import (
	"flower-snake/game/types"
	"flower-snake/input"
	"flower-snake/ui/layout"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var turnKeys = []struct {
	key int32
	dir types.Direction
}{
	{rl.KeyUp, types.Up},
	{rl.KeyW, types.Up},
	{rl.KeyRight, types.Right},
	{rl.KeyD, types.Right},
	{rl.KeyDown, types.Down},
	{rl.KeyS, types.Down},
	{rl.KeyLeft, types.Left},
	{rl.KeyA, types.Left},
}

// InputPoller reads keyboard, button and drag input once per frame
type InputPoller struct {
	swipe input.SwipeTracker
}

func NewInputPoller() *InputPoller {
	return &InputPoller{}
}

// Poll returns the commands produced since the previous frame. over tells
// the poller whether a tap should restart.
func (p *InputPoller) Poll(l layout.Layout, over bool) []input.Command {
	var cmds []input.Command

	for _, k := range turnKeys {
		if rl.IsKeyPressed(k.key) {
			cmds = append(cmds, input.Turn(k.dir))
		}
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		cmds = append(cmds, input.Restart())
	}
	if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
		cmds = append(cmds, input.Quit())
	}

	pos := rl.GetMousePosition()
	x, y := int(pos.X), int(pos.Y)

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		if d, ok := l.ButtonAt(x, y); ok {
			p.swipe.Cancel()
			cmds = append(cmds, input.Turn(d))
		} else if l.OnBoard(x, y) {
			p.swipe.Begin(float64(pos.X), float64(pos.Y))
		}
	}
	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		if s, ok := p.swipe.End(float64(pos.X), float64(pos.Y)); ok {
			if cmd := input.SwipeCommand(s, over); cmd.Action != input.ActionNone {
				cmds = append(cmds, cmd)
			}
		}
	}

	return cmds
}
