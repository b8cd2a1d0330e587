package tui

import (
	"unicode"

	"flower-snake/game/types"
	"flower-snake/input"

	"github.com/gdamore/tcell/v2"
)

// KeyCommand maps a key event onto a command; unbound keys yield an empty
// command
func KeyCommand(ev *tcell.EventKey) input.Command {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.Turn(types.Up)
	case tcell.KeyRight:
		return input.Turn(types.Right)
	case tcell.KeyDown:
		return input.Turn(types.Down)
	case tcell.KeyLeft:
		return input.Turn(types.Left)
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.Quit()
	case tcell.KeyRune:
	default:
		return input.Command{}
	}

	switch unicode.ToLower(ev.Rune()) {
	case 'w', 'k':
		return input.Turn(types.Up)
	case 'd', 'l':
		return input.Turn(types.Right)
	case 's', 'j':
		return input.Turn(types.Down)
	case 'a', 'h':
		return input.Turn(types.Left)
	case ' ':
		return input.Restart()
	case 'q':
		return input.Quit()
	}
	return input.Command{}
}
