// Package layout computes where the windowed frontend draws things. It is
// pure arithmetic so the input poller and renderer agree on hit areas
// without a window.
package layout

import (
	"flower-snake/game/types"
)

const (
	ScoreBarHeight = 40
	ButtonSize     = 60
	ButtonGap      = 8
	Padding        = 12
)

// controlsHeight is the space reserved below the board for the button cross
const controlsHeight = 3*ButtonSize + 2*ButtonGap + 2*Padding

type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) lies inside r, right and bottom edges
// excluded
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Center returns the midpoint of r
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Layout places the score bar, the board and the four direction buttons
type Layout struct {
	CellSize int
	ScoreBar Rect
	Board    Rect
	Buttons  map[types.Direction]Rect
}

// Compute fits a square grid of gridSize cells into the screen. The cell
// size is floored to a whole pixel and never drops below one.
func Compute(screenW, screenH, gridSize int) Layout {
	if gridSize <= 0 {
		gridSize = types.GridSize
	}

	avail := min(screenW, screenH-ScoreBarHeight-controlsHeight)
	cell := max(avail/gridSize, 1)
	side := cell * gridSize

	l := Layout{
		CellSize: cell,
		ScoreBar: Rect{X: 0, Y: 0, W: screenW, H: ScoreBarHeight},
		Board:    Rect{X: (screenW - side) / 2, Y: ScoreBarHeight, W: side, H: side},
	}

	top := l.Board.Y + l.Board.H + Padding
	cx := screenW / 2
	row := ButtonSize + ButtonGap
	l.Buttons = map[types.Direction]Rect{
		types.Up:    {X: cx - ButtonSize/2, Y: top, W: ButtonSize, H: ButtonSize},
		types.Left:  {X: cx - ButtonSize/2 - row, Y: top + row, W: ButtonSize, H: ButtonSize},
		types.Right: {X: cx + ButtonSize/2 + ButtonGap, Y: top + row, W: ButtonSize, H: ButtonSize},
		types.Down:  {X: cx - ButtonSize/2, Y: top + 2*row, W: ButtonSize, H: ButtonSize},
	}
	return l
}

// CellRect returns the pixel rectangle of grid cell p
func (l Layout) CellRect(p types.Point) Rect {
	return Rect{
		X: l.Board.X + p.X*l.CellSize,
		Y: l.Board.Y + p.Y*l.CellSize,
		W: l.CellSize,
		H: l.CellSize,
	}
}

// ButtonAt returns the direction button under (x, y), if any
func (l Layout) ButtonAt(x, y int) (types.Direction, bool) {
	for _, d := range types.Directions {
		if r, ok := l.Buttons[d]; ok && r.Contains(x, y) {
			return d, true
		}
	}
	return types.None, false
}

// OnBoard reports whether (x, y) falls inside the board
func (l Layout) OnBoard(x, y int) bool {
	return l.Board.Contains(x, y)
}
