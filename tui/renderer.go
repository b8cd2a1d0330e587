// Package tui is the terminal frontend, built on tcell. Every grid cell is
// two terminal columns wide so flower emoji line up with the board.
package tui

import (
	"fmt"

	"flower-snake/game"
	"flower-snake/game/types"

	"github.com/gdamore/tcell/v2"
)

// Screen offsets of the board's top-left cell
const (
	boardLeft = 1
	boardTop  = 2
)

var (
	styleDark  = tcell.StyleDefault.Background(tcell.NewHexColor(0x2d5a3c))
	styleLight = tcell.StyleDefault.Background(tcell.NewHexColor(0x3a734d))
	styleBody  = tcell.StyleDefault.Foreground(tcell.NewHexColor(0x8fde5d)).Background(tcell.NewHexColor(0x8fde5d))
	styleHead  = tcell.StyleDefault.Foreground(tcell.NewHexColor(0xb6ff82)).Background(tcell.NewHexColor(0xb6ff82))
	styleFrame = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleText  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleOver  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkRed).Bold(true)
)

// Renderer draws snapshots onto a tcell screen
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// CellOrigin returns the screen column and row of grid cell p
func CellOrigin(p types.Point) (int, int) {
	return boardLeft + 2*p.X, boardTop + p.Y
}

// Draw renders s and shows the frame
func (r *Renderer) Draw(s game.Snapshot) {
	r.screen.Clear()

	r.drawText(0, 0, fmt.Sprintf("Score: %d | Level: %d", s.Score, s.Level), styleText)
	r.drawFrame(s.Grid)

	for y := 0; y < s.Grid.Height; y++ {
		for x := 0; x < s.Grid.Width; x++ {
			style := styleDark
			if (x+y)%2 == 1 {
				style = styleLight
			}
			r.fillCell(types.Point{X: x, Y: y}, ' ', style)
		}
	}

	for i := len(s.Snake) - 1; i >= 0; i-- {
		style := styleBody
		if i == 0 {
			style = styleHead
		}
		r.fillCell(s.Snake[i], '█', style)
	}

	if s.HasFood {
		col, row := CellOrigin(s.Food.Pos)
		bg := styleDark
		if (s.Food.Pos.X+s.Food.Pos.Y)%2 == 1 {
			bg = styleLight
		}
		r.screen.SetContent(col, row, []rune(s.Food.Flower.Emoji())[0], nil, bg)
	}

	if s.Over {
		r.drawBanner(s)
	}

	r.screen.Show()
}

func (r *Renderer) fillCell(p types.Point, ch rune, style tcell.Style) {
	col, row := CellOrigin(p)
	r.screen.SetContent(col, row, ch, nil, style)
	r.screen.SetContent(col+1, row, ch, nil, style)
}

func (r *Renderer) drawFrame(g types.Grid) {
	left, top := boardLeft-1, boardTop-1
	right, bottom := boardLeft+2*g.Width, boardTop+g.Height

	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, top, '─', nil, styleFrame)
		r.screen.SetContent(x, bottom, '─', nil, styleFrame)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(left, y, '│', nil, styleFrame)
		r.screen.SetContent(right, y, '│', nil, styleFrame)
	}
	r.screen.SetContent(left, top, '┌', nil, styleFrame)
	r.screen.SetContent(right, top, '┐', nil, styleFrame)
	r.screen.SetContent(left, bottom, '└', nil, styleFrame)
	r.screen.SetContent(right, bottom, '┘', nil, styleFrame)

	help := "arrows/wasd turn  space restart  q quit"
	r.drawText(0, bottom+1, help, styleFrame)
}

func (r *Renderer) drawBanner(s game.Snapshot) {
	lines := []string{
		" Game Over! ",
		fmt.Sprintf(" Final score: %d ", s.Score),
		" Press space or an arrow to play again ",
	}
	width := 2 * s.Grid.Width
	row := boardTop + s.Grid.Height/2 - len(lines)/2
	for i, l := range lines {
		col := boardLeft + (width-len(l))/2
		r.drawText(max(col, 0), row+i, l, styleOver)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
