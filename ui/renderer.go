package ui

import (
	"errors"
	"fmt"

	"flower-snake/game"
	"flower-snake/game/types"
	"flower-snake/ui/layout"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	darkGrass  = rl.NewColor(0x2d, 0x5a, 0x3c, 0xff)
	lightGrass = rl.NewColor(0x3a, 0x73, 0x4d, 0xff)
	snakeBody  = rl.NewColor(0x8f, 0xde, 0x5d, 0xff)
	snakeHead  = rl.NewColor(0xb6, 0xff, 0x82, 0xff)
	panel      = rl.NewColor(0x1e, 0x3d, 0x29, 0xff)
)

// ErrNoWindow is returned when a renderer is created before InitWindow
var ErrNoWindow = errors.New("ui: window is not initialised")

// petals maps each flower to its petal and center colors
var petals = map[types.FlowerKind][2]rl.Color{
	types.Blossom:   {rl.NewColor(0xff, 0xb7, 0xc5, 0xff), rl.NewColor(0xff, 0xe0, 0x66, 0xff)},
	types.Rose:      {rl.NewColor(0xd7, 0x26, 0x3d, 0xff), rl.NewColor(0x8b, 0x00, 0x1a, 0xff)},
	types.Hibiscus:  {rl.NewColor(0xff, 0x45, 0x6e, 0xff), rl.NewColor(0xff, 0xd7, 0x00, 0xff)},
	types.Sunflower: {rl.NewColor(0xff, 0xc8, 0x00, 0xff), rl.NewColor(0x6b, 0x3e, 0x12, 0xff)},
	types.Daisy:     {rl.RayWhite, rl.NewColor(0xff, 0xd7, 0x00, 0xff)},
	types.Bouquet:   {rl.NewColor(0xc0, 0x7c, 0xff, 0xff), rl.NewColor(0xff, 0x8c, 0xc6, 0xff)},
	types.Tulip:     {rl.NewColor(0xff, 0x63, 0x47, 0xff), rl.NewColor(0xff, 0xa5, 0x00, 0xff)},
}

// Renderer draws snapshots into the raylib window
type Renderer struct {
	layout       layout.Layout
	screenWidth  int
	screenHeight int
}

// NewRenderer requires an open window
func NewRenderer() (*Renderer, error) {
	if !rl.IsWindowReady() {
		return nil, ErrNoWindow
	}
	r := &Renderer{}
	r.UpdateDimensions()
	return r, nil
}

// UpdateDimensions recomputes the layout from the current window size
func (r *Renderer) UpdateDimensions() {
	r.screenWidth = rl.GetScreenWidth()
	r.screenHeight = rl.GetScreenHeight()
	r.layout = layout.Compute(r.screenWidth, r.screenHeight, types.GridSize)
}

// Layout returns the layout used by the last frame
func (r *Renderer) Layout() layout.Layout {
	return r.layout
}

// Draw renders one frame
func (r *Renderer) Draw(s game.Snapshot) {
	if rl.IsWindowResized() {
		r.UpdateDimensions()
	}

	rl.BeginDrawing()
	rl.ClearBackground(panel)

	r.drawBoard(s.Grid)
	r.drawSnake(s.Snake)
	if s.HasFood {
		r.drawFlower(s.Food)
	}
	r.drawScore(s)
	r.drawButtons()
	if s.Over {
		r.drawGameOver(s)
	}

	rl.EndDrawing()
}

func (r *Renderer) drawBoard(g types.Grid) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			color := darkGrass
			if (x+y)%2 == 1 {
				color = lightGrass
			}
			fillRect(r.layout.CellRect(types.Point{X: x, Y: y}), color)
		}
	}
}

func (r *Renderer) drawSnake(body []types.Point) {
	for i := len(body) - 1; i >= 0; i-- {
		cell := r.layout.CellRect(body[i])
		color := snakeBody
		if i == 0 {
			color = snakeHead
		}
		// One pixel inset keeps adjacent segments distinguishable
		fillRect(layout.Rect{X: cell.X + 1, Y: cell.Y + 1, W: cell.W - 2, H: cell.H - 2}, color)
	}
}

func (r *Renderer) drawFlower(f types.Food) {
	cell := r.layout.CellRect(f.Pos)
	cx, cy := cell.Center()
	colors, ok := petals[f.Flower]
	if !ok {
		colors = petals[types.Blossom]
	}

	radius := float32(cell.W) / 5
	offsets := [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	step := cell.W / 4
	for _, o := range offsets {
		rl.DrawCircle(int32(cx+o[0]*step), int32(cy+o[1]*step), radius, colors[0])
	}
	rl.DrawCircle(int32(cx), int32(cy), radius, colors[1])
}

func (r *Renderer) drawScore(s game.Snapshot) {
	bar := r.layout.ScoreBar
	text := ScoreText(s)
	fontSize := int32(bar.H / 2)
	width := int(rl.MeasureText(text, fontSize))
	rl.DrawText(text, int32(bar.X+(bar.W-width)/2), int32(bar.Y+(bar.H-int(fontSize))/2), fontSize, rl.RayWhite)
}

func (r *Renderer) drawButtons() {
	for _, d := range types.Directions {
		b, ok := r.layout.Buttons[d]
		if !ok {
			continue
		}
		fillRect(b, lightGrass)
		rl.DrawRectangleLines(int32(b.X), int32(b.Y), int32(b.W), int32(b.H), snakeBody)
		drawArrow(b, d)
	}
}

func (r *Renderer) drawGameOver(s game.Snapshot) {
	board := r.layout.Board
	fillRect(board, rl.Fade(rl.Black, 0.6))

	cx, cy := board.Center()
	lines := []struct {
		text string
		size int32
	}{
		{"Game Over!", int32(board.H / 10)},
		{fmt.Sprintf("Final score: %d", s.Score), int32(board.H / 20)},
		{"Press space, an arrow or tap to play again", int32(board.H / 30)},
	}
	y := cy - board.H/8
	for _, l := range lines {
		w := int(rl.MeasureText(l.text, l.size))
		rl.DrawText(l.text, int32(cx-w/2), int32(y), l.size, rl.RayWhite)
		y += int(l.size) + board.H/40
	}
}

// ScoreText is the status line shown above the board
func ScoreText(s game.Snapshot) string {
	return fmt.Sprintf("Score: %d | Level: %d", s.Score, s.Level)
}

func drawArrow(b layout.Rect, d types.Direction) {
	cx, cy := b.Center()
	h := b.W / 4
	v := func(x, y int) rl.Vector2 { return rl.Vector2{X: float32(x), Y: float32(y)} }

	// Vertices are counter-clockwise, as raylib requires
	switch d {
	case types.Up:
		rl.DrawTriangle(v(cx, cy-h), v(cx-h, cy+h), v(cx+h, cy+h), snakeHead)
	case types.Down:
		rl.DrawTriangle(v(cx, cy+h), v(cx+h, cy-h), v(cx-h, cy-h), snakeHead)
	case types.Left:
		rl.DrawTriangle(v(cx-h, cy), v(cx+h, cy+h), v(cx+h, cy-h), snakeHead)
	case types.Right:
		rl.DrawTriangle(v(cx+h, cy), v(cx-h, cy-h), v(cx-h, cy+h), snakeHead)
	}
}

func fillRect(r layout.Rect, color rl.Color) {
	rl.DrawRectangle(int32(r.X), int32(r.Y), int32(r.W), int32(r.H), color)
}
