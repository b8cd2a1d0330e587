package types

import "time"

// Game constants
const (
	GridSize              = 20                     // Cells per side of the arena
	InitialSnakeLength    = 4                      // Segments at the start of a game
	InitialGameSpeed      = 200 * time.Millisecond // Tick period at level 1
	SpeedIncreasePerLevel = 20 * time.Millisecond  // Tick period reduction per level
	MinGameSpeed          = 50 * time.Millisecond  // Fastest tick period
	FruitsPerLevel        = 10                     // Flowers needed to advance a level
)

// Point is a cell on the grid
type Point struct {
	X, Y int
}

// Add returns the point offset by d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// DefaultGrid returns the fixed GridSize x GridSize arena
func DefaultGrid() Grid {
	return Grid{Width: GridSize, Height: GridSize}
}

// Contains reports whether p lies inside the grid
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns the total number of cells
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}
