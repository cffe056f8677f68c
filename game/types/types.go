package types

import "time"

// Point is a cell on the board.
type Point struct {
	X, Y int
}

// Add returns the point moved by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies on the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns the number of cells on the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Game constants
const (
	GridSize       = 20
	FpsStart       = 6
	FpsMax         = 12
	ScoreIncrement = 10
)

// Board is the fixed playing field.
var Board = Grid{Width: GridSize, Height: GridSize}

// StartPosition is where a fresh snake is placed.
var StartPosition = Point{X: 10, Y: 10}

// Cardinal directions. Y grows downwards.
var (
	Up    = Point{X: 0, Y: -1}
	Down  = Point{X: 0, Y: 1}
	Left  = Point{X: -1, Y: 0}
	Right = Point{X: 1, Y: 0}
)

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

// TickInterval converts a speed in fps to the period between ticks.
// The speed is clamped to [1, FpsMax].
func TickInterval(fps int) time.Duration {
	if fps < 1 {
		fps = 1
	}
	if fps > FpsMax {
		fps = FpsMax
	}
	return time.Second / time.Duration(fps)
}
