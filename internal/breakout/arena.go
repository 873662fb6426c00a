package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Wall identifies which arena boundary the ball touched.
type Wall int

const (
	WallNone Wall = iota
	WallSide
	WallCeiling
	WallFloor
)

// String returns a short name for the wall.
func (w Wall) String() string {
	switch w {
	case WallSide:
		return "side"
	case WallCeiling:
		return "ceiling"
	case WallFloor:
		return "floor"
	default:
		return "none"
	}
}

// Bounce applies the arena boundary rules to the ball and reports the wall
// that was hit. Only one wall is handled per call: sides first, then the
// ceiling, then the floor.
func Bounce(ball *Ball, arena core.Arena) Wall {
	b := ball.Bounds()
	switch {
	case b.Right >= arena.Width || b.Left <= 0:
		ball.Direction = math.Pi - ball.Direction
		if b.Right > arena.Width {
			ball.X = arena.Width - ball.Radius
		}
		if b.Left < 0 {
			ball.X = ball.Radius
		}
		return WallSide
	case b.Top <= arena.Ceiling:
		ball.Direction = -ball.Direction
		if b.Top < arena.Ceiling {
			ball.Y = arena.Ceiling + ball.Radius
		}
		return WallCeiling
	case b.Bottom >= arena.Height:
		// The life-loss check decides what happens next.
		ball.Direction = -ball.Direction
		return WallFloor
	}
	return WallNone
}
