// Package breakout implements the Breakout game core: a ball bouncing inside
// a walled arena, a paddle that keeps it from falling out of the bottom, and a
// grid of bricks that score points when the ball destroys them.
//
// All positions are in arena pixels with Y growing downwards. Directions are in
// radians, 0 pointing east and increasing clockwise.
package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Body is anything the ball can collide with.
type Body interface {
	Bounds() core.Bounds
	Exists() bool
	Sprite() core.Sprite
}

// Ball is the circular body. Its bounding box is always derived from X, Y
// and Radius.
type Ball struct {
	X, Y      float64
	Radius    float64
	Speed     float64 // px/sec, 0 while resting on the paddle
	Direction float64 // radians
	Color     core.Color
}

// Bounds returns the ball's bounding box.
func (b *Ball) Bounds() core.Bounds {
	return core.Bounds{
		Left:   b.X - b.Radius,
		Top:    b.Y - b.Radius,
		Right:  b.X + b.Radius,
		Bottom: b.Y + b.Radius,
	}
}

// Exists always reports true; the ball is never removed.
func (b *Ball) Exists() bool { return true }

// Sprite returns the ball's draw data.
func (b *Ball) Sprite() core.Sprite {
	return core.Sprite{
		Shape:  core.ShapeCircle,
		X:      b.X,
		Y:      b.Y,
		Radius: b.Radius,
		Color:  b.Color,
		Exists: true,
	}
}

// Move advances the ball by one tick at the given tick rate.
func (b *Ball) Move(tickRate int) {
	if tickRate <= 0 {
		return
	}
	s := b.Speed / float64(tickRate)
	b.X += s * math.Cos(b.Direction)
	b.Y += s * math.Sin(b.Direction)
}

// rect holds the geometry shared by bricks and the paddle.
// X, Y is the top-left corner.
type rect struct {
	X, Y          float64
	Width, Height float64
	Color         core.Color
}

// Bounds returns the rectangle's bounding box.
func (r *rect) Bounds() core.Bounds {
	return core.BoundsOf(r.X, r.Y, r.Width, r.Height)
}

func (r *rect) sprite(exists bool) core.Sprite {
	return core.Sprite{
		Shape:  core.ShapeRect,
		X:      r.X,
		Y:      r.Y,
		Width:  r.Width,
		Height: r.Height,
		Color:  r.Color,
		Exists: exists,
	}
}

// Brick is a destructible rectangle worth Value points.
type Brick struct {
	rect
	Value int
	Row   int

	destroyed bool
}

// Exists reports whether the brick is still standing.
func (b *Brick) Exists() bool { return !b.destroyed }

// Sprite returns the brick's draw data.
func (b *Brick) Sprite() core.Sprite { return b.sprite(!b.destroyed) }

// Paddle is the player-controlled rectangle. Its width may change during
// a game; it always exists.
type Paddle struct {
	rect
}

// Exists always reports true.
func (p *Paddle) Exists() bool { return true }

// Sprite returns the paddle's draw data.
func (p *Paddle) Sprite() core.Sprite { return p.sprite(true) }

// CenterX returns the horizontal center of the paddle.
func (p *Paddle) CenterX() float64 { return p.X + p.Width/2 }

// CenterOn moves the paddle so its center sits at x, keeping it inside
// [0, arenaWidth].
func (p *Paddle) CenterOn(x, arenaWidth float64) {
	p.X = core.ClampF(x-p.Width/2, 0, math.Max(0, arenaWidth-p.Width))
}

// SetWidth changes the width, keeping the left edge where it is unless that
// would push the paddle past the right wall.
func (p *Paddle) SetWidth(w, arenaWidth float64) {
	p.Width = w
	p.X = core.ClampF(p.X, 0, math.Max(0, arenaWidth-p.Width))
}
