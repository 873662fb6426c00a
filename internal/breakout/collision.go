package breakout

import "math"

// SeparationEpsilon is the extra distance (px) the ball is pushed away from a
// face it hit, so it does not register the same collision on the next tick.
const SeparationEpsilon = 1.0

// Resolve checks the ball against target and, on a collision, rebounds the
// ball and moves it clear of the face it struck. The target is never touched.
//
// A ball whose center lies outside the target on both axes (corner overlap)
// is not treated as a collision.
func Resolve(ball *Ball, target Body) bool {
	if !target.Exists() {
		return false
	}

	b := ball.Bounds()
	t := target.Bounds()
	if b.Separated(t) {
		return false
	}

	switch {
	case t.ContainsX(ball.X):
		// Top or bottom face
		ball.Direction = -ball.Direction
		if math.Abs(b.Bottom-t.Top) < math.Abs(t.Bottom-b.Top) {
			ball.Y = t.Top - ball.Radius - SeparationEpsilon
		} else {
			ball.Y = t.Bottom + ball.Radius + SeparationEpsilon
		}
	case t.ContainsY(ball.Y):
		// Left or right face
		ball.Direction = math.Pi - ball.Direction
		if math.Abs(b.Right-t.Left) < math.Abs(t.Right-b.Left) {
			ball.X = t.Left - ball.Radius - SeparationEpsilon
		} else {
			ball.X = t.Right + ball.Radius + SeparationEpsilon
		}
	default:
		return false
	}
	return true
}

// Deflect bends the ball's direction by up to maxDeflection radians depending
// on how far from the paddle's center it landed. Hits right of center turn
// the ball clockwise, hits left of center counter-clockwise.
func Deflect(ball *Ball, paddle *Paddle, maxDeflection float64) {
	half := paddle.Width / 2
	if half <= 0 {
		return
	}
	percent := (ball.X - paddle.CenterX()) / half
	ball.Direction += percent * maxDeflection
}
