package core

// Shape tags how a Sprite should be drawn.
type Shape int

const (
	ShapeCircle Shape = iota
	ShapeRect
)

// Sprite is the draw data a renderer needs for one body.
// Circles use X, Y as the center and Radius; rectangles use X, Y as the
// top-left corner and Width, Height. Renderers skip sprites that do not exist.
type Sprite struct {
	Shape  Shape
	X, Y   float64
	Radius float64
	Width  float64
	Height float64
	Color  Color
	Exists bool
}

// Bounds returns the sprite's bounding box.
func (s Sprite) Bounds() Bounds {
	if s.Shape == ShapeCircle {
		return Bounds{
			Left:   s.X - s.Radius,
			Top:    s.Y - s.Radius,
			Right:  s.X + s.Radius,
			Bottom: s.Y + s.Radius,
		}
	}
	return BoundsOf(s.X, s.Y, s.Width, s.Height)
}
