package config

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the config for values the game cannot run with.
// All problems are reported at once.
func (c *BreakoutConfig) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	b := c.Bricks
	if b.Rows <= 0 || b.Columns <= 0 {
		add("bricks: rows and columns must be positive (got %dx%d)", b.Rows, b.Columns)
	}
	if b.Width <= 0 || b.Height <= 0 {
		add("bricks: width and height must be positive")
	}
	if b.Spacing < 0 || b.YOffset < 0 {
		add("bricks: spacing and y_offset must not be negative")
	}
	if len(b.Values) != b.Rows {
		add("bricks: %d values for %d rows", len(b.Values), b.Rows)
	}
	if len(b.Accelerations) != b.Rows {
		add("bricks: %d accelerations for %d rows", len(b.Accelerations), b.Rows)
	}
	if b.Color != RainbowColor && !validHex(b.Color) {
		add("bricks: color %q is neither %q nor #rrggbb", b.Color, RainbowColor)
	}

	if c.Ball.Radius <= 0 {
		add("ball: radius must be positive")
	}
	if c.Ball.InitialSpeed <= 0 {
		add("ball: initial_speed must be positive")
	}
	if !validHex(c.Ball.Color) {
		add("ball: bad color %q", c.Ball.Color)
	}

	p := c.Paddle
	if p.Width <= 0 || p.Height <= 0 {
		add("paddle: width and height must be positive")
	}
	if p.KeyStep < 0 {
		add("paddle: key_step must not be negative")
	}
	if !validHex(p.Color) {
		add("paddle: bad color %q", p.Color)
	}

	a := c.Arena
	if a.Width < 0 {
		add("arena: width must not be negative")
	}
	if a.StatusBarHeight < 0 {
		add("arena: status_bar_height must not be negative")
	}
	if a.StatusBarColor != "" && !validHex(a.StatusBarColor) {
		add("arena: bad status_bar_color %q", a.StatusBarColor)
	}
	if p.Y <= a.StatusBarHeight || p.Y+p.Height > a.Height {
		add("paddle: y=%g must lie between the ceiling (%g) and the floor (%g)", p.Y, a.StatusBarHeight, a.Height)
	}
	if p.Width > c.ArenaWidth() {
		add("paddle: width %g exceeds arena width %g", p.Width, c.ArenaWidth())
	}
	gridBottom := a.StatusBarHeight + b.YOffset + float64(b.Rows)*(b.Height+b.Spacing)
	if b.Rows > 0 && gridBottom >= p.Y {
		add("bricks: grid reaches y=%g, below the paddle at y=%g", gridBottom, p.Y)
	}

	if c.Gameplay.StartLives <= 0 {
		add("gameplay: start_lives must be positive")
	}
	if c.Gameplay.TickRate <= 0 {
		add("gameplay: tick_rate must be positive")
	}

	return errors.Join(errs...)
}

func validHex(s string) bool {
	_, err := colorful.Hex(s)
	return err == nil
}
