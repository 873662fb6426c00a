// Package config provides YAML-based game configuration loading, validation
// and difficulty presets.
package config

import "math"

// BreakoutConfig contains all configuration for a Breakout session.
// It is loaded once at startup and treated as read-only afterwards.
type BreakoutConfig struct {
	Arena    ArenaConfig    `yaml:"arena"`
	Bricks   BricksConfig   `yaml:"bricks"`
	Ball     BallConfig     `yaml:"ball"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// ArenaConfig defines the playfield in pixels.
type ArenaConfig struct {
	Width           float64 `yaml:"width"` // 0 = dynamic, derived from the brick grid
	Height          float64 `yaml:"height"`
	StatusBarHeight float64 `yaml:"status_bar_height"` // The ceiling sits at this Y
	StatusBarColor  string  `yaml:"status_bar_color"`
}

// BricksConfig defines the brick grid.
type BricksConfig struct {
	Rows          int       `yaml:"rows"`
	Columns       int       `yaml:"columns"`
	Spacing       float64   `yaml:"spacing"`
	Width         float64   `yaml:"width"`
	Height        float64   `yaml:"height"`
	YOffset       float64   `yaml:"y_offset"`      // Gap between the ceiling and the first row
	Values        []int     `yaml:"values"`        // Score per row, top to bottom
	Accelerations []float64 `yaml:"accelerations"` // Speed added (px/sec) on first hit per row
	Color         string    `yaml:"color"`         // "rainbow" or "#rrggbb"
}

// BallConfig defines the ball.
type BallConfig struct {
	Radius              float64 `yaml:"radius"`
	InitialSpeed        float64 `yaml:"initial_speed"`         // px/sec
	InitialDirectionDeg float64 `yaml:"initial_direction_deg"` // 0 = east, clockwise positive
	Color               string  `yaml:"color"`
}

// PaddleConfig defines the paddle.
type PaddleConfig struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	Y                float64 `yaml:"y"`
	Color            string  `yaml:"color"`
	KeyStep          float64 `yaml:"key_step"`           // px moved per left/right key press
	MaxDeflectionDeg float64 `yaml:"max_deflection_deg"` // Angle added at the paddle edge
}

// GameplayConfig defines rules and timing.
type GameplayConfig struct {
	StartLives       int  `yaml:"start_lives"`
	TickRate         int  `yaml:"tick_rate"`
	PaddleDeflection bool `yaml:"paddle_deflection"` // Off-centre paddle hits bend the rebound
	CeilingShrink    bool `yaml:"ceiling_shrink"`    // Touching the ceiling halves the paddle
	Autopilot        bool `yaml:"autopilot"`         // Paddle follows the ball and never misses
}

// RainbowColor selects per-row rainbow brick colors.
const RainbowColor = "rainbow"

// rainbowSweep is the hue range (degrees) spread across the brick rows.
const rainbowSweep = 275

// RainbowSweep returns the hue range used for rainbow bricks.
func RainbowSweep() float64 {
	return rainbowSweep
}

// ArenaWidth returns the configured width, or the width implied by the brick
// grid when the config asks for a dynamic arena.
func (c *BreakoutConfig) ArenaWidth() float64 {
	if c.Arena.Width > 0 {
		return c.Arena.Width
	}
	b := c.Bricks
	return b.Width*float64(b.Columns) + b.Spacing*float64(b.Columns+1)
}

// InitialDirection returns the launch direction in radians.
func (c *BreakoutConfig) InitialDirection() float64 {
	return degToRad(c.Ball.InitialDirectionDeg)
}

// MaxDeflection returns the paddle deflection cap in radians.
func (c *BreakoutConfig) MaxDeflection() float64 {
	return degToRad(c.Paddle.MaxDeflectionDeg)
}

// Clone returns a deep copy so variants can tweak rules without touching
// the caller's config.
func (c *BreakoutConfig) Clone() *BreakoutConfig {
	clone := *c
	clone.Bricks.Values = append([]int(nil), c.Bricks.Values...)
	clone.Bricks.Accelerations = append([]float64(nil), c.Bricks.Accelerations...)
	return &clone
}

func degToRad(deg float64) float64 {
	return math.Pi * (deg / 180)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI string to a preset. Unknown or empty strings map to "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
