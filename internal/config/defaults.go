package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
// It matches defaults/breakout.yaml.
func DefaultBreakoutConfig() *BreakoutConfig {
	return &BreakoutConfig{
		Arena: ArenaConfig{
			Width:           0,
			Height:          750,
			StatusBarHeight: 100,
			StatusBarColor:  "#555555",
		},
		Bricks: BricksConfig{
			Rows:          8,
			Columns:       10,
			Spacing:       2,
			Width:         75,
			Height:        25,
			YOffset:       100,
			Values:        []int{15, 13, 11, 9, 7, 5, 3, 1},
			Accelerations: []float64{50, 50, 0, 50, 0, 50, 0, 0},
			Color:         RainbowColor,
		},
		Ball: BallConfig{
			Radius:              5,
			InitialSpeed:        300,
			InitialDirectionDeg: -45,
			Color:               "#add8e6",
		},
		Paddle: PaddleConfig{
			Width:            60,
			Height:           10,
			Y:                700,
			Color:            "#ffff00",
			KeyStep:          24,
			MaxDeflectionDeg: 10,
		},
		Gameplay: GameplayConfig{
			StartLives:       3,
			TickRate:         60,
			PaddleDeflection: true,
			CeilingShrink:    true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
