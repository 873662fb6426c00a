package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Variant IDs.
const (
	IDStandard = "breakout"
	IDClassic  = "breakout_classic"
	IDRelaxed  = "breakout_relaxed"
)

func init() {
	registry.Register(IDStandard, func(cfg *config.BreakoutConfig) registry.Game {
		return New(cfg)
	})

	// Classic: pure mirror rebound off the paddle
	registry.Register(IDClassic, func(cfg *config.BreakoutConfig) registry.Game {
		c := cfg.Clone()
		c.Gameplay.PaddleDeflection = false
		return NewVariant(IDClassic, "Breakout (Classic)", c)
	})

	// Relaxed: the ceiling never shrinks the paddle
	registry.Register(IDRelaxed, func(cfg *config.BreakoutConfig) registry.Game {
		c := cfg.Clone()
		c.Gameplay.CeilingShrink = false
		return NewVariant(IDRelaxed, "Breakout (Relaxed)", c)
	})
}
