package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/window"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window [variant]",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play the given variant (default: breakout).

The paddle follows the mouse pointer. Click to launch the ball; after
game over press any key to play again. Esc or Q closes the window.

Examples:
  breakout window
  breakout window breakout_classic --scale 0.8`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the arena")
}

func runWindow(_ *cobra.Command, args []string) error {
	gameID := breakout.IDStandard
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'breakout list' to see them", gameID)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	game, err := registry.Create(gameID, cfg)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	return window.Run(game, window.Options{
		Config: cfg,
		Store:  store,
		Logger: logger,
		Scale:  flagScale,
	})
}
