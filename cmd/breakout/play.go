package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play in the terminal",
	Long: `Start playing the given variant (default: breakout) in the terminal.

Controls:
  Mouse        - Move the paddle
  Click/Space  - Launch the ball
  Left/Right   - Nudge the paddle
  P            - Pause
  Any key      - Play again after game over
  Esc/B        - Back
  Q/Ctrl+C     - Quit

The session is recorded to the replay database when you quit.

Examples:
  breakout play
  breakout play breakout_relaxed
  breakout play --difficulty hard
  breakout play --config ./my-breakout.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
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

	restore := logToFile()
	defer restore()

	return tui.Run(game, tui.Options{
		TickRate: cfg.Gameplay.TickRate,
		Config:   cfg,
		Store:    store,
		Logger:   logger,
	})
}

// openStore opens the replay database. Failures only disable recording.
func openStore() *storage.Store {
	if flagDBPath == "" {
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open replay database, recording disabled", "err", err)
		return nil
	}
	return store
}
