package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/replay"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to pick a variant and Tab to
browse replays. Leaving a game with Esc returns to the menu.

Examples:
  breakout menu
  breakout menu --fps 30`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	restore := logToFile()
	defer restore()

	width, height := terminalSize()

	// Menu loop
	for {
		res, err := tui.RunMenu(width, height)
		if err != nil {
			return err
		}
		width, height = res.Width, res.Height

		switch {
		case res.Quit:
			return nil

		case res.WantReplays:
			quit, err := browseReplays(store, cfg.Gameplay.TickRate, width, height)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}

		default:
			game, err := registry.Create(res.GameID, cfg)
			if err != nil {
				return err
			}
			if err := tui.Run(game, tui.Options{
				TickRate: cfg.Gameplay.TickRate,
				Config:   cfg,
				Store:    store,
				Logger:   logger,
			}); err != nil {
				return err
			}
		}
	}
}

// browseReplays runs the replay browser until the user backs out, watching
// whatever they pick. It reports whether the user asked to quit.
func browseReplays(store *storage.Store, tickRate, width, height int) (bool, error) {
	for {
		res, err := tui.RunReplays(store, tickRate, width, height)
		if err != nil {
			return false, err
		}
		if res.ReplayID == 0 {
			return res.Quit, nil
		}
		if err := watchReplay(store, res.ReplayID); err != nil {
			logger.Error("watch replay", "id", res.ReplayID, "err", err)
		}
	}
}

// watchReplay plays a stored replay back in the terminal.
func watchReplay(store *storage.Store, id int64) error {
	r, err := replay.Load(store, id)
	if err != nil {
		return err
	}
	game, err := registry.Create(r.GameID, r.Config)
	if err != nil {
		return err
	}
	return tui.Run(game, tui.Options{
		TickRate: r.Config.Gameplay.TickRate,
		Player:   replay.NewPlayer(r),
		Logger:   logger,
	})
}
