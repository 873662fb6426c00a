package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/replay"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	flagReplaysGame   string
	flagReplaysLimit  int
	flagReplaysBrowse bool
	flagReplayWatch   bool
	flagReplayDelete  bool
)

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "List recorded replays",
	Long: `List the most recent recorded sessions.

Examples:
  breakout replays
  breakout replays --game breakout_classic --limit 5
  breakout replays --browse`,
	Args: cobra.NoArgs,
	RunE: runReplays,
}

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Verify or watch a recorded replay",
	Long: `Re-simulate a recorded session without any frontend and check that it
ends in the recorded state. With --watch the session plays back in the
terminal instead.

Examples:
  breakout replay 12
  breakout replay 12 --watch
  breakout replay 12 --debug   # Log every game event
  breakout replay 12 --delete`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replaysCmd.Flags().StringVar(&flagReplaysGame, "game", "", "Only show replays of this variant")
	replaysCmd.Flags().IntVar(&flagReplaysLimit, "limit", 20, "Maximum number of replays to list")
	replaysCmd.Flags().BoolVar(&flagReplaysBrowse, "browse", false, "Browse replays interactively")

	replayCmd.Flags().BoolVar(&flagReplayWatch, "watch", false, "Play the replay back in the terminal")
	replayCmd.Flags().BoolVar(&flagReplayDelete, "delete", false, "Delete the replay")
}

func openStoreStrict() (*storage.Store, error) {
	if flagDBPath == "" {
		return nil, errors.New("no replay database, set --db")
	}
	return storage.Open(flagDBPath)
}

func runReplays(_ *cobra.Command, _ []string) error {
	store, err := openStoreStrict()
	if err != nil {
		return err
	}
	defer store.Close()

	if flagReplaysBrowse {
		tickRate := 60
		if cfg, err := loadConfig(); err == nil {
			tickRate = cfg.Gameplay.TickRate
		}
		restore := logToFile()
		defer restore()
		width, height := terminalSize()
		_, err := browseReplays(store, tickRate, width, height)
		return err
	}

	entries, err := store.ListReplays(flagReplaysGame, flagReplaysLimit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No replays recorded yet.")
		fmt.Println()
		fmt.Println("Play 'breakout play' and quit to record one!")
		return nil
	}

	fmt.Printf("  %-6s  %-18s  %-8s  %-16s  %s\n", "ID", "Variant", "Steps", "Hash", "Date")
	fmt.Printf("  %-6s  %-18s  %-8s  %-16s  %s\n", "--", "-------", "-----", "----", "----")
	for _, e := range entries {
		fmt.Printf("  %-6d  %-18s  %-8d  %016x  %s\n",
			e.ID, e.GameID, e.Steps, e.FinalHash, e.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

func runReplay(_ *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid replay id %q: %w", args[0], err)
	}

	store, err := openStoreStrict()
	if err != nil {
		return err
	}
	defer store.Close()

	switch {
	case flagReplayDelete:
		if err := store.DeleteReplay(id); err != nil {
			return err
		}
		fmt.Printf("Deleted replay %d\n", id)
		return nil

	case flagReplayWatch:
		restore := logToFile()
		defer restore()
		return watchReplay(store, id)
	}

	r, err := replay.Load(store, id)
	if err != nil {
		return err
	}

	start := time.Now()
	res, err := replay.Verify(r, logger.WithPrefix(r.GameID))
	if err != nil {
		return err
	}

	fmt.Printf("Replay %d (%s) verified in %s\n", r.ID, r.GameID, time.Since(start).Round(time.Millisecond))
	fmt.Printf("  Steps:  %d\n", res.Steps)
	fmt.Printf("  Score:  %d\n", res.State.Score)
	fmt.Printf("  Lives:  %d\n", res.State.Lives)
	fmt.Printf("  Phase:  %s\n", res.State.Phase)
	fmt.Printf("  Hash:   %016x\n", res.Hash)
	return nil
}
