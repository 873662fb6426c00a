// breakout is a Breakout game for the terminal, an SSH server and a desktop
// window, with recorded replays.
//
// Usage:
//
//	breakout list               - List game variants
//	breakout play [variant]     - Play in the terminal
//	breakout menu               - Pick a variant interactively
//	breakout window [variant]   - Play in a desktop window
//	breakout serve              - Start SSH server for remote play
//	breakout replays            - List or browse recorded replays
//	breakout replay <id>        - Verify or watch a replay
//	breakout config             - Print or check configuration
//
// Global flags:
//
//	--fps <rate>          - Override the tick rate
//	--config <file>       - Config file (default search path otherwise)
//	--difficulty <preset> - easy, normal or hard
//	--autopilot           - Paddle follows the ball
//	--db <path>           - Replay database (default: ~/.breakout/replays.db)
//	--debug               - Log game events
//	--log-file <path>     - Log file while the terminal UI runs
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	// Import variants to register them
	_ "github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagConfig     string
	flagDifficulty string
	flagAutopilot  bool
	flagDBPath     string
	flagDebug      bool
	flagLogFile    string
)

// logger writes to stderr until a terminal UI takes over the screen.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "breakout",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - bounce the ball, break the bricks",
	Long: `Breakout in your terminal, over SSH or in a window.

Steer the paddle with the mouse or the arrow keys and launch the ball
with a click or space. Each row of bricks scores a little less than the
one above it, and the first hit on some rows speeds the ball up. Touch
the ceiling and the paddle shrinks to half its width.

Examples:
  breakout play
  breakout play breakout_classic --difficulty easy
  breakout window
  breakout serve --ssh :2222
  breakout replays --browse`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagDebug {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = from config)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.BoolVar(&flagAutopilot, "autopilot", false, "Paddle follows the ball and never misses")
	pf.StringVar(&flagDBPath, "db", "~/.breakout/replays.db", "Path to replay database (empty disables recording)")
	pf.BoolVar(&flagDebug, "debug", false, "Log game events")
	pf.StringVar(&flagLogFile, "log-file", "~/.breakout/breakout.log", "Log file used while the terminal UI runs")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads, adjusts and validates the session config.
func loadConfig() (*config.BreakoutConfig, error) {
	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return nil, err
	}

	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return nil, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
		}
		config.ApplyPreset(cfg, preset)
	}
	if flagAutopilot {
		cfg.Gameplay.Autopilot = true
	}
	if flagFPS > 0 {
		cfg.Gameplay.TickRate = flagFPS
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// logToFile redirects the logger to --log-file while a Bubble Tea program
// owns the terminal. The returned func restores stderr.
func logToFile() func() {
	path := expandHome(flagLogFile)
	if path == "" {
		logger.SetOutput(io.Discard)
		return func() { logger.SetOutput(os.Stderr) }
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		logger.Warn("cannot create log directory", "err", err)
		logger.SetOutput(io.Discard)
		return func() { logger.SetOutput(os.Stderr) }
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //#nosec G304 -- user-supplied log path
	if err != nil {
		logger.Warn("cannot open log file", "path", path, "err", err)
		logger.SetOutput(io.Discard)
		return func() { logger.SetOutput(os.Stderr) }
	}
	logger.SetOutput(f)
	return func() {
		logger.SetOutput(os.Stderr)
		f.Close()
	}
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}
