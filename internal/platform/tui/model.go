package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/replay"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// Messages shown over the playfield.
const (
	gameOverTitle = "GAME OVER"
	gameOverHint  = "Press a key to play again."
	nagMessage    = "I said 'PRESS A KEY' not 'CLICK THE MOUSE'. Sheesh!"
	launchHint    = "Press space or click to launch"
	pausedMessage = "PAUSED"
	replayEnded   = "REPLAY FINISHED"
)

// BackMsg is emitted when the player leaves a game that runs inside a
// parent model, such as an SSH session.
type BackMsg struct{}

// Options configure a game Model.
type Options struct {
	TickRate int
	Config   *config.BreakoutConfig // Recorded with the replay
	Store    *storage.Store         // nil disables replay recording
	Player   *replay.Player         // Non-nil plays a stored replay instead of reading input
	Logger   *log.Logger
	Embedded bool                   // Back emits BackMsg instead of quitting the program
}

// Model is the Bubble Tea model for one Breakout game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	viewport Viewport
	keys     GameKeyMap
	help     help.Model

	opts       Options
	logger     *log.Logger
	recorder   *replay.Recorder
	inputFrame core.InputFrame
	gameState  core.GameState

	width, height int
	watchPaused   bool
	finished      bool // Replay has run out of input
	quitting      bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options) Model {
	if opts.TickRate <= 0 {
		opts.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	var rec *replay.Recorder
	if opts.Store != nil && opts.Player == nil && opts.Config != nil {
		rec = replay.NewRecorder(game.ID(), opts.Config)
	}

	def := core.DefaultConfig()
	m := Model{
		game:       game,
		keys:       DefaultGameKeyMap(),
		help:       help.New(),
		opts:       opts,
		logger:     logger.WithPrefix(game.ID()),
		recorder:   rec,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
	m.screen = core.NewScreen(def.ScreenW, def.ScreenH-1)
	m.layout(def.ScreenW, def.ScreenH)
	return m
}

// layout sizes the screen buffer and viewport for a terminal of w x h cells.
// The last row belongs to the help line.
func (m *Model) layout(w, h int) {
	m.width = max(w, 10)
	m.height = max(h, 5)
	m.screen.Resize(m.width, m.height-1)
	m.viewport = NewViewport(m.game.Arena(), m.width, m.height-1-hudRows)
	m.help.Width = m.width
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.layout(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey stages keyboard input for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg, m.gameState.GameOver)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.finish()
		return m, tea.Quit
	case core.ActionBack:
		m.finish()
		if m.opts.Embedded {
			return m, func() tea.Msg { return BackMsg{} }
		}
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
		return m, nil
	}

	if m.watching() {
		if action == core.ActionPause {
			m.watchPaused = !m.watchPaused
		}
		return m, nil
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleMouse turns pointer motion into a paddle target and a left press
// into a launch.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.watching() {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionMotion, tea.MouseActionPress:
		if msg.Y >= hudRows && msg.Y < hudRows+m.viewport.Rows() {
			m.inputFrame.Point(m.viewport.ArenaX(msg.X))
		}
	}
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.inputFrame.Set(core.ActionLaunch)
	}
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var in core.InputFrame
	switch {
	case m.watching():
		if m.watchPaused || m.finished {
			return m, tickCmd(m.opts.TickRate)
		}
		next, ok := m.opts.Player.Next()
		if !ok {
			m.finished = true
			return m, tickCmd(m.opts.TickRate)
		}
		in = next
	default:
		in = m.inputFrame
		if m.recorder != nil {
			m.recorder.Record(in)
		}
	}

	result := m.game.Step(in)
	m.gameState = result.State
	for _, ev := range result.Events {
		m.logger.Debug("event", "kind", ev.Kind, "row", ev.Row, "value", ev.Value, "speed", ev.Speed, "score", result.State.Score)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.opts.TickRate)
}

// finish stores the recorded replay, at most once.
func (m *Model) finish() {
	if m.recorder == nil {
		return
	}
	rec := m.recorder
	m.recorder = nil
	if rec.Steps() == 0 {
		return
	}

	r := rec.Finish(m.game.StateHash())
	if err := replay.Save(m.opts.Store, r); err != nil {
		m.logger.Error("save replay", "err", err)
		return
	}
	m.logger.Info("replay saved", "id", r.ID, "steps", r.Steps, "score", m.gameState.Score)
}

func (m Model) watching() bool {
	return m.opts.Player != nil
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	title := m.game.Title()
	if m.watching() {
		title = "REPLAY: " + title
	}
	DrawHUD(m.screen, title, m.gameState, m.game.StatusBarColor())
	m.viewport.Draw(m.screen, hudRows, m.game.Sprites())

	switch {
	case m.finished:
		DrawMessage(m.screen, replayEnded)
	case m.gameState.Nag:
		DrawMessage(m.screen, gameOverTitle, nagMessage)
	case m.gameState.GameOver:
		DrawMessage(m.screen, gameOverTitle, gameOverHint)
	case m.gameState.Paused || m.watchPaused:
		DrawMessage(m.screen, pausedMessage)
	case m.gameState.Phase == core.PhaseIdle && !m.watching():
		DrawMessage(m.screen, launchHint)
	}

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run plays a game in the terminal until the player quits.
func Run(game registry.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Paddle follows the pointer without a button held
	)

	_, err := p.Run()
	return err
}
