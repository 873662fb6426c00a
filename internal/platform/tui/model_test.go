package tui

import (
	"math"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/replay"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

func newTestModel(t *testing.T, opts Options) (Model, *breakout.Game) {
	t.Helper()
	if opts.Config == nil {
		opts.Config = config.DefaultBreakoutConfig()
	}
	game := breakout.New(opts.Config)
	m := NewModel(game, opts)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return next.(Model), game
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		if m, ok = next.(Model); !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func paddleCenter(g *breakout.Game) float64 {
	sprites := g.Sprites()
	p := sprites[len(sprites)-2]
	return p.X + p.Width/2
}

func TestModelLaunchWithSpace(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace}, TickMsg{})
	if m.State().Phase != core.PhaseRunning {
		t.Errorf("phase = %q after space, want running", m.State().Phase)
	}
}

func TestModelInputClearedAfterTick(t *testing.T) {
	m, g := newTestModel(t, Options{})
	start := paddleCenter(g)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight}, TickMsg{}, TickMsg{})
	want := start + config.DefaultBreakoutConfig().Paddle.KeyStep
	if got := paddleCenter(g); got != want {
		t.Errorf("paddle center = %v, want %v (one key press, one step)", got, want)
	}
	if !m.inputFrame.Empty() {
		t.Error("input frame should be cleared after a tick")
	}
}

func TestModelMouseMovesPaddleAndLaunches(t *testing.T) {
	m, g := newTestModel(t, Options{})

	click := tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m = send(t, m, click, TickMsg{})

	want := m.viewport.ArenaX(10)
	if got := paddleCenter(g); math.Abs(got-want) > 1e-9 {
		t.Errorf("paddle center = %v, want %v", got, want)
	}
	if m.State().Phase != core.PhaseRunning {
		t.Errorf("left click should launch, phase %q", m.State().Phase)
	}
}

func TestModelMouseOutsidePlayfieldIgnored(t *testing.T) {
	m, g := newTestModel(t, Options{})
	start := paddleCenter(g)

	m = send(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion}, TickMsg{})
	if got := paddleCenter(g); got != start {
		t.Errorf("pointer on the HUD row moved the paddle to %v", got)
	}
	_ = m
}

func TestModelPause(t *testing.T) {
	m, g := newTestModel(t, Options{})

	m = send(t, m, keyRunes("p"), TickMsg{}, TickMsg{}, TickMsg{})
	if !m.State().Paused {
		t.Fatal("game should be paused")
	}
	if g.Ticks() != 0 {
		t.Errorf("paused game advanced %d ticks", g.Ticks())
	}
}

func TestModelQuitSavesReplay(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "replays.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m, g := newTestModel(t, Options{Store: store})
	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace}, TickMsg{})
	for range 30 {
		m = send(t, m, TickMsg{})
	}

	next, cmd := m.Update(keyRunes("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit should end the program")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}

	entries, err := store.ListReplays(breakout.IDStandard, 10)
	if err != nil {
		t.Fatalf("ListReplays() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 replay, got %d", len(entries))
	}
	if entries[0].Steps != 31 || entries[0].FinalHash != g.StateHash() {
		t.Errorf("replay = %+v, want 31 steps ending in %016x", entries[0], g.StateHash())
	}
}

func TestModelEmbeddedBack(t *testing.T) {
	m, _ := newTestModel(t, Options{Embedded: true})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("back should return a command")
	}
	if _, ok := cmd().(BackMsg); !ok {
		t.Error("embedded back should emit BackMsg")
	}
}

func TestModelWatchReplay(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()

	// Record a short session directly against a game
	live := breakout.New(cfg)
	rec := replay.NewRecorder(live.ID(), cfg)
	steps := []core.InputFrame{core.NewInputFrame(), core.NewInputFrame(), core.NewInputFrame()}
	steps[0].Set(core.ActionRight)
	steps[1].Set(core.ActionLaunch)
	for _, in := range steps {
		rec.Record(in)
		live.Step(in)
	}
	r := rec.Finish(live.StateHash())

	m, g := newTestModel(t, Options{Config: cfg, Player: replay.NewPlayer(r)})

	// Input is ignored while watching
	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	for range len(steps) + 2 {
		m = send(t, m, TickMsg{})
	}

	if !m.finished {
		t.Error("watch should finish once the replay runs out")
	}
	if g.StateHash() != r.FinalHash {
		t.Errorf("watched game hash %016x, recorded %016x", g.StateHash(), r.FinalHash)
	}
}

func TestModelViewShowsOverlay(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	if view := m.View(); view == "" {
		t.Fatal("view should not be empty")
	}

	m = send(t, m, keyRunes("p"), TickMsg{})
	m.View()

	var found bool
	for y := range m.screen.Height() {
		if strings.Contains(m.screen.Row(y), pausedMessage) {
			found = true
		}
	}
	if !found {
		t.Error("paused overlay not drawn")
	}
}
