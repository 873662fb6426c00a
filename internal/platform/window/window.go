// Package window runs Breakout in a desktop window with Ebitengine. The
// window is sized in arena pixels, so the mouse maps onto the paddle without
// any scaling of our own.
package window

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/replay"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// Held arrow keys repeat after keyRepeatDelay ticks, every keyRepeatInterval ticks.
const (
	keyRepeatDelay    = 15
	keyRepeatInterval = 4
)

var background = color.RGBA{0, 0, 0, 0xff}

// Options configure the window frontend.
type Options struct {
	Config *config.BreakoutConfig // Recorded with the replay
	Store  *storage.Store         // nil disables replay recording
	Logger *log.Logger
	Scale  float64 // Window size relative to the arena, 0 means 1
}

// Window implements ebiten.Game around a Breakout game.
type Window struct {
	game     registry.Game
	opts     Options
	logger   *log.Logger
	recorder *replay.Recorder
	face     *text.GoXFace

	inputFrame core.InputFrame
	state      core.GameState
	lastCursor int
	keys       []ebiten.Key
}

// New creates a window frontend for the given game.
func New(game registry.Game, opts Options) *Window {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	var rec *replay.Recorder
	if opts.Store != nil && opts.Config != nil {
		rec = replay.NewRecorder(game.ID(), opts.Config)
	}
	return &Window{
		game:       game,
		opts:       opts,
		logger:     logger.WithPrefix(game.ID()),
		recorder:   rec,
		face:       text.NewGoXFace(basicfont.Face7x13),
		inputFrame: core.NewInputFrame(),
		state:      game.State(),
		lastCursor: -1,
	}
}

// Update gathers input and runs one simulation step. Ebitengine calls it
// at the configured TPS.
func (w *Window) Update() error {
	if x, _ := ebiten.CursorPosition(); x != w.lastCursor {
		w.lastCursor = x
		w.inputFrame.Point(float64(x))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		w.inputFrame.Set(core.ActionLaunch)
	}

	w.keys = inpututil.AppendJustPressedKeys(w.keys[:0])
	for _, k := range w.keys {
		switch a := keyAction(k, w.state.GameOver); a {
		case core.ActionQuit:
			return ebiten.Termination
		case core.ActionNone:
		default:
			w.inputFrame.Set(a)
		}
	}
	for _, k := range []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA, ebiten.KeyArrowRight, ebiten.KeyD} {
		if repeating(k) {
			w.inputFrame.Set(keyAction(k, false))
		}
	}

	if w.recorder != nil {
		w.recorder.Record(w.inputFrame)
	}
	result := w.game.Step(w.inputFrame)
	w.state = result.State
	for _, ev := range result.Events {
		w.logger.Debug("event", "kind", ev.Kind, "row", ev.Row, "value", ev.Value, "speed", ev.Speed, "score", result.State.Score)
	}
	w.inputFrame.Clear()
	return nil
}

// keyAction maps a freshly pressed key to a game action. After game over
// any key other than launch and quit restarts.
func keyAction(k ebiten.Key, gameOver bool) core.Action {
	switch k {
	case ebiten.KeyEscape, ebiten.KeyQ:
		return core.ActionQuit
	case ebiten.KeySpace:
		return core.ActionLaunch
	}
	if gameOver {
		return core.ActionRestart
	}
	switch k {
	case ebiten.KeyArrowLeft, ebiten.KeyA:
		return core.ActionLeft
	case ebiten.KeyArrowRight, ebiten.KeyD:
		return core.ActionRight
	case ebiten.KeyP:
		return core.ActionPause
	}
	return core.ActionNone
}

func repeating(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	return d > keyRepeatDelay && (d-keyRepeatDelay)%keyRepeatInterval == 0
}

// Draw renders the status bar, every body and any overlay.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	arena := w.game.Arena()

	vector.DrawFilledRect(screen, 0, 0, float32(arena.Width), float32(arena.Ceiling), rgba(w.game.StatusBarColor()), false)
	w.drawText(screen, fmt.Sprintf("SCORE: %d", w.state.Score), 12, arena.Ceiling/2, text.AlignStart)
	w.drawText(screen, fmt.Sprintf("LIVES: %d", w.state.Lives), arena.Width-12, arena.Ceiling/2, text.AlignEnd)

	for _, s := range w.game.Sprites() {
		if !s.Exists {
			continue
		}
		switch s.Shape {
		case core.ShapeRect:
			vector.DrawFilledRect(screen, float32(s.X), float32(s.Y), float32(s.Width), float32(s.Height), rgba(s.Color), false)
		case core.ShapeCircle:
			vector.DrawFilledCircle(screen, float32(s.X), float32(s.Y), float32(s.Radius), rgba(s.Color), true)
		}
	}

	mid := arena.Ceiling + (arena.Height-arena.Ceiling)/2
	switch {
	case w.state.Nag:
		w.drawText(screen, "GAME OVER", arena.Width/2, mid-10, text.AlignCenter)
		w.drawText(screen, "I said 'PRESS A KEY' not 'CLICK THE MOUSE'. Sheesh!", arena.Width/2, mid+10, text.AlignCenter)
	case w.state.GameOver:
		w.drawText(screen, "GAME OVER", arena.Width/2, mid-10, text.AlignCenter)
		w.drawText(screen, "Press a key to play again.", arena.Width/2, mid+10, text.AlignCenter)
	case w.state.Paused:
		w.drawText(screen, "PAUSED", arena.Width/2, mid, text.AlignCenter)
	case w.state.Phase == core.PhaseIdle:
		w.drawText(screen, "Click or press space to launch", arena.Width/2, mid, text.AlignCenter)
	}
}

func (w *Window) drawText(dst *ebiten.Image, s string, x, y float64, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.PrimaryAlign = align
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(dst, s, w.face, op)
}

// Layout keeps the logical screen in arena pixels.
func (w *Window) Layout(_, _ int) (int, int) {
	arena := w.game.Arena()
	return int(arena.Width), int(arena.Height)
}

// finish stores the recorded replay.
func (w *Window) finish() {
	if w.recorder == nil || w.recorder.Steps() == 0 {
		return
	}
	r := w.recorder.Finish(w.game.StateHash())
	w.recorder = nil
	if err := replay.Save(w.opts.Store, r); err != nil {
		w.logger.Error("save replay", "err", err)
		return
	}
	w.logger.Info("replay saved", "id", r.ID, "steps", r.Steps, "score", w.state.Score)
}

func rgba(c core.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: r, G: g, B: b, A: a}
}

// Run opens the window and plays until it is closed or the player quits.
func Run(game registry.Game, opts Options) error {
	w := New(game, opts)
	arena := game.Arena()

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	tps := ebiten.DefaultTPS
	if opts.Config != nil && opts.Config.Gameplay.TickRate > 0 {
		tps = opts.Config.Gameplay.TickRate
	}

	ebiten.SetWindowSize(int(arena.Width*scale), int(arena.Height*scale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(tps)

	err := ebiten.RunGame(w)
	w.finish()
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
