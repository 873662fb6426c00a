package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Game implements the Breakout game logic.
//
// Only Step mutates the ball and paddle. Frontends stage input into an
// InputFrame and hand it over once per tick.
type Game struct {
	id    string
	title string
	cfg   *config.BreakoutConfig

	arena  core.Arena
	ball   Ball
	paddle Paddle
	field  *Field

	// Game state
	phase  string
	score  int
	lives  int
	paused bool
	nag    bool
	tick   uint64
}

// New creates a standard Breakout game. The config must already be
// validated; the game keeps the pointer and never writes through it.
func New(cfg *config.BreakoutConfig) *Game {
	return NewVariant(IDStandard, "Breakout", cfg)
}

// NewVariant creates a game with its own ID and title. Rule differences
// between variants come from cfg.Gameplay.
func NewVariant(id, title string, cfg *config.BreakoutConfig) *Game {
	g := &Game{id: id, title: title, cfg: cfg}
	g.arena = core.Arena{
		Width:   cfg.ArenaWidth(),
		Height:  cfg.Arena.Height,
		Ceiling: cfg.Arena.StatusBarHeight,
	}
	g.field = NewField(cfg, g.arena.Ceiling)
	g.ball = Ball{
		Radius: cfg.Ball.Radius,
		Color:  core.Color(cfg.Ball.Color),
	}
	g.paddle = Paddle{rect{
		Y:      cfg.Paddle.Y,
		Height: cfg.Paddle.Height,
		Color:  core.Color(cfg.Paddle.Color),
	}}
	g.Reset()
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return g.id }

// Title returns the display name for this game.
func (g *Game) Title() string { return g.title }

// Reset starts a fresh game: full lives, every brick back, paddle centered.
func (g *Game) Reset() {
	g.tick = 0
	g.paddle.Width = g.cfg.Paddle.Width
	g.paddle.CenterOn(g.arena.Width/2, g.arena.Width)
	g.restart()
}

// restart is the GameOver to Idle transition. The paddle stays where the
// player left it.
func (g *Game) restart() {
	g.score = 0
	g.lives = g.cfg.Gameplay.StartLives
	g.paused = false
	g.nag = false
	g.field.Reset()
	g.paddle.SetWidth(g.cfg.Paddle.Width, g.arena.Width)
	g.ball.Speed = 0
	g.ball.Direction = g.cfg.InitialDirection()
	g.rest()
	g.phase = core.PhaseIdle
}

// rest puts the ball on top of the paddle, centered.
func (g *Game) rest() {
	g.ball.X = g.paddle.CenterX()
	g.ball.Y = g.paddle.Y - g.ball.Radius - 1
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var events []core.Event

	// Handle pause toggle
	if in.Has(core.ActionPause) && g.phase != core.PhaseGameOver {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	events = g.applyInput(in, events)

	switch g.phase {
	case core.PhaseRunning:
		events = g.advance(events)
	default:
		// Idle and GameOver: the ball rides on the paddle
		g.rest()
	}

	return core.StepResult{State: g.State(), Events: events}
}

// applyInput moves the paddle and handles launch and restart requests.
func (g *Game) applyInput(in core.InputFrame, events []core.Event) []core.Event {
	if !g.cfg.Gameplay.Autopilot {
		if in.HasPointer {
			g.paddle.CenterOn(in.PointerX, g.arena.Width)
		}
		if in.Has(core.ActionLeft) {
			g.paddle.CenterOn(g.paddle.CenterX()-g.cfg.Paddle.KeyStep, g.arena.Width)
		}
		if in.Has(core.ActionRight) {
			g.paddle.CenterOn(g.paddle.CenterX()+g.cfg.Paddle.KeyStep, g.arena.Width)
		}
	}

	switch g.phase {
	case core.PhaseIdle:
		if in.Has(core.ActionLaunch) {
			// The paddle may have moved this step
			g.rest()
			g.ball.Speed = g.cfg.Ball.InitialSpeed
			g.ball.Direction = g.cfg.InitialDirection()
			g.phase = core.PhaseRunning
			events = append(events, core.Event{Kind: core.EventLaunched})
		}
	case core.PhaseGameOver:
		if in.Has(core.ActionRestart) {
			g.restart()
			events = append(events, core.Event{Kind: core.EventReset})
		} else if in.Has(core.ActionLaunch) {
			g.nag = true
		}
	}
	return events
}

// advance runs one Running tick: walls, paddle or bricks, motion, life check.
func (g *Game) advance(events []core.Event) []core.Event {
	switch Bounce(&g.ball, g.arena) {
	case WallSide:
		events = append(events, core.Event{Kind: core.EventWallHit})
	case WallCeiling:
		events = append(events, core.Event{Kind: core.EventCeilingHit})
		if g.cfg.Gameplay.CeilingShrink {
			g.paddle.SetWidth(g.cfg.Paddle.Width/2, g.arena.Width)
		}
	case WallFloor:
		events = append(events, core.Event{Kind: core.EventFloorHit})
	}

	if Resolve(&g.ball, &g.paddle) {
		if g.cfg.Gameplay.PaddleDeflection {
			Deflect(&g.ball, &g.paddle, g.cfg.MaxDeflection())
		}
		events = append(events, core.Event{Kind: core.EventPaddleHit})
	} else if hit, ok := g.field.Collide(&g.ball); ok {
		g.score += hit.Value
		events = append(events, core.Event{Kind: core.EventBrickDestroyed, Row: hit.Row, Value: hit.Value})
		if hit.Acceleration != 0 {
			g.ball.Speed += hit.Acceleration
			events = append(events, core.Event{Kind: core.EventRowAccelerated, Row: hit.Row, Speed: hit.Acceleration})
		}
	}

	g.ball.Move(g.cfg.Gameplay.TickRate)
	if g.cfg.Gameplay.Autopilot {
		g.paddle.CenterOn(g.ball.X, g.arena.Width)
	}

	return g.checkLives(events)
}

// checkLives handles a ball that reached the floor.
func (g *Game) checkLives(events []core.Event) []core.Event {
	if g.ball.Bounds().Bottom < g.arena.Height {
		return events
	}

	g.lives--
	g.ball.Speed = 0
	g.ball.Direction = g.cfg.InitialDirection()
	g.rest()
	events = append(events, core.Event{Kind: core.EventLifeLost})

	if g.lives <= 0 {
		g.lives = 0
		g.phase = core.PhaseGameOver
		events = append(events, core.Event{Kind: core.EventGameOver})
	} else {
		g.phase = core.PhaseIdle
	}
	return events
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		Phase:    g.phase,
		GameOver: g.phase == core.PhaseGameOver,
		Paused:   g.paused,
		Nag:      g.nag,
	}
}

// Arena returns the playfield dimensions.
func (g *Game) Arena() core.Arena { return g.arena }

// Sprites returns draw data for every body, bricks first and the ball last.
// Destroyed bricks are included with Exists unset.
func (g *Game) Sprites() []core.Sprite {
	sprites := make([]core.Sprite, 0, len(g.field.Bricks)+2)
	for _, b := range g.field.Bricks {
		sprites = append(sprites, b.Sprite())
	}
	sprites = append(sprites, g.paddle.Sprite(), g.ball.Sprite())
	return sprites
}

// StatusBarColor returns the color of the HUD strip above the ceiling.
func (g *Game) StatusBarColor() core.Color {
	return core.Color(g.cfg.Arena.StatusBarColor)
}

// StateHash returns the hash of the current snapshot.
func (g *Game) StateHash() uint64 {
	snap := g.Snapshot()
	return snap.Hash()
}

// Ticks returns the number of simulated (unpaused) ticks since Reset.
func (g *Game) Ticks() uint64 { return g.tick }
