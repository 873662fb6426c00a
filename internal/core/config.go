package core

// RuntimeConfig contains frontend settings passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters (terminal) or pixels (window)
	ScreenH  int // Screen height in characters (terminal) or pixels (window)
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// Phase names used by GameState.
const (
	PhaseIdle     = "idle"     // Ball resting on paddle, waiting for launch
	PhaseRunning  = "running"  // Ball in play
	PhaseGameOver = "gameover" // No lives left
)

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score
	Lives    int    // Lives left
	Phase    string // One of the Phase constants
	GameOver bool   // Whether the game has ended
	Paused   bool   // Whether the game is paused
	Nag      bool   // Launch was attempted after game over
}

// Arena describes the playfield in arena pixels. Ceiling is the Y of the top
// wall; everything above it is the status bar.
type Arena struct {
	Width   float64
	Height  float64
	Ceiling float64
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventBrickDestroyed EventKind = iota + 1
	EventRowAccelerated
	EventPaddleHit
	EventWallHit
	EventCeilingHit
	EventFloorHit
	EventLaunched
	EventLifeLost
	EventGameOver
	EventReset
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventBrickDestroyed:
		return "brick_destroyed"
	case EventRowAccelerated:
		return "row_accelerated"
	case EventPaddleHit:
		return "paddle_hit"
	case EventWallHit:
		return "wall_hit"
	case EventCeilingHit:
		return "ceiling_hit"
	case EventFloorHit:
		return "floor_hit"
	case EventLaunched:
		return "launched"
	case EventLifeLost:
		return "life_lost"
	case EventGameOver:
		return "game_over"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Event is emitted by Step. Row is only set for brick events.
type Event struct {
	Kind  EventKind
	Row   int
	Value int     // Points scored by a destroyed brick
	Speed float64 // Speed added (px/sec) by a row acceleration
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
