// Package replay records the input stream of a session so it can be
// re-simulated later. The game is deterministic, so the input stream plus the
// config is the whole session; the final snapshot hash proves it.
package replay

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// ErrHashMismatch is returned when a re-simulated replay ends in a different
// state than the one recorded.
var ErrHashMismatch = errors.New("replay: final state hash mismatch")

// Frame is the input given to one Step call.
type Frame struct {
	Step  uint64 // 1-based index of the Step call
	Input core.InputFrame
}

// Replay is a recorded session.
type Replay struct {
	ID        int64
	GameID    string
	Config    *config.BreakoutConfig
	Steps     uint64
	FinalHash uint64
	Frames    []Frame // Only steps that had input
	CreatedAt time.Time
}

// Recorder captures every input frame handed to a game.
type Recorder struct {
	gameID string
	cfg    *config.BreakoutConfig
	steps  uint64
	frames []Frame
}

// NewRecorder starts a recording for the given variant and config.
func NewRecorder(gameID string, cfg *config.BreakoutConfig) *Recorder {
	return &Recorder{gameID: gameID, cfg: cfg}
}

// Record notes the input for the next Step call. Call it once per Step,
// including steps without input.
func (r *Recorder) Record(in core.InputFrame) {
	r.steps++
	if in.Empty() {
		return
	}
	r.frames = append(r.frames, Frame{Step: r.steps, Input: in.Clone()})
}

// Steps returns the number of recorded Step calls.
func (r *Recorder) Steps() uint64 { return r.steps }

// Finish closes the recording with the game's final state hash.
func (r *Recorder) Finish(finalHash uint64) *Replay {
	return &Replay{
		GameID:    r.gameID,
		Config:    r.cfg,
		Steps:     r.steps,
		FinalHash: finalHash,
		Frames:    append([]Frame(nil), r.frames...),
	}
}

// Player feeds a replay's input back one step at a time.
type Player struct {
	replay *Replay
	step   uint64
	next   int
}

// NewPlayer creates a player positioned before the first step.
func NewPlayer(r *Replay) *Player {
	return &Player{replay: r}
}

// Next returns the input for the next step, and false once the replay is over.
func (p *Player) Next() (core.InputFrame, bool) {
	if p.step >= p.replay.Steps {
		return core.InputFrame{}, false
	}
	p.step++

	frames := p.replay.Frames
	if p.next < len(frames) && frames[p.next].Step == p.step {
		in := frames[p.next].Input.Clone()
		p.next++
		return in, true
	}
	return core.NewInputFrame(), true
}

// Done reports whether every step has been played.
func (p *Player) Done() bool { return p.step >= p.replay.Steps }

// Progress returns the number of steps played so far.
func (p *Player) Progress() uint64 { return p.step }

// Result summarises a headless re-simulation.
type Result struct {
	Steps uint64
	State core.GameState
	Hash  uint64
}

// Verify re-simulates a replay without any frontend and checks that it ends
// in the recorded state. Game events are logged at debug level.
func Verify(r *Replay, logger *log.Logger) (Result, error) {
	if logger == nil {
		logger = log.Default()
	}
	game, err := registry.Create(r.GameID, r.Config)
	if err != nil {
		return Result{}, fmt.Errorf("replay: %w", err)
	}

	p := NewPlayer(r)
	var res Result
	for {
		in, ok := p.Next()
		if !ok {
			break
		}
		step := game.Step(in)
		res.State = step.State
		for _, ev := range step.Events {
			logger.Debug("event", "step", p.Progress(), "kind", ev.Kind, "row", ev.Row, "value", ev.Value, "speed", ev.Speed)
		}
	}

	res.Steps = p.Progress()
	res.State = game.State()
	res.Hash = game.StateHash()
	if res.Hash != r.FinalHash {
		return res, fmt.Errorf("%w: got %016x, recorded %016x", ErrHashMismatch, res.Hash, r.FinalHash)
	}
	return res, nil
}

// Save stores a replay and sets its ID.
func Save(store *storage.Store, r *Replay) error {
	cfgYAML, err := config.Marshal(r.Config)
	if err != nil {
		return fmt.Errorf("replay: %w", err)
	}

	entry := storage.ReplayEntry{
		GameID:    r.GameID,
		Config:    cfgYAML,
		Steps:     r.Steps,
		FinalHash: r.FinalHash,
		Events:    make([]storage.ReplayEvent, 0, len(r.Frames)),
	}
	for _, f := range r.Frames {
		entry.Events = append(entry.Events, storage.ReplayEvent{
			Step:       f.Step,
			Actions:    encodeActions(f.Input),
			PointerX:   f.Input.PointerX,
			HasPointer: f.Input.HasPointer,
		})
	}

	id, err := store.SaveReplay(entry)
	if err != nil {
		return fmt.Errorf("replay: %w", err)
	}
	r.ID = id
	return nil
}

// Load reads a replay back from storage.
func Load(store *storage.Store, id int64) (*Replay, error) {
	entry, err := store.Replay(id)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}

	cfg, err := config.Parse(entry.Config)
	if err != nil {
		return nil, fmt.Errorf("replay %d: stored config: %w", id, err)
	}

	r := &Replay{
		ID:        entry.ID,
		GameID:    entry.GameID,
		Config:    cfg,
		Steps:     entry.Steps,
		FinalHash: entry.FinalHash,
		Frames:    make([]Frame, 0, len(entry.Events)),
		CreatedAt: entry.CreatedAt,
	}
	for _, ev := range entry.Events {
		in := decodeActions(ev.Actions)
		if ev.HasPointer {
			in.Point(ev.PointerX)
		}
		r.Frames = append(r.Frames, Frame{Step: ev.Step, Input: in})
	}
	return r, nil
}

// encodeActions packs the triggered actions into a bit set.
func encodeActions(in core.InputFrame) uint32 {
	var bits uint32
	for a, on := range in.Actions {
		if on && a > core.ActionNone && a < 32 {
			bits |= 1 << uint(a) //#nosec G115 -- bounded above
		}
	}
	return bits
}

func decodeActions(bits uint32) core.InputFrame {
	in := core.NewInputFrame()
	for a := core.Action(1); a < 32; a++ {
		if bits&(1<<uint(a)) != 0 { //#nosec G115 -- bounded above
			in.Set(a)
		}
	}
	return in
}
