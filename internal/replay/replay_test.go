package replay

import (
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	_ "github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// record plays a scripted session and returns its replay.
func record(t *testing.T, gameID string, steps int) *Replay {
	t.Helper()
	cfg := config.DefaultBreakoutConfig()
	game, err := registry.Create(gameID, cfg)
	if err != nil {
		t.Fatal(err)
	}

	rec := NewRecorder(gameID, cfg)
	for i := range steps {
		in := core.NewInputFrame()
		switch {
		case i == 5:
			in.Set(core.ActionLaunch)
		case i%11 == 0:
			in.Point(float64(100 + i%600))
		case i%17 == 0:
			in.Set(core.ActionLeft)
		}
		rec.Record(in)
		game.Step(in)
	}
	return rec.Finish(game.StateHash())
}

func TestRecorderSkipsEmptyFrames(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	rec := NewRecorder("breakout", cfg)

	launch := core.NewInputFrame()
	launch.Set(core.ActionLaunch)
	rec.Record(core.NewInputFrame())
	rec.Record(launch)
	rec.Record(core.NewInputFrame())

	r := rec.Finish(7)
	if r.Steps != 3 || len(r.Frames) != 1 {
		t.Fatalf("steps/frames = %d/%d, expected 3/1", r.Steps, len(r.Frames))
	}
	if r.Frames[0].Step != 2 || !r.Frames[0].Input.Has(core.ActionLaunch) {
		t.Errorf("unexpected frame %+v", r.Frames[0])
	}

	// Recorded frames must not alias the caller's frame
	launch.Clear()
	if !r.Frames[0].Input.Has(core.ActionLaunch) {
		t.Error("recorder should clone frames")
	}
}

func TestPlayerReplaysEveryStep(t *testing.T) {
	r := &Replay{Steps: 4, Frames: []Frame{{Step: 3, Input: func() core.InputFrame {
		in := core.NewInputFrame()
		in.Set(core.ActionPause)
		return in
	}()}}}

	p := NewPlayer(r)
	var got []bool
	for {
		in, ok := p.Next()
		if !ok {
			break
		}
		got = append(got, in.Has(core.ActionPause))
	}

	want := []bool{false, false, true, false}
	if len(got) != len(want) {
		t.Fatalf("played %d steps, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("step %d pause = %v, expected %v", i+1, got[i], want[i])
		}
	}
	if !p.Done() || p.Progress() != 4 {
		t.Error("player should be done after the last step")
	}
}

func TestVerify(t *testing.T) {
	logger := log.New(io.Discard)

	for _, id := range []string{"breakout", "breakout_classic", "breakout_relaxed"} {
		t.Run(id, func(t *testing.T) {
			r := record(t, id, 900)
			res, err := Verify(r, logger)
			if err != nil {
				t.Fatalf("Verify: %v", err)
			}
			if res.Steps != 900 || res.Hash != r.FinalHash {
				t.Errorf("unexpected result %+v", res)
			}
		})
	}
}

func TestVerifyDetectsTampering(t *testing.T) {
	r := record(t, "breakout", 300)
	r.FinalHash++
	if _, err := Verify(r, nil); !errors.Is(err, ErrHashMismatch) {
		t.Errorf("expected ErrHashMismatch, got %v", err)
	}

	r.GameID = "tetris"
	if _, err := Verify(r, nil); !errors.Is(err, registry.ErrUnknownGame) {
		t.Errorf("expected ErrUnknownGame, got %v", err)
	}
}

func TestSaveLoadVerify(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "replays.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	r := record(t, "breakout_classic", 600)
	if err := Save(store, r); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if r.ID == 0 {
		t.Fatal("Save should set the replay ID")
	}

	loaded, err := Load(store, r.ID)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Steps != r.Steps || len(loaded.Frames) != len(r.Frames) {
		t.Errorf("loaded %d steps/%d frames, expected %d/%d", loaded.Steps, len(loaded.Frames), r.Steps, len(r.Frames))
	}
	if _, err := Verify(loaded, nil); err != nil {
		t.Errorf("loaded replay does not verify: %v", err)
	}

	if _, err := Load(store, r.ID+100); !errors.Is(err, storage.ErrReplayNotFound) {
		t.Errorf("expected ErrReplayNotFound, got %v", err)
	}
}

func TestActionBits(t *testing.T) {
	in := core.NewInputFrame()
	in.Set(core.ActionLaunch)
	in.Set(core.ActionRight)
	out := decodeActions(encodeActions(in))
	if !out.Has(core.ActionLaunch) || !out.Has(core.ActionRight) || out.Has(core.ActionLeft) {
		t.Errorf("round trip lost actions: %+v", out.Actions)
	}
}
