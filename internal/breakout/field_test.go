package breakout

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestNewFieldLayout(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	f := NewField(cfg, 100)

	if len(f.Bricks) != 80 {
		t.Fatalf("expected 80 bricks, got %d", len(f.Bricks))
	}

	tests := []struct {
		index int
		x, y  float64
		row   int
		value int
	}{
		{0, 2, 202, 0, 15},
		{1, 79, 202, 0, 15},
		{9, 695, 202, 0, 15},
		{10, 2, 229, 1, 13},
		{79, 695, 391, 7, 1},
	}
	for _, tt := range tests {
		b := f.Bricks[tt.index]
		if b.X != tt.x || b.Y != tt.y {
			t.Errorf("brick %d at (%v, %v), expected (%v, %v)", tt.index, b.X, b.Y, tt.x, tt.y)
		}
		if b.Row != tt.row || b.Value != tt.value {
			t.Errorf("brick %d row/value = %d/%d, expected %d/%d", tt.index, b.Row, b.Value, tt.row, tt.value)
		}
	}

	// Last column ends one spacing short of the dynamic arena width
	last := f.Bricks[9].Bounds()
	if last.Right+cfg.Bricks.Spacing != cfg.ArenaWidth() {
		t.Errorf("last column right = %v, arena width %v", last.Right, cfg.ArenaWidth())
	}
}

func TestFieldColors(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	f := NewField(cfg, 100)
	if f.Bricks[0].Color != core.ColorRed {
		t.Errorf("top rainbow row should be red, got %s", f.Bricks[0].Color)
	}
	if f.Bricks[0].Color == f.Bricks[10].Color {
		t.Error("rainbow rows should differ")
	}
	if f.Bricks[0].Color != f.Bricks[9].Color {
		t.Error("bricks in one row should share a color")
	}

	cfg.Bricks.Color = "#00ff00"
	f = NewField(cfg, 100)
	for _, b := range f.Bricks {
		if b.Color != "#00ff00" {
			t.Fatalf("fixed brick color not applied: %s", b.Color)
		}
	}
}

func TestFieldCollideOneBrickPerCall(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	f := NewField(cfg, 100)

	// Straddle the gap between bricks 0 and 1: the left edge wins
	b0 := f.Bricks[0].Bounds()
	ball := &Ball{X: b0.Right, Y: b0.Top + 12.5, Radius: 5}
	hit, ok := f.Collide(ball)
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.Index != 0 {
		t.Errorf("expected brick 0 to be hit first, got %d", hit.Index)
	}
	if f.Remaining() != 79 {
		t.Errorf("Remaining() = %d, expected 79", f.Remaining())
	}
}

func TestFieldRowAccelerationOncePerRow(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	f := NewField(cfg, 100)

	hitBrick := func(i int) Hit {
		b := f.Bricks[i].Bounds()
		ball := &Ball{X: b.CenterX(), Y: b.Top + 12.5, Radius: 5}
		hit, ok := f.Collide(ball)
		if !ok || hit.Index != i {
			t.Fatalf("expected to hit brick %d, got %+v ok=%v", i, hit, ok)
		}
		return hit
	}

	if h := hitBrick(0); h.Acceleration != 50 {
		t.Errorf("first hit in row 0 should accelerate by 50, got %v", h.Acceleration)
	}
	if h := hitBrick(1); h.Acceleration != 0 {
		t.Errorf("second hit in row 0 should not accelerate, got %v", h.Acceleration)
	}
	if !f.RowHit(0) || f.RowHit(1) {
		t.Error("only row 0 should be flagged")
	}

	f.Reset()
	if f.RowHit(0) || f.Remaining() != 80 {
		t.Error("Reset should restore bricks and clear row flags")
	}
	if h := hitBrick(0); h.Acceleration != 50 {
		t.Errorf("after reset row 0 should accelerate again, got %v", h.Acceleration)
	}
}
