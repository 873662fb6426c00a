package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

var testArena = core.Arena{Width: 400, Height: 500, Ceiling: 100}

func TestHalfBlock(t *testing.T) {
	tests := []struct {
		name         string
		upper, lower core.Color
		want         core.Cell
	}{
		{"empty", core.ColorDefault, core.ColorDefault, core.Cell{Rune: ' '}},
		{"upper only", core.ColorRed, core.ColorDefault, core.Cell{Rune: upperHalf, Color: core.ColorRed}},
		{"lower only", core.ColorDefault, core.ColorRed, core.Cell{Rune: lowerHalf, Color: core.ColorRed}},
		{"both", core.ColorRed, core.ColorYellow, core.Cell{Rune: upperHalf, Color: core.ColorRed, Background: core.ColorYellow}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := halfBlock(tt.upper, tt.lower); got != tt.want {
				t.Errorf("halfBlock() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestViewportArenaX(t *testing.T) {
	v := NewViewport(testArena, 40, 20)

	tests := []struct {
		col  int
		want float64
	}{
		{0, 5},
		{10, 105},
		{39, 395},
		{-3, 5},   // clamped
		{99, 395}, // clamped
	}
	for _, tt := range tests {
		if got := v.ArenaX(tt.col); got != tt.want {
			t.Errorf("ArenaX(%d) = %v, want %v", tt.col, got, tt.want)
		}
	}
}

func TestViewportDrawRect(t *testing.T) {
	// 10 px per column, 10 px per half row
	v := NewViewport(testArena, 40, 20)
	s := core.NewScreen(40, 21)

	// Covers columns 2-3 and only the lower half of row 0
	brick := core.Sprite{Shape: core.ShapeRect, X: 20, Y: 110, Width: 20, Height: 10, Color: core.ColorRed, Exists: true}
	v.Draw(s, 1, []core.Sprite{brick})

	for col := 2; col <= 3; col++ {
		if c := s.GetCell(col, 1); c.Rune != lowerHalf || c.Color != core.ColorRed {
			t.Errorf("cell (%d,1) = %+v, want red lower half", col, c)
		}
	}
	if c := s.GetCell(4, 1); c.Rune != ' ' {
		t.Errorf("cell (4,1) should be empty, got %+v", c)
	}
	if c := s.GetCell(2, 0); c.Rune != ' ' {
		t.Errorf("HUD row must not be drawn by the viewport, got %+v", c)
	}
}

func TestViewportDrawThinRect(t *testing.T) {
	// 20 px per half row, so a 4 px paddle misses every pixel center
	v := NewViewport(testArena, 40, 10)
	s := core.NewScreen(40, 10)

	paddle := core.Sprite{Shape: core.ShapeRect, X: 0, Y: 101, Width: 40, Height: 4, Color: core.ColorYellow, Exists: true}
	v.Draw(s, 0, []core.Sprite{paddle})

	if c := s.GetCell(0, 0); c.Rune != upperHalf || c.Color != core.ColorYellow {
		t.Errorf("thin paddle should still light one half row, got %+v", c)
	}
}

func TestViewportDrawSkipsMissingAndPaintsInOrder(t *testing.T) {
	v := NewViewport(testArena, 40, 20)
	s := core.NewScreen(40, 20)

	sprites := []core.Sprite{
		{Shape: core.ShapeRect, X: 0, Y: 100, Width: 400, Height: 20, Color: core.ColorRed, Exists: false},
		{Shape: core.ShapeRect, X: 0, Y: 100, Width: 20, Height: 20, Color: core.ColorRed, Exists: true},
		{Shape: core.ShapeCircle, X: 5, Y: 105, Radius: 5, Color: core.ColorLightBlue, Exists: true},
	}
	v.Draw(s, 0, sprites)

	if c := s.GetCell(0, 0); c.Color != core.ColorLightBlue || c.Background != core.ColorRed {
		t.Errorf("ball should paint over the brick, got %+v", c)
	}
	if c := s.GetCell(10, 0); c.Rune != ' ' {
		t.Errorf("destroyed brick should not be drawn, got %+v", c)
	}
}

func TestDrawHUD(t *testing.T) {
	s := core.NewScreen(40, 5)
	DrawHUD(s, "Breakout", core.GameState{Score: 42, Lives: 3}, core.ColorGray)

	row := s.Row(0)
	if !strings.HasPrefix(row, " SCORE: 42") {
		t.Errorf("HUD should start with the score, got %q", row)
	}
	if !strings.HasSuffix(row, "LIVES: 3 ") {
		t.Errorf("HUD should end with the lives, got %q", row)
	}
	if !strings.Contains(row, "Breakout") {
		t.Errorf("HUD should show the title when it fits, got %q", row)
	}
	if c := s.GetCell(15, 0); c.Background != core.ColorGray {
		t.Errorf("HUD background = %q, want %q", c.Background, core.ColorGray)
	}
}

func TestDrawMessage(t *testing.T) {
	s := core.NewScreen(40, 12)
	DrawMessage(s, gameOverTitle, gameOverHint)

	var found bool
	for y := range s.Height() {
		if strings.Contains(s.Row(y), gameOverTitle) {
			found = true
		}
	}
	if !found {
		t.Errorf("message not drawn:\n%s", s.String())
	}
}

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "hello")

	if got := RenderScreen(s); got != "hello\n     " {
		t.Errorf("RenderScreen() = %q", got)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 1)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.SetCell(2, 0, core.Cell{Rune: upperHalf, Color: core.ColorRed, Background: core.ColorYellow})
	s.DrawText(3, 0, "cd")

	got := RenderScreen(s)
	for _, part := range []string{"ab", string(upperHalf), "cd"} {
		if !strings.Contains(got, part) {
			t.Errorf("RenderScreen() = %q, missing %q", got, part)
		}
	}
}
