package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Characters for half-block pixel drawing
const (
	upperHalf = '▀'
	lowerHalf = '▄'
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// Viewport maps the playfield below the arena ceiling onto a block of
// terminal cells. Each cell shows two vertical pixels using half blocks.
type Viewport struct {
	arena core.Arena
	cols  int
	rows  int
	sx    float64 // Arena px per column
	sy    float64 // Arena px per half row
}

// NewViewport fits the playfield into cols x rows cells.
func NewViewport(arena core.Arena, cols, rows int) Viewport {
	cols = max(cols, 1)
	rows = max(rows, 1)
	return Viewport{
		arena: arena,
		cols:  cols,
		rows:  rows,
		sx:    arena.Width / float64(cols),
		sy:    (arena.Height - arena.Ceiling) / float64(rows*2),
	}
}

// Cols returns the viewport width in cells.
func (v Viewport) Cols() int { return v.cols }

// Rows returns the viewport height in cells.
func (v Viewport) Rows() int { return v.rows }

// ArenaX converts a screen column to the arena x at the column's center.
func (v Viewport) ArenaX(col int) float64 {
	col = core.Clamp(col, 0, v.cols-1)
	return (float64(col) + 0.5) * v.sx
}

// column returns the column holding arena x.
func (v Viewport) column(x float64) int {
	return core.Clamp(int(math.Floor(x/v.sx)), 0, v.cols-1)
}

// halfRow returns the half row holding arena y.
func (v Viewport) halfRow(y float64) int {
	return core.Clamp(int(math.Floor((y-v.arena.Ceiling)/v.sy)), 0, v.rows*2-1)
}

// Draw rasterizes sprites into dst starting at screen row top. Later sprites
// paint over earlier ones. Rectangles are sampled at pixel centers and always
// get at least one half row, so thin bodies like the paddle stay visible;
// circles light the pixel holding their center.
func (v Viewport) Draw(dst *core.Screen, top int, sprites []core.Sprite) {
	pix := make([][]core.Color, v.rows*2)
	for i := range pix {
		pix[i] = make([]core.Color, v.cols)
	}

	for _, s := range sprites {
		if !s.Exists {
			continue
		}
		switch s.Shape {
		case core.ShapeRect:
			v.fillRect(pix, s)
		case core.ShapeCircle:
			pix[v.halfRow(s.Y)][v.column(s.X)] = s.Color
		}
	}

	for row := range v.rows {
		for col := range v.cols {
			dst.SetCell(col, top+row, halfBlock(pix[row*2][col], pix[row*2+1][col]))
		}
	}
}

func (v Viewport) fillRect(pix [][]core.Color, s core.Sprite) {
	b := s.Bounds()
	c0, c1 := v.column(b.Left), v.column(b.Right-1e-9)
	painted := false
	for hy := range v.rows * 2 {
		py := v.arena.Ceiling + (float64(hy)+0.5)*v.sy
		if py < b.Top || py >= b.Bottom {
			continue
		}
		for cx := c0; cx <= c1; cx++ {
			pix[hy][cx] = s.Color
		}
		painted = true
	}
	if !painted {
		hy := v.halfRow((b.Top + b.Bottom) / 2)
		for cx := c0; cx <= c1; cx++ {
			pix[hy][cx] = s.Color
		}
	}
}

// halfBlock combines two vertical pixels into one cell.
func halfBlock(upper, lower core.Color) core.Cell {
	switch {
	case upper == core.ColorDefault && lower == core.ColorDefault:
		return core.Cell{Rune: ' '}
	case lower == core.ColorDefault:
		return core.Cell{Rune: upperHalf, Color: upper}
	case upper == core.ColorDefault:
		return core.Cell{Rune: lowerHalf, Color: lower}
	default:
		return core.Cell{Rune: upperHalf, Color: upper, Background: lower}
	}
}

// DrawHUD draws the status bar on row 0: score on the left, lives on the right.
func DrawHUD(dst *core.Screen, title string, state core.GameState, bar core.Color) {
	w := dst.Width()
	for x := range w {
		dst.SetCell(x, 0, core.Cell{Rune: ' ', Background: bar})
	}

	left := fmt.Sprintf(" SCORE: %d", state.Score)
	right := fmt.Sprintf("LIVES: %d ", state.Lives)
	drawBarText(dst, 0, left, bar)
	drawBarText(dst, w-len(right), right, bar)
	if len(left)+len(right)+len(title)+2 <= w {
		drawBarText(dst, (w-len(title))/2, title, bar)
	}
}

func drawBarText(dst *core.Screen, x int, text string, bar core.Color) {
	for i, r := range []rune(text) {
		dst.SetCell(x+i, 0, core.Cell{Rune: r, Color: core.ColorWhite, Background: bar})
	}
}

// DrawMessage draws a boxed message in the middle of the playfield.
func DrawMessage(dst *core.Screen, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	boxW := width + 4
	boxH := len(lines) + 2
	x := (dst.Width() - boxW) / 2
	y := hudRows + (dst.Height()-hudRows-boxH)/2

	box := core.NewRect(x, y, boxW, boxH)
	for by := box.Y; by < box.Bottom(); by++ {
		for bx := box.X; bx < box.Right(); bx++ {
			dst.SetCell(bx, by, core.Cell{Rune: ' ', Background: core.ColorRed})
		}
	}
	for i, l := range lines {
		lx := x + (boxW-len([]rune(l)))/2
		for j, r := range []rune(l) {
			dst.SetCell(lx+j, y+1+i, core.Cell{Rune: r, Color: core.ColorWhite, Background: core.ColorRed})
		}
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	type colors struct{ fg, bg core.Color }
	styles := make(map[colors]lipgloss.Style)
	styleFor := func(c colors) lipgloss.Style {
		if st, ok := styles[c]; ok {
			return st
		}
		st := lipgloss.NewStyle()
		if c.fg != core.ColorDefault {
			st = st.Foreground(lipgloss.Color(string(c.fg)))
		}
		if c.bg != core.ColorDefault {
			st = st.Background(lipgloss.Color(string(c.bg)))
		}
		styles[c] = st
		return st
	}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := colors{cell.Color, cell.Background}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (colors{cell.Color, cell.Background}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start == (colors{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}
