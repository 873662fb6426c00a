package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Field is the brick grid plus the per-row bookkeeping that gates the one-time
// ball acceleration. Bricks are stored row-major.
type Field struct {
	Rows    int
	Columns int
	Bricks  []*Brick

	accelerations []float64
	rowHit        []bool
}

// Hit describes a destroyed brick.
type Hit struct {
	Index        int
	Row          int
	Value        int
	Acceleration float64 // 0 unless this was the row's first hit since reset
}

// NewField lays out the brick grid below the ceiling.
func NewField(cfg *config.BreakoutConfig, ceiling float64) *Field {
	bc := cfg.Bricks
	colors := brickColors(bc)

	f := &Field{
		Rows:          bc.Rows,
		Columns:       bc.Columns,
		Bricks:        make([]*Brick, 0, bc.Rows*bc.Columns),
		accelerations: append([]float64(nil), bc.Accelerations...),
		rowHit:        make([]bool, bc.Rows),
	}

	for row := range bc.Rows {
		y := ceiling + bc.YOffset + bc.Spacing + float64(row)*(bc.Height+bc.Spacing)
		for col := range bc.Columns {
			x := bc.Spacing + float64(col)*(bc.Width+bc.Spacing)
			f.Bricks = append(f.Bricks, &Brick{
				rect: rect{
					X:      x,
					Y:      y,
					Width:  bc.Width,
					Height: bc.Height,
					Color:  colors[row],
				},
				Value: bc.Values[row],
				Row:   row,
			})
		}
	}
	return f
}

// brickColors returns one color per row.
func brickColors(bc config.BricksConfig) []core.Color {
	if bc.Color == config.RainbowColor {
		return core.Rainbow(bc.Rows, config.RainbowSweep())
	}
	colors := make([]core.Color, bc.Rows)
	for i := range colors {
		colors[i] = core.Color(bc.Color)
	}
	return colors
}

// Reset restores every brick and clears the row flags.
func (f *Field) Reset() {
	for _, b := range f.Bricks {
		b.destroyed = false
	}
	for i := range f.rowHit {
		f.rowHit[i] = false
	}
}

// Collide scans the bricks row-major and resolves the first collision.
// At most one brick is destroyed per call.
func (f *Field) Collide(ball *Ball) (Hit, bool) {
	for i, b := range f.Bricks {
		if !Resolve(ball, b) {
			continue
		}
		b.destroyed = true
		hit := Hit{Index: i, Row: b.Row, Value: b.Value}
		if !f.rowHit[b.Row] {
			f.rowHit[b.Row] = true
			hit.Acceleration = f.accelerations[b.Row]
		}
		return hit, true
	}
	return Hit{}, false
}

// Remaining returns the number of bricks still standing.
func (f *Field) Remaining() int {
	n := 0
	for _, b := range f.Bricks {
		if b.Exists() {
			n++
		}
	}
	return n
}

// RowHit reports whether the row has been hit since the last reset.
func (f *Field) RowHit(row int) bool {
	if row < 0 || row >= len(f.rowHit) {
		return false
	}
	return f.rowHit[row]
}
