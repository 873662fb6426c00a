package breakout

import "math"

// Snapshot contains the complete game state for replay verification and
// save/restore. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick   uint64
	Phase  string
	Score  int
	Lives  int
	Paused bool
	Nag    bool

	BallX         float64
	BallY         float64
	BallSpeed     float64
	BallDirection float64

	PaddleX     float64
	PaddleWidth float64

	// Brick states, row-major; true means the brick still stands
	Bricks  []bool
	RowsHit []bool
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	bricks := make([]bool, len(g.field.Bricks))
	for i, b := range g.field.Bricks {
		bricks[i] = b.Exists()
	}

	return Snapshot{
		Tick:   g.tick,
		Phase:  g.phase,
		Score:  g.score,
		Lives:  g.lives,
		Paused: g.paused,
		Nag:    g.nag,

		BallX:         g.ball.X,
		BallY:         g.ball.Y,
		BallSpeed:     g.ball.Speed,
		BallDirection: g.ball.Direction,

		PaddleX:     g.paddle.X,
		PaddleWidth: g.paddle.Width,

		Bricks:  bricks,
		RowsHit: append([]bool(nil), g.field.rowHit...),
	}
}

// ApplySnapshot restores game state from a snapshot. Brick and row data of
// the wrong length (taken from a different layout) is ignored.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.tick = snap.Tick
	g.phase = snap.Phase
	g.score = snap.Score
	g.lives = snap.Lives
	g.paused = snap.Paused
	g.nag = snap.Nag

	g.ball.X = snap.BallX
	g.ball.Y = snap.BallY
	g.ball.Speed = snap.BallSpeed
	g.ball.Direction = snap.BallDirection

	g.paddle.X = snap.PaddleX
	g.paddle.Width = snap.PaddleWidth

	if len(snap.Bricks) == len(g.field.Bricks) {
		for i, alive := range snap.Bricks {
			g.field.Bricks[i].destroyed = !alive
		}
	}
	if len(snap.RowsHit) == len(g.field.rowHit) {
		copy(g.field.rowHit, snap.RowsHit)
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range snap.Phase {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.Paused)
	h = h*31 + boolBit(snap.Nag)

	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + math.Float64bits(snap.BallSpeed)
	h = h*31 + math.Float64bits(snap.BallDirection)
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + math.Float64bits(snap.PaddleWidth)

	for _, v := range snap.Bricks {
		h = h*31 + boolBit(v)
	}
	for _, v := range snap.RowsHit {
		h = h*31 + boolBit(v)
	}

	return h
}

func boolBit(v bool) uint64 {
	if v {
		return 1
	}
	return 0
}
