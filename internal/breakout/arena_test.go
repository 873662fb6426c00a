package breakout

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestBounce(t *testing.T) {
	arena := core.Arena{Width: 400, Height: 300, Ceiling: 50}
	const dir = math.Pi / 5

	tests := []struct {
		name    string
		x, y    float64
		want    Wall
		wantDir float64
		wantX   float64
		wantY   float64
	}{
		{"open space", 200, 150, WallNone, dir, 200, 150},
		{"right wall clipped", 398, 150, WallSide, math.Pi - dir, 395, 150},
		{"right wall touching", 395, 150, WallSide, math.Pi - dir, 395, 150},
		{"left wall clipped", 2, 150, WallSide, math.Pi - dir, 5, 150},
		{"ceiling clipped", 200, 52, WallCeiling, -dir, 200, 55},
		{"ceiling touching", 200, 55, WallCeiling, -dir, 200, 55},
		{"floor", 200, 297, WallFloor, -dir, 200, 297},
		{"side wins over ceiling", 2, 52, WallSide, math.Pi - dir, 5, 52},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ball := &Ball{X: tt.x, Y: tt.y, Radius: 5, Direction: dir}
			if got := Bounce(ball, arena); got != tt.want {
				t.Errorf("Bounce() = %v, expected %v", got, tt.want)
			}
			if !angleEqual(ball.Direction, tt.wantDir) {
				t.Errorf("direction = %v, expected %v", ball.Direction, tt.wantDir)
			}
			if ball.X != tt.wantX || ball.Y != tt.wantY {
				t.Errorf("position = (%v, %v), expected (%v, %v)", ball.X, ball.Y, tt.wantX, tt.wantY)
			}
		})
	}
}
