package game

import (
	"testing"

	"github.com/vovakirdan/quadpong/internal/config"
)

func TestIsCollision(t *testing.T) {
	tests := []struct {
		name string
		a, b *Ball
		want bool
	}{
		{
			name: "overlap",
			a:    &Ball{x: 0, y: 0, w: 20, h: 20, canCollide: true},
			b:    &Ball{x: 10, y: 10, w: 20, h: 20, canCollide: true},
			want: true,
		},
		{
			name: "touching edges",
			a:    &Ball{x: 0, y: 0, w: 20, h: 20, canCollide: true},
			b:    &Ball{x: 20, y: 0, w: 20, h: 20, canCollide: true},
			want: true,
		},
		{
			name: "separated",
			a:    &Ball{x: 0, y: 0, w: 20, h: 20, canCollide: true},
			b:    &Ball{x: 21, y: 0, w: 20, h: 20, canCollide: true},
			want: false,
		},
		{
			name: "first disarmed",
			a:    &Ball{x: 0, y: 0, w: 20, h: 20},
			b:    &Ball{x: 10, y: 10, w: 20, h: 20, canCollide: true},
			want: false,
		},
		{
			name: "second disarmed",
			a:    &Ball{x: 0, y: 0, w: 20, h: 20, canCollide: true},
			b:    &Ball{x: 10, y: 10, w: 20, h: 20},
			want: false,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsCollision(tc.a, tc.b); got != tc.want {
				t.Errorf("IsCollision() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestIsCollisionPaddleAlwaysArmed(t *testing.T) {
	cfg := config.DefaultGameConfig()
	p := newPaddle(1, testPlayer(t, 1, cfg.Players[0]), SideTop, cfg.Arena, cfg.Paddle)
	b := &Ball{x: 380, y: 25, w: 20, h: 20}

	if IsCollision(b, p) {
		t.Error("disarmed ball must not collide with a paddle")
	}
	b.canCollide = true
	if !IsCollision(b, p) {
		t.Error("armed overlapping ball should collide with a paddle")
	}
}

func TestSolveBallBallCollision(t *testing.T) {
	t.Run("approaching balls exchange velocity", func(t *testing.T) {
		a := &Ball{x: 0, y: 0, dx: 1}
		b := &Ball{x: 10, y: 0, dx: -1}
		SolveBallBallCollision(a, b)
		if a.dx != -1 || b.dx != 1 || a.dy != 0 || b.dy != 0 {
			t.Errorf("a=(%v,%v) b=(%v,%v), expected a=(-1,0) b=(1,0)", a.dx, a.dy, b.dx, b.dy)
		}
	})

	t.Run("separating balls are untouched", func(t *testing.T) {
		a := &Ball{x: 0, y: 0, dx: -1, dy: 0.5}
		b := &Ball{x: 10, y: 0, dx: 1, dy: -0.5}
		SolveBallBallCollision(a, b)
		if a.dx != -1 || a.dy != 0.5 || b.dx != 1 || b.dy != -0.5 {
			t.Errorf("velocities changed: a=(%v,%v) b=(%v,%v)", a.dx, a.dy, b.dx, b.dy)
		}
	})

	t.Run("coincident centers are untouched", func(t *testing.T) {
		a := &Ball{x: 5, y: 5, dx: 1}
		b := &Ball{x: 5, y: 5, dx: -1}
		SolveBallBallCollision(a, b)
		if a.dx != 1 || b.dx != -1 {
			t.Errorf("velocities changed: a.dx=%v b.dx=%v", a.dx, b.dx)
		}
	})
}

func TestSolveBallPaddleCollision(t *testing.T) {
	cfg := config.DefaultGameConfig()
	owner := testPlayer(t, 1, cfg.Players[0])

	tests := []struct {
		name           string
		side           Side
		x, y, dx, dy   float64
		wantDX, wantDY float64
	}{
		{"top approaching", SideTop, 390, 35, 0, -2, -1, 2},
		{"top receding", SideTop, 390, 35, 0, 2, 0, 2},
		{"bottom approaching", SideBottom, 410, 740, 1, 2, 2, -2},
		{"left approaching", SideLeft, 30, 380, -2, 0, 2, -2},
		{"left receding", SideLeft, 30, 380, 2, 0, 2, 0},
		{"right approaching", SideRight, 750, 420, 2, 1, -2, 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := newPaddle(1, owner, tc.side, cfg.Arena, cfg.Paddle)
			b := &Ball{x: tc.x, y: tc.y, w: 20, h: 20, dx: tc.dx, dy: tc.dy}
			SolveBallPaddleCollision(b, p)
			if !approx(b.dx, tc.wantDX) || !approx(b.dy, tc.wantDY) {
				t.Errorf("velocity = (%v, %v), expected (%v, %v)", b.dx, b.dy, tc.wantDX, tc.wantDY)
			}
		})
	}
}

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
