package game

import (
	"math"

	"github.com/vovakirdan/quadpong/internal/core"
)

// spinFactor scales the paddle-center offset added to the tangential velocity.
const spinFactor = -0.1

// Body is anything that takes part in collision checks.
type Body interface {
	Bounds() core.Rect
	CanCollide() bool
}

// IsCollision reports whether two bodies overlap. A body that cannot
// collide never collides, whatever its geometry.
func IsCollision(a, b Body) bool {
	if !a.CanCollide() || !b.CanCollide() {
		return false
	}
	return a.Bounds().Overlaps(b.Bounds())
}

// SolveBallBallCollision exchanges the velocity component along the line
// between the two balls. Separating balls are left untouched.
func SolveBallBallCollision(a, b *Ball) {
	nx := b.x - a.x
	ny := b.y - a.y
	dist := math.Hypot(nx, ny)
	if dist == 0 {
		return
	}
	nx /= dist
	ny /= dist

	speed := (a.dx-b.dx)*nx + (a.dy-b.dy)*ny
	if speed < 0 {
		return
	}
	a.dx -= speed * nx
	a.dy -= speed * ny
	b.dx += speed * nx
	b.dy += speed * ny
}

// SolveBallPaddleCollision reflects the ball off the paddle when the ball is
// moving toward the paddle's side, and adds spin from the offset between the
// paddle center and the ball position.
func SolveBallPaddleCollision(ball *Ball, paddle *Paddle) {
	cx, cy := paddle.Bounds().Center()
	offX := cx - ball.x
	offY := cy - ball.y

	switch {
	case (paddle.side == SideTop && ball.dy < 0) || (paddle.side == SideBottom && ball.dy > 0):
		ball.dx += offX * spinFactor
		ball.dy *= -1
	case (paddle.side == SideRight && ball.dx > 0) || (paddle.side == SideLeft && ball.dx < 0):
		ball.dx *= -1
		ball.dy += offY * spinFactor
	}
}
