package arkanoid

import (
	"strings"

	"github.com/vovakirdan/arkanoid/internal/config"
)

// Collision is a set of collision events detected during one tick.
type Collision uint8

const (
	CollisionSideWall Collision = 1 << iota // Left or right wall, dx negated
	CollisionTopWall                        // Top wall, dy negated
	CollisionPaddle                         // Paddle top, dy negated
	CollisionBrick                          // Brick hit, velocity accelerated then dy negated

	CollisionNone Collision = 0
)

// Has reports whether c includes every event in other.
func (c Collision) Has(other Collision) bool {
	return c&other == other && other != 0
}

// String lists the events, e.g. "side|brick".
func (c Collision) String() string {
	if c == CollisionNone {
		return "none"
	}
	var parts []string
	if c.Has(CollisionSideWall) {
		parts = append(parts, "side")
	}
	if c.Has(CollisionTopWall) {
		parts = append(parts, "top")
	}
	if c.Has(CollisionPaddle) {
		parts = append(parts, "paddle")
	}
	if c.Has(CollisionBrick) {
		parts = append(parts, "brick")
	}
	return strings.Join(parts, "|")
}

// Resolution is the outcome of running the collision rules once.
type Resolution struct {
	Events  Collision
	BrickID int // Valid only when Events has CollisionBrick
}

// CheckWalls reflects the ball off the side and top walls. The position is
// not corrected, so a ball may sit inside the margin for a tick.
func CheckWalls(ball *Ball, cfg config.Config) Collision {
	events := CollisionNone

	if ball.Pos.X <= cfg.WallMargin || ball.Pos.X >= cfg.ScreenWidth-cfg.WallMargin {
		ball.BounceX()
		events |= CollisionSideWall
	}

	if ball.Pos.Y <= cfg.WallMargin {
		ball.BounceY()
		events |= CollisionTopWall
	}

	return events
}

// CheckPaddle reflects a descending ball whose bottom edge reached the paddle
// top this tick while its top edge has not yet passed it, and whose horizontal
// extent overlaps the paddle. Only dy changes.
func CheckPaddle(ball *Ball, paddleX float64, cfg config.Config) bool {
	if ball.Vel.Y <= 0 {
		return false
	}

	r := cfg.BallRadius
	top := cfg.PaddleTopEdge()
	left := paddleX - cfg.PaddleWidth/2
	right := paddleX + cfg.PaddleWidth/2

	if ball.Pos.Y+r < top || ball.Pos.Y-r >= top {
		return false
	}
	if ball.Pos.X+r < left || ball.Pos.X-r > right {
		return false
	}

	ball.BounceY()
	return true
}

// CheckBrick marks the lowest-id unhit brick the ball overlaps and applies
// the impact response: both velocity components scale by the acceleration
// factor, then dy is negated. At most one brick is processed.
func CheckBrick(ball *Ball, grid *BrickGrid, cfg config.Config) (int, bool) {
	id, ok := grid.FindCollision(ball.Pos, cfg.BallRadius)
	if !ok {
		return -1, false
	}

	grid.MarkHit(id)
	ball.Vel = ball.Vel.Scale(cfg.Acceleration)
	ball.BounceY()
	return id, true
}

// Resolve runs walls, paddle and brick checks in that order.
func Resolve(ball *Ball, paddleX float64, grid *BrickGrid, cfg config.Config) Resolution {
	res := Resolution{BrickID: -1}

	res.Events |= CheckWalls(ball, cfg)

	if CheckPaddle(ball, paddleX, cfg) {
		res.Events |= CollisionPaddle
	}

	if id, ok := CheckBrick(ball, grid, cfg); ok {
		res.Events |= CollisionBrick
		res.BrickID = id
	}

	return res
}
