package arkanoid

import (
	"math"

	"github.com/vovakirdan/arkanoid/internal/core"
)

// Ball is the ball state. While Attached the position follows the paddle and
// Vel is ignored; once launched it moves under Vel.
type Ball struct {
	Pos      core.Vec2 // Center
	Vel      core.Vec2 // Distance per tick
	Attached bool
}

// Integrate advances the position by one tick of velocity.
func (b *Ball) Integrate() {
	b.Pos = b.Pos.Add(b.Vel)
}

// Home places an attached ball at (x, y).
func (b *Ball) Home(x, y float64) {
	b.Pos = core.V(x, y)
}

// Launch detaches the ball with the given speed at angle degrees measured
// from the horizontal. Angles in (0, 180) always point upward.
// Returns false if the ball was already launched.
func (b *Ball) Launch(speed, angle float64) bool {
	if !b.Attached {
		return false
	}
	rad := angle * math.Pi / 180
	b.Vel = core.V(speed*math.Cos(rad), -speed*math.Sin(rad))
	b.Attached = false
	return true
}

// Speed returns the velocity magnitude.
func (b Ball) Speed() float64 {
	return b.Vel.Len()
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.Vel.X = -b.Vel.X
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.Vel.Y = -b.Vel.Y
}
