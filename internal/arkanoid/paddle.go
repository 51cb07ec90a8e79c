package arkanoid

import (
	"math"

	"github.com/vovakirdan/arkanoid/internal/core"
)

// Paddle holds the horizontal center of the paddle. Its vertical position is
// fixed by the playfield geometry.
type Paddle struct {
	X    float64
	MinX float64
	MaxX float64
}

// Set clamps x into [MinX, MaxX] and stores it. NaN leaves the paddle where it
// is. Returns the stored value.
func (p *Paddle) Set(x float64) float64 {
	if math.IsNaN(x) {
		return p.X
	}
	p.X = core.ClampF(x, p.MinX, p.MaxX)
	return p.X
}
