package arkanoid

import "math"

// Snapshot is the complete simulation state, using primitive fields only so
// it serializes stably.
type Snapshot struct {
	Tick      uint64  `yaml:"tick"`
	Seed      int64   `yaml:"seed"`
	PaddleX   float64 `yaml:"paddle_x"`
	BallX     float64 `yaml:"ball_x"`
	BallY     float64 `yaml:"ball_y"`
	BallVX    float64 `yaml:"ball_vx"`
	BallVY    float64 `yaml:"ball_vy"`
	Attached  bool    `yaml:"attached"`
	BricksHit int     `yaml:"bricks_hit"`
	Hit       []bool  `yaml:"hit"` // Indexed by brick id
	RNGState  uint64  `yaml:"rng_state"`
}

// Snapshot captures the current state.
func (s *Simulation) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	hit := make([]bool, s.grid.Len())
	for i := range hit {
		hit[i] = s.grid.IsHit(i)
	}

	return Snapshot{
		Tick:      s.ticks,
		Seed:      s.seed,
		PaddleX:   s.paddle.X,
		BallX:     s.ball.Pos.X,
		BallY:     s.ball.Pos.Y,
		BallVX:    s.ball.Vel.X,
		BallVY:    s.ball.Vel.Y,
		Attached:  s.ball.Attached,
		BricksHit: s.bricksHit,
		Hit:       hit,
		RNGState:  s.rng.state,
	}
}

// ApplySnapshot restores state from a snapshot. Brick flags beyond the
// grid size are ignored.
func (s *Simulation) ApplySnapshot(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ticks = snap.Tick
	s.seed = snap.Seed
	s.paddle.Set(snap.PaddleX)
	s.ball.Pos.X = snap.BallX
	s.ball.Pos.Y = snap.BallY
	s.ball.Vel.X = snap.BallVX
	s.ball.Vel.Y = snap.BallVY
	s.ball.Attached = snap.Attached
	s.bricksHit = snap.BricksHit

	s.grid = NewBrickGrid(s.grid.Len(), s.grid.width, s.grid.height, s.grid.layout)
	for id, hit := range snap.Hit {
		if hit {
			s.grid.MarkHit(id)
		}
	}

	s.rng.state = snap.RNGState
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Seed) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + math.Float64bits(snap.BallVX)
	h = h*31 + math.Float64bits(snap.BallVY)
	if snap.Attached {
		h = h*31 + 1
	}
	h = h*31 + uint64(snap.BricksHit) //#nosec G115 -- hash computation

	for _, hit := range snap.Hit {
		h *= 31
		if hit {
			h++
		}
	}

	h = h*31 + snap.RNGState

	return h
}
