package arkanoid

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/core"
)

// TickResult describes what happened during one tick.
type TickResult struct {
	Tick     uint64
	Attached bool
	Resolution
}

// Simulation owns the whole game state: ball, paddle, brick grid and the
// launch RNG. Every method takes the same mutex, so drag, launch and tick
// callers may run on different goroutines; each call observes the writes of
// the calls that completed before it.
type Simulation struct {
	mu sync.Mutex

	cfg    config.Config
	ball   Ball
	paddle Paddle
	grid   *BrickGrid
	rng    *RNG
	seed   int64

	ticks     uint64
	bricksHit int

	logger *log.Logger
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithLogger sets the logger used for launch and brick events (debug level).
func WithLogger(l *log.Logger) Option {
	return func(s *Simulation) {
		s.logger = l
	}
}

// WithBrickGrid replaces the grid built from the configuration.
func WithBrickGrid(g *BrickGrid) Option {
	return func(s *Simulation) {
		s.grid = g
	}
}

// New creates a simulation with the paddle centered and the ball attached.
func New(cfg config.Config, seed int64, opts ...Option) *Simulation {
	s := &Simulation{
		cfg:  cfg,
		grid: NewBrickGridFromConfig(cfg),
		rng:  NewRNG(seed),
		seed: seed,
		paddle: Paddle{
			MinX: cfg.PaddleMinX(),
			MaxX: cfg.PaddleMaxX(),
		},
	}
	for _, opt := range opts {
		opt(s)
	}

	s.paddle.Set(cfg.ScreenWidth / 2)
	s.ball = Ball{Attached: true}
	s.ball.Home(s.paddle.X, cfg.AttachY())
	return s
}

// SetPaddlePosition moves the paddle center to x, clamped to the playfield.
// Returns the stored position.
func (s *Simulation) SetPaddlePosition(x float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.paddle.Set(x)
}

// TriggerLaunch releases an attached ball at a random upward angle.
// Returns false, without touching any state, if the ball is already launched.
func (s *Simulation) TriggerLaunch() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.launch()
}

func (s *Simulation) launch() bool {
	if !s.ball.Attached {
		return false
	}

	// Leave from where the paddle is now, not where it was last tick.
	s.ball.Home(s.paddle.X, s.cfg.AttachY())
	angle := s.rng.Range(s.cfg.LaunchAngleMin, s.cfg.LaunchAngleMax)
	s.ball.Launch(s.cfg.LaunchSpeed, angle)

	if s.logger != nil {
		s.logger.Debug("ball launched",
			"tick", s.ticks,
			"angle", angle,
			"vx", s.ball.Vel.X,
			"vy", s.ball.Vel.Y,
		)
	}
	return true
}

// Tick advances the simulation by one fixed step: move (or re-home) the ball,
// then walls, paddle and brick checks.
func (s *Simulation) Tick() TickResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.tick()
}

func (s *Simulation) tick() TickResult {
	s.ticks++

	if s.ball.Attached {
		s.ball.Home(s.paddle.X, s.cfg.AttachY())
	} else {
		s.ball.Integrate()
	}

	res := Resolve(&s.ball, s.paddle.X, s.grid, s.cfg)
	if res.Events.Has(CollisionBrick) {
		s.bricksHit++
		if s.logger != nil {
			s.logger.Debug("brick hit",
				"tick", s.ticks,
				"brick", res.BrickID,
				"speed", s.ball.Speed(),
			)
		}
	}

	return TickResult{
		Tick:       s.ticks,
		Attached:   s.ball.Attached,
		Resolution: res,
	}
}

// Step applies the input gathered since the previous tick, then ticks once.
// A drag target is applied first, then left/right nudges, then launch.
func (s *Simulation) Step(in core.InputFrame) TickResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if x, ok := in.Drag(); ok {
		s.paddle.Set(x)
	}

	nudge := s.cfg.PaddleWidth / 4
	if in.Has(core.ActionLeft) {
		s.paddle.Set(s.paddle.X - nudge)
	}
	if in.Has(core.ActionRight) {
		s.paddle.Set(s.paddle.X + nudge)
	}

	if in.Has(core.ActionLaunch) {
		s.launch()
	}

	return s.tick()
}

// Ball returns a copy of the ball state.
func (s *Simulation) Ball() Ball {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ball
}

// BallRadius returns the ball radius.
func (s *Simulation) BallRadius() float64 {
	return s.cfg.BallRadius
}

// Paddle returns the paddle center x.
func (s *Simulation) Paddle() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.paddle.X
}

// PaddleSize returns the fixed paddle width and height.
func (s *Simulation) PaddleSize() (w, h float64) {
	return s.cfg.PaddleWidth, s.cfg.PaddleHeight
}

// Bricks returns all bricks in id order.
func (s *Simulation) Bricks() []Brick {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.grid.Bricks()
}

// BrickPosition returns the center of the brick with the given id.
func (s *Simulation) BrickPosition(id int) core.Vec2 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.grid.Position(id)
}

// BricksHit returns how many bricks have been struck.
func (s *Simulation) BricksHit() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.bricksHit
}

// BricksRemaining returns how many bricks have not been hit yet.
func (s *Simulation) BricksRemaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.grid.Remaining()
}

// Ticks returns the number of ticks run so far.
func (s *Simulation) Ticks() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ticks
}

// Seed returns the seed the launch RNG started from.
func (s *Simulation) Seed() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.seed
}

// Config returns the playfield configuration.
func (s *Simulation) Config() config.Config {
	return s.cfg
}
