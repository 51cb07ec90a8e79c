package arkanoid

import (
	"math"

	"github.com/vovakirdan/arkanoid/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '='
	BallChar   = '●'
	BrickChar  = '█'
)

// LaunchHint is shown on the bottom row while the ball rests on the paddle.
const LaunchHint = "click or press SPACE to launch"

// Viewport maps playfield coordinates onto a character screen.
type Viewport struct {
	cols, rows int
	sx, sy     float64
}

// NewViewport scales a w x h playfield onto cols x rows cells.
func NewViewport(w, h float64, cols, rows int) Viewport {
	return Viewport{
		cols: cols,
		rows: rows,
		sx:   float64(cols) / w,
		sy:   float64(rows) / h,
	}
}

// Cell converts a playfield point to a screen cell, clamped to the screen.
func (v Viewport) Cell(p core.Vec2) (int, int) {
	return v.col(p.X), v.row(p.Y)
}

// PlayfieldX converts a screen column to the playfield x of its center.
func (v Viewport) PlayfieldX(col int) float64 {
	return (float64(col) + 0.5) / v.sx
}

func (v Viewport) col(x float64) int {
	return core.Clamp(int(math.Floor(x*v.sx)), 0, v.cols-1)
}

func (v Viewport) row(y float64) int {
	return core.Clamp(int(math.Floor(y*v.sy)), 0, v.rows-1)
}

// span returns the half-open column range covered by [minX, maxX].
func (v Viewport) span(minX, maxX float64) (int, int) {
	from := v.col(minX)
	to := int(math.Floor(maxX * v.sx))
	if to > v.cols {
		to = v.cols
	}
	if to <= from {
		to = from + 1
	}
	return from, to
}

// Viewport returns the mapping used to draw the simulation on a screen of
// the given size.
func (s *Simulation) Viewport(cols, rows int) Viewport {
	return NewViewport(s.cfg.ScreenWidth, s.cfg.ScreenHeight, cols, rows)
}

// Render draws the current state into dst: unhit bricks, the paddle, the ball
// and a launch hint while the ball is attached.
func (s *Simulation) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	s.mu.Lock()
	ball := s.ball
	paddleX := s.paddle.X
	grid := s.grid
	bricks := grid.Bricks()
	s.mu.Unlock()

	vp := s.Viewport(dst.Width(), dst.Height())

	for _, b := range bricks {
		if b.Hit {
			continue
		}
		r := grid.Rect(b.ID)
		from, to := vp.span(r.MinX, r.MaxX)
		row := vp.row((r.MinY + r.MaxY) / 2)
		dst.FillRect(core.NewRect(from, row, to-from, 1), BrickChar, core.RowColor(b.ID/s.cfg.Columns))
	}

	from, to := vp.span(paddleX-s.cfg.PaddleWidth/2, paddleX+s.cfg.PaddleWidth/2)
	dst.FillRect(core.NewRect(from, vp.row(s.cfg.PaddleCenterY()), to-from, 1), PaddleChar, core.ColorWhite)

	// A ball that left the playfield is not drawn.
	if ball.Pos.X >= 0 && ball.Pos.X <= s.cfg.ScreenWidth && ball.Pos.Y >= 0 && ball.Pos.Y <= s.cfg.ScreenHeight {
		bx, by := vp.Cell(ball.Pos)
		dst.SetColored(bx, by, BallChar, core.ColorBrightWhite)
	}

	if ball.Attached {
		dst.DrawTextCentered(dst.Height()-1, LaunchHint)
	}
}
