// Package arkanoid implements the brick-breaker simulation core: a paddle,
// one ball and a fixed grid of bricks advanced by a fixed-period tick.
package arkanoid

import (
	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/core"
)

// Brick is a single destructible obstacle. Once Hit is set it never reverts.
type Brick struct {
	ID  int
	Hit bool
}

// Layout maps a brick id to the center of its cell.
type Layout func(id int) core.Vec2

// GridLayout returns the row-major layout described by cfg:
// x = offsetX + (id % columns) * pitchX, y = offsetY + (id / columns) * pitchY.
func GridLayout(cfg config.Config) Layout {
	cols := cfg.Columns
	return func(id int) core.Vec2 {
		return core.V(
			cfg.BrickOffsetX+float64(id%cols)*cfg.BrickPitchX,
			cfg.BrickOffsetY+float64(id/cols)*cfg.BrickPitchY,
		)
	}
}

// BrickGrid owns the bricks and their hit state.
type BrickGrid struct {
	bricks []Brick
	width  float64
	height float64
	layout Layout
}

// NewBrickGrid creates count unhit bricks of size w x h placed by layout.
func NewBrickGrid(count int, w, h float64, layout Layout) *BrickGrid {
	bricks := make([]Brick, count)
	for i := range bricks {
		bricks[i] = Brick{ID: i}
	}
	return &BrickGrid{
		bricks: bricks,
		width:  w,
		height: h,
		layout: layout,
	}
}

// NewBrickGridFromConfig creates the standard grid for cfg.
func NewBrickGridFromConfig(cfg config.Config) *BrickGrid {
	return NewBrickGrid(cfg.BrickCount(), cfg.BrickWidth, cfg.BrickHeight, GridLayout(cfg))
}

// Len returns the number of bricks.
func (g *BrickGrid) Len() int {
	return len(g.bricks)
}

// Bricks returns a copy of all bricks in id order.
func (g *BrickGrid) Bricks() []Brick {
	out := make([]Brick, len(g.bricks))
	copy(out, g.bricks)
	return out
}

// Position returns the center of the brick with the given id.
func (g *BrickGrid) Position(id int) core.Vec2 {
	return g.layout(id)
}

// Rect returns the bounding rectangle of the brick with the given id.
func (g *BrickGrid) Rect(id int) core.RectF {
	return core.RectAround(g.layout(id), g.width, g.height)
}

// IsHit reports whether the brick has been struck. Unknown ids report false.
func (g *BrickGrid) IsHit(id int) bool {
	if id < 0 || id >= len(g.bricks) {
		return false
	}
	return g.bricks[id].Hit
}

// MarkHit marks the brick as struck. Re-marking and unknown ids are no-ops.
func (g *BrickGrid) MarkHit(id int) {
	if id < 0 || id >= len(g.bricks) {
		return
	}
	g.bricks[id].Hit = true
}

// Remaining returns the number of unhit bricks.
func (g *BrickGrid) Remaining() int {
	n := 0
	for _, b := range g.bricks {
		if !b.Hit {
			n++
		}
	}
	return n
}

// FindCollision returns the lowest id of an unhit brick whose rectangle,
// expanded by radius, contains p.
func (g *BrickGrid) FindCollision(p core.Vec2, radius float64) (int, bool) {
	for _, b := range g.bricks {
		if b.Hit {
			continue
		}
		if g.Rect(b.ID).Expand(radius).Contains(p) {
			return b.ID, true
		}
	}
	return -1, false
}
