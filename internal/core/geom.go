// Package core provides the fundamental types shared by the simulation and the
// terminal host. It has no external dependencies so the game logic stays pure
// and testable.
package core

import "math"

// Vec2 is a point or a displacement in playfield coordinates.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by k on both axes.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// RectF is an axis-aligned bounding box in playfield coordinates.
type RectF struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// RectAround returns the rectangle of size w x h centered on c.
func RectAround(c Vec2, w, h float64) RectF {
	return RectF{
		MinX: c.X - w/2,
		MinY: c.Y - h/2,
		MaxX: c.X + w/2,
		MaxY: c.Y + h/2,
	}
}

// Expand grows the rectangle by d on every side.
// Expanding by a circle's radius turns a circle/box test into a point test.
func (r RectF) Expand(d float64) RectF {
	return RectF{MinX: r.MinX - d, MinY: r.MinY - d, MaxX: r.MaxX + d, MaxY: r.MaxY + d}
}

// Contains reports whether p lies inside r. All four edges are inclusive.
func (r RectF) Contains(p Vec2) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// Width returns the horizontal extent.
func (r RectF) Width() float64 { return r.MaxX - r.MinX }

// Height returns the vertical extent.
func (r RectF) Height() float64 { return r.MaxY - r.MinY }

// Rect is an integer rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
