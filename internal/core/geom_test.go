package core

import (
	"math"
	"testing"
)

func TestRectFContains(t *testing.T) {
	r := RectAround(V(30, 60), 60, 20)

	tests := []struct {
		name     string
		p        Vec2
		expected bool
	}{
		{"center", V(30, 60), true},
		{"top-left corner (inclusive)", V(0, 50), true},
		{"bottom-right corner (inclusive)", V(60, 70), true},
		{"outside left", V(-0.01, 60), false},
		{"outside right", V(60.01, 60), false},
		{"outside top", V(30, 49.9), false},
		{"outside bottom", V(30, 70.1), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestRectFExpand(t *testing.T) {
	r := RectAround(V(30, 60), 60, 20).Expand(10)

	if r.MinX != -10 || r.MaxX != 70 || r.MinY != 40 || r.MaxY != 80 {
		t.Errorf("Expand(10) = %+v", r)
	}
	if r.Width() != 80 || r.Height() != 40 {
		t.Errorf("expanded size = %vx%v, expected 80x40", r.Width(), r.Height())
	}
}

func TestVec2(t *testing.T) {
	v := V(3, -4)

	if v.Len() != 5 {
		t.Errorf("Len() = %v, expected 5", v.Len())
	}
	if got := v.Add(V(1, 1)); got != V(4, -3) {
		t.Errorf("Add() = %v", got)
	}
	if got := v.Scale(1.05); math.Abs(got.X-3.15) > 1e-9 || math.Abs(got.Y+4.2) > 1e-9 {
		t.Errorf("Scale(1.05) = %v", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
		{math.Inf(1), 50, 630, 630},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
