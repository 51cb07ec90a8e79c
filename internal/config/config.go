// Package config provides YAML-based playfield configuration: the fixed
// geometry and tuning constants consumed by the simulation core.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config is the single configuration structure recognized by the game.
// All lengths are in playfield units; velocities are units per tick.
type Config struct {
	ScreenWidth  float64 `yaml:"screen_width"`
	ScreenHeight float64 `yaml:"screen_height"`

	BallRadius float64 `yaml:"ball_radius"`

	BrickWidth  float64 `yaml:"brick_width"`
	BrickHeight float64 `yaml:"brick_height"`

	PaddleWidth        float64 `yaml:"paddle_width"`
	PaddleHeight       float64 `yaml:"paddle_height"`
	PaddleBottomOffset float64 `yaml:"paddle_bottom_offset"`

	Columns      int     `yaml:"columns"`
	Rows         int     `yaml:"rows"`
	BrickPitchX  float64 `yaml:"brick_pitch_x"`
	BrickPitchY  float64 `yaml:"brick_pitch_y"`
	BrickOffsetX float64 `yaml:"brick_offset_x"`
	BrickOffsetY float64 `yaml:"brick_offset_y"`

	TickPeriod   time.Duration `yaml:"tick_period"`
	Acceleration float64       `yaml:"acceleration"`
	LaunchSpeed  float64       `yaml:"launch_speed"`

	SafeAreaBottom float64 `yaml:"safe_area_bottom"` // Bottom inset reserved by the host
	WallMargin     float64 `yaml:"wall_margin"`      // Distance from an edge at which the ball reflects
	LaunchOffset   float64 `yaml:"launch_offset"`    // Gap between paddle top and the attached ball
	LaunchAngleMin float64 `yaml:"launch_angle_min"` // Degrees from horizontal
	LaunchAngleMax float64 `yaml:"launch_angle_max"` // Degrees from horizontal, exclusive
}

// BrickCount returns the number of bricks in the grid.
func (c Config) BrickCount() int {
	return c.Columns * c.Rows
}

// PaddleCenterY returns the vertical center of the paddle.
func (c Config) PaddleCenterY() float64 {
	return c.ScreenHeight - c.SafeAreaBottom - c.PaddleBottomOffset
}

// PaddleTopEdge returns the y coordinate the ball must reach to bounce off
// the paddle.
func (c Config) PaddleTopEdge() float64 {
	return c.ScreenHeight - c.SafeAreaBottom - c.PaddleBottomOffset - c.PaddleHeight
}

// AttachY returns the y coordinate of the ball while it rests on the paddle.
func (c Config) AttachY() float64 {
	return c.PaddleCenterY() - c.PaddleHeight/2 - c.LaunchOffset
}

// PaddleMinX returns the smallest allowed paddle center.
func (c Config) PaddleMinX() float64 {
	return c.PaddleWidth / 2
}

// PaddleMaxX returns the largest allowed paddle center.
func (c Config) PaddleMaxX() float64 {
	return c.ScreenWidth - c.PaddleWidth/2
}

// Validate checks that the configuration describes a playable field.
func (c Config) Validate() error {
	var errs []error

	positive := []struct {
		name string
		v    float64
	}{
		{"screen_width", c.ScreenWidth},
		{"screen_height", c.ScreenHeight},
		{"ball_radius", c.BallRadius},
		{"brick_width", c.BrickWidth},
		{"brick_height", c.BrickHeight},
		{"paddle_width", c.PaddleWidth},
		{"paddle_height", c.PaddleHeight},
		{"acceleration", c.Acceleration},
		{"launch_speed", c.LaunchSpeed},
	}
	for _, p := range positive {
		if p.v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", p.name, p.v))
		}
	}

	if c.Columns <= 0 || c.Rows <= 0 {
		errs = append(errs, fmt.Errorf("grid must have at least one column and row, got %dx%d", c.Columns, c.Rows))
	}
	if c.TickPeriod <= 0 {
		errs = append(errs, fmt.Errorf("tick_period must be positive, got %v", c.TickPeriod))
	}
	if c.LaunchAngleMin <= 0 || c.LaunchAngleMax >= 180 || c.LaunchAngleMin >= c.LaunchAngleMax {
		errs = append(errs, fmt.Errorf("launch angles must satisfy 0 < min < max < 180, got [%v, %v)",
			c.LaunchAngleMin, c.LaunchAngleMax))
	}
	if c.PaddleWidth > c.ScreenWidth {
		errs = append(errs, fmt.Errorf("paddle_width %v exceeds screen_width %v", c.PaddleWidth, c.ScreenWidth))
	}
	if c.SafeAreaBottom < 0 || c.WallMargin < 0 || c.LaunchOffset < 0 {
		errs = append(errs, errors.New("safe_area_bottom, wall_margin and launch_offset must not be negative"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid playfield: %w", errors.Join(errs...))
	}
	return nil
}
