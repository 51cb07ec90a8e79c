package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/arkanoid.yaml
var defaultYAML []byte

// Default returns the built-in playfield configuration.
func Default() Config {
	return Config{
		ScreenWidth:  680,
		ScreenHeight: 800,

		BallRadius: 10,

		BrickWidth:  60,
		BrickHeight: 20,

		PaddleWidth:        100,
		PaddleHeight:       20,
		PaddleBottomOffset: 50,

		Columns:      10,
		Rows:         6,
		BrickPitchX:  65,
		BrickPitchY:  30,
		BrickOffsetX: 30,
		BrickOffsetY: 60,

		TickPeriod:   10 * time.Millisecond,
		Acceleration: 1.05,
		LaunchSpeed:  2,

		SafeAreaBottom: 0,
		WallMargin:     10,
		LaunchOffset:   15,
		LaunchAngleMin: 30,
		LaunchAngleMax: 150,
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
