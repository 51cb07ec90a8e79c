package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded YAML diverges from Default():\n got %+v\nwant %+v", cfg, Default())
	}
}

func TestDefaultGeometry(t *testing.T) {
	cfg := Default()

	if cfg.BrickCount() != 60 {
		t.Errorf("BrickCount() = %d, expected 60", cfg.BrickCount())
	}
	if got := cfg.PaddleTopEdge(); got != 730 {
		t.Errorf("PaddleTopEdge() = %v, expected 730", got)
	}
	if got := cfg.AttachY(); got != 725 {
		t.Errorf("AttachY() = %v, expected 725", got)
	}
	if cfg.PaddleMinX() != 50 || cfg.PaddleMaxX() != 630 {
		t.Errorf("paddle bounds = [%v, %v], expected [50, 630]", cfg.PaddleMinX(), cfg.PaddleMaxX())
	}
	if cfg.TickPeriod != 10*time.Millisecond {
		t.Errorf("TickPeriod = %v, expected 10ms", cfg.TickPeriod)
	}
}

func TestParsePartialOverlay(t *testing.T) {
	cfg, err := Parse([]byte("launch_speed: 3.5\ntick_period: 16ms\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.LaunchSpeed != 3.5 {
		t.Errorf("LaunchSpeed = %v, expected 3.5", cfg.LaunchSpeed)
	}
	if cfg.TickPeriod != 16*time.Millisecond {
		t.Errorf("TickPeriod = %v, expected 16ms", cfg.TickPeriod)
	}
	if cfg.Columns != 10 || cfg.BallRadius != 10 {
		t.Error("unspecified keys should keep their defaults")
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero radius", func(c *Config) { c.BallRadius = 0 }, "ball_radius"},
		{"no columns", func(c *Config) { c.Columns = 0 }, "grid"},
		{"zero tick", func(c *Config) { c.TickPeriod = 0 }, "tick_period"},
		{"inverted angles", func(c *Config) { c.LaunchAngleMin, c.LaunchAngleMax = 150, 30 }, "launch angles"},
		{"angle past 180", func(c *Config) { c.LaunchAngleMax = 200 }, "launch angles"},
		{"paddle too wide", func(c *Config) { c.PaddleWidth = 1000 }, "paddle_width"},
		{"negative margin", func(c *Config) { c.WallMargin = -1 }, "must not be negative"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("acceleration: 1.1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Acceleration != 1.1 {
		t.Errorf("Acceleration = %v, expected 1.1", cfg.Acceleration)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("rows: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() of an invalid custom file should fail")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "tick_period: 10ms") {
		t.Errorf("tick_period should encode as a duration string:\n%s", data)
	}

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg != Default() {
		t.Error("round trip should preserve the configuration")
	}
}
