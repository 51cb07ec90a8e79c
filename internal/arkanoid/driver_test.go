package arkanoid

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/arkanoid/internal/config"
)

func TestDriverAdvance(t *testing.T) {
	s := New(config.Default(), 1)
	s.TriggerLaunch()

	var seen []uint64
	d := NewDriver(s, time.Hour, func(res TickResult) {
		seen = append(seen, res.Tick)
	})
	d.Advance(5)

	if d.Ticks() != 5 || s.Ticks() != 5 {
		t.Errorf("driver ticks = %d, simulation ticks = %d; expected 5", d.Ticks(), s.Ticks())
	}
	for i, tick := range seen {
		if tick != uint64(i+1) {
			t.Errorf("callback %d saw tick %d", i, tick)
		}
	}
}

func TestDriverRunStopsOnCancel(t *testing.T) {
	s := New(config.Default(), 1)
	d := NewDriver(s, time.Millisecond, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := d.Run(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run() = %v, expected deadline exceeded", err)
	}
	if d.Ticks() == 0 {
		t.Error("driver should have ticked at least once")
	}
	if d.Ticks() != s.Ticks() {
		t.Errorf("driver ticks %d != simulation ticks %d", d.Ticks(), s.Ticks())
	}

	// No ticks after Run returns.
	n := s.Ticks()
	time.Sleep(5 * time.Millisecond)
	if s.Ticks() != n {
		t.Error("simulation kept ticking after Run returned")
	}
}
