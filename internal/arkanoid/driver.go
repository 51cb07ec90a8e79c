package arkanoid

import (
	"context"
	"sync/atomic"
	"time"
)

// Ticker is anything that can be advanced by one fixed step.
type Ticker interface {
	Tick() TickResult
}

// Driver calls Tick on a fixed period, independent of any UI.
type Driver struct {
	target Ticker
	period time.Duration
	onTick func(TickResult)
	ticks  atomic.Uint64
}

// NewDriver creates a driver for target. onTick, if not nil, receives every
// tick result on the driver goroutine.
func NewDriver(target Ticker, period time.Duration, onTick func(TickResult)) *Driver {
	return &Driver{
		target: target,
		period: period,
		onTick: onTick,
	}
}

// Run ticks every period until ctx is done and returns ctx.Err().
// Missed periods are dropped, not replayed.
func (d *Driver) Run(ctx context.Context) error {
	t := time.NewTicker(d.period)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if err := ctx.Err(); err != nil {
				return err
			}
			d.step()
		}
	}
}

// Advance runs n ticks immediately, without waiting for the period.
func (d *Driver) Advance(n int) {
	for range n {
		d.step()
	}
}

func (d *Driver) step() {
	res := d.target.Tick()
	d.ticks.Add(1)
	if d.onTick != nil {
		d.onTick(res)
	}
}

// Ticks returns the number of ticks this driver has run.
func (d *Driver) Ticks() uint64 {
	return d.ticks.Load()
}
