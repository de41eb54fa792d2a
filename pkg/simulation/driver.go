package simulation

import (
	"context"
	"time"

	golog "github.com/tochemey/goakt/v3/log"
)

// TickFunc delivers one frame stamped with the host clock in milliseconds.
type TickFunc func(ctx context.Context, nowMs int64) error

// Driver paces frames with a ticker. It is used when no renderer drives the
// simulation (the desktop viewer ticks from its own update loop).
type Driver struct {
	interval time.Duration
	tick     TickFunc
	now      func() time.Time
	logger   golog.Logger
}

func NewDriver(interval time.Duration, tick TickFunc, logger golog.Logger) *Driver {
	if interval <= 0 {
		interval = time.Second / 60
	}
	if logger == nil {
		logger = golog.DiscardLogger
	}
	return &Driver{
		interval: interval,
		tick:     tick,
		now:      time.Now,
		logger:   logger,
	}
}

// Run blocks until ctx is done. The context is checked again before every
// frame so no tick is scheduled after cancellation.
func (d *Driver) Run(ctx context.Context) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		if ctx.Err() != nil {
			return
		}
		if err := d.tick(ctx, d.now().UnixMilli()); err != nil && ctx.Err() == nil {
			d.logger.Warnf("frame tick failed: %v", err)
		}
	}
}
