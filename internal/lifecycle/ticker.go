package lifecycle

import (
	"context"
	"time"
)

// Countdown streams the remaining time for one end date on a fixed
// cadence. Each subscription owns its timer and stops when the context is
// cancelled, so views tearing down cannot leak ticks.
type Countdown struct {
	interval time.Duration
}

// NewCountdown creates a countdown service emitting on the given interval.
// The displays tick once per second.
func NewCountdown(interval time.Duration) *Countdown {
	if interval <= 0 {
		interval = time.Second
	}
	return &Countdown{interval: interval}
}

// Subscribe emits the current remaining time immediately and then on every
// tick until the context is cancelled or the countdown reaches zero. The
// channel is closed when the subscription ends.
func (c *Countdown) Subscribe(ctx context.Context, endDate time.Time) <-chan RemainingTime {
	out := make(chan RemainingTime, 1)

	go func() {
		defer close(out)

		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		emit := func(now time.Time) bool {
			left := Remaining(endDate, now)
			select {
			case out <- left:
			case <-ctx.Done():
				return false
			}
			return left != RemainingTime{}
		}

		if !emit(time.Now()) {
			return
		}
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				if !emit(now) {
					return
				}
			}
		}
	}()

	return out
}
