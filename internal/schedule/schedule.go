// Package schedule runs recurring callbacks tied to a context's lifetime.
package schedule

import (
	"context"
	"time"
)

// Every calls fn with the current time immediately and then once per
// interval until ctx is done. The ticker is always stopped on return.
func Every(ctx context.Context, interval time.Duration, fn func(now time.Time)) error {
	if interval <= 0 {
		interval = time.Second
	}
	fn(time.Now())

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			fn(now)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
