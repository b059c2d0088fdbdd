/* refresher.go
 * Periodic score refresh. The engine holds no timers; this scheduler issues a
 * RefreshScores on a fixed interval and respects the engine's busy signal; a rejected
 * tick is simply skipped, the next one will land.
 */

package scheduler

import (
	"context"
	"log/slog"
	"time"

	"mmtui/api/engine"
)

// Submitter is the slice of the engine the refresher needs.
type Submitter interface {
	Submit(engine.Request) bool
}

// Refresher drives periodic RefreshScores requests.
type Refresher struct {
	engine   Submitter
	interval time.Duration
}

// New creates a refresher with the given interval. Zero falls back to 30 seconds, the
// cadence that tracks live scores without hammering the provider.
func New(e Submitter, interval time.Duration) *Refresher {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Refresher{engine: e, interval: interval}
}

// Run ticks until ctx is cancelled. The first tick is skipped so startup loading is
// not double-triggered.
func (r *Refresher) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !r.engine.Submit(engine.RefreshScores{}) {
				slog.Debug("engine busy, skipping refresh tick")
			}
		}
	}
}
