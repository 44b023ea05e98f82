// Package counter implements the timed counting loop that produces the
// throughput sample: a single tight increment with no I/O in the hot path
// aside from the periodic progress checkpoint.
package counter

import (
	"time"

	"github.com/GautierTechnology/devops-cpu-stress-2025Q1-native-cli/internal/clock"
	"github.com/GautierTechnology/devops-cpu-stress-2025Q1-native-cli/internal/domain"
)

// CheckpointInterval is the number of iterations between progress
// snapshots.
const CheckpointInterval = 100_000

// DefaultWindow is the measurement window length for the fixed-window
// strategy.
const DefaultWindow = time.Second

// ProgressFunc receives each checkpoint as it is taken. It runs inside the
// measured window, so implementations should stay cheap; at one call per
// hundred thousand iterations the cost is amortized away.
type ProgressFunc func(iteration uint64, at time.Time)

// Counter runs the counting loop for one cycle.
type Counter struct {
	Clock    clock.Clock
	Strategy domain.Strategy
	// Window overrides the fixed-window length; zero means DefaultWindow.
	Window time.Duration
	// Interval overrides the checkpoint spacing; zero means
	// CheckpointInterval.
	Interval uint64
}

// Run counts until the strategy's stop condition holds and returns the
// number of completed increments together with the checkpoints taken along
// the way. A window that elapses before the first increment yields zero.
//
// The two strategies are not numerically equivalent. Wall-second measures
// the remainder of the current local second and re-samples the clock on
// every iteration, as the earliest revisions of this tool did. Fixed-window
// measures a true one-second monotonic window and is the default.
func (c *Counter) Run(progress ProgressFunc) (uint64, []domain.Checkpoint) {
	interval := c.Interval
	if interval == 0 {
		interval = CheckpointInterval
	}

	var stop func() bool
	switch c.Strategy {
	case domain.StrategyWallSecond:
		start := c.Clock.Second()
		stop = func() bool { return c.Clock.Second() != start }
	default:
		window := c.Window
		if window == 0 {
			window = DefaultWindow
		}
		deadline := c.Clock.Now().Add(window)
		stop = func() bool { return !c.Clock.Now().Before(deadline) }
	}

	var n uint64
	var checkpoints []domain.Checkpoint

	for !stop() {
		n++

		if n%interval == 0 {
			at := c.Clock.Now()
			checkpoints = append(checkpoints, domain.Checkpoint{Iteration: n, At: at})
			if progress != nil {
				progress(n, at)
			}
		}
	}

	return n, checkpoints
}
