package counter

import (
	"testing"
	"time"

	"github.com/GautierTechnology/devops-cpu-stress-2025Q1-native-cli/internal/clock"
	"github.com/GautierTechnology/devops-cpu-stress-2025Q1-native-cli/internal/domain"
)

func TestRun_FixedWindowStopsAtDeadline(t *testing.T) {
	t0 := time.Date(2025, 3, 16, 7, 14, 2, 0, time.UTC)
	fake := &clock.Fake{Current: t0, Step: 100 * time.Millisecond}

	c := &Counter{
		Clock:    fake,
		Strategy: domain.StrategyFixedWindow,
		Interval: 1 << 40, // no checkpoints in this trace
	}

	n, checkpoints := c.Run(nil)

	// The deadline read consumes t0; each stop check then advances the
	// fake by 100ms, so the tenth check lands exactly on the deadline.
	if n != 9 {
		t.Errorf("iterations = %d, want 9", n)
	}
	if len(checkpoints) != 0 {
		t.Errorf("checkpoint count = %d, want 0", len(checkpoints))
	}
}

func TestRun_FixedWindowCheckpoints(t *testing.T) {
	t0 := time.Date(2025, 3, 16, 7, 14, 2, 0, time.UTC)
	fake := &clock.Fake{Current: t0, Step: 100 * time.Millisecond}

	c := &Counter{
		Clock:    fake,
		Strategy: domain.StrategyFixedWindow,
		Interval: 3,
	}

	var seen []uint64
	n, checkpoints := c.Run(func(i uint64, at time.Time) {
		seen = append(seen, i)
	})

	if n != 7 {
		t.Errorf("iterations = %d, want 7", n)
	}
	if len(checkpoints) != 2 {
		t.Fatalf("checkpoint count = %d, want 2", len(checkpoints))
	}
	if checkpoints[0].Iteration != 3 || checkpoints[1].Iteration != 6 {
		t.Errorf("checkpoint iterations = %d, %d, want 3, 6", checkpoints[0].Iteration, checkpoints[1].Iteration)
	}
	if !checkpoints[1].At.After(checkpoints[0].At) {
		t.Error("checkpoint timestamps must be ascending")
	}
	if len(seen) != 2 || seen[0] != 3 || seen[1] != 6 {
		t.Errorf("progress callbacks = %v, want [3 6]", seen)
	}
}

func TestRun_FixedWindowZeroIterations(t *testing.T) {
	// Window elapses before the first increment: the count must still be
	// reported as zero, not omitted.
	t0 := time.Date(2025, 3, 16, 7, 14, 2, 0, time.UTC)
	fake := &clock.Fake{Current: t0, Step: time.Second}

	c := &Counter{Clock: fake, Strategy: domain.StrategyFixedWindow}

	n, checkpoints := c.Run(nil)
	if n != 0 {
		t.Errorf("iterations = %d, want 0", n)
	}
	if len(checkpoints) != 0 {
		t.Errorf("checkpoint count = %d, want 0", len(checkpoints))
	}
}

func TestRun_WallSecondStopsOnSecondChange(t *testing.T) {
	fake := &clock.Fake{Seconds: []int{5, 5, 5, 5, 2}}

	c := &Counter{
		Clock:    fake,
		Strategy: domain.StrategyWallSecond,
		Interval: 2,
	}

	n, checkpoints := c.Run(nil)

	// The first sample fixes the start second; three further samples match
	// it before the clock rolls to 2.
	if n != 3 {
		t.Errorf("iterations = %d, want 3", n)
	}
	if len(checkpoints) != 1 || checkpoints[0].Iteration != 2 {
		t.Errorf("checkpoints = %+v, want single checkpoint at iteration 2", checkpoints)
	}
}
