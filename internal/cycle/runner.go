// Package cycle orchestrates a single measurement cycle: boundary
// synchronization, the counting loop, and persistence of the cycle's
// records.
package cycle

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/GautierTechnology/devops-cpu-stress-2025Q1-native-cli/internal/boundary"
	"github.com/GautierTechnology/devops-cpu-stress-2025Q1-native-cli/internal/clock"
	"github.com/GautierTechnology/devops-cpu-stress-2025Q1-native-cli/internal/counter"
	"github.com/GautierTechnology/devops-cpu-stress-2025Q1-native-cli/internal/cyclelog"
	"github.com/GautierTechnology/devops-cpu-stress-2025Q1-native-cli/internal/domain"
	"github.com/GautierTechnology/devops-cpu-stress-2025Q1-native-cli/internal/logger"
)

// Runner executes one measurement cycle at a time. The same Runner is
// reused for every cycle of a run; each Run call produces a fresh Cycle.
type Runner struct {
	Clock   clock.Clock
	Sync    *boundary.Synchronizer
	Counter *counter.Counter
	Dirs    cyclelog.Dirs
	Master  cyclelog.Appender
	Console io.Writer
}

// Run performs cycle index of total: banner, boundary wait, timed count,
// detail record persistence, master log block. Write failures are surfaced
// as warnings and never abort the run; the in-memory measurement and the
// console output are unaffected.
func (r *Runner) Run(index, total int) *domain.Cycle {
	fmt.Fprintln(r.Console, strings.Repeat("*", 76))
	fmt.Fprintf(r.Console, "Running Cycle %02d of %02d\n", index, total)
	fmt.Fprintln(r.Console, strings.Repeat("*", 44))

	// The detail file name is fixed before any pause so reruns within the
	// same second stay distinguishable by cycle index.
	name := cyclelog.DetailFileName(r.Clock.Now(), total, index)

	cyc := &domain.Cycle{Index: index, Total: total}
	cyc.Pauses = r.Sync.Wait(r.Console)

	fmt.Fprintf(r.Console, "Ready to go ... %s\n", domain.Timestamp(r.Clock.Now()))

	cyc.StartedAt = r.Clock.Now()
	cyc.Iterations, cyc.Checkpoints = r.Counter.Run(func(i uint64, at time.Time) {
		fmt.Fprint(r.Console, checkpointLine(index, total, i, domain.Timestamp(at)))
	})
	cyc.EndedAt = r.Clock.Now()

	detail := DetailText(cyc)
	path, err := r.Dirs.WriteDetail(name, detail)
	if err != nil {
		logger.Warn("detail record not persisted", "path", path, "err", err)
	}
	fmt.Fprintln(r.Console, path)
	fmt.Fprint(r.Console, detail)

	if err := r.Master.Append(MasterBlock(cyc)); err != nil {
		logger.Warn("master log append failed", "err", err)
	}

	return cyc
}
