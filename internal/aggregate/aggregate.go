// Package aggregate drives a full run: N sequential cycles, a running sum,
// and the final summary records.
package aggregate

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/GautierTechnology/devops-cpu-stress-2025Q1-native-cli/internal/clock"
	"github.com/GautierTechnology/devops-cpu-stress-2025Q1-native-cli/internal/cyclelog"
	"github.com/GautierTechnology/devops-cpu-stress-2025Q1-native-cli/internal/domain"
	"github.com/GautierTechnology/devops-cpu-stress-2025Q1-native-cli/internal/logger"
)

// CycleRunner executes one measurement cycle.
type CycleRunner interface {
	Run(index, total int) *domain.Cycle
}

// Aggregator owns the run-level bookkeeping. Cycles execute strictly
// sequentially; there is no parallelism in the measurement path.
type Aggregator struct {
	Clock   clock.Clock
	Runner  CycleRunner
	Master  cyclelog.Appender
	Console io.Writer
}

// Run executes cycles 1..total and returns the finalized summary together
// with every completed cycle. Master log write failures are warnings only.
func (a *Aggregator) Run(total int) (*domain.RunSummary, []*domain.Cycle) {
	summary := &domain.RunSummary{Cycles: total, StartedAt: a.Clock.Now()}

	if err := a.Master.Append(RunHeader(total, summary.StartedAt)); err != nil {
		logger.Warn("master log header append failed", "err", err)
	}

	cycles := make([]*domain.Cycle, 0, total)
	for i := 1; i <= total; i++ {
		c := a.Runner.Run(i, total)
		summary.Sum += c.Iterations
		cycles = append(cycles, c)
	}

	summary.EndedAt = a.Clock.Now()

	fmt.Fprint(a.Console, ConsoleSummary(summary))
	if err := a.Master.Append(SummaryBlock(summary)); err != nil {
		logger.Warn("master log summary append failed", "err", err)
	}

	return summary, cycles
}

// RunHeader renders the banner block appended to the master log when a run
// starts.
func RunHeader(total int, at time.Time) string {
	var b strings.Builder
	b.WriteString(strings.Repeat("*", 33) + "\n")
	fmt.Fprintf(&b, "Cycles: %d\t%s\n", total, domain.Timestamp(at))
	b.WriteString(strings.Repeat("*", 28) + "\n")
	return b.String()
}

// ConsoleSummary renders the end-of-run summary for stdout, with
// comma-grouped counts.
func ConsoleSummary(s *domain.RunSummary) string {
	parts := domain.BreakdownElapsed(s.Elapsed())

	var b strings.Builder
	fmt.Fprintf(&b, "******\tSum: %s operations across %s cycles *********\n\n",
		humanize.Comma(int64(s.Sum)), humanize.Comma(int64(s.Cycles)))
	fmt.Fprintf(&b, "Average: %s operations per second **********\n\n",
		humanize.Comma(int64(s.Average())))
	fmt.Fprintf(&b, "Cycle started: %s ... Cycle ended: %s **********\n",
		domain.Timestamp(s.StartedAt), domain.Timestamp(s.EndedAt))
	fmt.Fprintf(&b, "Time: %d days %d hrs %d min %d sec %d ms\n",
		parts.Days, parts.Hours, parts.Minutes, parts.Seconds, parts.Millis)
	return b.String()
}

// SummaryBlock renders the end-of-run block appended to the master log,
// terminated by the underscore separator. Counts stay raw here.
func SummaryBlock(s *domain.RunSummary) string {
	parts := domain.BreakdownElapsed(s.Elapsed())

	var b strings.Builder
	fmt.Fprintf(&b, "******\tSum: %d operations across %d cycles *********\n", s.Sum, s.Cycles)
	fmt.Fprintf(&b, "Cycle started: %s ... Cycle ended: %s **********\n",
		domain.Timestamp(s.StartedAt), domain.Timestamp(s.EndedAt))
	fmt.Fprintf(&b, "Average: %d operations per second **********\n", s.Average())
	fmt.Fprintf(&b, "Time: %d days %d hrs %d min %d sec %d ms\n",
		parts.Days, parts.Hours, parts.Minutes, parts.Seconds, parts.Millis)
	b.WriteString(strings.Repeat("_", 33) + "\n\n")
	return b.String()
}
