package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/GautierTechnology/devops-cpu-stress-2025Q1-native-cli/internal/aggregate"
	"github.com/GautierTechnology/devops-cpu-stress-2025Q1-native-cli/internal/boundary"
	"github.com/GautierTechnology/devops-cpu-stress-2025Q1-native-cli/internal/clock"
	"github.com/GautierTechnology/devops-cpu-stress-2025Q1-native-cli/internal/config"
	"github.com/GautierTechnology/devops-cpu-stress-2025Q1-native-cli/internal/counter"
	"github.com/GautierTechnology/devops-cpu-stress-2025Q1-native-cli/internal/cycle"
	"github.com/GautierTechnology/devops-cpu-stress-2025Q1-native-cli/internal/cyclelog"
	"github.com/GautierTechnology/devops-cpu-stress-2025Q1-native-cli/internal/domain"
	"github.com/GautierTechnology/devops-cpu-stress-2025Q1-native-cli/internal/logger"
	"github.com/GautierTechnology/devops-cpu-stress-2025Q1-native-cli/internal/notify"
)

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if runStrategy != "" {
		cfg.Measure.Strategy = runStrategy
	}

	// Verify the log directories before any prompt or measurement; a
	// missing directory is the one fatal startup condition.
	if err := cyclelog.Resolve(cfg.General.LogRoot).Ensure(); err != nil {
		return err
	}

	total := runCycles
	if total < 1 {
		total = promptCycles(os.Stdin, os.Stdout)
	}

	fmt.Printf("Running %d test runs\n", total)

	return performRun(cfg, total)
}

// promptCycles prints the banner and reads the desired cycle count from in.
// Invalid or absent input warns and falls back to one cycle; it is never
// fatal.
func promptCycles(in io.Reader, out io.Writer) int {
	fmt.Fprintln(out, strings.Repeat("*", 50))
	fmt.Fprintln(out, "Gautier Iteration Test")
	fmt.Fprintln(out, "Provides an informal assessment of operations per second on a given system")
	fmt.Fprintln(out, "Essentially how fast can code execute today")
	fmt.Fprintln(out, "Helps in building better estimates for capacity planning and design")
	fmt.Fprintln(out, strings.Repeat("*", 50))
	fmt.Fprintln(out, "How many times you want the test to run?")
	fmt.Fprint(out, "Type number then <enter>:  ")

	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		logger.Warn("no cycle count given; defaulting to 1")
		return 1
	}

	n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil || n < 1 {
		logger.Warn("invalid cycle count; defaulting to 1", "input", scanner.Text())
		return 1
	}
	return n
}

// performRun executes a full measurement run against the configured
// directories and archives the outcome. Archive and notification failures
// never fail the run; the text logs are the source of truth.
func performRun(cfg *config.Config, total int) error {
	dirs := cyclelog.Resolve(cfg.General.LogRoot)
	if err := dirs.Ensure(); err != nil {
		return err
	}

	sysClock := clock.System{}
	master := cyclelog.FileAppender{Path: dirs.MasterPath()}

	runner := &cycle.Runner{
		Clock: sysClock,
		Sync: &boundary.Synchronizer{
			Clock:         sysClock,
			MaxTotalPause: cfg.Measure.MaxPause,
		},
		Counter: &counter.Counter{
			Clock:    sysClock,
			Strategy: cfg.Strategy(),
		},
		Dirs:    dirs,
		Master:  master,
		Console: os.Stdout,
	}

	agg := &aggregate.Aggregator{
		Clock:   sysClock,
		Runner:  runner,
		Master:  master,
		Console: os.Stdout,
	}

	summary, cycles := agg.Run(total)

	archiveRun(cfg, summary, cycles)
	sendNotifications(cfg, summary)

	return nil
}

func archiveRun(cfg *config.Config, summary *domain.RunSummary, cycles []*domain.Cycle) {
	store, err := openStore(cfg)
	if err != nil {
		logger.Warn("run not archived", "err", err)
		return
	}
	defer store.Close()

	hostname, _ := os.Hostname()
	run := &domain.RunRecord{
		ID:        uuid.NewString(),
		Strategy:  cfg.Strategy(),
		Cycles:    summary.Cycles,
		Sum:       summary.Sum,
		Average:   summary.Average(),
		StartedAt: summary.StartedAt,
		EndedAt:   summary.EndedAt,
		Hostname:  hostname,
	}

	records := make([]*domain.CycleRecord, len(cycles))
	for i, c := range cycles {
		records[i] = &domain.CycleRecord{
			RunID:      run.ID,
			Index:      c.Index,
			Iterations: c.Iterations,
			StartedAt:  c.StartedAt,
			EndedAt:    c.EndedAt,
		}
	}

	if err := store.InsertRun(run, records); err != nil {
		logger.Warn("run not archived", "err", err)
	}
}

func sendNotifications(cfg *config.Config, summary *domain.RunSummary) {
	notifier := notify.NewMultiNotifier(
		notify.NewDesktopNotifier(cfg.Notifications.Desktop),
		notify.NewSlackNotifier(cfg.Notifications.SlackWebhook),
	)
	if err := notifier.Send(notify.ForSummary(summary)); err != nil {
		logger.Debug("notification failed", "err", err)
	}
}
