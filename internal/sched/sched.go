// Package sched runs the benchmark unattended on cron cadences, feeding the
// same logs and history store as interactive runs so long-term trend data
// accumulates without operator involvement.
package sched

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/GautierTechnology/devops-cpu-stress-2025Q1-native-cli/internal/logger"
)

// Entry is one scheduled cadence.
type Entry struct {
	Name   string
	Cron   string
	Cycles int
}

// Validate checks if the entry is valid
func (e *Entry) Validate() error {
	if e.Name == "" {
		return fmt.Errorf("schedule name is required")
	}
	if e.Cron == "" {
		return fmt.Errorf("cron expression is required")
	}
	if _, err := ParseCron(e.Cron); err != nil {
		return fmt.Errorf("invalid cron expression: %w", err)
	}
	if e.Cycles <= 0 {
		e.Cycles = 1 // Default
	}
	return nil
}

// ParseCron parses a standard five-field cron expression
func ParseCron(expr string) (cron.Schedule, error) {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	return parser.Parse(expr)
}

// RunFunc performs one scheduled benchmark run.
type RunFunc func(name string, cycles int) error

// Scheduler fires benchmark runs at each entry's cron ticks. Runs execute
// strictly one at a time; a tick that lands while a run is still measuring
// waits for it, since overlapping measurements would corrupt each other.
type Scheduler struct {
	entries []Entry
}

// New creates a scheduler after validating every entry
func New(entries []Entry) (*Scheduler, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("at least one schedule entry is required")
	}
	validated := make([]Entry, len(entries))
	for i, e := range entries {
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("schedule %q: %w", e.Name, err)
		}
		validated[i] = e
	}
	return &Scheduler{entries: validated}, nil
}

// Next returns the entry with the earliest upcoming tick after now.
func (s *Scheduler) Next(now time.Time) (Entry, time.Time) {
	var (
		best     Entry
		bestTime time.Time
	)
	for _, e := range s.entries {
		sched, err := ParseCron(e.Cron)
		if err != nil {
			continue // Expressions are validated at construction
		}
		next := sched.Next(now)
		if bestTime.IsZero() || next.Before(bestTime) {
			best = e
			bestTime = next
		}
	}
	return best, bestTime
}

// Run blocks, firing entries at their ticks until ctx is cancelled. Run
// failures are logged and do not stop the schedule.
func (s *Scheduler) Run(ctx context.Context, run RunFunc) error {
	for {
		entry, at := s.Next(time.Now())
		logger.Info("next scheduled run", "name", entry.Name, "at", at.Format(time.RFC3339))

		timer := time.NewTimer(time.Until(at))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		if err := run(entry.Name, entry.Cycles); err != nil {
			logger.Error("scheduled run failed", "name", entry.Name, "err", err)
		}
	}
}
