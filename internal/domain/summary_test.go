package domain

import (
	"testing"
	"time"
)

func TestRunSummary_Average(t *testing.T) {
	tests := []struct {
		name   string
		sum    uint64
		cycles int
		want   uint64
	}{
		{"exact", 3_000_000, 3, 1_000_000},
		{"truncates", 10_000_007, 3, 3_333_335},
		{"single cycle", 42, 1, 42},
		{"zero sum", 0, 5, 0},
		{"zero cycles", 100, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &RunSummary{Cycles: tt.cycles, Sum: tt.sum}
			if got := s.Average(); got != tt.want {
				t.Errorf("Average() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBreakdownElapsed(t *testing.T) {
	d := 2*24*time.Hour + 3*time.Hour + 14*time.Minute + 7*time.Second + 253*time.Millisecond

	parts := BreakdownElapsed(d)

	if parts.Days != 2 {
		t.Errorf("Days = %d, want 2", parts.Days)
	}
	if parts.Hours != 3 {
		t.Errorf("Hours = %d, want 3", parts.Hours)
	}
	if parts.Minutes != 14 {
		t.Errorf("Minutes = %d, want 14", parts.Minutes)
	}
	if parts.Seconds != 7 {
		t.Errorf("Seconds = %d, want 7", parts.Seconds)
	}
	if parts.Millis != 253 {
		t.Errorf("Millis = %d, want 253", parts.Millis)
	}
}

func TestBreakdownElapsed_RoundTrips(t *testing.T) {
	durations := []time.Duration{
		0,
		999 * time.Millisecond,
		time.Second,
		61_327 * time.Millisecond,
		48*time.Hour + time.Millisecond,
		100*24*time.Hour + 23*time.Hour + 59*time.Minute + 59*time.Second + 999*time.Millisecond,
	}

	for _, d := range durations {
		parts := BreakdownElapsed(d)
		total := parts.Days*86_400_000 + parts.Hours*3_600_000 + parts.Minutes*60_000 + parts.Seconds*1000 + parts.Millis
		if total != d.Milliseconds() {
			t.Errorf("BreakdownElapsed(%v) recomposes to %dms, want %dms", d, total, d.Milliseconds())
		}
	}
}

func TestStrategy_Valid(t *testing.T) {
	if !StrategyWallSecond.Valid() || !StrategyFixedWindow.Valid() {
		t.Error("built-in strategies must be valid")
	}
	if Strategy("warp-speed").Valid() {
		t.Error("unknown strategy reported valid")
	}
}

func TestTimestamp(t *testing.T) {
	at := time.Date(2025, 3, 16, 7, 14, 2, 0, time.Local)
	if got := Timestamp(at); got != "2025-03-16 07:14:02" {
		t.Errorf("Timestamp() = %q, want %q", got, "2025-03-16 07:14:02")
	}
}
