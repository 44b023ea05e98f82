package domain

import "time"

// RunSummary accumulates the outcome of a full run. Created at run start,
// finalized once after the last cycle.
type RunSummary struct {
	Cycles    int
	Sum       uint64
	StartedAt time.Time
	EndedAt   time.Time
}

// Average returns the mean iterations per cycle using truncating integer
// division. Zero cycles yields zero; that path is unreachable in practice
// because cycle counts below one are rejected before a run starts.
func (s *RunSummary) Average() uint64 {
	if s.Cycles <= 0 {
		return 0
	}
	return s.Sum / uint64(s.Cycles)
}

// Elapsed returns the wall time between run start and run end.
func (s *RunSummary) Elapsed() time.Duration {
	return s.EndedAt.Sub(s.StartedAt)
}

// ElapsedParts is a display breakdown of a duration.
type ElapsedParts struct {
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64
	Millis  int64
}

// BreakdownElapsed decomposes d into days, hours, minutes, seconds and
// milliseconds by successive division and modulo on the millisecond total.
// The parts always recompose to the original millisecond count exactly.
func BreakdownElapsed(d time.Duration) ElapsedParts {
	total := d.Milliseconds()

	days := total / 86_400_000
	rem := total % 86_400_000
	hours := rem / 3_600_000
	rem %= 3_600_000
	minutes := rem / 60_000
	rem %= 60_000

	return ElapsedParts{
		Days:    days,
		Hours:   hours,
		Minutes: minutes,
		Seconds: rem / 1000,
		Millis:  rem % 1000,
	}
}
