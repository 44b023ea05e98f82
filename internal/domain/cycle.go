package domain

import "time"

// TimestampFormat is the display format shared by every log record,
// e.g. "2025-03-16 07:14:02".
const TimestampFormat = "2006-01-02 15:04:05"

// Timestamp renders t in the shared record format, in local time.
func Timestamp(t time.Time) string {
	return t.Local().Format(TimestampFormat)
}

// Checkpoint is a progress snapshot taken during the counting loop,
// once every checkpoint interval.
type Checkpoint struct {
	Iteration uint64
	At        time.Time
}

// PauseEvent records one boundary back-off sleep taken before a cycle's
// measurement window opened.
type PauseEvent struct {
	Duration time.Duration
}

// Cycle is one measurement cycle within a run. It is created when the
// cycle starts, mutated only by the thread executing the cycle, and
// treated as immutable once its detail record has been persisted.
type Cycle struct {
	Index       int // 1-based
	Total       int
	Iterations  uint64
	StartedAt   time.Time
	EndedAt     time.Time
	Pauses      []PauseEvent
	Checkpoints []Checkpoint
}
