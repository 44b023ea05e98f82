package domain

import "time"

// RunRecord is an archived run, one row in the history store.
type RunRecord struct {
	ID        string
	Strategy  Strategy
	Cycles    int
	Sum       uint64
	Average   uint64
	StartedAt time.Time
	EndedAt   time.Time
	Hostname  string
}

// CycleRecord is one archived cycle of a run.
type CycleRecord struct {
	RunID      string
	Index      int
	Iterations uint64
	StartedAt  time.Time
	EndedAt    time.Time
}
