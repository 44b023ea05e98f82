package sched

import (
	"testing"
	"time"
)

func TestEntry_Validate(t *testing.T) {
	tests := []struct {
		name    string
		entry   Entry
		wantErr bool
	}{
		{"valid", Entry{Name: "hourly", Cron: "0 * * * *", Cycles: 3}, false},
		{"missing name", Entry{Cron: "0 * * * *"}, true},
		{"missing cron", Entry{Name: "x"}, true},
		{"bad cron", Entry{Name: "x", Cron: "not a cron"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEntry_ValidateDefaultsCycles(t *testing.T) {
	e := Entry{Name: "x", Cron: "* * * * *"}
	if err := e.Validate(); err != nil {
		t.Fatal(err)
	}
	if e.Cycles != 1 {
		t.Errorf("Cycles = %d, want default 1", e.Cycles)
	}
}

func TestParseCron(t *testing.T) {
	sched, err := ParseCron("30 2 * * *")
	if err != nil {
		t.Fatal(err)
	}

	from := time.Date(2025, 3, 16, 7, 14, 2, 0, time.UTC)
	next := sched.Next(from)
	if next.Hour() != 2 || next.Minute() != 30 {
		t.Errorf("Next = %v, want 02:30", next)
	}
	if !next.After(from) {
		t.Error("Next must be after the reference time")
	}
}

func TestScheduler_NextPicksEarliest(t *testing.T) {
	s, err := New([]Entry{
		{Name: "daily", Cron: "0 4 * * *", Cycles: 1},
		{Name: "hourly", Cron: "0 * * * *", Cycles: 1},
	})
	if err != nil {
		t.Fatal(err)
	}

	from := time.Date(2025, 3, 16, 7, 14, 2, 0, time.UTC)
	entry, at := s.Next(from)
	if entry.Name != "hourly" {
		t.Errorf("entry = %q, want hourly", entry.Name)
	}
	if want := time.Date(2025, 3, 16, 8, 0, 0, 0, time.UTC); !at.Equal(want) {
		t.Errorf("at = %v, want %v", at, want)
	}
}

func TestNew_RejectsInvalidEntries(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Error("New(nil) = nil error, want error")
	}
	if _, err := New([]Entry{{Name: "bad", Cron: "nope"}}); err == nil {
		t.Error("New with invalid cron should fail")
	}
}
