package history

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/GautierTechnology/devops-cpu-stress-2025Q1-native-cli/internal/domain"
)

func testRun(id string, started time.Time) *domain.RunRecord {
	return &domain.RunRecord{
		ID:        id,
		Strategy:  domain.StrategyFixedWindow,
		Cycles:    2,
		Sum:       7_000_000,
		Average:   3_500_000,
		StartedAt: started,
		EndedAt:   started.Add(3 * time.Second),
		Hostname:  "bench-host",
	}
}

func TestStore_InsertAndGetRun(t *testing.T) {
	store, err := New(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	id := uuid.NewString()
	started := time.Date(2025, 3, 16, 7, 14, 2, 0, time.UTC)
	run := testRun(id, started)
	cycles := []*domain.CycleRecord{
		{RunID: id, Index: 1, Iterations: 4_000_000, StartedAt: started, EndedAt: started.Add(time.Second)},
		{RunID: id, Index: 2, Iterations: 3_000_000, StartedAt: started.Add(2 * time.Second), EndedAt: started.Add(3 * time.Second)},
	}

	if err := store.InsertRun(run, cycles); err != nil {
		t.Fatal(err)
	}

	got, err := store.GetRun(id)
	if err != nil {
		t.Fatal(err)
	}
	if got.Sum != run.Sum {
		t.Errorf("Sum = %d, want %d", got.Sum, run.Sum)
	}
	if got.Average != run.Average {
		t.Errorf("Average = %d, want %d", got.Average, run.Average)
	}
	if got.Strategy != domain.StrategyFixedWindow {
		t.Errorf("Strategy = %q, want fixed-window", got.Strategy)
	}
	if got.Hostname != "bench-host" {
		t.Errorf("Hostname = %q, want bench-host", got.Hostname)
	}

	gotCycles, err := store.ListCycles(id)
	if err != nil {
		t.Fatal(err)
	}
	if len(gotCycles) != 2 {
		t.Fatalf("cycle count = %d, want 2", len(gotCycles))
	}
	if gotCycles[0].Index != 1 || gotCycles[1].Index != 2 {
		t.Errorf("cycle order = %d, %d, want 1, 2", gotCycles[0].Index, gotCycles[1].Index)
	}
	if gotCycles[0].Iterations+gotCycles[1].Iterations != run.Sum {
		t.Error("cycle iterations must sum to the run total")
	}
}

func TestStore_ListRunsMostRecentFirst(t *testing.T) {
	store, err := New(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	base := time.Date(2025, 3, 16, 7, 0, 0, 0, time.UTC)
	ids := []string{uuid.NewString(), uuid.NewString(), uuid.NewString()}
	for i, id := range ids {
		if err := store.InsertRun(testRun(id, base.Add(time.Duration(i)*time.Hour)), nil); err != nil {
			t.Fatal(err)
		}
	}

	runs, err := store.ListRuns(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Fatalf("run count = %d, want 2", len(runs))
	}
	if runs[0].ID != ids[2] {
		t.Errorf("first run = %s, want most recent %s", runs[0].ID, ids[2])
	}
	if !runs[0].StartedAt.After(runs[1].StartedAt) {
		t.Error("runs must be ordered most recent first")
	}

	all, err := store.ListRuns(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Errorf("uncapped run count = %d, want 3", len(all))
	}
}
