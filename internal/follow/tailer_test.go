package follow

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

// collect gathers delivered lines behind a mutex so the test can poll.
type collect struct {
	mu    sync.Mutex
	lines []string
}

func (c *collect) add(line string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = append(c.lines, line)
}

func (c *collect) snapshot() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.lines...)
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met before timeout")
}

func TestTailer_DeliversAppendedLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Iteration.txt")
	if err := os.WriteFile(path, []byte("old line\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := &collect{}
	tailer, err := NewTailer(path, c.add)
	if err != nil {
		t.Fatal(err)
	}
	defer tailer.Stop()
	tailer.Start(context.Background())

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteString("***\t1\t***\n2025-03-16 07:14:02\n"); err != nil {
		t.Fatal(err)
	}
	f.Close()

	waitFor(t, 2*time.Second, func() bool { return len(c.snapshot()) >= 2 })

	lines := c.snapshot()
	if lines[0] != "***\t1\t***" {
		t.Errorf("line[0] = %q", lines[0])
	}
	if lines[1] != "2025-03-16 07:14:02" {
		t.Errorf("line[1] = %q", lines[1])
	}
	// The pre-existing content must not be replayed.
	for _, l := range lines {
		if l == "old line" {
			t.Error("tailer replayed content written before it started")
		}
	}
}

func TestTailer_FileCreatedAfterStart(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Iteration.txt")

	c := &collect{}
	tailer, err := NewTailer(path, c.add)
	if err != nil {
		t.Fatal(err)
	}
	defer tailer.Stop()
	tailer.Start(context.Background())

	if err := os.WriteFile(path, []byte("first\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	waitFor(t, 2*time.Second, func() bool { return len(c.snapshot()) >= 1 })
	if got := c.snapshot()[0]; got != "first" {
		t.Errorf("line = %q, want %q", got, "first")
	}
}
