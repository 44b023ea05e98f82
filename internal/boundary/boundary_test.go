package boundary

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/GautierTechnology/devops-cpu-stress-2025Q1-native-cli/internal/clock"
)

func TestDisfavoredSecond(t *testing.T) {
	for sec := 0; sec < 60; sec++ {
		want := sec%8 == 0
		if got := DisfavoredSecond(sec); got != want {
			t.Errorf("DisfavoredSecond(%d) = %v, want %v", sec, got, want)
		}
	}
}

func TestSynchronizer_ReturnsImmediatelyOnClearSecond(t *testing.T) {
	fake := &clock.Fake{Seconds: []int{13}}
	s := &Synchronizer{Clock: fake}

	var console bytes.Buffer
	pauses := s.Wait(&console)

	if len(pauses) != 0 {
		t.Errorf("pause count = %d, want 0", len(pauses))
	}
	if len(fake.Slept) != 0 {
		t.Errorf("sleep count = %d, want 0", len(fake.Slept))
	}
	if console.Len() != 0 {
		t.Errorf("console output = %q, want empty", console.String())
	}
}

func TestSynchronizer_BacksOffUntilClear(t *testing.T) {
	// Two samples land on second 8, the third on 3: the synchronizer must
	// sleep 800ms twice, recomputing the duration from each fresh sample,
	// then return.
	fake := &clock.Fake{Seconds: []int{8, 8, 3}}
	s := &Synchronizer{Clock: fake}

	var console bytes.Buffer
	pauses := s.Wait(&console)

	if len(pauses) != 2 {
		t.Fatalf("pause count = %d, want 2", len(pauses))
	}
	for i, p := range pauses {
		if p.Duration != 800*time.Millisecond {
			t.Errorf("pause[%d] = %v, want 800ms", i, p.Duration)
		}
	}
	if len(fake.Slept) != 2 {
		t.Fatalf("sleep count = %d, want 2", len(fake.Slept))
	}
	for i, d := range fake.Slept {
		if d != 800*time.Millisecond {
			t.Errorf("sleep[%d] = %v, want 800ms", i, d)
		}
	}
	if got := console.String(); got != "Pausing for 800ms\nPausing for 800ms\n" {
		t.Errorf("console output = %q", got)
	}
}

func TestSynchronizer_PauseProportionalToSecond(t *testing.T) {
	fake := &clock.Fake{Seconds: []int{16, 24, 5}}
	s := &Synchronizer{Clock: fake}

	var console bytes.Buffer
	pauses := s.Wait(&console)

	want := []time.Duration{1600 * time.Millisecond, 2400 * time.Millisecond}
	if len(pauses) != len(want) {
		t.Fatalf("pause count = %d, want %d", len(pauses), len(want))
	}
	for i, d := range want {
		if pauses[i].Duration != d {
			t.Errorf("pause[%d] = %v, want %v", i, pauses[i].Duration, d)
		}
	}
}

func TestSynchronizer_CeilingStopsRetries(t *testing.T) {
	// A clock stuck on a disfavored second would loop forever; the
	// configured ceiling lets the cycle proceed anyway.
	fake := &clock.Fake{Seconds: []int{8}}
	s := &Synchronizer{Clock: fake, MaxTotalPause: 2 * time.Second}

	var console bytes.Buffer
	pauses := s.Wait(&console)

	// 800ms per retry, so the third retry crosses the 2s ceiling.
	if len(pauses) != 3 {
		t.Errorf("pause count = %d, want 3", len(pauses))
	}
	if !strings.Contains(console.String(), "Pausing for 800ms") {
		t.Errorf("console output = %q, want pausing lines", console.String())
	}
}
