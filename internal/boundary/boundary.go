// Package boundary implements the pre-measurement synchronization protocol:
// a cycle's sampling window must not open during a disfavored local second,
// so the synchronizer backs off until the clock moves past one.
package boundary

import (
	"fmt"
	"io"
	"time"

	"github.com/GautierTechnology/devops-cpu-stress-2025Q1-native-cli/internal/clock"
	"github.com/GautierTechnology/devops-cpu-stress-2025Q1-native-cli/internal/domain"
)

// DisfavoredSecond reports whether measurement must not start during the
// given local second. Seconds whose value is a multiple of 8 are treated as
// unsuitable for opening a clean one-second sampling window.
func DisfavoredSecond(sec int) bool {
	return sec%8 == 0
}

// Synchronizer delays the start of a measurement window until the local
// clock is outside a disfavored second.
type Synchronizer struct {
	Clock clock.Clock
	// MaxTotalPause caps the cumulative back-off per Wait call. Zero means
	// no cap: a clock stuck on a disfavored second stalls the cycle
	// indefinitely, which matches the historical behavior and is an
	// accepted liveness risk.
	MaxTotalPause time.Duration
}

// Wait blocks until the current local second is suitable for sampling and
// returns the pauses taken. Each retry sleeps second*100 milliseconds, so
// the back-off is proportional to the seconds value that triggered it and
// is recomputed from a fresh sample on every retry. One "Pausing for" line
// is written to console per sleep; the matching "Paused for" record lines
// are rendered later from the returned events.
func (s *Synchronizer) Wait(console io.Writer) []domain.PauseEvent {
	var pauses []domain.PauseEvent
	var total time.Duration

	for {
		sec := s.Clock.Second()
		if !DisfavoredSecond(sec) {
			return pauses
		}

		pause := time.Duration(sec) * 100 * time.Millisecond
		fmt.Fprintf(console, "Pausing for %dms\n", pause.Milliseconds())
		pauses = append(pauses, domain.PauseEvent{Duration: pause})
		s.Clock.Sleep(pause)

		total += pause
		if s.MaxTotalPause > 0 && total >= s.MaxTotalPause {
			return pauses
		}
	}
}
