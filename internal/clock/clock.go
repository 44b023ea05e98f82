// Package clock isolates the wall-clock reads the measurement path depends
// on so that timing-sensitive components can be tested deterministically.
package clock

import "time"

// Clock provides the time sources used by the measurement path. Readings
// never fail; an unusable host clock is a fatal startup condition outside
// this package's scope.
type Clock interface {
	// Now returns the current instant. For the system clock this carries
	// Go's monotonic reading, so comparisons against a deadline derived
	// from an earlier Now are immune to wall-clock adjustments.
	Now() time.Time
	// Second returns the seconds component (0-59) of the current local time.
	Second() int
	// Sleep blocks the calling goroutine for d.
	Sleep(d time.Duration)
}

// System reads the host clock.
type System struct{}

func (System) Now() time.Time        { return time.Now() }
func (System) Second() int           { return time.Now().Local().Second() }
func (System) Sleep(d time.Duration) { time.Sleep(d) }
