package clock

import "time"

// Fake is a scripted Clock for tests. It is not safe for concurrent use;
// the measurement path is single-threaded and so are its tests.
type Fake struct {
	// Current is returned by Now, then advanced by Step.
	Current time.Time
	Step    time.Duration
	// Seconds is consumed one value per Second call; the final value
	// repeats once the script is exhausted. When empty, Second falls back
	// to Current's seconds component.
	Seconds []int
	// Slept records every Sleep duration in order.
	Slept []time.Duration

	secIdx int
}

func (f *Fake) Now() time.Time {
	now := f.Current
	f.Current = f.Current.Add(f.Step)
	return now
}

func (f *Fake) Second() int {
	if len(f.Seconds) == 0 {
		return f.Current.Local().Second()
	}
	sec := f.Seconds[f.secIdx]
	if f.secIdx < len(f.Seconds)-1 {
		f.secIdx++
	}
	return sec
}

func (f *Fake) Sleep(d time.Duration) {
	f.Slept = append(f.Slept, d)
}
