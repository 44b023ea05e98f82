package domain

// Strategy selects how the counting loop decides its measurement window.
type Strategy string

const (
	// StrategyWallSecond counts until the local seconds component changes,
	// measuring whatever fraction of the current second remains.
	StrategyWallSecond Strategy = "wall-second"
	// StrategyFixedWindow counts for a fixed one-second monotonic window
	// regardless of where in the second the loop starts.
	StrategyFixedWindow Strategy = "fixed-window"
)

// Valid reports whether s names a known measurement strategy.
func (s Strategy) Valid() bool {
	return s == StrategyWallSecond || s == StrategyFixedWindow
}
