package cycle

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/GautierTechnology/devops-cpu-stress-2025Q1-native-cli/internal/domain"
)

// checkpointLine renders one progress checkpoint. Counts are comma-grouped
// for readability; the master log keeps raw numbers for machine
// comparability across runs.
func checkpointLine(index, total int, iteration uint64, at string) string {
	return fmt.Sprintf("Cycle %s of %s Iteration %s %s\n",
		humanize.Comma(int64(index)),
		humanize.Comma(int64(total)),
		humanize.Comma(int64(iteration)),
		at)
}

// DetailText renders a cycle's detail record: pause lines first, then the
// checkpoint lines in order, then the terminal iterations line. This is the
// exact text persisted to the cycle's detail file and echoed to stdout.
func DetailText(c *domain.Cycle) string {
	var b strings.Builder

	for _, p := range c.Pauses {
		fmt.Fprintf(&b, "Paused for %dms\n", p.Duration.Milliseconds())
	}
	for _, cp := range c.Checkpoints {
		b.WriteString(checkpointLine(c.Index, c.Total, cp.Iteration, domain.Timestamp(cp.At)))
	}
	fmt.Fprintf(&b, "Iterations %s Start %s ... End %s\n",
		humanize.Comma(int64(c.Iterations)),
		domain.Timestamp(c.StartedAt),
		domain.Timestamp(c.EndedAt))

	return b.String()
}

// MasterBlock renders the fixed-width block appended to the master log for
// one cycle: a tab-indexed header row, the start timestamp, the raw
// iteration count, the end timestamp, and a blank separator line.
func MasterBlock(c *domain.Cycle) string {
	var b strings.Builder

	fmt.Fprintf(&b, "***\t%d\t%s\n", c.Index, strings.Repeat("*", 60))
	b.WriteString(domain.Timestamp(c.StartedAt) + "\n")
	fmt.Fprintf(&b, "%d\n", c.Iterations)
	b.WriteString(domain.Timestamp(c.EndedAt) + "\n\n")

	return b.String()
}
