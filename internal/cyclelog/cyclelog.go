// Package cyclelog owns the on-disk layout of the benchmark's output: the
// per-cycle detail directory and the append-only master log.
package cyclelog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// DetailDirName holds one file per measurement cycle.
	DetailDirName = "CycleLogDetail"
	// MasterDirName holds the master log.
	MasterDirName = "CycleLog"
	// MasterFileName is the append-only master log, shared across every
	// invocation of the program.
	MasterFileName = "Iteration.txt"
)

// Dirs locates the two log directories.
type Dirs struct {
	Detail string
	Master string
}

// Resolve returns the log directories under base. An empty base means the
// process working directory.
func Resolve(base string) Dirs {
	return Dirs{
		Detail: filepath.Join(base, DetailDirName),
		Master: filepath.Join(base, MasterDirName),
	}
}

// Ensure creates both directories and verifies they exist. The returned
// error names every missing path; callers treat it as fatal before any
// measurement runs.
func (d Dirs) Ensure() error {
	_ = os.MkdirAll(d.Detail, 0o755)
	_ = os.MkdirAll(d.Master, 0o755)

	var missing []string
	for _, dir := range []string{d.Detail, d.Master} {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			missing = append(missing, dir)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("directories do not exist, missing: %s", strings.Join(missing, ", "))
	}
	return nil
}

// MasterPath returns the master log file path.
func (d Dirs) MasterPath() string {
	return filepath.Join(d.Master, MasterFileName)
}

// DetailFileName renders a cycle-unique detail file name from a
// filesystem-safe 12-hour timestamp plus the zero-padded cycle total and
// index, e.g. "T 20250316_07_14_02 12 - 03.txt".
func DetailFileName(t time.Time, total, index int) string {
	return fmt.Sprintf("T %s %02d - %02d.txt", t.Local().Format("20060102_03_04_05"), total, index)
}

// WriteDetail writes one cycle's detail record in full, in a single
// open/write/close, and returns the file path.
func (d Dirs) WriteDetail(name, text string) (string, error) {
	path := filepath.Join(d.Detail, name)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return path, err
	}
	return path, nil
}

// Appender is the append capability handed to the components that write
// the master log.
type Appender interface {
	Append(text string) error
}

// FileAppender appends to a single file, opening and closing it on every
// call so no handle outlives a write event.
type FileAppender struct {
	Path string
}

func (f FileAppender) Append(text string) error {
	fh, err := os.OpenFile(f.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer fh.Close()

	if _, err := fh.WriteString(text); err != nil {
		return err
	}
	return nil
}
