// Package history archives finished runs in SQLite so throughput can be
// compared across invocations without parsing the text logs.
package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/GautierTechnology/devops-cpu-stress-2025Q1-native-cli/internal/domain"
)

// Store provides SQLite-backed run persistence
type Store struct {
	db *sql.DB
}

// New creates a new Store with the given database path
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// InsertRun archives a finished run and its cycles in one transaction.
func (s *Store) InsertRun(run *domain.RunRecord, cycles []*domain.CycleRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO runs (id, strategy, cycles, iteration_sum, average, started_at, ended_at, hostname)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		run.ID,
		string(run.Strategy),
		run.Cycles,
		int64(run.Sum),
		int64(run.Average),
		run.StartedAt,
		run.EndedAt,
		run.Hostname,
	)
	if err != nil {
		return err
	}

	for _, c := range cycles {
		_, err = tx.Exec(`
			INSERT INTO cycles (run_id, cycle_index, iterations, started_at, ended_at)
			VALUES (?, ?, ?, ?, ?)
		`,
			run.ID,
			c.Index,
			int64(c.Iterations),
			c.StartedAt,
			c.EndedAt,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetRun retrieves an archived run by ID
func (s *Store) GetRun(id string) (*domain.RunRecord, error) {
	row := s.db.QueryRow(`
		SELECT id, strategy, cycles, iteration_sum, average, started_at, ended_at, hostname
		FROM runs WHERE id = ?
	`, id)
	return scanRun(row)
}

// ListRuns returns archived runs, most recent first, capped at limit.
// A limit below one means no cap.
func (s *Store) ListRuns(limit int) ([]*domain.RunRecord, error) {
	query := `
		SELECT id, strategy, cycles, iteration_sum, average, started_at, ended_at, hostname
		FROM runs ORDER BY started_at DESC
	`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*domain.RunRecord
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// ListCycles returns the cycles of one archived run in index order
func (s *Store) ListCycles(runID string) ([]*domain.CycleRecord, error) {
	rows, err := s.db.Query(`
		SELECT run_id, cycle_index, iterations, started_at, ended_at
		FROM cycles WHERE run_id = ? ORDER BY cycle_index
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cycles []*domain.CycleRecord
	for rows.Next() {
		var (
			c          domain.CycleRecord
			iterations int64
		)
		if err := rows.Scan(&c.RunID, &c.Index, &iterations, &c.StartedAt, &c.EndedAt); err != nil {
			return nil, err
		}
		c.Iterations = uint64(iterations)
		cycles = append(cycles, &c)
	}
	return cycles, rows.Err()
}

type scannable interface {
	Scan(dest ...interface{}) error
}

func scanRun(row scannable) (*domain.RunRecord, error) {
	var (
		run          domain.RunRecord
		strategy     string
		sum, average int64
		started, end time.Time
	)
	if err := row.Scan(&run.ID, &strategy, &run.Cycles, &sum, &average, &started, &end, &run.Hostname); err != nil {
		return nil, err
	}
	run.Strategy = domain.Strategy(strategy)
	run.Sum = uint64(sum)
	run.Average = uint64(average)
	run.StartedAt = started
	run.EndedAt = end
	return &run, nil
}
