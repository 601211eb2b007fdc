// Package store persists solver benchmark runs and per-puzzle results
// in a SQLite database under the data directory.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// DBFileName is the database file created inside the data directory.
const DBFileName = "gridlock.db"

// Standard store errors.
var (
	ErrRunNotFound = errors.New("run not found")
	ErrNoRuns      = errors.New("no runs recorded")
)

// Run describes one benchmark pass over a corpus.
type Run struct {
	RunID      string
	Corpus     string
	StartedAt  time.Time
	FinishedAt time.Time // zero until FinishRun
	Puzzles    int
	Solved     int
	Unsolved   int
	Rejected   int
}

// Result describes one puzzle within a run.
type Result struct {
	RunID      string
	Seq        int
	Puzzle     string
	Solved     bool
	Guesses    int
	Backtracks int
	Duration   time.Duration
}

// Bucket is one bar of the backtrack-count histogram.
type Bucket struct {
	Label string
	Lo    int
	Hi    int // -1 means open-ended
	Count int
}

// Store wraps the benchmark database. A Store is safe for use from a
// single process; concurrent writers should share one Store.
type Store struct {
	db *sql.DB
}

// Open creates the data directory if needed, opens the database, and
// applies the schema.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, DBFileName))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply schema: %w", err)
		}
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// BeginRun records the start of a benchmark pass and returns the run
// with a fresh UUID v7 identifier.
func (s *Store) BeginRun(corpus string) (*Run, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generating run ID: %w", err)
	}

	run := &Run{
		RunID:     id.String(),
		Corpus:    corpus,
		StartedAt: time.Now().UTC(),
	}
	_, err = s.db.Exec(
		"INSERT INTO runs (run_id, corpus, started_at) VALUES (?, ?, ?)",
		run.RunID, run.Corpus, run.StartedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("recording run: %w", err)
	}
	return run, nil
}

// AddResult stores one puzzle's outcome.
func (s *Store) AddResult(r Result) error {
	solved := 0
	if r.Solved {
		solved = 1
	}
	_, err := s.db.Exec(
		"INSERT INTO results (run_id, seq, puzzle, solved, guesses, backtracks, duration_us) VALUES (?, ?, ?, ?, ?, ?, ?)",
		r.RunID, r.Seq, r.Puzzle, solved, r.Guesses, r.Backtracks, r.Duration.Microseconds(),
	)
	if err != nil {
		return fmt.Errorf("recording result %d of run %s: %w", r.Seq, r.RunID, err)
	}
	return nil
}

// FinishRun stamps the end time and final counters on a run.
func (s *Store) FinishRun(run *Run) error {
	run.FinishedAt = time.Now().UTC()
	res, err := s.db.Exec(
		"UPDATE runs SET finished_at = ?, puzzles = ?, solved = ?, unsolved = ?, rejected = ? WHERE run_id = ?",
		run.FinishedAt.Format(time.RFC3339Nano),
		run.Puzzles, run.Solved, run.Unsolved, run.Rejected, run.RunID,
	)
	if err != nil {
		return fmt.Errorf("finishing run %s: %w", run.RunID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrRunNotFound
	}
	return nil
}

// Runs returns all recorded runs, most recent first.
func (s *Store) Runs() ([]Run, error) {
	rows, err := s.db.Query(
		"SELECT run_id, corpus, started_at, finished_at, puzzles, solved, unsolved, rejected FROM runs ORDER BY rowid DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	return runs, rows.Err()
}

// Run returns one run by ID.
func (s *Store) Run(runID string) (*Run, error) {
	row := s.db.QueryRow(
		"SELECT run_id, corpus, started_at, finished_at, puzzles, solved, unsolved, rejected FROM runs WHERE run_id = ?",
		runID,
	)
	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, ErrRunNotFound
	}
	return run, err
}

// LatestRun returns the most recently started run.
func (s *Store) LatestRun() (*Run, error) {
	row := s.db.QueryRow(
		"SELECT run_id, corpus, started_at, finished_at, puzzles, solved, unsolved, rejected FROM runs ORDER BY rowid DESC LIMIT 1",
	)
	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, ErrNoRuns
	}
	return run, err
}

// Results returns a run's per-puzzle results in sequence order.
func (s *Store) Results(runID string) ([]Result, error) {
	rows, err := s.db.Query(
		"SELECT run_id, seq, puzzle, solved, guesses, backtracks, duration_us FROM results WHERE run_id = ? ORDER BY seq",
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing results for run %s: %w", runID, err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var solved int
		var us int64
		if err := rows.Scan(&r.RunID, &r.Seq, &r.Puzzle, &solved, &r.Guesses, &r.Backtracks, &us); err != nil {
			return nil, fmt.Errorf("scanning result: %w", err)
		}
		r.Solved = solved != 0
		r.Duration = time.Duration(us) * time.Microsecond
		results = append(results, r)
	}
	return results, rows.Err()
}

// histogramBounds defines decade buckets for backtrack counts. The
// open-ended last bucket catches adversarial outliers.
var histogramBounds = []struct {
	label string
	lo    int
	hi    int
}{
	{"0", 0, 0},
	{"1-9", 1, 9},
	{"10-99", 10, 99},
	{"100-999", 100, 999},
	{"1000-9999", 1000, 9999},
	{"10000+", 10000, -1},
}

// Histogram buckets a run's backtrack counts by decade.
func (s *Store) Histogram(runID string) ([]Bucket, error) {
	if _, err := s.Run(runID); err != nil {
		return nil, err
	}

	rows, err := s.db.Query("SELECT backtracks FROM results WHERE run_id = ?", runID)
	if err != nil {
		return nil, fmt.Errorf("reading backtracks for run %s: %w", runID, err)
	}
	defer rows.Close()

	buckets := make([]Bucket, len(histogramBounds))
	for i, b := range histogramBounds {
		buckets[i] = Bucket{Label: b.label, Lo: b.lo, Hi: b.hi}
	}
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		for i := range buckets {
			if n >= buckets[i].Lo && (buckets[i].Hi < 0 || n <= buckets[i].Hi) {
				buckets[i].Count++
				break
			}
		}
	}
	return buckets, rows.Err()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*Run, error) {
	var run Run
	var started string
	var finished sql.NullString
	err := row.Scan(&run.RunID, &run.Corpus, &started, &finished,
		&run.Puzzles, &run.Solved, &run.Unsolved, &run.Rejected)
	if err != nil {
		return nil, err
	}
	if run.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
		return nil, fmt.Errorf("parsing started_at: %w", err)
	}
	if finished.Valid {
		if run.FinishedAt, err = time.Parse(time.RFC3339Nano, finished.String); err != nil {
			return nil, fmt.Errorf("parsing finished_at: %w", err)
		}
	}
	return &run, nil
}
