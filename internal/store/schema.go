package store

// Schema DDL for the benchmark database. The database persists across
// runs, so every statement is idempotent.
const (
	createRuns = `CREATE TABLE IF NOT EXISTS runs (
    run_id TEXT PRIMARY KEY,
    corpus TEXT NOT NULL,
    started_at TEXT NOT NULL,
    finished_at TEXT,
    puzzles INTEGER NOT NULL DEFAULT 0,
    solved INTEGER NOT NULL DEFAULT 0,
    unsolved INTEGER NOT NULL DEFAULT 0,
    rejected INTEGER NOT NULL DEFAULT 0
);`

	createResults = `CREATE TABLE IF NOT EXISTS results (
    run_id TEXT NOT NULL,
    seq INTEGER NOT NULL,
    puzzle TEXT NOT NULL,
    solved INTEGER NOT NULL,
    guesses INTEGER NOT NULL,
    backtracks INTEGER NOT NULL,
    duration_us INTEGER NOT NULL,
    PRIMARY KEY (run_id, seq),
    FOREIGN KEY (run_id) REFERENCES runs(run_id)
);`

	idxResultsRun        = `CREATE INDEX IF NOT EXISTS idx_results_run ON results(run_id);`
	idxResultsBacktracks = `CREATE INDEX IF NOT EXISTS idx_results_backtracks ON results(run_id, backtracks);`
)

// schemaDDL lists all statements in dependency order.
var schemaDDL = []string{
	createRuns,
	createResults,
	idxResultsRun,
	idxResultsBacktracks,
}
