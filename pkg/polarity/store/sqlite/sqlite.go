package sqlite

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/polarity/pkg/polarity/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite run archive with WAL mode enabled, creating the
// schema when missing.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	started_at TEXT NOT NULL,
	trained_positive INTEGER NOT NULL,
	trained_negative INTEGER NOT NULL,
	vocabulary_size INTEGER NOT NULL,
	predictions INTEGER NOT NULL,
	matched INTEGER NOT NULL,
	correct INTEGER NOT NULL,
	accuracy REAL NOT NULL,
	misclassified INTEGER NOT NULL
);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveRun inserts or replaces a run, keyed by ID.
func (s *sqliteStore) SaveRun(ctx context.Context, r store.Run) error {
	if r.ID == "" {
		return nil
	}

	_, err := s.db.ExecContext(ctx, `
INSERT INTO runs (id, started_at, trained_positive, trained_negative,
	vocabulary_size, predictions, matched, correct, accuracy, misclassified)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	started_at = excluded.started_at,
	trained_positive = excluded.trained_positive,
	trained_negative = excluded.trained_negative,
	vocabulary_size = excluded.vocabulary_size,
	predictions = excluded.predictions,
	matched = excluded.matched,
	correct = excluded.correct,
	accuracy = excluded.accuracy,
	misclassified = excluded.misclassified`,
		r.ID, r.StartedAt.UTC().Format(time.RFC3339Nano),
		r.TrainedPositive, r.TrainedNegative, r.VocabularySize,
		r.Predictions, r.Matched, r.Correct, r.Accuracy, r.Misclassified)
	return err
}

// GetRun returns a run by ID.
func (s *sqliteStore) GetRun(ctx context.Context, id string) (store.Run, bool, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, started_at, trained_positive, trained_negative, vocabulary_size,
	predictions, matched, correct, accuracy, misclassified
FROM runs WHERE id = ?`, id)

	r, err := scanRun(row)
	if err == sql.ErrNoRows {
		return store.Run{}, false, nil
	}
	if err != nil {
		return store.Run{}, false, err
	}
	return r, true, nil
}

// ListRuns returns up to limit runs, newest first (ULIDs order by time).
func (s *sqliteStore) ListRuns(ctx context.Context, limit int) ([]store.Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT id, started_at, trained_positive, trained_negative, vocabulary_size,
	predictions, matched, correct, accuracy, misclassified
FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (store.Run, error) {
	var r store.Run
	var startedAt string

	err := sc.Scan(&r.ID, &startedAt, &r.TrainedPositive, &r.TrainedNegative,
		&r.VocabularySize, &r.Predictions, &r.Matched, &r.Correct,
		&r.Accuracy, &r.Misclassified)
	if err != nil {
		return store.Run{}, err
	}

	if ts, perr := time.Parse(time.RFC3339Nano, startedAt); perr == nil {
		r.StartedAt = ts
	}
	return r, nil
}
