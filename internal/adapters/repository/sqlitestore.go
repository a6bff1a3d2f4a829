package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/equiscore/equiscore/internal/domain/grade"
	"github.com/equiscore/equiscore/internal/domain/scorecard"
	"github.com/equiscore/equiscore/pkg/metrics"
)

const defaultPath = "equiscore.db"

// SQLiteStore implements Store on a single SQLite database. The full
// scorecard is stored as JSON next to the queryable metadata columns.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

// NewSQLiteStore opens (and if needed creates) the history database.
func NewSQLiteStore(ctx context.Context, opts ...Option) (*SQLiteStore, error) {
	s := &SQLiteStore{path: defaultPath}
	for _, opt := range opts {
		opt(s)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenStore, err)
	}
	// SQLite handles one writer at a time; a single connection avoids
	// table-lock errors under concurrent saves.
	db.SetMaxOpenConns(1)

	if err := ensureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	s.db = db
	return s, nil
}

func ensureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS evaluations (
			id TEXT PRIMARY KEY,
			company TEXT NOT NULL,
			year INTEGER NOT NULL,
			created_at DATETIME NOT NULL,
			aggregate_score REAL NOT NULL,
			aggregate_grade TEXT NOT NULL,
			card_json TEXT NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("%w: create schema: %v", ErrOpenStore, err)
	}
	return nil
}

// Save persists a record.
func (s *SQLiteStore) Save(ctx context.Context, rec Record) error {
	start := time.Now()

	cardJSON, err := json.Marshal(rec.Card)
	if err != nil {
		return fmt.Errorf("encode scorecard: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO evaluations (id, company, year, created_at, aggregate_score, aggregate_grade, card_json)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Company, rec.Year, rec.CreatedAt.UTC(),
		rec.Card.AggregateScore, string(rec.Card.AggregateGrade), string(cardJSON),
	)
	if err != nil {
		metrics.RecordErrorByComponent("history", "write_failed")
		return fmt.Errorf("insert evaluation: %w", err)
	}

	metrics.RecordHistoryWriteLatency(float64(time.Since(start).Milliseconds()))
	metrics.UpdateHistorySize(s.Count(ctx))
	return nil
}

// Get returns the record with the given id.
func (s *SQLiteStore) Get(ctx context.Context, id string) (Record, error) {
	start := time.Now()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, company, year, created_at, card_json
		FROM evaluations WHERE id = ?`, id)

	var rec Record
	var cardJSON string
	if err := row.Scan(&rec.ID, &rec.Company, &rec.Year, &rec.CreatedAt, &cardJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return Record{}, fmt.Errorf("query evaluation: %w", err)
	}

	var card scorecard.Card
	if err := json.Unmarshal([]byte(cardJSON), &card); err != nil {
		return Record{}, fmt.Errorf("decode scorecard: %w", err)
	}
	rec.Card = card

	metrics.RecordHistoryQueryLatency(float64(time.Since(start).Milliseconds()))
	return rec, nil
}

// List returns up to limit summaries, most recent first.
func (s *SQLiteStore) List(ctx context.Context, limit int) ([]Summary, error) {
	if limit < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}
	start := time.Now()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, company, year, created_at, aggregate_score, aggregate_grade
		FROM evaluations ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query evaluations: %w", err)
	}
	defer func() { _ = rows.Close() }()

	summaries := make([]Summary, 0, limit)
	for rows.Next() {
		var sum Summary
		var letter string
		if err := rows.Scan(&sum.ID, &sum.Company, &sum.Year, &sum.CreatedAt, &sum.AggregateScore, &letter); err != nil {
			return nil, fmt.Errorf("scan evaluation: %w", err)
		}
		sum.AggregateGrade = grade.Grade(letter)
		summaries = append(summaries, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate evaluations: %w", err)
	}

	metrics.RecordHistoryQueryLatency(float64(time.Since(start).Milliseconds()))
	return summaries, nil
}

// Count returns the number of stored evaluations.
func (s *SQLiteStore) Count(ctx context.Context) int {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM evaluations`).Scan(&n); err != nil {
		return 0
	}
	return n
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close history store: %w", err)
	}
	return nil
}
