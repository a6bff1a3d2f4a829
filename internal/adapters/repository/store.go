// Package repository defines the evaluation history store interface and
// its SQLite implementation.
package repository

import (
	"context"
	"time"

	"github.com/equiscore/equiscore/internal/domain/grade"
	"github.com/equiscore/equiscore/internal/domain/scorecard"
)

// Record is one stored evaluation.
type Record struct {
	ID        string         `json:"id"`
	Company   string         `json:"company"`
	Year      int            `json:"year"`
	CreatedAt time.Time      `json:"created_at"`
	Card      scorecard.Card `json:"scorecard"`
}

// Summary is the listing shape: record metadata plus the aggregate result,
// without the full line set.
type Summary struct {
	ID             string      `json:"id"`
	Company        string      `json:"company"`
	Year           int         `json:"year"`
	CreatedAt      time.Time   `json:"created_at"`
	AggregateScore float64     `json:"aggregate_score"`
	AggregateGrade grade.Grade `json:"aggregate_grade"`
}

// Store provides read/write access to the evaluation history.
type Store interface {
	// Save persists a record. The record id must be unique.
	Save(ctx context.Context, rec Record) error

	// Get returns the record with the given id.
	// Returns ErrNotFound if the id is unknown.
	Get(ctx context.Context, id string) (Record, error)

	// List returns up to limit summaries, most recent first.
	List(ctx context.Context, limit int) ([]Summary, error)

	// Count returns the number of stored evaluations.
	Count(ctx context.Context) int

	// Close releases the underlying storage.
	Close() error
}
