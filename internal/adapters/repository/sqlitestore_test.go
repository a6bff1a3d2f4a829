package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/equiscore/equiscore/internal/domain/grade"
	"github.com/equiscore/equiscore/internal/domain/scorecard"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(context.Background(), WithPath(":memory:"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testRecord(company string, year int, createdAt time.Time) Record {
	return Record{
		ID:        uuid.NewString(),
		Company:   company,
		Year:      year,
		CreatedAt: createdAt,
		Card: scorecard.Card{
			Company: company,
			Year:    year,
			Lines: []scorecard.Line{
				{Key: "pay_gap", Label: "Gender pay gap", Value: 3.0, Grade: grade.B, Points: 4},
			},
			AggregateScore: 4.0,
			AggregateGrade: grade.B,
		},
	}
}

func TestSQLiteStore_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	if count := store.Count(ctx); count != 0 {
		t.Errorf("expected count 0, got %d", count)
	}

	rec := testRecord("EDF SA", 2022, time.Now())
	if err := store.Save(ctx, rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if count := store.Count(ctx); count != 1 {
		t.Errorf("expected count 1, got %d", count)
	}

	got, err := store.Get(ctx, rec.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Company != "EDF SA" || got.Year != 2022 {
		t.Errorf("unexpected record metadata: %+v", got)
	}
	if got.Card.AggregateGrade != grade.B {
		t.Errorf("expected aggregate grade B, got %s", got.Card.AggregateGrade)
	}
	if len(got.Card.Lines) != 1 || got.Card.Lines[0].Key != "pay_gap" {
		t.Errorf("scorecard lines not round-tripped: %+v", got.Card.Lines)
	}
}

func TestSQLiteStore_GetUnknown(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, err := store.Get(ctx, "no-such-id")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSQLiteStore_DuplicateID(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	rec := testRecord("EDF SA", 2022, time.Now())
	if err := store.Save(ctx, rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Save(ctx, rec); err == nil {
		t.Fatal("expected duplicate id to fail")
	}
}

func TestSQLiteStore_List(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	companies := []string{"Alpha", "Bravo", "Charlie"}
	for i, c := range companies {
		rec := testRecord(c, 2020+i, base.Add(time.Duration(i)*time.Hour))
		if err := store.Save(ctx, rec); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	summaries, err := store.List(ctx, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}
	// Most recent first.
	if summaries[0].Company != "Charlie" || summaries[1].Company != "Bravo" {
		t.Errorf("unexpected order: %s, %s", summaries[0].Company, summaries[1].Company)
	}
	if summaries[0].AggregateGrade != grade.B {
		t.Errorf("expected aggregate grade B, got %s", summaries[0].AggregateGrade)
	}

	if _, err := store.List(ctx, 0); !errors.Is(err, ErrInvalidLimit) {
		t.Errorf("expected ErrInvalidLimit for limit 0, got %v", err)
	}
}

func TestSQLiteStore_Persistence(t *testing.T) {
	ctx := context.Background()
	path := t.TempDir() + "/history.db"

	store, err := NewSQLiteStore(ctx, WithPath(path))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	rec := testRecord("EDF SA", 2022, time.Now())
	if err := store.Save(ctx, rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("failed to close store: %v", err)
	}

	reopened, err := NewSQLiteStore(ctx, WithPath(path))
	if err != nil {
		t.Fatalf("failed to reopen store: %v", err)
	}
	defer func() { _ = reopened.Close() }()

	got, err := reopened.Get(ctx, rec.ID)
	if err != nil {
		t.Fatalf("unexpected error after reopen: %v", err)
	}
	if got.Company != "EDF SA" {
		t.Errorf("record not persisted: %+v", got)
	}
}
