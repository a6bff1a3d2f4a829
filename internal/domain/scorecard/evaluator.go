package scorecard

import (
	"context"
	"fmt"

	"github.com/equiscore/equiscore/internal/domain/agebalance"
	"github.com/equiscore/equiscore/internal/domain/indicator"
)

// Option applies a configuration option to the Evaluator.
type Option func(*Evaluator)

// WithCatalog replaces the indicator catalog used for grading. Tests use
// this to evaluate against alternate threshold tables without touching
// any process-wide state.
func WithCatalog(catalog indicator.Catalog) Option {
	return func(e *Evaluator) {
		if catalog.Len() > 0 {
			e.catalog = catalog
		}
	}
}

// Evaluator grades evaluation requests against an injected indicator
// catalog. It holds no mutable state; a single instance is safe for
// concurrent use.
type Evaluator struct {
	catalog indicator.Catalog
}

// NewEvaluator creates an evaluator, defaulting to the fixed sector catalog.
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{catalog: indicator.Default()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Catalog returns the catalog the evaluator grades against.
func (e *Evaluator) Catalog() indicator.Catalog {
	return e.catalog
}

// Evaluate grades a request into a Card. Every supplied indicator key
// must exist in the catalog and every catalog indicator must resolve to
// a value; the age-balance value is derived from the raw brackets unless
// the caller supplied it directly. Numeric ranges are deliberately not
// validated: out-of-range values grade at the extreme end of the ladder.
//
// Any unknown or missing key fails the whole evaluation; the aggregate
// is only computed over a complete grade set.
func (e *Evaluator) Evaluate(ctx context.Context, req Request) (Card, error) {
	_ = ctx // pure computation; kept for interface symmetry

	for key := range req.Indicators {
		if _, ok := e.catalog.Get(key); !ok {
			return Card{}, fmt.Errorf("%w: %s", indicator.ErrUnknownIndicator, key)
		}
	}

	values := make(map[string]float64, e.catalog.Len())
	for k, v := range req.Indicators {
		values[k] = v
	}
	if _, supplied := values[indicator.AgeBalance]; !supplied {
		values[indicator.AgeBalance] = agebalance.Balance(
			req.Ages.Under30, req.Ages.Between30And50, req.Ages.Over50)
	}

	lines := make([]Line, 0, e.catalog.Len())
	for _, def := range e.catalog.Definitions() {
		value, ok := values[def.Key]
		if !ok {
			return Card{}, fmt.Errorf("%w: %s", ErrMissingIndicator, def.Key)
		}
		g := def.Ladder().Evaluate(value)
		lines = append(lines, Line{
			Key:    def.Key,
			Label:  def.Label,
			Value:  value,
			Grade:  g,
			Points: g.Points(),
		})
	}

	card := Card{
		Company: req.Company,
		Year:    req.Year,
		Lines:   lines,
	}

	score, aggregate, err := Aggregate(card.Grades())
	if err != nil {
		return Card{}, err
	}
	card.AggregateScore = score
	card.AggregateGrade = aggregate

	return card, nil
}
