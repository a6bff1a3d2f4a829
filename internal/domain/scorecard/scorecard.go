// Package scorecard turns raw indicator values into a graded scorecard.
package scorecard

import (
	"github.com/equiscore/equiscore/internal/domain/grade"
)

// AgeDistribution carries the raw age-bracket percentages. The brackets
// are intended to sum to 100 but the sum is not enforced here; callers
// may warn on a mismatch.
type AgeDistribution struct {
	Under30        float64 `json:"under_30"`
	Between30And50 float64 `json:"between_30_50"`
	Over50         float64 `json:"over_50"`
}

// Sum returns the total of the three brackets.
func (a AgeDistribution) Sum() float64 {
	return a.Under30 + a.Between30And50 + a.Over50
}

// SumTolerance is the accepted deviation of the bracket sum from 100
// before callers should surface a warning.
const SumTolerance = 0.01

// Balanced100 reports whether the brackets sum to 100 within tolerance.
func (a AgeDistribution) Balanced100() bool {
	d := a.Sum() - 100
	if d < 0 {
		d = -d
	}
	return d <= SumTolerance
}

// Request is one evaluation request: company metadata, the directly
// measured indicator values keyed by indicator key, and the raw age
// brackets from which the age-balance indicator is derived.
type Request struct {
	Company    string             `json:"company"`
	Year       int                `json:"year"`
	Indicators map[string]float64 `json:"indicators"`
	Ages       AgeDistribution    `json:"age_distribution"`
}

// Line is one graded row of the scorecard.
type Line struct {
	Key    string      `json:"indicator_key"`
	Label  string      `json:"label"`
	Value  float64     `json:"value"`
	Grade  grade.Grade `json:"grade"`
	Points int         `json:"points"`
}

// Card is the evaluation output: the graded lines in catalog order plus
// the aggregate score and letter.
type Card struct {
	Company        string      `json:"company"`
	Year           int         `json:"year"`
	Lines          []Line      `json:"lines"`
	AggregateScore float64     `json:"aggregate_score"`
	AggregateGrade grade.Grade `json:"aggregate_grade"`
}

// Grades returns the per-indicator grades keyed by indicator key.
func (c Card) Grades() map[string]grade.Grade {
	out := make(map[string]grade.Grade, len(c.Lines))
	for _, l := range c.Lines {
		out[l.Key] = l.Grade
	}
	return out
}
