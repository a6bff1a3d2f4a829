package scorecard

import (
	"github.com/equiscore/equiscore/internal/domain/grade"
)

// Aggregate converts a set of per-indicator grades into the aggregate
// score and letter. The score is the unweighted mean of the five-point
// grade values; the letter comes from the aggregate ladder in the grade
// package, which is distinct from every per-indicator ladder.
//
// An empty grade set fails with ErrNoGrades rather than dividing by zero.
func Aggregate(grades map[string]grade.Grade) (float64, grade.Grade, error) {
	if len(grades) == 0 {
		return 0, "", ErrNoGrades
	}

	total := 0
	for _, g := range grades {
		total += g.Points()
	}

	score := float64(total) / float64(len(grades))
	return score, grade.FromScore(score), nil
}
