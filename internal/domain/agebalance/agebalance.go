// Package agebalance derives the age-balance indicator from raw
// age-bracket percentages.
package agebalance

// Calculation constants.
//
// maxMeanDeviation is the historical normalization constant (one bracket
// at 100% gives deviations of 66.67, 33.33, 33.33, mean 44.43). It is not
// the true theoretical maximum for three brackets; it is kept as-is for
// compatibility with existing scorecards.
const (
	idealShare       = 33.33
	maxMeanDeviation = 66.67
	bracketCount     = 3
)

// Balance converts the three age-bracket percentages into a 0-100 score
// measuring closeness to a uniform three-way split. 100 means a perfect
// split; the result is not clamped and can go negative on pathological
// input. Inputs are not validated: range checks belong to the collector
// of the raw data, not here.
func Balance(under30, between30And50, over50 float64) float64 {
	meanDeviation := (abs(under30-idealShare) +
		abs(between30And50-idealShare) +
		abs(over50-idealShare)) / bracketCount

	return (1 - meanDeviation/maxMeanDeviation) * 100
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
