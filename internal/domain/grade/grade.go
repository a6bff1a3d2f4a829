// Package grade defines the five-letter grade scale and its threshold
// ladder evaluation.
package grade

// Grade is one of five ordered letters, A (best) through E (worst).
type Grade string

// The five grades, best to worst.
const (
	A Grade = "A"
	B Grade = "B"
	C Grade = "C"
	D Grade = "D"
	E Grade = "E"
)

// Points maps a grade to its numeric value on the five-point scale
// (A=5 down to E=1). Unknown grades map to 0.
func (g Grade) Points() int {
	switch g {
	case A:
		return 5
	case B:
		return 4
	case C:
		return 3
	case D:
		return 2
	case E:
		return 1
	default:
		return 0
	}
}

// Valid reports whether g is one of the five known grades.
func (g Grade) Valid() bool {
	return g.Points() != 0
}

func (g Grade) String() string {
	return string(g)
}

// Parse converts a stored letter back into a Grade.
func Parse(s string) (Grade, error) {
	g := Grade(s)
	if !g.Valid() {
		return "", ErrUnknownGrade
	}
	return g, nil
}

// Aggregate-score cut points. These are fixed and deliberately distinct
// from any per-indicator ladder.
const (
	scoreCutA = 4.5
	scoreCutB = 3.5
	scoreCutC = 2.5
	scoreCutD = 1.5
)

// FromScore converts an aggregate score on the [1,5] scale back into a
// letter. This is not the inverse of Points: the two conversions use
// different ladders.
func FromScore(score float64) Grade {
	switch {
	case score >= scoreCutA:
		return A
	case score >= scoreCutB:
		return B
	case score >= scoreCutC:
		return C
	case score >= scoreCutD:
		return D
	default:
		return E
	}
}
