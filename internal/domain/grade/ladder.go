package grade

// Direction indicates which way an indicator improves.
type Direction int

// Indicator directions.
const (
	HigherIsBetter Direction = iota
	LowerIsBetter
)

func (d Direction) String() string {
	if d == LowerIsBetter {
		return "lower_is_better"
	}
	return "higher_is_better"
}

// Ladder holds the four cut points separating grades A/B/C/D/E for one
// indicator, ordered from the A boundary to the D boundary, together with
// the direction in which the indicator improves.
//
// The ladder performs no validation of monotonicity; malformed cut sets
// produce whatever grade the scan yields.
type Ladder struct {
	cuts      [4]float64
	direction Direction
}

// NewLadder builds a ladder from its cut points and direction.
func NewLadder(cuts [4]float64, direction Direction) Ladder {
	return Ladder{cuts: cuts, direction: direction}
}

// Cuts returns the four cut points, A boundary first.
func (l Ladder) Cuts() [4]float64 {
	return l.cuts
}

// Direction returns the improving direction of the ladder.
func (l Ladder) Direction() Direction {
	return l.direction
}

var scanOrder = [...]Grade{A, B, C, D}

// Evaluate walks the cut points from best to worst and returns the first
// grade whose boundary the value meets; anything past the D boundary is E.
// Boundaries are inclusive, so a value sitting exactly on a cut takes the
// better grade. Both directions share this one scan; only the comparator
// differs.
func (l Ladder) Evaluate(value float64) Grade {
	meets := func(v, cut float64) bool { return v >= cut }
	if l.direction == LowerIsBetter {
		meets = func(v, cut float64) bool { return v <= cut }
	}
	for i, g := range scanOrder {
		if meets(value, l.cuts[i]) {
			return g
		}
	}
	return E
}
