// Package indicator defines the fixed set of scored dimensions and their
// threshold ladders.
package indicator

import (
	"fmt"

	"github.com/equiscore/equiscore/internal/domain/grade"
)

// Keys of the six scored indicators.
const (
	Feminization         = "feminization"
	WomenInManagement    = "women_in_management"
	DisabilityEmployment = "disability_employment"
	PayGap               = "pay_gap"
	AgeBalance           = "age_balance"
	Absenteeism          = "absenteeism"
)

// Definition describes one scored dimension: its key, a human-readable
// label, the four cut points of its ladder and the direction in which the
// indicator improves.
type Definition struct {
	Key       string
	Label     string
	Cuts      [4]float64
	Direction grade.Direction
}

// Ladder returns the threshold ladder for this definition.
func (d Definition) Ladder() grade.Ladder {
	return grade.NewLadder(d.Cuts, d.Direction)
}

// Catalog is an immutable, ordered set of indicator definitions. It is
// built once at startup and injected where grading happens; nothing
// mutates it afterwards.
type Catalog struct {
	defs  []Definition
	index map[string]int
}

// NewCatalog builds a catalog from definitions, preserving their order.
// Duplicate or empty keys are rejected.
func NewCatalog(defs ...Definition) (Catalog, error) {
	index := make(map[string]int, len(defs))
	for i, d := range defs {
		if d.Key == "" {
			return Catalog{}, fmt.Errorf("%w: empty key at position %d", ErrInvalidDefinition, i)
		}
		if _, dup := index[d.Key]; dup {
			return Catalog{}, fmt.Errorf("%w: duplicate key %q", ErrInvalidDefinition, d.Key)
		}
		index[d.Key] = i
	}
	copied := make([]Definition, len(defs))
	copy(copied, defs)
	return Catalog{defs: copied, index: index}, nil
}

// Default returns the catalog of the six fixed indicators with the
// energy/industry sector thresholds.
func Default() Catalog {
	c, err := NewCatalog(
		Definition{Key: Feminization, Label: "Overall feminization rate", Cuts: [4]float64{40, 35, 30, 25}, Direction: grade.HigherIsBetter},
		Definition{Key: WomenInManagement, Label: "Women in management", Cuts: [4]float64{35, 30, 25, 20}, Direction: grade.HigherIsBetter},
		Definition{Key: DisabilityEmployment, Label: "Disability employment rate", Cuts: [4]float64{6, 5, 4, 3}, Direction: grade.HigherIsBetter},
		Definition{Key: PayGap, Label: "Gender pay gap", Cuts: [4]float64{2, 4, 8, 12}, Direction: grade.LowerIsBetter},
		Definition{Key: AgeBalance, Label: "Age balance", Cuts: [4]float64{85, 75, 65, 55}, Direction: grade.HigherIsBetter},
		Definition{Key: Absenteeism, Label: "Absenteeism rate", Cuts: [4]float64{2.5, 3.5, 4.5, 5.5}, Direction: grade.LowerIsBetter},
	)
	if err != nil {
		panic(err) // static definitions; cannot fail
	}
	return c
}

// Get returns the definition for key.
func (c Catalog) Get(key string) (Definition, bool) {
	i, ok := c.index[key]
	if !ok {
		return Definition{}, false
	}
	return c.defs[i], true
}

// Definitions returns the definitions in catalog order. The slice is a
// copy; callers cannot mutate the catalog through it.
func (c Catalog) Definitions() []Definition {
	out := make([]Definition, len(c.defs))
	copy(out, c.defs)
	return out
}

// Keys returns the indicator keys in catalog order.
func (c Catalog) Keys() []string {
	out := make([]string, len(c.defs))
	for i, d := range c.defs {
		out[i] = d.Key
	}
	return out
}

// Len returns the number of definitions.
func (c Catalog) Len() int {
	return len(c.defs)
}

// WithCuts returns a new catalog with the cut points of key replaced.
// The receiver is left untouched.
func (c Catalog) WithCuts(key string, cuts [4]float64) (Catalog, error) {
	i, ok := c.index[key]
	if !ok {
		return Catalog{}, fmt.Errorf("%w: %s", ErrUnknownIndicator, key)
	}
	defs := c.Definitions()
	defs[i].Cuts = cuts
	return NewCatalog(defs...)
}
