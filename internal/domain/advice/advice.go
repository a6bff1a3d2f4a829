// Package advice derives findings and remediation recommendations from a
// graded scorecard.
package advice

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/equiscore/equiscore/internal/domain/grade"
	"github.com/equiscore/equiscore/internal/domain/scorecard"
)

//go:embed advice.yaml
var rawCatalog []byte

// Recommendation lists remediation actions for one poorly graded indicator.
type Recommendation struct {
	Key     string      `json:"indicator_key"`
	Label   string      `json:"label"`
	Grade   grade.Grade `json:"grade"`
	Actions []string    `json:"actions"`
}

// Report groups the indicators of a scorecard by outcome: strengths are
// graded A or B, concerns D or E, and everything at C is to consolidate.
type Report struct {
	Strengths       []string         `json:"strengths"`
	Consolidate     []string         `json:"consolidate"`
	Concerns        []string         `json:"concerns"`
	Recommendations []Recommendation `json:"recommendations"`
	Conclusion      string           `json:"conclusion"`
}

type catalogFile struct {
	Indicators map[string]map[string][]string `yaml:"indicators"`
}

// Option applies a configuration option to the Advisor.
type Option func(*Advisor)

// WithCatalogSource replaces the embedded YAML action catalog.
func WithCatalogSource(src []byte) Option {
	return func(a *Advisor) {
		if len(src) > 0 {
			a.source = src
		}
	}
}

// Advisor produces advice reports from scorecards. The action catalog is
// parsed once at construction and read-only afterwards.
type Advisor struct {
	source  []byte
	actions map[string]map[string][]string
}

// NewAdvisor builds an advisor from the embedded action catalog.
func NewAdvisor(opts ...Option) (*Advisor, error) {
	a := &Advisor{source: rawCatalog}
	for _, opt := range opts {
		opt(a)
	}

	var parsed catalogFile
	if err := yaml.Unmarshal(a.source, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	a.actions = parsed.Indicators
	return a, nil
}

// Advise builds the findings report for a card. It consumes the card's
// grades only; it never re-derives them from values.
func (a *Advisor) Advise(card scorecard.Card) Report {
	var report Report

	for _, line := range card.Lines {
		switch line.Grade {
		case grade.A, grade.B:
			report.Strengths = append(report.Strengths, line.Label)
		case grade.C:
			report.Consolidate = append(report.Consolidate, line.Label)
		case grade.D, grade.E:
			report.Concerns = append(report.Concerns, line.Label)
			report.Recommendations = append(report.Recommendations, Recommendation{
				Key:     line.Key,
				Label:   line.Label,
				Grade:   line.Grade,
				Actions: a.actionsFor(line.Key, line.Grade),
			})
		}
	}

	report.Conclusion = conclusion(card)
	return report
}

func (a *Advisor) actionsFor(key string, g grade.Grade) []string {
	byGrade, ok := a.actions[key]
	if !ok {
		return nil
	}
	return byGrade[string(g)]
}

func conclusion(card scorecard.Card) string {
	switch card.AggregateGrade {
	case grade.A, grade.B:
		return fmt.Sprintf("With an overall grade of %s (score %.2f/5), the company demonstrates a solid commitment to diversity and inclusion. Existing good practices deserve to be highlighted and shared.",
			card.AggregateGrade, card.AggregateScore)
	case grade.C:
		return fmt.Sprintf("With an overall grade of %s (score %.2f/5), the company shows mixed diversity and inclusion results. Significant progress is still needed to reach excellence.",
			card.AggregateGrade, card.AggregateScore)
	default:
		return fmt.Sprintf("With an overall grade of %s (score %.2f/5), the company underperforms on diversity and inclusion. An ambitious, company-wide action plan is needed.",
			card.AggregateGrade, card.AggregateScore)
	}
}
