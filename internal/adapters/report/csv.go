package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/equiscore/equiscore/internal/domain/scorecard"
)

// RenderCSV renders a scorecard as a CSV table: one row per indicator
// followed by the aggregate row.
func RenderCSV(card scorecard.Card) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{
		{"indicator", "value", "grade", "points"},
	}
	for _, line := range card.Lines {
		rows = append(rows, []string{
			line.Label,
			strconv.FormatFloat(line.Value, 'f', 1, 64),
			string(line.Grade),
			strconv.Itoa(line.Points),
		})
	}
	rows = append(rows, []string{
		"Overall",
		fmt.Sprintf("%.2f/5", card.AggregateScore),
		string(card.AggregateGrade),
		"",
	})

	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	return buf.Bytes(), nil
}
