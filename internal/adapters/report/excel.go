package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/equiscore/equiscore/internal/domain/scorecard"
)

const (
	resultsSheet = "Results"
	infoSheet    = "Information"

	headerFill = "007BFF"
)

// RenderXLSX renders a scorecard as an Excel workbook with a results
// sheet and a general-information sheet.
func RenderXLSX(card scorecard.Card) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	f.SetSheetName(f.GetSheetName(0), resultsSheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFill}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}

	headers := []string{"Indicator", "Value", "Grade", "Points"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(resultsSheet, cell, h); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRender, err)
		}
	}
	if err := f.SetCellStyle(resultsSheet, "A1", "D1", headerStyle); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}

	for i, line := range card.Lines {
		row := i + 2
		_ = f.SetCellValue(resultsSheet, fmt.Sprintf("A%d", row), line.Label)
		_ = f.SetCellValue(resultsSheet, fmt.Sprintf("B%d", row), line.Value)
		_ = f.SetCellValue(resultsSheet, fmt.Sprintf("C%d", row), string(line.Grade))
		_ = f.SetCellValue(resultsSheet, fmt.Sprintf("D%d", row), line.Points)

		gradeStyle, styleErr := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Bold: true},
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{strings.TrimPrefix(gradeColor(line.Grade), "#")}},
		})
		if styleErr == nil {
			_ = f.SetCellStyle(resultsSheet, fmt.Sprintf("C%d", row), fmt.Sprintf("C%d", row), gradeStyle)
		}
	}

	_ = f.SetColWidth(resultsSheet, "A", "A", 32)
	_ = f.SetColWidth(resultsSheet, "B", "D", 12)

	if _, err := f.NewSheet(infoSheet); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	info := [][]interface{}{
		{"Field", "Value"},
		{"Company", card.Company},
		{"Year", card.Year},
		{"Overall grade", string(card.AggregateGrade)},
		{"Overall score", fmt.Sprintf("%.2f/5", card.AggregateScore)},
		{"Evaluated on", time.Now().Format("02/01/2006")},
	}
	for i, pair := range info {
		row := i + 1
		_ = f.SetCellValue(infoSheet, fmt.Sprintf("A%d", row), pair[0])
		_ = f.SetCellValue(infoSheet, fmt.Sprintf("B%d", row), pair[1])
	}
	_ = f.SetCellStyle(infoSheet, "A1", "B1", headerStyle)
	_ = f.SetColWidth(infoSheet, "A", "B", 20)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	return buf.Bytes(), nil
}
