package report

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// templateRows are the input rows of the intake template, with example
// values for a typical energy-sector company.
var templateRows = [][]string{
	{"indicator", "value"},
	{"company", "EDF SA"},
	{"year", "2022"},
	{"feminization", "30.0"},
	{"women_in_management", "28.0"},
	{"pay_gap", "5.0"},
	{"disability_employment", "5.5"},
	{"under_30", "15.0"},
	{"between_30_50", "45.0"},
	{"over_50", "40.0"},
	{"absenteeism", "4.2"},
}

// TemplateCSV returns the CSV input template.
func TemplateCSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(templateRows); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	return buf.Bytes(), nil
}

// TemplateXLSX returns the Excel input template.
func TemplateXLSX() ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFill}},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}

	for i, row := range templateRows {
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", i+1), row[0])
		_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", i+1), row[1])
	}
	_ = f.SetCellStyle(sheet, "A1", "B1", headerStyle)
	_ = f.SetColWidth(sheet, "A", "A", 24)
	_ = f.SetColWidth(sheet, "B", "B", 14)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	return buf.Bytes(), nil
}
