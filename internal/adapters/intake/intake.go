// Package intake parses uploaded indicator files (CSV or Excel, in the
// published template format) into evaluation requests.
package intake

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/equiscore/equiscore/internal/domain/scorecard"
)

// Format identifies an intake file format.
type Format string

// Supported formats.
const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat validates a format string.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, s)
	}
}

// FormatForFilename guesses the intake format from a file name.
func FormatForFilename(name string) (Format, error) {
	switch {
	case strings.HasSuffix(strings.ToLower(name), ".csv"):
		return FormatCSV, nil
	case strings.HasSuffix(strings.ToLower(name), ".xlsx"),
		strings.HasSuffix(strings.ToLower(name), ".xls"):
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, name)
	}
}

// Row keys of the template that are not indicator values.
const (
	keyCompany = "company"
	keyYear    = "year"

	keyUnder30        = "under_30"
	keyBetween30And50 = "between_30_50"
	keyOver50         = "over_50"
)

// Parse reads an indicator file in the template format (two columns,
// indicator key then value) and builds an evaluation request. Business
// range validation is deliberately not performed here; the scoring core
// grades whatever numbers arrive.
func Parse(r io.Reader, format Format) (scorecard.Request, error) {
	rows, err := readRows(r, format)
	if err != nil {
		return scorecard.Request{}, err
	}
	return buildRequest(rows)
}

func readRows(r io.Reader, format Format) ([][]string, error) {
	switch format {
	case FormatCSV:
		rows, err := csv.NewReader(r).ReadAll()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedFile, err)
		}
		return rows, nil
	case FormatXLSX:
		f, err := excelize.OpenReader(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedFile, err)
		}
		defer func() { _ = f.Close() }()
		rows, err := f.GetRows(f.GetSheetName(0))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedFile, err)
		}
		return rows, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

func buildRequest(rows [][]string) (scorecard.Request, error) {
	req := scorecard.Request{Indicators: make(map[string]float64)}

	for i, row := range rows {
		if len(row) < 2 {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(row[0]))
		value := strings.TrimSpace(row[1])
		if key == "" || (i == 0 && key == "indicator") {
			continue
		}

		switch key {
		case keyCompany:
			req.Company = value
			continue
		case keyYear:
			year, err := strconv.Atoi(value)
			if err != nil {
				return scorecard.Request{}, fmt.Errorf("%w: year %q", ErrBadValue, value)
			}
			req.Year = year
			continue
		}

		number, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return scorecard.Request{}, fmt.Errorf("%w: %s %q", ErrBadValue, key, value)
		}

		switch key {
		case keyUnder30:
			req.Ages.Under30 = number
		case keyBetween30And50:
			req.Ages.Between30And50 = number
		case keyOver50:
			req.Ages.Over50 = number
		default:
			// Unknown indicator keys pass through untouched; the
			// evaluator rejects them with its own error.
			req.Indicators[key] = number
		}
	}

	return req, nil
}
