// Package report renders scorecards into downloadable CSV, Excel and
// HTML documents. Renderers consume the scorecard as-is; grades are never
// re-derived here.
package report

import (
	"fmt"
	"strings"

	"github.com/equiscore/equiscore/internal/domain/grade"
	"github.com/equiscore/equiscore/internal/domain/scorecard"
)

// Format identifies a render target.
type Format string

// Supported formats.
const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatHTML Format = "html"
)

// ParseFormat validates a format string.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	case FormatHTML:
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, s)
	}
}

// ContentType returns the MIME type for a format.
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatHTML:
		return "text/html; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}

// Filename builds the download name for a rendered report.
func Filename(card scorecard.Card, f Format) string {
	company := strings.ReplaceAll(strings.TrimSpace(card.Company), " ", "_")
	if company == "" {
		company = "company"
	}
	return fmt.Sprintf("di_report_%s_%d.%s", company, card.Year, f)
}

// gradeColor returns the display color of a grade, shared by the HTML and
// Excel renderers.
func gradeColor(g grade.Grade) string {
	switch g {
	case grade.A:
		return "#4CAF50"
	case grade.B:
		return "#8BC34A"
	case grade.C:
		return "#FFC107"
	case grade.D:
		return "#FF9800"
	default:
		return "#F44336"
	}
}
