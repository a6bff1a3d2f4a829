package report

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/equiscore/equiscore/internal/domain/advice"
	"github.com/equiscore/equiscore/internal/domain/scorecard"
)

// htmlReport is the template context for the HTML renderer.
type htmlReport struct {
	Card      scorecard.Card
	Advice    advice.Report
	Generated string
}

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"gradeColor": gradeColor,
}).Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>D&amp;I scorecard – {{.Card.Company}} {{.Card.Year}}</title>
<style>
body { font-family: sans-serif; margin: 2em; color: #222; }
h1 { border-bottom: 2px solid #007BFF; padding-bottom: 0.3em; }
table { border-collapse: collapse; width: 100%; margin: 1em 0; }
th { background: #007BFF; color: white; padding: 0.5em; text-align: left; }
td { border: 1px solid #ddd; padding: 0.5em; }
.grade { font-weight: bold; color: white; text-align: center; width: 3em; }
.aggregate { font-size: 1.4em; margin: 1em 0; }
ul { margin: 0.3em 0; }
</style>
</head>
<body>
<h1>Diversity &amp; Inclusion scorecard</h1>
<p><strong>{{.Card.Company}}</strong> – {{.Card.Year}} (generated {{.Generated}})</p>

<p class="aggregate">Overall grade:
<span class="grade" style="background:{{gradeColor .Card.AggregateGrade}};padding:0.2em 0.6em">{{.Card.AggregateGrade}}</span>
score {{printf "%.2f" .Card.AggregateScore}}/5</p>

<table>
<tr><th>Indicator</th><th>Value</th><th>Grade</th></tr>
{{range .Card.Lines}}
<tr>
<td>{{.Label}}</td>
<td>{{printf "%.1f" .Value}}%</td>
<td class="grade" style="background:{{gradeColor .Grade}}">{{.Grade}}</td>
</tr>
{{end}}
</table>

{{if .Advice.Strengths}}
<h2>Strengths</h2>
<ul>{{range .Advice.Strengths}}<li>{{.}}: solid performance, keep it up</li>{{end}}</ul>
{{end}}

{{if .Advice.Consolidate}}
<h2>To consolidate</h2>
<ul>{{range .Advice.Consolidate}}<li>{{.}}: average performance, progress is still possible</li>{{end}}</ul>
{{end}}

{{if .Advice.Recommendations}}
<h2>Priority areas</h2>
{{range .Advice.Recommendations}}
<h3>{{.Label}} (grade {{.Grade}})</h3>
<ul>{{range .Actions}}<li>{{.}}</li>{{end}}</ul>
{{end}}
{{end}}

<h2>Conclusion</h2>
<p>{{.Advice.Conclusion}}</p>
</body>
</html>
`))

// RenderHTML renders a scorecard and its advice report as a standalone
// HTML document.
func RenderHTML(card scorecard.Card, adv advice.Report) ([]byte, error) {
	var buf bytes.Buffer
	err := reportTemplate.Execute(&buf, htmlReport{
		Card:      card,
		Advice:    adv,
		Generated: time.Now().Format("02/01/2006"),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	return buf.Bytes(), nil
}
