package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/rpgo/takehome/internal/domain"
)

// HTMLFormatter produces a self-contained Chart.js page: a scatter of take-home
// against income with every decreasing interval shaded.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/chart.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("chart").Funcs(template.FuncMap{
	"rupees": FormatRupees,
	"json":   jsonJS,
}).Parse(htmlTemplateSource))

// jsonJS embeds v as a JavaScript literal. Encoding failures abort the render.
func jsonJS(v interface{}) (template.JS, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode chart data: %w", err)
	}
	return template.JS(b), nil
}

type chartPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type chartBand struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Label string  `json:"label"`
}

type notchRow struct {
	domain.NotchSummary
	Label string
}

func (h HTMLFormatter) Format(r *Report) ([]byte, error) {
	res := r.Result

	xs, ys, sampleColors := r.Series()
	points := make([]chartPoint, len(xs))
	colors := make([]string, len(xs))
	for i := range xs {
		points[i] = chartPoint{X: xs[i], Y: ys[i]}
		colors[i] = string(sampleColors[i])
	}

	bands := make([]chartBand, len(res.Intervals))
	for i, iv := range res.Intervals {
		bands[i] = chartBand{Start: r.Scaled(iv.Start).Float(), End: r.Scaled(iv.End).Float(), Label: r.IntervalLabel(iv)}
	}

	rows := make([]notchRow, len(res.Notches))
	for i, n := range res.Notches {
		rows[i] = notchRow{NotchSummary: n, Label: r.IntervalLabel(n.Interval)}
	}

	data := struct {
		Title       string
		XLabel      string
		YLabel      string
		Points      []chartPoint
		Colors      []string
		Bands       []chartBand
		Notches     []notchRow
		Headline    Headline
		Assumptions []string
	}{ChartTitle, r.XLabel(), r.YLabel(), points, colors, bands, rows, AnalyzeReport(r), GenerateAssumptions(res.Schedule)}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
