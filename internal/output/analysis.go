package output

import (
	"github.com/rpgo/takehome/internal/calculation"
	"github.com/shopspring/decimal"
)

// Headline encapsulates the one-line verdict shown at the top of reports.
type Headline struct {
	HasNotch     bool
	Label        string
	MaxShortfall decimal.Decimal
	LowestAt     decimal.Decimal
	RedSamples   int
	TotalSamples int
}

// AnalyzeReport picks the deepest notch in the report, if any.
func AnalyzeReport(r *Report) Headline {
	h := Headline{RedSamples: r.Result.RedCount(), TotalSamples: len(r.Result.Samples)}
	worst, ok := calculation.WorstNotch(r.Result.Notches)
	if !ok {
		return h
	}
	h.HasNotch = true
	h.Label = r.IntervalLabel(worst.Interval)
	h.MaxShortfall = worst.MaxShortfall
	h.LowestAt = worst.LowestAt
	return h
}
