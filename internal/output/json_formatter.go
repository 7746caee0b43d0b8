package output

import (
	"encoding/json"

	"github.com/rpgo/takehome/internal/domain"
	"github.com/shopspring/decimal"
)

// JSONFormatter serializes the scan and its schedule as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(r *Report) ([]byte, error) {
	res := r.Result
	doc := struct {
		Threshold decimal.Decimal       `json:"threshold"`
		Slabs     []domain.Slab         `json:"slabs"`
		Divisor   decimal.Decimal       `json:"display_divisor"`
		Sweep     domain.SweepRange     `json:"sweep"`
		Samples   []domain.Sample       `json:"samples"`
		Intervals []domain.Interval     `json:"intervals"`
		Notches   []domain.NotchSummary `json:"notches"`
	}{
		Threshold: res.Schedule.Threshold(),
		Slabs:     res.Schedule.Slabs(),
		Divisor:   r.Divisor,
		Sweep:     res.Sweep,
		Samples:   res.Samples,
		Intervals: res.Intervals,
		Notches:   res.Notches,
	}
	if doc.Intervals == nil {
		doc.Intervals = []domain.Interval{}
	}
	return json.MarshalIndent(doc, "", "  ")
}
