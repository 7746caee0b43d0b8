package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidSweep is returned when a sweep range cannot produce samples.
var ErrInvalidSweep = errors.New("invalid sweep range")

// Color classifies a sample in the take-home series.
type Color string

const (
	// ColorBlue marks a sample at or above every earlier take-home value.
	ColorBlue Color = "blue"
	// ColorRed marks a sample whose take-home fell below the running maximum.
	ColorRed Color = "red"
)

// SweepRange is the half-open arithmetic sequence Start, Start+Step, ... < End.
type SweepRange struct {
	Start decimal.Decimal `yaml:"start" json:"start"`
	End   decimal.Decimal `yaml:"end" json:"end"`
	Step  decimal.Decimal `yaml:"step" json:"step"`
}

// MaxSweepSamples bounds how many incomes a single sweep may produce.
const MaxSweepSamples = 1_000_000

// DefaultSweep covers the region around the default rebate threshold.
func DefaultSweep() SweepRange {
	return SweepRange{
		Start: decimal.NewFromInt(1_150_000),
		End:   decimal.NewFromInt(1_300_000),
		Step:  decimal.NewFromInt(1_000),
	}
}

// Validate checks that the sweep yields at least one ascending sample.
func (r SweepRange) Validate() error {
	if r.Start.IsNegative() {
		return fmt.Errorf("%w: start %s cannot be negative", ErrInvalidSweep, r.Start)
	}
	if !r.Step.IsPositive() {
		return fmt.Errorf("%w: step %s must be positive", ErrInvalidSweep, r.Step)
	}
	if !r.End.GreaterThan(r.Start) {
		return fmt.Errorf("%w: end %s must be greater than start %s", ErrInvalidSweep, r.End, r.Start)
	}
	if n := r.End.Sub(r.Start).Div(r.Step).Ceil(); n.GreaterThan(decimal.NewFromInt(MaxSweepSamples)) {
		return fmt.Errorf("%w: %s samples exceeds the limit of %d", ErrInvalidSweep, n, MaxSweepSamples)
	}
	return nil
}

// Incomes materializes the sequence. The caller is expected to Validate first;
// a non-positive step yields nil.
func (r SweepRange) Incomes() []decimal.Decimal {
	if !r.Step.IsPositive() {
		return nil
	}
	var out []decimal.Decimal
	for v := r.Start; v.LessThan(r.End); v = v.Add(r.Step) {
		out = append(out, v)
	}
	return out
}

// Sample is one point of the take-home series.
type Sample struct {
	Income   decimal.Decimal `json:"income"`
	Tax      decimal.Decimal `json:"tax"`
	TakeHome decimal.Decimal `json:"take_home"`
	Color    Color           `json:"color"`
}

// Interval is a run of red samples: Start is the first red income, End is the
// income that broke the run (or the final income if the run reached the end).
type Interval struct {
	Start decimal.Decimal `json:"start"`
	End   decimal.Decimal `json:"end"`
}

// Contains reports whether income lies in [Start, End].
func (iv Interval) Contains(income decimal.Decimal) bool {
	return income.GreaterThanOrEqual(iv.Start) && income.LessThanOrEqual(iv.End)
}

// NotchSummary describes how deep a decreasing interval goes.
type NotchSummary struct {
	Interval       Interval        `json:"interval"`
	PeakTakeHome   decimal.Decimal `json:"peak_take_home"`
	LowestTakeHome decimal.Decimal `json:"lowest_take_home"`
	LowestAt       decimal.Decimal `json:"lowest_at"`
	MaxShortfall   decimal.Decimal `json:"max_shortfall"`
	Samples        int             `json:"samples"`
}

// ScanResult bundles the classified series, the decreasing intervals and
// their analysis. Renderers must treat it as read-only.
type ScanResult struct {
	Schedule  Schedule       `json:"-"`
	Sweep     SweepRange     `json:"sweep"`
	Samples   []Sample       `json:"samples"`
	Intervals []Interval     `json:"intervals"`
	Notches   []NotchSummary `json:"notches"`
}

// Incomes returns the income column.
func (r *ScanResult) Incomes() []decimal.Decimal {
	out := make([]decimal.Decimal, len(r.Samples))
	for i, s := range r.Samples {
		out[i] = s.Income
	}
	return out
}

// TakeHomes returns the take-home column.
func (r *ScanResult) TakeHomes() []decimal.Decimal {
	out := make([]decimal.Decimal, len(r.Samples))
	for i, s := range r.Samples {
		out[i] = s.TakeHome
	}
	return out
}

// Colors returns the classification column.
func (r *ScanResult) Colors() []Color {
	out := make([]Color, len(r.Samples))
	for i, s := range r.Samples {
		out[i] = s.Color
	}
	return out
}

// RedCount returns how many samples were classified red.
func (r *ScanResult) RedCount() int {
	n := 0
	for _, s := range r.Samples {
		if s.Color == ColorRed {
			n++
		}
	}
	return n
}
