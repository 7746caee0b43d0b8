package calculation

import (
	"github.com/rpgo/takehome/internal/domain"
	"github.com/shopspring/decimal"
)

type scheduleProvider interface {
	Schedule() domain.Schedule
}

// Scanner sweeps an income range and finds where take-home pay decreases.
type Scanner struct {
	calc   TaxCalculator
	logger Logger
}

// NewScanner creates a scanner. A nil logger is replaced by NopLogger.
func NewScanner(calc TaxCalculator, logger Logger) *Scanner {
	if logger == nil {
		logger = NopLogger{}
	}
	return &Scanner{calc: calc, logger: logger}
}

// Scan samples the sweep, classifies every sample and analyzes the intervals
// where take-home pay sits below its running maximum.
func (s *Scanner) Scan(sweep domain.SweepRange) (*domain.ScanResult, error) {
	if err := sweep.Validate(); err != nil {
		return nil, err
	}

	incomes := sweep.Incomes()
	s.logger.Debugf("scanning %d incomes from %s to %s step %s", len(incomes), sweep.Start, sweep.End, sweep.Step)

	samples := make([]domain.Sample, len(incomes))
	for i, income := range incomes {
		tax := s.calc.CalculateTax(income)
		samples[i] = domain.Sample{Income: income, Tax: tax, TakeHome: income.Sub(tax)}
	}

	classified, intervals := DetectDecreasing(samples)
	result := &domain.ScanResult{
		Sweep:     sweep,
		Samples:   classified,
		Intervals: intervals,
		Notches:   AnalyzeNotches(classified, intervals),
	}
	if sp, ok := s.calc.(scheduleProvider); ok {
		result.Schedule = sp.Schedule()
	}

	for _, n := range result.Notches {
		s.logger.Infof("take-home decreases between %s and %s (max shortfall %s)",
			n.Interval.Start, n.Interval.End, n.MaxShortfall.StringFixed(2))
	}
	if len(intervals) == 0 {
		s.logger.Infof("take-home is non-decreasing across the sweep")
	}
	return result, nil
}

// DetectDecreasing classifies samples in ascending income order. A sample is
// red when its take-home is strictly below the running maximum, otherwise it
// is blue and becomes the new maximum. Consecutive reds form an interval that
// ends at the next blue income, or at the final income if the run reaches the
// end of the series.
//
// The running maximum starts at zero rather than the first sample's take-home,
// so a negative first take-home would be classified red.
//
// The input is not modified; Color on the returned samples is overwritten.
func DetectDecreasing(samples []domain.Sample) ([]domain.Sample, []domain.Interval) {
	out := make([]domain.Sample, len(samples))
	copy(out, samples)

	var intervals []domain.Interval
	runningMax := decimal.Zero
	var start *decimal.Decimal

	for i := range out {
		if out[i].TakeHome.LessThan(runningMax) {
			out[i].Color = domain.ColorRed
			if start == nil {
				income := out[i].Income
				start = &income
			}
			continue
		}
		out[i].Color = domain.ColorBlue
		runningMax = out[i].TakeHome
		if start != nil {
			intervals = append(intervals, domain.Interval{Start: *start, End: out[i].Income})
			start = nil
		}
	}

	if start != nil {
		intervals = append(intervals, domain.Interval{Start: *start, End: out[len(out)-1].Income})
	}
	return out, intervals
}
