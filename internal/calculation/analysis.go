package calculation

import (
	"github.com/rpgo/takehome/internal/domain"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// AnalyzeNotches summarizes each decreasing interval: the take-home peak the
// interval falls short of, the lowest take-home inside it and where that occurs.
// samples must be the classified series that produced intervals.
func AnalyzeNotches(samples []domain.Sample, intervals []domain.Interval) []domain.NotchSummary {
	notches := make([]domain.NotchSummary, 0, len(intervals))
	for _, iv := range intervals {
		reds := lo.Filter(samples, func(s domain.Sample, _ int) bool {
			return s.Color == domain.ColorRed && iv.Contains(s.Income)
		})
		if len(reds) == 0 {
			continue
		}

		peak := peakBefore(samples, iv.Start)
		lowest := lo.MinBy(reds, func(a, b domain.Sample) bool { return a.TakeHome.LessThan(b.TakeHome) })

		notches = append(notches, domain.NotchSummary{
			Interval:       iv,
			PeakTakeHome:   peak,
			LowestTakeHome: lowest.TakeHome,
			LowestAt:       lowest.Income,
			MaxShortfall:   peak.Sub(lowest.TakeHome),
			Samples:        len(reds),
		})
	}
	return notches
}

// peakBefore returns the running maximum take-home strictly before income,
// starting from zero as the detector does.
func peakBefore(samples []domain.Sample, income decimal.Decimal) decimal.Decimal {
	peak := decimal.Zero
	for _, s := range samples {
		if !s.Income.LessThan(income) {
			break
		}
		peak = decimal.Max(peak, s.TakeHome)
	}
	return peak
}

// WorstNotch returns the notch with the largest shortfall.
func WorstNotch(notches []domain.NotchSummary) (domain.NotchSummary, bool) {
	if len(notches) == 0 {
		return domain.NotchSummary{}, false
	}
	return lo.MaxBy(notches, func(a, b domain.NotchSummary) bool {
		return a.MaxShortfall.GreaterThan(b.MaxShortfall)
	}), true
}
