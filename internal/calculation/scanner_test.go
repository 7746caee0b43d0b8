package calculation

import (
	"fmt"
	"testing"

	"github.com/rpgo/takehome/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// series builds samples with incomes 1..n and the given take-home values.
func series(takeHomes ...int64) []domain.Sample {
	out := make([]domain.Sample, len(takeHomes))
	for i, th := range takeHomes {
		out[i] = domain.Sample{Income: decimal.NewFromInt(int64(i + 1)), TakeHome: decimal.NewFromInt(th)}
	}
	return out
}

func intervalStrings(ivs []domain.Interval) []string {
	out := make([]string, len(ivs))
	for i, iv := range ivs {
		out[i] = iv.Start.String() + "-" + iv.End.String()
	}
	return out
}

func colorsOf(samples []domain.Sample) []domain.Color {
	out := make([]domain.Color, len(samples))
	for i, s := range samples {
		out[i] = s.Color
	}
	return out
}

const (
	B = domain.ColorBlue
	R = domain.ColorRed
)

func TestDetectDecreasing(t *testing.T) {
	tests := []struct {
		name      string
		takeHomes []int64
		colors    []domain.Color
		intervals []string
	}{
		{
			name:      "synthetic notch sequence",
			takeHomes: []int64{10, 10, 8, 8, 9, 12, 11, 15},
			colors:    []domain.Color{B, B, R, R, R, B, R, B},
			intervals: []string{"3-6", "7-8"},
		},
		{
			name:      "monotonic",
			takeHomes: []int64{1, 2, 3},
			colors:    []domain.Color{B, B, B},
			intervals: []string{},
		},
		{
			name:      "equal values stay blue",
			takeHomes: []int64{5, 5, 5},
			colors:    []domain.Color{B, B, B},
			intervals: []string{},
		},
		{
			name:      "run reaching the end closes at the final income",
			takeHomes: []int64{5, 3, 2},
			colors:    []domain.Color{B, R, R},
			intervals: []string{"2-3"},
		},
		{
			// Known edge case: the running maximum starts at zero, not at the
			// first sample, so a negative first take-home is red.
			name:      "negative first sample is red",
			takeHomes: []int64{-1, 0, -2},
			colors:    []domain.Color{R, B, R},
			intervals: []string{"1-2", "3-3"},
		},
		{
			name:      "empty",
			takeHomes: nil,
			colors:    []domain.Color{},
			intervals: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := series(tt.takeHomes...)
			got, intervals := DetectDecreasing(input)

			assert.Equal(t, tt.colors, colorsOf(got))
			assert.Equal(t, tt.intervals, intervalStrings(intervals))
			for _, s := range input {
				assert.Empty(t, s.Color, "input must not be modified")
			}
		})
	}
}

func TestDetectDecreasingIntervalsCoverReds(t *testing.T) {
	got, intervals := DetectDecreasing(series(9, 1, 9, 1, 1, 10, 2, 3, 11, 4))

	for _, s := range got {
		if s.Color != domain.ColorRed {
			continue
		}
		n := 0
		for _, iv := range intervals {
			if iv.Contains(s.Income) {
				n++
			}
		}
		assert.Equal(t, 1, n, "red income %s must be in exactly one interval", s.Income)
	}
	for i := 1; i < len(intervals); i++ {
		assert.True(t, intervals[i-1].End.LessThan(intervals[i].Start))
	}
}

func TestScanDefaultSweep(t *testing.T) {
	scanner := NewScanner(NewDefaultTaxCalculator(), nil)

	res, err := scanner.Scan(domain.DefaultSweep())
	require.NoError(t, err)

	require.Len(t, res.Samples, 150)
	assert.Equal(t, []string{"1201000-1271000"}, intervalStrings(res.Intervals))
	assert.Equal(t, 70, res.RedCount())
	assert.Equal(t, 7, res.Schedule.Len())

	first := res.Samples[0]
	assert.True(t, first.Tax.IsZero())
	assert.True(t, first.TakeHome.Equal(first.Income))

	red := res.Samples[51] // 1,201,000
	assert.Equal(t, domain.ColorRed, red.Color)
	assert.True(t, red.Tax.Equal(dec("60150")))
	assert.True(t, red.TakeHome.Equal(dec("1140850")))

	require.Len(t, res.Notches, 1)
	n := res.Notches[0]
	assert.True(t, n.PeakTakeHome.Equal(dec("1200000")))
	assert.True(t, n.LowestTakeHome.Equal(dec("1140850")))
	assert.True(t, n.LowestAt.Equal(dec("1201000")))
	assert.True(t, n.MaxShortfall.Equal(dec("59150")))
	assert.Equal(t, 70, n.Samples)
}

func TestScanIsDeterministic(t *testing.T) {
	snapshot := func(r *domain.ScanResult) []string {
		var out []string
		for _, s := range r.Samples {
			out = append(out, fmt.Sprintf("%s|%s|%s|%s", s.Income, s.Tax, s.TakeHome, s.Color))
		}
		return append(out, intervalStrings(r.Intervals)...)
	}

	scanner := NewScanner(NewDefaultTaxCalculator(), nil)
	a, err := scanner.Scan(domain.DefaultSweep())
	require.NoError(t, err)
	b, err := scanner.Scan(domain.DefaultSweep())
	require.NoError(t, err)
	assert.Equal(t, snapshot(a), snapshot(b))
}

func TestScanRejectsInvalidSweep(t *testing.T) {
	scanner := NewScanner(NewDefaultTaxCalculator(), nil)
	for _, sweep := range []domain.SweepRange{
		{Start: dec("10"), End: dec("5"), Step: dec("1")},
		{Start: dec("0"), End: dec("10"), Step: dec("0")},
		{Start: dec("1150000"), End: dec("1300000"), Step: dec("0.0001")},
	} {
		res, err := scanner.Scan(sweep)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidSweep)
		assert.Nil(t, res)
	}
}

type recordingLogger struct {
	NopLogger
	infos []string
}

func (l *recordingLogger) Infof(format string, args ...any) {
	l.infos = append(l.infos, fmt.Sprintf(format, args...))
}

func TestScanLogsNotches(t *testing.T) {
	logger := &recordingLogger{}
	_, err := NewScanner(NewDefaultTaxCalculator(), logger).Scan(domain.DefaultSweep())
	require.NoError(t, err)
	require.Len(t, logger.infos, 1)
	assert.Contains(t, logger.infos[0], "between 1201000 and 1271000")

	logger = &recordingLogger{}
	_, err = NewScanner(NewDefaultTaxCalculator(), logger).Scan(domain.SweepRange{
		Start: dec("0"), End: dec("1000000"), Step: dec("100000"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"take-home is non-decreasing across the sweep"}, logger.infos)
}
