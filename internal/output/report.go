package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rpgo/takehome/internal/domain"
	money "github.com/rpgo/takehome/pkg/decimal"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// nowFunc returns the current time (override in tests for stable file names).
var nowFunc = time.Now

// Report is the read-only view every formatter renders: the scan result plus
// the divisor used to convert rupees into display units.
type Report struct {
	Result  *domain.ScanResult
	Divisor decimal.Decimal
	Unit    string
}

// NewReport wraps a scan result. A non-positive divisor falls back to one lakh.
func NewReport(result *domain.ScanResult, divisor decimal.Decimal) *Report {
	if !divisor.IsPositive() {
		divisor = decimal.NewFromInt(domain.DefaultDisplayDivisor)
	}
	return &Report{Result: result, Divisor: divisor, Unit: unitFor(divisor)}
}

func unitFor(divisor decimal.Decimal) string {
	switch {
	case divisor.Equal(decimal.NewFromInt(1)):
		return "rupees"
	case divisor.Equal(decimal.NewFromInt(100_000)):
		return "lakhs"
	case divisor.Equal(decimal.NewFromInt(10_000_000)):
		return "crores"
	default:
		return "x" + divisor.String()
	}
}

// Scaled converts an amount to display units.
func (r *Report) Scaled(v decimal.Decimal) money.Money {
	return money.NewMoneyFromDecimal(v).Scale(r.Divisor)
}

// Series returns the chart columns in display units: scaled incomes, scaled
// take-home values and the per-sample colors, index-aligned.
func (r *Report) Series() (xs, ys []float64, colors []domain.Color) {
	scale := func(v decimal.Decimal, _ int) float64 { return r.Scaled(v).Float() }
	return lo.Map(r.Result.Incomes(), scale), lo.Map(r.Result.TakeHomes(), scale), r.Result.Colors()
}

// IntervalLabel is the legend text for a decreasing interval.
func (r *Report) IntervalLabel(iv domain.Interval) string {
	return fmt.Sprintf("Decreasing Take Home: %s-%s %s", r.Scaled(iv.Start).Compact(), r.Scaled(iv.End).Compact(), r.Unit)
}

// XLabel and YLabel are the chart axis titles.
func (r *Report) XLabel() string { return fmt.Sprintf("Taxable Income (in %s)", r.Unit) }
func (r *Report) YLabel() string { return fmt.Sprintf("Take Home (in %s)", r.Unit) }

// ChartTitle is shared by every chart renderer.
const ChartTitle = "Taxable Income vs Take Home"

// extensionFor maps a canonical formatter name to a file extension.
func extensionFor(name string) string {
	switch name {
	case "console":
		return "txt"
	default:
		return name
	}
}

// GenerateReport renders the report with the named formatter and writes it to
// path. An empty path writes a timestamped file into the working directory.
// It returns the path written.
func GenerateReport(r *Report, format, path string) (string, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return "", fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
			strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	if path == "" {
		path = fmt.Sprintf("takehome_chart_%s.%s", nowFunc().Format("20060102_150405"), extensionFor(f.Name()))
	}
	return WriteFormatted(f, r, path)
}

// WriteFormatted runs a formatter and writes its output to path, creating
// parent directories as needed.
func WriteFormatted(f Formatter, r *Report, path string) (string, error) {
	data, err := f.Format(r)
	if err != nil {
		return "", fmt.Errorf("%s formatter failed: %w", f.Name(), err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
