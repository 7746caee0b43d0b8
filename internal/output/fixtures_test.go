package output

import (
	"os"
	"testing"

	"github.com/rpgo/takehome/internal/calculation"
	"github.com/rpgo/takehome/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func scanReport(t *testing.T, sweep domain.SweepRange) *Report {
	t.Helper()
	res, err := calculation.NewScanner(calculation.NewDefaultTaxCalculator(), nil).Scan(sweep)
	require.NoError(t, err)
	return NewReport(res, decimal.NewFromInt(domain.DefaultDisplayDivisor))
}

func defaultReport(t *testing.T) *Report {
	return scanReport(t, domain.DefaultSweep())
}

func flatReport(t *testing.T) *Report {
	return scanReport(t, domain.SweepRange{
		Start: decimal.NewFromInt(100_000),
		End:   decimal.NewFromInt(1_000_000),
		Step:  decimal.NewFromInt(100_000),
	})
}

// chdir switches the working directory for the rest of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
