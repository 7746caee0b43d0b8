package cli

import (
	"fmt"

	"github.com/rpgo/takehome/internal/calculation"
	"github.com/rpgo/takehome/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type scanOptions struct {
	Start   string
	End     string
	Step    string
	Divisor string
	Format  string
	Output  string
	NoOpen  bool
}

// NewScanCommand creates the scan command.
func NewScanCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &scanOptions{}
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Sweep incomes and chart take-home pay",
		Long: `Sweep gross incomes from --start (inclusive) to --end (exclusive) in steps of
--step, classify every sample against the running maximum take-home, and
render the result. Chart formats (html, png, svg) are written to a file and
opened; text formats (console, csv, json) go to stdout unless --output is set.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, rootOpts, opts)
		},
	}
	addScanFlags(cmd, opts)
	return cmd
}

func addScanFlags(cmd *cobra.Command, opts *scanOptions) {
	cmd.Flags().StringVar(&opts.Start, "start", "", "first income of the sweep (default 1150000)")
	cmd.Flags().StringVar(&opts.End, "end", "", "end of the sweep, exclusive (default 1300000)")
	cmd.Flags().StringVar(&opts.Step, "step", "", "sweep step (default 1000)")
	cmd.Flags().StringVar(&opts.Divisor, "divisor", "", "display divisor for chart units (default 100000, lakhs)")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "html", "output format: "+fmt.Sprint(output.AvailableFormatterNames()))
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file (default: timestamped file, or stdout for text formats)")
	cmd.Flags().BoolVar(&opts.NoOpen, "no-open", false, "do not open the chart after writing it")
}

// overrideDecimal replaces *dst when the flag value is non-empty.
func overrideDecimal(name, value string, dst *decimal.Decimal) error {
	if value == "" {
		return nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return fmt.Errorf("invalid --%s %q: %w", name, value, err)
	}
	*dst = d
	return nil
}

func runScan(cmd *cobra.Command, rootOpts *RootOptions, opts *scanOptions) error {
	log := rootOpts.log

	formatter := output.GetFormatterByName(opts.Format)
	if formatter == nil {
		return fmt.Errorf("%w: %q", output.ErrUnsupportedFormat, opts.Format)
	}

	cfg, schedule, err := loadConfiguration(rootOpts)
	if err != nil {
		return err
	}

	sweep := cfg.SweepOrDefault()
	divisor := cfg.Divisor()
	for _, o := range []struct {
		name  string
		value string
		dst   *decimal.Decimal
	}{
		{"start", opts.Start, &sweep.Start},
		{"end", opts.End, &sweep.End},
		{"step", opts.Step, &sweep.Step},
		{"divisor", opts.Divisor, &divisor},
	} {
		if err := overrideDecimal(o.name, o.value, o.dst); err != nil {
			return err
		}
	}

	scanner := calculation.NewScanner(calculation.NewSlabTaxCalculator(schedule), log)
	result, err := scanner.Scan(sweep)
	if err != nil {
		return err
	}
	report := output.NewReport(result, divisor)

	if output.IsTextFormat(formatter.Name()) && opts.Output == "" {
		data, err := formatter.Format(report)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	path, err := output.GenerateReport(report, formatter.Name(), opts.Output)
	if err != nil {
		return err
	}
	log.Infof("wrote %s report to %s", formatter.Name(), path)

	if !opts.NoOpen && !output.IsTextFormat(formatter.Name()) {
		if err := openFunc(path); err != nil {
			log.Warnf("could not open %s: %v", path, err)
		}
	}
	return nil
}
