package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/rpgo/takehome/internal/calculation"
	"github.com/rpgo/takehome/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// NewTaxCommand creates the tax command.
func NewTaxCommand(rootOpts *RootOptions) *cobra.Command {
	var breakdown bool
	cmd := &cobra.Command{
		Use:   "tax <income>...",
		Short: "Compute tax and take-home for specific incomes",
		Example: `  takehome tax 1200000 1200000.01
  takehome tax --breakdown 1600000`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTax(cmd, rootOpts, args, breakdown)
		},
	}
	cmd.Flags().BoolVarP(&breakdown, "breakdown", "b", false, "show the tax owed in each slab")
	return cmd
}

func runTax(cmd *cobra.Command, rootOpts *RootOptions, args []string, breakdown bool) error {
	incomes := make([]decimal.Decimal, len(args))
	for i, arg := range args {
		d, err := decimal.NewFromString(arg)
		if err != nil {
			return fmt.Errorf("invalid income %q: %w", arg, err)
		}
		incomes[i] = d
	}

	_, schedule, err := loadConfiguration(rootOpts)
	if err != nil {
		return err
	}
	calc := calculation.NewSlabTaxCalculator(schedule)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INCOME\tTAX\tTAKE HOME\tEFFECTIVE RATE")
	for _, income := range incomes {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			income.StringFixed(2),
			calc.CalculateTax(income).StringFixed(2),
			calculation.TakeHome(calc, income).StringFixed(2),
			output.FormatPercentage(calculation.EffectiveRate(calc, income)))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if !breakdown {
		return nil
	}
	for _, income := range incomes {
		fmt.Fprintf(cmd.OutOrStdout(), "\nSlab breakdown for %s:\n", output.FormatRupees(income))
		parts := calc.CalculateTaxBreakdown(income)
		if parts == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "  at or below the rebate threshold of %s, no tax owed\n",
				output.FormatRupees(schedule.Threshold()))
			continue
		}
		for _, p := range parts {
			fmt.Fprintf(cmd.OutOrStdout(), "  %-34s taxable %14s  tax %12s\n",
				output.SlabLabel(p.Slab), p.Taxable.StringFixed(2), p.Tax.StringFixed(2))
		}
	}
	return nil
}
