package main

import (
	"fmt"

	"github.com/rpgo/takehome/internal/calculation"
	"github.com/shopspring/decimal"
)

// Prints tax and take-home just either side of the rebate threshold.
func main() {
	calc := calculation.NewDefaultTaxCalculator()
	threshold := calc.Schedule().Threshold()

	for _, delta := range []string{"-1000", "-0.01", "0", "0.01", "1000", "71000"} {
		income := threshold.Add(decimal.RequireFromString(delta))
		fmt.Printf("income %14s  tax %12s  take-home %14s\n",
			income.StringFixed(2),
			calc.CalculateTax(income).StringFixed(2),
			calculation.TakeHome(calc, income).StringFixed(2))
	}

	fmt.Println("Slabs above threshold:")
	for _, p := range calc.CalculateTaxBreakdown(threshold.Add(decimal.NewFromInt(1))) {
		fmt.Printf("  %s-%v @ %s: %s\n", p.Slab.Lower, p.Slab.Upper, p.Slab.Rate, p.Tax.StringFixed(2))
	}
}
