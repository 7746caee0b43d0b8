package calculation

import (
	"github.com/rpgo/takehome/internal/domain"
	"github.com/shopspring/decimal"
)

// TAX CALCULATION ASSUMPTIONS:
//
// 1. Rebate: income at or below the schedule threshold owes no tax at all.
//
// 2. Retroactive slabs: once income crosses the threshold, every slab lying
//    entirely at or below it is taxed over its full width, not just the part
//    above the threshold. This is what makes take-home pay drop just past the
//    threshold.
//
// 3. Slabs straddling or above the threshold are taxed only on the part that
//    lies between the threshold and the income.
//
// 4. Negative income is not a supported input and is not validated; with a
//    valid schedule it falls below the threshold and yields zero.

// TaxCalculator maps a gross income to the tax owed.
type TaxCalculator interface {
	CalculateTax(income decimal.Decimal) decimal.Decimal
}

// SlabTaxCalculator applies a slab schedule with an all-or-nothing rebate.
type SlabTaxCalculator struct {
	schedule domain.Schedule
}

// NewSlabTaxCalculator creates a calculator for the given schedule.
func NewSlabTaxCalculator(schedule domain.Schedule) *SlabTaxCalculator {
	return &SlabTaxCalculator{schedule: schedule}
}

// NewDefaultTaxCalculator creates a calculator for the built-in schedule.
func NewDefaultTaxCalculator() *SlabTaxCalculator {
	return NewSlabTaxCalculator(domain.DefaultSchedule())
}

// Schedule returns the schedule the calculator was built with.
func (c *SlabTaxCalculator) Schedule() domain.Schedule { return c.schedule }

// CalculateTax calculates the tax owed on income.
func (c *SlabTaxCalculator) CalculateTax(income decimal.Decimal) decimal.Decimal {
	var total decimal.Decimal
	for _, part := range c.CalculateTaxBreakdown(income) {
		total = total.Add(part.Tax)
	}
	return total
}

// CalculateTaxBreakdown returns each slab's taxable width and tax. Below the
// threshold it returns nil.
func (c *SlabTaxCalculator) CalculateTaxBreakdown(income decimal.Decimal) []domain.SlabTax {
	threshold := c.schedule.Threshold()
	if income.LessThanOrEqual(threshold) {
		return nil
	}

	slabs := c.schedule.Slabs()
	parts := make([]domain.SlabTax, 0, len(slabs))
	for _, slab := range slabs {
		var taxable decimal.Decimal
		if !slab.IsUnbounded() && slab.Upper.LessThanOrEqual(threshold) {
			// Fully below the threshold: the whole slab becomes taxable.
			taxable = slab.Width()
		} else {
			lower := decimal.Max(slab.Lower, threshold)
			upper := income
			if !slab.IsUnbounded() {
				upper = decimal.Min(income, *slab.Upper)
			}
			taxable = decimal.Max(decimal.Zero, upper.Sub(lower))
		}
		parts = append(parts, domain.SlabTax{
			Slab:    slab,
			Taxable: taxable,
			Tax:     taxable.Mul(slab.Rate),
		})
	}
	return parts
}

// TakeHome returns income minus the tax owed on it.
func TakeHome(calc TaxCalculator, income decimal.Decimal) decimal.Decimal {
	return income.Sub(calc.CalculateTax(income))
}

// EffectiveRate returns tax/income as a fraction, or zero for zero income.
func EffectiveRate(calc TaxCalculator, income decimal.Decimal) decimal.Decimal {
	if !income.IsPositive() {
		return decimal.Zero
	}
	return calc.CalculateTax(income).Div(income)
}
