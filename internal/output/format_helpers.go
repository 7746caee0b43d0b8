package output

import (
	money "github.com/rpgo/takehome/pkg/decimal"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatRupees formats an amount rounded to whole rupees with digit grouping.
func FormatRupees(amount decimal.Decimal) string {
	return message.NewPrinter(language.English).Sprintf("₹%v", amount.Round(0).IntPart())
}

// FormatPercentage formats a fraction (0.075) as a percentage with 2 decimals.
func FormatPercentage(fraction decimal.Decimal) string {
	return fraction.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}

// formatTick renders a chart tick value with one decimal place.
func formatTick(v float64) string { return money.NewMoneyFromFloat(v).OneDecimal() }
