package output

import (
	"fmt"

	"github.com/rpgo/takehome/internal/domain"
)

// SlabLabel describes a slab's bounds, e.g. "₹400,000 to ₹800,000".
func SlabLabel(s domain.Slab) string {
	if s.IsUnbounded() {
		return FormatRupees(s.Lower) + " and above"
	}
	return FormatRupees(s.Lower) + " to " + FormatRupees(*s.Upper)
}

// GenerateAssumptions lists the schedule rules rendered alongside charts.
func GenerateAssumptions(schedule domain.Schedule) []string {
	if schedule.Len() == 0 {
		return nil
	}
	threshold := FormatRupees(schedule.Threshold())
	lines := []string{
		fmt.Sprintf("Rebate: income at or below %s owes no tax", threshold),
		fmt.Sprintf("Above %s, slabs ending at or below it are taxed in full", threshold),
	}
	for _, s := range schedule.Slabs() {
		lines = append(lines, fmt.Sprintf("%s: %s", SlabLabel(s), FormatPercentage(s.Rate)))
	}
	return lines
}
