package output

import (
	"bytes"
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ConsoleFormatter prints a human readable summary of the scan.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(r *Report) ([]byte, error) {
	var buf bytes.Buffer
	p := message.NewPrinter(language.English)
	res := r.Result

	fmt.Fprintln(&buf, "TAKE-HOME NOTCH ANALYSIS")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Sweep: %s to %s step %s (%d samples)\n",
		FormatRupees(res.Sweep.Start), FormatRupees(res.Sweep.End), FormatRupees(res.Sweep.Step), len(res.Samples))
	if res.Schedule.Len() > 0 {
		fmt.Fprintf(&buf, "Rebate threshold: %s\n", FormatRupees(res.Schedule.Threshold()))
	}
	fmt.Fprintln(&buf)

	h := AnalyzeReport(r)
	if !h.HasNotch {
		fmt.Fprintln(&buf, "Take-home pay never decreases in this range.")
		return buf.Bytes(), nil
	}

	p.Fprintf(&buf, "%d of %d samples earn less than a smaller income did.\n", h.RedSamples, h.TotalSamples)
	fmt.Fprintln(&buf)
	for _, n := range res.Notches {
		fmt.Fprintln(&buf, r.IntervalLabel(n.Interval))
		fmt.Fprintf(&buf, "  Peak before: %s  Lowest: %s at %s  Max shortfall: %s\n",
			FormatRupees(n.PeakTakeHome), FormatRupees(n.LowestTakeHome), FormatRupees(n.LowestAt), FormatRupees(n.MaxShortfall))
	}

	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Deepest notch: %s (shortfall %s)\n", h.Label, FormatRupees(h.MaxShortfall))
	return buf.Bytes(), nil
}
