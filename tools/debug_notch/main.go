package main

import (
	"fmt"
	"os"

	calc "github.com/rpgo/takehome/internal/calculation"
	"github.com/rpgo/takehome/internal/config"
	"github.com/rpgo/takehome/internal/domain"
	"github.com/shopspring/decimal"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_notch <schedule-file>")
		return
	}
	f := os.Args[1]
	p := config.NewInputParser()
	cfg, err := p.LoadFromFile(f)
	if err != nil {
		panic(err)
	}
	schedule, err := p.BuildSchedule(cfg)
	if err != nil {
		panic(err)
	}
	res, err := calc.NewScanner(calc.NewSlabTaxCalculator(schedule), nil).Scan(cfg.SweepOrDefault())
	if err != nil {
		panic(err)
	}
	if len(res.Samples) == 0 {
		fmt.Println("no samples")
		return
	}

	// Header
	fmt.Println("Index,Income,Tax,TakeHome,RunningMax,Color")
	runningMax := decimal.Zero
	for i, s := range res.Samples {
		if s.TakeHome.GreaterThan(runningMax) {
			runningMax = s.TakeHome
		}
		fmt.Printf("%d,%s,%s,%s,%s,%s\n", i, s.Income.StringFixed(2), s.Tax.StringFixed(2),
			s.TakeHome.StringFixed(2), runningMax.StringFixed(2), s.Color)
	}

	if worst, ok := calc.WorstNotch(res.Notches); ok {
		fmt.Printf("worst notch %s-%s shortfall %s\n", worst.Interval.Start, worst.Interval.End, worst.MaxShortfall.StringFixed(2))
	} else {
		fmt.Printf("no %s samples\n", domain.ColorRed)
	}
}
