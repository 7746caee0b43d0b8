package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidSchedule is returned when a slab table or threshold is malformed.
var ErrInvalidSchedule = errors.New("invalid tax schedule")

// Slab is a contiguous income bracket taxed at a fixed rate.
// A nil Upper marks the final, unbounded slab.
type Slab struct {
	Lower decimal.Decimal  `yaml:"lower" json:"lower"`
	Upper *decimal.Decimal `yaml:"upper,omitempty" json:"upper,omitempty"`
	Rate  decimal.Decimal  `yaml:"rate" json:"rate"`
}

// IsUnbounded reports whether the slab extends to infinity.
func (s Slab) IsUnbounded() bool { return s.Upper == nil }

// Width returns Upper-Lower. It is only meaningful for bounded slabs.
func (s Slab) Width() decimal.Decimal {
	if s.Upper == nil {
		return decimal.Zero
	}
	return s.Upper.Sub(s.Lower)
}

// SlabTax is the contribution of a single slab to the total tax.
type SlabTax struct {
	Slab    Slab            `json:"slab"`
	Taxable decimal.Decimal `json:"taxable"`
	Tax     decimal.Decimal `json:"tax"`
}

// Schedule is an ordered slab table plus the rebate threshold.
// It is immutable once built; use NewSchedule or DefaultSchedule.
type Schedule struct {
	slabs     []Slab
	threshold decimal.Decimal
}

// NewSchedule validates and copies the slabs. Slabs must start at zero, be
// contiguous, carry rates in [0, 1], and end with exactly one unbounded slab.
func NewSchedule(slabs []Slab, threshold decimal.Decimal) (Schedule, error) {
	if len(slabs) == 0 {
		return Schedule{}, fmt.Errorf("%w: no slabs provided", ErrInvalidSchedule)
	}
	if threshold.IsNegative() {
		return Schedule{}, fmt.Errorf("%w: threshold cannot be negative", ErrInvalidSchedule)
	}
	if !slabs[0].Lower.IsZero() {
		return Schedule{}, fmt.Errorf("%w: first slab must start at 0, got %s", ErrInvalidSchedule, slabs[0].Lower)
	}

	one := decimal.NewFromInt(1)
	copied := make([]Slab, len(slabs))
	for i, s := range slabs {
		last := i == len(slabs)-1
		if s.Rate.IsNegative() || s.Rate.GreaterThan(one) {
			return Schedule{}, fmt.Errorf("%w: slab %d rate %s must be between 0 and 1", ErrInvalidSchedule, i, s.Rate)
		}
		if s.IsUnbounded() && !last {
			return Schedule{}, fmt.Errorf("%w: only the final slab may be unbounded (slab %d)", ErrInvalidSchedule, i)
		}
		if !s.IsUnbounded() {
			if last {
				return Schedule{}, fmt.Errorf("%w: final slab must be unbounded", ErrInvalidSchedule)
			}
			if !s.Lower.LessThan(*s.Upper) {
				return Schedule{}, fmt.Errorf("%w: slab %d lower %s must be below upper %s", ErrInvalidSchedule, i, s.Lower, *s.Upper)
			}
		}
		if i > 0 {
			prev := slabs[i-1]
			if !prev.Upper.Equal(s.Lower) {
				return Schedule{}, fmt.Errorf("%w: slab %d starts at %s but slab %d ends at %s", ErrInvalidSchedule, i, s.Lower, i-1, *prev.Upper)
			}
		}

		c := Slab{Lower: s.Lower, Rate: s.Rate}
		if s.Upper != nil {
			u := *s.Upper
			c.Upper = &u
		}
		copied[i] = c
	}

	return Schedule{slabs: copied, threshold: threshold}, nil
}

// MustSchedule is NewSchedule for tables known to be valid at compile time.
func MustSchedule(slabs []Slab, threshold decimal.Decimal) Schedule {
	s, err := NewSchedule(slabs, threshold)
	if err != nil {
		panic(err)
	}
	return s
}

// Slabs returns a copy of the slab table in ascending order.
func (s Schedule) Slabs() []Slab {
	out := make([]Slab, len(s.slabs))
	for i, sl := range s.slabs {
		out[i] = Slab{Lower: sl.Lower, Rate: sl.Rate}
		if sl.Upper != nil {
			u := *sl.Upper
			out[i].Upper = &u
		}
	}
	return out
}

// Threshold returns the rebate boundary. Incomes at or below it owe nothing.
func (s Schedule) Threshold() decimal.Decimal { return s.threshold }

// Len returns the number of slabs.
func (s Schedule) Len() int { return len(s.slabs) }

func bound(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// DefaultSlabs returns the built-in slab table.
func DefaultSlabs() []Slab {
	return []Slab{
		{decimal.Zero, bound(400_000), decimal.Zero},
		{decimal.NewFromInt(400_000), bound(800_000), decimal.RequireFromString("0.05")},
		{decimal.NewFromInt(800_000), bound(1_200_000), decimal.RequireFromString("0.10")},
		{decimal.NewFromInt(1_200_000), bound(1_600_000), decimal.RequireFromString("0.15")},
		{decimal.NewFromInt(1_600_000), bound(2_000_000), decimal.RequireFromString("0.20")},
		{decimal.NewFromInt(2_000_000), bound(2_400_000), decimal.RequireFromString("0.25")},
		{decimal.NewFromInt(2_400_000), nil, decimal.RequireFromString("0.30")},
	}
}

// DefaultThreshold is the built-in rebate boundary.
const DefaultThreshold = 1_200_000

// DefaultSchedule returns the built-in schedule.
func DefaultSchedule() Schedule {
	return MustSchedule(DefaultSlabs(), decimal.NewFromInt(DefaultThreshold))
}
