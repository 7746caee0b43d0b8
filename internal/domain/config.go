package domain

import "github.com/shopspring/decimal"

// DefaultDisplayDivisor scales rupee amounts to lakhs for charts.
const DefaultDisplayDivisor = 100_000

// Configuration is the on-disk form of a schedule plus optional sweep and
// display settings.
type Configuration struct {
	Threshold      decimal.Decimal `yaml:"threshold" json:"threshold"`
	Slabs          []Slab          `yaml:"slabs" json:"slabs"`
	Sweep          *SweepRange     `yaml:"sweep,omitempty" json:"sweep,omitempty"`
	DisplayDivisor decimal.Decimal `yaml:"display_divisor,omitempty" json:"display_divisor,omitempty"`
}

// Divisor returns the display divisor, falling back to DefaultDisplayDivisor.
func (c *Configuration) Divisor() decimal.Decimal {
	if c.DisplayDivisor.IsPositive() {
		return c.DisplayDivisor
	}
	return decimal.NewFromInt(DefaultDisplayDivisor)
}

// SweepOrDefault returns the configured sweep or DefaultSweep.
func (c *Configuration) SweepOrDefault() SweepRange {
	if c.Sweep != nil {
		return *c.Sweep
	}
	return DefaultSweep()
}
